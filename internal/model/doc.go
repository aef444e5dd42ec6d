// Package model defines the core data structures used throughout
// the cdinventory application.
//
// # Record
//
// Record is one compact disc in the collection:
//
//	rec := model.Record{ID: 1, Title: "Abbey Road", Artist: "The Beatles"}
//
// # Inventory
//
// Inventory is the ordered, in-memory collection of records for the
// running session. Records keep insertion order; IDs are not required
// to be unique.
//
//	inv := model.NewInventory()
//	inv.Add(rec)
//	if !inv.Delete(1) {
//	    fmt.Println("Could not find this CD!")
//	}
//	for _, r := range inv.List() {
//	    fmt.Println(r)
//	}
package model
