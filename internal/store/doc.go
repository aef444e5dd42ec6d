// Package store is the persistence gateway between the in-memory
// inventory and the inventory file on disk.
//
// The whole inventory is written and read as one blob; there is no
// incremental or partial access.
//
//	gw := store.NewGateway("CDInventory.dat")
//	if err := gw.Save(inv.List()); err != nil {
//	    log.Fatal(err)
//	}
//
//	records, err := gw.Load()
//	switch {
//	case errors.Is(err, store.ErrNoData):
//	    // nothing saved yet
//	case err != nil:
//	    // corrupt or unreadable file
//	default:
//	    inv.Replace(records)
//	}
package store
