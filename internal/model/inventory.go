package model

// Inventory is the ordered collection of records held in memory.
//
// The zero value is an empty inventory ready to use. Inventory is not
// safe for concurrent use; it is owned by a single controller.
type Inventory struct {
	records []Record
}

// NewInventory creates an Inventory holding a copy of records.
func NewInventory(records ...Record) *Inventory {
	inv := &Inventory{}
	inv.Replace(records)
	return inv
}

// Add appends rec to the end of the inventory. IDs are not checked for
// uniqueness.
func (inv *Inventory) Add(rec Record) {
	inv.records = append(inv.records, rec)
}

// Delete removes the first record whose ID equals id and reports whether
// one was found. Later records with the same ID are left in place.
func (inv *Inventory) Delete(id int) bool {
	for i, rec := range inv.records {
		if rec.ID == id {
			inv.records = append(inv.records[:i], inv.records[i+1:]...)
			return true
		}
	}
	return false
}

// List returns the records in insertion order. The returned slice is a
// copy and may be modified freely.
func (inv *Inventory) List() []Record {
	out := make([]Record, len(inv.records))
	copy(out, inv.records)
	return out
}

// Replace discards the current contents and takes a copy of records.
func (inv *Inventory) Replace(records []Record) {
	inv.records = make([]Record, len(records))
	copy(inv.records, records)
}

// Len returns the number of records.
func (inv *Inventory) Len() int {
	return len(inv.records)
}
