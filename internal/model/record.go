package model

import (
	"fmt"
	"strings"
)

// Record represents a single compact disc in the inventory.
//
// Record carries no identity beyond its three fields. Two records may
// share the same ID; see Inventory.Delete for how that is resolved.
//
// Example:
//
//	rec := NewRecord(1, "  Abbey Road ", "The Beatles")
//	// rec.Title = "Abbey Road"
type Record struct {
	// ID is the user-supplied identifier.
	ID int

	// Title is the CD title.
	Title string

	// Artist is the performing artist.
	Artist string
}

// NewRecord creates a Record with surrounding whitespace trimmed from
// the title and artist.
func NewRecord(id int, title, artist string) Record {
	return Record{
		ID:     id,
		Title:  strings.TrimSpace(title),
		Artist: strings.TrimSpace(artist),
	}
}

// String formats the record as an inventory row: "ID\tTITLE (by:ARTIST)".
func (r Record) String() string {
	return fmt.Sprintf("%d\t%s (by:%s)", r.ID, r.Title, r.Artist)
}
