package menu

import (
	"fmt"
	"io"

	"github.com/cdinventory/cdinventory/internal/model"
)

const (
	inventoryHeader = "======= The Current Inventory: ======="
	inventoryFooter = "======================================"
)

// ShowInventory writes the inventory listing: a header, one
// "ID\tTITLE (by:ARTIST)" row per record, and a footer.
func ShowInventory(w io.Writer, records []model.Record) {
	fmt.Fprintln(w, inventoryHeader)
	fmt.Fprintln(w, "ID\tCD Title (by: Artist)")
	fmt.Fprintln(w)
	for _, r := range records {
		fmt.Fprintln(w, r.String())
	}
	fmt.Fprintln(w, inventoryFooter)
}

func printMenu(w io.Writer) {
	fmt.Fprint(w, "Menu\n\n[l] load Inventory from file\n[a] Add CD\n[i] Display Current Inventory\n")
	fmt.Fprint(w, "[d] delete CD from Inventory\n[s] Save Inventory to file\n[x] exit\n\n")
}
