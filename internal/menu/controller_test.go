package menu

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/cdinventory/cdinventory/internal/logging"
	"github.com/cdinventory/cdinventory/internal/model"
	"github.com/cdinventory/cdinventory/internal/store"
)

// failingStore is a Persister whose operations always fail.
type failingStore struct{ err error }

func (f failingStore) Save([]model.Record) error      { return f.err }
func (f failingStore) Load() ([]model.Record, error) { return nil, f.err }

func runController(t *testing.T, inv *model.Inventory, db Persister, input string) string {
	t.Helper()
	var out bytes.Buffer
	ctrl := NewController(inv, db, strings.NewReader(input), &out, logging.Discard())
	if err := ctrl.Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	return out.String()
}

func newGateway(t *testing.T) *store.Gateway {
	t.Helper()
	return store.NewGateway(filepath.Join(t.TempDir(), "CDInventory.dat"))
}

func recordIDs(inv *model.Inventory) []int {
	var out []int
	for _, r := range inv.List() {
		out = append(out, r.ID)
	}
	return out
}

func TestParseCommand(t *testing.T) {
	tests := []struct {
		input  string
		want   Command
		wantOK bool
	}{
		{"l", CmdLoad, true},
		{"A", CmdAdd, true},
		{"  i  ", CmdInspect, true},
		{"D\n", CmdDelete, true},
		{"s", CmdSave, true},
		{"X", CmdExit, true},
		{"", 0, false},
		{"q", 0, false},
		{"add", 0, false},
		{"la", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseCommand(tt.input)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("ParseCommand(%q) = %q, %v; want %q, %v", tt.input, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestParseID(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr error
	}{
		{"1", 1, nil},
		{" 42 ", 42, nil},
		{"-3", -3, nil},
		{"abc", 0, ErrNotInteger},
		{"1.5", 0, ErrNotInteger},
		{"", 0, ErrNotInteger},
		{"99999999999999999999", 0, ErrIDRange},
		{"-99999999999999999999", 0, ErrIDRange},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseID(tt.input)
			if !errors.Is(err, tt.wantErr) || got != tt.want {
				t.Errorf("ParseID(%q) = %d, %v; want %d, %v", tt.input, got, err, tt.want, tt.wantErr)
			}
		})
	}
}

func TestShowInventory_Empty(t *testing.T) {
	var buf bytes.Buffer
	ShowInventory(&buf, nil)

	want := inventoryHeader + "\nID\tCD Title (by: Artist)\n\n" + inventoryFooter + "\n"
	if buf.String() != want {
		t.Errorf("ShowInventory() = %q, want %q", buf.String(), want)
	}
}

func TestShowInventory_Rows(t *testing.T) {
	var buf bytes.Buffer
	ShowInventory(&buf, []model.Record{
		{ID: 1, Title: "Abbey Road", Artist: "The Beatles"},
		{ID: 2, Title: "Kind of Blue", Artist: "Miles Davis"},
	})

	out := buf.String()
	first := strings.Index(out, "1\tAbbey Road (by:The Beatles)")
	second := strings.Index(out, "2\tKind of Blue (by:Miles Davis)")
	if first < 0 || second < 0 || first > second {
		t.Errorf("rows missing or out of order:\n%s", out)
	}
}

func TestController_UnknownCommandReprompts(t *testing.T) {
	out := runController(t, model.NewInventory(), newGateway(t), "q\nhello\n\nx\n")

	prompt := "Which operation would you like to perform?"
	if n := strings.Count(out, prompt); n != 4 {
		t.Errorf("prompt shown %d times, want 4", n)
	}
}

func TestController_AddAppendsAndShows(t *testing.T) {
	inv := model.NewInventory(model.Record{ID: 9, Title: "Existing", Artist: "Someone"})

	out := runController(t, inv, newGateway(t), "a\n1\n  Abbey Road \nThe Beatles\nx\n")

	want := []model.Record{
		{ID: 9, Title: "Existing", Artist: "Someone"},
		{ID: 1, Title: "Abbey Road", Artist: "The Beatles"},
	}
	if got := inv.List(); !reflect.DeepEqual(got, want) {
		t.Errorf("inventory = %+v, want %+v", got, want)
	}
	if !strings.Contains(out, "1\tAbbey Road (by:The Beatles)") {
		t.Errorf("output missing new row:\n%s", out)
	}
}

func TestController_AddRepromptsOnNonInteger(t *testing.T) {
	inv := model.NewInventory()

	out := runController(t, inv, newGateway(t), "a\nabc\n1.5\n7\nTitle\nArtist\nx\n")

	if n := strings.Count(out, "That is not an integer"); n != 2 {
		t.Errorf("error shown %d times, want 2", n)
	}
	if got := recordIDs(inv); !reflect.DeepEqual(got, []int{7}) {
		t.Errorf("IDs = %v, want [7]", got)
	}
}

func TestController_AddRepromptsOnOutOfRangeID(t *testing.T) {
	inv := model.NewInventory()

	out := runController(t, inv, newGateway(t), "a\n99999999999999999999\n1\nTitle\nArtist\nx\n")

	if !strings.Contains(out, "ID out of range") {
		t.Errorf("missing range message:\n%s", out)
	}
	if strings.Contains(out, "That is not an integer") {
		t.Error("out-of-range ID reported as not an integer")
	}
	if got := recordIDs(inv); !reflect.DeepEqual(got, []int{1}) {
		t.Errorf("IDs = %v, want [1]", got)
	}
}

func TestController_Delete(t *testing.T) {
	inv := model.NewInventory(
		model.Record{ID: 1, Title: "One"},
		model.Record{ID: 2, Title: "Two"},
		model.Record{ID: 3, Title: "Three"},
	)

	out := runController(t, inv, newGateway(t), "d\nabc\n2\nx\n")

	if got := recordIDs(inv); !reflect.DeepEqual(got, []int{1, 3}) {
		t.Errorf("IDs = %v, want [1 3]", got)
	}
	if !strings.Contains(out, "That is not an integer") {
		t.Error("non-integer ID was not rejected")
	}
	if !strings.Contains(out, "The CD was removed") {
		t.Error("missing removal message")
	}
}

func TestController_DeleteNotFound(t *testing.T) {
	records := []model.Record{{ID: 1, Title: "One", Artist: "A"}}
	inv := model.NewInventory(records...)

	out := runController(t, inv, newGateway(t), "d\n5\nx\n")

	if !strings.Contains(out, "Could not find this CD!") {
		t.Error("missing not-found message")
	}
	if got := inv.List(); !reflect.DeepEqual(got, records) {
		t.Errorf("inventory = %+v, want %+v", got, records)
	}
}

func TestController_DeleteDuplicateRemovesFirst(t *testing.T) {
	inv := model.NewInventory(
		model.Record{ID: 5, Title: "First"},
		model.Record{ID: 5, Title: "Second"},
	)

	runController(t, inv, newGateway(t), "d\n5\nx\n")

	got := inv.List()
	if len(got) != 1 || got[0].Title != "Second" {
		t.Errorf("inventory = %+v, want only Second", got)
	}
}

func TestController_SaveExitReloadScenario(t *testing.T) {
	gw := newGateway(t)

	// First session: add, save, exit.
	first := model.NewInventory()
	runController(t, first, gw, "a\n1\nAbbey Road\nThe Beatles\ns\ny\nx\n")

	// Second session starts empty and loads.
	second := model.NewInventory()
	out := runController(t, second, gw, "i\nl\nyes\nx\n")

	want := []model.Record{{ID: 1, Title: "Abbey Road", Artist: "The Beatles"}}
	if got := second.List(); !reflect.DeepEqual(got, want) {
		t.Errorf("reloaded inventory = %+v, want %+v", got, want)
	}
	if !strings.Contains(out, "1\tAbbey Road (by:The Beatles)") {
		t.Errorf("output missing reloaded row:\n%s", out)
	}
}

func TestController_SaveDeclined(t *testing.T) {
	gw := newGateway(t)
	inv := model.NewInventory(model.Record{ID: 1})

	out := runController(t, inv, gw, "s\nn\n\nx\n")

	if !strings.Contains(out, "The inventory was NOT saved to file.") {
		t.Error("missing not-saved message")
	}
	if _, err := os.Stat(gw.Path()); !os.IsNotExist(err) {
		t.Errorf("inventory file exists after declined save (stat err = %v)", err)
	}
}

func TestController_SaveFailureIsFatal(t *testing.T) {
	diskFull := errors.New("disk full")
	ctrl := NewController(
		model.NewInventory(model.Record{ID: 1}),
		failingStore{err: diskFull},
		strings.NewReader("s\ny\nx\n"),
		&bytes.Buffer{},
		logging.Discard(),
	)

	if err := ctrl.Run(); !errors.Is(err, diskFull) {
		t.Errorf("Run() error = %v, want %v", err, diskFull)
	}
}

func TestController_LoadCancelled(t *testing.T) {
	gw := newGateway(t)
	if err := gw.Save([]model.Record{{ID: 99}}); err != nil {
		t.Fatal(err)
	}
	inv := model.NewInventory(model.Record{ID: 1})

	out := runController(t, inv, gw, "l\nno\n\nx\n")

	if !strings.Contains(out, "Inventory data NOT reloaded") {
		t.Error("missing cancellation message")
	}
	if got := recordIDs(inv); !reflect.DeepEqual(got, []int{1}) {
		t.Errorf("IDs = %v, want [1]", got)
	}
}

func TestController_LoadConfirmationCaseInsensitive(t *testing.T) {
	gw := newGateway(t)
	if err := gw.Save([]model.Record{{ID: 99}}); err != nil {
		t.Fatal(err)
	}
	inv := model.NewInventory(model.Record{ID: 1})

	runController(t, inv, gw, "L\nYES\nx\n")

	if got := recordIDs(inv); !reflect.DeepEqual(got, []int{99}) {
		t.Errorf("IDs = %v, want [99]", got)
	}
}

func TestController_LoadMissingFileKeepsInventory(t *testing.T) {
	inv := model.NewInventory(model.Record{ID: 1}, model.Record{ID: 2})

	out := runController(t, inv, newGateway(t), "l\nyes\nx\n")

	if !strings.Contains(out, "No saved inventory found") {
		t.Error("missing no-data notice")
	}
	if got := recordIDs(inv); !reflect.DeepEqual(got, []int{1, 2}) {
		t.Errorf("IDs = %v, want [1 2]", got)
	}
}

func TestController_LoadCorruptFileKeepsInventory(t *testing.T) {
	gw := newGateway(t)
	if err := os.WriteFile(gw.Path(), []byte("garbage"), 0644); err != nil {
		t.Fatal(err)
	}
	inv := model.NewInventory(model.Record{ID: 1})

	out := runController(t, inv, gw, "l\nyes\nx\n")

	if !strings.Contains(out, "Could not load the inventory") {
		t.Errorf("missing load error:\n%s", out)
	}
	if got := recordIDs(inv); !reflect.DeepEqual(got, []int{1}) {
		t.Errorf("IDs = %v, want [1]", got)
	}
}

func TestController_ExitDoesNotSave(t *testing.T) {
	gw := newGateway(t)
	inv := model.NewInventory()

	runController(t, inv, gw, "a\n1\nT\nA\nx\n")

	if _, err := os.Stat(gw.Path()); !os.IsNotExist(err) {
		t.Errorf("inventory file written on exit (stat err = %v)", err)
	}
}

func TestController_EndOfInputExits(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"at menu", ""},
		{"during id prompt", "a\nabc\n"},
		{"during load confirmation", "l\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := model.NewInventory()
			runController(t, inv, newGateway(t), tt.input)
			if inv.Len() != 0 {
				t.Errorf("Len = %d, want 0", inv.Len())
			}
		})
	}
}

func TestController_LastLineWithoutNewline(t *testing.T) {
	inv := model.NewInventory()

	runController(t, inv, newGateway(t), "a\n3\nTitle\nArtist")

	if got := recordIDs(inv); !reflect.DeepEqual(got, []int{3}) {
		t.Errorf("IDs = %v, want [3]", got)
	}
}
