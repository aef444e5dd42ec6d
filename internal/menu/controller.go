package menu

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cdinventory/cdinventory/internal/model"
	"github.com/cdinventory/cdinventory/internal/store"
	"github.com/sirupsen/logrus"
)

// Command is a single-letter menu command.
type Command byte

const (
	CmdLoad    Command = 'l'
	CmdAdd     Command = 'a'
	CmdInspect Command = 'i'
	CmdDelete  Command = 'd'
	CmdSave    Command = 's'
	CmdExit    Command = 'x'
)

// ParseCommand maps user input to a Command. Input is trimmed and
// case-insensitive; anything but the six menu letters is rejected.
func ParseCommand(input string) (Command, bool) {
	s := strings.ToLower(strings.TrimSpace(input))
	if len(s) != 1 {
		return 0, false
	}
	switch c := Command(s[0]); c {
	case CmdLoad, CmdAdd, CmdInspect, CmdDelete, CmdSave, CmdExit:
		return c, true
	}
	return 0, false
}

var (
	// ErrNotInteger is returned by ParseID for input that is not a whole number.
	ErrNotInteger = errors.New("That is not an integer")

	// ErrIDRange is returned by ParseID for whole numbers too large for an ID.
	ErrIDRange = errors.New("ID out of range")
)

// ParseID parses an integer record ID from user input. The error is
// ErrNotInteger or ErrIDRange and is meant to be shown to the user.
func ParseID(input string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(input))
	if errors.Is(err, strconv.ErrRange) {
		return 0, ErrIDRange
	}
	if err != nil {
		return 0, ErrNotInteger
	}
	return id, nil
}

// Persister saves and restores the whole inventory.
type Persister interface {
	Save(records []model.Record) error
	Load() ([]model.Record, error)
}

// Controller runs the command loop. It is the only owner of the
// inventory while it runs.
type Controller struct {
	inv *model.Inventory
	db  Persister
	in  *bufio.Reader
	out io.Writer
	log *logrus.Logger
}

// NewController creates a Controller reading commands from in and
// writing prompts and listings to out.
func NewController(inv *model.Inventory, db Persister, in io.Reader, out io.Writer, log *logrus.Logger) *Controller {
	return &Controller{
		inv: inv,
		db:  db,
		in:  bufio.NewReader(in),
		out: out,
		log: log,
	}
}

// Run executes the command loop until the exit command or end of input.
//
// Input errors are handled by re-prompting. The only error returned is
// an unrecoverable one, such as a failed save.
func (c *Controller) Run() error {
	for {
		printMenu(c.out)
		cmd, err := c.menuChoice()
		if err != nil {
			return endOfInput(err)
		}
		c.log.WithField("command", string(rune(cmd))).Debug("Dispatching command")

		switch cmd {
		case CmdExit:
			return nil
		case CmdLoad:
			err = c.load()
		case CmdAdd:
			err = c.add()
		case CmdInspect:
			c.show()
		case CmdDelete:
			err = c.delete()
		case CmdSave:
			err = c.save()
		default:
			// Unreachable: menuChoice only returns menu letters.
			fmt.Fprintln(c.out, "General Error")
		}
		if err != nil {
			return endOfInput(err)
		}
	}
}

// LoadInventory replaces the inventory with the saved file's contents.
// A missing file leaves the inventory unchanged and prints a notice;
// a corrupt file does the same and prints the error.
func (c *Controller) LoadInventory() {
	records, err := c.db.Load()
	switch {
	case errors.Is(err, store.ErrNoData):
		c.log.Info("No inventory file to load")
		fmt.Fprintln(c.out, "No saved inventory found. Nothing was loaded.")
	case err != nil:
		c.log.WithError(err).Warn("Failed to load inventory")
		fmt.Fprintf(c.out, "Could not load the inventory: %v\n", err)
		fmt.Fprintln(c.out, "The current inventory was kept.")
	default:
		c.inv.Replace(records)
		c.log.WithField("records", len(records)).Info("Loaded inventory")
	}
}

func (c *Controller) load() error {
	fmt.Fprintln(c.out, "WARNING: If you continue, all unsaved data will be lost and the Inventory re-loaded from file.")
	answer, err := c.readLine("type 'yes' to continue and reload from file. otherwise reload will be canceled: ")
	if err != nil {
		return err
	}

	if strings.EqualFold(strings.TrimSpace(answer), "yes") {
		fmt.Fprintln(c.out, "reloading...")
		c.LoadInventory()
		c.show()
		return nil
	}

	if _, err := c.readLine("canceling... Inventory data NOT reloaded. Press [ENTER] to continue to the menu."); err != nil {
		return err
	}
	c.show()
	return nil
}

func (c *Controller) add() error {
	id, err := c.readID("Enter ID: ")
	if err != nil {
		return err
	}
	title, err := c.readLine("What is the CD's title? ")
	if err != nil {
		return err
	}
	artist, err := c.readLine("What is the Artist's name? ")
	if err != nil {
		return err
	}

	c.inv.Add(model.NewRecord(id, title, artist))
	c.show()
	return nil
}

func (c *Controller) delete() error {
	c.show()
	id, err := c.readID("Which ID would you like to delete? ")
	if err != nil {
		return err
	}

	if c.inv.Delete(id) {
		fmt.Fprintln(c.out, "The CD was removed")
	} else {
		fmt.Fprintln(c.out, "Could not find this CD!")
	}
	c.show()
	return nil
}

func (c *Controller) save() error {
	c.show()
	answer, err := c.readLine("Save this inventory to file? [y/n] ")
	if err != nil {
		return err
	}

	if strings.ToLower(strings.TrimSpace(answer)) != "y" {
		_, err := c.readLine("The inventory was NOT saved to file. Press [ENTER] to return to the menu.")
		return err
	}

	if err := c.db.Save(c.inv.List()); err != nil {
		return fmt.Errorf("save inventory: %w", err)
	}
	c.log.WithField("records", c.inv.Len()).Info("Saved inventory")
	return nil
}

func (c *Controller) show() {
	ShowInventory(c.out, c.inv.List())
}

// menuChoice prompts until one of the six menu letters is entered.
func (c *Controller) menuChoice() (Command, error) {
	for {
		line, err := c.readLine("Which operation would you like to perform? [l, a, i, d, s or x]: ")
		if err != nil {
			return 0, err
		}
		if cmd, ok := ParseCommand(line); ok {
			fmt.Fprintln(c.out)
			return cmd, nil
		}
	}
}

// readID prompts until the input parses as an integer.
func (c *Controller) readID(prompt string) (int, error) {
	for {
		line, err := c.readLine(prompt)
		if err != nil {
			return 0, err
		}
		id, err := ParseID(line)
		if err == nil {
			return id, nil
		}
		fmt.Fprintln(c.out, err)
	}
}

// readLine prints prompt and returns the next input line with
// surrounding whitespace removed. A final line without a newline is
// returned normally; io.EOF is returned only when no input is left.
func (c *Controller) readLine(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)
	line, err := c.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// endOfInput turns a closed input stream into a normal exit.
func endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
