// Package tui provides a Bubble Tea terminal user interface for cdinventory.
package tui

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/cdinventory/cdinventory/internal/menu"
	"github.com/cdinventory/cdinventory/internal/model"
	"github.com/cdinventory/cdinventory/internal/store"
	"github.com/mattn/go-isatty"
)

// ErrNotTerminal is returned by Run when standard input is not a terminal.
var ErrNotTerminal = errors.New("cdinventory-tui needs an interactive terminal; use cdinventory instead")

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(0, 1)

	recordStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F8B500"))
)

// State represents the current UI state.
type State int

const (
	StateMenu State = iota
	StateAddID
	StateAddTitle
	StateAddArtist
	StateDeleteID
	StateConfirmLoad
	StateConfirmSave
)

// Level is the severity of a status line.
type Level int

const (
	LevelInfo Level = iota
	LevelSuccess
	LevelWarning
	LevelError
)

// idCharLimit caps the ID fields; titles and artists are unlimited.
const idCharLimit = 24

// Persister saves and restores the whole inventory.
type Persister interface {
	Save(records []model.Record) error
	Load() ([]model.Record, error)
}

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state State
	input textinput.Model
	inv   *model.Inventory
	db    Persister

	// Record being built by the add form
	draft model.Record

	status      string
	statusLevel Level
	inputErr    string

	width  int
	height int
}

// NewModel creates a new TUI model over inv, persisted through db.
func NewModel(inv *model.Inventory, db Persister) Model {
	ti := textinput.New()
	ti.Width = 50

	return Model{
		state: StateMenu,
		input: ti,
		inv:   inv,
		db:    db,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Message types
type (
	// LoadDoneMsg is sent when the inventory file has been read.
	LoadDoneMsg struct {
		Records []model.Record
		Err     error
	}

	// SaveDoneMsg is sent when the inventory file has been written.
	SaveDoneMsg struct {
		Count int
		Err   error
	}
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case LoadDoneMsg:
		switch {
		case errors.Is(msg.Err, store.ErrNoData):
			m.setStatus("No saved inventory found. Nothing was loaded.", LevelWarning)
		case msg.Err != nil:
			m.setStatus(fmt.Sprintf("Could not load the inventory: %v", msg.Err), LevelError)
		default:
			m.inv.Replace(msg.Records)
			m.setStatus(fmt.Sprintf("Loaded %d record(s)", len(msg.Records)), LevelSuccess)
		}
		return m, nil

	case SaveDoneMsg:
		if msg.Err != nil {
			m.setStatus(fmt.Sprintf("Could not save the inventory: %v", msg.Err), LevelError)
		} else {
			m.setStatus(fmt.Sprintf("Saved %d record(s)", msg.Count), LevelSuccess)
		}
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.state == StateMenu {
			return m.updateMenu(msg)
		}
		return m.updateInput(msg)
	}

	return m, nil
}

func (m Model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := strings.ToLower(msg.String())
	if key == "q" || key == "esc" {
		return m, tea.Quit
	}

	cmd, ok := menu.ParseCommand(key)
	if !ok {
		return m, nil
	}

	switch cmd {
	case menu.CmdExit:
		return m, tea.Quit
	case menu.CmdInspect:
		m.setStatus(fmt.Sprintf("%d record(s) in inventory", m.inv.Len()), LevelInfo)
		return m, nil
	case menu.CmdAdd:
		m.draft = model.Record{}
		return m, m.prompt(StateAddID, "ID")
	case menu.CmdDelete:
		return m, m.prompt(StateDeleteID, "ID to delete")
	case menu.CmdLoad:
		m.setStatus("WARNING: all unsaved data will be lost and the Inventory re-loaded from file.", LevelWarning)
		return m, m.prompt(StateConfirmLoad, "type 'yes' to reload")
	case menu.CmdSave:
		m.setStatus("", LevelInfo)
		return m, m.prompt(StateConfirmSave, "save? [y/n]")
	}
	return m, nil
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.backToMenu()
		m.setStatus("Cancelled", LevelInfo)
		return m, nil
	case tea.KeyEnter:
		return m.submit(strings.TrimSpace(m.input.Value()))
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit handles the value entered in the current input state.
func (m Model) submit(value string) (tea.Model, tea.Cmd) {
	switch m.state {
	case StateAddID:
		id, err := menu.ParseID(value)
		if err != nil {
			m.rejectInput(err.Error())
			return m, nil
		}
		m.draft.ID = id
		return m, m.prompt(StateAddTitle, "CD title")

	case StateAddTitle:
		m.draft.Title = value
		return m, m.prompt(StateAddArtist, "Artist")

	case StateAddArtist:
		m.draft.Artist = value
		rec := model.NewRecord(m.draft.ID, m.draft.Title, m.draft.Artist)
		m.inv.Add(rec)
		m.backToMenu()
		m.setStatus(fmt.Sprintf("Added %s by %s", rec.Title, rec.Artist), LevelSuccess)
		return m, nil

	case StateDeleteID:
		id, err := menu.ParseID(value)
		if err != nil {
			m.rejectInput(err.Error())
			return m, nil
		}
		m.backToMenu()
		if m.inv.Delete(id) {
			m.setStatus("The CD was removed", LevelSuccess)
		} else {
			m.setStatus("Could not find this CD!", LevelWarning)
		}
		return m, nil

	case StateConfirmLoad:
		m.backToMenu()
		if !strings.EqualFold(value, "yes") {
			m.setStatus("Inventory data NOT reloaded.", LevelInfo)
			return m, nil
		}
		m.setStatus("reloading...", LevelInfo)
		return m, m.loadCmd()

	case StateConfirmSave:
		m.backToMenu()
		if !strings.EqualFold(value, "y") {
			m.setStatus("The inventory was NOT saved to file.", LevelInfo)
			return m, nil
		}
		return m, m.saveCmd()
	}

	return m, nil
}

func (m *Model) prompt(state State, placeholder string) tea.Cmd {
	m.state = state
	m.inputErr = ""
	m.input.Reset()
	m.input.CharLimit = 0
	if state == StateAddID || state == StateDeleteID {
		m.input.CharLimit = idCharLimit
	}
	m.input.Placeholder = placeholder
	return m.input.Focus()
}

func (m *Model) rejectInput(reason string) {
	m.inputErr = reason
	m.input.Reset()
}

func (m *Model) backToMenu() {
	m.state = StateMenu
	m.inputErr = ""
	m.input.Reset()
	m.input.Blur()
}

func (m *Model) setStatus(text string, level Level) {
	m.status = text
	m.statusLevel = level
}

// loadCmd reads the inventory file.
func (m Model) loadCmd() tea.Cmd {
	db := m.db
	return func() tea.Msg {
		records, err := db.Load()
		return LoadDoneMsg{Records: records, Err: err}
	}
}

// saveCmd writes a snapshot of the inventory taken when the command is built.
func (m Model) saveCmd() tea.Cmd {
	db := m.db
	records := m.inv.List()
	return func() tea.Msg {
		return SaveDoneMsg{Count: len(records), Err: db.Save(records)}
	}
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	// Header
	b.WriteString(titleStyle.Render("💿 CD Inventory"))
	b.WriteString("\n")

	b.WriteString(m.viewInventory())
	b.WriteString("\n\n")

	if m.state == StateMenu {
		b.WriteString(m.viewMenu())
	} else {
		b.WriteString(m.viewInput())
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.renderStatus())
		b.WriteString("\n")
	}

	// Footer
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.getHelpText()))

	return b.String()
}

func (m Model) viewInventory() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render("ID\tCD Title (by: Artist)"))
	b.WriteString("\n")

	records := m.inv.List()
	if len(records) == 0 {
		b.WriteString(dimStyle.Render("(empty)"))
	}
	for i, r := range records {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(recordStyle.Render(r.String()))
	}

	return boxStyle.Render(b.String())
}

func (m Model) viewMenu() string {
	var b strings.Builder

	b.WriteString(infoStyle.Render("Menu:"))
	b.WriteString("\n")
	b.WriteString("  [l] load Inventory from file\n")
	b.WriteString("  [a] Add CD\n")
	b.WriteString("  [i] Display Current Inventory\n")
	b.WriteString("  [d] delete CD from Inventory\n")
	b.WriteString("  [s] Save Inventory to file\n")
	b.WriteString("  [x] exit\n")

	return b.String()
}

func (m Model) viewInput() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render(m.inputTitle()))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	if m.inputErr != "" {
		b.WriteString(errorStyle.Render("✗ " + m.inputErr))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) inputTitle() string {
	switch m.state {
	case StateAddID:
		return "Enter ID:"
	case StateAddTitle:
		return "What is the CD's title?"
	case StateAddArtist:
		return "What is the Artist's name?"
	case StateDeleteID:
		return "Which ID would you like to delete?"
	case StateConfirmLoad:
		return "Type 'yes' to continue and reload from file:"
	case StateConfirmSave:
		return "Save this inventory to file? [y/n]"
	}
	return ""
}

func (m Model) renderStatus() string {
	var style lipgloss.Style
	prefix := "›"
	switch m.statusLevel {
	case LevelError:
		style = errorStyle
		prefix = "✗"
	case LevelWarning:
		style = warningStyle
		prefix = "!"
	case LevelSuccess:
		style = successStyle
		prefix = "✓"
	default:
		style = infoStyle
	}
	return style.Render(prefix + " " + m.status)
}

func (m Model) getHelpText() string {
	if m.state == StateMenu {
		return "l/a/i/d/s: command • x/q: exit without saving"
	}
	return "enter: confirm • esc: back to menu"
}

// Run starts the TUI application.
func Run(inv *model.Inventory, db Persister) error {
	fd := os.Stdin.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return ErrNotTerminal
	}

	p := tea.NewProgram(NewModel(inv, db), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
