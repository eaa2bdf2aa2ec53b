package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/idilsaglam/shoplist/internal/model"
	"github.com/idilsaglam/shoplist/internal/ui"
)

type pane int

const (
	paneListings pane = iota
	panePrompts
)

const nameWidth = 24

// Model is the Bubble Tea model. It never keeps its own copy of list
// state: key presses become List calls and View renders a fresh Snapshot.
type Model struct {
	list   *model.List
	focus  pane
	cursor [2]int

	// Inline prompt editor
	editing bool
	editID  uuid.UUID
	field   int // 0 name, 1 price
	name    textinput.Model
	price   textinput.Model
	editErr string

	status string // last failed action, cleared on the next key

	keys     keyMap
	editKeys editKeyMap
	help     help.Model
}

// New returns a TUI model driving l.
func New(l *model.List) Model {
	name := textinput.New()
	name.Prompt = "name  "
	name.Placeholder = "Item name..."
	name.CharLimit = 120

	price := textinput.New()
	price.Prompt = "price "
	price.Placeholder = "0.00"
	price.CharLimit = 16

	m := Model{
		list:     l,
		name:     name,
		price:    price,
		keys:     defaultKeys(),
		editKeys: defaultEditKeys(),
		help:     help.New(),
	}
	if len(l.Listings()) == 0 && len(l.Drafts()) > 0 {
		m.focus = panePrompts
	}
	return m
}

// Run starts the interactive list on the alternate screen and returns when
// the user quits. Saving is up to the caller.
func Run(l *model.List) error {
	p := tea.NewProgram(New(l), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.help.Width = ws.Width
		return m, nil
	}
	if m.editing {
		return m.updateEditor(msg)
	}

	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	m.status = ""
	snap := m.list.Snapshot()
	switch {
	case key.Matches(km, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(km, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(km, m.keys.Switch):
		m.focus = 1 - m.focus
	case key.Matches(km, m.keys.Up):
		if m.cursor[m.focus] > 0 {
			m.cursor[m.focus]--
		}
	case key.Matches(km, m.keys.Down):
		if m.cursor[m.focus] < m.paneLen(snap, m.focus)-1 {
			m.cursor[m.focus]++
		}
	case key.Matches(km, m.keys.Add):
		m.list.AddDraft()
		m.focus = panePrompts
		m.cursor[panePrompts] = len(m.list.Drafts()) - 1
	case key.Matches(km, m.keys.Edit):
		if m.focus == panePrompts && len(snap.Drafts) > 0 {
			return m.openEditor(snap.Drafts[m.cursor[panePrompts]])
		}
	case key.Matches(km, m.keys.Cancel):
		if m.focus == panePrompts && len(snap.Drafts) > 0 {
			if err := m.list.CancelDraft(snap.Drafts[m.cursor[panePrompts]].ID); err != nil {
				m.status = "cancel: " + err.Error()
			}
		}
	case key.Matches(km, m.keys.Delist):
		if m.focus == paneListings && len(snap.Listings) > 0 {
			if _, err := m.list.Delist(snap.Listings[m.cursor[paneListings]].ID); err != nil {
				m.status = "remove: " + err.Error()
			}
		}
	}
	m.clampCursors()
	return m, nil
}

func (m Model) openEditor(d model.Draft) (tea.Model, tea.Cmd) {
	m.editing = true
	m.editID = d.ID
	m.editErr = ""
	m.field = 0
	m.name.SetValue(d.Name)
	m.name.CursorEnd()
	m.price.SetValue(d.Price)
	m.price.CursorEnd()
	m.price.Blur()
	return m, m.name.Focus()
}

func (m Model) closeEditor() Model {
	m.editing = false
	m.editErr = ""
	m.name.Blur()
	m.price.Blur()
	return m
}

func (m Model) updateEditor(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(km, m.editKeys.Confirm):
			_, err := m.list.ConfirmDraft(m.editID, m.name.Value(), m.price.Value())
			if err != nil {
				if errors.Is(err, model.ErrNotFound) {
					m = m.closeEditor()
					m.status = "confirm: " + err.Error()
					m.clampCursors()
					return m, nil
				}
				m.editErr = validationMessage(err)
				return m, nil
			}
			m = m.closeEditor()
			m.clampCursors()
			return m, nil
		case key.Matches(km, m.editKeys.Close):
			err := m.list.UpdateDraft(m.editID, m.name.Value(), m.price.Value())
			m = m.closeEditor()
			if err != nil {
				m.status = "edit: " + err.Error()
			}
			m.clampCursors()
			return m, nil
		case key.Matches(km, m.editKeys.Next):
			m.field = 1 - m.field
			if m.field == 0 {
				m.price.Blur()
				return m, m.name.Focus()
			}
			m.name.Blur()
			return m, m.price.Focus()
		}
	}
	var cmd tea.Cmd
	if m.field == 0 {
		m.name, cmd = m.name.Update(msg)
	} else {
		m.price, cmd = m.price.Update(msg)
	}
	return m, cmd
}

func validationMessage(err error) string {
	switch {
	case errors.Is(err, model.ErrInvalidName):
		return "Name cannot be empty"
	case errors.Is(err, model.ErrInvalidPrice):
		return "Price must be a number ≥ 0"
	}
	return err.Error()
}

func (m Model) paneLen(s model.Snapshot, p pane) int {
	if p == paneListings {
		return len(s.Listings)
	}
	return len(s.Drafts)
}

func (m *Model) clampCursors() {
	s := m.list.Snapshot()
	for _, p := range []pane{paneListings, panePrompts} {
		n := m.paneLen(s, p)
		if m.cursor[p] >= n {
			m.cursor[p] = n - 1
		}
		if m.cursor[p] < 0 {
			m.cursor[p] = 0
		}
	}
}

func (m Model) View() string {
	t := ui.Current()
	s := m.list.Snapshot()

	var b strings.Builder
	b.WriteString(t.Title.Render("Shopping List"))
	b.WriteString("\n\n")

	b.WriteString(m.header("Listings", paneListings))
	if len(s.Listings) == 0 {
		b.WriteString(t.Muted.Render("  no items") + "\n")
	}
	for i, it := range s.Listings {
		line := fmt.Sprintf("%s %-*s %s", t.SymListed, nameWidth, ui.Truncate(it.Name, nameWidth), t.Price.Render(model.FormatPrice(it.Price)))
		b.WriteString(m.row(line, paneListings, i))
	}

	b.WriteString("\n")
	b.WriteString(m.header("Prompts", panePrompts))
	if len(s.Drafts) == 0 {
		b.WriteString(t.Muted.Render("  press a to add an item") + "\n")
	}
	for i, d := range s.Drafts {
		line := fmt.Sprintf("%s %-*s %s", t.SymDraft, nameWidth, ui.Truncate(d.Name, nameWidth), t.Draft.Render(d.Price))
		b.WriteString(m.row(line, panePrompts, i))
	}

	b.WriteString("\n")
	b.WriteString(t.Accent.Render("Total: ") + t.Price.Render(model.FormatPrice(s.Total)))
	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(t.Error.Render("✖ "+m.status) + "\n")
	}

	if m.editing {
		title := "Edit prompt"
		if m.editErr != "" {
			title += "  " + t.Error.Render(m.editErr)
		}
		box := t.Border.Render(title + "\n" + m.name.View() + "\n" + m.price.View())
		b.WriteString("\n" + box + "\n")
		b.WriteString(m.help.View(m.editKeys))
	} else {
		b.WriteString("\n" + m.help.View(m.keys))
	}
	return ui.PanelString(b.String())
}

func (m Model) header(title string, p pane) string {
	t := ui.Current()
	if m.focus == p {
		return t.Accent.Render("▸ "+title) + "\n"
	}
	return t.Muted.Render("  "+title) + "\n"
}

func (m Model) row(line string, p pane, i int) string {
	if m.focus == p && m.cursor[p] == i {
		return ui.Current().Selected.Render("> ") + line + "\n"
	}
	return "  " + line + "\n"
}
