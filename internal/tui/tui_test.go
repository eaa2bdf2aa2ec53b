package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/shoplist/internal/model"
)

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	tab   = tea.KeyMsg{Type: tea.KeyTab}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
)

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		if !ok {
			t.Fatalf("Update returned %T", next)
		}
	}
	return m
}

func TestTUI_AddEditConfirm(t *testing.T) {
	l := model.New(nil, nil)
	m := send(t, New(l), runes("a"))
	if len(l.Drafts()) != 1 || m.focus != panePrompts {
		t.Fatalf("expected one draft and prompts focus, got %d drafts focus %d", len(l.Drafts()), m.focus)
	}

	m = send(t, m, enter)
	if !m.editing {
		t.Fatalf("expected editor open")
	}
	if m.name.Value() != "New Item" || m.price.Value() != "0.00" {
		t.Fatalf("editor not prefilled: %q %q", m.name.Value(), m.price.Value())
	}

	m.name.SetValue("")
	m = send(t, m, runes("Eggs"), tab)
	m.price.SetValue("")
	m = send(t, m, runes("2.50"), enter)
	if m.editing {
		t.Fatalf("editor should close after confirm, err=%q", m.editErr)
	}
	got := l.Listings()
	if len(got) != 1 || got[0].Name != "Eggs" || got[0].PriceText() != "2.50" {
		t.Fatalf("unexpected listings: %+v", got)
	}
	if len(l.Drafts()) != 0 {
		t.Fatalf("draft should be gone")
	}
	if !strings.Contains(m.View(), "Total: ") || !strings.Contains(m.View(), "2.50€") {
		t.Fatalf("view missing total:\n%s", m.View())
	}
}

func TestTUI_InvalidConfirmKeepsDraft(t *testing.T) {
	l := model.New(nil, nil)
	m := send(t, New(l), runes("a"), enter)
	m.price.SetValue("-1")
	m = send(t, m, enter)
	if !m.editing {
		t.Fatalf("editor should stay open on invalid price")
	}
	if m.editErr == "" || !strings.Contains(m.View(), m.editErr) {
		t.Fatalf("expected inline error, got %q", m.editErr)
	}
	if len(l.Listings()) != 0 || len(l.Drafts()) != 1 {
		t.Fatalf("state changed on invalid confirm: %+v", l.Snapshot())
	}

	m.name.SetValue("  ")
	m.price.SetValue("1")
	m = send(t, m, enter)
	if m.editErr != "Name cannot be empty" {
		t.Fatalf("expected name error, got %q", m.editErr)
	}
}

func TestTUI_EscKeepsEditedText(t *testing.T) {
	l := model.New(nil, nil)
	m := send(t, New(l), runes("a"), enter)
	m.name.SetValue("Butter")
	m.price.SetValue("cheap")
	m = send(t, m, esc)
	if m.editing {
		t.Fatalf("esc should close editor")
	}
	d := l.Drafts()[0]
	if d.Name != "Butter" || d.Price != "cheap" {
		t.Fatalf("edited text not kept: %+v", d)
	}
}

func TestTUI_DelistAndCancel(t *testing.T) {
	l := model.New(nil, nil)
	if _, err := l.Add("Wine", "8"); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if _, err := l.Add("Milk", "1.29"); err != nil {
		t.Fatalf("Add: %v", err)
	}
	m := New(l)
	if m.focus != paneListings {
		t.Fatalf("expected listings focus")
	}

	m = send(t, m, runes("j"), runes("d"))
	if len(l.Listings()) != 1 || l.Listings()[0].Name != "Wine" {
		t.Fatalf("expected Milk delisted, got %+v", l.Listings())
	}
	if len(l.Drafts()) != 1 || l.Drafts()[0].Name != "Milk" {
		t.Fatalf("expected Milk back as draft, got %+v", l.Drafts())
	}
	if l.TotalString() != "8.00€" {
		t.Fatalf("expected 8.00€, got %s", l.TotalString())
	}
	if m.cursor[paneListings] != 0 {
		t.Fatalf("cursor not clamped: %d", m.cursor[paneListings])
	}

	m = send(t, m, tab, runes("x"))
	if len(l.Drafts()) != 0 {
		t.Fatalf("expected draft cancelled")
	}
	if l.TotalString() != "8.00€" {
		t.Fatalf("cancel changed total: %s", l.TotalString())
	}
}

func TestTUI_QuitReturnsQuitCmd(t *testing.T) {
	m := New(model.New(nil, nil))
	_, cmd := m.Update(runes("q"))
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}

func TestTUI_QInsideEditorIsText(t *testing.T) {
	l := model.New(nil, nil)
	m := send(t, New(l), runes("a"), enter)
	m.name.SetValue("")
	m = send(t, m, runes("q"))
	if !m.editing || m.name.Value() != "q" {
		t.Fatalf("q should type into the editor, got editing=%v name=%q", m.editing, m.name.Value())
	}
}

func TestTUI_FailedActionsShowStatus(t *testing.T) {
	l := model.New(nil, nil)
	m := send(t, New(l), runes("a"), enter)
	// The draft disappears while its editor is open.
	if err := l.CancelDraft(m.editID); err != nil {
		t.Fatalf("CancelDraft: %v", err)
	}
	m = send(t, m, esc)
	if m.editing {
		t.Fatalf("esc should close editor")
	}
	if !strings.Contains(m.status, "not found") || !strings.Contains(m.View(), m.status) {
		t.Fatalf("expected status for lost draft, got %q", m.status)
	}

	m = send(t, m, runes("a"))
	if m.status != "" {
		t.Fatalf("status should clear on the next key, got %q", m.status)
	}

	m = send(t, m, enter)
	if err := l.CancelDraft(m.editID); err != nil {
		t.Fatalf("CancelDraft: %v", err)
	}
	m = send(t, m, enter)
	if m.editing || !strings.Contains(m.status, "confirm") {
		t.Fatalf("expected editor closed with confirm status, got editing=%v status=%q", m.editing, m.status)
	}
}
