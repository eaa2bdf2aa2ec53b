package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles the styles every renderer pulls from.
type Theme struct {
	Title, Muted, Accent, Success, Error, Price lipgloss.Style
	Selected, Draft, Border                     lipgloss.Style
	SymListed, SymDraft                         string
}

var current = classic()

func classic() Theme {
	return Theme{
		Title:     lipgloss.NewStyle().Bold(true),
		Muted:     lipgloss.NewStyle().Faint(true),
		Accent:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Success:   lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Price:     lipgloss.NewStyle().Foreground(lipgloss.Color("#65CF33")),
		Selected:  lipgloss.NewStyle().Bold(true).Reverse(true),
		Draft:     lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Border:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("8")).Padding(0, 1),
		SymListed: "•",
		SymDraft:  "✎",
	}
}

func mono() Theme {
	plain := lipgloss.NewStyle()
	return Theme{
		Title: plain, Muted: plain, Accent: plain, Success: plain,
		Error: plain, Price: plain, Draft: plain,
		Selected:  plain.Reverse(true),
		Border:    plain.Border(lipgloss.NormalBorder()).Padding(0, 1),
		SymListed: "-",
		SymDraft:  "+",
	}
}

// SetTheme selects "classic" or "mono"; unknown names fall back to classic.
func SetTheme(name string) {
	switch strings.ToLower(name) {
	case "mono":
		current = mono()
	default:
		current = classic()
	}
}

func Current() Theme { return current }
