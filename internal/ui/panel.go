package ui

import (
	"fmt"
	"io"
	"strings"
)

// PanelString frames content with the theme border.
func PanelString(content string) string {
	return current.Border.Render(content)
}

// Panel writes lines inside a framed box.
func Panel(w io.Writer, lines []string) {
	fmt.Fprintln(w, PanelString(strings.Join(lines, "\n")))
}

func OK(w io.Writer, msg string)   { fmt.Fprintln(w, current.Success.Render("✔ "+msg)) }
func Fail(w io.Writer, msg string) { fmt.Fprintln(w, current.Error.Render("✖ "+msg)) }

// Truncate shortens s to at most n runes, ending with "...".
func Truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n || n < 4 {
		return s
	}
	return string(r[:n-3]) + "..."
}
