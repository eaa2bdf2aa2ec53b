package cli

import (
	"fmt"

	"github.com/idilsaglam/shoplist/internal/model"
	"github.com/idilsaglam/shoplist/internal/ui"
)

// Lines renders a snapshot for `ls`.
func Lines(s model.Snapshot) []string {
	t := ui.Current()
	lines := []string{
		fmt.Sprintf("%s   %s %d  %s %d", t.Title.Render("Shopping List"),
			t.Success.Render(t.SymListed), len(s.Listings),
			t.Draft.Render(t.SymDraft), len(s.Drafts)),
		"",
	}

	if len(s.Listings) == 0 {
		lines = append(lines, t.Muted.Render("no items"))
	}
	for i, it := range s.Listings {
		lines = append(lines, fmt.Sprintf("%s %-24s %s",
			t.Muted.Render(fmt.Sprintf("%2d.", i+1)), ui.Truncate(it.Name, 24), t.Price.Render(model.FormatPrice(it.Price))))
	}

	if len(s.Drafts) > 0 {
		lines = append(lines, "", t.Accent.Render("Prompts"))
	}
	for i, d := range s.Drafts {
		lines = append(lines, fmt.Sprintf("%s %s %-22s %s",
			t.Muted.Render(fmt.Sprintf("%2d.", i+1)), t.Draft.Render(t.SymDraft), ui.Truncate(d.Name, 22), d.Price))
	}

	lines = append(lines, "",
		t.Accent.Render("Total:")+" "+t.Price.Render(model.FormatPrice(s.Total)),
		t.Muted.Render("Tip: add with `shoplist add Milk 1.29`"))
	return lines
}
