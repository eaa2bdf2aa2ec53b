package model

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// List is the authoritative shopping-list state: confirmed listings kept
// sorted by descending price, drafts in insertion order, and the running
// total of the listings. Not safe for concurrent use.
type List struct {
	confirmed []Item
	drafts    []Draft
	total     decimal.Decimal
}

// Snapshot is a copy of the list state for rendering.
type Snapshot struct {
	Listings []Item
	Drafts   []Draft
	Total    decimal.Decimal
}

// New builds a list from persisted state. Listings are re-sorted.
func New(confirmed []Item, drafts []Draft) *List {
	l := &List{
		confirmed: append([]Item(nil), confirmed...),
		drafts:    append([]Draft(nil), drafts...),
		total:     decimal.Zero,
	}
	for _, it := range l.confirmed {
		l.total = l.total.Add(it.Price)
	}
	l.sortConfirmed()
	return l
}

// AddDraft appends d, or a fresh NewDraft when no draft is given, and
// returns what was appended.
func (l *List) AddDraft(d ...Draft) Draft {
	nd := NewDraft()
	if len(d) > 0 {
		nd = d[0]
		if nd.ID == uuid.Nil {
			nd.ID = uuid.New()
		}
	}
	l.drafts = append(l.drafts, nd)
	return nd
}

// AddDraftFromItem appends a draft pre-filled from it.
func (l *List) AddDraftFromItem(it Item) Draft { return l.AddDraft(DraftFromItem(it)) }

// UpdateDraft stores edited text on a draft without validating it.
func (l *List) UpdateDraft(id uuid.UUID, name, price string) error {
	i := l.draftIndex(id)
	if i < 0 {
		return fmt.Errorf("draft %s: %w", id, ErrNotFound)
	}
	l.drafts[i].Name = name
	l.drafts[i].Price = price
	return nil
}

// ConfirmDraft turns the draft into a listing using name and price. On a
// validation failure the list is left as it was and a *ValidationError is
// returned.
func (l *List) ConfirmDraft(id uuid.UUID, name, price string) (Item, error) {
	i := l.draftIndex(id)
	if i < 0 {
		return Item{}, fmt.Errorf("draft %s: %w", id, ErrNotFound)
	}
	it, err := NewItem(name, price)
	if err != nil {
		return Item{}, err
	}
	l.drafts = append(l.drafts[:i:i], l.drafts[i+1:]...)
	l.insert(it)
	return it, nil
}

// CancelDraft drops a draft.
func (l *List) CancelDraft(id uuid.UUID) error {
	i := l.draftIndex(id)
	if i < 0 {
		return fmt.Errorf("draft %s: %w", id, ErrNotFound)
	}
	l.drafts = append(l.drafts[:i:i], l.drafts[i+1:]...)
	return nil
}

// Delist removes a listing, takes its price off the total and re-adds it
// as a new draft, which is returned.
func (l *List) Delist(id uuid.UUID) (Draft, error) {
	i := l.itemIndex(id)
	if i < 0 {
		return Draft{}, fmt.Errorf("listing %s: %w", id, ErrNotFound)
	}
	it := l.confirmed[i]
	l.confirmed = append(l.confirmed[:i:i], l.confirmed[i+1:]...)
	l.total = l.total.Sub(it.Price)
	return l.AddDraftFromItem(it), nil
}

// Add validates and lists an item directly, skipping the draft stage.
func (l *List) Add(name, price string) (Item, error) {
	it, err := NewItem(name, price)
	if err != nil {
		return Item{}, err
	}
	l.insert(it)
	return it, nil
}

func (l *List) Listings() []Item       { return append([]Item(nil), l.confirmed...) }
func (l *List) Drafts() []Draft        { return append([]Draft(nil), l.drafts...) }
func (l *List) Total() decimal.Decimal { return l.total }

// TotalString formats the total for display, e.g. "12.34€".
func (l *List) TotalString() string { return FormatPrice(l.total) }

func (l *List) Snapshot() Snapshot {
	return Snapshot{Listings: l.Listings(), Drafts: l.Drafts(), Total: l.total}
}

// FormatPrice renders a price with two decimals and the euro sign.
func FormatPrice(d decimal.Decimal) string { return d.StringFixed(2) + "€" }

func (l *List) insert(it Item) {
	l.confirmed = append(l.confirmed, it)
	l.total = l.total.Add(it.Price)
	l.sortConfirmed()
}

// Equal prices keep listing order.
func (l *List) sortConfirmed() {
	sort.SliceStable(l.confirmed, func(a, b int) bool {
		return l.confirmed[a].Price.GreaterThan(l.confirmed[b].Price)
	})
}

func (l *List) draftIndex(id uuid.UUID) int {
	for i, d := range l.drafts {
		if d.ID == id {
			return i
		}
	}
	return -1
}

func (l *List) itemIndex(id uuid.UUID) int {
	for i, it := range l.confirmed {
		if it.ID == id {
			return i
		}
	}
	return -1
}
