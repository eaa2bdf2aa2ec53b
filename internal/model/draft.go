package model

import "github.com/google/uuid"

const (
	defaultDraftName  = "New Item"
	defaultDraftPrice = "0.00"
)

// Draft is a pending prompt. Name and Price hold the text as the user typed
// it; nothing is validated until the draft is confirmed.
type Draft struct {
	ID    uuid.UUID
	Name  string
	Price string
}

// NewDraft returns a fresh blank draft. Every call yields a new value.
func NewDraft() Draft {
	return Draft{ID: uuid.New(), Name: defaultDraftName, Price: defaultDraftPrice}
}

// DraftFromItem pre-fills a new draft with an item's name and price.
func DraftFromItem(it Item) Draft {
	return Draft{ID: uuid.New(), Name: it.Name, Price: it.PriceText()}
}
