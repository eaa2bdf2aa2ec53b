package model

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Item is a confirmed shopping-list entry. Build one with NewItem or
// NewItemDecimal so name and price are validated. A List hands out copies,
// so changing a returned Item never reaches the list.
type Item struct {
	ID    uuid.UUID
	Name  string
	Price decimal.Decimal
}

// NewItem validates name and price text and returns an Item with the price
// rounded to cents.
func NewItem(name, price string) (Item, error) {
	n, err := validName(name)
	if err != nil {
		return Item{}, err
	}
	p, err := ParsePrice(price)
	if err != nil {
		return Item{}, err
	}
	return Item{ID: uuid.New(), Name: n, Price: p}, nil
}

// NewItemDecimal is NewItem for an already parsed price.
func NewItemDecimal(name string, price decimal.Decimal) (Item, error) {
	n, err := validName(name)
	if err != nil {
		return Item{}, err
	}
	if price.IsNegative() {
		return Item{}, &ValidationError{Field: "price", Value: price.String(), Err: ErrInvalidPrice}
	}
	return Item{ID: uuid.New(), Name: n, Price: price.Round(2)}, nil
}

// PriceText is the price with exactly two decimals, e.g. "1.50".
func (it Item) PriceText() string { return it.Price.StringFixed(2) }

// ParsePrice accepts plain decimal text ("2", "2.5", " 2.50 ") and rejects
// anything negative or non-numeric. A comma decimal separator is allowed.
func ParsePrice(s string) (decimal.Decimal, error) {
	raw := strings.TrimSpace(s)
	raw = strings.TrimSuffix(raw, "€")
	raw = strings.Replace(strings.TrimSpace(raw), ",", ".", 1)
	if raw == "" {
		return decimal.Zero, &ValidationError{Field: "price", Value: s, Err: ErrInvalidPrice}
	}
	d, err := decimal.NewFromString(raw)
	if err != nil || d.IsNegative() {
		return decimal.Zero, &ValidationError{Field: "price", Value: s, Err: ErrInvalidPrice}
	}
	return d.Round(2), nil
}

func validName(name string) (string, error) {
	n := strings.TrimSpace(name)
	if n == "" {
		return "", &ValidationError{Field: "name", Value: name, Err: ErrInvalidName}
	}
	return n, nil
}
