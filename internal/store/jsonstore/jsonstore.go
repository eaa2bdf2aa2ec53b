package jsonstore

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"

	"github.com/idilsaglam/shoplist/internal/model"
)

// JSON-backed storage. Single file, human-readable, portable.
// No locking; the file is read once on start and written once on exit.

const DefaultFileName = "shoplist.json"

// Store reads and writes one list file.
type Store struct {
	path string
}

func New(path string) *Store { return &Store{path: path} }

// DefaultPath is DefaultFileName in the working directory.
func DefaultPath() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getwd: %w", err)
	}
	return filepath.Join(wd, DefaultFileName), nil
}

func (s *Store) Path() string { return s.path }

// file is the on-disk layout.
type file struct {
	Listings []record `json:"listings"`
	Prompts  []record `json:"prompts"`
}

// record prices are JSON numbers, except a draft whose text does not parse,
// which is kept as a JSON string so it can be edited again.
type record struct {
	Name  string          `json:"name"`
	Price json.RawMessage `json:"price"`
}

// Load returns the stored listings and drafts. A missing file is an empty
// list. Any malformed entry fails the whole load.
func (s *Store) Load() ([]model.Item, []model.Draft, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []model.Item{}, []model.Draft{}, nil
		}
		return nil, nil, fmt.Errorf("read file: %w", err)
	}
	var fp *file
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&fp); err != nil {
		return nil, nil, fmt.Errorf("json unmarshal %s: %w", s.path, err)
	}
	if fp == nil {
		return nil, nil, fmt.Errorf("json unmarshal %s: top-level value is null", s.path)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, nil, fmt.Errorf("json unmarshal %s: trailing data after list object", s.path)
	}
	f := *fp

	items := make([]model.Item, 0, len(f.Listings))
	for i, r := range f.Listings {
		txt, err := priceText(r.Price)
		if err != nil {
			return nil, nil, fmt.Errorf("listings[%d]: %w", i, err)
		}
		it, err := model.NewItem(r.Name, txt)
		if err != nil {
			return nil, nil, fmt.Errorf("listings[%d]: %w", i, err)
		}
		items = append(items, it)
	}

	drafts := make([]model.Draft, 0, len(f.Prompts))
	for i, r := range f.Prompts {
		txt, err := priceText(r.Price)
		if err != nil {
			return nil, nil, fmt.Errorf("prompts[%d]: %w", i, err)
		}
		d := model.NewDraft()
		d.Name, d.Price = r.Name, txt
		drafts = append(drafts, d)
	}
	return items, drafts, nil
}

// Save overwrites the file with the snapshot. The write goes through a
// temporary file in the same directory followed by a rename.
func (s *Store) Save(snap model.Snapshot) error {
	f := file{
		Listings: make([]record, 0, len(snap.Listings)),
		Prompts:  make([]record, 0, len(snap.Drafts)),
	}
	for _, it := range snap.Listings {
		f.Listings = append(f.Listings, record{Name: it.Name, Price: json.RawMessage(it.PriceText())})
	}
	for _, d := range snap.Drafts {
		f.Prompts = append(f.Prompts, record{Name: d.Name, Price: draftPrice(d.Price)})
	}

	b, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".shoplist-*.json")
	if err != nil {
		return fmt.Errorf("create temp: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(append(b, '\n')); err != nil {
		tmp.Close()
		return fmt.Errorf("write file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close file: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("chmod: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("rename: %w", err)
	}
	return nil
}

func draftPrice(txt string) json.RawMessage {
	if p, err := model.ParsePrice(txt); err == nil {
		return json.RawMessage(p.StringFixed(2))
	}
	b, _ := json.Marshal(txt)
	return b
}

// priceText turns a stored price (number or string) back into text.
func priceText(raw json.RawMessage) (string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "", errors.New("missing price")
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", fmt.Errorf("price: %w", err)
		}
		return s, nil
	}
	d, err := decimal.NewFromString(string(raw))
	if err != nil {
		return "", fmt.Errorf("price %s: not a number", raw)
	}
	return d.StringFixed(2), nil
}
