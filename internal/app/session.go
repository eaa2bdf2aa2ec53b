package app

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/idilsaglam/shoplist/internal/logger"
	"github.com/idilsaglam/shoplist/internal/model"
	"github.com/idilsaglam/shoplist/internal/store/jsonstore"
)

// Session is one run of the program: the list loaded from its store,
// mutated by user actions, and written back by Save.
type Session struct {
	store *jsonstore.Store
	list  *model.List
	log   zerolog.Logger
}

// Open loads the list at path. A malformed file is an error; the caller
// must not continue with partial data.
func Open(path string, log zerolog.Logger) (*Session, error) {
	s := &Session{store: jsonstore.New(path), log: logger.Component(log, "session")}
	items, drafts, err := s.store.Load()
	if err != nil {
		s.log.Error().Err(err).Str("path", path).Msg("load failed")
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	s.list = model.New(items, drafts)
	s.event(s.log.Info()).Msg("loaded")
	return s, nil
}

func (s *Session) List() *model.List { return s.list }

func (s *Session) Path() string { return s.store.Path() }

func (s *Session) Save() error {
	if err := s.store.Save(s.list.Snapshot()); err != nil {
		s.log.Error().Err(err).Str("path", s.store.Path()).Msg("save failed")
		return fmt.Errorf("save %s: %w", s.store.Path(), err)
	}
	s.event(s.log.Info()).Msg("saved")
	return nil
}

func (s *Session) event(e *zerolog.Event) *zerolog.Event {
	return e.Str("path", s.store.Path()).
		Int("listings", len(s.list.Listings())).
		Int("prompts", len(s.list.Drafts())).
		Str("total", s.list.Total().StringFixed(2))
}
