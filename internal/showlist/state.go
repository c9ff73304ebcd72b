// Package showlist owns the list of known shows: pagination, search modes,
// the reveal window, local edits and the persisted snapshot.
package showlist

import (
	"fmt"

	"github.com/mmcdole/showbox/internal/domain"
)

const (
	// BatchSize is how many records one ShowMore reveals, and the
	// initial size of the reveal window.
	BatchSize = 25

	// StorageKey is the persistence key for the list snapshot
	StorageKey = "show-list"
)

// Mode is the mutually exclusive way Shows is populated
type Mode int

const (
	// ModePaginated appends catalog index pages as the user scrolls
	ModePaginated Mode = iota
	// ModeTextSearch holds the one-shot result set of a show search
	ModeTextSearch
	// ModeActorSearch holds the shows a person is credited in
	ModeActorSearch
)

var modeNames = map[Mode]string{
	ModePaginated:   "paginated",
	ModeTextSearch:  "text-search",
	ModeActorSearch: "actor-search",
}

// String returns the mode's snapshot name
func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// IsSearch reports whether the mode is one of the frozen search modes
func (m Mode) IsSearch() bool {
	return m == ModeTextSearch || m == ModeActorSearch
}

// MarshalText encodes the mode by its snapshot name
func (m Mode) MarshalText() ([]byte, error) {
	name, ok := modeNames[m]
	if !ok {
		return nil, fmt.Errorf("unknown mode %d", int(m))
	}
	return []byte(name), nil
}

// UnmarshalText decodes a snapshot name, rejecting unknown modes
func (m *Mode) UnmarshalText(b []byte) error {
	for mode, name := range modeNames {
		if name == string(b) {
			*m = mode
			return nil
		}
	}
	return fmt.Errorf("unknown mode %q", b)
}

// State is the full store state. Loading and DisplayLimit are session-local
// and never persisted.
type State struct {
	Shows          []domain.Show
	Page           int // Next index page to request
	Loading        bool
	Mode           Mode
	Query          string         // ModeTextSearch only
	Actor          *domain.Person // ModeActorSearch only
	SearchPending  bool           // Text search result set not fetched yet
	HasMore        bool
	ScrollPosition int
	DisplayLimit   int
}

func initialState() State {
	return State{
		Shows:        []domain.Show{},
		HasMore:      true,
		DisplayLimit: BatchSize,
	}
}

// clone returns a deep copy safe to hand out of the lock
func (s State) clone() State {
	c := s
	c.Shows = cloneShows(s.Shows)
	if s.Actor != nil {
		a := *s.Actor
		c.Actor = &a
	}
	return c
}

// visible returns the reveal window over Shows
func (s State) visible() []domain.Show {
	n := s.DisplayLimit
	if n > len(s.Shows) {
		n = len(s.Shows)
	}
	return cloneShows(s.Shows[:n])
}

// replaceShows swaps the whole list and resets the reveal window
func (s *State) replaceShows(shows []domain.Show) {
	s.Shows = shows
	s.DisplayLimit = BatchSize
}

func (s State) indexOf(id int) int {
	for i := range s.Shows {
		if s.Shows[i].ID == id {
			return i
		}
	}
	return -1
}

func cloneShows(shows []domain.Show) []domain.Show {
	out := make([]domain.Show, len(shows))
	for i, sh := range shows {
		out[i] = sh.Clone()
	}
	return out
}

// appendUnique appends incoming shows whose IDs aren't already present,
// also dropping duplicates within incoming
func appendUnique(shows, incoming []domain.Show) []domain.Show {
	seen := make(map[int]bool, len(shows)+len(incoming))
	for _, sh := range shows {
		seen[sh.ID] = true
	}
	for _, sh := range incoming {
		if seen[sh.ID] {
			continue
		}
		seen[sh.ID] = true
		shows = append(shows, sh)
	}
	return shows
}
