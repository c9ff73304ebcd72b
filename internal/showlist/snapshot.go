package showlist

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mmcdole/showbox/internal/domain"
)

// snapshot is the durable subset of State
type snapshot struct {
	Shows          []domain.Show  `json:"shows"`
	Page           int            `json:"page"`
	HasMore        bool           `json:"hasMore"`
	ScrollPosition int            `json:"scrollPosition"`
	Mode           Mode           `json:"mode,omitempty"`
	Query          string         `json:"query,omitempty"`
	Actor          *domain.Person `json:"actor,omitempty"`
	SearchPending  bool           `json:"searchPending,omitempty"`
}

// storedSnapshot is the decoding side of snapshot: shows and hasMore are
// required, so a null, empty or partial document can't pass as a list that
// has nothing left to load
type storedSnapshot struct {
	snapshot
	Shows   *[]domain.Show `json:"shows"`
	HasMore *bool          `json:"hasMore"`
}

var errInvalidSnapshot = errors.New("invalid snapshot")

func encodeSnapshot(st State) ([]byte, error) {
	shows := st.Shows
	if shows == nil {
		shows = []domain.Show{}
	}
	return json.Marshal(snapshot{
		Shows:          shows,
		Page:           st.Page,
		HasMore:        st.HasMore,
		ScrollPosition: st.ScrollPosition,
		Mode:           st.Mode,
		Query:          st.Query,
		Actor:          st.Actor,
		SearchPending:  st.SearchPending,
	})
}

// decodeSnapshot parses and validates data, returning a State with the
// durable fields restored and transient fields at their defaults
func decodeSnapshot(data []byte) (State, error) {
	var stored storedSnapshot
	if err := json.Unmarshal(data, &stored); err != nil {
		return State{}, fmt.Errorf("%w: %v", errInvalidSnapshot, err)
	}
	if stored.Shows == nil || *stored.Shows == nil {
		return State{}, fmt.Errorf("%w: missing shows", errInvalidSnapshot)
	}
	if stored.HasMore == nil {
		return State{}, fmt.Errorf("%w: missing hasMore", errInvalidSnapshot)
	}
	snap := stored.snapshot
	snap.Shows = *stored.Shows
	snap.HasMore = *stored.HasMore

	if err := snap.validate(); err != nil {
		return State{}, fmt.Errorf("%w: %v", errInvalidSnapshot, err)
	}

	st := initialState()
	st.Shows = snap.Shows
	st.Page = snap.Page
	st.HasMore = snap.HasMore
	st.ScrollPosition = snap.ScrollPosition
	st.Mode = snap.Mode
	st.Query = snap.Query
	st.Actor = snap.Actor
	st.SearchPending = snap.SearchPending

	if st.Mode.IsSearch() {
		st.HasMore = false
	}
	return st, nil
}

func (s snapshot) validate() error {
	if s.Page < 0 {
		return fmt.Errorf("negative page %d", s.Page)
	}
	if s.ScrollPosition < 0 {
		return fmt.Errorf("negative scroll position %d", s.ScrollPosition)
	}

	seen := make(map[int]bool, len(s.Shows))
	for _, sh := range s.Shows {
		if seen[sh.ID] {
			return fmt.Errorf("duplicate show id %d", sh.ID)
		}
		seen[sh.ID] = true
	}

	switch s.Mode {
	case ModeTextSearch:
		if s.Query == "" {
			return fmt.Errorf("text search without a query")
		}
	case ModeActorSearch:
		if s.Actor == nil {
			return fmt.Errorf("actor search without an actor")
		}
	}
	return nil
}
