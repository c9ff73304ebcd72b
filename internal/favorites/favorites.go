// Package favorites keeps the user's favorite shows, persisted under their
// own key so they outlive list resets and search mode switches.
package favorites

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/mmcdole/showbox/internal/domain"
	"github.com/mmcdole/showbox/internal/search"
)

// StorageKey is the persistence key for the favorites snapshot
const StorageKey = "favorites"

type snapshot struct {
	Favorites []domain.Show `json:"favorites"`
}

// Store holds favorited shows in the order they were added
type Store struct {
	kv     domain.KeyValueStore
	logger *slog.Logger

	mu    sync.RWMutex
	shows []domain.Show
	index map[int]int // show id -> position in shows

	observer domain.StoreObserver
}

// New creates a favorites store and hydrates it from kv. A nil kv keeps
// favorites in memory only.
func New(kv domain.KeyValueStore, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Store{
		kv:       kv,
		logger:   logger,
		index:    make(map[int]int),
		observer: domain.NoOpObserver{},
	}
	s.Hydrate()
	return s
}

// SetObserver registers the observer notified after every change
func (s *Store) SetObserver(obs domain.StoreObserver) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if obs == nil {
		obs = domain.NoOpObserver{}
	}
	s.observer = obs
}

// Hydrate loads the persisted favorites. Malformed data is discarded.
func (s *Store) Hydrate() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.shows = nil
	s.index = make(map[int]int)
	if s.kv == nil {
		return false
	}
	data, ok := s.kv.Get(StorageKey)
	if !ok {
		return false
	}

	var snap snapshot
	if err := json.Unmarshal([]byte(data), &snap); err != nil {
		s.logger.Warn("discarding persisted favorites", "error", err)
		return false
	}
	for _, sh := range snap.Favorites {
		if _, dup := s.index[sh.ID]; dup {
			continue
		}
		sh.IsFavorite = true
		s.index[sh.ID] = len(s.shows)
		s.shows = append(s.shows, sh)
	}
	return true
}

// Snapshot returns the persisted form of the favorites
func (s *Store) Snapshot() ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.encodeLocked()
}

func (s *Store) encodeLocked() ([]byte, error) {
	shows := s.shows
	if shows == nil {
		shows = []domain.Show{}
	}
	data, err := json.Marshal(snapshot{Favorites: shows})
	if err != nil {
		return nil, fmt.Errorf("encode favorites: %w", err)
	}
	return data, nil
}

// changed persists and notifies; must be called without the lock held
func (s *Store) changed() {
	s.mu.RLock()
	obs := s.observer
	if s.kv != nil {
		if data, err := s.encodeLocked(); err != nil {
			s.logger.Error("failed to encode favorites", "error", err)
		} else if err := s.kv.Set(StorageKey, string(data)); err != nil {
			s.logger.Warn("failed to persist favorites", "error", err)
		}
	}
	s.mu.RUnlock()

	obs.OnChange()
}

// Add appends show unless it's already a favorite. Reports whether it was added.
func (s *Store) Add(show domain.Show) bool {
	s.mu.Lock()
	if _, ok := s.index[show.ID]; ok {
		s.mu.Unlock()
		return false
	}
	show = show.Clone()
	show.IsFavorite = true
	s.index[show.ID] = len(s.shows)
	s.shows = append(s.shows, show)
	s.mu.Unlock()

	s.changed()
	return true
}

// Put adds show, or replaces the stored copy in place when it's already a
// favorite
func (s *Store) Put(show domain.Show) {
	s.mu.Lock()
	show = show.Clone()
	show.IsFavorite = true
	if i, ok := s.index[show.ID]; ok {
		s.shows[i] = show
	} else {
		s.index[show.ID] = len(s.shows)
		s.shows = append(s.shows, show)
	}
	s.mu.Unlock()

	s.changed()
}

// Remove drops show id. Reports whether it was a favorite.
func (s *Store) Remove(id int) bool {
	s.mu.Lock()
	i, ok := s.index[id]
	if !ok {
		s.mu.Unlock()
		return false
	}
	s.shows = append(s.shows[:i:i], s.shows[i+1:]...)
	s.reindexLocked()
	s.mu.Unlock()

	s.changed()
	return true
}

// Toggle adds or removes show, returning whether it is now a favorite
func (s *Store) Toggle(show domain.Show) bool {
	if s.Remove(show.ID) {
		return false
	}
	s.Add(show)
	return true
}

func (s *Store) Contains(id int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.index[id]
	return ok
}

// IDs returns favorite show ids in insertion order
func (s *Store) IDs() []int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]int, len(s.shows))
	for i, sh := range s.shows {
		ids[i] = sh.ID
	}
	return ids
}

func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.shows)
}

// List returns copies of the favorites in insertion order
func (s *Store) List() []domain.Show {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Show, len(s.shows))
	for i, sh := range s.shows {
		out[i] = sh.Clone()
	}
	return out
}

// Filter returns the favorites matching query, best match first
func (s *Store) Filter(query string) []domain.Show {
	return search.RankShows(query, s.List())
}

// Reset removes every favorite
func (s *Store) Reset() {
	s.mu.Lock()
	s.shows = nil
	s.index = make(map[int]int)
	s.mu.Unlock()

	s.changed()
}

func (s *Store) reindexLocked() {
	s.index = make(map[int]int, len(s.shows))
	for i, sh := range s.shows {
		s.index[sh.ID] = i
	}
}
