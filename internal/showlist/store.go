package showlist

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/mmcdole/showbox/internal/domain"
)

// FavoriteTracker is the separately persisted favorites aggregate.
// When attached, toggles and edits are mirrored into it and incoming
// records are marked from it.
type FavoriteTracker interface {
	Contains(id int) bool
	Put(show domain.Show)
	Remove(id int) bool
}

// Option configures a Store
type Option func(*Store)

// WithLogger sets the store's logger
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithFavorites attaches a favorites aggregate
func WithFavorites(f FavoriteTracker) Option {
	return func(s *Store) { s.favorites = f }
}

// Store is the single source of truth for which shows are known, how they
// were obtained, which are favorited and how far the user has scrolled.
//
// All methods are safe for concurrent use. Fetches run outside the lock, so
// edits, toggles and scroll saves stay available while one is in flight.
type Store struct {
	catalog   domain.Catalog
	kv        domain.KeyValueStore
	favorites FavoriteTracker
	logger    *slog.Logger

	mu           sync.Mutex
	state        State
	lastSnapshot string // last value written to kv

	obsMu     sync.Mutex
	observers map[int]func()
	nextObsID int
}

// New creates a store and hydrates it from kv. A nil kv keeps state in
// memory only.
func New(catalog domain.Catalog, kv domain.KeyValueStore, opts ...Option) *Store {
	s := &Store{
		catalog:   catalog,
		kv:        kv,
		logger:    slog.Default(),
		state:     initialState(),
		observers: make(map[int]func()),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.Hydrate()
	return s
}

// === Mutation entry point ===

// update runs fn under the lock. When fn reports a change, the durable
// snapshot is written (if it differs from the last one) and observers are
// notified.
func (s *Store) update(fn func(st *State) bool) bool {
	s.mu.Lock()
	changed := fn(&s.state)
	if changed {
		s.persistLocked()
	}
	s.mu.Unlock()

	if changed {
		s.notify()
	}
	return changed
}

func (s *Store) persistLocked() {
	if s.kv == nil {
		return
	}
	data, err := encodeSnapshot(s.state)
	if err != nil {
		s.logger.Error("failed to encode show list snapshot", "error", err)
		return
	}
	if string(data) == s.lastSnapshot {
		return
	}
	if err := s.kv.Set(StorageKey, string(data)); err != nil {
		// Persistence is best effort; the in-memory state stays authoritative
		s.logger.Warn("failed to persist show list", "error", err)
		return
	}
	s.lastSnapshot = string(data)
}

// === Persistence hooks ===

// Hydrate replaces the state with the persisted snapshot, if one exists.
// Malformed data is discarded and the store falls back to defaults.
// Reports whether a snapshot was restored.
func (s *Store) Hydrate() bool {
	var (
		data  string
		found bool
	)
	if s.kv != nil {
		data, found = s.kv.Get(StorageKey)
	}

	st := initialState()
	restored := false
	if found {
		decoded, err := decodeSnapshot([]byte(data))
		if err != nil {
			s.logger.Warn("discarding persisted show list", "error", err)
		} else {
			st = decoded
			restored = true
		}
	}

	s.mu.Lock()
	s.state = st
	if restored {
		s.lastSnapshot = data
	}
	s.markFavoritesLocked(s.state.Shows)
	s.mu.Unlock()

	s.notify()
	return restored
}

// Snapshot returns the durable state as written to the persistence adapter
func (s *Store) Snapshot() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return encodeSnapshot(s.state)
}

// === Commands ===

// LoadNextPage fetches the next index page, or the pending text search
// result set. It is a no-op, reporting false, when a fetch is already in
// flight or the current mode has nothing more to fetch. A failed fetch
// leaves everything but the loading flag untouched and returns the error.
func (s *Store) LoadNextPage(ctx context.Context) (bool, error) {
	var (
		mode  Mode
		page  int
		query string
	)
	started := s.update(func(st *State) bool {
		if st.Loading {
			return false
		}
		switch st.Mode {
		case ModePaginated:
			if !st.HasMore {
				return false
			}
		case ModeTextSearch:
			if !st.SearchPending {
				return false
			}
		default:
			return false
		}
		st.Loading = true
		mode, page, query = st.Mode, st.Page, st.Query
		return true
	})
	if !started {
		return false, nil
	}

	var (
		shows []domain.Show
		err   error
	)
	if mode == ModeTextSearch {
		shows, err = s.catalog.SearchShows(ctx, query)
	} else {
		shows, err = s.catalog.GetShows(ctx, page)
	}
	if err != nil {
		s.logger.Warn("show fetch failed", "mode", mode, "page", page, "error", err)
		s.update(func(st *State) bool {
			st.Loading = false
			return true
		})
		return true, err
	}

	// TODO: tag fetches with a generation counter and drop responses that
	// land after a mode switch; today a late page is merged into whatever
	// list is current.
	s.update(func(st *State) bool {
		st.Loading = false
		s.markFavoritesLocked(shows)
		if mode == ModeTextSearch {
			st.replaceShows(appendUnique([]domain.Show{}, shows))
			st.SearchPending = false
			st.HasMore = false
			return true
		}
		st.Shows = appendUnique(st.Shows, shows)
		st.Page++
		st.HasMore = len(shows) > 0 && st.Mode == ModePaginated
		return true
	})

	s.logger.Debug("shows loaded", "mode", mode, "page", page, "count", len(shows))
	return true, nil
}

// LoadShowsByActor switches to actor search and replaces the list with the
// shows person is credited in, de-duplicated in first-seen order. On failure
// the list stays empty.
func (s *Store) LoadShowsByActor(ctx context.Context, person domain.Person) error {
	s.update(func(st *State) bool {
		st.replaceShows([]domain.Show{})
		st.Mode = ModeActorSearch
		st.Actor = &person
		st.Query = ""
		st.SearchPending = false
		st.HasMore = false
		st.Loading = true
		return true
	})

	credits, err := s.catalog.GetPersonCastCredits(ctx, person.ID)
	if err != nil {
		s.logger.Warn("cast credits fetch failed", "person", person.ID, "error", err)
		s.update(func(st *State) bool {
			st.Loading = false
			return true
		})
		return err
	}

	shows := domain.ShowsFromCredits(credits)
	s.update(func(st *State) bool {
		s.markFavoritesLocked(shows)
		st.Shows = shows
		st.Loading = false
		return true
	})

	s.logger.Debug("actor shows loaded", "person", person.ID, "credits", len(credits), "shows", len(shows))
	return nil
}

// Search enters text search mode for query; the next LoadNextPage fetches
// the result set. A blank query is the same as ClearSearch.
func (s *Store) Search(query string) {
	query = strings.TrimSpace(query)
	if query == "" {
		s.ClearSearch()
		return
	}
	s.update(func(st *State) bool {
		st.replaceShows([]domain.Show{})
		st.Mode = ModeTextSearch
		st.Query = query
		st.Actor = nil
		st.SearchPending = true
		st.Page = 0
		st.HasMore = false
		st.Loading = false
		return true
	})
}

// ClearSearch leaves any search mode and restarts plain pagination from
// page 0 with an empty list.
func (s *Store) ClearSearch() {
	s.update(func(st *State) bool {
		st.replaceShows([]domain.Show{})
		st.Mode = ModePaginated
		st.Query = ""
		st.Actor = nil
		st.SearchPending = false
		st.Page = 0
		st.HasMore = true
		st.Loading = false
		return true
	})
}

// ShowMore widens the reveal window by one batch
func (s *Store) ShowMore() {
	s.update(func(st *State) bool {
		st.DisplayLimit += BatchSize
		return true
	})
}

// NeedsMoreData reports whether the reveal window has caught up with the
// fetched list and another page may exist
func (s *Store) NeedsMoreData() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.DisplayLimit >= len(s.state.Shows) && s.state.HasMore
}

// ToggleFavorite flips the favorite mark on show id and returns the updated
// record. Reports false when id is unknown.
func (s *Store) ToggleFavorite(id int) (domain.Show, bool) {
	var toggled domain.Show
	ok := s.update(func(st *State) bool {
		i := st.indexOf(id)
		if i < 0 {
			return false
		}
		st.Shows[i].IsFavorite = !st.Shows[i].IsFavorite
		toggled = st.Shows[i].Clone()
		return true
	})
	if !ok {
		return domain.Show{}, false
	}

	if s.favorites != nil {
		if toggled.IsFavorite {
			s.favorites.Put(toggled)
		} else {
			s.favorites.Remove(id)
		}
	}
	return toggled, true
}

// UpdateShow merges changes into show id. Reports false when id is unknown.
func (s *Store) UpdateShow(id int, changes domain.ShowChanges) bool {
	var updated domain.Show
	ok := s.update(func(st *State) bool {
		i := st.indexOf(id)
		if i < 0 {
			return false
		}
		st.Shows[i] = changes.Apply(st.Shows[i])
		updated = st.Shows[i].Clone()
		return true
	})

	if ok && updated.IsFavorite && s.favorites != nil {
		s.favorites.Put(updated)
	}
	return ok
}

// DeleteShow removes show id from the list. Reports false when id is unknown.
func (s *Store) DeleteShow(id int) bool {
	return s.update(func(st *State) bool {
		i := st.indexOf(id)
		if i < 0 {
			return false
		}
		st.Shows = append(st.Shows[:i:i], st.Shows[i+1:]...)
		return true
	})
}

// SaveScrollPosition records the viewport offset to restore on re-entry.
// Negative offsets are stored as 0.
func (s *Store) SaveScrollPosition(offset int) {
	if offset < 0 {
		offset = 0
	}
	s.update(func(st *State) bool {
		st.ScrollPosition = offset
		return true
	})
}

// Reset restores the initial state: empty list, plain pagination from page
// 0, no favorites marked, scroll at the top.
func (s *Store) Reset() {
	s.update(func(st *State) bool {
		*st = initialState()
		return true
	})
}

// SyncFavorites re-marks every record from the attached favorites
// aggregate, e.g. after a favorite was removed elsewhere.
func (s *Store) SyncFavorites() {
	if s.favorites == nil {
		return
	}
	s.update(func(st *State) bool {
		changed := false
		for i := range st.Shows {
			fav := s.favorites.Contains(st.Shows[i].ID)
			if st.Shows[i].IsFavorite != fav {
				st.Shows[i].IsFavorite = fav
				changed = true
			}
		}
		return changed
	})
}

// markFavoritesLocked sets IsFavorite from the favorites aggregate
func (s *Store) markFavoritesLocked(shows []domain.Show) {
	if s.favorites == nil {
		return
	}
	for i := range shows {
		shows[i].IsFavorite = s.favorites.Contains(shows[i].ID)
	}
}

// === Observers ===

// Subscribe registers fn to run after every state change. The returned
// function unregisters it.
func (s *Store) Subscribe(fn func()) (unsubscribe func()) {
	s.obsMu.Lock()
	id := s.nextObsID
	s.nextObsID++
	s.observers[id] = fn
	s.obsMu.Unlock()

	return func() {
		s.obsMu.Lock()
		delete(s.observers, id)
		s.obsMu.Unlock()
	}
}

func (s *Store) notify() {
	s.obsMu.Lock()
	fns := make([]func(), 0, len(s.observers))
	for _, fn := range s.observers {
		fns = append(fns, fn)
	}
	s.obsMu.Unlock()

	for _, fn := range fns {
		fn()
	}
}
