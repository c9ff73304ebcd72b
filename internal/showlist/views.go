package showlist

import "github.com/mmcdole/showbox/internal/domain"

// State returns a copy of the full state
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.clone()
}

// VisibleShows returns the first DisplayLimit shows
func (s *Store) VisibleShows() []domain.Show {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.visible()
}

// HasMoreVisible reports whether records beyond the reveal window exist,
// fetched or not
func (s *Store) HasMoreVisible() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.DisplayLimit < len(s.state.Shows) || s.state.HasMore
}

// FavoriteShows returns the favorited shows in list order
func (s *Store) FavoriteShows() []domain.Show {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Show
	for _, sh := range s.state.Shows {
		if sh.IsFavorite {
			out = append(out, sh.Clone())
		}
	}
	return out
}

// FavoriteCount returns how many loaded shows are favorites
func (s *Store) FavoriteCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, sh := range s.state.Shows {
		if sh.IsFavorite {
			n++
		}
	}
	return n
}

// Show returns the show with the given id
func (s *Store) Show(id int) (domain.Show, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.state.indexOf(id)
	if i < 0 {
		return domain.Show{}, false
	}
	return s.state.Shows[i].Clone(), true
}

// Loading reports whether a fetch is in flight
func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Loading
}
