package tui

import (
	"github.com/mmcdole/showbox/internal/domain"
)

// ErrMsg represents an error
type ErrMsg struct {
	Err     error
	Context string
}

// Error implements the error interface
func (e ErrMsg) Error() string {
	if e.Context != "" {
		return e.Context + ": " + e.Err.Error()
	}
	return e.Err.Error()
}

// PageLoadedMsg signals that a LoadNextPage call finished
type PageLoadedMsg struct {
	Issued bool
}

// ActorShowsLoadedMsg signals that an actor's shows replaced the list
type ActorShowsLoadedMsg struct {
	Person domain.Person
}

// PeopleResultsMsg carries people search hits for the omnibar
type PeopleResultsMsg struct {
	Query  string
	People []domain.PersonMatch
}

// ShowDetailMsg carries a freshly fetched show for the inspector
type ShowDetailMsg struct {
	Show domain.Show
}

// StoreChangedMsg signals that a store notified its observers
type StoreChangedMsg struct{}

// searchDebounceMsg fires once the omnibar input has been idle
type searchDebounceMsg struct {
	seq   int
	query string
}

// TickMsg is a general tick message for animations
type TickMsg struct{}

// ClearStatusMsg clears the status bar message
type ClearStatusMsg struct {
	seq int
}
