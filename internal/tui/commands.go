package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/showbox/internal/domain"
	"github.com/mmcdole/showbox/internal/search"
	"github.com/mmcdole/showbox/internal/showlist"
)

// Timeouts for catalog round trips
const (
	fetchTimeout  = 30 * time.Second
	lookupTimeout = 10 * time.Second
)

// Command factories for async operations

// LoadNextPageCmd fetches the next page (or pending search results) into the store
func LoadNextPageCmd(list *showlist.Store) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		issued, err := list.LoadNextPage(ctx)
		if err != nil {
			return ErrMsg{Err: err, Context: "loading shows"}
		}
		return PageLoadedMsg{Issued: issued}
	}
}

// LoadShowsByActorCmd replaces the list with the shows person appeared in
func LoadShowsByActorCmd(list *showlist.Store, person domain.Person) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		if err := list.LoadShowsByActor(ctx, person); err != nil {
			return ErrMsg{Err: err, Context: "loading cast credits"}
		}
		return ActorShowsLoadedMsg{Person: person}
	}
}

// SearchPeopleCmd looks up people for the actor omnibar
func SearchPeopleCmd(catalog domain.Catalog, query string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), lookupTimeout)
		defer cancel()

		people, err := catalog.SearchPeople(ctx, query)
		if err != nil {
			return ErrMsg{Err: err, Context: "searching people"}
		}
		return PeopleResultsMsg{Query: query, People: search.RankPeople(query, people)}
	}
}

// GetShowCmd fetches the latest catalog copy of a show for the inspector
func GetShowCmd(catalog domain.Catalog, id int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), lookupTimeout)
		defer cancel()

		show, err := catalog.GetShow(ctx, id)
		if err != nil {
			return ErrMsg{Err: err, Context: "loading show"}
		}
		return ShowDetailMsg{Show: *show}
	}
}

// WaitForChangeCmd blocks until a store reports a change
func WaitForChangeCmd(ch <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		<-ch
		return StoreChangedMsg{}
	}
}

// DebounceCmd delivers query after delay; stale sequence numbers are ignored
func DebounceCmd(seq int, query string, delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return searchDebounceMsg{seq: seq, query: query}
	})
}

// TickCmd returns a command that sends a tick after a delay
func TickCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return TickMsg{}
	})
}

// ClearStatusCmd returns a command that clears status after a delay
func ClearStatusCmd(seq int, delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return ClearStatusMsg{seq: seq}
	})
}
