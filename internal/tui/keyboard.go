package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/showbox/internal/tui/components"
)

// handleKeyMsg handles keyboard input
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.State {
	case StateHelp:
		m.State = StateBrowsing
		return m, nil

	case StateConfirmDelete:
		switch {
		case key.Matches(msg, Keys.Confirm):
			m.State = StateBrowsing
			return m, m.confirmDelete()
		case key.Matches(msg, Keys.Deny):
			m.State = StateBrowsing
			m.pendingDelete = nil
		}
		return m, nil
	}

	// Route to active modal if any
	if handled, newModel, cmd := m.routeToModal(msg); handled {
		return newModel, cmd
	}

	// A pane that is typing a filter owns the keyboard
	pane := m.activePane()
	if pane.IsFilterTyping() {
		_, cmd := pane.Update(msg)
		m.updateInspector()
		return m, cmd
	}

	switch {
	case key.Matches(msg, Keys.Quit):
		m.saveScroll()
		return m, tea.Quit

	case key.Matches(msg, Keys.HardQuit):
		m.List.SaveScrollPosition(0)
		return m, tea.Quit

	case key.Matches(msg, Keys.Help):
		m.State = StateHelp
		return m, nil

	case key.Matches(msg, Keys.NextPage):
		if m.Page == PageShows {
			m.saveScroll()
			m.Page = PageFavorites
		} else {
			m.Page = PageShows
		}
		m.ShowsPane.SetFocused(m.Page == PageShows)
		m.FavoritesPane.SetFocused(m.Page == PageFavorites)
		m.updateInspector()
		return m, nil

	case key.Matches(msg, Keys.Escape):
		if pane.IsFiltering() {
			pane.ClearFilter()
			m.updateInspector()
			return m, nil
		}
		if m.Page == PageShows && m.List.State().Mode.IsSearch() {
			m.List.ClearSearch()
			m.ShowsPane.ScrollTo(0)
			m.syncFromStores()
			return m, LoadNextPageCmd(m.List)
		}
		return m, nil

	case key.Matches(msg, Keys.Filter):
		pane.ToggleFilter()
		return m, nil

	case key.Matches(msg, Keys.Search):
		m.Omnibar.Show(components.OmnibarShows, m.List.State().Query)
		m.Omnibar.SetSize(m.Width, m.Height)
		return m, m.Omnibar.Init()

	case key.Matches(msg, Keys.ActorSearch):
		m.Omnibar.Show(components.OmnibarActor, "")
		m.Omnibar.SetSize(m.Width, m.Height)
		return m, m.Omnibar.Init()

	case key.Matches(msg, Keys.Favorite):
		return m, m.toggleFavorite()

	case key.Matches(msg, Keys.Edit):
		if show := m.selectedShow(); show != nil {
			return m, m.EditModal.Show(*show)
		}
		return m, nil

	case key.Matches(msg, Keys.Delete):
		if show := m.selectedShow(); show != nil {
			m.pendingDelete = show
			m.State = StateConfirmDelete
		}
		return m, nil

	case key.Matches(msg, Keys.Refresh):
		m.List.Reset()
		m.ShowsPane.ClearFilter()
		m.ShowsPane.ScrollTo(0)
		m.Page = PageShows
		m.syncFromStores()
		return m, tea.Batch(LoadNextPageCmd(m.List), m.setStatus("Reloading shows", false))

	case key.Matches(msg, Keys.ToggleInspector):
		m.ShowInspector = !m.ShowInspector
		m.updateLayout()
		return m, nil

	case key.Matches(msg, Keys.InspectorUp):
		m.Inspector.ScrollBy(-3)
		return m, nil

	case key.Matches(msg, Keys.InspectorDown):
		m.Inspector.ScrollBy(3)
		return m, nil

	case key.Matches(msg, Keys.Enter):
		if show := m.selectedShow(); show != nil {
			m.Inspector.SetRefreshing(true)
			return m, GetShowCmd(m.Catalog, show.ID)
		}
		return m, nil
	}

	// Navigation keys go to the active pane
	_, cmd := pane.Update(msg)
	m.updateInspector()
	return m, tea.Batch(cmd, m.loadMore())
}

// routeToModal sends msg to the open modal, if any
func (m Model) routeToModal(msg tea.KeyMsg) (bool, tea.Model, tea.Cmd) {
	switch {
	case m.EditModal.IsVisible():
		var (
			cmd       tea.Cmd
			submitted bool
		)
		m.EditModal, cmd, submitted = m.EditModal.Update(msg)
		if submitted {
			return true, m, m.applyEdit()
		}
		return true, m, cmd

	case m.Omnibar.IsVisible():
		var (
			cmd tea.Cmd
			ev  components.OmnibarEvent
		)
		m.Omnibar, cmd, ev = m.Omnibar.Update(msg)
		switch ev {
		case components.OmnibarChanged:
			m.searchSeq++
			return true, m, tea.Batch(cmd, DebounceCmd(m.searchSeq, m.Omnibar.Query(), SearchDebounce))
		case components.OmnibarSubmit:
			return true, m, m.submitOmnibar()
		}
		return true, m, cmd
	}
	return false, m, nil
}

// runOmnibarQuery acts on a settled omnibar query
func (m *Model) runOmnibarQuery(query string) tea.Cmd {
	if !m.Omnibar.Distinct(query) {
		return nil
	}

	if m.Omnibar.Mode() == components.OmnibarActor {
		if query == "" {
			m.Omnibar.SetPeople(query, nil)
			return nil
		}
		m.Omnibar.SetLoading(true)
		return SearchPeopleCmd(m.Catalog, query)
	}

	m.List.Search(query)
	m.ShowsPane.ClearFilter()
	m.ShowsPane.ScrollTo(0)
	m.Page = PageShows
	m.syncFromStores()
	return LoadNextPageCmd(m.List)
}

func (m *Model) submitOmnibar() tea.Cmd {
	if m.Omnibar.Mode() == components.OmnibarActor {
		person := m.Omnibar.SelectedPerson()
		if person == nil {
			return nil
		}
		m.Omnibar.Hide()
		m.ShowsPane.ClearFilter()
		m.Page = PageShows
		return tea.Batch(
			LoadShowsByActorCmd(m.List, *person),
			m.setStatus(fmt.Sprintf("Loading shows with %s", person.Name), false),
		)
	}

	cmd := m.runOmnibarQuery(m.Omnibar.Query())
	m.Omnibar.Hide()
	return cmd
}

func (m *Model) toggleFavorite() tea.Cmd {
	show := m.selectedShow()
	if show == nil {
		return nil
	}

	var now bool
	if toggled, ok := m.List.ToggleFavorite(show.ID); ok {
		now = toggled.IsFavorite
	} else {
		// Not in the current list; only the favorites aggregate knows it
		now = m.Favorites.Toggle(*show)
		m.List.SyncFavorites()
	}
	m.syncFromStores()

	if now {
		return m.setStatus(fmt.Sprintf("Added %s to favorites", show.Name), false)
	}
	return m.setStatus(fmt.Sprintf("Removed %s from favorites", show.Name), false)
}

func (m *Model) applyEdit() tea.Cmd {
	changes, err := m.EditModal.Changes()
	if err != nil {
		return nil
	}
	id := m.EditModal.ShowID()
	m.EditModal.Hide()

	if !m.List.UpdateShow(id, changes) {
		// Favorite that isn't in the current list
		for _, fav := range m.Favorites.List() {
			if fav.ID == id {
				m.Favorites.Put(changes.Apply(fav))
				break
			}
		}
	}
	m.detail = nil
	m.syncFromStores()
	return m.setStatus(fmt.Sprintf("Saved %s", *changes.Name), false)
}

// confirmDelete removes the pending show: from the list on the shows page,
// from favorites on the favorites page
func (m *Model) confirmDelete() tea.Cmd {
	show := m.pendingDelete
	m.pendingDelete = nil
	if show == nil {
		return nil
	}

	if m.Page == PageFavorites {
		m.Favorites.Remove(show.ID)
		m.List.SyncFavorites()
		m.syncFromStores()
		return m.setStatus(fmt.Sprintf("Removed %s from favorites", show.Name), false)
	}

	m.List.DeleteShow(show.ID)
	m.syncFromStores()
	return m.setStatus(fmt.Sprintf("Deleted %s", show.Name), false)
}
