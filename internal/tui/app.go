package tui

import (
	"fmt"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/showbox/internal/domain"
	"github.com/mmcdole/showbox/internal/favorites"
	"github.com/mmcdole/showbox/internal/showlist"
	"github.com/mmcdole/showbox/internal/tui/components"
	"github.com/mmcdole/showbox/internal/tui/styles"
)

// ApplicationState represents the current state of the application
type ApplicationState int

const (
	StateBrowsing ApplicationState = iota
	StateHelp
	StateConfirmDelete
)

// Page is one of the routed top-level views
type Page int

const (
	PageShows Page = iota
	PageFavorites
)

// ParsePage maps a config value to a page, defaulting to PageShows
func ParsePage(s string) Page {
	if s == "favorites" {
		return PageFavorites
	}
	return PageShows
}

const (
	// SearchDebounce is how long omnibar input must be idle before it's acted on
	SearchDebounce = 400 * time.Millisecond

	statusTimeout = 4 * time.Second
	tickInterval  = 100 * time.Millisecond
)

// Options configures the model
type Options struct {
	StartPage     Page
	GenreLimit    int
	InspectorOpen bool
}

// Model is the main Bubble Tea model for the application
type Model struct {
	// Application state
	State ApplicationState
	Page  Page
	Ready bool

	// Stores and catalog
	List      *showlist.Store
	Favorites *favorites.Store
	Catalog   domain.Catalog
	logger    *slog.Logger
	observer  *ChannelObserver

	// UI components
	ShowsPane     *components.ShowList
	FavoritesPane *components.ShowList
	Inspector     components.Inspector
	Omnibar       components.Omnibar
	EditModal     components.EditModal

	// Dimensions
	Width  int
	Height int

	// UI state
	StatusMsg     string
	StatusIsErr   bool
	statusSeq     int
	SpinnerFrame  int
	ShowInspector bool

	searchSeq     int
	pendingDelete *domain.Show
	detail        *domain.Show // Catalog copy fetched for the inspector
	restored      bool         // Saved scroll position applied
}

// NewModel creates a new application model and subscribes it to both stores
func NewModel(list *showlist.Store, favs *favorites.Store, catalog domain.Catalog, opts Options, logger *slog.Logger) Model {
	if logger == nil {
		logger = slog.Default()
	}

	obs := NewChannelObserver()
	list.Subscribe(obs.OnChange)
	favs.SetObserver(obs)

	m := Model{
		State:         StateBrowsing,
		Page:          opts.StartPage,
		List:          list,
		Favorites:     favs,
		Catalog:       catalog,
		logger:        logger,
		observer:      obs,
		ShowsPane:     components.NewShowList("Shows", opts.GenreLimit),
		FavoritesPane: components.NewShowList("Favorites", opts.GenreLimit),
		Inspector:     components.NewInspector(),
		Omnibar:       components.NewOmnibar(),
		EditModal:     components.NewEditModal(),
		ShowInspector: opts.InspectorOpen,
	}
	m.FavoritesPane.SetEmptyText("No favorites yet · press f on a show")
	m.ShowsPane.SetFocused(m.Page == PageShows)
	m.FavoritesPane.SetFocused(m.Page == PageFavorites)
	m.syncFromStores()
	return m
}

// Init starts the first fetch when nothing was restored
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		TickCmd(tickInterval),
		WaitForChangeCmd(m.observer.C()),
	}

	st := m.List.State()
	if len(st.Shows) == 0 && (st.HasMore || st.SearchPending) {
		cmds = append(cmds, LoadNextPageCmd(m.List))
	}
	return tea.Batch(cmds...)
}

// Update handles all messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Ready = true
		m.updateLayout()
		m.restoreScroll()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case TickMsg:
		m.SpinnerFrame++
		m.ShowsPane.SetSpinnerFrame(m.SpinnerFrame)
		return m, TickCmd(tickInterval)

	case StoreChangedMsg:
		m.syncFromStores()
		return m, WaitForChangeCmd(m.observer.C())

	case PageLoadedMsg:
		m.syncFromStores()
		m.restoreScroll()
		return m, nil

	case ActorShowsLoadedMsg:
		m.syncFromStores()
		m.ShowsPane.ScrollTo(0)
		return m, m.setStatus(fmt.Sprintf("Shows with %s", msg.Person.Name), false)

	case PeopleResultsMsg:
		m.Omnibar.SetPeople(msg.Query, msg.People)
		return m, nil

	case ShowDetailMsg:
		show := msg.Show
		if local, ok := m.List.Show(show.ID); ok {
			// Local edits win over the catalog copy
			show.Name, show.Summary, show.Genres = local.Name, local.Summary, local.Genres
		}
		show.IsFavorite = m.Favorites.Contains(show.ID)
		m.detail = &show
		m.Inspector.SetRefreshing(false)
		m.updateInspector()
		return m, nil

	case searchDebounceMsg:
		if msg.seq != m.searchSeq || !m.Omnibar.IsVisible() {
			return m, nil
		}
		return m, m.runOmnibarQuery(msg.query)

	case ErrMsg:
		m.logger.Warn("command failed", "context", msg.Context, "error", msg.Err)
		m.Omnibar.SetLoading(false)
		m.Inspector.SetRefreshing(false)
		m.syncFromStores()
		return m, m.setStatus(FormatError(msg.Err), true)

	case ClearStatusMsg:
		if msg.seq == m.statusSeq {
			m.StatusMsg = ""
			m.StatusIsErr = false
		}
		return m, nil
	}

	return m, nil
}

// syncFromStores pushes store views into the panes
func (m *Model) syncFromStores() {
	st := m.List.State()

	m.ShowsPane.SetShows(m.List.VisibleShows())
	m.ShowsPane.SetLoading(st.Loading)
	m.ShowsPane.SetHasMore(m.List.HasMoreVisible())
	m.ShowsPane.SetTitle(listTitle(st, m.List.FavoriteCount()))
	m.ShowsPane.SetEmptyText(emptyText(st))

	m.FavoritesPane.SetShows(m.Favorites.List())
	m.FavoritesPane.SetTitle(fmt.Sprintf("Favorites (%d)", m.Favorites.Count()))

	m.updateInspector()
}

func listTitle(st showlist.State, favorites int) string {
	switch st.Mode {
	case showlist.ModeTextSearch:
		return fmt.Sprintf("Search: %s (%d)", st.Query, len(st.Shows))
	case showlist.ModeActorSearch:
		name := "actor"
		if st.Actor != nil {
			name = st.Actor.Name
		}
		return fmt.Sprintf("Shows with %s (%d)", name, len(st.Shows))
	}
	if favorites > 0 {
		return fmt.Sprintf("Shows (%d loaded · %d %s)", len(st.Shows), favorites, styles.FavoriteChar)
	}
	return fmt.Sprintf("Shows (%d loaded)", len(st.Shows))
}

func emptyText(st showlist.State) string {
	switch {
	case st.Loading:
		return "Loading..."
	case st.Mode.IsSearch():
		return "No results · esc to go back"
	}
	return "No shows"
}

// activePane returns the list for the current page
func (m *Model) activePane() *components.ShowList {
	if m.Page == PageFavorites {
		return m.FavoritesPane
	}
	return m.ShowsPane
}

func (m *Model) selectedShow() *domain.Show {
	return m.activePane().SelectedShow()
}

func (m *Model) updateInspector() {
	selected := m.selectedShow()
	if selected != nil && m.detail != nil && m.detail.ID == selected.ID {
		m.Inspector.SetShow(m.detail)
		return
	}
	m.detail = nil
	m.Inspector.SetShow(selected)
}

// restoreScroll applies the saved scroll position once rows are available,
// revealing already-fetched rows until the position is in view
func (m *Model) restoreScroll() {
	if m.restored || !m.Ready {
		return
	}
	st := m.List.State()
	if len(st.Shows) == 0 {
		return
	}
	m.restored = true

	for st.ScrollPosition >= st.DisplayLimit && st.DisplayLimit < len(st.Shows) {
		m.List.ShowMore()
		st = m.List.State()
	}
	m.syncFromStores()
	m.ShowsPane.ScrollTo(st.ScrollPosition)
	m.updateInspector()
}

// loadMore is the scroll sentinel: reveal another batch, fetching when the
// reveal window has run past the fetched rows
func (m *Model) loadMore() tea.Cmd {
	if m.Page != PageShows || !m.ShowsPane.AtSentinel() || m.List.Loading() || !m.List.HasMoreVisible() {
		return nil
	}
	m.List.ShowMore()
	m.syncFromStores()
	if m.List.NeedsMoreData() {
		return LoadNextPageCmd(m.List)
	}
	return nil
}

func (m *Model) setStatus(msg string, isErr bool) tea.Cmd {
	m.statusSeq++
	m.StatusMsg = msg
	m.StatusIsErr = isErr
	return ClearStatusCmd(m.statusSeq, statusTimeout)
}

// saveScroll records the shows page viewport
func (m *Model) saveScroll() {
	m.List.SaveScrollPosition(m.ShowsPane.Offset())
}

func (m Model) View() string {
	if !m.Ready {
		return "Loading..."
	}

	if m.State == StateHelp {
		return m.renderHelp()
	}

	content := m.renderContent()
	view := lipgloss.JoinVertical(lipgloss.Left, m.renderTabs(), content, m.renderFooter())

	// Overlays
	switch {
	case m.State == StateConfirmDelete:
		view = m.place(m.renderDeleteConfirmation())
	case m.EditModal.IsVisible():
		view = m.place(m.EditModal.View())
	case m.Omnibar.IsVisible():
		view = m.place(m.Omnibar.View())
	}
	return view
}

func (m Model) place(modal string) string {
	return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, modal)
}
