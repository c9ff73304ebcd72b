package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/showbox/internal/domain"
	"github.com/mmcdole/showbox/internal/search"
	"github.com/mmcdole/showbox/internal/tui/styles"
)

// Layout constants for list panes
const (
	// Border adds 1 char on each side (left+right for width, top+bottom for height)
	BorderWidth  = 2
	BorderHeight = 2

	// Scroll indicators ("↑ more" and "↓ more") each take 1 line
	ScrollIndicatorLines = 2

	// SentinelRows is how close to the end the cursor must be to ask for more
	SentinelRows = 3
)

// ShowList is a scrollable, filterable list of shows
type ShowList struct {
	shows []domain.Show

	// Selection
	cursor     int
	offset     int
	maxVisible int

	// Dimensions
	width   int
	height  int
	focused bool

	title     string
	emptyText string
	genres    int // Genres shown per row

	// Footer state
	loading      bool
	hasMore      bool
	spinnerFrame int

	// Filter state
	filterActive bool
	filterInput  textinput.Model
	filterQuery  string
	matches      []search.Match // nil when unfiltered
}

// NewShowList creates an empty list with the given title
func NewShowList(title string, genres int) *ShowList {
	ti := textinput.New()
	ti.Placeholder = "type to filter..."
	ti.Prompt = "filter: "
	ti.PromptStyle = styles.FilterPromptStyle
	ti.TextStyle = styles.FilterStyle

	return &ShowList{
		title:       title,
		emptyText:   "No shows",
		genres:      genres,
		filterInput: ti,
	}
}

// SetShows replaces the rows, keeping the cursor in range and any filter applied
func (c *ShowList) SetShows(shows []domain.Show) {
	c.shows = shows
	if c.filterActive && c.filterQuery != "" {
		c.matches = search.FilterShows(c.filterQuery, c.shows)
	}
	c.clampCursor()
}

func (c *ShowList) SetTitle(title string)     { c.title = title }
func (c *ShowList) SetEmptyText(text string)  { c.emptyText = text }
func (c *ShowList) SetLoading(loading bool)   { c.loading = loading }
func (c *ShowList) SetHasMore(hasMore bool)   { c.hasMore = hasMore }
func (c *ShowList) SetSpinnerFrame(frame int) { c.spinnerFrame = frame }
func (c *ShowList) SetFocused(focused bool)   { c.focused = focused }

func (c *ShowList) SetSize(width, height int) {
	c.width = width
	c.height = height
	c.recalcMaxVisible()
	c.ensureVisible()
}

// SelectedShow returns the show under the cursor, or nil for an empty list
func (c *ShowList) SelectedShow() *domain.Show {
	count := c.ItemCount()
	if count == 0 || c.cursor >= count {
		return nil
	}
	sh := c.shows[c.mapIndex(c.cursor)]
	return &sh
}

// Cursor returns the selected row
func (c *ShowList) Cursor() int { return c.cursor }

// Offset returns the first rendered row; this is the scroll position that gets saved
func (c *ShowList) Offset() int { return c.offset }

// ScrollTo restores a saved scroll position, selecting the first row in view
func (c *ShowList) ScrollTo(offset int) {
	c.offset = offset
	c.cursor = offset
	c.clampCursor()
	if c.offset > c.cursor {
		c.offset = c.cursor
	}
}

// ItemCount returns the number of rows after filtering
func (c *ShowList) ItemCount() int {
	if c.matches != nil {
		return len(c.matches)
	}
	return len(c.shows)
}

// AtSentinel reports whether the cursor has reached the last rows of an
// unfiltered list, where more data should be revealed or fetched
func (c *ShowList) AtSentinel() bool {
	if c.matches != nil {
		return false
	}
	return c.cursor >= len(c.shows)-SentinelRows
}

// ToggleFilter activates the filter input
func (c *ShowList) ToggleFilter() {
	c.filterActive = true
	c.filterInput.Focus()
	c.recalcMaxVisible()
}

// IsFiltering returns true if filter mode is active
func (c *ShowList) IsFiltering() bool {
	return c.filterActive
}

// IsFilterTyping returns true if filter is active AND input is focused
func (c *ShowList) IsFilterTyping() bool {
	return c.filterActive && c.filterInput.Focused()
}

// ClearFilter deactivates the filter and shows all items
func (c *ShowList) ClearFilter() {
	c.filterActive = false
	c.filterQuery = ""
	c.matches = nil
	c.filterInput.SetValue("")
	c.filterInput.Blur()
	c.recalcMaxVisible()
	c.clampCursor()
}

func (c *ShowList) Update(msg tea.Msg) (*ShowList, tea.Cmd) {
	keyMsg, isKey := msg.(tea.KeyMsg)

	// Typing into the filter
	if c.IsFilterTyping() {
		if isKey {
			switch {
			case key.Matches(keyMsg, ListKeys.Escape):
				c.ClearFilter()
				return c, nil
			case key.Matches(keyMsg, ListKeys.Enter):
				// Keep results, return to navigation
				c.filterInput.Blur()
				return c, nil
			case keyMsg.String() == "backspace" && c.filterInput.Value() == "":
				c.ClearFilter()
				return c, nil
			}
		}
		var cmd tea.Cmd
		c.filterInput, cmd = c.filterInput.Update(msg)
		c.applyFilter()
		return c, cmd
	}

	if !isKey {
		return c, nil
	}

	if c.filterActive {
		switch {
		case key.Matches(keyMsg, ListKeys.Escape):
			c.ClearFilter()
			return c, nil
		case key.Matches(keyMsg, ListKeys.Filter):
			c.filterInput.Focus()
			return c, nil
		}
	}

	count := c.ItemCount()
	if count == 0 {
		return c, nil
	}

	switch {
	case key.Matches(keyMsg, ListKeys.Down):
		if c.cursor < count-1 {
			c.cursor++
		}
	case key.Matches(keyMsg, ListKeys.Up):
		if c.cursor > 0 {
			c.cursor--
		}
	case key.Matches(keyMsg, ListKeys.Home):
		c.cursor = 0
		c.offset = 0
	case key.Matches(keyMsg, ListKeys.End):
		c.cursor = count - 1
	case key.Matches(keyMsg, ListKeys.HalfDown):
		c.cursor = min(c.cursor+c.maxVisible/2, count-1)
	case key.Matches(keyMsg, ListKeys.HalfUp):
		c.cursor = max(c.cursor-c.maxVisible/2, 0)
	case key.Matches(keyMsg, ListKeys.PageDown):
		c.cursor = min(c.cursor+c.maxVisible, count-1)
	case key.Matches(keyMsg, ListKeys.PageUp):
		c.cursor = max(c.cursor-c.maxVisible, 0)
	}
	c.ensureVisible()
	return c, nil
}

func (c *ShowList) View() string {
	style := styles.InactiveBorder
	if c.focused {
		style = styles.ActiveBorder
	}

	// Subtract frame (border) size so total rendered size equals c.width x c.height
	frameW, frameH := style.GetFrameSize()

	return style.
		Width(c.width - frameW).
		Height(c.height - frameH).
		Render(c.renderContent())
}

// Internal methods

func (c *ShowList) recalcMaxVisible() {
	// Interior less the title line and both scroll indicators
	c.maxVisible = c.height - BorderHeight - ScrollIndicatorLines - 1
	if c.filterActive {
		c.maxVisible--
	}
	if c.maxVisible < 1 {
		c.maxVisible = 1
	}
}

func (c *ShowList) ensureVisible() {
	// Size not known yet
	if c.maxVisible <= 0 {
		return
	}
	if c.cursor < c.offset {
		c.offset = c.cursor
	}
	if c.cursor >= c.offset+c.maxVisible {
		c.offset = c.cursor - c.maxVisible + 1
	}
}

func (c *ShowList) clampCursor() {
	count := c.ItemCount()
	if c.cursor >= count {
		c.cursor = count - 1
	}
	if c.cursor < 0 {
		c.cursor = 0
	}
	if c.offset > c.cursor {
		c.offset = c.cursor
	}
	c.ensureVisible()
}

func (c *ShowList) applyFilter() {
	query := c.filterInput.Value()
	c.filterQuery = query

	if strings.TrimSpace(query) == "" {
		c.matches = nil
		return
	}
	c.matches = search.FilterShows(query, c.shows)

	// Reset cursor to first match
	c.cursor = 0
	c.offset = 0
}

func (c *ShowList) mapIndex(i int) int {
	if c.matches != nil && i < len(c.matches) {
		return c.matches[i].Index
	}
	return i
}

// Rendering

func (c *ShowList) renderContent() string {
	itemWidth := c.width - BorderWidth
	if itemWidth < 10 {
		itemWidth = 10
	}

	titleLine := styles.AccentStyle.Render(styles.Truncate(c.title, itemWidth))

	count := c.ItemCount()
	if count == 0 {
		msg := c.emptyText
		switch {
		case c.loading:
			msg = styles.SpinnerFrames[c.spinnerFrame%len(styles.SpinnerFrames)] + " Loading..."
		case c.filterActive && c.filterQuery != "":
			msg = "No matches"
		}
		content := titleLine + "\n \n" + styles.DimStyle.Render(msg) + "\n "
		if c.filterActive {
			content += "\n" + c.renderFilterBar()
		}
		return content
	}

	end := min(c.offset+c.maxVisible, count)
	lines := make([]string, 0, end-c.offset)
	for i := c.offset; i < end; i++ {
		var matched []int
		if c.matches != nil {
			matched = c.matches[i].MatchedIndexes
		}
		lines = append(lines, c.renderShowItem(c.shows[c.mapIndex(i)], i == c.cursor, matched, itemWidth))
	}

	// Header and footer lines are always reserved to avoid layout shifts
	header := " "
	if c.offset > 0 {
		header = styles.DimStyle.Render("↑ more")
	}
	footer := " "
	switch {
	case c.loading:
		footer = styles.SpinnerStyle.Render(styles.SpinnerFrames[c.spinnerFrame%len(styles.SpinnerFrames)]) +
			styles.DimStyle.Render(" Loading more...")
	case end < count:
		footer = styles.DimStyle.Render("↓ more")
	case c.hasMore && c.matches == nil:
		footer = styles.DimStyle.Render("↓ scroll for more")
	}

	content := titleLine + "\n" + header + "\n" + strings.Join(lines, "\n") + "\n" + footer
	if c.filterActive {
		content += "\n" + c.renderFilterBar()
	}
	return content
}

func (c *ShowList) renderShowItem(show domain.Show, selected bool, matched []int, width int) string {
	indicator := styles.NotFavoriteChar
	indicatorFg := styles.DimGray
	if show.IsFavorite {
		indicator = styles.FavoriteChar
		indicatorFg = styles.Gold
	}

	meta := show.RatingText()
	if g := show.GenreLine(c.genres); g != "" {
		meta = g + "  " + meta
	}

	// width - indicator(1) - spaces(3) - margins(2)
	available := width - 6 - lipgloss.Width(meta)
	if available < 5 {
		available = 5
		meta = ""
	}

	name := show.Name
	if year := show.Year(); year > 0 {
		name = fmt.Sprintf("%s (%d)", show.Name, year)
	}
	name = styles.Truncate(name, available)
	pad := available - lipgloss.Width(name)

	dim := styles.DimGray
	parts := []styles.RowPart{{Text: indicator, Foreground: &indicatorFg}, {Text: " "}}
	parts = append(parts, highlightParts(name, matched, selected)...)
	parts = append(parts, styles.RowPart{Text: strings.Repeat(" ", max(pad, 0)+2)})
	parts = append(parts, styles.RowPart{Text: meta, Foreground: &dim})

	return styles.RenderListRow(parts, selected, width)
}

// highlightParts splits text into runs, coloring the matched rune positions
func highlightParts(text string, matched []int, selected bool) []styles.RowPart {
	if len(matched) == 0 {
		return []styles.RowPart{{Text: text}}
	}
	hit := make(map[int]bool, len(matched))
	for _, i := range matched {
		hit[i] = true
	}

	fg := styles.Teal
	if selected {
		fg = styles.Gold
	}

	var (
		parts []styles.RowPart
		run   []rune
		inHit bool
	)
	flush := func() {
		if len(run) == 0 {
			return
		}
		part := styles.RowPart{Text: string(run)}
		if inHit {
			part.Foreground = &fg
		}
		parts = append(parts, part)
		run = nil
	}
	for i, r := range []rune(text) {
		if hit[i] != inHit {
			flush()
			inHit = hit[i]
		}
		run = append(run, r)
	}
	flush()
	return parts
}

func (c *ShowList) renderFilterBar() string {
	bar := c.filterInput.View()
	if c.filterQuery != "" {
		bar += styles.DimStyle.Render(fmt.Sprintf(" [%d/%d]", c.ItemCount(), len(c.shows)))
	}
	return bar
}
