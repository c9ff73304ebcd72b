package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/showbox/internal/domain"
	"github.com/mmcdole/showbox/internal/tui/styles"
)

// Layout constants for inspector
const (
	InspectorBorderHeight     = 2
	InspectorScrollIndicators = 2
)

// inspectorContent holds the three-zone layout content
type inspectorContent struct {
	header string // fixed top
	body   string // scrollable middle
	footer string // fixed bottom
}

// Inspector displays details for the selected show
type Inspector struct {
	show       *domain.Show
	refreshing bool
	width      int
	height     int
	offset     int // body scroll offset
	maxVisible int
}

func NewInspector() Inspector {
	return Inspector{}
}

// SetShow sets the show to display, resetting scroll when it changes
func (i *Inspector) SetShow(show *domain.Show) {
	if show == nil || i.show == nil || show.ID != i.show.ID {
		i.offset = 0
		i.refreshing = false
	}
	i.show = show
}

// SetRefreshing marks the displayed show as being re-fetched
func (i *Inspector) SetRefreshing(refreshing bool) {
	i.refreshing = refreshing
}

// ShowID returns the displayed show's id, or 0
func (i Inspector) ShowID() int {
	if i.show == nil {
		return 0
	}
	return i.show.ID
}

// ScrollBy moves the body window by n lines; View clamps it
func (i *Inspector) ScrollBy(n int) {
	i.offset = max(i.offset+n, 0)
}

func (i *Inspector) SetSize(width, height int) {
	i.width = width
	i.height = height
	// Border, scroll indicators, title and blank line
	i.maxVisible = max(height-InspectorBorderHeight-InspectorScrollIndicators-2, 1)
}

func (i Inspector) View() string {
	style := styles.InactiveBorder

	// Border takes 2 chars, leave 1 char safety margin
	contentWidth := max(i.width-3, 10)
	content := i.renderInspector(contentWidth)

	titleLine := styles.AccentStyle.Render("Info")
	if i.refreshing {
		titleLine += styles.DimStyle.Render(" · refreshing")
	}

	headerLines := splitLines(content.header)
	footerLines := splitLines(content.footer)
	bodyLines := splitLines(content.body)

	availableForBody := max(i.maxVisible-len(headerLines)-len(footerLines), 1)

	offset := min(i.offset, max(len(bodyLines)-availableForBody, 0))
	end := min(offset+availableForBody, len(bodyLines))
	visibleBody := bodyLines[offset:end]

	up := " "
	if offset > 0 {
		up = styles.DimStyle.Render("↑ more")
	}
	down := " "
	if end < len(bodyLines) {
		down = styles.DimStyle.Render("↓ more")
	}

	parts := []string{titleLine, ""}
	if content.header != "" {
		parts = append(parts, headerLines...)
	}
	parts = append(parts, up)
	parts = append(parts, visibleBody...)
	for j := len(visibleBody); j < availableForBody; j++ {
		parts = append(parts, "")
	}
	parts = append(parts, down)
	if content.footer != "" {
		parts = append(parts, footerLines...)
	}

	frameW, frameH := style.GetFrameSize()
	return style.
		Width(i.width - frameW).
		Height(i.height - frameH).
		Render(strings.Join(parts, "\n"))
}

func (i Inspector) renderInspector(width int) inspectorContent {
	if i.show == nil {
		return inspectorContent{body: styles.DimStyle.Render("No show selected")}
	}
	return inspectorContent{
		header: renderShowHeader(*i.show, width),
		body:   renderShowBody(*i.show, width),
		footer: renderShowFooter(*i.show, width),
	}
}

func renderShowHeader(show domain.Show, width int) string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render(styles.Truncate(show.Name, width)))
	b.WriteString("\n")

	// Meta line: Years · Status · Network
	var meta []string
	if years := show.YearRange(); years != "" {
		meta = append(meta, years)
	}
	if show.Status != domain.StatusUnknown {
		meta = append(meta, show.Status.String())
	}
	if network := show.NetworkName(); network != "" {
		meta = append(meta, network)
	}
	if len(meta) > 0 {
		b.WriteString(styles.DimStyle.Render(styles.Truncate(strings.Join(meta, " · "), width)))
		b.WriteString("\n")
	}

	// Rating, runtime and favorite grouped left
	var status []string
	if show.Rating != nil {
		var ratingStyle lipgloss.Style
		switch {
		case *show.Rating >= 7:
			ratingStyle = lipgloss.NewStyle().Foreground(styles.Green)
		case *show.Rating >= 5:
			ratingStyle = lipgloss.NewStyle().Foreground(styles.Gold)
		default:
			ratingStyle = lipgloss.NewStyle().Foreground(styles.Red)
		}
		status = append(status, ratingStyle.Render("★ "+show.RatingText()))
	}
	if rt := show.RuntimeText(); rt != "" {
		status = append(status, styles.DimStyle.Render(rt))
	}
	if show.IsFavorite {
		status = append(status, styles.FavoriteStyle.Render(styles.FavoriteChar+" Favorite"))
	}
	b.WriteString(strings.Join(status, "   "))

	return strings.TrimRight(b.String(), "\n")
}

func renderShowBody(show domain.Show, width int) string {
	bodyWidth := min(width-2, 80)

	var lines []string
	if len(show.Genres) > 0 {
		for _, l := range styles.Wrap(strings.Join(show.Genres, ", "), bodyWidth) {
			lines = append(lines, styles.AccentStyle.Render(l))
		}
		lines = append(lines, "")
	}

	summary := show.PlainSummary()
	if summary == "" {
		lines = append(lines, styles.DimStyle.Render("No summary"))
		return strings.Join(lines, "\n")
	}
	for _, l := range styles.Wrap(summary, bodyWidth) {
		lines = append(lines, styles.SubtitleStyle.Render(l))
	}
	return strings.Join(lines, "\n")
}

func renderShowFooter(show domain.Show, width int) string {
	var rows []string
	if show.Type != "" {
		rows = append(rows, "Type      "+show.Type)
	}
	if show.Language != "" {
		rows = append(rows, "Language  "+show.Language)
	}
	if show.Premiered != "" {
		rows = append(rows, "Premiered "+show.Premiered)
	}
	if show.Ended != "" {
		rows = append(rows, "Ended     "+show.Ended)
	}
	rows = append(rows, fmt.Sprintf("TVMaze    #%d", show.ID))

	var b strings.Builder
	b.WriteString(styles.DimStyle.Render(strings.Repeat("─", width)))
	for _, r := range rows {
		b.WriteString("\n")
		b.WriteString(styles.DimStyle.Render(styles.Truncate(r, width)))
	}
	return b.String()
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
