package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/showbox/internal/tui/styles"
)

// RenderSpinner renders a loading spinner
func RenderSpinner(frame int) string {
	return styles.SpinnerStyle.Render(styles.SpinnerFrames[frame%len(styles.SpinnerFrames)])
}

// renderTabs renders the page switcher
func (m Model) renderTabs() string {
	tab := func(label string, active bool) string {
		if active {
			return styles.BadgeStyle.Render(label)
		}
		return styles.DimBadgeStyle.Render(label)
	}

	favLabel := "Favorites"
	if n := m.Favorites.Count(); n > 0 {
		favLabel = fmt.Sprintf("Favorites %d", n)
	}
	tabs := lipgloss.JoinHorizontal(lipgloss.Top,
		tab("Shows", m.Page == PageShows), " ",
		tab(favLabel, m.Page == PageFavorites),
	)
	return lipgloss.NewStyle().Width(m.Width).MaxWidth(m.Width).Render(tabs)
}

// renderContent renders the active list with the inspector beside it
func (m Model) renderContent() string {
	pane := m.activePane()
	if !m.ShowInspector {
		return pane.View()
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, pane.View(), m.Inspector.View())
}

// renderFooter renders the status bar: status on the left, hints in the
// middle and the help key on the right
func (m Model) renderFooter() string {
	var left string
	switch {
	case m.StatusMsg != "" && m.StatusIsErr:
		left = styles.ErrorStyle.Render(m.StatusMsg)
	case m.StatusMsg != "":
		left = styles.SuccessStyle.Render(m.StatusMsg)
	case m.List.Loading():
		left = RenderSpinner(m.SpinnerFrame) + styles.DimStyle.Render(" Loading shows...")
	}

	hints := "/ search · a actor · f favorite · e edit · x delete · tab page"
	if m.Page == PageShows && m.List.State().Mode.IsSearch() {
		hints = "esc back to all shows · " + hints
	}
	center := styles.DimStyle.Render(hints)
	right := styles.HelpKeyStyle.Render("?") + styles.HelpDescStyle.Render(" help")

	gap := m.Width - lipgloss.Width(left) - lipgloss.Width(center) - lipgloss.Width(right)
	if gap < 2 {
		// Not enough room, drop the hints
		center = ""
		gap = m.Width - lipgloss.Width(left) - lipgloss.Width(right)
	}
	gap = max(gap, 1)
	leftGap := gap / 2
	if left == "" {
		leftGap = gap - gap/2
	}

	return left + strings.Repeat(" ", leftGap) + center + strings.Repeat(" ", gap-leftGap) + right
}

// renderHelp renders the key reference
func (m Model) renderHelp() string {
	sections := []struct {
		title string
		keys  [][2]string
	}{
		{"Navigation", [][2]string{
			{"↑/k ↓/j", "Move"},
			{"pgup/pgdn", "Page up/down"},
			{"g/G", "Top/bottom"},
			{"tab", "Shows / favorites"},
			{"enter", "Fetch details"},
			{"i", "Toggle inspector"},
			{"J/K", "Scroll details"},
		}},
		{"Search", [][2]string{
			{"/", "Search shows"},
			{"a", "Shows by actor"},
			{"ctrl+f", "Filter current list"},
			{"esc", "Clear filter or search"},
		}},
		{"Shows", [][2]string{
			{"f", "Toggle favorite"},
			{"e", "Edit"},
			{"x", "Delete"},
			{"R", "Reload from the first page"},
		}},
		{"General", [][2]string{
			{"?", "Help"},
			{"q", "Quit"},
			{"Q", "Quit and forget scroll position"},
		}},
	}

	var b strings.Builder
	b.WriteString(styles.ModalTitleStyle.Render("Keyboard shortcuts"))
	b.WriteString("\n")
	for _, s := range sections {
		b.WriteString("\n")
		b.WriteString(styles.AccentStyle.Render(s.title))
		b.WriteString("\n")
		for _, k := range s.keys {
			b.WriteString(styles.HelpKeyStyle.Render(fmt.Sprintf("  %-12s", k[0])))
			b.WriteString(styles.HelpDescStyle.Render(k[1]))
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")
	b.WriteString(styles.DimStyle.Render("Press any key to close"))

	return m.place(styles.ModalStyle.Render(b.String()))
}

// renderDeleteConfirmation renders the delete prompt for the pending show
func (m Model) renderDeleteConfirmation() string {
	if m.pendingDelete == nil {
		return ""
	}

	title := "Delete show"
	question := fmt.Sprintf("Remove %q from the list?", m.pendingDelete.Name)
	if m.Page == PageFavorites {
		title = "Remove favorite"
		question = fmt.Sprintf("Remove %q from favorites?", m.pendingDelete.Name)
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		styles.ModalTitleStyle.Render(title),
		"",
		question,
		"",
		styles.HelpKeyStyle.Render("y")+styles.HelpDescStyle.Render(" confirm  ")+
			styles.HelpKeyStyle.Render("n")+styles.HelpDescStyle.Render(" cancel"),
	)
	return styles.ModalStyle.Render(body)
}
