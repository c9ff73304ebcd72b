package tui

// Layout proportions
const (
	ListColumnPercent = 55 // Show list when the inspector is open
	MinColumnWidth    = 20

	// Vertical chrome: tab bar and single footer line
	ChromeHeight = 2
)

// paneLayout holds calculated widths for the View
type paneLayout struct {
	listWidth      int
	inspectorWidth int // 0 if not shown
}

// calculateLayout splits the width between the active list and the inspector
func (m Model) calculateLayout(availableWidth int) paneLayout {
	if !m.ShowInspector {
		return paneLayout{listWidth: availableWidth}
	}
	list := max(availableWidth*ListColumnPercent/100, MinColumnWidth)
	return paneLayout{
		listWidth:      list,
		inspectorWidth: max(availableWidth-list, 0),
	}
}

// updateLayout updates component sizes based on window size
func (m *Model) updateLayout() {
	if m.Width == 0 || m.Height == 0 {
		return
	}

	contentHeight := m.Height - ChromeHeight
	layout := m.calculateLayout(m.Width)

	m.ShowsPane.SetSize(layout.listWidth, contentHeight)
	m.FavoritesPane.SetSize(layout.listWidth, contentHeight)
	if layout.inspectorWidth > 0 {
		m.Inspector.SetSize(layout.inspectorWidth, contentHeight)
	}
	m.Omnibar.SetSize(m.Width, m.Height)
}
