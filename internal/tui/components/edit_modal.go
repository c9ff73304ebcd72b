package components

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/showbox/internal/domain"
	"github.com/mmcdole/showbox/internal/tui/styles"
)

// ErrNameRequired is reported when the edit form is submitted without a name
var ErrNameRequired = errors.New("name is required")

const (
	editFieldName = iota
	editFieldSummary
	editFieldGenres
	editFieldCount
)

const editModalWidth = 60

// EditModal is the form for locally editing a show's name, summary and genres
type EditModal struct {
	visible bool
	showID  int
	focus   int
	err     error

	name    textinput.Model
	summary textarea.Model
	genres  textinput.Model
}

func NewEditModal() EditModal {
	name := textinput.New()
	name.Placeholder = "Show name"
	name.CharLimit = 200
	name.Width = editModalWidth - 8
	name.Prompt = ""
	name.TextStyle = lipgloss.NewStyle().Foreground(styles.White)
	name.PlaceholderStyle = styles.DimStyle

	summary := textarea.New()
	summary.Placeholder = "Summary"
	summary.ShowLineNumbers = false
	summary.CharLimit = 4000
	summary.SetWidth(editModalWidth - 6)
	summary.SetHeight(6)

	genres := textinput.New()
	genres.Placeholder = "Drama, Crime"
	genres.CharLimit = 200
	genres.Width = editModalWidth - 8
	genres.Prompt = ""
	genres.TextStyle = lipgloss.NewStyle().Foreground(styles.White)
	genres.PlaceholderStyle = styles.DimStyle

	return EditModal{name: name, summary: summary, genres: genres}
}

// Show opens the form prefilled from show. The summary is edited as plain text.
func (m *EditModal) Show(show domain.Show) tea.Cmd {
	m.visible = true
	m.showID = show.ID
	m.err = nil
	m.name.SetValue(show.Name)
	m.summary.SetValue(show.PlainSummary())
	m.genres.SetValue(strings.Join(show.Genres, ", "))
	return m.setFocus(editFieldName)
}

func (m *EditModal) Hide() {
	m.visible = false
	m.name.Blur()
	m.summary.Blur()
	m.genres.Blur()
}

func (m EditModal) IsVisible() bool { return m.visible }

// ShowID returns the id of the show being edited
func (m EditModal) ShowID() int { return m.showID }

// Changes validates the form and returns the edit to apply
func (m EditModal) Changes() (domain.ShowChanges, error) {
	name := strings.TrimSpace(m.name.Value())
	if name == "" {
		return domain.ShowChanges{}, ErrNameRequired
	}
	summary := strings.TrimSpace(m.summary.Value())
	genres := domain.ParseGenres(m.genres.Value())
	return domain.ShowChanges{Name: &name, Summary: &summary, Genres: &genres}, nil
}

// Update handles input, returning true when the form was submitted and is valid
func (m EditModal) Update(msg tea.Msg) (EditModal, tea.Cmd, bool) {
	if !m.visible {
		return m, nil, false
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, EditModalKeys.Escape):
			m.Hide()
			return m, nil, false
		case key.Matches(keyMsg, EditModalKeys.Submit),
			keyMsg.String() == "enter" && m.focus == editFieldGenres:
			if _, err := m.Changes(); err != nil {
				m.err = err
				return m, m.setFocus(editFieldName), false
			}
			return m, nil, true
		case key.Matches(keyMsg, EditModalKeys.Next),
			keyMsg.String() == "enter" && m.focus == editFieldName:
			return m, m.setFocus((m.focus + 1) % editFieldCount), false
		case key.Matches(keyMsg, EditModalKeys.Prev):
			return m, m.setFocus((m.focus + editFieldCount - 1) % editFieldCount), false
		}
	}

	var cmd tea.Cmd
	switch m.focus {
	case editFieldName:
		m.name, cmd = m.name.Update(msg)
		if strings.TrimSpace(m.name.Value()) != "" {
			m.err = nil
		}
	case editFieldSummary:
		m.summary, cmd = m.summary.Update(msg)
	case editFieldGenres:
		m.genres, cmd = m.genres.Update(msg)
	}
	return m, cmd, false
}

func (m *EditModal) setFocus(field int) tea.Cmd {
	m.focus = field
	m.name.Blur()
	m.summary.Blur()
	m.genres.Blur()
	switch field {
	case editFieldSummary:
		return m.summary.Focus()
	case editFieldGenres:
		return m.genres.Focus()
	default:
		return m.name.Focus()
	}
}

func (m EditModal) View() string {
	if !m.visible {
		return ""
	}

	label := func(field int, text string) string {
		if m.focus == field {
			return styles.AccentStyle.Render(text)
		}
		return styles.DimStyle.Render(text)
	}

	rows := []string{
		styles.ModalTitleStyle.Render("Edit show"),
		label(editFieldName, "Name"),
		m.name.View(),
	}
	if m.err != nil {
		rows = append(rows, styles.ErrorStyle.Render(m.err.Error()))
	}
	rows = append(rows,
		"",
		label(editFieldSummary, "Summary"),
		m.summary.View(),
		"",
		label(editFieldGenres, "Genres (comma-separated)"),
		m.genres.View(),
		"",
		styles.HelpKeyStyle.Render("tab")+styles.HelpDescStyle.Render(" next  ")+
			styles.HelpKeyStyle.Render("C-s")+styles.HelpDescStyle.Render(" save  ")+
			styles.HelpKeyStyle.Render("esc")+styles.HelpDescStyle.Render(" cancel"),
	)

	return styles.ModalStyle.
		Width(editModalWidth).
		Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
