package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/showbox/internal/domain"
	"github.com/mmcdole/showbox/internal/tui/styles"
)

// OmnibarMode selects what the omnibar searches for
type OmnibarMode int

const (
	OmnibarShows OmnibarMode = iota // Free-text show search
	OmnibarActor                    // People search, then their shows
)

// OmnibarEvent tells the caller what an Update did
type OmnibarEvent int

const (
	OmnibarNone    OmnibarEvent = iota
	OmnibarChanged              // Query text changed; debounce it
	OmnibarSubmit               // Enter pressed
	OmnibarCancel               // Closed with esc
)

// Omnibar is the search modal
type Omnibar struct {
	input   textinput.Model
	mode    OmnibarMode
	visible bool
	width   int
	height  int

	people  []domain.PersonMatch
	cursor  int
	loading bool

	prevQuery string // Last value seen, for change detection
	issued    string // Last query acted on, for distinct filtering
}

func NewOmnibar() Omnibar {
	ti := textinput.New()
	ti.CharLimit = 100
	ti.Width = 40
	ti.PromptStyle = styles.AccentStyle
	ti.TextStyle = lipgloss.NewStyle().Foreground(styles.White)
	ti.PlaceholderStyle = styles.DimStyle

	return Omnibar{input: ti}
}

// Show opens the omnibar in mode, prefilled with query
func (o *Omnibar) Show(mode OmnibarMode, query string) {
	o.visible = true
	o.mode = mode
	o.people = nil
	o.cursor = 0
	o.loading = false

	switch mode {
	case OmnibarActor:
		o.input.Prompt = "actor: "
		o.input.Placeholder = "Search people..."
	default:
		o.input.Prompt = "/ "
		o.input.Placeholder = "Search shows..."
	}
	o.input.SetValue(query)
	o.input.CursorEnd()
	o.input.Focus()
	o.prevQuery = query
	o.issued = strings.TrimSpace(query)
}

func (o *Omnibar) Hide() {
	o.visible = false
	o.input.Blur()
}

func (o Omnibar) IsVisible() bool   { return o.visible }
func (o Omnibar) Mode() OmnibarMode { return o.mode }

// Query returns the trimmed input
func (o Omnibar) Query() string {
	return strings.TrimSpace(o.input.Value())
}

// Distinct records query as acted on, reporting false if it matches the
// previous one
func (o *Omnibar) Distinct(query string) bool {
	if query == o.issued {
		return false
	}
	o.issued = query
	return true
}

func (o *Omnibar) SetSize(width, height int) {
	o.width = width
	o.height = height
	o.input.Width = max(min(width*2/3, 80)-14, 10)
}

func (o *Omnibar) SetLoading(loading bool) {
	o.loading = loading
}

// SetPeople shows people results for query; results for a stale query are dropped
func (o *Omnibar) SetPeople(query string, people []domain.PersonMatch) {
	if query != o.Query() {
		return
	}
	o.people = people
	o.cursor = 0
	o.loading = false
}

// SelectedPerson returns the highlighted person, or nil
func (o Omnibar) SelectedPerson() *domain.Person {
	if o.cursor >= len(o.people) {
		return nil
	}
	p := o.people[o.cursor].Person
	return &p
}

func (o Omnibar) Init() tea.Cmd {
	return textinput.Blink
}

func (o Omnibar) Update(msg tea.Msg) (Omnibar, tea.Cmd, OmnibarEvent) {
	if !o.visible {
		return o, nil, OmnibarNone
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, OmnibarKeys.Escape):
			o.Hide()
			return o, nil, OmnibarCancel
		case key.Matches(keyMsg, OmnibarKeys.Enter):
			return o, nil, OmnibarSubmit
		case key.Matches(keyMsg, OmnibarKeys.Down):
			if o.cursor < len(o.people)-1 {
				o.cursor++
			}
			return o, nil, OmnibarNone
		case key.Matches(keyMsg, OmnibarKeys.Up):
			if o.cursor > 0 {
				o.cursor--
			}
			return o, nil, OmnibarNone
		}
	}

	var cmd tea.Cmd
	o.input, cmd = o.input.Update(msg)

	if current := o.input.Value(); current != o.prevQuery {
		o.prevQuery = current
		return o, cmd, OmnibarChanged
	}
	return o, cmd, OmnibarNone
}

func (o Omnibar) View() string {
	if !o.visible {
		return ""
	}

	modalWidth := max(min(o.width*2/3, 80), 40)
	const maxResults = 10

	var b strings.Builder
	if o.mode == OmnibarActor {
		b.WriteString("Shows by actor")
	} else {
		b.WriteString("Search shows")
	}
	b.WriteString("\n\n")
	b.WriteString(o.input.View())
	b.WriteString("\n\n")

	switch {
	case o.loading:
		b.WriteString(styles.SpinnerStyle.Render("Searching..."))
	case o.mode == OmnibarActor:
		o.renderPeople(&b, modalWidth, maxResults)
	default:
		b.WriteString(styles.DimStyle.Render("Results update as you type · enter to close"))
	}

	content := lipgloss.NewStyle().
		Width(modalWidth - 4).
		Render(b.String())

	return styles.ModalStyle.
		Width(modalWidth).
		Render(content)
}

func (o Omnibar) renderPeople(b *strings.Builder, modalWidth, maxResults int) {
	if len(o.people) == 0 {
		if o.Query() != "" {
			b.WriteString(styles.DimStyle.Render("No people found"))
		}
		return
	}

	count := min(len(o.people), maxResults)
	for i := 0; i < count; i++ {
		match := o.people[i]
		style := styles.NormalItemStyle
		if i == o.cursor {
			style = styles.SelectedItemStyle
		}
		b.WriteString(styles.DimBadgeStyle.Render(fmt.Sprintf("%4.1f", match.Score)))
		b.WriteString(" ")
		b.WriteString(style.Render(styles.Truncate(match.Person.Name, modalWidth-16)))
		b.WriteString("\n")
	}
	if len(o.people) > maxResults {
		b.WriteString(styles.DimStyle.Render(fmt.Sprintf("... and %d more", len(o.people)-maxResults)))
	}
}
