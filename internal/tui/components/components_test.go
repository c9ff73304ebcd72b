package components

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"
	"github.com/mmcdole/showbox/internal/domain"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func listOf(n int) []domain.Show {
	shows := make([]domain.Show, n)
	for i := range shows {
		shows[i] = domain.Show{ID: i + 1, Name: "Show"}
	}
	return shows
}

func TestShowList_NavigationAndSentinel(t *testing.T) {
	l := NewShowList("Shows", 2)
	l.SetSize(60, 12)
	l.SetShows(listOf(10))

	if l.AtSentinel() {
		t.Error("AtSentinel at the top of 10 rows")
	}
	for i := 0; i < 7; i++ {
		l, _ = l.Update(keyMsg("j"))
	}
	if got := l.SelectedShow().ID; got != 8 {
		t.Errorf("selected = %d, want 8", got)
	}
	if !l.AtSentinel() {
		t.Error("AtSentinel false three rows from the end")
	}
	if l.Offset() == 0 {
		t.Error("list did not scroll with the cursor")
	}

	l, _ = l.Update(keyMsg("G"))
	l, _ = l.Update(keyMsg("j"))
	if got := l.Cursor(); got != 9 {
		t.Errorf("cursor = %d, want 9", got)
	}

	// Shrinking the list clamps the cursor
	l.SetShows(listOf(4))
	if got := l.Cursor(); got != 3 {
		t.Errorf("cursor after shrink = %d, want 3", got)
	}
}

func TestShowList_ScrollTo(t *testing.T) {
	l := NewShowList("Shows", 2)
	l.SetSize(60, 12)
	l.SetShows(listOf(30))

	l.ScrollTo(12)
	if l.Offset() != 12 || l.Cursor() != 12 {
		t.Errorf("offset %d cursor %d, want 12 12", l.Offset(), l.Cursor())
	}
	l.ScrollTo(100)
	if l.Cursor() != 29 || l.Offset() > 29 {
		t.Errorf("out of range ScrollTo: offset %d cursor %d", l.Offset(), l.Cursor())
	}
}

func TestShowList_Filter(t *testing.T) {
	l := NewShowList("Shows", 2)
	l.SetSize(60, 12)
	l.SetShows([]domain.Show{{ID: 1, Name: "Lost"}, {ID: 2, Name: "Fringe"}, {ID: 3, Name: "Lost Girl"}})

	l.ToggleFilter()
	for _, r := range "lost" {
		l, _ = l.Update(keyMsg(string(r)))
	}
	if got := l.ItemCount(); got != 2 {
		t.Fatalf("filtered count = %d, want 2", got)
	}
	if l.AtSentinel() {
		t.Error("AtSentinel should be off while filtering")
	}

	l, _ = l.Update(keyMsg("esc"))
	if l.IsFiltering() || l.ItemCount() != 3 {
		t.Errorf("after esc: filtering %v count %d", l.IsFiltering(), l.ItemCount())
	}
}

func TestEditModal_Changes(t *testing.T) {
	m := NewEditModal()
	m.Show(domain.Show{
		ID:      169,
		Name:    "Breaking Bad",
		Summary: "<p><b>Breaking Bad</b> follows Walter.</p>",
		Genres:  []string{"Drama", "Crime"},
	})

	if got := m.summary.Value(); got != "Breaking Bad follows Walter." {
		t.Errorf("summary prefilled as %q", got)
	}

	m.genres.SetValue("Drama, , Thriller ,")
	changes, err := m.Changes()
	if err != nil {
		t.Fatalf("Changes: %v", err)
	}
	if diff := cmp.Diff([]string{"Drama", "Thriller"}, *changes.Genres); diff != "" {
		t.Errorf("genres (-want +got):\n%s", diff)
	}
	if *changes.Name != "Breaking Bad" {
		t.Errorf("name = %q", *changes.Name)
	}

	m.name.SetValue("   ")
	if _, err := m.Changes(); !errors.Is(err, ErrNameRequired) {
		t.Errorf("Changes with blank name: err = %v", err)
	}

	var submitted bool
	m, _, submitted = m.Update(keyMsg("ctrl+s"))
	if submitted {
		t.Error("blank name submitted")
	}
	if m.err == nil {
		t.Error("validation error not shown")
	}
}

func TestOmnibar_ChangeAndDistinct(t *testing.T) {
	o := NewOmnibar()
	o.Show(OmnibarShows, "")

	var ev OmnibarEvent
	o, _, ev = o.Update(keyMsg("x"))
	if ev != OmnibarChanged {
		t.Errorf("typing event = %v, want OmnibarChanged", ev)
	}
	if !o.Distinct("x") || o.Distinct("x") {
		t.Error("Distinct should accept a new query once")
	}

	o.Show(OmnibarActor, "")
	o.SetPeople("stale", []domain.PersonMatch{{Person: domain.Person{ID: 1}}})
	if o.SelectedPerson() != nil {
		t.Error("stale people results were kept")
	}
	o.SetPeople("", []domain.PersonMatch{{Score: 3, Person: domain.Person{ID: 7}}})
	if p := o.SelectedPerson(); p == nil || p.ID != 7 {
		t.Errorf("SelectedPerson = %+v", p)
	}

	_, _, ev = o.Update(keyMsg("esc"))
	if ev != OmnibarCancel {
		t.Errorf("esc event = %v, want OmnibarCancel", ev)
	}
}
