package domain

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestStripMarkup(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"<p><b>Breaking Bad</b> follows Walter White.</p>", "Breaking Bad follows Walter White."},
		{"<p>One</p><p>Two</p>", "One Two"},
		{"Tom &amp; Jerry<br/>chase", "Tom & Jerry chase"},
		{"plain   text\n here", "plain text here"},
		{"<p>unclosed <i>tag", "unclosed tag"},
	}
	for _, tt := range tests {
		if got := StripMarkup(tt.in); got != tt.want {
			t.Errorf("StripMarkup(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseGenres(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"Drama, Crime ,Thriller", []string{"Drama", "Crime", "Thriller"}},
		{" , Drama,,", []string{"Drama"}},
		{"", []string{}},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, ParseGenres(tt.in)); diff != "" {
			t.Errorf("ParseGenres(%q) (-want +got):\n%s", tt.in, diff)
		}
	}
}

func TestShowChanges_Apply(t *testing.T) {
	rating := 9.2
	orig := Show{ID: 169, Name: "Breaking Bad", Genres: []string{"Drama"}, Rating: &rating, Language: "English"}

	name := "Breaking Bad (2008)"
	genres := []string{"Drama", "Crime"}
	got := ShowChanges{Name: &name, Genres: &genres, ClearRating: true}.Apply(orig)

	want := Show{ID: 169, Name: name, Genres: []string{"Drama", "Crime"}, Language: "English"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Apply (-want +got):\n%s", diff)
	}
	if orig.Rating == nil || orig.Name != "Breaking Bad" {
		t.Error("Apply mutated the original show")
	}

	genres[0] = "Comedy"
	if got.Genres[0] != "Drama" {
		t.Error("Apply shares the genres slice with the changes")
	}

	if !(ShowChanges{}).IsEmpty() || (ShowChanges{Name: &name}).IsEmpty() {
		t.Error("IsEmpty mismatch")
	}
}

func TestShowsFromCredits(t *testing.T) {
	credits := []CastCredit{
		{Show: Show{ID: 10}, Character: Character{ID: 1}},
		{Show: Show{ID: 10}, Character: Character{ID: 2}},
		{Show: Show{ID: 20}, Character: Character{ID: 3}},
		{Show: Show{ID: 10}, Character: Character{ID: 4}},
	}
	var ids []int
	for _, sh := range ShowsFromCredits(credits) {
		ids = append(ids, sh.ID)
	}
	if diff := cmp.Diff([]int{10, 20}, ids); diff != "" {
		t.Errorf("ShowsFromCredits (-want +got):\n%s", diff)
	}
}

func TestShowFormatting(t *testing.T) {
	rating := 8.7
	runtime := 60
	s := Show{
		Premiered: "2008-01-20",
		Ended:     "2013-09-29",
		Rating:    &rating,
		Runtime:   &runtime,
		Genres:    []string{"Drama", "Crime", "Thriller", "Western"},
		Network:   &Network{ID: 20, Name: "AMC"},
	}

	if got := s.YearRange(); got != "2008–2013" {
		t.Errorf("YearRange = %q", got)
	}
	if got := s.RatingText(); got != "8.7" {
		t.Errorf("RatingText = %q", got)
	}
	if got := s.RuntimeText(); got != "60m" {
		t.Errorf("RuntimeText = %q", got)
	}
	if got := s.GenreLine(2); got != "Drama, Crime +2" {
		t.Errorf("GenreLine = %q", got)
	}
	if got := s.NetworkName(); got != "AMC" {
		t.Errorf("NetworkName = %q", got)
	}

	running := Show{Premiered: "2019-05-01", Status: StatusRunning}
	if got := running.YearRange(); got != "2019–" {
		t.Errorf("running YearRange = %q", got)
	}
	if got := (Show{}).RatingText(); got != "–" {
		t.Errorf("missing RatingText = %q", got)
	}
}

func TestShowClone(t *testing.T) {
	rating := 7.0
	s := Show{ID: 1, Genres: []string{"Drama"}, Rating: &rating, Image: &Image{Medium: "m"}}
	c := s.Clone()
	c.Genres[0] = "Comedy"
	*c.Rating = 1
	c.Image.Medium = "x"

	if s.Genres[0] != "Drama" || *s.Rating != 7.0 || s.Image.Medium != "m" {
		t.Errorf("Clone shares state with the original: %+v", s)
	}
}
