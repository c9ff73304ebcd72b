package domain

import (
	"fmt"
	"strings"
)

// ShowStatus is the lifecycle status reported by the catalog
type ShowStatus string

const (
	StatusRunning       ShowStatus = "Running"
	StatusEnded         ShowStatus = "Ended"
	StatusTBD           ShowStatus = "To Be Determined"
	StatusInDevelopment ShowStatus = "In Development"
	StatusUnknown       ShowStatus = ""
)

// String returns a human-readable representation of the status
func (s ShowStatus) String() string {
	if s == StatusUnknown {
		return "Unknown"
	}
	return string(s)
}

// Image holds the two poster resolutions served by the catalog
type Image struct {
	Medium   string `json:"medium"`
	Original string `json:"original"`
}

// Network is the originating broadcaster of a show
type Network struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Show represents a catalog entry
type Show struct {
	ID        int        `json:"id"`                  // Catalog-assigned identifier
	Name      string     `json:"name"`                // Display name
	Type      string     `json:"type"`                // Classification ("Scripted", "Reality", ...)
	Language  string     `json:"language,omitempty"`  // Empty when unknown
	Genres    []string   `json:"genres"`              // Unordered genre tags
	Status    ShowStatus `json:"status"`              // Lifecycle status
	Runtime   *int       `json:"runtime,omitempty"`   // Minutes
	Premiered string     `json:"premiered,omitempty"` // ISO date
	Ended     string     `json:"ended,omitempty"`     // ISO date
	Rating    *float64   `json:"rating,omitempty"`    // Average rating (0-10)
	Image     *Image     `json:"image,omitempty"`
	Summary   string     `json:"summary,omitempty"` // May contain HTML markup
	Network   *Network   `json:"network,omitempty"`

	IsFavorite bool `json:"isFavorite,omitempty"`
}

// Year returns the premiere year, or 0 when unknown
func (s Show) Year() int {
	if len(s.Premiered) < 4 {
		return 0
	}
	var year int
	if _, err := fmt.Sscanf(s.Premiered[:4], "%d", &year); err != nil {
		return 0
	}
	return year
}

// YearRange returns "2008–2013", "2019–" or "" depending on known dates
func (s Show) YearRange() string {
	start := s.Year()
	if start == 0 {
		return ""
	}
	if len(s.Ended) >= 4 {
		return fmt.Sprintf("%d–%s", start, s.Ended[:4])
	}
	if s.Status == StatusRunning {
		return fmt.Sprintf("%d–", start)
	}
	return fmt.Sprintf("%d", start)
}

// RatingText formats the average rating, or "–" when absent
func (s Show) RatingText() string {
	if s.Rating == nil {
		return "–"
	}
	return fmt.Sprintf("%.1f", *s.Rating)
}

// RuntimeText formats the runtime in minutes
func (s Show) RuntimeText() string {
	if s.Runtime == nil || *s.Runtime <= 0 {
		return ""
	}
	return fmt.Sprintf("%dm", *s.Runtime)
}

// NetworkName returns the network name, or "" when absent
func (s Show) NetworkName() string {
	if s.Network == nil {
		return ""
	}
	return s.Network.Name
}

// GenreLine renders at most max genres, noting how many were left out
func (s Show) GenreLine(max int) string {
	if len(s.Genres) == 0 {
		return ""
	}
	if max <= 0 || len(s.Genres) <= max {
		return strings.Join(s.Genres, ", ")
	}
	return fmt.Sprintf("%s +%d", strings.Join(s.Genres[:max], ", "), len(s.Genres)-max)
}

// Clone returns a deep copy so callers can't mutate shared slices or pointers
func (s Show) Clone() Show {
	c := s
	if s.Genres != nil {
		c.Genres = append([]string{}, s.Genres...)
	}
	if s.Runtime != nil {
		v := *s.Runtime
		c.Runtime = &v
	}
	if s.Rating != nil {
		v := *s.Rating
		c.Rating = &v
	}
	if s.Image != nil {
		v := *s.Image
		c.Image = &v
	}
	if s.Network != nil {
		v := *s.Network
		c.Network = &v
	}
	return c
}

// Person represents a cast member
type Person struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Image *Image `json:"image,omitempty"`
}

// PersonMatch is a people search hit with the catalog's relevance score
type PersonMatch struct {
	Score  float64
	Person Person
}

// Character is the role a person played in a show
type Character struct {
	ID    int
	Name  string
	Image *Image
}

// CastCredit links a person to a show through a character
type CastCredit struct {
	Show      Show
	Character Character
}

// ShowsFromCredits extracts the credited shows, keeping the first occurrence of each ID
func ShowsFromCredits(credits []CastCredit) []Show {
	seen := make(map[int]bool, len(credits))
	shows := make([]Show, 0, len(credits))
	for _, c := range credits {
		if seen[c.Show.ID] {
			continue
		}
		seen[c.Show.ID] = true
		shows = append(shows, c.Show)
	}
	return shows
}
