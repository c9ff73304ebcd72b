package domain

import "strings"

// ShowChanges is a partial update to a Show. Nil fields are left untouched.
type ShowChanges struct {
	Name     *string
	Summary  *string
	Genres   *[]string
	Language *string
	Status   *ShowStatus
	Runtime  *int
	Rating   *float64

	// ClearRating removes the rating; it wins over Rating
	ClearRating bool
}

// IsEmpty reports whether the changes would leave a show untouched
func (c ShowChanges) IsEmpty() bool {
	return c.Name == nil && c.Summary == nil && c.Genres == nil && c.Language == nil &&
		c.Status == nil && c.Runtime == nil && c.Rating == nil && !c.ClearRating
}

// Apply returns a copy of show with the set fields merged in
func (c ShowChanges) Apply(show Show) Show {
	out := show.Clone()
	if c.Name != nil {
		out.Name = *c.Name
	}
	if c.Summary != nil {
		out.Summary = *c.Summary
	}
	if c.Genres != nil {
		out.Genres = append([]string{}, (*c.Genres)...)
	}
	if c.Language != nil {
		out.Language = *c.Language
	}
	if c.Status != nil {
		out.Status = *c.Status
	}
	if c.Runtime != nil {
		v := *c.Runtime
		out.Runtime = &v
	}
	if c.Rating != nil {
		v := *c.Rating
		out.Rating = &v
	}
	if c.ClearRating {
		out.Rating = nil
	}
	return out
}

// ParseGenres splits a comma-separated genre list, dropping blanks
func ParseGenres(s string) []string {
	genres := []string{}
	for _, g := range strings.Split(s, ",") {
		if g = strings.TrimSpace(g); g != "" {
			genres = append(genres, g)
		}
	}
	return genres
}
