package tvmaze

import (
	"github.com/mmcdole/showbox/internal/domain"
)

// MapShows converts TVMaze shows to domain shows
func MapShows(dtos []ShowDTO) []domain.Show {
	shows := make([]domain.Show, 0, len(dtos))
	for _, d := range dtos {
		shows = append(shows, MapShow(d))
	}
	return shows
}

// MapShow converts a single TVMaze show to a domain show
func MapShow(d ShowDTO) domain.Show {
	show := domain.Show{
		ID:        d.ID,
		Name:      d.Name,
		Type:      d.Type,
		Language:  deref(d.Language),
		Genres:    d.Genres,
		Status:    domain.ShowStatus(d.Status),
		Runtime:   d.Runtime,
		Premiered: deref(d.Premiered),
		Ended:     deref(d.Ended),
		Rating:    d.Rating.Average,
		Image:     mapImage(d.Image),
		Summary:   deref(d.Summary),
		Network:   mapNetwork(d.Network),
	}

	if show.Genres == nil {
		show.Genres = []string{}
	}

	// Streaming-only shows carry a web channel instead of a network
	if show.Network == nil {
		show.Network = mapNetwork(d.WebChannel)
	}

	return show
}

// MapShowSearchResults unwraps /search/shows results, keeping catalog order
func MapShowSearchResults(results []ShowSearchResultDTO) []domain.Show {
	shows := make([]domain.Show, 0, len(results))
	for _, r := range results {
		shows = append(shows, MapShow(r.Show))
	}
	return shows
}

// MapPeople unwraps /search/people results
func MapPeople(results []PersonSearchResultDTO) []domain.PersonMatch {
	people := make([]domain.PersonMatch, 0, len(results))
	for _, r := range results {
		people = append(people, domain.PersonMatch{
			Score:  r.Score,
			Person: mapPerson(r.Person),
		})
	}
	return people
}

// MapCastCredits converts embedded cast credits
func MapCastCredits(dtos []CastCreditDTO) []domain.CastCredit {
	credits := make([]domain.CastCredit, 0, len(dtos))
	for _, d := range dtos {
		credits = append(credits, domain.CastCredit{
			Show: MapShow(d.Embedded.Show),
			Character: domain.Character{
				ID:    d.Embedded.Character.ID,
				Name:  d.Embedded.Character.Name,
				Image: mapImage(d.Embedded.Character.Image),
			},
		})
	}
	return credits
}

func mapPerson(d PersonDTO) domain.Person {
	return domain.Person{
		ID:    d.ID,
		Name:  d.Name,
		Image: mapImage(d.Image),
	}
}

func mapImage(d *ImageDTO) *domain.Image {
	if d == nil {
		return nil
	}
	return &domain.Image{Medium: d.Medium, Original: d.Original}
}

func mapNetwork(d *NetworkDTO) *domain.Network {
	if d == nil {
		return nil
	}
	return &domain.Network{ID: d.ID, Name: d.Name}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
