package tvmaze

// ShowDTO is a show as returned by /shows, /shows/:id and embedded in credits
type ShowDTO struct {
	ID         int         `json:"id"`
	URL        string      `json:"url,omitempty"`
	Name       string      `json:"name"`
	Type       string      `json:"type"`
	Language   *string     `json:"language"`
	Genres     []string    `json:"genres"`
	Status     string      `json:"status"`
	Runtime    *int        `json:"runtime"`
	Premiered  *string     `json:"premiered"`
	Ended      *string     `json:"ended"`
	Rating     RatingDTO   `json:"rating"`
	Image      *ImageDTO   `json:"image"`
	Summary    *string     `json:"summary"`
	Network    *NetworkDTO `json:"network"`
	WebChannel *NetworkDTO `json:"webChannel,omitempty"`
	Updated    int64       `json:"updated,omitempty"`
}

// RatingDTO wraps the nullable average rating
type RatingDTO struct {
	Average *float64 `json:"average"`
}

// ImageDTO holds poster URLs
type ImageDTO struct {
	Medium   string `json:"medium"`
	Original string `json:"original"`
}

// NetworkDTO is a broadcaster or web channel
type NetworkDTO struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// ShowSearchResultDTO is the wrapper returned by /search/shows
type ShowSearchResultDTO struct {
	Score float64 `json:"score"`
	Show  ShowDTO `json:"show"`
}

// PersonDTO is a person as returned by /search/people
type PersonDTO struct {
	ID    int       `json:"id"`
	Name  string    `json:"name"`
	Image *ImageDTO `json:"image"`
}

// PersonSearchResultDTO is the wrapper returned by /search/people
type PersonSearchResultDTO struct {
	Score  float64   `json:"score"`
	Person PersonDTO `json:"person"`
}

// CastCreditDTO is returned by /people/:id/castcredits?embed[]=show&embed[]=character
type CastCreditDTO struct {
	Embedded struct {
		Show      ShowDTO      `json:"show"`
		Character CharacterDTO `json:"character"`
	} `json:"_embedded"`
}

// CharacterDTO is the role embedded in a cast credit
type CharacterDTO struct {
	ID    int       `json:"id"`
	Name  string    `json:"name"`
	Image *ImageDTO `json:"image"`
}

// ErrorDTO is the body TVMaze sends with non-200 responses
type ErrorDTO struct {
	Name    string `json:"name"`
	Message string `json:"message"`
	Code    int    `json:"code"`
	Status  int    `json:"status"`
}
