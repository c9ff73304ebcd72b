package tvmaze

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/mmcdole/showbox/internal/domain"
)

// newTestClient serves handler and returns a client pointed at it
func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 0, nil)
}

const showJSON = `{
	"id": 42, "name": "Test Show", "type": "Scripted", "language": "English",
	"genres": ["Drama", "Crime"], "status": "Ended", "runtime": 30,
	"premiered": "2020-01-01", "ended": "2021-01-01", "rating": {"average": 8.5},
	"image": {"medium": "m.jpg", "original": "o.jpg"},
	"summary": "<p>A <b>test</b> show</p>", "network": {"id": 1, "name": "NBC"}
}`

func TestClient_GetShows(t *testing.T) {
	var gotURL string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotURL = r.URL.String()
		w.Write([]byte(`[` + showJSON + `, {"id": 7, "name": "Bare", "rating": {"average": null}, "genres": null}]`))
	})

	shows, err := c.GetShows(context.Background(), 2)
	if err != nil {
		t.Fatalf("GetShows: %v", err)
	}
	if gotURL != "/shows?page=2" {
		t.Errorf("request URL = %q, want /shows?page=2", gotURL)
	}

	runtime, rating := 30, 8.5
	want := []domain.Show{
		{
			ID: 42, Name: "Test Show", Type: "Scripted", Language: "English",
			Genres: []string{"Drama", "Crime"}, Status: domain.StatusEnded,
			Runtime: &runtime, Premiered: "2020-01-01", Ended: "2021-01-01",
			Rating:  &rating,
			Image:   &domain.Image{Medium: "m.jpg", Original: "o.jpg"},
			Summary: "<p>A <b>test</b> show</p>",
			Network: &domain.Network{ID: 1, Name: "NBC"},
		},
		{ID: 7, Name: "Bare", Genres: []string{}},
	}
	if diff := cmp.Diff(want, shows); diff != "" {
		t.Errorf("GetShows mismatch (-want +got):\n%s", diff)
	}
}

func TestClient_GetShowsPastLastPage(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"name":"Not Found","status":404}`, http.StatusNotFound)
	})

	shows, err := c.GetShows(context.Background(), 9999)
	if err != nil {
		t.Fatalf("GetShows: %v", err)
	}
	if shows == nil || len(shows) != 0 {
		t.Errorf("GetShows past end = %#v, want empty non-nil slice", shows)
	}
}

func TestClient_GetShow(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/shows/42":
			w.Write([]byte(showJSON))
		default:
			http.NotFound(w, r)
		}
	})

	show, err := c.GetShow(context.Background(), 42)
	if err != nil {
		t.Fatalf("GetShow: %v", err)
	}
	if show.Name != "Test Show" || show.PlainSummary() != "A test show" {
		t.Errorf("GetShow = %+v", show)
	}

	if _, err := c.GetShow(context.Background(), 1); !errors.Is(err, domain.ErrShowNotFound) {
		t.Errorf("GetShow(missing) error = %v, want ErrShowNotFound", err)
	}
}

func TestClient_SearchEndpoints(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/search/shows":
			if q := r.URL.Query().Get("q"); q != "the wire" {
				t.Errorf("show query = %q", q)
			}
			w.Write([]byte(`[{"score": 0.9, "show": ` + showJSON + `}]`))
		case "/search/people":
			if r.URL.RawQuery != "q=John+Doe" {
				t.Errorf("people raw query = %q", r.URL.RawQuery)
			}
			w.Write([]byte(`[{"score": 0.9, "person": {"id": 1, "name": "John Doe", "image": null}}]`))
		default:
			http.NotFound(w, r)
		}
	})

	shows, err := c.SearchShows(context.Background(), "the wire")
	if err != nil {
		t.Fatalf("SearchShows: %v", err)
	}
	if len(shows) != 1 || shows[0].ID != 42 {
		t.Errorf("SearchShows = %+v", shows)
	}

	people, err := c.SearchPeople(context.Background(), "John Doe")
	if err != nil {
		t.Fatalf("SearchPeople: %v", err)
	}
	want := []domain.PersonMatch{{Score: 0.9, Person: domain.Person{ID: 1, Name: "John Doe"}}}
	if diff := cmp.Diff(want, people); diff != "" {
		t.Errorf("SearchPeople mismatch (-want +got):\n%s", diff)
	}
}

func TestClient_GetPersonCastCredits(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/people/5/castcredits" {
			http.NotFound(w, r)
			return
		}
		if got := r.URL.Query()["embed[]"]; !cmp.Equal(got, []string{"show", "character"}) {
			t.Errorf("embed params = %v", got)
		}
		w.Write([]byte(`[
			{"_embedded": {"show": {"id": 10, "name": "A"}, "character": {"id": 1, "name": "Char1"}}},
			{"_embedded": {"show": {"id": 10, "name": "A"}, "character": {"id": 2, "name": "Char2"}}}
		]`))
	})

	credits, err := c.GetPersonCastCredits(context.Background(), 5)
	if err != nil {
		t.Fatalf("GetPersonCastCredits: %v", err)
	}
	if len(credits) != 2 || credits[1].Character.Name != "Char2" || credits[0].Show.ID != 10 {
		t.Errorf("credits = %+v", credits)
	}

	if _, err := c.GetPersonCastCredits(context.Background(), 6); !errors.Is(err, domain.ErrPersonNotFound) {
		t.Errorf("missing person error = %v", err)
	}
}

func TestClient_Errors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		check  func(error) bool
	}{
		{"rate limited", http.StatusTooManyRequests, "", func(err error) bool {
			return errors.Is(err, domain.ErrRateLimited)
		}},
		{"server error with message", http.StatusInternalServerError, `{"message":"boom"}`, func(err error) bool {
			var se *StatusError
			return errors.As(err, &se) && se.Code == 500 && se.Message == "boom"
		}},
		{"bad json", http.StatusOK, `{not json`, func(err error) bool {
			return err != nil
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			})
			_, err := c.GetShows(context.Background(), 0)
			if !tt.check(err) {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestClient_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := NewClient(url, 0, nil)
	if _, err := c.GetShows(context.Background(), 0); !errors.Is(err, domain.ErrCatalogUnavailable) {
		t.Errorf("error = %v, want ErrCatalogUnavailable", err)
	}
}

func TestClient_ContextCanceled(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.GetShows(ctx, 0)
	if !errors.Is(err, domain.ErrCatalogUnavailable) {
		t.Errorf("error = %v, want ErrCatalogUnavailable", err)
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want it to wrap context.Canceled", err)
	}
}
