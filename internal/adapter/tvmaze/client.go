package tvmaze

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/mmcdole/showbox/internal/domain"
)

const (
	// DefaultBaseURL is the public TVMaze API
	DefaultBaseURL = "https://api.tvmaze.com"

	defaultTimeout = 30 * time.Second
	userAgent      = "Showbox/1.0"
)

// StatusError is returned for non-200 responses that have no sentinel
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("unexpected status code: %d", e.Code)
	}
	return fmt.Sprintf("unexpected status code: %d: %s", e.Code, e.Message)
}

// Client implements domain.Catalog for TVMaze
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a new TVMaze API client.
// An empty baseURL uses DefaultBaseURL; timeout <= 0 uses the default.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// doRequest performs a GET and returns the body of a 200 response
func (c *Client) doRequest(ctx context.Context, path string, query url.Values) ([]byte, error) {
	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL = reqURL + "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	c.logger.Debug("tvmaze request", "url", reqURL)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrCatalogUnavailable, ctx.Err())
		}
		c.logger.Error("tvmaze request failed", "error", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	switch resp.StatusCode {
	case http.StatusOK:
		return body, nil
	case http.StatusNotFound:
		return nil, errNotFound
	case http.StatusTooManyRequests:
		c.logger.Warn("tvmaze rate limit hit", "url", reqURL)
		return nil, domain.ErrRateLimited
	}

	c.logger.Error("tvmaze request error", "status", resp.StatusCode, "body", string(body))
	statusErr := &StatusError{Code: resp.StatusCode}
	var apiErr ErrorDTO
	if json.Unmarshal(body, &apiErr) == nil {
		statusErr.Message = apiErr.Message
	}
	return nil, statusErr
}

// errNotFound is translated into the caller's sentinel (or an empty page)
var errNotFound = errors.New("tvmaze: not found")

// getJSON fetches path and decodes the body into dest
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, dest interface{}) error {
	body, err := c.doRequest(ctx, path, query)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, dest); err != nil {
		c.logger.Error("JSON parse error", "error", err, "path", path, "bodyLen", len(body))
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}

// GetShows returns one page of the show index (~250 shows per page).
// TVMaze answers 404 past the last page; that is reported as an empty page.
func (c *Client) GetShows(ctx context.Context, page int) ([]domain.Show, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))

	var dtos []ShowDTO
	err := c.getJSON(ctx, "/shows", query, &dtos)
	if errors.Is(err, errNotFound) {
		return []domain.Show{}, nil
	}
	if err != nil {
		return nil, err
	}
	return MapShows(dtos), nil
}

// GetShow returns a single show
func (c *Client) GetShow(ctx context.Context, id int) (*domain.Show, error) {
	var dto ShowDTO
	err := c.getJSON(ctx, fmt.Sprintf("/shows/%d", id), nil, &dto)
	if errors.Is(err, errNotFound) {
		return nil, domain.ErrShowNotFound
	}
	if err != nil {
		return nil, err
	}
	show := MapShow(dto)
	return &show, nil
}

// SearchShows runs a free-text search; TVMaze caps results at 10
func (c *Client) SearchShows(ctx context.Context, query string) ([]domain.Show, error) {
	q := url.Values{}
	q.Set("q", query)

	var results []ShowSearchResultDTO
	err := c.getJSON(ctx, "/search/shows", q, &results)
	if errors.Is(err, errNotFound) {
		return []domain.Show{}, nil
	}
	if err != nil {
		return nil, err
	}
	return MapShowSearchResults(results), nil
}

// SearchPeople searches people by name
func (c *Client) SearchPeople(ctx context.Context, query string) ([]domain.PersonMatch, error) {
	q := url.Values{}
	q.Set("q", query)

	var results []PersonSearchResultDTO
	err := c.getJSON(ctx, "/search/people", q, &results)
	if errors.Is(err, errNotFound) {
		return []domain.PersonMatch{}, nil
	}
	if err != nil {
		return nil, err
	}
	return MapPeople(results), nil
}

// GetPersonCastCredits returns a person's credits with show and character embedded
func (c *Client) GetPersonCastCredits(ctx context.Context, personID int) ([]domain.CastCredit, error) {
	// Built by hand: url.Values would escape the brackets TVMaze expects verbatim
	path := fmt.Sprintf("/people/%d/castcredits?embed[]=show&embed[]=character", personID)

	var dtos []CastCreditDTO
	err := c.getJSON(ctx, path, nil, &dtos)
	if errors.Is(err, errNotFound) {
		return nil, domain.ErrPersonNotFound
	}
	if err != nil {
		return nil, err
	}
	return MapCastCredits(dtos), nil
}

var _ domain.Catalog = (*Client)(nil)
