package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Movie is the catalog payload for a single title. The zero value is the
// pre-load state; the view layer tags it with an explicit load phase rather
// than probing fields for presence.
type Movie struct {
	ID                  string        `json:"id"`
	Title               string        `json:"title"`
	OriginalTitle       string        `json:"original_title"`
	OriginalLanguage    string        `json:"original_language"`
	Overview            string        `json:"overview"`
	ReleaseDate         string        `json:"release_date"`
	Runtime             int           `json:"runtime"`
	VoteAverage         float64       `json:"vote_average"`
	VoteCount           int64         `json:"vote_count"`
	Genres              []string      `json:"genre"`
	ProductionCompanies string        `json:"production_companies"`
	Homepage            string        `json:"homepage"`
	PosterPath          string        `json:"poster_path"`
	Staff               []StaffRecord `json:"staff"`
}

// StaffRecord is one crew or cast membership, scoped to a single job title.
// A person may appear under several job titles; (person_id, job_title) is
// unique within a movie and serves as the stable display key.
type StaffRecord struct {
	PersonID    string   `json:"person_id"`
	PrimaryName string   `json:"primary_name"`
	JobTitle    string   `json:"job_title"`
	Characters  []string `json:"characters"`
}

// Key returns the stable display key for the record.
func (r StaffRecord) Key() string {
	return r.PersonID + r.JobTitle
}

type favoriteStatus struct {
	Like bool `json:"like"`
}

type favoriteUpdate struct {
	Select bool   `json:"select"`
	UserID string `json:"user_id"`
}

// API describes the catalog operations the view layer consumes.
type API interface {
	MovieDetails(ctx context.Context, movieID string) (*Movie, error)
	FavoriteStatus(ctx context.Context, movieID, userID string) (bool, error)
	SetFavorite(ctx context.Context, movieID, userID string, selected bool) (bool, error)
}

// Client provides access to the catalog HTTP API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

var _ API = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithTimeout overrides the default request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.Timeout = timeout
		}
	}
}

// New creates a catalog client for the given base URL.
func New(baseURL string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("catalog base url required")
	}
	client := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// MovieDetails fetches the full payload for a single movie.
func (c *Client) MovieDetails(ctx context.Context, movieID string) (*Movie, error) {
	movieID = strings.TrimSpace(movieID)
	if movieID == "" {
		return nil, errors.New("movie id must not be empty")
	}
	endpoint, err := url.Parse(fmt.Sprintf("%s/movie/%s", c.baseURL, url.PathEscape(movieID)))
	if err != nil {
		return nil, fmt.Errorf("parse catalog url: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	requestStart := time.Now()
	resp, err := c.httpClient.Do(req)
	latency := time.Since(requestStart)
	if err != nil {
		return nil, fmt.Errorf("execute request (latency=%v): %w", latency, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog movie fetch returned %d (latency=%v)", resp.StatusCode, latency)
	}

	var payload Movie
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode movie payload: %w", err)
	}
	if payload.ID == "" {
		payload.ID = movieID
	}
	return &payload, nil
}

// FavoriteStatus fetches whether the user has favorited the movie.
func (c *Client) FavoriteStatus(ctx context.Context, movieID, userID string) (bool, error) {
	movieID = strings.TrimSpace(movieID)
	userID = strings.TrimSpace(userID)
	if movieID == "" {
		return false, errors.New("movie id must not be empty")
	}
	if userID == "" {
		return false, errors.New("user id must not be empty")
	}
	endpoint, err := url.Parse(fmt.Sprintf("%s/movie/%s/like", c.baseURL, url.PathEscape(movieID)))
	if err != nil {
		return false, fmt.Errorf("parse catalog url: %w", err)
	}
	params := url.Values{}
	params.Set("user_id", userID)
	endpoint.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return false, fmt.Errorf("build request: %w", err)
	}

	requestStart := time.Now()
	resp, err := c.httpClient.Do(req)
	latency := time.Since(requestStart)
	if err != nil {
		return false, fmt.Errorf("execute request (latency=%v): %w", latency, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("catalog favorite status returned %d (latency=%v)", resp.StatusCode, latency)
	}

	var payload favoriteStatus
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return false, fmt.Errorf("decode favorite status: %w", err)
	}
	return payload.Like, nil
}

// SetFavorite records the user's desired favorite state for the movie and
// returns the state the server acknowledged.
func (c *Client) SetFavorite(ctx context.Context, movieID, userID string, selected bool) (bool, error) {
	movieID = strings.TrimSpace(movieID)
	userID = strings.TrimSpace(userID)
	if movieID == "" {
		return false, errors.New("movie id must not be empty")
	}
	if userID == "" {
		return false, errors.New("user id must not be empty")
	}
	endpoint, err := url.Parse(fmt.Sprintf("%s/movie/%s/like", c.baseURL, url.PathEscape(movieID)))
	if err != nil {
		return false, fmt.Errorf("parse catalog url: %w", err)
	}

	body, err := json.Marshal(favoriteUpdate{Select: selected, UserID: userID})
	if err != nil {
		return false, fmt.Errorf("encode favorite update: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), strings.NewReader(string(body)))
	if err != nil {
		return false, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	requestStart := time.Now()
	resp, err := c.httpClient.Do(req)
	latency := time.Since(requestStart)
	if err != nil {
		return false, fmt.Errorf("execute request (latency=%v): %w", latency, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("catalog favorite update returned %d (latency=%v)", resp.StatusCode, latency)
	}

	// The acknowledgment body is optional; when the server echoes a like
	// field, trust it over the requested value.
	acknowledged := selected
	var ack favoriteStatus
	if err := json.NewDecoder(resp.Body).Decode(&ack); err == nil {
		acknowledged = ack.Like
	}
	return acknowledged, nil
}

// ReleaseYear extracts the four-digit year from a canonical release date.
func ReleaseYear(date string) (int, bool) {
	formatted, err := FormatReleaseDate(date)
	if err != nil || len(formatted) < 4 {
		return 0, false
	}
	year, err := strconv.Atoi(formatted[:4])
	if err != nil {
		return 0, false
	}
	return year, true
}
