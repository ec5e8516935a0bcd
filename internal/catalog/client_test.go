package catalog_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"marquee/internal/catalog"
)

func TestNewRequiresBaseURL(t *testing.T) {
	if _, err := catalog.New("  "); err == nil {
		t.Fatal("expected error when base url missing")
	}
}

func TestMovieDetailsSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/movie/42" {
			t.Fatalf("unexpected path %q", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"original_title": "The Matrix",
			"original_language": "en",
			"release_date": "1999-03-31T00:00:00.000Z",
			"runtime": 136,
			"vote_average": 8.2,
			"vote_count": 24000,
			"genre": ["Action", "Sci-Fi"],
			"staff": [
				{"person_id": "p1", "primary_name": "Lana Wachowski", "job_title": "director"},
				{"person_id": "p2", "primary_name": "Keanu Reeves", "job_title": "actor", "characters": ["Neo"]}
			]
		}`))
	}))
	t.Cleanup(server.Close)

	client, err := catalog.New(server.URL)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	movie, err := client.MovieDetails(context.Background(), "42")
	if err != nil {
		t.Fatalf("MovieDetails returned error: %v", err)
	}
	if movie.OriginalTitle != "The Matrix" || movie.Runtime != 136 {
		t.Fatalf("unexpected movie: %#v", movie)
	}
	if movie.ID != "42" {
		t.Fatalf("expected id backfilled from request, got %q", movie.ID)
	}
	if len(movie.Staff) != 2 || movie.Staff[1].Characters[0] != "Neo" {
		t.Fatalf("unexpected staff: %#v", movie.Staff)
	}
}

func TestMovieDetailsHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(server.Close)

	client, err := catalog.New(server.URL)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if _, err := client.MovieDetails(context.Background(), "42"); err == nil {
		t.Fatal("expected error when catalog returns non-200")
	}
}

func TestMovieDetailsEmptyID(t *testing.T) {
	client, err := catalog.New("http://example.com")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if _, err := client.MovieDetails(context.Background(), "  "); err == nil {
		t.Fatal("expected error for empty movie id")
	}
}

func TestFavoriteStatusInterpolatesBothIDs(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/movie/42/like" {
			t.Fatalf("unexpected path %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("user_id"); got != "auth0|abc" {
			t.Fatalf("unexpected user_id %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"like": true}`))
	}))
	t.Cleanup(server.Close)

	client, err := catalog.New(server.URL)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	liked, err := client.FavoriteStatus(context.Background(), "42", "auth0|abc")
	if err != nil {
		t.Fatalf("FavoriteStatus returned error: %v", err)
	}
	if !liked {
		t.Fatal("expected liked=true")
	}
}

func TestFavoriteStatusRequiresUserID(t *testing.T) {
	client, err := catalog.New("http://example.com")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if _, err := client.FavoriteStatus(context.Background(), "42", ""); err == nil {
		t.Fatal("expected error for empty user id")
	}
}

func TestSetFavoritePostsDesiredState(t *testing.T) {
	var received struct {
		Select bool   `json:"select"`
		UserID string `json:"user_id"`
	}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("unexpected method %q", r.Method)
		}
		if got := r.Header.Get("Content-Type"); got != "application/json" {
			t.Fatalf("unexpected content type %q", got)
		}
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"like": true}`))
	}))
	t.Cleanup(server.Close)

	client, err := catalog.New(server.URL)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	acknowledged, err := client.SetFavorite(context.Background(), "42", "auth0|abc", true)
	if err != nil {
		t.Fatalf("SetFavorite returned error: %v", err)
	}
	if !received.Select || received.UserID != "auth0|abc" {
		t.Fatalf("unexpected request body: %+v", received)
	}
	if !acknowledged {
		t.Fatal("expected acknowledged=true")
	}
}

func TestSetFavoriteTrustsServerEcho(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Server disagrees with the requested state.
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"like": false}`))
	}))
	t.Cleanup(server.Close)

	client, err := catalog.New(server.URL)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	acknowledged, err := client.SetFavorite(context.Background(), "42", "auth0|abc", true)
	if err != nil {
		t.Fatalf("SetFavorite returned error: %v", err)
	}
	if acknowledged {
		t.Fatal("expected server echo to win over requested state")
	}
}

func TestSetFavoriteToleratesEmptyAck(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(server.Close)

	client, err := catalog.New(server.URL)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	acknowledged, err := client.SetFavorite(context.Background(), "42", "auth0|abc", true)
	if err != nil {
		t.Fatalf("SetFavorite returned error: %v", err)
	}
	if !acknowledged {
		t.Fatal("expected requested state kept when ack body empty")
	}
}
