package users

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	apperrors "github.com/cinepick/cinepick/pkg/errors"
)

// fakeStore keeps one user's state in memory behind the Store interface.
type fakeStore struct {
	mu   sync.Mutex
	user *User
}

func newFakeStore() *fakeStore {
	return &fakeStore{user: &User{
		Username:       "alice",
		FavoriteMovies: []int{},
		Watchlist:      []int{},
		Preferences:    DefaultPreferences(),
	}}
}

func (s *fakeStore) FindByID(_ context.Context, _ string) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *s.user
	return &copied, nil
}

func (s *fakeStore) AddFavorite(_ context.Context, _ string, movieID int) ([]int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if contains(s.user.FavoriteMovies, movieID) {
		return nil, apperrors.ErrDuplicate
	}
	s.user.FavoriteMovies = append(s.user.FavoriteMovies, movieID)
	return s.user.FavoriteMovies, nil
}

func (s *fakeStore) AddToWatchlist(_ context.Context, _ string, movieID int) ([]int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !contains(s.user.Watchlist, movieID) {
		s.user.Watchlist = append(s.user.Watchlist, movieID)
	}
	return s.user.Watchlist, nil
}

func (s *fakeStore) RemoveFromWatchlist(_ context.Context, _ string, movieID int) ([]int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := make([]int, 0, len(s.user.Watchlist))
	for _, id := range s.user.Watchlist {
		if id != movieID {
			kept = append(kept, id)
		}
	}
	s.user.Watchlist = kept
	return s.user.Watchlist, nil
}

func (s *fakeStore) MarkWatched(_ context.Context, _ string, movieID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !contains(s.user.Preferences.WatchedMovies, movieID) {
		s.user.Preferences.WatchedMovies = append(s.user.Preferences.WatchedMovies, movieID)
	}
	kept := make([]int, 0, len(s.user.Watchlist))
	for _, id := range s.user.Watchlist {
		if id != movieID {
			kept = append(kept, id)
		}
	}
	s.user.Watchlist = kept
	return nil
}

func (s *fakeStore) UpdatePreferences(_ context.Context, _ string, prefs *Preferences) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user.Preferences = *prefs
	return nil
}

// fakeCatalog resolves movie IDs from a fixed map and fails the rest.
type fakeCatalog struct {
	records map[int]string
}

func (c *fakeCatalog) Detail(_ context.Context, movieID int) (json.RawMessage, error) {
	record, ok := c.records[movieID]
	if !ok {
		return nil, errors.New("not in catalog")
	}
	return json.RawMessage(record), nil
}

func stubGuard(c *gin.Context) {
	c.Set("userID", "user-1")
	c.Next()
}

func newTestRouter(store Store, catalog Catalog) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/api")
	RegisterRoutes(api, stubGuard, store, catalog)
	return r
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	var req = httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	r.ServeHTTP(w, req)
	return w
}

func TestGetFavorites_EmptyIsArray(t *testing.T) {
	r := newTestRouter(newFakeStore(), &fakeCatalog{})

	w := doJSON(r, "GET", "/api/users/favorites", "")

	require.Equal(t, 200, w.Code)
	require.JSONEq(t, "[]", w.Body.String())
}

func TestAddFavorite(t *testing.T) {
	store := newFakeStore()
	r := newTestRouter(store, &fakeCatalog{})

	w := doJSON(r, "POST", "/api/users/favorites", `{"movieId": 550}`)
	require.Equal(t, 200, w.Code)

	var body struct {
		Msg       string `json:"msg"`
		Favorites []int  `json:"favorites"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "Movie added to favorites successfully!", body.Msg)
	require.Equal(t, []int{550}, body.Favorites)
}

func TestAddFavorite_Duplicate(t *testing.T) {
	store := newFakeStore()
	r := newTestRouter(store, &fakeCatalog{})

	w := doJSON(r, "POST", "/api/users/favorites", `{"movieId": 550}`)
	require.Equal(t, 200, w.Code)

	w = doJSON(r, "POST", "/api/users/favorites", `{"movieId": 550}`)
	require.Equal(t, 400, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "Movie is already in your favorites.", body["msg"])
	require.Equal(t, []int{550}, store.user.FavoriteMovies)
}

func TestAddFavorite_MissingMovieID(t *testing.T) {
	r := newTestRouter(newFakeStore(), &fakeCatalog{})

	w := doJSON(r, "POST", "/api/users/favorites", `{}`)

	require.Equal(t, 400, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "Movie ID is required.", body["msg"])
}

func TestGetFavoriteDetails_DropsFailures(t *testing.T) {
	store := newFakeStore()
	store.user.FavoriteMovies = []int{1, 2, 3}
	catalog := &fakeCatalog{records: map[int]string{
		1: `{"id": 1, "title": "First"}`,
		3: `{"id": 3, "title": "Third"}`,
	}}
	r := newTestRouter(store, catalog)

	w := doJSON(r, "GET", "/api/users/favorites/details", "")

	require.Equal(t, 200, w.Code)
	var details []struct {
		ID int `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &details))
	require.Len(t, details, 2)
	require.Equal(t, 1, details[0].ID)
	require.Equal(t, 3, details[1].ID)
}

func TestWatchlistFlow(t *testing.T) {
	store := newFakeStore()
	r := newTestRouter(store, &fakeCatalog{})

	w := doJSON(r, "POST", "/api/users/watchlist", `{"movieId": 27205}`)
	require.Equal(t, 200, w.Code)
	var added struct {
		Msg       string `json:"msg"`
		Watchlist []int  `json:"watchlist"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &added))
	require.Equal(t, "Movie added to watchlist successfully!", added.Msg)
	require.Equal(t, []int{27205}, added.Watchlist)

	w = doJSON(r, "DELETE", "/api/users/watchlist/27205", "")
	require.Equal(t, 200, w.Code)

	w = doJSON(r, "GET", "/api/users/watchlist", "")
	require.Equal(t, 200, w.Code)
	require.JSONEq(t, "[]", w.Body.String())
}

func TestRemoveFromWatchlist_AbsentIDSucceeds(t *testing.T) {
	store := newFakeStore()
	store.user.Watchlist = []int{1}
	r := newTestRouter(store, &fakeCatalog{})

	w := doJSON(r, "DELETE", "/api/users/watchlist/999", "")

	require.Equal(t, 200, w.Code)
	require.Equal(t, []int{1}, store.user.Watchlist)
}

func TestRemoveFromWatchlist_NonNumericID(t *testing.T) {
	r := newTestRouter(newFakeStore(), &fakeCatalog{})

	w := doJSON(r, "DELETE", "/api/users/watchlist/abc", "")

	require.Equal(t, 400, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "Movie ID must be a number.", body["msg"])
}

func TestMarkWatched_RemovesFromWatchlist(t *testing.T) {
	store := newFakeStore()
	store.user.Watchlist = []int{550, 680}
	r := newTestRouter(store, &fakeCatalog{})

	w := doJSON(r, "POST", "/api/users/watched", `{"movieId": 550}`)

	require.Equal(t, 200, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "Movie marked as watched.", body["msg"])
	require.Equal(t, []int{550}, store.user.Preferences.WatchedMovies)
	require.Equal(t, []int{680}, store.user.Watchlist)
}

func TestUpdatePreferences(t *testing.T) {
	store := newFakeStore()
	r := newTestRouter(store, &fakeCatalog{})

	w := doJSON(r, "PUT", "/api/users/preferences",
		`{"genres": [28, 12], "minRating": 7.5, "releaseYearRange": {"start": 1990, "end": 2020}}`)

	require.Equal(t, 200, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "Preferences updated successfully!", body["msg"])
	require.Equal(t, []int{28, 12}, store.user.Preferences.Genres)
	require.Equal(t, 7.5, store.user.Preferences.MinRating)
	require.NotNil(t, store.user.Preferences.WatchedMovies)
}

func TestUpdatePreferences_InvalidRating(t *testing.T) {
	r := newTestRouter(newFakeStore(), &fakeCatalog{})

	w := doJSON(r, "PUT", "/api/users/preferences", `{"minRating": 11}`)

	require.Equal(t, 400, w.Code)
}

func TestGetStatus(t *testing.T) {
	store := newFakeStore()
	store.user.FavoriteMovies = []int{550}
	store.user.Watchlist = []int{680}
	store.user.Preferences.WatchedMovies = []int{13}
	r := newTestRouter(store, &fakeCatalog{})

	for movieID, want := range map[int]MovieStatus{
		550: {IsFavorite: true},
		680: {InWatchlist: true},
		13:  {Watched: true},
		999: {},
	} {
		w := doJSON(r, "GET", fmt.Sprintf("/api/users/status/%d", movieID), "")
		require.Equal(t, 200, w.Code)
		var status MovieStatus
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))
		require.Equal(t, want, status, "movie %d", movieID)
	}
}
