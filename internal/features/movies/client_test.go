package movies

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClient_InjectsKeyAndLanguage(t *testing.T) {
	var gotPath, gotKey, gotLang string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.URL.Query().Get("api_key")
		gotLang = r.URL.Query().Get("language")
		w.Write([]byte(`{"results": []}`))
	}))
	defer upstream.Close()

	client := NewClient("secret-key", upstream.URL)
	raw, err := client.Popular(context.Background())
	require.NoError(t, err)
	require.JSONEq(t, `{"results": []}`, string(raw))
	require.Equal(t, "/movie/popular", gotPath)
	require.Equal(t, "secret-key", gotKey)
	require.Equal(t, "en-US", gotLang)
}

func TestClient_UpstreamErrorCarriesStatusAndBody(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(404)
		w.Write([]byte(`{"status_message": "The resource you requested could not be found."}`))
	}))
	defer upstream.Close()

	client := NewClient("secret-key", upstream.URL)
	_, err := client.Detail(context.Background(), 999999)
	require.Error(t, err)

	var upstreamErr *UpstreamError
	require.ErrorAs(t, err, &upstreamErr)
	require.Equal(t, 404, upstreamErr.StatusCode)
	require.Contains(t, string(upstreamErr.Body), "could not be found")
}

func TestClient_UnreachableErrorOmitsKey(t *testing.T) {
	client := NewClient("secret-key", "http://127.0.0.1:1")

	_, err := client.Search(context.Background(), "inception")
	require.Error(t, err)
	require.NotContains(t, err.Error(), "secret-key")
}

func TestClient_MissingKey(t *testing.T) {
	client := NewClient("", "http://example.invalid")

	_, err := client.Genres(context.Background())
	require.Error(t, err)
}

func TestClient_DiscoverBuildsFilters(t *testing.T) {
	var got map[string]string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = map[string]string{
			"path":      r.URL.Path,
			"sort_by":   r.URL.Query().Get("sort_by"),
			"genres":    r.URL.Query().Get("with_genres"),
			"minRating": r.URL.Query().Get("vote_average.gte"),
			"from":      r.URL.Query().Get("primary_release_date.gte"),
			"to":        r.URL.Query().Get("primary_release_date.lte"),
		}
		w.Write([]byte(`{"results": []}`))
	}))
	defer upstream.Close()

	client := NewClient("secret-key", upstream.URL)
	_, err := client.Discover(context.Background(), DiscoverQuery{
		Genres:    []int{28, 12},
		MinRating: 7.5,
		YearStart: 1990,
		YearEnd:   2020,
	})
	require.NoError(t, err)
	require.Equal(t, "/discover/movie", got["path"])
	require.Equal(t, "popularity.desc", got["sort_by"])
	require.Equal(t, "28,12", got["genres"])
	require.Equal(t, "7.5", got["minRating"])
	require.Equal(t, "1990-01-01", got["from"])
	require.Equal(t, "2020-12-31", got["to"])
}

func TestClient_DiscoverOmitsUnsetFilters(t *testing.T) {
	var query map[string][]string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
		w.Write([]byte(`{"results": []}`))
	}))
	defer upstream.Close()

	client := NewClient("secret-key", upstream.URL)
	_, err := client.Discover(context.Background(), DiscoverQuery{})
	require.NoError(t, err)
	require.NotContains(t, query, "with_genres")
	require.NotContains(t, query, "vote_average.gte")
	require.NotContains(t, query, "primary_release_date.gte")
	require.NotContains(t, query, "primary_release_date.lte")
}

func TestClient_ErrorsAreNotUpstreamErrors(t *testing.T) {
	client := NewClient("secret-key", "http://127.0.0.1:1")

	_, err := client.Popular(context.Background())
	require.Error(t, err)

	var upstreamErr *UpstreamError
	require.False(t, errors.As(err, &upstreamErr))
}

func TestClient_DetailReturnsRawRecord(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/movie/550", r.URL.Path)
		w.Write([]byte(`{"id": 550, "title": "Fight Club"}`))
	}))
	defer upstream.Close()

	client := NewClient("secret-key", upstream.URL)
	raw, err := client.Detail(context.Background(), 550)
	require.NoError(t, err)

	var record struct {
		ID    int    `json:"id"`
		Title string `json:"title"`
	}
	require.NoError(t, json.Unmarshal(raw, &record))
	require.Equal(t, 550, record.ID)
	require.Equal(t, "Fight Club", record.Title)
}
