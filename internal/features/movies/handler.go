package movies

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/cinepick/cinepick/internal/features/users"
	"github.com/cinepick/cinepick/internal/pkg/response"
	apperrors "github.com/cinepick/cinepick/pkg/errors"
)

// PreferenceSource supplies the stored preferences that drive the
// recommendations query.
type PreferenceSource interface {
	Preferences(ctx context.Context, userID string) (*users.Preferences, error)
}

type Handler struct {
	client *Client
	prefs  PreferenceSource
}

func NewHandler(client *Client, prefs PreferenceSource) *Handler {
	return &Handler{client: client, prefs: prefs}
}

// Popular godoc
// @Summary Popular movies (upstream passthrough)
// @Tags movies
// @Produce json
// @Success 200 {object} object
// @Failure 500 {object} response.MsgResponse
// @Router /movies/popular [get]
func (h *Handler) Popular(c *gin.Context) {
	raw, err := h.client.Popular(c.Request.Context())
	h.relay(c, raw, err, "Server error fetching popular movies")
}

// Search godoc
// @Summary Search movies (upstream passthrough)
// @Tags movies
// @Produce json
// @Param q query string true "Search query"
// @Success 200 {object} object
// @Failure 400 {object} response.MsgResponse
// @Failure 500 {object} response.MsgResponse
// @Router /movies/search [get]
func (h *Handler) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		response.BadRequest(c, "Search query (q) is required")
		return
	}

	raw, err := h.client.Search(c.Request.Context(), query)
	h.relay(c, raw, err, "Server error searching movies")
}

// Detail godoc
// @Summary Movie details (upstream passthrough)
// @Tags movies
// @Produce json
// @Param id path int true "Movie ID"
// @Success 200 {object} object
// @Failure 400 {object} response.MsgResponse
// @Failure 500 {object} response.MsgResponse
// @Router /movies/{id} [get]
func (h *Handler) Detail(c *gin.Context) {
	movieID, ok := h.movieID(c)
	if !ok {
		return
	}

	raw, err := h.client.Detail(c.Request.Context(), movieID)
	h.relay(c, raw, err, "Server error fetching details for movie ID "+strconv.Itoa(movieID))
}

// Similar godoc
// @Summary Similar movies (upstream passthrough)
// @Tags movies
// @Produce json
// @Param id path int true "Movie ID"
// @Success 200 {object} object
// @Failure 400 {object} response.MsgResponse
// @Failure 500 {object} response.MsgResponse
// @Router /movies/{id}/similar [get]
func (h *Handler) Similar(c *gin.Context) {
	movieID, ok := h.movieID(c)
	if !ok {
		return
	}

	raw, err := h.client.Similar(c.Request.Context(), movieID)
	h.relay(c, raw, err, "Server error fetching similar movies")
}

// Genres godoc
// @Summary Genre listing (upstream passthrough)
// @Tags movies
// @Produce json
// @Success 200 {object} object
// @Failure 500 {object} response.MsgResponse
// @Router /movies/genres [get]
func (h *Handler) Genres(c *gin.Context) {
	raw, err := h.client.Genres(c.Request.Context())
	h.relay(c, raw, err, "Server error fetching genres")
}

// moviePage mirrors the upstream list envelope closely enough to filter
// results without touching fields we do not understand.
type moviePage struct {
	Page         int               `json:"page"`
	Results      []json.RawMessage `json:"results"`
	TotalPages   int               `json:"total_pages"`
	TotalResults int               `json:"total_results"`
}

// Recommendations godoc
// @Summary Personalized recommendations from stored preferences
// @Description Runs a discover query built from the caller's genres, minimum rating and release-year range, then drops already-watched movies from the page.
// @Tags movies
// @Produce json
// @Security TokenAuth
// @Success 200 {object} object
// @Failure 401 {object} response.MsgResponse
// @Failure 404 {object} response.MsgResponse
// @Failure 500 {object} response.MsgResponse
// @Router /movies/recommendations [get]
func (h *Handler) Recommendations(c *gin.Context) {
	prefs, err := h.prefs.Preferences(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			response.NotFound(c, "User not found.")
			return
		}
		response.InternalServerError(c, "Server Error")
		return
	}

	raw, err := h.client.Discover(c.Request.Context(), DiscoverQuery{
		Genres:    prefs.Genres,
		MinRating: prefs.MinRating,
		YearStart: prefs.ReleaseYearRange.Start,
		YearEnd:   prefs.ReleaseYearRange.End,
	})
	if err != nil {
		h.relay(c, nil, err, "Server error fetching recommendations")
		return
	}

	var page moviePage
	if err := json.Unmarshal(raw, &page); err != nil {
		log.Printf("decoding discover page: %v", err)
		response.InternalServerError(c, "Server error fetching recommendations")
		return
	}

	watched := make(map[int]bool, len(prefs.WatchedMovies))
	for _, id := range prefs.WatchedMovies {
		watched[id] = true
	}

	filtered := make([]json.RawMessage, 0, len(page.Results))
	for _, result := range page.Results {
		var peek struct {
			ID int `json:"id"`
		}
		if json.Unmarshal(result, &peek) == nil && watched[peek.ID] {
			continue
		}
		filtered = append(filtered, result)
	}
	page.Results = filtered

	c.JSON(200, page)
}

// relay streams the upstream body through on success, passes the upstream
// status and body through on an upstream 4xx/5xx, and falls back to a
// generic 500 when the upstream was unreachable.
func (h *Handler) relay(c *gin.Context, raw json.RawMessage, err error, fallbackMsg string) {
	if err == nil {
		c.Data(200, "application/json", raw)
		return
	}

	var upstream *UpstreamError
	if errors.As(err, &upstream) {
		c.Data(upstream.StatusCode, "application/json", upstream.Body)
		return
	}

	log.Printf("catalog request failed: %v", err)
	response.InternalServerError(c, fallbackMsg)
}

func (h *Handler) movieID(c *gin.Context) (int, bool) {
	movieID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Movie ID must be a number.")
		return 0, false
	}
	return movieID, true
}
