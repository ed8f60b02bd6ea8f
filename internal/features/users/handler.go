package users

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/cinepick/cinepick/internal/pkg/fanout"
	"github.com/cinepick/cinepick/internal/pkg/response"
	apperrors "github.com/cinepick/cinepick/pkg/errors"
)

// detailWorkers bounds the concurrent catalog fetches when hydrating
// favorite/watchlist IDs into full movie records.
const detailWorkers = 4

// Store is the slice of the repository the handlers need.
type Store interface {
	FindByID(ctx context.Context, userID string) (*User, error)
	AddFavorite(ctx context.Context, userID string, movieID int) ([]int, error)
	AddToWatchlist(ctx context.Context, userID string, movieID int) ([]int, error)
	RemoveFromWatchlist(ctx context.Context, userID string, movieID int) ([]int, error)
	MarkWatched(ctx context.Context, userID string, movieID int) error
	UpdatePreferences(ctx context.Context, userID string, prefs *Preferences) error
}

// Catalog fetches a single movie record from the upstream catalog.
type Catalog interface {
	Detail(ctx context.Context, movieID int) (json.RawMessage, error)
}

type Handler struct {
	store   Store
	catalog Catalog
}

func NewHandler(store Store, catalog Catalog) *Handler {
	return &Handler{store: store, catalog: catalog}
}

// GetFavorites godoc
// @Summary List favorite movie IDs
// @Tags users
// @Produce json
// @Security TokenAuth
// @Success 200 {array} int
// @Failure 401 {object} response.MsgResponse
// @Failure 404 {object} response.MsgResponse
// @Router /users/favorites [get]
func (h *Handler) GetFavorites(c *gin.Context) {
	user := h.currentUser(c)
	if user == nil {
		return
	}
	c.JSON(200, emptyIfNil(user.FavoriteMovies))
}

// AddFavorite godoc
// @Summary Add a movie to favorites
// @Tags users
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param request body MovieIDRequest true "Movie ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} response.MsgResponse
// @Failure 401 {object} response.MsgResponse
// @Router /users/favorites [post]
func (h *Handler) AddFavorite(c *gin.Context) {
	userID := c.GetString("userID")

	var req MovieIDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}
	if req.MovieID == 0 {
		response.BadRequest(c, "Movie ID is required.")
		return
	}

	favorites, err := h.store.AddFavorite(c.Request.Context(), userID, req.MovieID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrDuplicate):
			response.BadRequest(c, "Movie is already in your favorites.")
		case errors.Is(err, apperrors.ErrNotFound):
			response.NotFound(c, "User not found.")
		default:
			response.InternalServerError(c, "Server Error")
		}
		return
	}

	c.JSON(200, gin.H{
		"msg":       "Movie added to favorites successfully!",
		"favorites": favorites,
	})
}

// GetFavoriteDetails godoc
// @Summary List favorite movies with full catalog details
// @Tags users
// @Produce json
// @Security TokenAuth
// @Success 200 {array} object
// @Failure 401 {object} response.MsgResponse
// @Router /users/favorites/details [get]
func (h *Handler) GetFavoriteDetails(c *gin.Context) {
	user := h.currentUser(c)
	if user == nil {
		return
	}
	c.JSON(200, h.hydrate(c.Request.Context(), user.FavoriteMovies))
}

// GetWatchlist godoc
// @Summary List watchlist movie IDs
// @Tags users
// @Produce json
// @Security TokenAuth
// @Success 200 {array} int
// @Failure 401 {object} response.MsgResponse
// @Router /users/watchlist [get]
func (h *Handler) GetWatchlist(c *gin.Context) {
	user := h.currentUser(c)
	if user == nil {
		return
	}
	c.JSON(200, emptyIfNil(user.Watchlist))
}

// AddToWatchlist godoc
// @Summary Add a movie to the watchlist
// @Tags users
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param request body MovieIDRequest true "Movie ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} response.MsgResponse
// @Failure 401 {object} response.MsgResponse
// @Router /users/watchlist [post]
func (h *Handler) AddToWatchlist(c *gin.Context) {
	userID := c.GetString("userID")

	var req MovieIDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}
	if req.MovieID == 0 {
		response.BadRequest(c, "Movie ID is required.")
		return
	}

	watchlist, err := h.store.AddToWatchlist(c.Request.Context(), userID, req.MovieID)
	if err != nil {
		h.storeError(c, err)
		return
	}

	c.JSON(200, gin.H{
		"msg":       "Movie added to watchlist successfully!",
		"watchlist": watchlist,
	})
}

// RemoveFromWatchlist godoc
// @Summary Remove a movie from the watchlist
// @Description Removing an ID that is not on the watchlist succeeds and changes nothing.
// @Tags users
// @Produce json
// @Security TokenAuth
// @Param id path int true "Movie ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} response.MsgResponse
// @Failure 401 {object} response.MsgResponse
// @Router /users/watchlist/{id} [delete]
func (h *Handler) RemoveFromWatchlist(c *gin.Context) {
	userID := c.GetString("userID")

	movieID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Movie ID must be a number.")
		return
	}

	watchlist, err := h.store.RemoveFromWatchlist(c.Request.Context(), userID, movieID)
	if err != nil {
		h.storeError(c, err)
		return
	}

	c.JSON(200, gin.H{
		"msg":       "Movie removed from watchlist.",
		"watchlist": watchlist,
	})
}

// GetWatchlistDetails godoc
// @Summary List watchlist movies with full catalog details
// @Tags users
// @Produce json
// @Security TokenAuth
// @Success 200 {array} object
// @Failure 401 {object} response.MsgResponse
// @Router /users/watchlist/details [get]
func (h *Handler) GetWatchlistDetails(c *gin.Context) {
	user := h.currentUser(c)
	if user == nil {
		return
	}
	c.JSON(200, h.hydrate(c.Request.Context(), user.Watchlist))
}

// MarkWatched godoc
// @Summary Mark a movie as watched
// @Description Adds the movie to watched history and drops it from the watchlist in one update.
// @Tags users
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param request body MovieIDRequest true "Movie ID"
// @Success 200 {object} response.MsgResponse
// @Failure 400 {object} response.MsgResponse
// @Failure 401 {object} response.MsgResponse
// @Router /users/watched [post]
func (h *Handler) MarkWatched(c *gin.Context) {
	userID := c.GetString("userID")

	var req MovieIDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}
	if req.MovieID == 0 {
		response.BadRequest(c, "Movie ID is required.")
		return
	}

	if err := h.store.MarkWatched(c.Request.Context(), userID, req.MovieID); err != nil {
		h.storeError(c, err)
		return
	}

	response.OK(c, "Movie marked as watched.")
}

// GetPreferences godoc
// @Summary Get the caller's preferences
// @Tags users
// @Produce json
// @Security TokenAuth
// @Success 200 {object} Preferences
// @Failure 401 {object} response.MsgResponse
// @Router /users/preferences [get]
func (h *Handler) GetPreferences(c *gin.Context) {
	user := h.currentUser(c)
	if user == nil {
		return
	}
	prefs := user.Preferences
	if prefs.Genres == nil {
		prefs.Genres = []int{}
	}
	if prefs.WatchedMovies == nil {
		prefs.WatchedMovies = []int{}
	}
	c.JSON(200, prefs)
}

// UpdatePreferences godoc
// @Summary Replace the caller's preferences
// @Tags users
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param request body Preferences true "Preferences"
// @Success 200 {object} response.MsgResponse
// @Failure 400 {object} response.MsgResponse
// @Failure 401 {object} response.MsgResponse
// @Router /users/preferences [put]
func (h *Handler) UpdatePreferences(c *gin.Context) {
	userID := c.GetString("userID")

	var prefs Preferences
	if err := c.ShouldBindJSON(&prefs); err != nil {
		response.BindJSONError(c, err)
		return
	}
	if err := ValidatePreferences(&prefs); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if prefs.Genres == nil {
		prefs.Genres = []int{}
	}
	if prefs.WatchedMovies == nil {
		prefs.WatchedMovies = []int{}
	}

	if err := h.store.UpdatePreferences(c.Request.Context(), userID, &prefs); err != nil {
		h.storeError(c, err)
		return
	}

	response.OK(c, "Preferences updated successfully!")
}

// GetStatus godoc
// @Summary Report a movie's standing in the caller's collections
// @Tags users
// @Produce json
// @Security TokenAuth
// @Param id path int true "Movie ID"
// @Success 200 {object} MovieStatus
// @Failure 400 {object} response.MsgResponse
// @Failure 401 {object} response.MsgResponse
// @Router /users/status/{id} [get]
func (h *Handler) GetStatus(c *gin.Context) {
	movieID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Movie ID must be a number.")
		return
	}

	user := h.currentUser(c)
	if user == nil {
		return
	}

	c.JSON(200, MovieStatus{
		IsFavorite:  contains(user.FavoriteMovies, movieID),
		InWatchlist: contains(user.Watchlist, movieID),
		Watched:     contains(user.Preferences.WatchedMovies, movieID),
	})
}

// currentUser loads the authenticated user or writes the error response and
// returns nil.
func (h *Handler) currentUser(c *gin.Context) *User {
	user, err := h.store.FindByID(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		response.InternalServerError(c, "Server Error")
		return nil
	}
	if user == nil {
		response.NotFound(c, "User not found.")
		return nil
	}
	return user
}

// hydrate resolves movie IDs into full catalog records with bounded
// concurrency. Individual failures are dropped rather than failing the
// whole list; the page renders whatever resolved.
func (h *Handler) hydrate(ctx context.Context, ids []int) []json.RawMessage {
	details := fanout.MapDrop(ctx, detailWorkers, ids, func(ctx context.Context, id int) (json.RawMessage, error) {
		detail, err := h.catalog.Detail(ctx, id)
		if err != nil {
			log.Printf("dropping movie %d from detail listing: %v", id, err)
		}
		return detail, err
	})
	if details == nil {
		details = []json.RawMessage{}
	}
	return details
}

func (h *Handler) storeError(c *gin.Context, err error) {
	if errors.Is(err, apperrors.ErrNotFound) {
		response.NotFound(c, "User not found.")
		return
	}
	response.InternalServerError(c, "Server Error")
}

func emptyIfNil(ids []int) []int {
	if ids == nil {
		return []int{}
	}
	return ids
}
