package auth

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/cinepick/cinepick/internal/features/users"
	"github.com/cinepick/cinepick/internal/pkg/response"
	"github.com/cinepick/cinepick/internal/pkg/token"
	apperrors "github.com/cinepick/cinepick/pkg/errors"
)

// UserStore is the slice of the users repository the auth handlers need.
type UserStore interface {
	CreateUser(ctx context.Context, user *users.User) error
	FindByUsername(ctx context.Context, username string) (*users.User, error)
	FindByID(ctx context.Context, userID string) (*users.User, error)
}

type Handler struct {
	store  UserStore
	tokens *token.Manager
}

func NewHandler(store UserStore, tokens *token.Manager) *Handler {
	return &Handler{store: store, tokens: tokens}
}

// Register godoc
// @Summary Register a new account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body CredentialsRequest true "Username and password"
// @Success 200 {object} response.MsgResponse
// @Failure 400 {object} response.MsgResponse
// @Failure 500 {object} response.MsgResponse
// @Router /auth/register [post]
func (h *Handler) Register(c *gin.Context) {
	var req CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	if err := ValidateUsername(req.Username); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := ValidatePassword(req.Password); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	username := NormalizeUsername(req.Username)

	existing, err := h.store.FindByUsername(c.Request.Context(), username)
	if err != nil {
		response.InternalServerError(c, "Server Error")
		return
	}
	if existing != nil {
		response.BadRequest(c, "User already exists")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		response.InternalServerError(c, "Failed to process password")
		return
	}

	user := &users.User{
		Username:       username,
		Password:       string(hashed),
		FavoriteMovies: []int{},
		Watchlist:      []int{},
		Preferences:    users.DefaultPreferences(),
	}

	if err := h.store.CreateUser(c.Request.Context(), user); err != nil {
		// The unique index catches a register race the FindByUsername
		// check missed.
		if errors.Is(err, apperrors.ErrDuplicate) {
			response.BadRequest(c, "User already exists")
			return
		}
		response.InternalServerError(c, "Server Error")
		return
	}

	response.OK(c, "User registered successfully!")
}

// Login godoc
// @Summary Log in and receive a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body CredentialsRequest true "Username and password"
// @Success 200 {object} TokenResponse
// @Failure 400 {object} response.MsgResponse
// @Failure 401 {object} response.MsgResponse
// @Router /auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	user, err := h.store.FindByUsername(c.Request.Context(), NormalizeUsername(req.Username))
	if err != nil {
		response.InternalServerError(c, "Server Error")
		return
	}
	if user == nil {
		response.Unauthorized(c, "Invalid credentials")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		response.Unauthorized(c, "Invalid credentials")
		return
	}

	tokenString, err := h.tokens.Generate(user.ID.Hex())
	if err != nil {
		response.InternalServerError(c, "Failed to generate token")
		return
	}

	c.JSON(200, TokenResponse{Token: tokenString})
}

// Me godoc
// @Summary Get the authenticated user's account
// @Tags auth
// @Produce json
// @Security TokenAuth
// @Success 200 {object} users.User
// @Failure 401 {object} response.MsgResponse
// @Failure 404 {object} response.MsgResponse
// @Router /auth/me [get]
func (h *Handler) Me(c *gin.Context) {
	user, err := h.store.FindByID(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		response.InternalServerError(c, "Server Error")
		return
	}
	if user == nil {
		response.NotFound(c, "User not found.")
		return
	}

	c.JSON(200, user)
}
