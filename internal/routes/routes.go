package routes

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/cinepick/cinepick/internal/config"
	"github.com/cinepick/cinepick/internal/features/auth"
	"github.com/cinepick/cinepick/internal/features/chat"
	"github.com/cinepick/cinepick/internal/features/movies"
	"github.com/cinepick/cinepick/internal/features/users"
	"github.com/cinepick/cinepick/internal/middleware"
	"github.com/cinepick/cinepick/internal/pkg/token"
	apperrors "github.com/cinepick/cinepick/pkg/errors"
)

// preferenceSourceAdapter exposes the users repository to the movies
// feature as the narrow interface it needs.
type preferenceSourceAdapter struct {
	repo *users.Repository
}

func (a *preferenceSourceAdapter) Preferences(ctx context.Context, userID string) (*users.Preferences, error) {
	user, err := a.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.ErrNotFound
	}
	return &user.Preferences, nil
}

// SetupRoutes wires every feature under /api.
func SetupRoutes(router *gin.Engine, db *mongo.Database, cfg *config.Config) {
	api := router.Group("/api")

	tokens := token.NewManager(cfg.JWTSecret, cfg.JWTExpireHours)
	authGuard := middleware.Auth(tokens)

	userRepo := users.NewRepository(db)
	catalog := movies.NewClient(cfg.TMDBAPIKey, cfg.TMDBBaseURL)
	llm := chat.NewClient(cfg.GeminiAPIKey, cfg.GeminiModel, "")

	auth.RegisterRoutes(api, authGuard, userRepo, tokens)
	movies.RegisterRoutes(api, authGuard, catalog, &preferenceSourceAdapter{repo: userRepo})
	users.RegisterRoutes(api, authGuard, userRepo, catalog)
	chat.RegisterRoutes(api, llm)
}
