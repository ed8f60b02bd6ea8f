package auth

import (
	"github.com/gin-gonic/gin"

	"github.com/cinepick/cinepick/internal/pkg/token"
)

func RegisterRoutes(router *gin.RouterGroup, authGuard gin.HandlerFunc, store UserStore, tokens *token.Manager) {
	handler := NewHandler(store, tokens)

	group := router.Group("/auth")
	{
		group.POST("/register", handler.Register)
		group.POST("/login", handler.Login)
		group.GET("/me", authGuard, handler.Me)
	}
}
