package movies

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the catalog proxy. Everything is public browsing
// except recommendations, which is computed from the caller's stored
// preferences and therefore guarded.
func RegisterRoutes(router *gin.RouterGroup, authGuard gin.HandlerFunc, client *Client, prefs PreferenceSource) {
	handler := NewHandler(client, prefs)

	group := router.Group("/movies")
	{
		group.GET("/popular", handler.Popular)
		group.GET("/search", handler.Search)
		group.GET("/genres", handler.Genres)
		group.GET("/recommendations", authGuard, handler.Recommendations)

		// Parameterized routes last so the static paths above win.
		group.GET("/:id", handler.Detail)
		group.GET("/:id/similar", handler.Similar)
	}
}
