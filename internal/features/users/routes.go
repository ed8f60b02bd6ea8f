package users

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the user-state API. Every route operates on the
// user ID the auth guard placed in the context; the guard itself is applied
// by the caller so movies and users share one instance.
func RegisterRoutes(router *gin.RouterGroup, authGuard gin.HandlerFunc, store Store, catalog Catalog) {
	handler := NewHandler(store, catalog)

	group := router.Group("/users")
	group.Use(authGuard)
	{
		group.GET("/favorites", handler.GetFavorites)
		group.POST("/favorites", handler.AddFavorite)
		group.GET("/favorites/details", handler.GetFavoriteDetails)

		group.GET("/watchlist", handler.GetWatchlist)
		group.POST("/watchlist", handler.AddToWatchlist)
		group.GET("/watchlist/details", handler.GetWatchlistDetails)
		group.DELETE("/watchlist/:id", handler.RemoveFromWatchlist)

		group.POST("/watched", handler.MarkWatched)

		group.GET("/preferences", handler.GetPreferences)
		group.PUT("/preferences", handler.UpdatePreferences)

		group.GET("/status/:id", handler.GetStatus)
	}
}
