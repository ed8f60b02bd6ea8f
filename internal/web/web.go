// Package web serves the bundled browser client. The views are static
// fetch-and-render pages; all state lives behind the JSON API.
package web

import (
	"embed"
	"io/fs"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

//go:embed static
var assets embed.FS

// RegisterRoutes mounts the client at the root. It is registered as the
// no-route fallback so the /api, /health and /swagger groups keep priority.
func RegisterRoutes(router *gin.Engine) {
	staticFS, err := fs.Sub(assets, "static")
	if err != nil {
		panic(err)
	}
	fileServer := http.FileServer(http.FS(staticFS))

	router.NoRoute(func(c *gin.Context) {
		if c.Request.Method == http.MethodGet && !strings.HasPrefix(c.Request.URL.Path, "/api") {
			fileServer.ServeHTTP(c.Writer, c.Request)
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"msg": "Not found"})
	})
}
