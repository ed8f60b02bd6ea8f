package chat

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup, llm Generator) {
	handler := NewHandler(llm)

	router.POST("/chat", handler.Chat)
}
