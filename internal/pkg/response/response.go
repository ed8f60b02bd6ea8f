package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// MsgResponse is the standard JSON envelope for messages and errors.
// Every error that reaches a client boundary is converted to this shape.
type MsgResponse struct {
	Msg string `json:"msg" example:"Movie added to favorites successfully!"`
}

// Msg sends a message body with the given status code.
func Msg(c *gin.Context, statusCode int, msg string) {
	c.JSON(statusCode, MsgResponse{Msg: msg})
}

// OK sends a 200 with a message body.
func OK(c *gin.Context, msg string) {
	Msg(c, http.StatusOK, msg)
}

// BadRequest sends a 400 Bad Request error.
func BadRequest(c *gin.Context, msg string) {
	Msg(c, http.StatusBadRequest, msg)
}

// Unauthorized sends a 401 Unauthorized error.
func Unauthorized(c *gin.Context, msg string) {
	Msg(c, http.StatusUnauthorized, msg)
}

// NotFound sends a 404 Not Found error.
func NotFound(c *gin.Context, msg string) {
	Msg(c, http.StatusNotFound, msg)
}

// InternalServerError sends a 500 Internal Server Error.
func InternalServerError(c *gin.Context, msg string) {
	Msg(c, http.StatusInternalServerError, msg)
}

// BadGateway sends a 502 Bad Gateway error.
func BadGateway(c *gin.Context, msg string) {
	Msg(c, http.StatusBadGateway, msg)
}

// BindJSONError handles JSON decode errors in request bodies.
func BindJSONError(c *gin.Context, err error) {
	BadRequest(c, "Invalid request format")
}
