package middleware

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/cinepick/cinepick/internal/pkg/token"
)

func protectedRouter(tokens *token.Manager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", Auth(tokens), func(c *gin.Context) {
		c.JSON(200, gin.H{"userID": c.GetString("userID")})
	})
	return r
}

func TestAuth_NoHeader(t *testing.T) {
	r := protectedRouter(token.NewManager("test-secret", 24))

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, 401, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "No token, authorization denied", body["msg"])
}

func TestAuth_InvalidToken(t *testing.T) {
	r := protectedRouter(token.NewManager("test-secret", 24))

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set(HeaderAuthToken, "garbage")
	r.ServeHTTP(w, req)

	require.Equal(t, 401, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "Token is not valid", body["msg"])
}

func TestAuth_WrongSecret(t *testing.T) {
	other := token.NewManager("other-secret", 24)
	signed, err := other.Generate("user-1")
	require.NoError(t, err)

	r := protectedRouter(token.NewManager("test-secret", 24))

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set(HeaderAuthToken, signed)
	r.ServeHTTP(w, req)

	require.Equal(t, 401, w.Code)
}

func TestAuth_ValidToken(t *testing.T) {
	tokens := token.NewManager("test-secret", 24)
	signed, err := tokens.Generate("user-42")
	require.NoError(t, err)

	r := protectedRouter(tokens)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set(HeaderAuthToken, signed)
	r.ServeHTTP(w, req)

	require.Equal(t, 200, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "user-42", body["userID"])
}
