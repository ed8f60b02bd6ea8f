package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// LoggerConfig controls what the request logger records.
type LoggerConfig struct {
	LogRequestBody bool
	MaxBodySize    int64
	SkipPaths      []string
}

func DefaultLoggerConfig() LoggerConfig {
	return LoggerConfig{
		LogRequestBody: false,
		MaxBodySize:    2048,
		SkipPaths:      []string{"/health"},
	}
}

func Logger() gin.HandlerFunc {
	return LoggerWithConfig(DefaultLoggerConfig())
}

// LoggerWithConfig logs one line per request: method, path, status, latency
// and the authenticated user when present. Query strings are logged as-is;
// bodies are only logged when enabled and never with secret fields intact.
func LoggerWithConfig(config LoggerConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		for _, skip := range config.SkipPaths {
			if path == skip {
				c.Next()
				return
			}
		}

		start := time.Now()
		method := c.Request.Method
		query := c.Request.URL.RawQuery

		var requestBody string
		if config.LogRequestBody && c.Request.Body != nil && c.Request.ContentLength > 0 && c.Request.ContentLength <= config.MaxBodySize {
			bodyBytes, err := io.ReadAll(io.LimitReader(c.Request.Body, config.MaxBodySize))
			if err == nil {
				c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
				requestBody = sanitizeBody(string(bodyBytes))
			}
		}

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()
		userID := c.GetString("userID")

		line := method + " " + path
		if query != "" {
			line += "?" + query
		}
		if userID != "" {
			line += " user=" + userID
		}
		if requestBody != "" {
			line += " body=" + requestBody
		}
		log.Printf("%s [%d] %v %dB", line, status, latency, c.Writer.Size())
	}
}

// sanitizeBody masks secret-bearing JSON fields before a body hits the log.
func sanitizeBody(body string) string {
	var data map[string]interface{}
	if json.Unmarshal([]byte(body), &data) != nil {
		return body
	}
	for key := range data {
		if isSensitiveField(strings.ToLower(key)) {
			data[key] = "********"
		}
	}
	masked, err := json.Marshal(data)
	if err != nil {
		return body
	}
	return string(masked)
}

func isSensitiveField(field string) bool {
	sensitive := []string{"password", "token", "secret", "key", "auth", "credential"}
	for _, s := range sensitive {
		if strings.Contains(field, s) {
			return true
		}
	}
	return false
}
