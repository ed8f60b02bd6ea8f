package chat

import (
	"context"
	"encoding/json"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/cinepick/cinepick/internal/pkg/response"
)

// directionsInstruction teaches the model the structured reply contract for
// directions requests; anything else comes back as plain text.
const directionsInstruction = `

When, and only when, the user asks for directions or a route between two places, reply with nothing but a JSON object of the form {"type": "directions", "origin": "<starting place>", "destination": "<ending place>"}. For every other question answer in plain text.`

// Generator is the language-model call the handler depends on.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// ChatRequest is the payload for a single chat turn.
type ChatRequest struct {
	UserQuery string `json:"userQuery"`
}

// MessageResponse is a plain-text assistant reply.
type MessageResponse struct {
	Message string `json:"message"`
}

// DirectionsResponse is the structured reply for a directions request.
type DirectionsResponse struct {
	Type        string `json:"type"`
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
}

type Handler struct {
	llm Generator
}

func NewHandler(llm Generator) *Handler {
	return &Handler{llm: llm}
}

// Chat godoc
// @Summary Ask the community assistant a question
// @Description Forwards the question with the fixed local-knowledge document to the language model. Returns plain text, or a structured directions payload when the model replies with one.
// @Tags chat
// @Accept json
// @Produce json
// @Param request body ChatRequest true "User question"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} response.MsgResponse
// @Failure 502 {object} response.MsgResponse
// @Router /chat [post]
func (h *Handler) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}
	if strings.TrimSpace(req.UserQuery) == "" {
		response.BadRequest(c, "A question (userQuery) is required")
		return
	}

	prompt := Knowledge() + directionsInstruction + "\n\nUser question: " + req.UserQuery

	reply, err := h.llm.Generate(c.Request.Context(), prompt)
	if err != nil {
		log.Printf("chat generation failed: %v", err)
		response.BadGateway(c, "Error communicating with the AI service")
		return
	}

	if directions, ok := ParseDirections(reply); ok {
		c.JSON(200, directions)
		return
	}

	c.JSON(200, MessageResponse{Message: reply})
}

// ParseDirections reports whether the model's reply is the structured
// directions payload. Replies wrapped in markdown code fences still count.
func ParseDirections(reply string) (*DirectionsResponse, bool) {
	cleaned := strings.TrimSpace(reply)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	if !strings.HasPrefix(cleaned, "{") {
		return nil, false
	}

	var directions DirectionsResponse
	if err := json.Unmarshal([]byte(cleaned), &directions); err != nil {
		return nil, false
	}
	if directions.Type != "directions" || directions.Origin == "" || directions.Destination == "" {
		return nil, false
	}

	return &directions, true
}
