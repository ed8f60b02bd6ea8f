package chat

import (
	_ "embed"
)

// The community knowledge document is fixed and ships inside the binary;
// the assistant answers only from it.
//
//go:embed knowledge.txt
var knowledgeText string

// Knowledge returns the local-knowledge document prepended to every prompt.
func Knowledge() string {
	return knowledgeText
}
