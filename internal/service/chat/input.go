package chat

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/bilalwebs/Taskflow-Fullstack-sub000/internal/domain"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// HandleInput holds the parameters for one chat turn.
type HandleInput struct {
	// ConversationID is nil when the client wants a new conversation.
	ConversationID *uuid.UUID
	Message        string
}

// sanitize validates the message and normalizes its whitespace. Returned
// text is what gets persisted and sent to the model. The length cap counts
// characters, not bytes, so multibyte text is not over-rejected.
func (i HandleInput) sanitize(maxLen int) (string, error) {
	msg := strings.TrimSpace(i.Message)
	msg = strings.ReplaceAll(msg, "\x00", "")
	msg = whitespaceRun.ReplaceAllString(msg, " ")

	if msg == "" {
		return "", domain.NewValidationError("message", "required")
	}
	if utf8.RuneCountInString(msg) > maxLen {
		return "", domain.NewValidationError("message", fmt.Sprintf("max %d characters", maxLen))
	}
	return msg, nil
}
