package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Conversation is a user-owned, ordered sequence of messages.
type Conversation struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Title     *string
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}

// MessageRole identifies the author of a message turn.
type MessageRole string

const (
	RoleUser      MessageRole = "user"
	RoleAssistant MessageRole = "assistant"
)

// Valid reports whether the role is one of the known values.
func (r MessageRole) Valid() bool {
	return r == RoleUser || r == RoleAssistant
}

// Message is one immutable turn in a conversation. SequenceNumber is
// strictly gapless within the conversation, starting at 1.
type Message struct {
	ID             uuid.UUID
	ConversationID uuid.UUID
	Role           MessageRole
	Content        string
	ToolCalls      []ToolInvocation
	SequenceNumber int
	CreatedAt      time.Time
}

// InvocationStatus is the outcome of a single tool execution.
type InvocationStatus string

const (
	InvocationSuccess InvocationStatus = "success"
	InvocationError   InvocationStatus = "error"
)

// ToolInvocation is durable evidence that a tool was actually executed
// during the turn that produced its parent assistant message.
type ToolInvocation struct {
	Tool       string           `json:"tool"`
	Parameters json.RawMessage  `json:"parameters"`
	Result     json.RawMessage  `json:"result"`
	DurationMS int64            `json:"duration_ms"`
	Status     InvocationStatus `json:"status"`
}
