// Package provider defines the vendor-neutral types for LLM completion
// requests and responses. Concrete adapters live under
// internal/adapter/provider.
package provider

import (
	"encoding/json"
	"errors"
)

// Sentinel errors returned by completion adapters. The transport layer maps
// them to upstream-failure status codes.
var (
	// ErrRateLimited means the LLM provider rejected the request due to
	// rate limiting.
	ErrRateLimited = errors.New("llm provider rate limited")

	// ErrUnavailable means the LLM provider returned a server-side error.
	ErrUnavailable = errors.New("llm provider unavailable")

	// ErrTimeout means the request to the LLM provider did not complete
	// within the configured deadline.
	ErrTimeout = errors.New("llm provider timeout")
)

// Role identifies the author of a conversation turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// StopReason explains why the model stopped generating.
type StopReason string

const (
	// StopEndTurn means the model finished a normal reply.
	StopEndTurn StopReason = "end_turn"
	// StopToolUse means the model is requesting tool invocations and
	// expects tool results before it can continue.
	StopToolUse StopReason = "tool_use"
	// StopMaxTokens means generation was cut off by the token limit.
	StopMaxTokens StopReason = "max_tokens"
)

// ToolSpec describes a tool the model may call. InputSchema is a JSON Schema
// object describing the tool's parameters.
type ToolSpec struct {
	Name        string
	Description string
	InputSchema json.RawMessage
}

// ToolCall is a single tool invocation requested by the model.
type ToolCall struct {
	ID        string
	Name      string
	Arguments json.RawMessage
}

// ToolResult carries the outcome of executing a requested tool call back to
// the model. CallID must match the ID of the originating ToolCall.
type ToolResult struct {
	CallID  string
	Content string
	IsError bool
}

// Turn is one message in the conversation sent to the model. A user turn
// carries Content and optionally ToolResults; an assistant turn carries
// Content and optionally ToolCalls.
type Turn struct {
	Role        Role
	Content     string
	ToolCalls   []ToolCall
	ToolResults []ToolResult
}

// Request is a single completion request.
type Request struct {
	System    string
	Turns     []Turn
	Tools     []ToolSpec
	MaxTokens int
}

// Completion is the model's response to a Request.
type Completion struct {
	Text       string
	ToolCalls  []ToolCall
	StopReason StopReason
}
