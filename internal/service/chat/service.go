// Package chat implements the conversational orchestrator: one request in,
// one persisted assistant reply out, with bounded tool-calling rounds in
// between. The service holds no per-conversation state between requests.
package chat

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/bilalwebs/Taskflow-Fullstack-sub000/internal/domain"
	"github.com/bilalwebs/Taskflow-Fullstack-sub000/internal/provider"
	"github.com/bilalwebs/Taskflow-Fullstack-sub000/internal/service/toolset"
)

type conversationRepo interface {
	GetByID(ctx context.Context, userID, convID uuid.UUID) (*domain.Conversation, error)
	Create(ctx context.Context, userID uuid.UUID) (*domain.Conversation, error)
	ListRecent(ctx context.Context, convID uuid.UUID, limit int) ([]*domain.Message, error)
	AppendMessage(ctx context.Context, convID uuid.UUID, role domain.MessageRole, content string, toolCalls []domain.ToolInvocation) (*domain.Message, error)
}

type toolRegistry interface {
	Bind(userID uuid.UUID) toolset.Executor
}

type auditLog interface {
	Log(ctx context.Context, messageID, convID, userID uuid.UUID, invocations []domain.ToolInvocation) error
}

type completer interface {
	Complete(ctx context.Context, req provider.Request) (provider.Completion, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Config carries the orchestration policy knobs.
type Config struct {
	// HistoryLimit bounds how many recent messages are replayed to the
	// model per request.
	HistoryLimit int
	// MaxToolRounds bounds the tool-calling loop per request.
	MaxToolRounds int
	// MaxMessageLength bounds the user message after trimming.
	MaxMessageLength int
	// RequestTimeout bounds each call to the completion engine.
	RequestTimeout time.Duration
	// MaxTokens is the per-completion generation limit.
	MaxTokens int
}

// Service orchestrates conversational task management.
type Service struct {
	conversations conversationRepo
	tools         toolRegistry
	completer     completer
	audit         auditLog
	tx            txManager
	cfg           Config
	log           *slog.Logger
}

// NewService creates a new chat Service.
func NewService(
	log *slog.Logger,
	conversations conversationRepo,
	tools toolRegistry,
	completer completer,
	audit auditLog,
	tx txManager,
	cfg Config,
) *Service {
	return &Service{
		conversations: conversations,
		tools:         tools,
		completer:     completer,
		audit:         audit,
		tx:            tx,
		cfg:           cfg,
		log:           log.With("service", "chat"),
	}
}
