package chat

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/bilalwebs/Taskflow-Fullstack-sub000/internal/domain"
	"github.com/bilalwebs/Taskflow-Fullstack-sub000/internal/provider"
	"github.com/bilalwebs/Taskflow-Fullstack-sub000/internal/service/toolset"
	"github.com/bilalwebs/Taskflow-Fullstack-sub000/pkg/ctxutil"
)

// HandleResult is the outcome of one chat turn.
type HandleResult struct {
	ConversationID   uuid.UUID
	MessageID        uuid.UUID
	AssistantMessage string
	ToolCalls        []domain.ToolInvocation
	Timestamp        time.Time

	// DegradedCause is non-nil when the completion engine failed and
	// AssistantMessage carries the degraded reply. The reply is persisted
	// either way; the transport layer decides the status code.
	DegradedCause error
}

// Handle executes one request-response cycle: resolve the conversation,
// persist the user message, run the bounded tool-calling loop against the
// completion engine, and persist the assistant reply.
func (s *Service) Handle(ctx context.Context, input HandleInput) (*HandleResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	message, err := input.sanitize(s.cfg.MaxMessageLength)
	if err != nil {
		return nil, err
	}

	conv, err := s.resolveConversation(ctx, userID, input.ConversationID)
	if err != nil {
		return nil, err
	}

	history, err := s.conversations.ListRecent(ctx, conv.ID, s.cfg.HistoryLimit)
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}

	// The user message is durable before the engine is ever called. A
	// failure past this point degrades the reply but never loses input.
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		_, appendErr := s.conversations.AppendMessage(txCtx, conv.ID, domain.RoleUser, message, nil)
		return appendErr
	})
	if err != nil {
		return nil, fmt.Errorf("persist user message: %w", err)
	}

	reply, invocations, degradedCause := s.runEngine(ctx, userID, conv.ID, history, message)

	var assistantMsg *domain.Message
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var appendErr error
		assistantMsg, appendErr = s.conversations.AppendMessage(txCtx, conv.ID, domain.RoleAssistant, reply, invocations)
		if appendErr != nil {
			return appendErr
		}
		if len(invocations) > 0 {
			return s.audit.Log(txCtx, assistantMsg.ID, conv.ID, userID, invocations)
		}
		return nil
	})
	if err != nil {
		s.log.ErrorContext(ctx, "assistant reply lost after completion",
			slog.String("conversation_id", conv.ID.String()),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("persist assistant message: %w", err)
	}

	s.log.InfoContext(ctx, "chat turn completed",
		slog.String("user_id", userID.String()),
		slog.String("conversation_id", conv.ID.String()),
		slog.Int("sequence_number", assistantMsg.SequenceNumber),
		slog.Int("tool_calls", len(invocations)),
		slog.Bool("degraded", degradedCause != nil),
	)

	return &HandleResult{
		ConversationID:   conv.ID,
		MessageID:        assistantMsg.ID,
		AssistantMessage: reply,
		ToolCalls:        invocations,
		Timestamp:        assistantMsg.CreatedAt,
		DegradedCause:    degradedCause,
	}, nil
}

// resolveConversation loads an existing conversation or creates a new one.
// Missing, soft-deleted, and foreign conversations are all ErrNotFound so
// other users' conversation IDs cannot be probed.
func (s *Service) resolveConversation(ctx context.Context, userID uuid.UUID, convID *uuid.UUID) (*domain.Conversation, error) {
	if convID != nil {
		conv, err := s.conversations.GetByID(ctx, userID, *convID)
		if err != nil {
			return nil, err
		}
		return conv, nil
	}

	conv, err := s.conversations.Create(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("create conversation: %w", err)
	}

	s.log.InfoContext(ctx, "conversation created",
		slog.String("user_id", userID.String()),
		slog.String("conversation_id", conv.ID.String()),
	)
	return conv, nil
}

// runEngine drives the tool-calling loop. It never returns an error: engine
// failures produce a degraded reply with the cause attached, so the caller
// always has something to persist.
func (s *Service) runEngine(
	ctx context.Context,
	userID, convID uuid.UUID,
	history []*domain.Message,
	message string,
) (string, []domain.ToolInvocation, error) {
	turns := make([]provider.Turn, 0, len(history)+1)
	for _, m := range history {
		turns = append(turns, provider.Turn{Role: provider.Role(m.Role), Content: m.Content})
	}
	turns = append(turns, provider.Turn{Role: provider.RoleUser, Content: message})

	bound := s.tools.Bind(userID)
	var invocations []domain.ToolInvocation

	for round := 0; ; round++ {
		req := provider.Request{
			System:    systemPrompt,
			Turns:     turns,
			MaxTokens: s.cfg.MaxTokens,
		}
		// The last round goes out without a tool catalog, forcing a
		// plain-text answer and bounding the loop.
		if round < s.cfg.MaxToolRounds {
			req.Tools = toolset.Specs()
		}

		comp, err := s.complete(ctx, req)
		if err != nil {
			s.log.ErrorContext(ctx, "completion failed",
				slog.String("conversation_id", convID.String()),
				slog.Int("round", round),
				slog.String("error", err.Error()),
			)
			if errors.Is(err, provider.ErrTimeout) {
				return timeoutReply, invocations, err
			}
			return degradedReply, invocations, err
		}

		if len(comp.ToolCalls) == 0 {
			// No tool calls and no text means nothing persistable came
			// back (token limit hit before any text block, or malformed
			// upstream output). Degrade like any other engine failure.
			if comp.Text == "" {
				s.log.ErrorContext(ctx, "completion returned no content",
					slog.String("conversation_id", convID.String()),
					slog.Int("round", round),
					slog.String("stop_reason", string(comp.StopReason)),
				)
				err := fmt.Errorf("empty completion, stop reason %q: %w", comp.StopReason, provider.ErrUnavailable)
				return degradedReply, invocations, err
			}
			return comp.Text, invocations, nil
		}

		assistantTurn := provider.Turn{
			Role:      provider.RoleAssistant,
			Content:   comp.Text,
			ToolCalls: comp.ToolCalls,
		}

		results := make([]provider.ToolResult, 0, len(comp.ToolCalls))
		for _, call := range comp.ToolCalls {
			start := time.Now()
			res := bound.Execute(ctx, call.Name, call.Arguments)

			status := domain.InvocationSuccess
			if res.IsError {
				status = domain.InvocationError
			}
			invocations = append(invocations, domain.ToolInvocation{
				Tool:       call.Name,
				Parameters: call.Arguments,
				Result:     res.Content,
				DurationMS: time.Since(start).Milliseconds(),
				Status:     status,
			})
			results = append(results, provider.ToolResult{
				CallID:  call.ID,
				Content: string(res.Content),
				IsError: res.IsError,
			})
		}

		turns = append(turns, assistantTurn, provider.Turn{Role: provider.RoleUser, ToolResults: results})
	}
}

func (s *Service) complete(ctx context.Context, req provider.Request) (provider.Completion, error) {
	callCtx, cancel := context.WithTimeout(ctx, s.cfg.RequestTimeout)
	defer cancel()
	return s.completer.Complete(callCtx, req)
}
