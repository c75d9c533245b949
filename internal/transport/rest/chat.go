package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/bilalwebs/Taskflow-Fullstack-sub000/internal/domain"
	"github.com/bilalwebs/Taskflow-Fullstack-sub000/internal/provider"
	"github.com/bilalwebs/Taskflow-Fullstack-sub000/internal/service/chat"
	"github.com/bilalwebs/Taskflow-Fullstack-sub000/pkg/ctxutil"
)

// chatService defines the minimal interface needed by ChatHandler.
type chatService interface {
	Handle(ctx context.Context, input chat.HandleInput) (*chat.HandleResult, error)
}

// ChatHandler serves the conversational task-management endpoint.
type ChatHandler struct {
	svc chatService
	log *slog.Logger
}

// NewChatHandler creates a ChatHandler.
func NewChatHandler(svc chatService, logger *slog.Logger) *ChatHandler {
	return &ChatHandler{svc: svc, log: logger.With("handler", "chat")}
}

type chatRequest struct {
	Message        string     `json:"message"`
	ConversationID *uuid.UUID `json:"conversation_id,omitempty"`
}

type chatResponse struct {
	ConversationID   uuid.UUID               `json:"conversation_id"`
	MessageID        uuid.UUID               `json:"message_id"`
	AssistantMessage string                  `json:"assistant_message"`
	ToolCalls        []domain.ToolInvocation `json:"tool_calls,omitempty"`
	Timestamp        time.Time               `json:"timestamp"`
}

// Chat handles POST /api/{user_id}/chat.
// The path user_id must match the authenticated user; a mismatch is 403 so a
// valid token cannot be replayed against another user's URL.
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	pathUserID, err := uuid.Parse(r.PathValue("user_id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	authUserID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	if authUserID != pathUserID {
		h.log.WarnContext(r.Context(), "user id mismatch",
			slog.String("path_user_id", pathUserID.String()),
			slog.String("auth_user_id", authUserID.String()),
		)
		writeError(w, http.StatusForbidden, "permission denied")
		return
	}

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.svc.Handle(r.Context(), chat.HandleInput{
		ConversationID: req.ConversationID,
		Message:        req.Message,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, degradedStatus(result.DegradedCause), chatResponse{
		ConversationID:   result.ConversationID,
		MessageID:        result.MessageID,
		AssistantMessage: result.AssistantMessage,
		ToolCalls:        result.ToolCalls,
		Timestamp:        result.Timestamp,
	})
}

// degradedStatus picks the response status. A degraded turn still carries a
// persisted assistant reply in the body, but the status tells the client the
// upstream engine failed.
func degradedStatus(cause error) int {
	switch {
	case cause == nil:
		return http.StatusOK
	case errors.Is(cause, provider.ErrTimeout):
		return http.StatusGatewayTimeout
	default:
		return http.StatusBadGateway
	}
}

func (h *ChatHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, "permission denied")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "conversation not found")
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
