// Package conversation implements the Conversation and Message repository
// using PostgreSQL. Sequence numbers are assigned under a row-level lock on
// the parent conversation, so concurrent appends to the same conversation
// serialize while different conversations proceed in parallel.
package conversation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/bilalwebs/Taskflow-Fullstack-sub000/internal/adapter/postgres"
	"github.com/bilalwebs/Taskflow-Fullstack-sub000/internal/domain"
)

// Repo provides conversation and message persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new conversation repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL
// ---------------------------------------------------------------------------

const createConversationSQL = `
INSERT INTO conversations (id, user_id, title, created_at, updated_at)
VALUES ($1, $2, $3, $4, $4)
RETURNING id, user_id, title, created_at, updated_at, deleted_at`

const getConversationSQL = `
SELECT id, user_id, title, created_at, updated_at, deleted_at
FROM conversations
WHERE id = $1 AND user_id = $2 AND deleted_at IS NULL`

const lockConversationSQL = `
SELECT id FROM conversations WHERE id = $1 FOR UPDATE`

const nextSequenceSQL = `
SELECT COALESCE(MAX(sequence_number), 0) + 1
FROM messages
WHERE conversation_id = $1`

const insertMessageSQL = `
INSERT INTO messages (id, conversation_id, role, content, tool_calls, sequence_number, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

const touchConversationSQL = `
UPDATE conversations SET updated_at = $2 WHERE id = $1`

const listRecentSQL = `
SELECT id, conversation_id, role, content, tool_calls, sequence_number, created_at
FROM (
    SELECT id, conversation_id, role, content, tool_calls, sequence_number, created_at
    FROM messages
    WHERE conversation_id = $1
    ORDER BY sequence_number DESC
    LIMIT $2
) recent
ORDER BY sequence_number ASC`

const softDeleteStaleSQL = `
UPDATE conversations
SET deleted_at = $2
WHERE updated_at < $1 AND deleted_at IS NULL`

const purgeDeletedSQL = `
DELETE FROM conversations
WHERE deleted_at IS NOT NULL AND deleted_at < $1`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a conversation by primary key with user_id filter.
// Returns domain.ErrNotFound if the conversation does not exist, belongs to
// another user, or has been soft-deleted.
func (r *Repo) GetByID(ctx context.Context, userID, convID uuid.UUID) (*domain.Conversation, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, getConversationSQL, convID, userID)
	conv, err := scanConversation(row)
	if err != nil {
		return nil, mapError(err, "conversation", convID)
	}

	return conv, nil
}

// ListRecent returns the most recent limit messages of a conversation,
// ordered by sequence number ascending. Returns an empty slice (not nil)
// when the conversation has no messages.
func (r *Repo) ListRecent(ctx context.Context, convID uuid.UUID, limit int) ([]*domain.Message, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listRecentSQL, convID, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent messages: %w", err)
	}
	defer rows.Close()

	messages := []*domain.Message{}
	for rows.Next() {
		msg, err := scanMessage(rows)
		if err != nil {
			return nil, fmt.Errorf("list recent messages: %w", err)
		}
		messages = append(messages, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list recent messages: %w", err)
	}

	return messages, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new conversation owned by userID and returns it.
func (r *Repo) Create(ctx context.Context, userID uuid.UUID) (*domain.Conversation, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	id := uuid.New()
	now := time.Now().UTC()

	row := querier.QueryRow(ctx, createConversationSQL, id, userID, nil, now)
	conv, err := scanConversation(row)
	if err != nil {
		return nil, mapError(err, "conversation", id)
	}

	return conv, nil
}

// AppendMessage assigns the next sequence number and inserts a message.
// It must run inside a transaction (TxManager): the parent conversation row
// is locked FOR UPDATE so that concurrent appends to the same conversation
// never produce duplicate or gapped sequence numbers.
func (r *Repo) AppendMessage(
	ctx context.Context,
	convID uuid.UUID,
	role domain.MessageRole,
	content string,
	toolCalls []domain.ToolInvocation,
) (*domain.Message, error) {
	if !role.Valid() {
		return nil, fmt.Errorf("message role %q: %w", role, domain.ErrValidation)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var lockedID uuid.UUID
	if err := querier.QueryRow(ctx, lockConversationSQL, convID).Scan(&lockedID); err != nil {
		return nil, mapError(err, "conversation", convID)
	}

	var seq int
	if err := querier.QueryRow(ctx, nextSequenceSQL, convID).Scan(&seq); err != nil {
		return nil, fmt.Errorf("next sequence number: %w", err)
	}

	msg := &domain.Message{
		ID:             uuid.New(),
		ConversationID: convID,
		Role:           role,
		Content:        content,
		ToolCalls:      toolCalls,
		SequenceNumber: seq,
		CreatedAt:      time.Now().UTC(),
	}

	var toolCallsJSON []byte
	if len(toolCalls) > 0 {
		b, err := json.Marshal(toolCalls)
		if err != nil {
			return nil, fmt.Errorf("marshal tool calls: %w", err)
		}
		toolCallsJSON = b
	}

	_, err := querier.Exec(ctx, insertMessageSQL,
		msg.ID, msg.ConversationID, string(msg.Role), msg.Content,
		toolCallsJSON, msg.SequenceNumber, msg.CreatedAt,
	)
	if err != nil {
		return nil, mapError(err, "message", msg.ID)
	}

	if _, err := querier.Exec(ctx, touchConversationSQL, convID, msg.CreatedAt); err != nil {
		return nil, fmt.Errorf("touch conversation: %w", err)
	}

	return msg, nil
}

// SoftDeleteStale marks conversations with no activity since threshold as
// deleted. Returns the number of conversations affected.
func (r *Repo) SoftDeleteStale(ctx context.Context, threshold time.Time) (int64, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, softDeleteStaleSQL, threshold, time.Now().UTC())
	if err != nil {
		return 0, fmt.Errorf("soft delete stale conversations: %w", err)
	}

	return tag.RowsAffected(), nil
}

// PurgeDeleted physically removes conversations soft-deleted before
// threshold. Messages cascade. Returns the number of conversations removed.
func (r *Repo) PurgeDeleted(ctx context.Context, threshold time.Time) (int64, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, purgeDeletedSQL, threshold)
	if err != nil {
		return 0, fmt.Errorf("purge deleted conversations: %w", err)
	}

	return tag.RowsAffected(), nil
}

// ---------------------------------------------------------------------------
// Scanning
// ---------------------------------------------------------------------------

// rowScanner is satisfied by both pgx.Row and pgx.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanConversation(row rowScanner) (*domain.Conversation, error) {
	var (
		conv      domain.Conversation
		title     pgtype.Text
		deletedAt pgtype.Timestamptz
	)

	err := row.Scan(&conv.ID, &conv.UserID, &title, &conv.CreatedAt, &conv.UpdatedAt, &deletedAt)
	if err != nil {
		return nil, err
	}

	if title.Valid {
		conv.Title = &title.String
	}
	if deletedAt.Valid {
		conv.DeletedAt = &deletedAt.Time
	}

	return &conv, nil
}

func scanMessage(row rowScanner) (*domain.Message, error) {
	var (
		msg       domain.Message
		role      string
		toolCalls []byte
	)

	err := row.Scan(&msg.ID, &msg.ConversationID, &role, &msg.Content,
		&toolCalls, &msg.SequenceNumber, &msg.CreatedAt)
	if err != nil {
		return nil, err
	}

	msg.Role = domain.MessageRole(role)
	if len(toolCalls) > 0 {
		if err := json.Unmarshal(toolCalls, &msg.ToolCalls); err != nil {
			return nil, fmt.Errorf("unmarshal tool calls: %w", err)
		}
	}

	return &msg, nil
}

// ---------------------------------------------------------------------------
// Error mapping
// ---------------------------------------------------------------------------

// mapError converts pgx/pgconn errors into domain errors.
func mapError(err error, entity string, id uuid.UUID) error {
	if err == nil {
		return nil
	}

	// context errors pass through as-is
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %s: %w", entity, id, err)
	}

	// pgx.ErrNoRows -> domain.ErrNotFound
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}

	// PgError codes
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrAlreadyExists)
		case "23503": // foreign_key_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
		case "23514": // check_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrValidation)
		}
	}

	// Everything else: wrap with context
	return fmt.Errorf("%s %s: %w", entity, id, err)
}
