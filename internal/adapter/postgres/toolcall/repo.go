// Package toolcall implements the tool invocation audit log repository.
// One row per executed tool call, written in the same transaction as the
// assistant message that carries the invocation records.
package toolcall

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/bilalwebs/Taskflow-Fullstack-sub000/internal/adapter/postgres"
	"github.com/bilalwebs/Taskflow-Fullstack-sub000/internal/domain"
)

// Repo provides tool call log persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new tool call log repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const insertLogSQL = `
INSERT INTO tool_call_logs (id, message_id, conversation_id, user_id, tool_name, arguments, result, status, execution_time_ms, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

const countByUserSQL = `
SELECT COUNT(*) FROM tool_call_logs WHERE user_id = $1`

// Log writes audit rows for every invocation executed during an assistant
// turn. Intended to run inside the same transaction as the message insert.
func (r *Repo) Log(
	ctx context.Context,
	messageID, convID, userID uuid.UUID,
	invocations []domain.ToolInvocation,
) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC()
	for _, inv := range invocations {
		_, err := querier.Exec(ctx, insertLogSQL,
			uuid.New(), messageID, convID, userID,
			inv.Tool, []byte(inv.Parameters), []byte(inv.Result),
			string(inv.Status), inv.DurationMS, now,
		)
		if err != nil {
			return fmt.Errorf("log tool call %s: %w", inv.Tool, err)
		}
	}

	return nil
}

// CountByUser returns the number of logged tool calls for a user.
func (r *Repo) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	if err := querier.QueryRow(ctx, countByUserSQL, userID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count tool call logs: %w", err)
	}

	return count, nil
}
