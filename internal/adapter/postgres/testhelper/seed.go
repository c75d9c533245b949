package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bilalwebs/Taskflow-Fullstack-sub000/internal/domain"
)

// SeedConversation creates a conversation owned by userID.
func SeedConversation(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID) domain.Conversation {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	conv := domain.Conversation{
		ID:        uuid.New(),
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO conversations (id, user_id, title, created_at, updated_at)
		 VALUES ($1, $2, NULL, $3, $4)`,
		conv.ID, conv.UserID, conv.CreatedAt, conv.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedConversation insert: %v", err)
	}

	return conv
}

// SeedMessage appends a message with an explicit sequence number, bypassing
// the repository. Useful for building fixed histories.
func SeedMessage(t *testing.T, pool *pgxpool.Pool, convID uuid.UUID, role domain.MessageRole, content string, seq int) domain.Message {
	t.Helper()
	ctx := context.Background()

	msg := domain.Message{
		ID:             uuid.New(),
		ConversationID: convID,
		Role:           role,
		Content:        content,
		SequenceNumber: seq,
		CreatedAt:      time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO messages (id, conversation_id, role, content, tool_calls, sequence_number, created_at)
		 VALUES ($1, $2, $3, $4, NULL, $5, $6)`,
		msg.ID, msg.ConversationID, string(msg.Role), msg.Content, msg.SequenceNumber, msg.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedMessage insert: %v", err)
	}

	return msg
}

// SeedTask creates a task owned by userID.
func SeedTask(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, title string, completed bool) domain.Task {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	task := domain.Task{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     title,
		Completed: completed,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO tasks (id, user_id, title, description, completed, created_at, updated_at)
		 VALUES ($1, $2, $3, NULL, $4, $5, $6)`,
		task.ID, task.UserID, task.Title, task.Completed, task.CreatedAt, task.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedTask insert: %v", err)
	}

	return task
}
