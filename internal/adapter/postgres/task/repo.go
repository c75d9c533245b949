// Package task implements the Task repository using PostgreSQL.
// Every query filters by user_id, so a task owned by another user is
// indistinguishable from a missing one.
package task

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/bilalwebs/Taskflow-Fullstack-sub000/internal/adapter/postgres"
	"github.com/bilalwebs/Taskflow-Fullstack-sub000/internal/domain"
)

// Repo provides task persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new task repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// psql builds queries with PostgreSQL $n placeholders.
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

const taskColumns = `id, user_id, title, description, completed, created_at, updated_at`

const createTaskSQL = `
INSERT INTO tasks (id, user_id, title, description, completed, created_at, updated_at)
VALUES ($1, $2, $3, $4, FALSE, $5, $5)
RETURNING ` + taskColumns

const getTaskSQL = `
SELECT ` + taskColumns + `
FROM tasks
WHERE id = $1 AND user_id = $2`

const listTasksSQL = `
SELECT ` + taskColumns + `
FROM tasks
WHERE user_id = $1
ORDER BY created_at ASC`

const toggleCompleteSQL = `
UPDATE tasks
SET completed = NOT completed, updated_at = $3
WHERE id = $1 AND user_id = $2
RETURNING ` + taskColumns

const deleteTaskSQL = `
DELETE FROM tasks
WHERE id = $1 AND user_id = $2
RETURNING ` + taskColumns

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a task by primary key with user_id filter.
// Returns domain.ErrNotFound if the task does not exist or belongs to another user.
func (r *Repo) GetByID(ctx context.Context, userID, taskID uuid.UUID) (*domain.Task, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	t, err := scanTask(querier.QueryRow(ctx, getTaskSQL, taskID, userID))
	if err != nil {
		return nil, mapError(err, "task", taskID)
	}

	return t, nil
}

// ListByUser returns all tasks owned by userID ordered by creation time.
// Returns an empty slice (not nil) when the user has no tasks.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Task, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listTasksSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	tasks := []*domain.Task{}
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("list tasks: %w", err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	return tasks, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new incomplete task owned by userID and returns it.
func (r *Repo) Create(ctx context.Context, userID uuid.UUID, title string, description *string) (*domain.Task, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	id := uuid.New()
	now := time.Now().UTC()

	t, err := scanTask(querier.QueryRow(ctx, createTaskSQL,
		id, userID, title, ptrStringToPgText(description), now))
	if err != nil {
		return nil, mapError(err, "task", id)
	}

	return t, nil
}

// Update applies a partial update. Nil fields are left untouched; the SET
// clause is built dynamically, so at least one of title/description must be
// non-nil (the service validates this). Returns domain.ErrNotFound if the
// task does not exist or belongs to another user.
func (r *Repo) Update(ctx context.Context, userID, taskID uuid.UUID, title, description *string) (*domain.Task, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	update := psql.Update("tasks").
		Set("updated_at", time.Now().UTC()).
		Where(squirrel.Eq{"id": taskID, "user_id": userID}).
		Suffix("RETURNING " + taskColumns)

	if title != nil {
		update = update.Set("title", *title)
	}
	if description != nil {
		update = update.Set("description", ptrStringToPgText(description))
	}

	sql, args, err := update.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update query: %w", err)
	}

	t, err := scanTask(querier.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, mapError(err, "task", taskID)
	}

	return t, nil
}

// ToggleComplete flips the completion flag and returns the updated task.
// Returns domain.ErrNotFound if the task does not exist or belongs to another user.
func (r *Repo) ToggleComplete(ctx context.Context, userID, taskID uuid.UUID) (*domain.Task, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	t, err := scanTask(querier.QueryRow(ctx, toggleCompleteSQL, taskID, userID, time.Now().UTC()))
	if err != nil {
		return nil, mapError(err, "task", taskID)
	}

	return t, nil
}

// Delete permanently removes a task and returns the deleted row for
// confirmation text. Returns domain.ErrNotFound if the task does not exist
// or belongs to another user.
func (r *Repo) Delete(ctx context.Context, userID, taskID uuid.UUID) (*domain.Task, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	t, err := scanTask(querier.QueryRow(ctx, deleteTaskSQL, taskID, userID))
	if err != nil {
		return nil, mapError(err, "task", taskID)
	}

	return t, nil
}

// ---------------------------------------------------------------------------
// Scanning and helpers
// ---------------------------------------------------------------------------

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (*domain.Task, error) {
	var (
		t           domain.Task
		description pgtype.Text
	)

	err := row.Scan(&t.ID, &t.UserID, &t.Title, &description, &t.Completed, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if description.Valid {
		t.Description = &description.String
	}

	return &t, nil
}

// ptrStringToPgText converts a *string to pgtype.Text (nil -> NULL).
func ptrStringToPgText(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}

// mapError converts pgx/pgconn errors into domain errors.
func mapError(err error, entity string, id uuid.UUID) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %s: %w", entity, id, err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}

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

	return fmt.Errorf("%s %s: %w", entity, id, err)
}
