// Package toolset implements the task-management tools exposed to the LLM.
// A Registry is bound to one user per request; every tool operation is scoped
// to that user's tasks.
package toolset

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/bilalwebs/Taskflow-Fullstack-sub000/internal/domain"
)

const (
	MaxTitleLength       = 200
	MaxDescriptionLength = 2000
)

type taskRepo interface {
	GetByID(ctx context.Context, userID, taskID uuid.UUID) (*domain.Task, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Task, error)
	Create(ctx context.Context, userID uuid.UUID, title string, description *string) (*domain.Task, error)
	Update(ctx context.Context, userID, taskID uuid.UUID, title, description *string) (*domain.Task, error)
	ToggleComplete(ctx context.Context, userID, taskID uuid.UUID) (*domain.Task, error)
	Delete(ctx context.Context, userID, taskID uuid.UUID) (*domain.Task, error)
}

// Registry holds the tool implementations. Bind it to a user to execute.
type Registry struct {
	tasks taskRepo
	log   *slog.Logger
}

// NewRegistry creates a new tool Registry.
func NewRegistry(log *slog.Logger, tasks taskRepo) *Registry {
	return &Registry{
		tasks: tasks,
		log:   log.With("service", "toolset"),
	}
}

// Executor runs named tools on behalf of one bound user.
type Executor interface {
	Execute(ctx context.Context, name string, args json.RawMessage) Result
}

// Bind scopes the registry to a single user. All tool executions through the
// returned Executor operate on that user's tasks only.
func (r *Registry) Bind(userID uuid.UUID) Executor {
	return &Bound{reg: r, userID: userID}
}

// Bound is a Registry scoped to one user.
type Bound struct {
	reg    *Registry
	userID uuid.UUID
}

// Result is the structured outcome of a single tool execution, ready to be
// returned to the model verbatim.
type Result struct {
	Content json.RawMessage
	IsError bool
}

// Execute runs the named tool with the given JSON arguments. Unknown tool
// names and invalid arguments produce an error Result, never a Go error:
// the model needs to see the failure to recover from it.
func (b *Bound) Execute(ctx context.Context, name string, args json.RawMessage) Result {
	start := time.Now()

	var res Result
	switch name {
	case "list_tasks":
		res = b.listTasks(ctx)
	case "create_task":
		res = b.createTask(ctx, args)
	case "get_task":
		res = b.getTask(ctx, args)
	case "update_task":
		res = b.updateTask(ctx, args)
	case "mark_complete":
		res = b.markComplete(ctx, args)
	case "delete_task":
		res = b.deleteTask(ctx, args)
	default:
		res = errorResult("Unknown tool: " + name)
	}

	b.reg.log.InfoContext(ctx, "tool executed",
		slog.String("user_id", b.userID.String()),
		slog.String("tool", name),
		slog.Bool("is_error", res.IsError),
		slog.Duration("duration", time.Since(start)),
	)

	return res
}

// taskPayload is the task representation embedded in tool results.
type taskPayload struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Completed   bool      `json:"completed"`
	CreatedAt   string    `json:"created_at"`
	UpdatedAt   string    `json:"updated_at"`
}

func toPayload(t *domain.Task) taskPayload {
	return taskPayload{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Completed:   t.Completed,
		CreatedAt:   t.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:   t.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func successResult(payload any) Result {
	raw, err := json.Marshal(payload)
	if err != nil {
		return errorResult("Internal error: " + err.Error())
	}
	return Result{Content: raw}
}

func errorResult(msg string) Result {
	raw, _ := json.Marshal(map[string]string{
		"status": "error",
		"error":  msg,
	})
	return Result{Content: raw, IsError: true}
}
