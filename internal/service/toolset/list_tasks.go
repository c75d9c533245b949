package toolset

import (
	"context"
	"errors"
	"log/slog"

	"github.com/bilalwebs/Taskflow-Fullstack-sub000/internal/domain"
)

type listTasksPayload struct {
	Tasks          []taskPayload `json:"tasks"`
	Total          int           `json:"total"`
	CompletedCount int           `json:"completed_count"`
	PendingCount   int           `json:"pending_count"`
}

// listTasks returns every task owned by the bound user, with counts. An
// empty list is a success, not an error.
func (b *Bound) listTasks(ctx context.Context) Result {
	tasks, err := b.reg.tasks.ListByUser(ctx, b.userID)
	if err != nil {
		return b.repoError(ctx, err)
	}

	counts := domain.CountTasks(tasks)
	payload := listTasksPayload{
		Tasks:          make([]taskPayload, 0, len(tasks)),
		Total:          counts.Total,
		CompletedCount: counts.Completed,
		PendingCount:   counts.Pending,
	}
	for _, t := range tasks {
		payload.Tasks = append(payload.Tasks, toPayload(t))
	}

	return successResult(payload)
}

// repoError translates repository failures into tool error results. Missing
// and foreign tasks are indistinguishable to the model. Other failures are
// logged with the real cause; the model and the persisted transcript only
// see generic text.
func (b *Bound) repoError(ctx context.Context, err error) Result {
	if errors.Is(err, domain.ErrNotFound) {
		return errorResult("Task not found")
	}
	b.reg.log.ErrorContext(ctx, "task repository failure",
		slog.String("user_id", b.userID.String()),
		slog.String("error", err.Error()),
	)
	return errorResult("Database error")
}
