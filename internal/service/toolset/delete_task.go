package toolset

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

type deleteTaskResult struct {
	Status        string    `json:"status"`
	Message       string    `json:"message"`
	DeletedTaskID uuid.UUID `json:"deleted_task_id"`
}

// deleteTask permanently removes a task. The confirmation message carries the
// title so the model can echo what was deleted.
func (b *Bound) deleteTask(ctx context.Context, raw json.RawMessage) Result {
	var args taskIDArgs
	if err := json.Unmarshal(raw, &args); err != nil {
		return errorResult("Invalid arguments: " + err.Error())
	}

	taskID, ok := args.parse()
	if !ok {
		return errorResult("Task not found")
	}

	task, err := b.reg.tasks.Delete(ctx, b.userID, taskID)
	if err != nil {
		return b.repoError(ctx, err)
	}

	return successResult(deleteTaskResult{
		Status:        "success",
		Message:       fmt.Sprintf("Task '%s' deleted successfully", task.Title),
		DeletedTaskID: task.ID,
	})
}
