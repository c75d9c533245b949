package toolset

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
)

type taskIDArgs struct {
	TaskID string `json:"task_id"`
}

func (a taskIDArgs) parse() (uuid.UUID, bool) {
	id, err := uuid.Parse(a.TaskID)
	return id, err == nil
}

// getTask returns a single task by ID, scoped to the bound user.
func (b *Bound) getTask(ctx context.Context, raw json.RawMessage) Result {
	var args taskIDArgs
	if err := json.Unmarshal(raw, &args); err != nil {
		return errorResult("Invalid arguments: " + err.Error())
	}

	taskID, ok := args.parse()
	if !ok {
		return errorResult("Task not found")
	}

	task, err := b.reg.tasks.GetByID(ctx, b.userID, taskID)
	if err != nil {
		return b.repoError(ctx, err)
	}

	return successResult(taskResult{Status: "success", Task: toPayload(task)})
}
