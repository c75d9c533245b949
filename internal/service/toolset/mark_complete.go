package toolset

import (
	"context"
	"encoding/json"
)

type markCompleteResult struct {
	Status string      `json:"status"`
	Action string      `json:"action"`
	Task   taskPayload `json:"task"`
}

// markComplete toggles a task's completion status. Calling it on a completed
// task marks it incomplete again.
func (b *Bound) markComplete(ctx context.Context, raw json.RawMessage) Result {
	var args taskIDArgs
	if err := json.Unmarshal(raw, &args); err != nil {
		return errorResult("Invalid arguments: " + err.Error())
	}

	taskID, ok := args.parse()
	if !ok {
		return errorResult("Task not found")
	}

	task, err := b.reg.tasks.ToggleComplete(ctx, b.userID, taskID)
	if err != nil {
		return b.repoError(ctx, err)
	}

	action := "marked_incomplete"
	if task.Completed {
		action = "marked_complete"
	}

	return successResult(markCompleteResult{
		Status: "success",
		Action: action,
		Task:   toPayload(task),
	})
}
