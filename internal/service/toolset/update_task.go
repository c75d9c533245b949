package toolset

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

type updateTaskArgs struct {
	TaskID      string  `json:"task_id"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

// updateTask changes a task's title and/or description. At least one of the
// two must be provided.
func (b *Bound) updateTask(ctx context.Context, raw json.RawMessage) Result {
	var args updateTaskArgs
	if err := json.Unmarshal(raw, &args); err != nil {
		return errorResult("Invalid arguments: " + err.Error())
	}

	if args.Title == nil && args.Description == nil {
		return errorResult("No fields provided to update")
	}

	if args.Title != nil {
		trimmed := strings.TrimSpace(*args.Title)
		if trimmed == "" {
			return errorResult("Title cannot be empty")
		}
		if utf8.RuneCountInString(trimmed) > MaxTitleLength {
			return errorResult(fmt.Sprintf("Title exceeds %d characters", MaxTitleLength))
		}
		args.Title = &trimmed
	}
	if args.Description != nil && utf8.RuneCountInString(*args.Description) > MaxDescriptionLength {
		return errorResult(fmt.Sprintf("Description exceeds %d characters", MaxDescriptionLength))
	}

	taskID, err := uuid.Parse(args.TaskID)
	if err != nil {
		return errorResult("Task not found")
	}

	task, err := b.reg.tasks.Update(ctx, b.userID, taskID, args.Title, args.Description)
	if err != nil {
		return b.repoError(ctx, err)
	}

	return successResult(taskResult{Status: "success", Task: toPayload(task)})
}
