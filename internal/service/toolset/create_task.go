package toolset

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"
)

type createTaskArgs struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type taskResult struct {
	Status string      `json:"status"`
	Task   taskPayload `json:"task"`
}

// createTask creates a new task for the bound user.
func (b *Bound) createTask(ctx context.Context, raw json.RawMessage) Result {
	var args createTaskArgs
	if err := json.Unmarshal(raw, &args); err != nil {
		return errorResult("Invalid arguments: " + err.Error())
	}

	title := strings.TrimSpace(args.Title)
	if title == "" {
		return errorResult("Title is required")
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return errorResult(fmt.Sprintf("Title exceeds %d characters", MaxTitleLength))
	}
	if utf8.RuneCountInString(args.Description) > MaxDescriptionLength {
		return errorResult(fmt.Sprintf("Description exceeds %d characters", MaxDescriptionLength))
	}

	var description *string
	if args.Description != "" {
		description = &args.Description
	}

	task, err := b.reg.tasks.Create(ctx, b.userID, title, description)
	if err != nil {
		return b.repoError(ctx, err)
	}

	return successResult(taskResult{Status: "success", Task: toPayload(task)})
}
