package domain

import (
	"time"

	"github.com/google/uuid"
)

// Task is a user's task item. All access is scoped by UserID.
type Task struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Title       string
	Description *string
	Completed   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TaskCounts summarizes a user's task list.
type TaskCounts struct {
	Total     int
	Completed int
	Pending   int
}

// CountTasks derives list summary counts.
func CountTasks(tasks []*Task) TaskCounts {
	c := TaskCounts{Total: len(tasks)}
	for _, t := range tasks {
		if t.Completed {
			c.Completed++
		} else {
			c.Pending++
		}
	}
	return c
}
