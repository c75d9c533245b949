package domain

import (
	"testing"
)

func TestCountTasks(t *testing.T) {
	t.Parallel()

	tasks := []*Task{
		{Title: "a", Completed: true},
		{Title: "b"},
		{Title: "c"},
	}

	c := CountTasks(tasks)
	if c.Total != 3 || c.Completed != 1 || c.Pending != 2 {
		t.Fatalf("unexpected counts: %+v", c)
	}
}

func TestCountTasks_Empty(t *testing.T) {
	t.Parallel()

	c := CountTasks(nil)
	if c.Total != 0 || c.Completed != 0 || c.Pending != 0 {
		t.Fatalf("unexpected counts for empty list: %+v", c)
	}
}

func TestMessageRole_Valid(t *testing.T) {
	t.Parallel()

	if !RoleUser.Valid() || !RoleAssistant.Valid() {
		t.Fatal("known roles should be valid")
	}
	if MessageRole("system").Valid() {
		t.Fatal("unknown role should be invalid")
	}
}
