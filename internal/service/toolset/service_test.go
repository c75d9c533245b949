package toolset

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bilalwebs/Taskflow-Fullstack-sub000/internal/domain"
)

func newBound(t *testing.T, repo *taskRepoMock, userID uuid.UUID) Executor {
	t.Helper()
	return NewRegistry(slog.Default(), repo).Bind(userID)
}

func makeTask(userID uuid.UUID, title string, completed bool) *domain.Task {
	now := time.Now().UTC()
	return &domain.Task{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     title,
		Completed: completed,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func decodeResult(t *testing.T, res Result) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(res.Content, &m))
	return m
}

// ---------------------------------------------------------------------------
// list_tasks
// ---------------------------------------------------------------------------

func TestExecute_ListTasks_Counts(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	repo := &taskRepoMock{
		ListByUserFunc: func(ctx context.Context, uid uuid.UUID) ([]*domain.Task, error) {
			return []*domain.Task{
				makeTask(uid, "done one", true),
				makeTask(uid, "open one", false),
				makeTask(uid, "open two", false),
			}, nil
		},
	}

	res := newBound(t, repo, userID).Execute(context.Background(), "list_tasks", nil)
	require.False(t, res.IsError)

	m := decodeResult(t, res)
	assert.Equal(t, float64(3), m["total"])
	assert.Equal(t, float64(1), m["completed_count"])
	assert.Equal(t, float64(2), m["pending_count"])
	assert.Len(t, m["tasks"], 3)

	// The repo query was scoped to the bound user.
	calls := repo.ListByUserCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, userID, calls[0].UserID)
}

func TestExecute_ListTasks_Empty(t *testing.T) {
	t.Parallel()

	repo := &taskRepoMock{
		ListByUserFunc: func(ctx context.Context, uid uuid.UUID) ([]*domain.Task, error) {
			return nil, nil
		},
	}

	res := newBound(t, repo, uuid.New()).Execute(context.Background(), "list_tasks", nil)
	require.False(t, res.IsError)

	m := decodeResult(t, res)
	assert.Equal(t, float64(0), m["total"])
	assert.NotNil(t, m["tasks"], "tasks must be an empty array, not null")
}

// ---------------------------------------------------------------------------
// create_task
// ---------------------------------------------------------------------------

func TestExecute_CreateTask_Success(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	repo := &taskRepoMock{
		CreateFunc: func(ctx context.Context, uid uuid.UUID, title string, description *string) (*domain.Task, error) {
			task := makeTask(uid, title, false)
			task.Description = description
			return task, nil
		},
	}

	args := json.RawMessage(`{"title":"  buy milk  ","description":"2 liters"}`)
	res := newBound(t, repo, userID).Execute(context.Background(), "create_task", args)
	require.False(t, res.IsError)

	m := decodeResult(t, res)
	assert.Equal(t, "success", m["status"])
	task := m["task"].(map[string]any)
	assert.Equal(t, "buy milk", task["title"])
	assert.Equal(t, "2 liters", task["description"])
	assert.Equal(t, false, task["completed"])

	calls := repo.CreateCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, userID, calls[0].UserID)
	assert.Equal(t, "buy milk", calls[0].Title)
}

func TestExecute_CreateTask_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		args    string
		wantErr string
	}{
		{"missing title", `{}`, "Title is required"},
		{"blank title", `{"title":"   "}`, "Title is required"},
		{"title too long", `{"title":"` + longString(201) + `"}`, "Title exceeds 200 characters"},
		{"description too long", `{"title":"ok","description":"` + longString(2001) + `"}`, "Description exceeds 2000 characters"},
		{"malformed json", `{"title":`, "Invalid arguments"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			repo := &taskRepoMock{}
			res := newBound(t, repo, uuid.New()).Execute(context.Background(), "create_task", json.RawMessage(tt.args))
			require.True(t, res.IsError)
			m := decodeResult(t, res)
			assert.Equal(t, "error", m["status"])
			assert.Contains(t, m["error"], tt.wantErr)
			assert.Empty(t, repo.CreateCalls(), "repo must not be touched on invalid input")
		})
	}
}

func TestExecute_CreateTask_MultibyteTitleWithinLimit(t *testing.T) {
	t.Parallel()

	repo := &taskRepoMock{
		CreateFunc: func(ctx context.Context, uid uuid.UUID, title string, description *string) (*domain.Task, error) {
			return makeTask(uid, title, false), nil
		},
	}

	// 200 Cyrillic characters are 400 bytes; the limit counts characters.
	title := strings.Repeat("я", 200)
	args, err := json.Marshal(map[string]string{"title": title})
	require.NoError(t, err)

	res := newBound(t, repo, uuid.New()).Execute(context.Background(), "create_task", args)
	require.False(t, res.IsError, "a %d-character multibyte title must pass the %d-character limit", len([]rune(title)), MaxTitleLength)

	require.Len(t, repo.CreateCalls(), 1)
	assert.Equal(t, title, repo.CreateCalls()[0].Title)
}

func TestExecute_RepoFailure_GenericError(t *testing.T) {
	t.Parallel()

	repo := &taskRepoMock{
		ListByUserFunc: func(ctx context.Context, uid uuid.UUID) ([]*domain.Task, error) {
			return nil, errors.New(`task list: ERROR: relation "tasks" does not exist (SQLSTATE 42P01)`)
		},
	}

	res := newBound(t, repo, uuid.New()).Execute(context.Background(), "list_tasks", nil)
	require.True(t, res.IsError)

	// The driver detail stays in the logs; the model sees generic text.
	m := decodeResult(t, res)
	assert.Equal(t, "Database error", m["error"])
}

// ---------------------------------------------------------------------------
// get_task / ownership
// ---------------------------------------------------------------------------

func TestExecute_GetTask_NotFoundForForeignTask(t *testing.T) {
	t.Parallel()

	repo := &taskRepoMock{
		GetByIDFunc: func(ctx context.Context, uid, taskID uuid.UUID) (*domain.Task, error) {
			return nil, domain.ErrNotFound
		},
	}

	args := json.RawMessage(`{"task_id":"` + uuid.NewString() + `"}`)
	res := newBound(t, repo, uuid.New()).Execute(context.Background(), "get_task", args)
	require.True(t, res.IsError)

	m := decodeResult(t, res)
	assert.Equal(t, "Task not found", m["error"])
}

func TestExecute_GetTask_InvalidID(t *testing.T) {
	t.Parallel()

	repo := &taskRepoMock{}
	args := json.RawMessage(`{"task_id":"not-a-uuid"}`)
	res := newBound(t, repo, uuid.New()).Execute(context.Background(), "get_task", args)
	require.True(t, res.IsError)

	m := decodeResult(t, res)
	assert.Equal(t, "Task not found", m["error"])
	assert.Empty(t, repo.GetByIDCalls())
}

// ---------------------------------------------------------------------------
// update_task
// ---------------------------------------------------------------------------

func TestExecute_UpdateTask_NoFields(t *testing.T) {
	t.Parallel()

	repo := &taskRepoMock{}
	args := json.RawMessage(`{"task_id":"` + uuid.NewString() + `"}`)
	res := newBound(t, repo, uuid.New()).Execute(context.Background(), "update_task", args)
	require.True(t, res.IsError)

	m := decodeResult(t, res)
	assert.Equal(t, "No fields provided to update", m["error"])
}

func TestExecute_UpdateTask_TitleOnly(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	repo := &taskRepoMock{
		UpdateFunc: func(ctx context.Context, uid, taskID uuid.UUID, title, description *string) (*domain.Task, error) {
			return makeTask(uid, *title, false), nil
		},
	}

	args := json.RawMessage(`{"task_id":"` + uuid.NewString() + `","title":"new title"}`)
	res := newBound(t, repo, userID).Execute(context.Background(), "update_task", args)
	require.False(t, res.IsError)

	calls := repo.UpdateCalls()
	require.Len(t, calls, 1)
	require.NotNil(t, calls[0].Title)
	assert.Equal(t, "new title", *calls[0].Title)
	assert.Nil(t, calls[0].Description)
}

// ---------------------------------------------------------------------------
// mark_complete
// ---------------------------------------------------------------------------

func TestExecute_MarkComplete_ReportsAction(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	completed := true
	repo := &taskRepoMock{
		ToggleCompleteFunc: func(ctx context.Context, uid, taskID uuid.UUID) (*domain.Task, error) {
			return makeTask(uid, "toggle me", completed), nil
		},
	}
	bound := newBound(t, repo, userID)
	args := json.RawMessage(`{"task_id":"` + uuid.NewString() + `"}`)

	res := bound.Execute(context.Background(), "mark_complete", args)
	require.False(t, res.IsError)
	assert.Equal(t, "marked_complete", decodeResult(t, res)["action"])

	// Toggling again flips it back.
	completed = false
	res = bound.Execute(context.Background(), "mark_complete", args)
	require.False(t, res.IsError)
	assert.Equal(t, "marked_incomplete", decodeResult(t, res)["action"])
}

// ---------------------------------------------------------------------------
// delete_task
// ---------------------------------------------------------------------------

func TestExecute_DeleteTask_ConfirmsTitle(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	repo := &taskRepoMock{
		DeleteFunc: func(ctx context.Context, uid, taskID uuid.UUID) (*domain.Task, error) {
			task := makeTask(uid, "old chore", false)
			task.ID = taskID
			return task, nil
		},
	}

	taskID := uuid.New()
	args := json.RawMessage(`{"task_id":"` + taskID.String() + `"}`)
	res := newBound(t, repo, userID).Execute(context.Background(), "delete_task", args)
	require.False(t, res.IsError)

	m := decodeResult(t, res)
	assert.Equal(t, "success", m["status"])
	assert.Contains(t, m["message"], "old chore")
	assert.Equal(t, taskID.String(), m["deleted_task_id"])
}

// ---------------------------------------------------------------------------
// dispatch
// ---------------------------------------------------------------------------

func TestExecute_UnknownTool(t *testing.T) {
	t.Parallel()

	res := newBound(t, &taskRepoMock{}, uuid.New()).Execute(context.Background(), "drop_database", nil)
	require.True(t, res.IsError)
	assert.Contains(t, decodeResult(t, res)["error"], "Unknown tool")
}

func TestSpecs_MatchDispatch(t *testing.T) {
	t.Parallel()

	// Every advertised tool must be executable, and its schema must be
	// valid JSON.
	repo := &taskRepoMock{
		ListByUserFunc: func(ctx context.Context, uid uuid.UUID) ([]*domain.Task, error) {
			return nil, nil
		},
	}
	bound := newBound(t, repo, uuid.New())

	for _, spec := range Specs() {
		assert.True(t, json.Valid(spec.InputSchema), "schema for %s", spec.Name)
		res := bound.Execute(context.Background(), spec.Name, json.RawMessage(`{}`))
		m := decodeResult(t, res)
		assert.NotEqual(t, "Unknown tool: "+spec.Name, m["error"])
	}
}

func longString(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = 'a'
	}
	return string(b)
}
