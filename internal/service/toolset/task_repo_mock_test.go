package toolset

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/bilalwebs/Taskflow-Fullstack-sub000/internal/domain"
)

var _ taskRepo = &taskRepoMock{}

type taskRepoMock struct {
	GetByIDFunc        func(ctx context.Context, userID, taskID uuid.UUID) (*domain.Task, error)
	ListByUserFunc     func(ctx context.Context, userID uuid.UUID) ([]*domain.Task, error)
	CreateFunc         func(ctx context.Context, userID uuid.UUID, title string, description *string) (*domain.Task, error)
	UpdateFunc         func(ctx context.Context, userID, taskID uuid.UUID, title, description *string) (*domain.Task, error)
	ToggleCompleteFunc func(ctx context.Context, userID, taskID uuid.UUID) (*domain.Task, error)
	DeleteFunc         func(ctx context.Context, userID, taskID uuid.UUID) (*domain.Task, error)

	calls struct {
		GetByID []struct {
			UserID uuid.UUID
			TaskID uuid.UUID
		}
		ListByUser []struct {
			UserID uuid.UUID
		}
		Create []struct {
			UserID      uuid.UUID
			Title       string
			Description *string
		}
		Update []struct {
			UserID      uuid.UUID
			TaskID      uuid.UUID
			Title       *string
			Description *string
		}
		ToggleComplete []struct {
			UserID uuid.UUID
			TaskID uuid.UUID
		}
		Delete []struct {
			UserID uuid.UUID
			TaskID uuid.UUID
		}
	}
	lock sync.RWMutex
}

func (mock *taskRepoMock) GetByID(ctx context.Context, userID, taskID uuid.UUID) (*domain.Task, error) {
	if mock.GetByIDFunc == nil {
		panic("taskRepoMock.GetByIDFunc: method is nil but taskRepo.GetByID was just called")
	}
	mock.lock.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, struct {
		UserID uuid.UUID
		TaskID uuid.UUID
	}{userID, taskID})
	mock.lock.Unlock()
	return mock.GetByIDFunc(ctx, userID, taskID)
}

func (mock *taskRepoMock) GetByIDCalls() []struct {
	UserID uuid.UUID
	TaskID uuid.UUID
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.GetByID
}

func (mock *taskRepoMock) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Task, error) {
	if mock.ListByUserFunc == nil {
		panic("taskRepoMock.ListByUserFunc: method is nil but taskRepo.ListByUser was just called")
	}
	mock.lock.Lock()
	mock.calls.ListByUser = append(mock.calls.ListByUser, struct {
		UserID uuid.UUID
	}{userID})
	mock.lock.Unlock()
	return mock.ListByUserFunc(ctx, userID)
}

func (mock *taskRepoMock) ListByUserCalls() []struct {
	UserID uuid.UUID
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.ListByUser
}

func (mock *taskRepoMock) Create(ctx context.Context, userID uuid.UUID, title string, description *string) (*domain.Task, error) {
	if mock.CreateFunc == nil {
		panic("taskRepoMock.CreateFunc: method is nil but taskRepo.Create was just called")
	}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, struct {
		UserID      uuid.UUID
		Title       string
		Description *string
	}{userID, title, description})
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, userID, title, description)
}

func (mock *taskRepoMock) CreateCalls() []struct {
	UserID      uuid.UUID
	Title       string
	Description *string
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Create
}

func (mock *taskRepoMock) Update(ctx context.Context, userID, taskID uuid.UUID, title, description *string) (*domain.Task, error) {
	if mock.UpdateFunc == nil {
		panic("taskRepoMock.UpdateFunc: method is nil but taskRepo.Update was just called")
	}
	mock.lock.Lock()
	mock.calls.Update = append(mock.calls.Update, struct {
		UserID      uuid.UUID
		TaskID      uuid.UUID
		Title       *string
		Description *string
	}{userID, taskID, title, description})
	mock.lock.Unlock()
	return mock.UpdateFunc(ctx, userID, taskID, title, description)
}

func (mock *taskRepoMock) UpdateCalls() []struct {
	UserID      uuid.UUID
	TaskID      uuid.UUID
	Title       *string
	Description *string
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Update
}

func (mock *taskRepoMock) ToggleComplete(ctx context.Context, userID, taskID uuid.UUID) (*domain.Task, error) {
	if mock.ToggleCompleteFunc == nil {
		panic("taskRepoMock.ToggleCompleteFunc: method is nil but taskRepo.ToggleComplete was just called")
	}
	mock.lock.Lock()
	mock.calls.ToggleComplete = append(mock.calls.ToggleComplete, struct {
		UserID uuid.UUID
		TaskID uuid.UUID
	}{userID, taskID})
	mock.lock.Unlock()
	return mock.ToggleCompleteFunc(ctx, userID, taskID)
}

func (mock *taskRepoMock) ToggleCompleteCalls() []struct {
	UserID uuid.UUID
	TaskID uuid.UUID
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.ToggleComplete
}

func (mock *taskRepoMock) Delete(ctx context.Context, userID, taskID uuid.UUID) (*domain.Task, error) {
	if mock.DeleteFunc == nil {
		panic("taskRepoMock.DeleteFunc: method is nil but taskRepo.Delete was just called")
	}
	mock.lock.Lock()
	mock.calls.Delete = append(mock.calls.Delete, struct {
		UserID uuid.UUID
		TaskID uuid.UUID
	}{userID, taskID})
	mock.lock.Unlock()
	return mock.DeleteFunc(ctx, userID, taskID)
}

func (mock *taskRepoMock) DeleteCalls() []struct {
	UserID uuid.UUID
	TaskID uuid.UUID
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Delete
}
