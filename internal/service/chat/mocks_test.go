package chat

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/google/uuid"

	"github.com/bilalwebs/Taskflow-Fullstack-sub000/internal/domain"
	"github.com/bilalwebs/Taskflow-Fullstack-sub000/internal/provider"
	"github.com/bilalwebs/Taskflow-Fullstack-sub000/internal/service/toolset"
)

var (
	_ conversationRepo = &conversationRepoMock{}
	_ toolRegistry     = &toolRegistryMock{}
	_ completer        = &completerMock{}
	_ auditLog         = &auditLogMock{}
	_ txManager        = &txManagerMock{}
	_ toolset.Executor = &executorMock{}
)

type conversationRepoMock struct {
	GetByIDFunc       func(ctx context.Context, userID, convID uuid.UUID) (*domain.Conversation, error)
	CreateFunc        func(ctx context.Context, userID uuid.UUID) (*domain.Conversation, error)
	ListRecentFunc    func(ctx context.Context, convID uuid.UUID, limit int) ([]*domain.Message, error)
	AppendMessageFunc func(ctx context.Context, convID uuid.UUID, role domain.MessageRole, content string, toolCalls []domain.ToolInvocation) (*domain.Message, error)

	calls struct {
		AppendMessage []struct {
			ConvID    uuid.UUID
			Role      domain.MessageRole
			Content   string
			ToolCalls []domain.ToolInvocation
		}
	}
	lock sync.RWMutex
}

func (mock *conversationRepoMock) GetByID(ctx context.Context, userID, convID uuid.UUID) (*domain.Conversation, error) {
	if mock.GetByIDFunc == nil {
		panic("conversationRepoMock.GetByIDFunc: method is nil but conversationRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, userID, convID)
}

func (mock *conversationRepoMock) Create(ctx context.Context, userID uuid.UUID) (*domain.Conversation, error) {
	if mock.CreateFunc == nil {
		panic("conversationRepoMock.CreateFunc: method is nil but conversationRepo.Create was just called")
	}
	return mock.CreateFunc(ctx, userID)
}

func (mock *conversationRepoMock) ListRecent(ctx context.Context, convID uuid.UUID, limit int) ([]*domain.Message, error) {
	if mock.ListRecentFunc == nil {
		panic("conversationRepoMock.ListRecentFunc: method is nil but conversationRepo.ListRecent was just called")
	}
	return mock.ListRecentFunc(ctx, convID, limit)
}

func (mock *conversationRepoMock) AppendMessage(ctx context.Context, convID uuid.UUID, role domain.MessageRole, content string, toolCalls []domain.ToolInvocation) (*domain.Message, error) {
	if mock.AppendMessageFunc == nil {
		panic("conversationRepoMock.AppendMessageFunc: method is nil but conversationRepo.AppendMessage was just called")
	}
	mock.lock.Lock()
	mock.calls.AppendMessage = append(mock.calls.AppendMessage, struct {
		ConvID    uuid.UUID
		Role      domain.MessageRole
		Content   string
		ToolCalls []domain.ToolInvocation
	}{convID, role, content, toolCalls})
	mock.lock.Unlock()
	return mock.AppendMessageFunc(ctx, convID, role, content, toolCalls)
}

func (mock *conversationRepoMock) AppendMessageCalls() []struct {
	ConvID    uuid.UUID
	Role      domain.MessageRole
	Content   string
	ToolCalls []domain.ToolInvocation
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.AppendMessage
}

type executorMock struct {
	ExecuteFunc func(ctx context.Context, name string, args json.RawMessage) toolset.Result

	calls struct {
		Execute []struct {
			Name string
			Args json.RawMessage
		}
	}
	lock sync.RWMutex
}

func (mock *executorMock) Execute(ctx context.Context, name string, args json.RawMessage) toolset.Result {
	if mock.ExecuteFunc == nil {
		panic("executorMock.ExecuteFunc: method is nil but Executor.Execute was just called")
	}
	mock.lock.Lock()
	mock.calls.Execute = append(mock.calls.Execute, struct {
		Name string
		Args json.RawMessage
	}{name, args})
	mock.lock.Unlock()
	return mock.ExecuteFunc(ctx, name, args)
}

func (mock *executorMock) ExecuteCalls() []struct {
	Name string
	Args json.RawMessage
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Execute
}

type toolRegistryMock struct {
	BindFunc func(userID uuid.UUID) toolset.Executor

	calls struct {
		Bind []struct {
			UserID uuid.UUID
		}
	}
	lock sync.RWMutex
}

func (mock *toolRegistryMock) Bind(userID uuid.UUID) toolset.Executor {
	if mock.BindFunc == nil {
		panic("toolRegistryMock.BindFunc: method is nil but toolRegistry.Bind was just called")
	}
	mock.lock.Lock()
	mock.calls.Bind = append(mock.calls.Bind, struct {
		UserID uuid.UUID
	}{userID})
	mock.lock.Unlock()
	return mock.BindFunc(userID)
}

func (mock *toolRegistryMock) BindCalls() []struct {
	UserID uuid.UUID
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Bind
}

type completerMock struct {
	CompleteFunc func(ctx context.Context, req provider.Request) (provider.Completion, error)

	calls struct {
		Complete []struct {
			Req provider.Request
		}
	}
	lock sync.RWMutex
}

func (mock *completerMock) Complete(ctx context.Context, req provider.Request) (provider.Completion, error) {
	if mock.CompleteFunc == nil {
		panic("completerMock.CompleteFunc: method is nil but completer.Complete was just called")
	}
	mock.lock.Lock()
	mock.calls.Complete = append(mock.calls.Complete, struct {
		Req provider.Request
	}{req})
	mock.lock.Unlock()
	return mock.CompleteFunc(ctx, req)
}

func (mock *completerMock) CompleteCalls() []struct {
	Req provider.Request
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Complete
}

type auditLogMock struct {
	LogFunc func(ctx context.Context, messageID, convID, userID uuid.UUID, invocations []domain.ToolInvocation) error

	calls struct {
		Log []struct {
			MessageID   uuid.UUID
			ConvID      uuid.UUID
			UserID      uuid.UUID
			Invocations []domain.ToolInvocation
		}
	}
	lock sync.RWMutex
}

func (mock *auditLogMock) Log(ctx context.Context, messageID, convID, userID uuid.UUID, invocations []domain.ToolInvocation) error {
	if mock.LogFunc == nil {
		panic("auditLogMock.LogFunc: method is nil but auditLog.Log was just called")
	}
	mock.lock.Lock()
	mock.calls.Log = append(mock.calls.Log, struct {
		MessageID   uuid.UUID
		ConvID      uuid.UUID
		UserID      uuid.UUID
		Invocations []domain.ToolInvocation
	}{messageID, convID, userID, invocations})
	mock.lock.Unlock()
	return mock.LogFunc(ctx, messageID, convID, userID, invocations)
}

func (mock *auditLogMock) LogCalls() []struct {
	MessageID   uuid.UUID
	ConvID      uuid.UUID
	UserID      uuid.UUID
	Invocations []domain.ToolInvocation
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Log
}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	return mock.RunInTxFunc(ctx, fn)
}
