package aggregate

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/Elephant-Learning/Elephant-Backend/internal/domain"
)

var (
	_ repo[domain.User] = &repoMock[domain.User]{}
	_ txManager         = &txManagerMock{}
)

type repoMock[T any] struct {
	GetFunc    func(ctx context.Context, id uuid.UUID) (*T, error)
	LookupFunc func(ctx context.Context, id uuid.UUID) (*T, error)
	PutFunc    func(ctx context.Context, e *T) error
	DeleteFunc func(ctx context.Context, id uuid.UUID) error

	calls struct {
		Get    []struct{ ID uuid.UUID }
		Lookup []struct{ ID uuid.UUID }
		Put    []struct{ E *T }
		Delete []struct{ ID uuid.UUID }
	}
	lockGet    sync.RWMutex
	lockLookup sync.RWMutex
	lockPut    sync.RWMutex
	lockDelete sync.RWMutex
}

func (mock *repoMock[T]) Get(ctx context.Context, id uuid.UUID) (*T, error) {
	if mock.GetFunc == nil {
		panic("repoMock.GetFunc: method is nil but repo.Get was just called")
	}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, struct{ ID uuid.UUID }{ID: id})
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, id)
}

func (mock *repoMock[T]) GetCalls() []struct{ ID uuid.UUID } {
	mock.lockGet.RLock()
	defer mock.lockGet.RUnlock()
	return mock.calls.Get
}

func (mock *repoMock[T]) Lookup(ctx context.Context, id uuid.UUID) (*T, error) {
	if mock.LookupFunc == nil {
		panic("repoMock.LookupFunc: method is nil but repo.Lookup was just called")
	}
	mock.lockLookup.Lock()
	mock.calls.Lookup = append(mock.calls.Lookup, struct{ ID uuid.UUID }{ID: id})
	mock.lockLookup.Unlock()
	return mock.LookupFunc(ctx, id)
}

func (mock *repoMock[T]) LookupCalls() []struct{ ID uuid.UUID } {
	mock.lockLookup.RLock()
	defer mock.lockLookup.RUnlock()
	return mock.calls.Lookup
}

func (mock *repoMock[T]) Put(ctx context.Context, e *T) error {
	if mock.PutFunc == nil {
		panic("repoMock.PutFunc: method is nil but repo.Put was just called")
	}
	mock.lockPut.Lock()
	mock.calls.Put = append(mock.calls.Put, struct{ E *T }{E: e})
	mock.lockPut.Unlock()
	return mock.PutFunc(ctx, e)
}

func (mock *repoMock[T]) PutCalls() []struct{ E *T } {
	mock.lockPut.RLock()
	defer mock.lockPut.RUnlock()
	return mock.calls.Put
}

func (mock *repoMock[T]) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("repoMock.DeleteFunc: method is nil but repo.Delete was just called")
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, struct{ ID uuid.UUID }{ID: id})
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *repoMock[T]) DeleteCalls() []struct{ ID uuid.UUID } {
	mock.lockDelete.RLock()
	defer mock.lockDelete.RUnlock()
	return mock.calls.Delete
}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct{}
	}
	lockRunInTx sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	mock.lockRunInTx.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, struct{}{})
	mock.lockRunInTx.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct{} {
	mock.lockRunInTx.RLock()
	defer mock.lockRunInTx.RUnlock()
	return mock.calls.RunInTx
}

func passthroughTx() *txManagerMock {
	return &txManagerMock{
		RunInTxFunc: func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	}
}
