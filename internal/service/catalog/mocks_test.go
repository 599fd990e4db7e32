package catalog

import (
	"context"
	"sync"

	"github.com/heartmarshall/brewbook-backend/internal/domain"
)

// kindRepoMock is a func-field mock of kindRepo.
type kindRepoMock struct {
	RegisterFunc func(ctx context.Context, name string) (*domain.IngredientKind, error)
	ExistsFunc   func(ctx context.Context, name string) (bool, error)
	ListFunc     func(ctx context.Context) ([]domain.IngredientKind, error)

	mu            sync.Mutex
	registerCalls []string
	existsCalls   []string
	listCalls     int
}

func (m *kindRepoMock) Register(ctx context.Context, name string) (*domain.IngredientKind, error) {
	m.mu.Lock()
	m.registerCalls = append(m.registerCalls, name)
	m.mu.Unlock()
	return m.RegisterFunc(ctx, name)
}

func (m *kindRepoMock) Exists(ctx context.Context, name string) (bool, error) {
	m.mu.Lock()
	m.existsCalls = append(m.existsCalls, name)
	m.mu.Unlock()
	return m.ExistsFunc(ctx, name)
}

func (m *kindRepoMock) List(ctx context.Context) ([]domain.IngredientKind, error) {
	m.mu.Lock()
	m.listCalls++
	m.mu.Unlock()
	return m.ListFunc(ctx)
}

func (m *kindRepoMock) RegisterCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.registerCalls...)
}

// txManagerMock is a func-field mock of txManager.
type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.RunInTxFunc(ctx, fn)
}

// defaultTxMock returns a txManagerMock that simply calls the function with
// the same context.
func defaultTxMock() *txManagerMock {
	return &txManagerMock{
		RunInTxFunc: func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	}
}
