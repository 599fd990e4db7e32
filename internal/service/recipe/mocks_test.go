package recipe

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/brewbook-backend/internal/domain"
)

// recipeRepoMock is a func-field mock of recipeRepo.
type recipeRepoMock struct {
	CreateFunc     func(ctx context.Context, rec *domain.Recipe) (*domain.Recipe, error)
	GetByIDFunc    func(ctx context.Context, id uuid.UUID) (*domain.Recipe, error)
	FindByNameFunc func(ctx context.Context, name string) (*domain.Recipe, error)
	UpdateFunc     func(ctx context.Context, id uuid.UUID, params domain.RecipeUpdateParams) (*domain.Recipe, error)
	DeleteFunc     func(ctx context.Context, id uuid.UUID) error
	ListFunc       func(ctx context.Context) ([]domain.Recipe, error)

	mu          sync.Mutex
	createCalls int
	updateCalls int
	deleteCalls int
}

func (m *recipeRepoMock) Create(ctx context.Context, rec *domain.Recipe) (*domain.Recipe, error) {
	m.mu.Lock()
	m.createCalls++
	m.mu.Unlock()
	return m.CreateFunc(ctx, rec)
}

func (m *recipeRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Recipe, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *recipeRepoMock) FindByName(ctx context.Context, name string) (*domain.Recipe, error) {
	return m.FindByNameFunc(ctx, name)
}

func (m *recipeRepoMock) Update(ctx context.Context, id uuid.UUID, params domain.RecipeUpdateParams) (*domain.Recipe, error) {
	m.mu.Lock()
	m.updateCalls++
	m.mu.Unlock()
	return m.UpdateFunc(ctx, id, params)
}

func (m *recipeRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	m.deleteCalls++
	m.mu.Unlock()
	return m.DeleteFunc(ctx, id)
}

func (m *recipeRepoMock) List(ctx context.Context) ([]domain.Recipe, error) {
	return m.ListFunc(ctx)
}

func (m *recipeRepoMock) CreateCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.createCalls
}

func (m *recipeRepoMock) UpdateCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.updateCalls
}

// kindRepoMock is a func-field mock of kindRepo.
type kindRepoMock struct {
	ExistsFunc func(ctx context.Context, name string) (bool, error)
}

func (m *kindRepoMock) Exists(ctx context.Context, name string) (bool, error) {
	return m.ExistsFunc(ctx, name)
}

// knownKinds returns a kindRepoMock recognizing exactly the given names.
func knownKinds(names ...string) *kindRepoMock {
	set := make(map[string]bool, len(names))
	for _, name := range names {
		set[name] = true
	}
	return &kindRepoMock{
		ExistsFunc: func(ctx context.Context, name string) (bool, error) {
			return set[name], nil
		},
	}
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
