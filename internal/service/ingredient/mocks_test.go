package ingredient

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/brewbook-backend/internal/domain"
)

// ingredientRepoMock is a func-field mock of ingredientRepo.
type ingredientRepoMock struct {
	CreateFunc  func(ctx context.Context, ing *domain.Ingredient) (*domain.Ingredient, error)
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Ingredient, error)
	UpdateFunc  func(ctx context.Context, id uuid.UUID, params domain.IngredientUpdateParams) (*domain.Ingredient, error)
	DeleteFunc  func(ctx context.Context, id uuid.UUID) error
	ListFunc    func(ctx context.Context, filter domain.IngredientFilter) ([]domain.Ingredient, error)

	mu          sync.Mutex
	createCalls int
	updateCalls int
	deleteCalls int
}

func (m *ingredientRepoMock) Create(ctx context.Context, ing *domain.Ingredient) (*domain.Ingredient, error) {
	m.mu.Lock()
	m.createCalls++
	m.mu.Unlock()
	return m.CreateFunc(ctx, ing)
}

func (m *ingredientRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Ingredient, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *ingredientRepoMock) Update(ctx context.Context, id uuid.UUID, params domain.IngredientUpdateParams) (*domain.Ingredient, error) {
	m.mu.Lock()
	m.updateCalls++
	m.mu.Unlock()
	return m.UpdateFunc(ctx, id, params)
}

func (m *ingredientRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	m.deleteCalls++
	m.mu.Unlock()
	return m.DeleteFunc(ctx, id)
}

func (m *ingredientRepoMock) List(ctx context.Context, filter domain.IngredientFilter) ([]domain.Ingredient, error) {
	return m.ListFunc(ctx, filter)
}

func (m *ingredientRepoMock) CreateCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.createCalls
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
