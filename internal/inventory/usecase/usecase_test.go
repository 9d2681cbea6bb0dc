package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/furfect/inventory-service/internal/inventory/dto"
	"github.com/furfect/inventory-service/internal/model"
	"github.com/furfect/inventory-service/pkg/logger"
	"github.com/stretchr/testify/require"
)

// fakeRepo implements inventory.Repository with overridable funcs.
type fakeRepo struct {
	CreateFn   func(ctx context.Context, p *model.Product) error
	FindByIDFn func(ctx context.Context, id int64) (*model.Product, error)
	FindAllFn  func(ctx context.Context) ([]model.Product, error)
	DeleteFn   func(ctx context.Context, id int64) error
	AddStockFn func(ctx context.Context, id int64, delta int) error
}

func (f *fakeRepo) Create(ctx context.Context, p *model.Product) error { return f.CreateFn(ctx, p) }
func (f *fakeRepo) FindByID(ctx context.Context, id int64) (*model.Product, error) {
	return f.FindByIDFn(ctx, id)
}
func (f *fakeRepo) FindAll(ctx context.Context) ([]model.Product, error) { return f.FindAllFn(ctx) }
func (f *fakeRepo) Delete(ctx context.Context, id int64) error           { return f.DeleteFn(ctx, id) }
func (f *fakeRepo) AddStock(ctx context.Context, id int64, delta int) error {
	return f.AddStockFn(ctx, id, delta)
}

func TestAddProductAssignsID(t *testing.T) {
	repo := &fakeRepo{
		CreateFn: func(ctx context.Context, p *model.Product) error {
			p.ID = 7
			return nil
		},
	}
	uc := NewInventoryUseCase(repo, logger.NewNop())

	p, err := uc.AddProduct(context.Background(), &dto.AddProductInput{
		Name:         "Kibble",
		Category:     "Food",
		Price:        250.00,
		Stock:        10,
		ReorderLevel: 3,
	})
	require.NoError(t, err)
	require.Equal(t, int64(7), p.ID)
	require.Equal(t, "Kibble", p.Name)
	require.Equal(t, 10, p.Stock)
	require.False(t, p.LowStock())
}

func TestGetProductNotFound(t *testing.T) {
	repo := &fakeRepo{
		FindByIDFn: func(ctx context.Context, id int64) (*model.Product, error) {
			return nil, nil
		},
	}
	uc := NewInventoryUseCase(repo, logger.NewNop())

	_, err := uc.GetProduct(context.Background(), 99)
	require.ErrorIs(t, err, model.ErrProductNotFound)
}

func TestRemoveProduct(t *testing.T) {
	deleted := int64(0)
	repo := &fakeRepo{
		FindByIDFn: func(ctx context.Context, id int64) (*model.Product, error) {
			if id == 1 {
				return &model.Product{ID: 1, Name: "Kibble"}, nil
			}
			return nil, nil
		},
		DeleteFn: func(ctx context.Context, id int64) error {
			deleted = id
			return nil
		},
	}
	uc := NewInventoryUseCase(repo, logger.NewNop())

	require.ErrorIs(t, uc.RemoveProduct(context.Background(), 2), model.ErrProductNotFound)
	require.Zero(t, deleted)

	require.NoError(t, uc.RemoveProduct(context.Background(), 1))
	require.Equal(t, int64(1), deleted)
}

func TestRestock(t *testing.T) {
	repo := &fakeRepo{
		FindByIDFn: func(ctx context.Context, id int64) (*model.Product, error) {
			return &model.Product{ID: 1, Name: "Kibble", Stock: 10, ReorderLevel: 3}, nil
		},
		AddStockFn: func(ctx context.Context, id int64, delta int) error {
			require.Equal(t, 2, delta)
			return nil
		},
	}
	uc := NewInventoryUseCase(repo, logger.NewNop())

	p, err := uc.Restock(context.Background(), 1, 2)
	require.NoError(t, err)
	require.Equal(t, 12, p.Stock)
}

func TestRestockNotFound(t *testing.T) {
	repo := &fakeRepo{
		FindByIDFn: func(ctx context.Context, id int64) (*model.Product, error) {
			return nil, nil
		},
	}
	uc := NewInventoryUseCase(repo, logger.NewNop())

	_, err := uc.Restock(context.Background(), 42, 5)
	require.ErrorIs(t, err, model.ErrProductNotFound)
}

func TestRestockGuardPropagates(t *testing.T) {
	repo := &fakeRepo{
		FindByIDFn: func(ctx context.Context, id int64) (*model.Product, error) {
			return &model.Product{ID: 1, Name: "Kibble", Stock: 3}, nil
		},
		AddStockFn: func(ctx context.Context, id int64, delta int) error {
			return model.ErrInsufficientStock
		},
	}
	uc := NewInventoryUseCase(repo, logger.NewNop())

	_, err := uc.Restock(context.Background(), 1, -5)
	require.ErrorIs(t, err, model.ErrInsufficientStock)
}

func TestListProductsPassesThrough(t *testing.T) {
	want := []model.Product{
		{ID: 1, Name: "Kibble", Stock: 2, ReorderLevel: 3},
		{ID: 2, Name: "Leash", Stock: 9, ReorderLevel: 2},
	}
	repo := &fakeRepo{
		FindAllFn: func(ctx context.Context) ([]model.Product, error) {
			return want, nil
		},
	}
	uc := NewInventoryUseCase(repo, logger.NewNop())

	got, err := uc.ListProducts(context.Background())
	require.NoError(t, err)
	require.Equal(t, want, got)
	require.True(t, got[0].LowStock())
	require.False(t, got[1].LowStock())
}

func TestRepoErrorsSurface(t *testing.T) {
	boom := errors.New("db down")
	repo := &fakeRepo{
		FindAllFn: func(ctx context.Context) ([]model.Product, error) {
			return nil, boom
		},
	}
	uc := NewInventoryUseCase(repo, logger.NewNop())

	_, err := uc.ListProducts(context.Background())
	require.ErrorIs(t, err, boom)
}
