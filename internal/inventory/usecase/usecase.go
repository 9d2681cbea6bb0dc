package usecase

import (
	"context"

	"github.com/furfect/inventory-service/internal/inventory"
	"github.com/furfect/inventory-service/internal/inventory/dto"
	"github.com/furfect/inventory-service/internal/model"
	"github.com/furfect/inventory-service/pkg/logger"
	"go.uber.org/zap"
)

type inventoryUseCase struct {
	repo   inventory.Repository
	logger logger.ZapLogger
}

func NewInventoryUseCase(repo inventory.Repository, log logger.ZapLogger) inventory.UseCase {
	return &inventoryUseCase{
		repo:   repo,
		logger: log,
	}
}

// AddProduct persists a new product. Price, stock and reorder level are
// taken as supplied; validating them is the caller's job.
func (uc *inventoryUseCase) AddProduct(ctx context.Context, input *dto.AddProductInput) (*model.Product, error) {
	p := &model.Product{
		Name:         input.Name,
		Category:     input.Category,
		Price:        input.Price,
		Stock:        input.Stock,
		ReorderLevel: input.ReorderLevel,
	}

	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	uc.logger.Info("product added",
		zap.Int64("product_id", p.ID),
		zap.String("name", p.Name),
		zap.Int("stock", p.Stock))

	return p, nil
}

func (uc *inventoryUseCase) GetProduct(ctx context.Context, id int64) (*model.Product, error) {
	p, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, model.ErrProductNotFound
	}
	return p, nil
}

func (uc *inventoryUseCase) ListProducts(ctx context.Context) ([]model.Product, error) {
	return uc.repo.FindAll(ctx)
}

func (uc *inventoryUseCase) RemoveProduct(ctx context.Context, id int64) error {
	p, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if p == nil {
		return model.ErrProductNotFound
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}

	uc.logger.Info("product removed",
		zap.Int64("product_id", id),
		zap.String("name", p.Name))

	return nil
}

// Restock adds quantity to the product's stock and returns the updated row.
// Negative adjustments are allowed but cannot take stock below zero.
func (uc *inventoryUseCase) Restock(ctx context.Context, id int64, quantity int) (*model.Product, error) {
	p, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, model.ErrProductNotFound
	}

	if err := uc.repo.AddStock(ctx, id, quantity); err != nil {
		return nil, err
	}

	p.Stock += quantity
	uc.logger.Info("stock updated",
		zap.Int64("product_id", id),
		zap.String("name", p.Name),
		zap.Int("new_stock", p.Stock))

	return p, nil
}
