package inventory

import (
	"context"

	"github.com/furfect/inventory-service/internal/model"
)

type Repository interface {
	Create(ctx context.Context, product *model.Product) error
	FindByID(ctx context.Context, id int64) (*model.Product, error)
	FindAll(ctx context.Context) ([]model.Product, error)
	Delete(ctx context.Context, id int64) error

	// AddStock adjusts stock by delta. The adjustment is refused when it
	// would take stock below zero.
	AddStock(ctx context.Context, id int64, delta int) error
}
