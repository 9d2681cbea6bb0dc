package inventory

import (
	"context"

	"github.com/furfect/inventory-service/internal/inventory/dto"
	"github.com/furfect/inventory-service/internal/model"
)

type UseCase interface {
	AddProduct(ctx context.Context, input *dto.AddProductInput) (*model.Product, error)
	GetProduct(ctx context.Context, id int64) (*model.Product, error)
	ListProducts(ctx context.Context) ([]model.Product, error)
	RemoveProduct(ctx context.Context, id int64) error
	Restock(ctx context.Context, id int64, quantity int) (*model.Product, error)
}
