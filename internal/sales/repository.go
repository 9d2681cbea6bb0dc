package sales

import (
	"context"

	"github.com/furfect/inventory-service/internal/model"
)

type Repository interface {
	// RecordCheckout decrements stock and inserts a sale row for every cart
	// line inside one transaction. Either all lines commit or none do.
	RecordCheckout(ctx context.Context, cart *model.Cart, saleDate string) ([]model.Sale, error)

	// ListSales returns every sale joined with the product's current name.
	// The name is nil for sales whose product has since been deleted.
	ListSales(ctx context.Context) ([]model.SaleRecord, error)
}
