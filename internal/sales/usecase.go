package sales

import (
	"context"

	"github.com/furfect/inventory-service/internal/model"
	"github.com/furfect/inventory-service/internal/sales/dto"
)

// UseCase drives the purchase workflow. The shell keeps re-prompting on
// ErrProductNotFound and ErrInsufficientStock during cart building; checkout
// is terminal either way.
type UseCase interface {
	NewCart() *model.Cart
	AddToCart(ctx context.Context, cart *model.Cart, productID int64, quantity int) (*model.CartItem, error)
	ReviewCart(cart *model.Cart) *dto.CartSummary
	Checkout(ctx context.Context, cart *model.Cart, payment float64) (*dto.CheckoutResult, error)
	ListSales(ctx context.Context) ([]model.SaleRecord, error)
}
