package usecase

import (
	"context"
	"time"

	"github.com/furfect/inventory-service/internal/inventory"
	"github.com/furfect/inventory-service/internal/model"
	"github.com/furfect/inventory-service/internal/sales"
	"github.com/furfect/inventory-service/internal/sales/dto"
	"github.com/furfect/inventory-service/pkg/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type salesUseCase struct {
	repo     sales.Repository
	products inventory.Repository
	logger   logger.ZapLogger
	now      func() time.Time
}

func NewSalesUseCase(repo sales.Repository, products inventory.Repository, log logger.ZapLogger) sales.UseCase {
	return &salesUseCase{
		repo:     repo,
		products: products,
		logger:   log,
		now:      time.Now,
	}
}

func (uc *salesUseCase) NewCart() *model.Cart {
	return &model.Cart{ID: uuid.New().String()}
}

// AddToCart validates the product and desired quantity against current
// stock and appends a snapshot line. Stock itself is not touched until
// checkout; there is no reservation.
func (uc *salesUseCase) AddToCart(ctx context.Context, cart *model.Cart, productID int64, quantity int) (*model.CartItem, error) {
	p, err := uc.products.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, model.ErrProductNotFound
	}

	if quantity > p.Stock {
		return nil, model.ErrInsufficientStock
	}

	item := model.CartItem{
		ProductID: p.ID,
		Name:      p.Name,
		Quantity:  quantity,
		UnitPrice: p.Price,
	}
	cart.Add(item)

	uc.logger.Debug("cart line added",
		zap.String("cart_id", cart.ID),
		zap.Int64("product_id", p.ID),
		zap.Int("quantity", quantity))

	return &item, nil
}

func (uc *salesUseCase) ReviewCart(cart *model.Cart) *dto.CartSummary {
	summary := &dto.CartSummary{
		Lines: make([]dto.CartLine, 0, len(cart.Items)),
	}
	for _, item := range cart.Items {
		line := dto.CartLine{Item: item, LineTotal: item.LineTotal()}
		summary.Lines = append(summary.Lines, line)
		summary.GrandTotal += line.LineTotal
	}
	return summary
}

// Checkout settles the cart. Payment below the grand total aborts with
// nothing mutated; otherwise every line's stock decrement and sale row are
// committed together.
func (uc *salesUseCase) Checkout(ctx context.Context, cart *model.Cart, payment float64) (*dto.CheckoutResult, error) {
	if cart.Empty() {
		return nil, model.ErrEmptyCart
	}

	total := cart.Total()
	if payment < total {
		return nil, model.ErrInsufficientPayment
	}

	saleDate := uc.now().Format(model.SaleDateLayout)
	recorded, err := uc.repo.RecordCheckout(ctx, cart, saleDate)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("checkout completed",
		zap.String("receipt_id", cart.ID),
		zap.Int("lines", len(recorded)),
		zap.Float64("total", total))

	return &dto.CheckoutResult{
		ReceiptID: cart.ID,
		Total:     total,
		Payment:   payment,
		Change:    payment - total,
		Sales:     recorded,
	}, nil
}

func (uc *salesUseCase) ListSales(ctx context.Context) ([]model.SaleRecord, error) {
	return uc.repo.ListSales(ctx)
}
