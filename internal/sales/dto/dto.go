package dto

import "github.com/furfect/inventory-service/internal/model"

type CartLine struct {
	Item      model.CartItem
	LineTotal float64
}

type CartSummary struct {
	Lines      []CartLine
	GrandTotal float64
}

type CheckoutResult struct {
	ReceiptID string
	Total     float64
	Payment   float64
	Change    float64
	Sales     []model.Sale
}
