package model

// SaleDateLayout is the timestamp format stored in sales.sale_date.
const SaleDateLayout = "2006-01-02 15:04:05"

// Sale is an immutable record of one completed line-item transaction.
// ProductID is a back-reference only: removing the product later leaves
// the sale row in place with a dangling id.
type Sale struct {
	ID         int64   `db:"id" json:"id"`
	ProductID  int64   `db:"product_id" json:"product_id"`
	Quantity   int     `db:"quantity" json:"quantity"`
	TotalPrice float64 `db:"total_price" json:"total_price"`
	SaleDate   string  `db:"sale_date" json:"sale_date"`
}

// SaleRecord is a sale joined with the product's current name for display.
// ProductName is nil when the referenced product has been deleted.
type SaleRecord struct {
	Sale
	ProductName *string `db:"product_name" json:"product_name"`
}
