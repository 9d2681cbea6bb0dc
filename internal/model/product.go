package model

type Product struct {
	ID           int64   `db:"id" json:"id"`
	Name         string  `db:"name" json:"name"`
	Category     string  `db:"category" json:"category"`
	Price        float64 `db:"price" json:"price"`
	Stock        int     `db:"stock" json:"stock"`
	ReorderLevel int     `db:"reorder_level" json:"reorder_level"`
}

// LowStock reports whether the product is at or below its reorder level.
func (p *Product) LowStock() bool {
	return p.Stock <= p.ReorderLevel
}
