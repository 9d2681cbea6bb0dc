package dto

type AddProductInput struct {
	Name         string
	Category     string
	Price        float64
	Stock        int
	ReorderLevel int
}
