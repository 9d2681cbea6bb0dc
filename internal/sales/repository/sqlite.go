package repository

import (
	"context"
	"fmt"

	"github.com/furfect/inventory-service/internal/model"
	"github.com/jmoiron/sqlx"
)

type SQLiteRepository struct {
	DB *sqlx.DB
}

func NewSQLiteRepository(db *sqlx.DB) *SQLiteRepository {
	return &SQLiteRepository{DB: db}
}

func (r *SQLiteRepository) RecordCheckout(ctx context.Context, cart *model.Cart, saleDate string) ([]model.Sale, error) {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	decrementQuery := `
        UPDATE products
        SET stock = stock - ?
        WHERE id = ? AND stock >= ?
    `
	insertQuery := `
        INSERT INTO sales (product_id, quantity, total_price, sale_date)
        VALUES (?, ?, ?, ?)
    `

	sales := make([]model.Sale, 0, len(cart.Items))
	for i := range cart.Items {
		item := &cart.Items[i]

		res, err := tx.ExecContext(ctx, decrementQuery, item.Quantity, item.ProductID, item.Quantity)
		if err != nil {
			return nil, err
		}
		rows, err := res.RowsAffected()
		if err != nil {
			return nil, err
		}
		if rows == 0 {
			// Stock moved below the cart line since it was added, or the
			// product is gone. Abort the whole checkout.
			return nil, fmt.Errorf("product %d: %w", item.ProductID, model.ErrInsufficientStock)
		}

		sale := model.Sale{
			ProductID:  item.ProductID,
			Quantity:   item.Quantity,
			TotalPrice: item.LineTotal(),
			SaleDate:   saleDate,
		}

		ins, err := tx.ExecContext(ctx, insertQuery, sale.ProductID, sale.Quantity, sale.TotalPrice, sale.SaleDate)
		if err != nil {
			return nil, err
		}
		id, err := ins.LastInsertId()
		if err != nil {
			return nil, err
		}
		sale.ID = id
		sales = append(sales, sale)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return sales, nil
}

func (r *SQLiteRepository) ListSales(ctx context.Context) ([]model.SaleRecord, error) {
	var records []model.SaleRecord
	// LEFT JOIN keeps sales whose product has been deleted; their
	// product_name scans as NULL.
	query := `
        SELECT s.id, s.product_id, s.quantity, s.total_price, s.sale_date,
               p.name AS product_name
        FROM sales s
        LEFT JOIN products p ON p.id = s.product_id
        ORDER BY s.id
    `
	err := r.DB.SelectContext(ctx, &records, query)
	if err != nil {
		return nil, err
	}
	return records, nil
}
