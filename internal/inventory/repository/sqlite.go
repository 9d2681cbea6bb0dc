package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/furfect/inventory-service/internal/model"
	"github.com/jmoiron/sqlx"
)

type SQLiteRepository struct {
	DB *sqlx.DB
}

func NewSQLiteRepository(db *sqlx.DB) *SQLiteRepository {
	return &SQLiteRepository{DB: db}
}

func (r *SQLiteRepository) Create(ctx context.Context, p *model.Product) error {
	query := `
        INSERT INTO products (name, category, price, stock, reorder_level)
        VALUES (:name, :category, :price, :stock, :reorder_level)
    `
	res, err := r.DB.NamedExecContext(ctx, query, p)
	if err != nil {
		return err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	p.ID = id
	return nil
}

func (r *SQLiteRepository) FindByID(ctx context.Context, id int64) (*model.Product, error) {
	var product model.Product
	query := `SELECT * FROM products WHERE id = ? LIMIT 1`
	err := r.DB.GetContext(ctx, &product, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (r *SQLiteRepository) FindAll(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	query := `SELECT * FROM products ORDER BY id`
	err := r.DB.SelectContext(ctx, &products, query)
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, id int64) error {
	// Sales rows referencing this product are left untouched.
	_, err := r.DB.ExecContext(ctx, `DELETE FROM products WHERE id = ?`, id)
	return err
}

func (r *SQLiteRepository) AddStock(ctx context.Context, id int64, delta int) error {
	query := `
        UPDATE products
        SET stock = stock + ?
        WHERE id = ? AND stock + ? >= 0
    `
	res, err := r.DB.ExecContext(ctx, query, delta, id, delta)
	if err != nil {
		return err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		// Row exists but the guard refused the adjustment. Existence is
		// checked by the use case before this call.
		return model.ErrInsufficientStock
	}
	return nil
}
