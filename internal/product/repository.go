package product

import (
	"context"
	"database/sql"

	"farmtotable-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	GetAll(ctx context.Context) ([]Product, error)
	GetByID(ctx context.Context, productID uint) (*Product, error)
	Create(ctx context.Context, params CreateProductParams) (Product, error)
	Update(ctx context.Context, params UpdateProductParams) (*Product, error)
	Delete(ctx context.Context, productID uint) error
	DecrementStock(ctx context.Context, productID uint, qty int) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetAll(ctx context.Context) ([]Product, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, description, category, price, stock, image_url, created_at
		FROM products
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []Product
	for rows.Next() {
		var p Product
		if err := rows.Scan(
			&p.ID, &p.Name, &p.Description, &p.Category,
			&p.Price, &p.Stock, &p.ImageURL, &p.CreatedAt,
		); err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	return products, rows.Err()
}

func (r *repository) GetByID(ctx context.Context, productID uint) (*Product, error) {
	var p Product
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, description, category, price, stock, image_url, created_at
		FROM products
		WHERE id = $1
	`, productID).Scan(
		&p.ID, &p.Name, &p.Description, &p.Category,
		&p.Price, &p.Stock, &p.ImageURL, &p.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) Create(ctx context.Context, params CreateProductParams) (Product, error) {
	log := logger.FromCtx(ctx)

	var p Product
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO products (name, description, category, price, stock, image_url)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, name, description, category, price, stock, image_url, created_at
	`,
		params.Name, params.Description, params.Category,
		params.Price, params.Stock, params.ImageURL,
	).Scan(
		&p.ID, &p.Name, &p.Description, &p.Category,
		&p.Price, &p.Stock, &p.ImageURL, &p.CreatedAt,
	)
	if err != nil {
		log.Error("db: failed to insert product",
			zap.String("name", params.Name),
			zap.Error(err),
		)
	}

	return p, err
}

func (r *repository) Update(ctx context.Context, params UpdateProductParams) (*Product, error) {
	var p Product
	err := r.db.QueryRowContext(ctx, `
		UPDATE products
		SET name = $1, description = $2, category = $3, price = $4, stock = $5, image_url = $6
		WHERE id = $7
		RETURNING id, name, description, category, price, stock, image_url, created_at
	`,
		params.Name, params.Description, params.Category,
		params.Price, params.Stock, params.ImageURL, params.ProductID,
	).Scan(
		&p.ID, &p.Name, &p.Description, &p.Category,
		&p.Price, &p.Stock, &p.ImageURL, &p.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) Delete(ctx context.Context, productID uint) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, productID)
	if err != nil {
		return err
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrProductNotFound
	}

	return nil
}

// DecrementStock reduces on-hand stock, clamped at zero so it can never go
// negative even when an order exceeds availability.
func (r *repository) DecrementStock(ctx context.Context, productID uint, qty int) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE products
		SET stock = GREATEST(stock - $1, 0)
		WHERE id = $2
	`, qty, productID)
	if err != nil {
		return err
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrProductNotFound
	}

	return nil
}
