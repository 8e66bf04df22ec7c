package cart

import (
	"context"
	"database/sql"
	"time"

	"farmtotable-be/internal/logger"
	"farmtotable-be/internal/product"

	"go.uber.org/zap"
)

type Repository interface {
	GetCartID(ctx context.Context, userID uint) (uint, bool, error)
	GetLineByProduct(ctx context.Context, cartID, productID uint) (*CartLine, error)
	CreateLine(ctx context.Context, cartID, productID uint, quantity int) (*CartLine, error)
	UpdateLineQuantity(ctx context.Context, lineID uint, quantity int) (*CartLine, error)
	RemoveLine(ctx context.Context, cartID, productID uint) error
	GetLines(ctx context.Context, cartID uint) ([]CartLine, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetCartID(ctx context.Context, userID uint) (uint, bool, error) {
	var cartID uint
	err := r.db.QueryRowContext(ctx,
		`SELECT id FROM carts WHERE user_id = $1`, userID,
	).Scan(&cartID)
	if err == sql.ErrNoRows {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return cartID, true, nil
}

func (r *repository) GetLineByProduct(ctx context.Context, cartID, productID uint) (*CartLine, error) {
	query := `
	SELECT id, cart_id, product_id, quantity, created_at, updated_at
	FROM cart_items
	WHERE cart_id = $1 AND product_id = $2
	`

	var line CartLine
	err := r.db.QueryRowContext(ctx, query, cartID, productID).Scan(
		&line.ID, &line.CartID, &line.ProductID,
		&line.Quantity, &line.CreatedAt, &line.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &line, nil
}

func (r *repository) CreateLine(ctx context.Context, cartID, productID uint, quantity int) (*CartLine, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "CreateLine"),
		zap.Uint("cart_id", cartID),
		zap.Uint("product_id", productID),
	)

	query := `
	INSERT INTO cart_items (cart_id, product_id, quantity)
	VALUES ($1, $2, $3)
	RETURNING id, cart_id, product_id, quantity, created_at, updated_at
	`

	var line CartLine
	err := r.db.QueryRowContext(ctx, query, cartID, productID, quantity).Scan(
		&line.ID, &line.CartID, &line.ProductID,
		&line.Quantity, &line.CreatedAt, &line.UpdatedAt,
	)
	if err != nil {
		log.Error("failed to create cart line", zap.Error(err))
		return nil, err
	}

	log.Info("cart line created", zap.Uint("line_id", line.ID))

	return &line, nil
}

func (r *repository) UpdateLineQuantity(ctx context.Context, lineID uint, quantity int) (*CartLine, error) {
	query := `
	UPDATE cart_items
	SET quantity = $1, updated_at = NOW()
	WHERE id = $2
	RETURNING id, cart_id, product_id, quantity, created_at, updated_at
	`

	var line CartLine
	err := r.db.QueryRowContext(ctx, query, quantity, lineID).Scan(
		&line.ID, &line.CartID, &line.ProductID,
		&line.Quantity, &line.CreatedAt, &line.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &line, nil
}

// RemoveLine is idempotent: deleting an absent line is not an error.
func (r *repository) RemoveLine(ctx context.Context, cartID, productID uint) error {
	_, err := r.db.ExecContext(ctx, `
		DELETE FROM cart_items
		WHERE cart_id = $1 AND product_id = $2
	`, cartID, productID)
	return err
}

func (r *repository) GetLines(ctx context.Context, cartID uint) ([]CartLine, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "GetLines"),
		zap.Uint("cart_id", cartID),
	)

	start := time.Now()

	query := `
	SELECT
		ci.id, ci.cart_id, ci.product_id, ci.quantity, ci.created_at, ci.updated_at,
		p.id, p.name, p.description, p.category, p.price, p.stock, p.image_url, p.created_at
	FROM cart_items ci
	JOIN products p ON ci.product_id = p.id
	WHERE ci.cart_id = $1
	ORDER BY ci.created_at
	`

	rows, err := r.db.QueryContext(ctx, query, cartID)
	if err != nil {
		log.Error("query failed", zap.Error(err), zap.Duration("duration", time.Since(start)))
		return nil, err
	}
	defer rows.Close()

	lines := make([]CartLine, 0)
	for rows.Next() {
		var line CartLine
		var p product.Product
		if err := rows.Scan(
			&line.ID, &line.CartID, &line.ProductID,
			&line.Quantity, &line.CreatedAt, &line.UpdatedAt,
			&p.ID, &p.Name, &p.Description, &p.Category,
			&p.Price, &p.Stock, &p.ImageURL, &p.CreatedAt,
		); err != nil {
			log.Error("row scan failed", zap.Error(err))
			return nil, err
		}
		line.Product = &p
		lines = append(lines, line)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	log.Debug("cart lines loaded",
		zap.Int("rows", len(lines)),
		zap.Duration("duration", time.Since(start)),
	)

	return lines, nil
}
