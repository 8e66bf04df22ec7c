package order

import (
	"context"
	"database/sql"

	"farmtotable-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	GetCartSnapshot(ctx context.Context, userID uint) ([]SnapshotLine, error)
	SaveOrderLines(ctx context.Context, userID uint, lines []OrderLine) error
	GetByTransactionID(ctx context.Context, transactionID string) (*OrderLine, error)
	UpdateStatus(ctx context.Context, transactionID string, status Status) (*OrderLine, error)
	Delete(ctx context.Context, transactionID string) error
	GetAll(ctx context.Context, emailFilter string) ([]OrderLine, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const orderColumns = "id, transaction_id, product_id, product_name, quantity, total, email, status, ordered_at"

// GetCartSnapshot reads the user's cart with product details joined in.
// Lines whose product has been deleted come back with nil name and price.
func (r *repository) GetCartSnapshot(ctx context.Context, userID uint) ([]SnapshotLine, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT ci.product_id, ci.quantity, p.name, p.price
		FROM cart_items ci
		JOIN carts c ON ci.cart_id = c.id
		LEFT JOIN products p ON ci.product_id = p.id
		WHERE c.user_id = $1
		ORDER BY ci.created_at
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var snapshot []SnapshotLine
	for rows.Next() {
		var line SnapshotLine
		var name sql.NullString
		var price sql.NullFloat64
		if err := rows.Scan(&line.ProductID, &line.Quantity, &name, &price); err != nil {
			return nil, err
		}
		if name.Valid {
			line.ProductName = &name.String
		}
		if price.Valid {
			line.Price = &price.Float64
		}
		snapshot = append(snapshot, line)
	}

	return snapshot, rows.Err()
}

// SaveOrderLines persists the placement as one transaction: insert every
// order line, decrement stock (clamped at zero), and remove exactly the
// converted lines from the cart. A failure rolls the whole placement back.
func (r *repository) SaveOrderLines(ctx context.Context, userID uint, lines []OrderLine) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "SaveOrderLines"),
		zap.Uint("user_id", userID),
	)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, line := range lines {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO order_lines (
				transaction_id, product_id, product_name,
				quantity, total, email, status, ordered_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`,
			line.TransactionID, line.ProductID, line.ProductName,
			line.Quantity, line.Total, line.Email, line.Status, line.OrderedAt,
		)
		if err != nil {
			log.Error("failed to insert order line",
				zap.String("transaction_id", line.TransactionID),
				zap.Error(err),
			)
			return err
		}

		_, err = tx.ExecContext(ctx, `
			UPDATE products
			SET stock = GREATEST(stock - $1, 0)
			WHERE id = $2
		`, line.Quantity, line.ProductID)
		if err != nil {
			return err
		}

		_, err = tx.ExecContext(ctx, `
			DELETE FROM cart_items ci
			USING carts c
			WHERE ci.cart_id = c.id AND c.user_id = $1 AND ci.product_id = $2
		`, userID, line.ProductID)
		if err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	log.Info("order lines saved", zap.Int("count", len(lines)))

	return nil
}

func (r *repository) GetByTransactionID(ctx context.Context, transactionID string) (*OrderLine, error) {
	var line OrderLine
	err := r.db.QueryRowContext(ctx,
		`SELECT `+orderColumns+` FROM order_lines WHERE transaction_id = $1`,
		transactionID,
	).Scan(
		&line.ID, &line.TransactionID, &line.ProductID, &line.ProductName,
		&line.Quantity, &line.Total, &line.Email, &line.Status, &line.OrderedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &line, nil
}

func (r *repository) UpdateStatus(ctx context.Context, transactionID string, status Status) (*OrderLine, error) {
	var line OrderLine
	err := r.db.QueryRowContext(ctx, `
		UPDATE order_lines
		SET status = $1
		WHERE transaction_id = $2
		RETURNING `+orderColumns,
		status, transactionID,
	).Scan(
		&line.ID, &line.TransactionID, &line.ProductID, &line.ProductName,
		&line.Quantity, &line.Total, &line.Email, &line.Status, &line.OrderedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	return &line, nil
}

// Delete is idempotent: removing an absent transaction is not an error.
func (r *repository) Delete(ctx context.Context, transactionID string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM order_lines WHERE transaction_id = $1`, transactionID)
	return err
}

func (r *repository) GetAll(ctx context.Context, emailFilter string) ([]OrderLine, error) {
	query := `SELECT ` + orderColumns + ` FROM order_lines`
	args := []any{}
	if emailFilter != "" {
		query += ` WHERE email = $1`
		args = append(args, emailFilter)
	}
	query += ` ORDER BY ordered_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lines := make([]OrderLine, 0)
	for rows.Next() {
		var line OrderLine
		if err := rows.Scan(
			&line.ID, &line.TransactionID, &line.ProductID, &line.ProductName,
			&line.Quantity, &line.Total, &line.Email, &line.Status, &line.OrderedAt,
		); err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	return lines, rows.Err()
}
