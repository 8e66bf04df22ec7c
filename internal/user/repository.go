package user

import (
	"context"
	"database/sql"

	"farmtotable-be/internal/logger"

	"go.uber.org/zap"
)

type CreateUserParams struct {
	FirstName  string
	MiddleName string
	LastName   string
	Email      string
	Password   string
	Role       Role
}

type Repository interface {
	CreateWithCart(ctx context.Context, params CreateUserParams) (User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, userID uint) (*User, error)
	GetAll(ctx context.Context) ([]User, error)
	UpdateProfile(ctx context.Context, params UpdateProfileParams) error
	UpdatePassword(ctx context.Context, userID uint, password string) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const userColumns = "id, first_name, middle_name, last_name, email, password, role, created_at"

func scanUser(row *sql.Row) (*User, error) {
	var u User
	err := row.Scan(
		&u.ID, &u.FirstName, &u.MiddleName, &u.LastName,
		&u.Email, &u.Password, &u.Role, &u.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// CreateWithCart inserts the user record and its empty cart as one
// transaction so registration never leaves a user without a cart.
func (r *repository) CreateWithCart(ctx context.Context, params CreateUserParams) (User, error) {
	log := logger.FromCtx(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return User{}, err
	}
	defer tx.Rollback()

	var u User
	err = tx.QueryRowContext(ctx, `
		INSERT INTO users (first_name, middle_name, last_name, email, password, role)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+userColumns,
		params.FirstName, params.MiddleName, params.LastName,
		params.Email, params.Password, params.Role,
	).Scan(
		&u.ID, &u.FirstName, &u.MiddleName, &u.LastName,
		&u.Email, &u.Password, &u.Role, &u.CreatedAt,
	)
	if err != nil {
		log.Error("db: failed to insert user",
			zap.String("email", params.Email),
			zap.Error(err),
		)
		return User{}, err
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO carts (user_id) VALUES ($1)`, u.ID,
	); err != nil {
		log.Error("db: failed to create cart for new user",
			zap.Uint("user_id", u.ID),
			zap.Error(err),
		)
		return User{}, err
	}

	if err := tx.Commit(); err != nil {
		return User{}, err
	}

	return u, nil
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	return scanUser(row)
}

func (r *repository) FindByID(ctx context.Context, userID uint) (*User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, userID)
	return scanUser(row)
}

func (r *repository) GetAll(ctx context.Context) ([]User, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+userColumns+` FROM users ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []User
	for rows.Next() {
		var u User
		if err := rows.Scan(
			&u.ID, &u.FirstName, &u.MiddleName, &u.LastName,
			&u.Email, &u.Password, &u.Role, &u.CreatedAt,
		); err != nil {
			return nil, err
		}
		users = append(users, u)
	}

	return users, rows.Err()
}

func (r *repository) UpdateProfile(ctx context.Context, params UpdateProfileParams) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE users
		SET first_name = $1, middle_name = $2, last_name = $3, email = $4
		WHERE id = $5
	`,
		params.FirstName, params.MiddleName, params.LastName,
		params.Email, params.UserID,
	)
	if err != nil {
		return err
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrUserNotFound
	}

	return nil
}

func (r *repository) UpdatePassword(ctx context.Context, userID uint, password string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET password = $1 WHERE id = $2`, password, userID)
	if err != nil {
		return err
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrUserNotFound
	}

	return nil
}
