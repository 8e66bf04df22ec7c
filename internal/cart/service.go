package cart

import (
	"context"

	"farmtotable-be/internal/logger"
	"farmtotable-be/internal/product"

	"go.uber.org/zap"
)

// Service defines the business logic for carts.
type Service interface {
	AddLine(ctx context.Context, userID, productID uint, quantity int) ([]CartLine, error)
	SetLineQuantity(ctx context.Context, userID, productID uint, quantity int) error
	RemoveLine(ctx context.Context, userID, productID uint) error
	ListLines(ctx context.Context, userID uint) ([]CartLine, error)
}

type service struct {
	repo        Repository
	productRepo product.Repository
}

func NewService(repo Repository, productRepo product.Repository) Service {
	return &service{repo: repo, productRepo: productRepo}
}

// AddLine adds a product to the user's cart. Repeat adds for the same
// product sum quantities instead of creating a second line.
func (s *service) AddLine(ctx context.Context, userID, productID uint, quantity int) ([]CartLine, error) {
	log := logger.FromCtx(ctx).With(
		zap.Uint("user_id", userID),
		zap.Uint("product_id", productID),
	)

	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	p, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProductNotFound
	}

	cartID, ok, err := s.repo.GetCartID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrCartNotFound
	}

	line, err := s.repo.GetLineByProduct(ctx, cartID, productID)
	if err != nil {
		return nil, err
	}

	if line == nil {
		_, err = s.repo.CreateLine(ctx, cartID, productID, quantity)
	} else {
		_, err = s.repo.UpdateLineQuantity(ctx, line.ID, line.Quantity+quantity)
	}
	if err != nil {
		return nil, err
	}

	log.Info("cart line added", zap.Int("quantity", quantity))

	return s.repo.GetLines(ctx, cartID)
}

// SetLineQuantity replaces the quantity of an existing line. A quantity of
// zero (or below) removes the line instead.
func (s *service) SetLineQuantity(ctx context.Context, userID, productID uint, quantity int) error {
	cartID, ok, err := s.repo.GetCartID(ctx, userID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrCartNotFound
	}

	line, err := s.repo.GetLineByProduct(ctx, cartID, productID)
	if err != nil {
		return err
	}
	if line == nil {
		return ErrLineNotFound
	}

	if quantity <= 0 {
		return s.repo.RemoveLine(ctx, cartID, productID)
	}

	p, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return err
	}
	if p == nil {
		return ErrProductNotFound
	}
	if quantity > p.Stock {
		return ErrQuantityExceedsStock
	}

	_, err = s.repo.UpdateLineQuantity(ctx, line.ID, quantity)
	return err
}

// RemoveLine deletes the matching line. Removing an absent line succeeds.
func (s *service) RemoveLine(ctx context.Context, userID, productID uint) error {
	cartID, ok, err := s.repo.GetCartID(ctx, userID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrCartNotFound
	}

	return s.repo.RemoveLine(ctx, cartID, productID)
}

// ListLines returns all lines with product details joined in.
func (s *service) ListLines(ctx context.Context, userID uint) ([]CartLine, error) {
	cartID, ok, err := s.repo.GetCartID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrCartNotFound
	}

	return s.repo.GetLines(ctx, cartID)
}
