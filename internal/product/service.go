package product

import (
	"context"

	"farmtotable-be/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	GetProducts(ctx context.Context) ([]Product, error)
	GetProductByID(ctx context.Context, productID uint) (*Product, error)
	Create(ctx context.Context, params CreateProductParams) (Product, error)
	Update(ctx context.Context, params UpdateProductParams) (*Product, error)
	Delete(ctx context.Context, productID uint) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetProducts(ctx context.Context) ([]Product, error) {
	return s.repo.GetAll(ctx)
}

func (s *service) GetProductByID(ctx context.Context, productID uint) (*Product, error) {
	p, err := s.repo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProductNotFound
	}
	return p, nil
}

func (s *service) Create(ctx context.Context, params CreateProductParams) (Product, error) {
	log := logger.FromCtx(ctx)

	if err := validateFields(params.Name, params.Price, params.Stock); err != nil {
		return Product{}, err
	}

	p, err := s.repo.Create(ctx, params)
	if err != nil {
		return Product{}, err
	}

	log.Info("product created",
		zap.Uint("product_id", p.ID),
		zap.String("name", p.Name),
	)

	return p, nil
}

func (s *service) Update(ctx context.Context, params UpdateProductParams) (*Product, error) {
	if err := validateFields(params.Name, params.Price, params.Stock); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, params)
}

func (s *service) Delete(ctx context.Context, productID uint) error {
	return s.repo.Delete(ctx, productID)
}

func validateFields(name string, price float64, stock int) error {
	if name == "" {
		return ErrNameRequired
	}
	if price < 0 {
		return ErrInvalidPrice
	}
	if stock < 0 {
		return ErrInvalidStock
	}
	return nil
}
