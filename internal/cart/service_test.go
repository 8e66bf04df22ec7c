package cart

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"farmtotable-be/internal/product"
)

// MockRepository is a mock implementation of the Repository interface
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetCartID(ctx context.Context, userID uint) (uint, bool, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(uint), args.Bool(1), args.Error(2)
}

func (m *MockRepository) GetLineByProduct(ctx context.Context, cartID, productID uint) (*CartLine, error) {
	args := m.Called(ctx, cartID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*CartLine), args.Error(1)
}

func (m *MockRepository) CreateLine(ctx context.Context, cartID, productID uint, quantity int) (*CartLine, error) {
	args := m.Called(ctx, cartID, productID, quantity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*CartLine), args.Error(1)
}

func (m *MockRepository) UpdateLineQuantity(ctx context.Context, lineID uint, quantity int) (*CartLine, error) {
	args := m.Called(ctx, lineID, quantity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*CartLine), args.Error(1)
}

func (m *MockRepository) RemoveLine(ctx context.Context, cartID, productID uint) error {
	args := m.Called(ctx, cartID, productID)
	return args.Error(0)
}

func (m *MockRepository) GetLines(ctx context.Context, cartID uint) ([]CartLine, error) {
	args := m.Called(ctx, cartID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]CartLine), args.Error(1)
}

// MockProductRepository is a mock implementation of product.Repository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) GetAll(ctx context.Context) ([]product.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]product.Product), args.Error(1)
}

func (m *MockProductRepository) GetByID(ctx context.Context, productID uint) (*product.Product, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockProductRepository) Create(ctx context.Context, params product.CreateProductParams) (product.Product, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(product.Product), args.Error(1)
}

func (m *MockProductRepository) Update(ctx context.Context, params product.UpdateProductParams) (*product.Product, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockProductRepository) Delete(ctx context.Context, productID uint) error {
	args := m.Called(ctx, productID)
	return args.Error(0)
}

func (m *MockProductRepository) DecrementStock(ctx context.Context, productID uint, qty int) error {
	args := m.Called(ctx, productID, qty)
	return args.Error(0)
}

func TestService_AddLine(t *testing.T) {
	ctx := context.Background()
	tomatoes := &product.Product{ID: 10, Name: "Tomatoes", Price: 5, Stock: 20}

	t.Run("CreatesNewLine", func(t *testing.T) {
		repo := new(MockRepository)
		productRepo := new(MockProductRepository)

		productRepo.On("GetByID", ctx, uint(10)).Return(tomatoes, nil)
		repo.On("GetCartID", ctx, uint(1)).Return(uint(7), true, nil)
		repo.On("GetLineByProduct", ctx, uint(7), uint(10)).Return(nil, nil)
		repo.On("CreateLine", ctx, uint(7), uint(10), 3).
			Return(&CartLine{ID: 100, CartID: 7, ProductID: 10, Quantity: 3}, nil)
		repo.On("GetLines", ctx, uint(7)).Return([]CartLine{
			{ID: 100, CartID: 7, ProductID: 10, Quantity: 3, Product: tomatoes},
		}, nil)

		lines, err := NewService(repo, productRepo).AddLine(ctx, 1, 10, 3)
		require.NoError(t, err)
		require.Len(t, lines, 1)
		assert.Equal(t, 3, lines[0].Quantity)
		repo.AssertExpectations(t)
	})

	t.Run("RepeatAddSumsQuantities", func(t *testing.T) {
		repo := new(MockRepository)
		productRepo := new(MockProductRepository)

		productRepo.On("GetByID", ctx, uint(10)).Return(tomatoes, nil)
		repo.On("GetCartID", ctx, uint(1)).Return(uint(7), true, nil)
		repo.On("GetLineByProduct", ctx, uint(7), uint(10)).
			Return(&CartLine{ID: 100, CartID: 7, ProductID: 10, Quantity: 3}, nil)
		repo.On("UpdateLineQuantity", ctx, uint(100), 5).
			Return(&CartLine{ID: 100, CartID: 7, ProductID: 10, Quantity: 5}, nil)
		repo.On("GetLines", ctx, uint(7)).Return([]CartLine{
			{ID: 100, CartID: 7, ProductID: 10, Quantity: 5, Product: tomatoes},
		}, nil)

		lines, err := NewService(repo, productRepo).AddLine(ctx, 1, 10, 2)
		require.NoError(t, err)
		require.Len(t, lines, 1)
		assert.Equal(t, 5, lines[0].Quantity)
		repo.AssertNotCalled(t, "CreateLine", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("InvalidQuantity", func(t *testing.T) {
		repo := new(MockRepository)
		productRepo := new(MockProductRepository)

		_, err := NewService(repo, productRepo).AddLine(ctx, 1, 10, 0)
		assert.ErrorIs(t, err, ErrInvalidQuantity)
	})

	t.Run("ProductNotFound", func(t *testing.T) {
		repo := new(MockRepository)
		productRepo := new(MockProductRepository)

		productRepo.On("GetByID", ctx, uint(99)).Return(nil, nil)

		_, err := NewService(repo, productRepo).AddLine(ctx, 1, 99, 1)
		assert.ErrorIs(t, err, ErrProductNotFound)
	})

	t.Run("CartNotFound", func(t *testing.T) {
		repo := new(MockRepository)
		productRepo := new(MockProductRepository)

		productRepo.On("GetByID", ctx, uint(10)).Return(tomatoes, nil)
		repo.On("GetCartID", ctx, uint(2)).Return(uint(0), false, nil)

		_, err := NewService(repo, productRepo).AddLine(ctx, 2, 10, 1)
		assert.ErrorIs(t, err, ErrCartNotFound)
	})
}

func TestService_SetLineQuantity(t *testing.T) {
	ctx := context.Background()
	tomatoes := &product.Product{ID: 10, Name: "Tomatoes", Price: 5, Stock: 4}

	t.Run("UpdatesWithinStock", func(t *testing.T) {
		repo := new(MockRepository)
		productRepo := new(MockProductRepository)

		repo.On("GetCartID", ctx, uint(1)).Return(uint(7), true, nil)
		repo.On("GetLineByProduct", ctx, uint(7), uint(10)).
			Return(&CartLine{ID: 100, CartID: 7, ProductID: 10, Quantity: 1}, nil)
		productRepo.On("GetByID", ctx, uint(10)).Return(tomatoes, nil)
		repo.On("UpdateLineQuantity", ctx, uint(100), 4).
			Return(&CartLine{ID: 100, Quantity: 4}, nil)

		err := NewService(repo, productRepo).SetLineQuantity(ctx, 1, 10, 4)
		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("ExceedsStock", func(t *testing.T) {
		repo := new(MockRepository)
		productRepo := new(MockProductRepository)

		repo.On("GetCartID", ctx, uint(1)).Return(uint(7), true, nil)
		repo.On("GetLineByProduct", ctx, uint(7), uint(10)).
			Return(&CartLine{ID: 100, CartID: 7, ProductID: 10, Quantity: 1}, nil)
		productRepo.On("GetByID", ctx, uint(10)).Return(tomatoes, nil)

		err := NewService(repo, productRepo).SetLineQuantity(ctx, 1, 10, 5)
		assert.ErrorIs(t, err, ErrQuantityExceedsStock)
		repo.AssertNotCalled(t, "UpdateLineQuantity", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("ZeroQuantityRemovesLine", func(t *testing.T) {
		repo := new(MockRepository)
		productRepo := new(MockProductRepository)

		repo.On("GetCartID", ctx, uint(1)).Return(uint(7), true, nil)
		repo.On("GetLineByProduct", ctx, uint(7), uint(10)).
			Return(&CartLine{ID: 100, CartID: 7, ProductID: 10, Quantity: 1}, nil)
		repo.On("RemoveLine", ctx, uint(7), uint(10)).Return(nil)

		err := NewService(repo, productRepo).SetLineQuantity(ctx, 1, 10, 0)
		assert.NoError(t, err)
		repo.AssertCalled(t, "RemoveLine", ctx, uint(7), uint(10))
	})

	t.Run("LineNotFound", func(t *testing.T) {
		repo := new(MockRepository)
		productRepo := new(MockProductRepository)

		repo.On("GetCartID", ctx, uint(1)).Return(uint(7), true, nil)
		repo.On("GetLineByProduct", ctx, uint(7), uint(99)).Return(nil, nil)

		err := NewService(repo, productRepo).SetLineQuantity(ctx, 1, 99, 2)
		assert.ErrorIs(t, err, ErrLineNotFound)
	})
}

func TestService_RemoveLine(t *testing.T) {
	ctx := context.Background()

	t.Run("Idempotent", func(t *testing.T) {
		repo := new(MockRepository)
		productRepo := new(MockProductRepository)

		repo.On("GetCartID", ctx, uint(1)).Return(uint(7), true, nil)
		repo.On("RemoveLine", ctx, uint(7), uint(10)).Return(nil).Twice()

		svc := NewService(repo, productRepo)
		assert.NoError(t, svc.RemoveLine(ctx, 1, 10))
		assert.NoError(t, svc.RemoveLine(ctx, 1, 10))
	})

	t.Run("CartNotFound", func(t *testing.T) {
		repo := new(MockRepository)
		productRepo := new(MockProductRepository)

		repo.On("GetCartID", ctx, uint(2)).Return(uint(0), false, nil)

		err := NewService(repo, productRepo).RemoveLine(ctx, 2, 10)
		assert.ErrorIs(t, err, ErrCartNotFound)
	})
}

func TestService_ListLines(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := new(MockRepository)
		productRepo := new(MockProductRepository)

		repo.On("GetCartID", ctx, uint(1)).Return(uint(7), true, nil)
		repo.On("GetLines", ctx, uint(7)).Return([]CartLine{
			{ID: 100, CartID: 7, ProductID: 10, Quantity: 3},
		}, nil)

		lines, err := NewService(repo, productRepo).ListLines(ctx, 1)
		require.NoError(t, err)
		assert.Len(t, lines, 1)
	})

	t.Run("RepositoryError", func(t *testing.T) {
		repo := new(MockRepository)
		productRepo := new(MockProductRepository)

		repo.On("GetCartID", ctx, uint(1)).Return(uint(0), false, errors.New("db error"))

		_, err := NewService(repo, productRepo).ListLines(ctx, 1)
		assert.Error(t, err)
	})
}
