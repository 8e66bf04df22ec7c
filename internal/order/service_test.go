package order

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockRepository is a mock implementation of the Repository interface
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetCartSnapshot(ctx context.Context, userID uint) ([]SnapshotLine, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]SnapshotLine), args.Error(1)
}

func (m *MockRepository) SaveOrderLines(ctx context.Context, userID uint, lines []OrderLine) error {
	args := m.Called(ctx, userID, lines)
	return args.Error(0)
}

func (m *MockRepository) GetByTransactionID(ctx context.Context, transactionID string) (*OrderLine, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*OrderLine), args.Error(1)
}

func (m *MockRepository) UpdateStatus(ctx context.Context, transactionID string, status Status) (*OrderLine, error) {
	args := m.Called(ctx, transactionID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*OrderLine), args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, transactionID string) error {
	args := m.Called(ctx, transactionID)
	return args.Error(0)
}

func (m *MockRepository) GetAll(ctx context.Context, emailFilter string) ([]OrderLine, error) {
	args := m.Called(ctx, emailFilter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]OrderLine), args.Error(1)
}

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }

func TestService_PlaceOrder(t *testing.T) {
	ctx := context.Background()
	placedAt := time.Date(2024, time.May, 8, 10, 0, 0, 0, time.UTC)

	newService := func(repo Repository) *service {
		return &service{repo: repo, now: func() time.Time { return placedAt }}
	}

	t.Run("EmptyCart", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("GetCartSnapshot", ctx, uint(1)).Return([]SnapshotLine{}, nil)

		_, err := newService(repo).PlaceOrder(ctx, 1, "a@b.com")
		assert.ErrorIs(t, err, ErrCartEmpty)
		repo.AssertNotCalled(t, "SaveOrderLines", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Success", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("GetCartSnapshot", ctx, uint(1)).Return([]SnapshotLine{
			{ProductID: 10, Quantity: 3, ProductName: strPtr("Tomatoes"), Price: floatPtr(5)},
			{ProductID: 20, Quantity: 2, ProductName: strPtr("Eggs"), Price: floatPtr(8)},
		}, nil)
		repo.On("SaveOrderLines", ctx, uint(1), mock.Anything).Return(nil)

		lines, err := newService(repo).PlaceOrder(ctx, 1, "a@b.com")
		require.NoError(t, err)
		require.Len(t, lines, 2)

		assert.Equal(t, uint(10), lines[0].ProductID)
		assert.Equal(t, "Tomatoes", lines[0].ProductName)
		assert.Equal(t, 15.0, lines[0].Total)
		assert.Equal(t, 16.0, lines[1].Total)

		for _, line := range lines {
			assert.Equal(t, StatusPending, line.Status)
			assert.Equal(t, "a@b.com", line.Email)
			assert.Equal(t, placedAt, line.OrderedAt)
			assert.NotEmpty(t, line.TransactionID)
		}
		assert.NotEqual(t, lines[0].TransactionID, lines[1].TransactionID)

		repo.AssertExpectations(t)
	})

	t.Run("SkipsUnresolvableLines", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("GetCartSnapshot", ctx, uint(1)).Return([]SnapshotLine{
			{ProductID: 10, Quantity: 3, ProductName: strPtr("Tomatoes"), Price: floatPtr(5)},
			{ProductID: 99, Quantity: 1}, // product deleted since adding
		}, nil)
		repo.On("SaveOrderLines", ctx, uint(1), mock.MatchedBy(func(lines []OrderLine) bool {
			return len(lines) == 1 && lines[0].ProductID == 10
		})).Return(nil)

		lines, err := newService(repo).PlaceOrder(ctx, 1, "a@b.com")
		require.NoError(t, err)
		assert.Len(t, lines, 1)
		repo.AssertExpectations(t)
	})

	t.Run("AllLinesUnresolvable", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("GetCartSnapshot", ctx, uint(1)).Return([]SnapshotLine{
			{ProductID: 99, Quantity: 1},
		}, nil)

		_, err := newService(repo).PlaceOrder(ctx, 1, "a@b.com")
		assert.ErrorIs(t, err, ErrCartEmpty)
	})

	t.Run("RepositoryError", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("GetCartSnapshot", ctx, uint(1)).Return(nil, errors.New("db error"))

		_, err := newService(repo).PlaceOrder(ctx, 1, "a@b.com")
		assert.Error(t, err)
	})
}

func TestService_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("NotFound", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("GetByTransactionID", ctx, "tx-1").Return(nil, nil)

		_, err := NewService(repo).UpdateStatus(ctx, "tx-1", StatusConfirmed)
		assert.ErrorIs(t, err, ErrOrderNotFound)
	})

	t.Run("InvalidStatusValue", func(t *testing.T) {
		repo := new(MockRepository)

		_, err := NewService(repo).UpdateStatus(ctx, "tx-1", Status(7))
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})

	t.Run("ForwardTransition", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("GetByTransactionID", ctx, "tx-1").
			Return(&OrderLine{TransactionID: "tx-1", Status: StatusPending}, nil)
		repo.On("UpdateStatus", ctx, "tx-1", StatusConfirmed).
			Return(&OrderLine{TransactionID: "tx-1", Status: StatusConfirmed}, nil)

		line, err := NewService(repo).UpdateStatus(ctx, "tx-1", StatusConfirmed)
		require.NoError(t, err)
		assert.Equal(t, StatusConfirmed, line.Status)
	})

	t.Run("BackwardTransitionDenied", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("GetByTransactionID", ctx, "tx-1").
			Return(&OrderLine{TransactionID: "tx-1", Status: StatusDelivered}, nil)

		_, err := NewService(repo).UpdateStatus(ctx, "tx-1", StatusPending)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("CancelledIsTerminal", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("GetByTransactionID", ctx, "tx-1").
			Return(&OrderLine{TransactionID: "tx-1", Status: StatusCancelled}, nil)

		_, err := NewService(repo).UpdateStatus(ctx, "tx-1", StatusConfirmed)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})
}

func TestCanTransition(t *testing.T) {
	allowed := [][2]Status{
		{StatusPending, StatusConfirmed},
		{StatusPending, StatusCancelled},
		{StatusConfirmed, StatusDelivered},
	}

	for _, pair := range allowed {
		assert.True(t, CanTransition(pair[0], pair[1]),
			"%s -> %s should be allowed", pair[0], pair[1])
	}

	denied := [][2]Status{
		{StatusConfirmed, StatusPending},
		{StatusDelivered, StatusPending},
		{StatusDelivered, StatusConfirmed},
		{StatusCancelled, StatusPending},
		{StatusPending, StatusDelivered},
		{StatusPending, StatusPending},
	}

	for _, pair := range denied {
		assert.False(t, CanTransition(pair[0], pair[1]),
			"%s -> %s should be denied", pair[0], pair[1])
	}
}

func TestService_ListOrders(t *testing.T) {
	ctx := context.Background()

	repo := new(MockRepository)
	repo.On("GetAll", ctx, "a@b.com").Return([]OrderLine{
		{TransactionID: "tx-1", Email: "a@b.com"},
	}, nil)

	lines, err := NewService(repo).ListOrders(ctx, "a@b.com")
	require.NoError(t, err)
	assert.Len(t, lines, 1)
}

func TestService_RemoveOrder(t *testing.T) {
	ctx := context.Background()

	repo := new(MockRepository)
	repo.On("Delete", ctx, "tx-1").Return(nil).Twice()

	svc := NewService(repo)
	assert.NoError(t, svc.RemoveOrder(ctx, "tx-1"))
	// Removing again is not an error.
	assert.NoError(t, svc.RemoveOrder(ctx, "tx-1"))
}
