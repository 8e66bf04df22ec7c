package order

import (
	"context"
	"time"

	"farmtotable-be/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	PlaceOrder(ctx context.Context, userID uint, email string) ([]OrderLine, error)
	UpdateStatus(ctx context.Context, transactionID string, status Status) (*OrderLine, error)
	RemoveOrder(ctx context.Context, transactionID string) error
	ListOrders(ctx context.Context, emailFilter string) ([]OrderLine, error)
}

type service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) Service {
	return &service{repo: repo, now: time.Now}
}

// PlaceOrder converts the user's cart into immutable order lines. Each
// resolvable cart line becomes one order line with a fresh transaction id
// and a snapshot of the product's name and price. Lines whose product can
// no longer be resolved are skipped. The repository persists the lines,
// decrements stock and clears the converted cart lines in one transaction.
func (s *service) PlaceOrder(ctx context.Context, userID uint, email string) ([]OrderLine, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "PlaceOrder"),
		zap.Uint("user_id", userID),
	)

	snapshot, err := s.repo.GetCartSnapshot(ctx, userID)
	if err != nil {
		log.Error("failed to read cart snapshot", zap.Error(err))
		return nil, err
	}
	if len(snapshot) == 0 {
		return nil, ErrCartEmpty
	}

	orderedAt := s.now()

	lines := make([]OrderLine, 0, len(snapshot))
	for _, item := range snapshot {
		if item.ProductName == nil || item.Price == nil {
			log.Warn("skipping unresolvable cart line",
				zap.Uint("product_id", item.ProductID),
			)
			continue
		}

		lines = append(lines, OrderLine{
			TransactionID: uuid.NewString(),
			ProductID:     item.ProductID,
			ProductName:   *item.ProductName,
			Quantity:      item.Quantity,
			Total:         *item.Price * float64(item.Quantity),
			Email:         email,
			Status:        StatusPending,
			OrderedAt:     orderedAt,
		})
	}

	if len(lines) == 0 {
		return nil, ErrCartEmpty
	}

	if err := s.repo.SaveOrderLines(ctx, userID, lines); err != nil {
		return nil, err
	}

	log.Info("order placed",
		zap.Int("line_count", len(lines)),
		zap.Int("skipped", len(snapshot)-len(lines)),
	)

	return lines, nil
}

// UpdateStatus moves an order along the workflow. Only the forward edges
// pending->confirmed, pending->cancelled and confirmed->delivered are
// allowed.
func (s *service) UpdateStatus(ctx context.Context, transactionID string, status Status) (*OrderLine, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	line, err := s.repo.GetByTransactionID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if line == nil {
		return nil, ErrOrderNotFound
	}

	if !CanTransition(line.Status, status) {
		return nil, ErrInvalidTransition
	}

	return s.repo.UpdateStatus(ctx, transactionID, status)
}

func (s *service) RemoveOrder(ctx context.Context, transactionID string) error {
	return s.repo.Delete(ctx, transactionID)
}

func (s *service) ListOrders(ctx context.Context, emailFilter string) ([]OrderLine, error) {
	return s.repo.GetAll(ctx, emailFilter)
}
