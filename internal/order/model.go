package order

import "time"

// Status enumerates the order workflow. Values are wire-stable.
type Status int

const (
	StatusPending   Status = 0
	StatusConfirmed Status = 1
	StatusDelivered Status = 2
	StatusCancelled Status = 3
)

func (s Status) Valid() bool {
	return s >= StatusPending && s <= StatusCancelled
}

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusConfirmed:
		return "confirmed"
	case StatusDelivered:
		return "delivered"
	case StatusCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// allowedTransitions holds the forward edges of the status workflow.
// States are never re-entered once left.
var allowedTransitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusDelivered},
}

func CanTransition(from, to Status) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// OrderLine is an immutable purchase record created at checkout time.
// Only Status ever changes after insertion.
type OrderLine struct {
	ID            uint      `json:"id"`
	TransactionID string    `json:"transaction_id"`
	ProductID     uint      `json:"product_id"`
	ProductName   string    `json:"product_name"`
	Quantity      int       `json:"quantity"`
	Total         float64   `json:"total"`
	Email         string    `json:"email"`
	Status        Status    `json:"status"`
	OrderedAt     time.Time `json:"ordered_at"`
}

// SnapshotLine is one cart line as seen at placement time. Product fields
// are nil when the referenced product can no longer be resolved.
type SnapshotLine struct {
	ProductID   uint
	Quantity    int
	ProductName *string
	Price       *float64
}
