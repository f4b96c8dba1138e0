package port

import (
	"context"

	"github.com/google/uuid"

	"feedesk/internal/domain"
)

// PaymentRepository persists payments against fee bills.
type PaymentRepository interface {
	// Record inserts the payment and writes the bill's updated payment
	// fields in a single transaction. The bill argument carries the
	// already-recomputed paid/balance/status values.
	Record(ctx context.Context, payment *domain.Payment, bill *domain.FeeBill) error
	ListByBill(ctx context.Context, billID uuid.UUID) ([]domain.Payment, error)
}
