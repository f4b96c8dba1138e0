package port

import (
	"context"

	"feedesk/internal/domain"
)

// EmailSender delivers billing notifications to guardians.
type EmailSender interface {
	SendPaymentReceipt(ctx context.Context, toEmail, toName string, bill *domain.FeeBill, payment *domain.Payment) error
	SendOverdueReminder(ctx context.Context, toEmail, toName string, bill *domain.FeeBill) error
}
