package noop

import (
	"context"
	"log"

	"feedesk/internal/domain"
	"feedesk/internal/port"
)

type noopSender struct{}

// NewNoopSender creates a no-op EmailSender that logs notifications to stdout.
func NewNoopSender() port.EmailSender {
	return &noopSender{}
}

func (s *noopSender) SendPaymentReceipt(_ context.Context, toEmail, toName string, bill *domain.FeeBill, payment *domain.Payment) error {
	log.Printf("[NOOP EMAIL] Payment receipt for %s (%s): bill %s, amount %d, balance %d",
		toName, toEmail, bill.ID, payment.Amount, bill.BalanceAmount)
	return nil
}

func (s *noopSender) SendOverdueReminder(_ context.Context, toEmail, toName string, bill *domain.FeeBill) error {
	log.Printf("[NOOP EMAIL] Overdue reminder for %s (%s): bill %s, balance %d, due %s",
		toName, toEmail, bill.ID, bill.BalanceAmount, bill.DueDate.Format("2006-01-02"))
	return nil
}
