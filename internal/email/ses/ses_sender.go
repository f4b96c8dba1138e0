package ses

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"feedesk/internal/domain"
	"feedesk/internal/port"
)

type sesSender struct {
	client      *sesv2.Client
	fromAddress string
	fromName    string
	schoolName  string
}

// NewSESSender creates a new SES-backed EmailSender.
func NewSESSender(region, fromAddress, fromName, schoolName string) (port.EmailSender, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("loading AWS config for SES: %w", err)
	}
	client := sesv2.NewFromConfig(cfg)
	return &sesSender{
		client:      client,
		fromAddress: fromAddress,
		fromName:    fromName,
		schoolName:  schoolName,
	}, nil
}

func (s *sesSender) send(ctx context.Context, toEmail, subject, htmlBody, textBody string) error {
	from := fmt.Sprintf("%s <%s>", s.fromName, s.fromAddress)

	_, err := s.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: &from,
		Destination: &types.Destination{
			ToAddresses: []string{toEmail},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: &subject},
				Body: &types.Body{
					Html: &types.Content{Data: &htmlBody},
					Text: &types.Content{Data: &textBody},
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("SES SendEmail: %w", err)
	}
	return nil
}

func (s *sesSender) SendPaymentReceipt(ctx context.Context, toEmail, toName string, bill *domain.FeeBill, payment *domain.Payment) error {
	subject := fmt.Sprintf("Payment received for %s", bill.StudentName)
	htmlBody := buildReceiptHTML(s.schoolName, toName, bill, payment)
	textBody := fmt.Sprintf(
		"Dear %s,\n\nWe have received a payment of %s towards the fees of %s (%s).\n\nTotal: %s\nPaid so far: %s\nBalance: %s\n\n%s",
		toName, formatMoney(payment.Amount), bill.StudentName, bill.ClassName,
		formatMoney(bill.TotalAmount), formatMoney(bill.PaidAmount), formatMoney(bill.BalanceAmount),
		s.schoolName,
	)
	return s.send(ctx, toEmail, subject, htmlBody, textBody)
}

func (s *sesSender) SendOverdueReminder(ctx context.Context, toEmail, toName string, bill *domain.FeeBill) error {
	subject := fmt.Sprintf("Fee payment reminder for %s", bill.StudentName)
	htmlBody := buildReminderHTML(s.schoolName, toName, bill)
	textBody := fmt.Sprintf(
		"Dear %s,\n\nThe fee bill for %s (%s) is past its due date of %s.\n\nOutstanding balance: %s\n\nPlease arrange payment at your earliest convenience.\n\n%s",
		toName, bill.StudentName, bill.ClassName, bill.DueDate.Format("02 Jan 2006"),
		formatMoney(bill.BalanceAmount), s.schoolName,
	)
	return s.send(ctx, toEmail, subject, htmlBody, textBody)
}

func buildReceiptHTML(schoolName, name string, bill *domain.FeeBill, payment *domain.Payment) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h2 style="color: #333;">Payment received</h2>
  <p>Dear %s,</p>
  <p>We have received a payment of <strong>%s</strong> towards the fees of %s (%s).</p>
  <table style="border-collapse: collapse; margin: 20px 0;">
    <tr><td style="padding: 4px 12px 4px 0; color: #666;">Total</td><td>%s</td></tr>
    <tr><td style="padding: 4px 12px 4px 0; color: #666;">Paid so far</td><td>%s</td></tr>
    <tr><td style="padding: 4px 12px 4px 0; color: #666;">Balance</td><td><strong>%s</strong></td></tr>
  </table>
  <p style="color: #999; font-size: 12px;">Payment reference: %s</p>
  <hr style="border: none; border-top: 1px solid #eee; margin: 20px 0;">
  <p style="color: #999; font-size: 12px;">%s</p>
</body>
</html>`,
		name, formatMoney(payment.Amount), bill.StudentName, bill.ClassName,
		formatMoney(bill.TotalAmount), formatMoney(bill.PaidAmount), formatMoney(bill.BalanceAmount),
		payment.ID, schoolName)
}

func buildReminderHTML(schoolName, name string, bill *domain.FeeBill) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h2 style="color: #333;">Fee payment reminder</h2>
  <p>Dear %s,</p>
  <p>The fee bill for %s (%s) is past its due date of <strong>%s</strong>.</p>
  <p>Outstanding balance: <strong>%s</strong></p>
  <p>Please arrange payment at your earliest convenience.</p>
  <hr style="border: none; border-top: 1px solid #eee; margin: 20px 0;">
  <p style="color: #999; font-size: 12px;">%s</p>
</body>
</html>`,
		name, bill.StudentName, bill.ClassName, bill.DueDate.Format("02 Jan 2006"),
		formatMoney(bill.BalanceAmount), schoolName)
}

// formatMoney renders a minor-unit amount as a rupee string.
func formatMoney(minor int64) string {
	sign := ""
	if minor < 0 {
		sign = "-"
		minor = -minor
	}
	return fmt.Sprintf("%sRs %d.%02d", sign, minor/100, minor%100)
}
