package domain

// FeeItemType distinguishes charges that repeat from charges billed once.
type FeeItemType string

const (
	FeeTypeRecurring FeeItemType = "recurring"
	FeeTypeOneTime   FeeItemType = "one_time"
)

// FeeFrequency is how often a recurring charge repeats.
type FeeFrequency string

const (
	FrequencyMonthly   FeeFrequency = "monthly"
	FrequencyQuarterly FeeFrequency = "quarterly"
	FrequencyYearly    FeeFrequency = "yearly"
)

// DefaultFrequency is assumed for recurring items that carry no frequency.
const DefaultFrequency = FrequencyMonthly

// ValidFrequencies maps accepted frequency values.
var ValidFrequencies = map[FeeFrequency]bool{
	FrequencyMonthly:   true,
	FrequencyQuarterly: true,
	FrequencyYearly:    true,
}

// BillStatus is the payment lifecycle state of a fee bill.
type BillStatus string

const (
	BillStatusPending BillStatus = "pending"
	BillStatusPartial BillStatus = "partial"
	BillStatusOverdue BillStatus = "overdue"
	BillStatusPaid    BillStatus = "paid"
)

// StructureStatus marks whether a fee structure is currently in use.
type StructureStatus string

const (
	StructureActive   StructureStatus = "active"
	StructureInactive StructureStatus = "inactive"
)

// PaymentMethod is how a payment was collected.
type PaymentMethod string

const (
	PaymentMethodCash     PaymentMethod = "cash"
	PaymentMethodCard     PaymentMethod = "card"
	PaymentMethodTransfer PaymentMethod = "bank_transfer"
	PaymentMethodOnline   PaymentMethod = "online"
)

// AllowedPaymentMethods maps accepted payment method values.
var AllowedPaymentMethods = map[PaymentMethod]bool{
	PaymentMethodCash:     true,
	PaymentMethodCard:     true,
	PaymentMethodTransfer: true,
	PaymentMethodOnline:   true,
}

// UserRole defines the role hierarchy for back-office users.
type UserRole string

const (
	RoleAdmin      UserRole = "admin"
	RoleAccountant UserRole = "accountant"
	RoleViewer     UserRole = "viewer"
)
