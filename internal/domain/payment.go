package domain

import "time"

// PaymentStatus represents the current status of a payment.
type PaymentStatus string

const (
	PaymentStatusCreated PaymentStatus = "created"
	PaymentStatusUnpaid  PaymentStatus = "unpaid"
	PaymentStatusPaid    PaymentStatus = "paid"
)

// Payment is one monetary transaction attempt for a team.
// Amount is in paise (smallest currency unit) and is immutable once the
// row is created. At most one paid payment exists per team.
type Payment struct {
	ID         string
	TeamID     string
	Amount     int64 // paise
	Status     PaymentStatus
	OrderRef   string // gateway order id, set at creation
	PaymentRef string // gateway payment id, empty until captured
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
