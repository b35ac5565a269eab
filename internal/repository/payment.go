package repository

import (
	"context"

	"techfest/internal/domain"
)

// PaymentRepository defines the persistence operations for payments.
type PaymentRepository interface {
	// Create persists a new payment.
	Create(ctx context.Context, payment *domain.Payment) error

	// GetByID retrieves a payment by ID.
	GetByID(ctx context.Context, id string) (*domain.Payment, error)

	// GetByOrderRef retrieves a payment by its gateway order reference.
	GetByOrderRef(ctx context.Context, orderRef string) (*domain.Payment, error)

	// MarkPaid transitions a payment to paid, recording the gateway
	// payment reference.
	MarkPaid(ctx context.Context, id string, paymentRef string) error
}
