package postgres

import (
	"context"
	"database/sql"
	"errors"

	"techfest/internal/domain"
	"techfest/internal/repository"
)

// PaymentRepository is a PostgreSQL implementation of repository.PaymentRepository.
type PaymentRepository struct {
	q Querier
}

// NewPaymentRepository creates a new PostgreSQL payment repository.
func NewPaymentRepository(db *sql.DB) *PaymentRepository {
	return &PaymentRepository{q: db}
}

// NewPaymentRepositoryWithTx creates a payment repository using a transaction.
func NewPaymentRepositoryWithTx(tx *sql.Tx) *PaymentRepository {
	return &PaymentRepository{q: tx}
}

// Create persists a new payment.
func (r *PaymentRepository) Create(ctx context.Context, payment *domain.Payment) error {
	query := `
		INSERT INTO payments (id, team_id, amount, status, order_ref, payment_ref)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''))
	`

	_, err := r.q.ExecContext(ctx, query,
		payment.ID,
		payment.TeamID,
		payment.Amount,
		payment.Status,
		payment.OrderRef,
		payment.PaymentRef,
	)

	return err
}

// GetByID retrieves a payment by ID.
func (r *PaymentRepository) GetByID(ctx context.Context, id string) (*domain.Payment, error) {
	query := `
		SELECT id, team_id, amount, status, order_ref, COALESCE(payment_ref, ''), created_at, updated_at
		FROM payments WHERE id = $1
	`

	return r.scanOne(r.q.QueryRowContext(ctx, query, id))
}

// GetByOrderRef retrieves a payment by its gateway order reference.
func (r *PaymentRepository) GetByOrderRef(ctx context.Context, orderRef string) (*domain.Payment, error) {
	query := `
		SELECT id, team_id, amount, status, order_ref, COALESCE(payment_ref, ''), created_at, updated_at
		FROM payments WHERE order_ref = $1
	`

	return r.scanOne(r.q.QueryRowContext(ctx, query, orderRef))
}

// MarkPaid transitions a payment to paid, recording the gateway payment
// reference. Re-running for an already-paid row rewrites the same values,
// so the update is idempotent at the SQL level.
func (r *PaymentRepository) MarkPaid(ctx context.Context, id string, paymentRef string) error {
	query := `
		UPDATE payments SET status = $1, payment_ref = $2, updated_at = NOW()
		WHERE id = $3
	`

	result, err := r.q.ExecContext(ctx, query, domain.PaymentStatusPaid, paymentRef, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

func (r *PaymentRepository) scanOne(row *sql.Row) (*domain.Payment, error) {
	var payment domain.Payment
	err := row.Scan(
		&payment.ID,
		&payment.TeamID,
		&payment.Amount,
		&payment.Status,
		&payment.OrderRef,
		&payment.PaymentRef,
		&payment.CreatedAt,
		&payment.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return &payment, nil
}
