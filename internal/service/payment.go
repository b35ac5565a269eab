package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"techfest/internal/config"
	"techfest/internal/domain"
	"techfest/internal/gateway"
	"techfest/internal/repository"
)

// PaymentService sequences order creation and payment verification against
// the gateway. Each call is a single atomic attempt; retry policy belongs
// to the client re-issuing the same action.
type PaymentService struct {
	pricingService      *PricingService
	paymentRepo         repository.PaymentRepository
	ticketService       *TicketService
	gateway             gateway.Client
	razorpay            config.RazorpayConfig
	notificationService *NotificationService
}

// NewPaymentService creates a new PaymentService.
func NewPaymentService(
	pricingService *PricingService,
	paymentRepo repository.PaymentRepository,
	ticketService *TicketService,
	gw gateway.Client,
	razorpay config.RazorpayConfig,
	notificationService *NotificationService,
) *PaymentService {
	return &PaymentService{
		pricingService:      pricingService,
		paymentRepo:         paymentRepo,
		ticketService:       ticketService,
		gateway:             gw,
		razorpay:            razorpay,
		notificationService: notificationService,
	}
}

// CreateOrderRequest contains the parameters for creating a payment order.
type CreateOrderRequest struct {
	TeamID    string
	EventName string
}

// CreateOrderResponse contains the gateway order handle returned to the caller.
type CreateOrderResponse struct {
	OrderID  string
	Amount   int64
	Currency string
}

// CreateOrder resolves the team's price, opens a gateway order and persists
// a pending payment row before returning, so every remote order has a local
// record for reconciliation. Two concurrent calls for the same team may
// create two rows; that is accepted and reconciled operationally.
func (s *PaymentService) CreateOrder(ctx context.Context, req CreateOrderRequest) (*CreateOrderResponse, error) {
	if !s.razorpay.Configured() {
		return nil, ErrMissingCredentials
	}

	pricing, err := s.pricingService.Resolve(ctx, req.TeamID)
	if err != nil {
		return nil, err
	}

	order, err := s.gateway.CreateOrder(ctx, gateway.CreateOrderRequest{
		Amount:   pricing.Amount,
		Currency: s.razorpay.Currency,
		Receipt:  buildReceipt(req.TeamID, time.Now()),
		Notes: map[string]string{
			"team_id":    req.TeamID,
			"event_name": req.EventName,
		},
	})
	if err != nil {
		log.Printf("order creation failed for team %s: %v", req.TeamID, err)
		return nil, fmt.Errorf("%w: order creation", ErrGateway)
	}

	payment := &domain.Payment{
		ID:        uuid.New().String(),
		TeamID:    req.TeamID,
		Amount:    pricing.Amount,
		Status:    domain.PaymentStatusCreated,
		OrderRef:  order.ID,
		CreatedAt: time.Now(),
	}

	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		// The gateway order now exists with no local record. Not fatal to
		// the user, but it needs an operator's eye.
		log.Printf("ORPHANED gateway order %s for team %s: payment row insert failed: %v",
			order.ID, req.TeamID, err)
		return nil, fmt.Errorf("%w: payment record", ErrPersistence)
	}

	if s.notificationService != nil {
		_ = s.notificationService.NotifyOrderCreated(ctx, payment)
	}

	return &CreateOrderResponse{
		OrderID:  order.ID,
		Amount:   pricing.Amount,
		Currency: s.razorpay.Currency,
	}, nil
}

// VerifyPaymentRequest carries the signed callback triple relayed by the
// browser after checkout, plus the team it belongs to.
type VerifyPaymentRequest struct {
	TeamID    string
	OrderID   string
	PaymentID string
	Signature string
}

// VerifyPaymentResponse contains the issued ticket and settled payment.
type VerifyPaymentResponse struct {
	Ticket    *domain.Ticket
	Payment   *domain.Payment
	PaymentID string
	OrderID   string
	Amount    int64
}

// VerifyPayment runs signature check, capture confirmation and ticket
// issuance strictly in sequence, aborting at the first failure. The
// signature proves the callback is authentic; the gateway fetch proves the
// funds actually cleared. Both are required.
func (s *PaymentService) VerifyPayment(ctx context.Context, req VerifyPaymentRequest) (*VerifyPaymentResponse, error) {
	if !s.razorpay.Configured() {
		return nil, ErrMissingCredentials
	}

	if !VerifySignature(req.OrderID, req.PaymentID, req.Signature, s.razorpay.KeySecret) {
		// Potential tampering attempt; the signature itself is never logged.
		log.Printf("signature mismatch on verify-payment: team=%s order=%s payment=%s",
			req.TeamID, req.OrderID, req.PaymentID)
		return nil, ErrInvalidSignature
	}

	gatewayPayment, err := s.gateway.FetchPayment(ctx, req.PaymentID)
	if err != nil {
		log.Printf("payment fetch failed for %s: %v", req.PaymentID, err)
		return nil, fmt.Errorf("%w: payment fetch", ErrGateway)
	}

	if gatewayPayment.Status != gateway.PaymentStatusCaptured {
		if s.notificationService != nil {
			_ = s.notificationService.NotifyPaymentFailed(ctx, req.TeamID, req.OrderID, gatewayPayment.Status)
		}
		return nil, fmt.Errorf("%w: gateway status %q", ErrPaymentNotCaptured, gatewayPayment.Status)
	}

	issued, err := s.ticketService.Issue(ctx, req.TeamID, req.OrderID, req.PaymentID)
	if err != nil {
		return nil, err
	}

	if s.notificationService != nil {
		_ = s.notificationService.NotifyPaymentCaptured(ctx, issued.Payment)
	}

	return &VerifyPaymentResponse{
		Ticket:    issued.Ticket,
		Payment:   issued.Payment,
		PaymentID: req.PaymentID,
		OrderID:   req.OrderID,
		Amount:    gatewayPayment.Amount,
	}, nil
}

// buildReceipt derives a gateway receipt identifier from the team id and
// the current time. Razorpay caps receipts at 40 characters, so only the
// team id suffix goes in; collisions are practically avoided, not
// globally impossible.
func buildReceipt(teamID string, now time.Time) string {
	suffix := strings.ReplaceAll(teamID, "-", "")
	if len(suffix) > 8 {
		suffix = suffix[len(suffix)-8:]
	}
	return fmt.Sprintf("team_%s_%d", suffix, now.Unix())
}
