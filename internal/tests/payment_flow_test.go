package tests

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"techfest/internal/config"
	"techfest/internal/domain"
	"techfest/internal/service"
)

const testKeySecret = "test_secret"

type paymentFixture struct {
	paymentService *service.PaymentService
	ticketService  *service.TicketService
	teamRepo       *MockTeamRepository
	eventRepo      *MockEventRepository
	paymentRepo    *MockPaymentRepository
	ticketRepo     *MockTicketRepository
	gateway        *MockGateway
}

func newPaymentFixture() *paymentFixture {
	teamRepo := NewMockTeamRepository()
	eventRepo := NewMockEventRepository()
	paymentRepo := NewMockPaymentRepository()
	ticketRepo := NewMockTicketRepository()
	gw := NewMockGateway()

	eventRepo.AddEvent(&domain.Event{
		ID:           "event-1",
		Name:         "Robo Wars",
		PricePerHead: 200,
		MaxTeamSize:  6,
	})
	teamRepo.AddTeam(&domain.Team{
		ID:       "team-1",
		EventID:  "event-1",
		TeamName: "Circuit Breakers",
		TeamSize: 3,
	})

	pricing := service.NewPricingService(teamRepo, eventRepo)
	tickets := service.NewTicketService(paymentRepo, ticketRepo, nil)
	payments := service.NewPaymentService(pricing, paymentRepo, tickets, gw, config.RazorpayConfig{
		KeyID:     "rzp_test_key",
		KeySecret: testKeySecret,
		Currency:  "INR",
	}, nil)

	return &paymentFixture{
		paymentService: payments,
		ticketService:  tickets,
		teamRepo:       teamRepo,
		eventRepo:      eventRepo,
		paymentRepo:    paymentRepo,
		ticketRepo:     ticketRepo,
		gateway:        gw,
	}
}

// createOrder runs create-order for team-1 and returns the order id.
func (f *paymentFixture) createOrder(t *testing.T) string {
	t.Helper()
	result, err := f.paymentService.CreateOrder(context.Background(), service.CreateOrderRequest{
		TeamID:    "team-1",
		EventName: "Robo Wars",
	})
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	return result.OrderID
}

// verifyRequest builds a genuinely signed verify-payment request.
func verifyRequest(orderID, paymentID string) service.VerifyPaymentRequest {
	return service.VerifyPaymentRequest{
		TeamID:    "team-1",
		OrderID:   orderID,
		PaymentID: paymentID,
		Signature: sign(orderID, paymentID, testKeySecret),
	}
}

// ──────────────────────────────────────────────
// CREATE ORDER
// ──────────────────────────────────────────────

func TestCreateOrder_ReturnsOrderHandleWithComputedAmount(t *testing.T) {
	t.Parallel()

	f := newPaymentFixture()

	result, err := f.paymentService.CreateOrder(context.Background(), service.CreateOrderRequest{
		TeamID:    "team-1",
		EventName: "Robo Wars",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.OrderID == "" {
		t.Error("expected a non-empty order id")
	}
	if result.Amount != 60000 {
		t.Errorf("expected amount 60000 paise, got %d", result.Amount)
	}
	if result.Currency != "INR" {
		t.Errorf("expected currency INR, got %s", result.Currency)
	}
}

func TestCreateOrder_PersistsPendingPaymentBeforeReturning(t *testing.T) {
	t.Parallel()

	f := newPaymentFixture()
	orderID := f.createOrder(t)

	payment, err := f.paymentRepo.GetByOrderRef(context.Background(), orderID)
	if err != nil {
		t.Fatalf("no payment row for gateway order %s: %v", orderID, err)
	}
	if payment.Status != domain.PaymentStatusCreated {
		t.Errorf("expected status created, got %s", payment.Status)
	}
	if payment.Amount != 60000 {
		t.Errorf("expected amount 60000, got %d", payment.Amount)
	}
	if payment.TeamID != "team-1" {
		t.Errorf("expected team-1, got %s", payment.TeamID)
	}
}

func TestCreateOrder_ReceiptStaysWithinGatewayLimit(t *testing.T) {
	t.Parallel()

	f := newPaymentFixture()
	orderID := f.createOrder(t)

	order := f.gateway.GetOrder(orderID)
	if order == nil {
		t.Fatal("order not recorded by gateway")
	}
	if order.Receipt == "" {
		t.Error("expected a receipt")
	}
	if len(order.Receipt) > 40 {
		t.Errorf("receipt %q exceeds 40 characters", order.Receipt)
	}
	if !strings.HasPrefix(order.Receipt, "team_") {
		t.Errorf("receipt %q missing team prefix", order.Receipt)
	}
}

func TestCreateOrder_GatewayFailureLeavesNoPaymentRow(t *testing.T) {
	t.Parallel()

	f := newPaymentFixture()
	f.gateway.CreateOrderError = errors.New("connection refused")

	_, err := f.paymentService.CreateOrder(context.Background(), service.CreateOrderRequest{TeamID: "team-1"})
	if !errors.Is(err, service.ErrGateway) {
		t.Errorf("expected ErrGateway, got %v", err)
	}
	if f.paymentRepo.CountPayments() != 0 {
		t.Error("payment row created despite gateway failure")
	}
}

func TestCreateOrder_PersistenceFailureAfterGatewaySuccess(t *testing.T) {
	t.Parallel()

	f := newPaymentFixture()
	f.paymentRepo.CreateError = errors.New("connection reset")

	_, err := f.paymentService.CreateOrder(context.Background(), service.CreateOrderRequest{TeamID: "team-1"})
	if !errors.Is(err, service.ErrPersistence) {
		t.Errorf("expected ErrPersistence, got %v", err)
	}
	// The remote order was still created; that orphan is logged, not hidden.
	if atomic.LoadInt32(&f.gateway.CreateOrderCallCount) != 1 {
		t.Error("expected the gateway order to have been created")
	}
}

func TestCreateOrder_MissingCredentialsFailBeforeAnyIO(t *testing.T) {
	t.Parallel()

	f := newPaymentFixture()
	pricing := service.NewPricingService(f.teamRepo, f.eventRepo)
	unconfigured := service.NewPaymentService(pricing, f.paymentRepo, f.ticketService, f.gateway, config.RazorpayConfig{Currency: "INR"}, nil)

	_, err := unconfigured.CreateOrder(context.Background(), service.CreateOrderRequest{TeamID: "team-1"})
	if !errors.Is(err, service.ErrMissingCredentials) {
		t.Errorf("expected ErrMissingCredentials, got %v", err)
	}
	if atomic.LoadInt32(&f.gateway.CreateOrderCallCount) != 0 {
		t.Error("gateway called despite missing credentials")
	}
}

func TestCreateOrder_DuplicateCallsCreateDistinctOrders(t *testing.T) {
	t.Parallel()

	f := newPaymentFixture()
	first := f.createOrder(t)
	second := f.createOrder(t)

	if first == second {
		t.Error("expected two distinct gateway orders")
	}
	if f.paymentRepo.CountPayments() != 2 {
		t.Errorf("expected 2 payment rows, got %d", f.paymentRepo.CountPayments())
	}
}

// ──────────────────────────────────────────────
// VERIFY PAYMENT
// ──────────────────────────────────────────────

func TestVerifyPayment_InvalidSignatureShortCircuits(t *testing.T) {
	t.Parallel()

	f := newPaymentFixture()
	orderID := f.createOrder(t)

	req := verifyRequest(orderID, "pay_001")
	req.Signature = "deadbeef" + req.Signature[8:]

	_, err := f.paymentService.VerifyPayment(context.Background(), req)
	if !errors.Is(err, service.ErrInvalidSignature) {
		t.Fatalf("expected ErrInvalidSignature, got %v", err)
	}

	// Neither the capture check nor the ticket issuer may run.
	if atomic.LoadInt32(&f.gateway.FetchPaymentCallCount) != 0 {
		t.Error("capture confirmation ran after signature failure")
	}
	if atomic.LoadInt32(&f.paymentRepo.MarkPaidCallCount) != 0 {
		t.Error("payment mutated after signature failure")
	}
	if atomic.LoadInt32(&f.ticketRepo.UpsertCallCount) != 0 {
		t.Error("ticket issued after signature failure")
	}
}

func TestVerifyPayment_AuthorizedIsNotCaptured(t *testing.T) {
	t.Parallel()

	// Scenario: signature is genuine but funds were only authorized.
	f := newPaymentFixture()
	orderID := f.createOrder(t)
	f.gateway.PaymentStatus = "authorized"

	_, err := f.paymentService.VerifyPayment(context.Background(), verifyRequest(orderID, "pay_001"))
	if !errors.Is(err, service.ErrPaymentNotCaptured) {
		t.Fatalf("expected ErrPaymentNotCaptured, got %v", err)
	}
	if !strings.Contains(err.Error(), "authorized") {
		t.Errorf("error should carry the gateway status, got %q", err.Error())
	}

	payment, _ := f.paymentRepo.GetByOrderRef(context.Background(), orderID)
	if payment.Status != domain.PaymentStatusCreated {
		t.Errorf("payment mutated, status %s", payment.Status)
	}
	if f.ticketRepo.CountTickets() != 0 {
		t.Error("ticket issued for uncaptured payment")
	}
}

func TestVerifyPayment_TeamMismatchDoesNotIssueTicket(t *testing.T) {
	t.Parallel()

	// A genuinely signed callback for team-1's order must not mint a
	// ticket for a different team.
	f := newPaymentFixture()
	f.teamRepo.AddTeam(&domain.Team{
		ID:       "team-2",
		EventID:  "event-1",
		TeamName: "Freeloaders",
		TeamSize: 2,
	})
	orderID := f.createOrder(t)

	req := verifyRequest(orderID, "pay_001")
	req.TeamID = "team-2"

	_, err := f.paymentService.VerifyPayment(context.Background(), req)
	if !errors.Is(err, service.ErrPaymentRecordNotFound) {
		t.Fatalf("expected ErrPaymentRecordNotFound, got %v", err)
	}
	if f.ticketRepo.CountTickets() != 0 {
		t.Error("ticket issued to a team that never paid")
	}

	payment, _ := f.paymentRepo.GetByOrderRef(context.Background(), orderID)
	if payment.Status != domain.PaymentStatusCreated {
		t.Errorf("payment mutated, status %s", payment.Status)
	}
}

func TestVerifyPayment_NoPaymentRecordForOrder(t *testing.T) {
	t.Parallel()

	// Scenario: captured at the gateway but no local row matches the order.
	f := newPaymentFixture()

	orderID := "order_never_created_locally"
	_, err := f.paymentService.VerifyPayment(context.Background(), verifyRequest(orderID, "pay_001"))
	if !errors.Is(err, service.ErrPaymentRecordNotFound) {
		t.Fatalf("expected ErrPaymentRecordNotFound, got %v", err)
	}
	if f.ticketRepo.CountTickets() != 0 {
		t.Error("ticket issued without a payment record")
	}
}

func TestVerifyPayment_HappyPathIssuesTicket(t *testing.T) {
	t.Parallel()

	f := newPaymentFixture()
	orderID := f.createOrder(t)
	f.gateway.PaymentAmount = 60000

	result, err := f.paymentService.VerifyPayment(context.Background(), verifyRequest(orderID, "pay_001"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Ticket == nil || result.Ticket.TicketCode == "" {
		t.Fatal("expected a ticket with a non-empty code")
	}
	if result.Payment.Status != domain.PaymentStatusPaid {
		t.Errorf("expected payment status paid, got %s", result.Payment.Status)
	}
	if result.Payment.PaymentRef != "pay_001" {
		t.Errorf("expected payment ref pay_001, got %s", result.Payment.PaymentRef)
	}
	if result.Amount != 60000 {
		t.Errorf("expected amount 60000, got %d", result.Amount)
	}

	stored, _ := f.paymentRepo.GetByOrderRef(context.Background(), orderID)
	if stored.Status != domain.PaymentStatusPaid {
		t.Errorf("stored payment not transitioned, status %s", stored.Status)
	}
}

func TestVerifyPayment_SecondCallReturnsSameTicket(t *testing.T) {
	t.Parallel()

	f := newPaymentFixture()
	orderID := f.createOrder(t)
	req := verifyRequest(orderID, "pay_001")

	first, err := f.paymentService.VerifyPayment(context.Background(), req)
	if err != nil {
		t.Fatalf("first verify failed: %v", err)
	}
	second, err := f.paymentService.VerifyPayment(context.Background(), req)
	if err != nil {
		t.Fatalf("second verify failed: %v", err)
	}

	if first.Ticket.ID != second.Ticket.ID {
		t.Errorf("ticket id changed between calls: %s vs %s", first.Ticket.ID, second.Ticket.ID)
	}
	if first.Ticket.TicketCode != second.Ticket.TicketCode {
		t.Errorf("ticket code changed between calls: %s vs %s", first.Ticket.TicketCode, second.Ticket.TicketCode)
	}
	if f.ticketRepo.CountTickets() != 1 {
		t.Errorf("expected exactly 1 ticket, got %d", f.ticketRepo.CountTickets())
	}
	// The paid transition is applied exactly once.
	if got := atomic.LoadInt32(&f.paymentRepo.MarkPaidCallCount); got != 1 {
		t.Errorf("expected 1 paid transition, got %d", got)
	}
}

func TestVerifyPayment_ConcurrentCallsIssueExactlyOneTicket(t *testing.T) {
	t.Parallel()

	f := newPaymentFixture()
	orderID := f.createOrder(t)
	req := verifyRequest(orderID, "pay_001")

	const n = 10
	var wg sync.WaitGroup
	errs := make(chan error, n)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := f.paymentService.VerifyPayment(context.Background(), req); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("concurrent verify failed: %v", err)
	}
	if f.ticketRepo.CountTickets() != 1 {
		t.Errorf("expected exactly 1 ticket after %d concurrent calls, got %d", n, f.ticketRepo.CountTickets())
	}
}

func TestVerifyPayment_TicketUpsertFailureIsPersistenceError(t *testing.T) {
	t.Parallel()

	f := newPaymentFixture()
	orderID := f.createOrder(t)
	f.ticketRepo.UpsertError = errors.New("deadlock detected")

	_, err := f.paymentService.VerifyPayment(context.Background(), verifyRequest(orderID, "pay_001"))
	if !errors.Is(err, service.ErrPersistence) {
		t.Errorf("expected ErrPersistence, got %v", err)
	}
}

func TestVerifyPayment_GatewayFetchFailureIsRetryable(t *testing.T) {
	t.Parallel()

	f := newPaymentFixture()
	orderID := f.createOrder(t)
	f.gateway.FetchPaymentError = errors.New("timeout")

	_, err := f.paymentService.VerifyPayment(context.Background(), verifyRequest(orderID, "pay_001"))
	if !errors.Is(err, service.ErrGateway) {
		t.Fatalf("expected ErrGateway, got %v", err)
	}
	if atomic.LoadInt32(&f.paymentRepo.MarkPaidCallCount) != 0 {
		t.Error("payment mutated despite gateway failure")
	}

	// The same action succeeds once the gateway recovers.
	f.gateway.FetchPaymentError = nil
	if _, err := f.paymentService.VerifyPayment(context.Background(), verifyRequest(orderID, "pay_001")); err != nil {
		t.Errorf("retry after gateway recovery failed: %v", err)
	}
}
