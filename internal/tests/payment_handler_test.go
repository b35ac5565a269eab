package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"techfest/internal/app"
	"techfest/internal/config"
	"techfest/internal/handler"
	"techfest/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newTestRouter builds the real router over mocked collaborators.
func newTestRouter(razorpay config.RazorpayConfig) (*gin.Engine, *paymentFixture) {
	f := newPaymentFixture()

	pricing := service.NewPricingService(f.teamRepo, f.eventRepo)
	tickets := service.NewTicketService(f.paymentRepo, f.ticketRepo, nil)
	payments := service.NewPaymentService(pricing, f.paymentRepo, tickets, f.gateway, razorpay, nil)
	registration := service.NewRegistrationService(f.teamRepo, f.eventRepo, nil)
	leaderboard := service.NewLeaderboardService(NewMockLeaderboardRepository(), nil)

	router := app.NewRouter(app.RouterDeps{
		EventHandler:       handler.NewEventHandler(f.eventRepo, nil),
		TeamHandler:        handler.NewTeamHandler(registration),
		PaymentHandler:     handler.NewPaymentHandler(payments),
		TicketHandler:      handler.NewTicketHandler(tickets, nil),
		LeaderboardHandler: handler.NewLeaderboardHandler(leaderboard),
	})

	return router, f
}

func testRazorpayConfig() config.RazorpayConfig {
	return config.RazorpayConfig{
		KeyID:     "rzp_test_key",
		KeySecret: testKeySecret,
		Currency:  "INR",
	}
}

func postPayments(router *gin.Engine, body map[string]any) *httptest.ResponseRecorder {
	data, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, "/v1/payments", bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestPaymentsEndpoint_RejectsNonPOST(t *testing.T) {
	router, _ := newTestRouter(testRazorpayConfig())

	req := httptest.NewRequest(http.MethodGet, "/v1/payments", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", w.Code)
	}
}

func TestPaymentsEndpoint_RejectsUnknownAction(t *testing.T) {
	router, f := newTestRouter(testRazorpayConfig())

	w := postPayments(router, map[string]any{"action": "refund-everything", "teamId": "team-1"})

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	// Rejected before any gateway or database I/O.
	if f.gateway.CreateOrderCallCount != 0 || f.gateway.FetchPaymentCallCount != 0 {
		t.Error("gateway called for unknown action")
	}
}

func TestPaymentsEndpoint_MissingCredentialsReturnGeneric500(t *testing.T) {
	router, _ := newTestRouter(config.RazorpayConfig{Currency: "INR"})

	w := postPayments(router, map[string]any{"action": "create-order", "teamId": "team-1"})

	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", w.Code)
	}

	var resp handler.PaymentErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid error body: %v", err)
	}
	if resp.Success {
		t.Error("expected success=false")
	}
	if resp.Error != "server misconfigured" {
		t.Errorf("expected a generic message, got %q", resp.Error)
	}
}

func TestPaymentsEndpoint_CreateOrderHappyPath(t *testing.T) {
	router, _ := newTestRouter(testRazorpayConfig())

	w := postPayments(router, map[string]any{
		"action":    "create-order",
		"teamId":    "team-1",
		"eventName": "Robo Wars",
	})

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp handler.CreateOrderResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if !resp.Success {
		t.Error("expected success=true")
	}
	if resp.OrderID == "" {
		t.Error("expected an order id")
	}
	if resp.Amount != 60000 {
		t.Errorf("expected amount 60000, got %d", resp.Amount)
	}
	if resp.Currency != "INR" {
		t.Errorf("expected INR, got %s", resp.Currency)
	}
}

func TestPaymentsEndpoint_VerifyRequiresCallbackFields(t *testing.T) {
	router, _ := newTestRouter(testRazorpayConfig())

	w := postPayments(router, map[string]any{
		"action": "verify-payment",
		"teamId": "team-1",
		// callback triple missing
	})

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestPaymentsEndpoint_VerifyFullFlow(t *testing.T) {
	router, f := newTestRouter(testRazorpayConfig())

	created := postPayments(router, map[string]any{"action": "create-order", "teamId": "team-1"})
	var order handler.CreateOrderResponse
	if err := json.Unmarshal(created.Body.Bytes(), &order); err != nil {
		t.Fatalf("invalid create-order body: %v", err)
	}

	f.gateway.PaymentAmount = order.Amount
	w := postPayments(router, map[string]any{
		"action":              "verify-payment",
		"teamId":              "team-1",
		"razorpay_order_id":   order.OrderID,
		"razorpay_payment_id": "pay_001",
		"razorpay_signature":  sign(order.OrderID, "pay_001", testKeySecret),
	})

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp handler.VerifyPaymentResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid verify body: %v", err)
	}
	if !resp.Success {
		t.Error("expected success=true")
	}
	if resp.Ticket.TicketCode == "" {
		t.Error("expected a ticket code")
	}
	if resp.Payment.Status != "paid" {
		t.Errorf("expected payment status paid, got %s", resp.Payment.Status)
	}
	if resp.OrderID != order.OrderID {
		t.Errorf("order id mismatch: %s vs %s", resp.OrderID, order.OrderID)
	}
}

func TestPaymentsEndpoint_TamperedSignatureIs400(t *testing.T) {
	router, f := newTestRouter(testRazorpayConfig())

	created := postPayments(router, map[string]any{"action": "create-order", "teamId": "team-1"})
	var order handler.CreateOrderResponse
	if err := json.Unmarshal(created.Body.Bytes(), &order); err != nil {
		t.Fatalf("invalid create-order body: %v", err)
	}

	w := postPayments(router, map[string]any{
		"action":              "verify-payment",
		"teamId":              "team-1",
		"razorpay_order_id":   order.OrderID,
		"razorpay_payment_id": "pay_001",
		"razorpay_signature":  "0000000000000000000000000000000000000000000000000000000000000000",
	})

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	if f.ticketRepo.CountTickets() != 0 {
		t.Error("ticket issued for tampered signature")
	}
}
