package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"techfest/internal/domain"
	"techfest/internal/service"
)

// Dispatch values for the payments endpoint.
const (
	actionCreateOrder   = "create-order"
	actionVerifyPayment = "verify-payment"
)

// PaymentHandler handles HTTP requests for payments.
type PaymentHandler struct {
	paymentService *service.PaymentService
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(paymentService *service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// PaymentActionRequest is the HTTP request body for the payments endpoint.
// The checkout widget POSTs both actions to the same route and selects the
// operation with the action field.
type PaymentActionRequest struct {
	Action    string `json:"action"`
	TeamID    string `json:"teamId"`
	EventName string `json:"eventName,omitempty"`

	// verify-payment fields, named by the gateway's callback convention.
	RazorpayOrderID   string `json:"razorpay_order_id,omitempty"`
	RazorpayPaymentID string `json:"razorpay_payment_id,omitempty"`
	RazorpaySignature string `json:"razorpay_signature,omitempty"`
}

// CreateOrderResponse is the HTTP response for a created order.
type CreateOrderResponse struct {
	Success  bool   `json:"success"`
	OrderID  string `json:"orderId"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

// VerifyPaymentResponse is the HTTP response for a verified payment.
type VerifyPaymentResponse struct {
	Success   bool                  `json:"success"`
	Ticket    TicketResponse        `json:"ticket"`
	Payment   PaymentDetailResponse `json:"payment"`
	PaymentID string                `json:"paymentId"`
	OrderID   string                `json:"orderId"`
	Amount    int64                 `json:"amount"`
}

// TicketResponse is the ticket payload inside payment responses.
type TicketResponse struct {
	ID         string `json:"id"`
	TeamID     string `json:"team_id"`
	TicketCode string `json:"ticket_code"`
	PDFURL     string `json:"pdf_url,omitempty"`
}

// PaymentDetailResponse is the payment payload inside payment responses.
type PaymentDetailResponse struct {
	ID         string `json:"id"`
	TeamID     string `json:"team_id"`
	Amount     int64  `json:"amount"`
	Status     string `json:"status"`
	OrderRef   string `json:"order_ref"`
	PaymentRef string `json:"payment_ref,omitempty"`
}

// PaymentErrorResponse is the failure shape for the payments endpoint.
type PaymentErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// HandleAction handles POST /v1/payments
func (h *PaymentHandler) HandleAction(c *gin.Context) {
	var req PaymentActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, PaymentErrorResponse{Error: "invalid request body"})
		return
	}

	switch req.Action {
	case actionCreateOrder:
		h.createOrder(c, req)
	case actionVerifyPayment:
		h.verifyPayment(c, req)
	default:
		c.JSON(http.StatusBadRequest, PaymentErrorResponse{Error: "invalid action"})
	}
}

func (h *PaymentHandler) createOrder(c *gin.Context, req PaymentActionRequest) {
	if req.TeamID == "" {
		c.JSON(http.StatusBadRequest, PaymentErrorResponse{Error: "teamId is required"})
		return
	}

	result, err := h.paymentService.CreateOrder(c.Request.Context(), service.CreateOrderRequest{
		TeamID:    req.TeamID,
		EventName: req.EventName,
	})
	if err != nil {
		respondPaymentError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, CreateOrderResponse{
		Success:  true,
		OrderID:  result.OrderID,
		Amount:   result.Amount,
		Currency: result.Currency,
	})
}

func (h *PaymentHandler) verifyPayment(c *gin.Context, req PaymentActionRequest) {
	if req.TeamID == "" || req.RazorpayOrderID == "" || req.RazorpayPaymentID == "" || req.RazorpaySignature == "" {
		c.JSON(http.StatusBadRequest, PaymentErrorResponse{Error: "missing verification fields"})
		return
	}

	result, err := h.paymentService.VerifyPayment(c.Request.Context(), service.VerifyPaymentRequest{
		TeamID:    req.TeamID,
		OrderID:   req.RazorpayOrderID,
		PaymentID: req.RazorpayPaymentID,
		Signature: req.RazorpaySignature,
	})
	if err != nil {
		respondPaymentError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, VerifyPaymentResponse{
		Success:   true,
		Ticket:    toTicketResponse(result.Ticket),
		Payment:   toPaymentDetailResponse(result.Payment),
		PaymentID: result.PaymentID,
		OrderID:   result.OrderID,
		Amount:    result.Amount,
	})
}

// respondPaymentError sends the payments endpoint's failure shape with the
// shared status mapping.
func respondPaymentError(c *gin.Context, err error) {
	c.JSON(mapErrorToHTTPStatus(err), PaymentErrorResponse{Error: clientMessage(err)})
}

func toTicketResponse(t *domain.Ticket) TicketResponse {
	return TicketResponse{
		ID:         t.ID,
		TeamID:     t.TeamID,
		TicketCode: t.TicketCode,
		PDFURL:     t.PDFURL,
	}
}

func toPaymentDetailResponse(p *domain.Payment) PaymentDetailResponse {
	return PaymentDetailResponse{
		ID:         p.ID,
		TeamID:     p.TeamID,
		Amount:     p.Amount,
		Status:     string(p.Status),
		OrderRef:   p.OrderRef,
		PaymentRef: p.PaymentRef,
	}
}
