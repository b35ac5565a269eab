package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"techfest/internal/domain"
)

// NotificationType represents the type of notification.
type NotificationType string

const (
	NotificationTeamRegistered  NotificationType = "TEAM_REGISTERED"
	NotificationOrderCreated    NotificationType = "ORDER_CREATED"
	NotificationPaymentCaptured NotificationType = "PAYMENT_CAPTURED"
	NotificationPaymentFailed   NotificationType = "PAYMENT_FAILED"
	NotificationTicketIssued    NotificationType = "TICKET_ISSUED"
)

// Notification represents a notification to be sent.
type Notification struct {
	ID          string
	Type        NotificationType
	RecipientID string // team creator
	Title       string
	Message     string
	Data        map[string]interface{}
	CreatedAt   time.Time
}

// NotificationService handles notification delivery.
type NotificationService struct {
	// In a real system, this would have:
	// - Email client for ticket delivery
	// - SMS client for payment confirmations
	// - Push to the admin dashboard
}

// NewNotificationService creates a new NotificationService.
func NewNotificationService() *NotificationService {
	return &NotificationService{}
}

// NotifyTeamRegistered notifies the creator that their team is registered.
func (s *NotificationService) NotifyTeamRegistered(ctx context.Context, team *domain.Team) error {
	return s.send(&Notification{
		ID:          uuid.New().String(),
		Type:        NotificationTeamRegistered,
		RecipientID: team.CreatedBy,
		Title:       "Team registered",
		Message:     fmt.Sprintf("Team %q registered with %d members", team.TeamName, team.TeamSize),
		Data: map[string]interface{}{
			"team_id":  team.ID,
			"event_id": team.EventID,
		},
		CreatedAt: time.Now(),
	})
}

// NotifyOrderCreated notifies the creator that a payment order was opened.
func (s *NotificationService) NotifyOrderCreated(ctx context.Context, payment *domain.Payment) error {
	return s.send(&Notification{
		ID:          uuid.New().String(),
		Type:        NotificationOrderCreated,
		RecipientID: payment.TeamID,
		Title:       "Payment order created",
		Message:     fmt.Sprintf("Order %s opened for ₹%.2f", payment.OrderRef, float64(payment.Amount)/100),
		Data: map[string]interface{}{
			"payment_id": payment.ID,
			"order_ref":  payment.OrderRef,
		},
		CreatedAt: time.Now(),
	})
}

// NotifyPaymentCaptured notifies the team that their payment cleared.
func (s *NotificationService) NotifyPaymentCaptured(ctx context.Context, payment *domain.Payment) error {
	return s.send(&Notification{
		ID:          uuid.New().String(),
		Type:        NotificationPaymentCaptured,
		RecipientID: payment.TeamID,
		Title:       "Payment received",
		Message:     fmt.Sprintf("Payment %s captured for ₹%.2f", payment.PaymentRef, float64(payment.Amount)/100),
		Data: map[string]interface{}{
			"payment_id":  payment.ID,
			"order_ref":   payment.OrderRef,
			"payment_ref": payment.PaymentRef,
		},
		CreatedAt: time.Now(),
	})
}

// NotifyPaymentFailed notifies the team that a payment attempt did not clear.
func (s *NotificationService) NotifyPaymentFailed(ctx context.Context, teamID, orderRef, reason string) error {
	return s.send(&Notification{
		ID:          uuid.New().String(),
		Type:        NotificationPaymentFailed,
		RecipientID: teamID,
		Title:       "Payment not completed",
		Message:     fmt.Sprintf("Payment for order %s did not complete: %s", orderRef, reason),
		Data: map[string]interface{}{
			"order_ref": orderRef,
			"reason":    reason,
		},
		CreatedAt: time.Now(),
	})
}

// NotifyTicketIssued notifies the creator that their ticket is ready.
func (s *NotificationService) NotifyTicketIssued(ctx context.Context, ticket *domain.Ticket) error {
	return s.send(&Notification{
		ID:          uuid.New().String(),
		Type:        NotificationTicketIssued,
		RecipientID: ticket.TeamID,
		Title:       "Ticket issued",
		Message:     fmt.Sprintf("Ticket %s issued", ticket.TicketCode),
		Data: map[string]interface{}{
			"ticket_id":   ticket.ID,
			"ticket_code": ticket.TicketCode,
		},
		CreatedAt: time.Now(),
	})
}

// send delivers a notification. Current implementation logs it; delivery
// channels plug in here.
func (s *NotificationService) send(n *Notification) error {
	log.Printf("[NOTIFICATION] type=%s recipient=%s title=%q message=%q",
		n.Type, n.RecipientID, n.Title, n.Message)
	return nil
}
