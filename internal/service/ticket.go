package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"techfest/internal/domain"
	"techfest/internal/repository"
)

// TicketService issues tickets for paid registrations.
type TicketService struct {
	paymentRepo         repository.PaymentRepository
	ticketRepo          repository.TicketRepository
	notificationService *NotificationService
}

// NewTicketService creates a new TicketService.
func NewTicketService(
	paymentRepo repository.PaymentRepository,
	ticketRepo repository.TicketRepository,
	notificationService *NotificationService,
) *TicketService {
	return &TicketService{
		paymentRepo:         paymentRepo,
		ticketRepo:          ticketRepo,
		notificationService: notificationService,
	}
}

// IssueResult contains the issued ticket and the payment it settles.
type IssueResult struct {
	Ticket  *domain.Ticket
	Payment *domain.Payment
}

// Issue transitions the payment matching orderRef to paid and upserts the
// owning team's ticket. Matching on the order reference captured at creation
// time rather than "latest payment for team" keeps retried or duplicated
// orders unambiguous, and the caller's teamID must match the row's owner.
// Idempotent: re-running for an already-paid payment with the same reference
// returns the existing ticket.
func (s *TicketService) Issue(ctx context.Context, teamID, orderRef, paymentRef string) (*IssueResult, error) {
	payment, err := s.paymentRepo.GetByOrderRef(ctx, orderRef)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPaymentRecordNotFound
		}
		return nil, fmt.Errorf("%w: payment lookup: %v", ErrPersistence, err)
	}

	// The claimed team must own the payment row. A genuinely signed callback
	// for one team's order must never mint a ticket for another team.
	if payment.TeamID != teamID {
		log.Printf("team mismatch on ticket issue: claimed=%s owner=%s order=%s",
			teamID, payment.TeamID, orderRef)
		return nil, ErrPaymentRecordNotFound
	}

	alreadyPaid := payment.Status == domain.PaymentStatusPaid && payment.PaymentRef == paymentRef
	if !alreadyPaid {
		if err := s.paymentRepo.MarkPaid(ctx, payment.ID, paymentRef); err != nil {
			log.Printf("failed to mark payment %s paid: %v", payment.ID, err)
			return nil, fmt.Errorf("%w: payment update", ErrPersistence)
		}
		payment.Status = domain.PaymentStatusPaid
		payment.PaymentRef = paymentRef
	}

	// Keyed on the payment's owner, not the caller's claim.
	ticket, err := s.ticketRepo.UpsertByTeam(ctx, &domain.Ticket{
		ID:         uuid.New().String(),
		TeamID:     payment.TeamID,
		TicketCode: newTicketCode(),
		CreatedAt:  time.Now(),
	})
	if err != nil {
		log.Printf("failed to upsert ticket for team %s: %v", payment.TeamID, err)
		return nil, fmt.Errorf("%w: ticket upsert", ErrPersistence)
	}

	if s.notificationService != nil && !alreadyPaid {
		_ = s.notificationService.NotifyTicketIssued(ctx, ticket)
	}

	return &IssueResult{
		Ticket:  ticket,
		Payment: payment,
	}, nil
}

// GetTicket retrieves the ticket for a team.
func (s *TicketService) GetTicket(ctx context.Context, teamID string) (*domain.Ticket, error) {
	if teamID == "" {
		return nil, ErrInvalidTeamID
	}

	return s.ticketRepo.GetByTeam(ctx, teamID)
}

// newTicketCode generates a human-presentable ticket code.
func newTicketCode() string {
	raw := strings.ReplaceAll(uuid.New().String(), "-", "")
	return "FEST-" + strings.ToUpper(raw[:8])
}
