package tests

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"techfest/internal/domain"
	"techfest/internal/gateway"
	"techfest/internal/repository"
)

// ──────────────────────────────────────────────
// MOCK EVENT REPOSITORY
// ──────────────────────────────────────────────

// MockEventRepository is a mock implementation of EventRepository.
type MockEventRepository struct {
	mu     sync.RWMutex
	events map[string]*domain.Event

	// Error injection
	GetByIDError error
}

// NewMockEventRepository creates a new mock event repository.
func NewMockEventRepository() *MockEventRepository {
	return &MockEventRepository{
		events: make(map[string]*domain.Event),
	}
}

// AddEvent adds an event to the mock repository.
func (m *MockEventRepository) AddEvent(event *domain.Event) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events[event.ID] = event
}

func (m *MockEventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	if m.GetByIDError != nil {
		return nil, m.GetByIDError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	event, ok := m.events[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	// Return a copy to avoid mutation issues.
	copy := *event
	return &copy, nil
}

func (m *MockEventRepository) GetAll(ctx context.Context) ([]*domain.Event, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]*domain.Event, 0, len(m.events))
	for _, e := range m.events {
		copy := *e
		result = append(result, &copy)
	}
	return result, nil
}

// ──────────────────────────────────────────────
// MOCK TEAM REPOSITORY
// ──────────────────────────────────────────────

// MockTeamRepository is a mock implementation of TeamRepository.
type MockTeamRepository struct {
	mu      sync.RWMutex
	teams   map[string]*domain.Team
	members map[string][]domain.TeamMember

	// Counters for verification
	CreateCallCount int32

	// Error injection
	CreateError error
}

// NewMockTeamRepository creates a new mock team repository.
func NewMockTeamRepository() *MockTeamRepository {
	return &MockTeamRepository{
		teams:   make(map[string]*domain.Team),
		members: make(map[string][]domain.TeamMember),
	}
}

// AddTeam adds a team to the mock repository.
func (m *MockTeamRepository) AddTeam(team *domain.Team) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.teams[team.ID] = team
}

func (m *MockTeamRepository) Create(ctx context.Context, team *domain.Team, members []domain.TeamMember) error {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateError != nil {
		return m.CreateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.teams[team.ID] = team
	m.members[team.ID] = members
	return nil
}

func (m *MockTeamRepository) GetByID(ctx context.Context, id string) (*domain.Team, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	team, ok := m.teams[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copy := *team
	return &copy, nil
}

func (m *MockTeamRepository) GetMembers(ctx context.Context, teamID string) ([]domain.TeamMember, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.members[teamID], nil
}

// ──────────────────────────────────────────────
// MOCK PAYMENT REPOSITORY
// ──────────────────────────────────────────────

// MockPaymentRepository is a mock implementation of PaymentRepository.
type MockPaymentRepository struct {
	mu       sync.RWMutex
	payments map[string]*domain.Payment

	// Counters for verification
	CreateCallCount   int32
	MarkPaidCallCount int32

	// Error injection
	CreateError   error
	MarkPaidError error
}

// NewMockPaymentRepository creates a new mock payment repository.
func NewMockPaymentRepository() *MockPaymentRepository {
	return &MockPaymentRepository{
		payments: make(map[string]*domain.Payment),
	}
}

// AddPayment adds a payment to the mock repository.
func (m *MockPaymentRepository) AddPayment(payment *domain.Payment) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.payments[payment.ID] = payment
}

func (m *MockPaymentRepository) Create(ctx context.Context, payment *domain.Payment) error {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateError != nil {
		return m.CreateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	copy := *payment
	m.payments[payment.ID] = &copy
	return nil
}

func (m *MockPaymentRepository) GetByID(ctx context.Context, id string) (*domain.Payment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	payment, ok := m.payments[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copy := *payment
	return &copy, nil
}

func (m *MockPaymentRepository) GetByOrderRef(ctx context.Context, orderRef string) (*domain.Payment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, p := range m.payments {
		if p.OrderRef == orderRef {
			copy := *p
			return &copy, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *MockPaymentRepository) MarkPaid(ctx context.Context, id string, paymentRef string) error {
	atomic.AddInt32(&m.MarkPaidCallCount, 1)
	if m.MarkPaidError != nil {
		return m.MarkPaidError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	payment, ok := m.payments[id]
	if !ok {
		return repository.ErrNotFound
	}
	payment.Status = domain.PaymentStatusPaid
	payment.PaymentRef = paymentRef
	return nil
}

// GetPayment returns a payment for test assertions.
func (m *MockPaymentRepository) GetPayment(id string) *domain.Payment {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.payments[id]
}

// CountPayments returns the number of stored payments.
func (m *MockPaymentRepository) CountPayments() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.payments)
}

// ──────────────────────────────────────────────
// MOCK TICKET REPOSITORY
// ──────────────────────────────────────────────

// MockTicketRepository is a mock implementation of TicketRepository.
// UpsertByTeam mirrors the database's unique constraint on team_id: the
// first insert for a team wins, later calls return the existing row.
type MockTicketRepository struct {
	mu      sync.Mutex
	tickets map[string]*domain.Ticket // keyed by team ID

	// Counters for verification
	UpsertCallCount int32

	// Error injection
	UpsertError error
}

// NewMockTicketRepository creates a new mock ticket repository.
func NewMockTicketRepository() *MockTicketRepository {
	return &MockTicketRepository{
		tickets: make(map[string]*domain.Ticket),
	}
}

func (m *MockTicketRepository) UpsertByTeam(ctx context.Context, ticket *domain.Ticket) (*domain.Ticket, error) {
	atomic.AddInt32(&m.UpsertCallCount, 1)
	if m.UpsertError != nil {
		return nil, m.UpsertError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if existing, ok := m.tickets[ticket.TeamID]; ok {
		copy := *existing
		return &copy, nil
	}
	copy := *ticket
	m.tickets[ticket.TeamID] = &copy
	result := copy
	return &result, nil
}

func (m *MockTicketRepository) GetByTeam(ctx context.Context, teamID string) (*domain.Ticket, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	ticket, ok := m.tickets[teamID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copy := *ticket
	return &copy, nil
}

// CountTickets returns the number of stored tickets.
func (m *MockTicketRepository) CountTickets() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.tickets)
}

// ──────────────────────────────────────────────
// MOCK LEADERBOARD REPOSITORY
// ──────────────────────────────────────────────

// MockLeaderboardRepository is a mock implementation of LeaderboardRepository.
type MockLeaderboardRepository struct {
	mu      sync.Mutex
	entries map[string]map[string]*domain.LeaderboardEntry // eventID -> teamID -> entry

	// Error injection
	UpsertScoreError error
}

// NewMockLeaderboardRepository creates a new mock leaderboard repository.
func NewMockLeaderboardRepository() *MockLeaderboardRepository {
	return &MockLeaderboardRepository{
		entries: make(map[string]map[string]*domain.LeaderboardEntry),
	}
}

func (m *MockLeaderboardRepository) UpsertScore(ctx context.Context, eventID, teamID string, score int) (*domain.LeaderboardEntry, error) {
	if m.UpsertScoreError != nil {
		return nil, m.UpsertScoreError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.entries[eventID] == nil {
		m.entries[eventID] = make(map[string]*domain.LeaderboardEntry)
	}
	entry, ok := m.entries[eventID][teamID]
	if !ok {
		entry = &domain.LeaderboardEntry{
			ID:      fmt.Sprintf("lb-%s-%s", eventID, teamID),
			EventID: eventID,
			TeamID:  teamID,
		}
		m.entries[eventID][teamID] = entry
	}
	entry.Score = score
	entry.UpdatedAt = time.Now()
	copy := *entry
	return &copy, nil
}

func (m *MockLeaderboardRepository) ListByEvent(ctx context.Context, eventID string) ([]*domain.LeaderboardEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	result := make([]*domain.LeaderboardEntry, 0, len(m.entries[eventID]))
	for _, e := range m.entries[eventID] {
		copy := *e
		result = append(result, &copy)
	}
	// Assign ranks by score descending.
	for i := 0; i < len(result); i++ {
		for j := i + 1; j < len(result); j++ {
			if result[j].Score > result[i].Score {
				result[i], result[j] = result[j], result[i]
			}
		}
	}
	for i := range result {
		result[i].Rank = i + 1
	}
	return result, nil
}

// ──────────────────────────────────────────────
// MOCK GATEWAY
// ──────────────────────────────────────────────

// MockGateway is a mock implementation of gateway.Client.
type MockGateway struct {
	mu     sync.Mutex
	orders map[string]*gateway.Order
	nextID int

	// Configurable behavior
	PaymentStatus string // status returned by FetchPayment, default "captured"
	PaymentAmount int64  // amount returned by FetchPayment

	// Counters for verification
	CreateOrderCallCount  int32
	FetchPaymentCallCount int32

	// Error injection
	CreateOrderError  error
	FetchPaymentError error
}

// NewMockGateway creates a new mock gateway that reports captured payments.
func NewMockGateway() *MockGateway {
	return &MockGateway{
		orders:        make(map[string]*gateway.Order),
		PaymentStatus: gateway.PaymentStatusCaptured,
	}
}

func (m *MockGateway) CreateOrder(ctx context.Context, req gateway.CreateOrderRequest) (*gateway.Order, error) {
	atomic.AddInt32(&m.CreateOrderCallCount, 1)
	if m.CreateOrderError != nil {
		return nil, m.CreateOrderError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	order := &gateway.Order{
		ID:       fmt.Sprintf("order_mock%06d", m.nextID),
		Amount:   req.Amount,
		Currency: req.Currency,
		Receipt:  req.Receipt,
		Status:   "created",
	}
	m.orders[order.ID] = order
	return order, nil
}

func (m *MockGateway) FetchPayment(ctx context.Context, paymentID string) (*gateway.Payment, error) {
	atomic.AddInt32(&m.FetchPaymentCallCount, 1)
	if m.FetchPaymentError != nil {
		return nil, m.FetchPaymentError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return &gateway.Payment{
		ID:     paymentID,
		Amount: m.PaymentAmount,
		Status: m.PaymentStatus,
		Method: "upi",
	}, nil
}

// GetOrder returns a created order for test assertions.
func (m *MockGateway) GetOrder(id string) *gateway.Order {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.orders[id]
}
