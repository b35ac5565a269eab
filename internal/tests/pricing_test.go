package tests

import (
	"context"
	"errors"
	"testing"

	"techfest/internal/domain"
	"techfest/internal/service"
)

func newPricingFixture(teamSize int, pricePerHead float64) (*service.PricingService, *MockTeamRepository, *MockEventRepository) {
	teamRepo := NewMockTeamRepository()
	eventRepo := NewMockEventRepository()

	eventRepo.AddEvent(&domain.Event{
		ID:           "event-1",
		Name:         "Robo Wars",
		Category:     domain.EventCategoryTech,
		PricePerHead: pricePerHead,
		MaxTeamSize:  6,
	})
	teamRepo.AddTeam(&domain.Team{
		ID:       "team-1",
		EventID:  "event-1",
		TeamName: "Circuit Breakers",
		TeamSize: teamSize,
	})

	return service.NewPricingService(teamRepo, eventRepo), teamRepo, eventRepo
}

func TestPricing_TeamOfThreeAtTwoHundredRupees(t *testing.T) {
	t.Parallel()

	// Scenario: 3 members at ₹200/head is 60000 paise.
	pricing, _, _ := newPricingFixture(3, 200)

	result, err := pricing.Resolve(context.Background(), "team-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Amount != 60000 {
		t.Errorf("expected amount 60000, got %d", result.Amount)
	}
}

func TestPricing_RoundsFractionalPaise(t *testing.T) {
	t.Parallel()

	pricing, _, _ := newPricingFixture(3, 99.999)

	result, err := pricing.Resolve(context.Background(), "team-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 99.999 * 3 * 100 = 29999.7, rounds to 30000.
	if result.Amount != 30000 {
		t.Errorf("expected amount 30000, got %d", result.Amount)
	}
}

func TestPricing_UnknownTeamIsInvalid(t *testing.T) {
	t.Parallel()

	pricing, _, _ := newPricingFixture(3, 200)

	_, err := pricing.Resolve(context.Background(), "team-unknown")
	if !errors.Is(err, service.ErrInvalidTeam) {
		t.Errorf("expected ErrInvalidTeam, got %v", err)
	}
}

func TestPricing_MissingEventLinkageIsInvalid(t *testing.T) {
	t.Parallel()

	teamRepo := NewMockTeamRepository()
	eventRepo := NewMockEventRepository()
	teamRepo.AddTeam(&domain.Team{
		ID:       "team-1",
		EventID:  "event-gone",
		TeamSize: 3,
	})

	pricing := service.NewPricingService(teamRepo, eventRepo)

	_, err := pricing.Resolve(context.Background(), "team-1")
	if !errors.Is(err, service.ErrInvalidTeam) {
		t.Errorf("expected ErrInvalidTeam, got %v", err)
	}
}

func TestPricing_ZeroPriceNeverProducesFreeOrder(t *testing.T) {
	t.Parallel()

	pricing, _, _ := newPricingFixture(3, 0)

	_, err := pricing.Resolve(context.Background(), "team-1")
	if !errors.Is(err, service.ErrInvalidPricing) {
		t.Errorf("expected ErrInvalidPricing, got %v", err)
	}
}

func TestPricing_NonPositiveTeamSizeIsInvalid(t *testing.T) {
	t.Parallel()

	pricing, _, _ := newPricingFixture(0, 200)

	_, err := pricing.Resolve(context.Background(), "team-1")
	if !errors.Is(err, service.ErrInvalidPricing) {
		t.Errorf("expected ErrInvalidPricing, got %v", err)
	}
}

func TestPricing_EmptyTeamIDIsRejected(t *testing.T) {
	t.Parallel()

	pricing, _, _ := newPricingFixture(3, 200)

	_, err := pricing.Resolve(context.Background(), "")
	if !errors.Is(err, service.ErrInvalidTeamID) {
		t.Errorf("expected ErrInvalidTeamID, got %v", err)
	}
}
