package service

import (
	"context"
	"errors"
	"math"

	"techfest/internal/domain"
	"techfest/internal/repository"
)

// PricingService computes the payable amount for a team.
type PricingService struct {
	teamRepo  repository.TeamRepository
	eventRepo repository.EventRepository
}

// NewPricingService creates a new PricingService.
func NewPricingService(teamRepo repository.TeamRepository, eventRepo repository.EventRepository) *PricingService {
	return &PricingService{
		teamRepo:  teamRepo,
		eventRepo: eventRepo,
	}
}

// PricingResult contains the resolved amount and the rows it came from.
type PricingResult struct {
	Amount int64 // paise
	Team   *domain.Team
	Event  *domain.Event
}

// Resolve computes amount = round(pricePerHead * teamSize * 100) in paise.
// A team with missing or corrupted event linkage must never produce a free
// or negative order, so any amount <= 0 is rejected.
func (s *PricingService) Resolve(ctx context.Context, teamID string) (*PricingResult, error) {
	if teamID == "" {
		return nil, ErrInvalidTeamID
	}

	team, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidTeam
		}
		return nil, err
	}

	event, err := s.eventRepo.GetByID(ctx, team.EventID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidTeam
		}
		return nil, err
	}

	if event.PricePerHead <= 0 || team.TeamSize <= 0 {
		return nil, ErrInvalidPricing
	}

	amount := int64(math.Round(event.PricePerHead * float64(team.TeamSize) * 100))
	if amount <= 0 {
		return nil, ErrInvalidPricing
	}

	return &PricingResult{
		Amount: amount,
		Team:   team,
		Event:  event,
	}, nil
}
