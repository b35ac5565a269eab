package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"techfest/internal/domain"
	"techfest/internal/repository"
)

// RegistrationService handles team registration.
type RegistrationService struct {
	teamRepo            repository.TeamRepository
	eventRepo           repository.EventRepository
	notificationService *NotificationService
}

// NewRegistrationService creates a new RegistrationService.
func NewRegistrationService(
	teamRepo repository.TeamRepository,
	eventRepo repository.EventRepository,
	notificationService *NotificationService,
) *RegistrationService {
	return &RegistrationService{
		teamRepo:            teamRepo,
		eventRepo:           eventRepo,
		notificationService: notificationService,
	}
}

// RegisterTeamRequest contains the parameters for registering a team.
type RegisterTeamRequest struct {
	EventID     string
	TeamName    string
	CollegeName string
	TeamSize    int
	CreatedBy   string
	IsOnspot    bool
	Members     []string
}

// RegisterTeam validates the request against the event and creates the team.
func (s *RegistrationService) RegisterTeam(ctx context.Context, req RegisterTeamRequest) (*domain.Team, error) {
	if err := s.validateRegisterRequest(req); err != nil {
		return nil, err
	}

	event, err := s.eventRepo.GetByID(ctx, req.EventID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidEventID
		}
		return nil, err
	}

	if req.TeamSize > event.MaxTeamSize {
		return nil, ErrTeamSizeExceedsLimit
	}

	team := &domain.Team{
		ID:          uuid.New().String(),
		EventID:     req.EventID,
		TeamName:    req.TeamName,
		CollegeName: req.CollegeName,
		TeamSize:    req.TeamSize,
		CreatedBy:   req.CreatedBy,
		IsOnspot:    req.IsOnspot,
		CreatedAt:   time.Now(),
	}

	members := make([]domain.TeamMember, 0, len(req.Members))
	for _, name := range req.Members {
		members = append(members, domain.TeamMember{
			ID:         uuid.New().String(),
			TeamID:     team.ID,
			MemberName: name,
		})
	}

	if err := s.teamRepo.Create(ctx, team, members); err != nil {
		return nil, err
	}

	if s.notificationService != nil {
		_ = s.notificationService.NotifyTeamRegistered(ctx, team)
	}

	return team, nil
}

// GetTeam retrieves a team with its members.
func (s *RegistrationService) GetTeam(ctx context.Context, teamID string) (*domain.Team, []domain.TeamMember, error) {
	if teamID == "" {
		return nil, nil, ErrInvalidTeamID
	}

	team, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return nil, nil, err
	}

	members, err := s.teamRepo.GetMembers(ctx, teamID)
	if err != nil {
		return nil, nil, err
	}

	return team, members, nil
}

func (s *RegistrationService) validateRegisterRequest(req RegisterTeamRequest) error {
	if req.EventID == "" {
		return ErrInvalidEventID
	}
	if req.TeamName == "" {
		return ErrInvalidTeamName
	}
	if req.TeamSize <= 0 {
		return ErrInvalidTeamSize
	}
	return nil
}
