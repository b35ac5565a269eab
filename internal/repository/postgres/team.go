package postgres

import (
	"context"
	"database/sql"
	"errors"

	"techfest/internal/domain"
	"techfest/internal/repository"
)

// TeamRepository is a PostgreSQL implementation of repository.TeamRepository.
type TeamRepository struct {
	db *sql.DB
}

// NewTeamRepository creates a new PostgreSQL team repository.
func NewTeamRepository(db *sql.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

// Create persists a new team and its members in a single transaction.
func (r *TeamRepository) Create(ctx context.Context, team *domain.Team, members []domain.TeamMember) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `
		INSERT INTO teams (id, event_id, team_name, college_name, team_size, created_by, is_onspot)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err = tx.ExecContext(ctx, query,
		team.ID,
		team.EventID,
		team.TeamName,
		team.CollegeName,
		team.TeamSize,
		team.CreatedBy,
		team.IsOnspot,
	)
	if err != nil {
		return err
	}

	memberQuery := `INSERT INTO team_members (id, team_id, member_name) VALUES ($1, $2, $3)`
	for _, m := range members {
		if _, err := tx.ExecContext(ctx, memberQuery, m.ID, team.ID, m.MemberName); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// GetByID retrieves a team by ID.
func (r *TeamRepository) GetByID(ctx context.Context, id string) (*domain.Team, error) {
	query := `
		SELECT id, event_id, team_name, college_name, team_size, created_by, is_onspot, created_at
		FROM teams WHERE id = $1
	`

	var team domain.Team
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&team.ID,
		&team.EventID,
		&team.TeamName,
		&team.CollegeName,
		&team.TeamSize,
		&team.CreatedBy,
		&team.IsOnspot,
		&team.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return &team, nil
}

// GetMembers retrieves the members of a team.
func (r *TeamRepository) GetMembers(ctx context.Context, teamID string) ([]domain.TeamMember, error) {
	query := `SELECT id, team_id, member_name FROM team_members WHERE team_id = $1`

	rows, err := r.db.QueryContext(ctx, query, teamID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []domain.TeamMember
	for rows.Next() {
		var m domain.TeamMember
		if err := rows.Scan(&m.ID, &m.TeamID, &m.MemberName); err != nil {
			return nil, err
		}
		members = append(members, m)
	}

	return members, rows.Err()
}
