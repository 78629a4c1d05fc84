package logic

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/Compassionate-Cockroaches/ProjectDatabase/internal/models"
)

type teamService struct {
	pg     PgPool
	logger *zap.SugaredLogger
}

func NewTeamService(pg PgPool, logger *zap.SugaredLogger) TeamService {
	return &teamService{pg: pg, logger: logger}
}

// ListTeams returns a page of teams, optionally narrowed by a
// case-insensitive name substring.
func (s *teamService) ListTeams(ctx context.Context, search string, offset, limit int) ([]models.Team, error) {
	b := &whereBuilder{}
	if search != "" {
		b.add("team_name ILIKE $%d", "%"+search+"%")
	}

	query := fmt.Sprintf(`
		SELECT id, external_id, team_name
		FROM teams
		%s
		ORDER BY team_name, id
		OFFSET $%d LIMIT $%d
	`, b.where(), b.nextOrdinal(), b.nextOrdinal()+1)
	args := append(b.args, offset, limit)

	rows, err := s.pg.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list teams query: %w", err)
	}
	defer rows.Close()

	teams := make([]models.Team, 0)
	for rows.Next() {
		var t models.Team
		if err := rows.Scan(&t.ID, &t.ExternalID, &t.TeamName); err != nil {
			return nil, fmt.Errorf("list teams scan: %w", err)
		}
		teams = append(teams, t)
	}
	return teams, rows.Err()
}

func (s *teamService) GetTeam(ctx context.Context, id string) (*models.Team, error) {
	var t models.Team
	err := s.pg.QueryRow(ctx,
		"SELECT id, external_id, team_name FROM teams WHERE id = $1", id,
	).Scan(&t.ID, &t.ExternalID, &t.TeamName)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get team: %w", err)
	}
	return &t, nil
}
