package logic

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/Compassionate-Cockroaches/ProjectDatabase/internal/models"
)

type matchService struct {
	pg     PgPool
	logger *zap.SugaredLogger
}

func NewMatchService(pg PgPool, logger *zap.SugaredLogger) MatchService {
	return &matchService{pg: pg, logger: logger}
}

// GetMatch returns one match with every stat line recorded for it, blue
// side first, labeled with player and team names.
func (s *matchService) GetMatch(ctx context.Context, id string) (*models.MatchDetail, error) {
	var d models.MatchDetail
	err := s.pg.QueryRow(ctx, `
		SELECT id, external_id, tournament_id, game_number, game_length,
		       patch, match_date, data_completeness, url
		FROM matches
		WHERE id = $1
	`, id).Scan(
		&d.ID, &d.ExternalID, &d.TournamentID, &d.GameNumber, &d.GameLength,
		&d.Patch, &d.MatchDate, &d.DataCompleteness, &d.URL,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get match: %w", err)
	}

	rows, err := s.pg.Query(ctx, `
		SELECT
			s.match_id, s.player_id, s.team_id, s.side, s.champion, s.result,
			s.kills, s.deaths, s.assists,
			s.totalgold, s.dpm, s.damageshare,
			s.visionscore, s.total_cs, s.cspm,
			p.player_name,
			tm.team_name
		FROM match_player_stats s
		JOIN players p ON p.id = s.player_id
		JOIN teams tm ON tm.id = s.team_id
		WHERE s.match_id = $1
		ORDER BY s.side, tm.team_name, p.player_name
	`, id)
	if err != nil {
		return nil, fmt.Errorf("match stats query: %w", err)
	}
	defer rows.Close()

	d.PlayerStats = make([]models.MatchStatEntry, 0, 10)
	for rows.Next() {
		var e models.MatchStatEntry
		if err := rows.Scan(
			&e.MatchID, &e.PlayerID, &e.TeamID, &e.Side, &e.Champion, &e.Result,
			&e.Kills, &e.Deaths, &e.Assists,
			&e.TotalGold, &e.DPM, &e.DamageShare,
			&e.VisionScore, &e.TotalCS, &e.CSPM,
			&e.PlayerName, &e.TeamName,
		); err != nil {
			return nil, fmt.Errorf("match stats scan: %w", err)
		}
		d.PlayerStats = append(d.PlayerStats, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("match stats rows: %w", err)
	}
	return &d, nil
}
