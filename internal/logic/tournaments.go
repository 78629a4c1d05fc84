package logic

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/Compassionate-Cockroaches/ProjectDatabase/internal/models"
)

type tournamentService struct {
	pg     PgPool
	logger *zap.SugaredLogger
}

func NewTournamentService(pg PgPool, logger *zap.SugaredLogger) TournamentService {
	return &tournamentService{pg: pg, logger: logger}
}

// tournamentSortColumns whitelists ORDER BY targets. Sort input never
// reaches the SQL text directly.
var tournamentSortColumns = map[string]string{
	"year":   "t.year",
	"league": "t.league",
	"split":  "t.split",
}

// ListTournaments returns a page of tournaments under the shared scope
// filter. sortBy falls back to year and sortOrder to descending when the
// inputs are not recognized.
func (s *tournamentService) ListTournaments(ctx context.Context, f models.ScopeFilter, sortBy, sortOrder string, offset, limit int) ([]models.Tournament, error) {
	b := &whereBuilder{}
	applyScopeFilter(b, models.ScopeFilter{
		Year:     f.Year,
		League:   f.League,
		Split:    f.Split,
		Playoffs: f.Playoffs,
	})

	col, ok := tournamentSortColumns[sortBy]
	if !ok {
		col = "t.year"
	}
	dir := "DESC"
	if sortOrder == "asc" {
		dir = "ASC"
	}

	query := fmt.Sprintf(`
		SELECT t.id, t.league, t.year, t.split, t.playoffs
		FROM tournaments t
		%s
		ORDER BY %s %s, t.id
		OFFSET $%d LIMIT $%d
	`, b.where(), col, dir, b.nextOrdinal(), b.nextOrdinal()+1)
	args := append(b.args, offset, limit)

	rows, err := s.pg.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list tournaments query: %w", err)
	}
	defer rows.Close()

	tournaments := make([]models.Tournament, 0)
	for rows.Next() {
		var t models.Tournament
		if err := rows.Scan(&t.ID, &t.League, &t.Year, &t.Split, &t.Playoffs); err != nil {
			return nil, fmt.Errorf("list tournaments scan: %w", err)
		}
		tournaments = append(tournaments, t)
	}
	return tournaments, rows.Err()
}

// GetTournament returns one tournament with its participation counts.
func (s *tournamentService) GetTournament(ctx context.Context, id string) (*models.TournamentDetail, error) {
	var d models.TournamentDetail
	err := s.pg.QueryRow(ctx, `
		SELECT
			t.id, t.league, t.year, t.split, t.playoffs,
			COUNT(DISTINCT s.team_id)::bigint,
			COUNT(DISTINCT m.id)::bigint
		FROM tournaments t
		LEFT JOIN matches m ON m.tournament_id = t.id
		LEFT JOIN match_player_stats s ON s.match_id = m.id
		WHERE t.id = $1
		GROUP BY t.id, t.league, t.year, t.split, t.playoffs
	`, id).Scan(&d.ID, &d.League, &d.Year, &d.Split, &d.Playoffs, &d.TotalTeams, &d.TotalMatches)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get tournament: %w", err)
	}
	return &d, nil
}

// GetStandings computes the win/loss table of one tournament. Per-match
// team wins are derived with the same majority-of-five rule the team
// leaderboard uses, then totaled per team. Sorted by win rate descending.
func (s *tournamentService) GetStandings(ctx context.Context, tournamentID string) ([]models.TeamStanding, error) {
	var exists bool
	if err := s.pg.QueryRow(ctx,
		"SELECT EXISTS (SELECT 1 FROM tournaments WHERE id = $1)", tournamentID,
	).Scan(&exists); err != nil {
		return nil, fmt.Errorf("standings tournament lookup: %w", err)
	}
	if !exists {
		return nil, ErrNotFound
	}

	rows, err := s.pg.Query(ctx, `
		SELECT
			tm.id,
			tm.team_name,
			s.match_id,
			(COALESCE(SUM(CASE WHEN s.result THEN 1 ELSE 0 END), 0) >= 3) AS team_win
		FROM match_player_stats s
		JOIN teams tm ON tm.id = s.team_id
		JOIN matches m ON m.id = s.match_id
		WHERE m.tournament_id = $1
		GROUP BY tm.id, tm.team_name, s.match_id
	`, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("standings query: %w", err)
	}
	defer rows.Close()

	results := make([]teamMatchResult, 0)
	for rows.Next() {
		var r teamMatchResult
		if err := rows.Scan(&r.TeamID, &r.TeamName, &r.MatchID, &r.Won); err != nil {
			return nil, fmt.Errorf("standings scan: %w", err)
		}
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("standings rows: %w", err)
	}

	standings := make([]models.TeamStanding, 0)
	for _, row := range aggregateTeamResults(results, 1, 0) {
		standings = append(standings, models.TeamStanding{
			TeamID:      row.TeamID,
			TeamName:    row.TeamName,
			GamesPlayed: row.MatchesPlayed,
			Wins:        row.Wins,
			Losses:      row.Losses,
			WinRate:     row.WinRate,
		})
	}
	return standings, nil
}

// GetMatches lists a tournament's matches, oldest first, then by game number.
func (s *tournamentService) GetMatches(ctx context.Context, tournamentID string, offset, limit int) ([]models.Match, error) {
	var exists bool
	if err := s.pg.QueryRow(ctx,
		"SELECT EXISTS (SELECT 1 FROM tournaments WHERE id = $1)", tournamentID,
	).Scan(&exists); err != nil {
		return nil, fmt.Errorf("tournament matches lookup: %w", err)
	}
	if !exists {
		return nil, ErrNotFound
	}

	rows, err := s.pg.Query(ctx, `
		SELECT id, external_id, tournament_id, game_number, game_length,
		       patch, match_date, data_completeness, url
		FROM matches
		WHERE tournament_id = $1
		ORDER BY match_date NULLS LAST, game_number NULLS LAST, id
		OFFSET $2 LIMIT $3
	`, tournamentID, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("tournament matches query: %w", err)
	}
	defer rows.Close()

	matches := make([]models.Match, 0)
	for rows.Next() {
		var m models.Match
		if err := rows.Scan(
			&m.ID, &m.ExternalID, &m.TournamentID, &m.GameNumber, &m.GameLength,
			&m.Patch, &m.MatchDate, &m.DataCompleteness, &m.URL,
		); err != nil {
			return nil, fmt.Errorf("tournament matches scan: %w", err)
		}
		matches = append(matches, m)
	}
	return matches, rows.Err()
}
