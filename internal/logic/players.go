package logic

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/Compassionate-Cockroaches/ProjectDatabase/internal/models"
)

type playerService struct {
	pg     PgPool
	logger *zap.SugaredLogger
}

func NewPlayerService(pg PgPool, logger *zap.SugaredLogger) PlayerService {
	return &playerService{pg: pg, logger: logger}
}

// ListPlayers returns a page of players, optionally narrowed by exact
// position and a case-insensitive name substring. Ordered by name so pages
// are stable.
func (s *playerService) ListPlayers(ctx context.Context, position, search string, offset, limit int) ([]models.Player, error) {
	b := &whereBuilder{}
	if position != "" {
		b.add("p.position = $%d", position)
	}
	if search != "" {
		b.add("p.player_name ILIKE $%d", "%"+search+"%")
	}

	query := fmt.Sprintf(`
		SELECT p.id, p.external_id, p.player_name, p.position
		FROM players p
		%s
		ORDER BY p.player_name, p.id
		OFFSET $%d LIMIT $%d
	`, b.where(), b.nextOrdinal(), b.nextOrdinal()+1)
	args := append(b.args, offset, limit)

	rows, err := s.pg.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list players query: %w", err)
	}
	defer rows.Close()

	players := make([]models.Player, 0)
	for rows.Next() {
		var p models.Player
		if err := rows.Scan(&p.ID, &p.ExternalID, &p.PlayerName, &p.Position); err != nil {
			return nil, fmt.Errorf("list players scan: %w", err)
		}
		players = append(players, p)
	}
	return players, rows.Err()
}

// GetPlayer returns one player with career totals aggregated over every
// stat line on record. A player with no stat lines still resolves, with
// zeroed totals.
func (s *playerService) GetPlayer(ctx context.Context, id string) (*models.PlayerCareerStats, error) {
	query := `
		SELECT
			p.id,
			p.player_name,
			p.position,
			COUNT(s.match_id)::bigint,
			COALESCE(SUM(CASE WHEN s.result THEN 1 ELSE 0 END), 0)::bigint,
			COALESCE(SUM(s.kills), 0)::bigint,
			COALESCE(SUM(s.deaths), 0)::bigint,
			COALESCE(SUM(s.assists), 0)::bigint
		FROM players p
		LEFT JOIN match_player_stats s ON s.player_id = p.id
		WHERE p.id = $1
		GROUP BY p.id, p.player_name, p.position
	`
	var c models.PlayerCareerStats
	err := s.pg.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.PlayerName, &c.Position,
		&c.TotalGames, &c.TotalWins,
		&c.TotalKills, &c.TotalDeaths, &c.TotalAssists,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get player: %w", err)
	}
	c.AvgKDA = round2(kdaRatio(c.TotalKills, c.TotalAssists, c.TotalDeaths))
	c.WinRate = round2(winRatePercent(c.TotalWins, c.TotalGames))
	return &c, nil
}

// GetChampionStats groups a player's stat lines by champion, most played
// first. Lines with no champion recorded are skipped.
func (s *playerService) GetChampionStats(ctx context.Context, playerID string) ([]models.ChampionStats, error) {
	query := `
		SELECT
			s.champion,
			COUNT(*)::bigint AS games_played,
			COALESCE(SUM(CASE WHEN s.result THEN 1 ELSE 0 END), 0)::bigint,
			COALESCE(AVG(s.kills), 0)::float8,
			COALESCE(AVG(s.deaths), 0)::float8,
			COALESCE(AVG(s.assists), 0)::float8,
			COALESCE(SUM(s.kills), 0)::bigint,
			COALESCE(SUM(s.deaths), 0)::bigint,
			COALESCE(SUM(s.assists), 0)::bigint
		FROM match_player_stats s
		WHERE s.player_id = $1 AND s.champion IS NOT NULL
		GROUP BY s.champion
		ORDER BY games_played DESC, s.champion
	`
	rows, err := s.pg.Query(ctx, query, playerID)
	if err != nil {
		return nil, fmt.Errorf("champion stats query: %w", err)
	}
	defer rows.Close()

	stats := make([]models.ChampionStats, 0)
	for rows.Next() {
		var cs models.ChampionStats
		var wins, kills, deaths, assists int64
		if err := rows.Scan(
			&cs.Champion, &cs.GamesPlayed, &wins,
			&cs.AvgKills, &cs.AvgDeaths, &cs.AvgAssists,
			&kills, &deaths, &assists,
		); err != nil {
			return nil, fmt.Errorf("champion stats scan: %w", err)
		}
		cs.Wins = wins
		cs.WinRate = round2(winRatePercent(wins, cs.GamesPlayed))
		cs.AvgKDA = round2(kdaRatio(kills, assists, deaths))
		cs.AvgKills = round2(cs.AvgKills)
		cs.AvgDeaths = round2(cs.AvgDeaths)
		cs.AvgAssists = round2(cs.AvgAssists)
		stats = append(stats, cs)
	}
	return stats, rows.Err()
}

// GetRecentMatches returns a player's stat lines newest first, enriched
// with match date and team name.
func (s *playerService) GetRecentMatches(ctx context.Context, playerID string, offset, limit int) ([]models.PlayerMatchEntry, error) {
	query := `
		SELECT
			s.match_id, s.player_id, s.team_id, s.side, s.champion, s.result,
			s.kills, s.deaths, s.assists,
			s.totalgold, s.dpm, s.damageshare,
			s.visionscore, s.total_cs, s.cspm,
			m.match_date,
			tm.team_name
		FROM match_player_stats s
		JOIN matches m ON m.id = s.match_id
		JOIN teams tm ON tm.id = s.team_id
		WHERE s.player_id = $1
		ORDER BY m.match_date DESC NULLS LAST, s.match_id
		OFFSET $2 LIMIT $3
	`
	rows, err := s.pg.Query(ctx, query, playerID, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("recent matches query: %w", err)
	}
	defer rows.Close()

	entries := make([]models.PlayerMatchEntry, 0)
	for rows.Next() {
		var e models.PlayerMatchEntry
		if err := rows.Scan(
			&e.MatchID, &e.PlayerID, &e.TeamID, &e.Side, &e.Champion, &e.Result,
			&e.Kills, &e.Deaths, &e.Assists,
			&e.TotalGold, &e.DPM, &e.DamageShare,
			&e.VisionScore, &e.TotalCS, &e.CSPM,
			&e.MatchDate, &e.TeamName,
		); err != nil {
			return nil, fmt.Errorf("recent matches scan: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
