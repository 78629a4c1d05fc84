package logic

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Compassionate-Cockroaches/ProjectDatabase/internal/models"
)

const dashboardCacheKey = "analytics:dashboard"

type analyticsService struct {
	pg           PgPool
	redis        RedisClient
	logger       *zap.SugaredLogger
	dashboardTTL time.Duration
}

// NewAnalyticsService builds the leaderboard aggregation service. redis may
// be nil; the dashboard then skips its cache and always hits Postgres.
func NewAnalyticsService(pg PgPool, redis RedisClient, logger *zap.SugaredLogger, dashboardTTL time.Duration) AnalyticsService {
	return &analyticsService{
		pg:           pg,
		redis:        redis,
		logger:       logger,
		dashboardTTL: dashboardTTL,
	}
}

// playerAggregate is one grouped row of the player aggregation query,
// before derived metrics are computed.
type playerAggregate struct {
	PlayerID    string
	PlayerName  string
	Position    string
	GamesPlayed int64
	Kills       int64
	Deaths      int64
	Assists     int64
	AvgDPM      float64
	AvgCSPM     float64
	AvgVision   float64
	WinRatio    float64 // averaged win indicator in [0,1]
}

// PlayerLeaderboard groups stat lines by player, computes the requested
// derived metric and returns the ranked top rows.
func (s *analyticsService) PlayerLeaderboard(ctx context.Context, req models.PlayerLeaderboardRequest) ([]models.PlayerLeaderboardRow, error) {
	b := &whereBuilder{}
	applyScopeFilter(b, req.Scope)
	applyPlayerFilter(b, req.Player)

	query := fmt.Sprintf(`
		SELECT
			p.id,
			p.player_name,
			COALESCE(p.position, 'Unknown'),
			COUNT(DISTINCT s.match_id)::bigint AS games_played,
			COALESCE(SUM(s.kills), 0)::bigint,
			COALESCE(SUM(s.deaths), 0)::bigint,
			COALESCE(SUM(s.assists), 0)::bigint,
			COALESCE(AVG(s.dpm), 0)::float8,
			COALESCE(AVG(s.cspm), 0)::float8,
			COALESCE(AVG(s.visionscore), 0)::float8,
			COALESCE(AVG(CASE WHEN s.result THEN 1.0 ELSE 0.0 END), 0)::float8
		FROM match_player_stats s
		JOIN players p ON p.id = s.player_id
		JOIN matches m ON m.id = s.match_id
		JOIN tournaments t ON t.id = m.tournament_id
		%s
		GROUP BY p.id, p.player_name, p.position
		HAVING COUNT(DISTINCT s.match_id) >= $%d
	`, b.where(), b.nextOrdinal())
	args := append(b.args, req.MinGames)

	rows, err := s.pg.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("player leaderboard query: %w", err)
	}
	defer rows.Close()

	aggs := make([]playerAggregate, 0)
	for rows.Next() {
		var a playerAggregate
		if err := rows.Scan(
			&a.PlayerID, &a.PlayerName, &a.Position, &a.GamesPlayed,
			&a.Kills, &a.Deaths, &a.Assists,
			&a.AvgDPM, &a.AvgCSPM, &a.AvgVision, &a.WinRatio,
		); err != nil {
			return nil, fmt.Errorf("player leaderboard scan: %w", err)
		}
		aggs = append(aggs, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("player leaderboard rows: %w", err)
	}

	return buildPlayerRows(aggs, req.Metric, req.Limit), nil
}

// buildPlayerRows turns grouped aggregates into ranked leaderboard rows.
// Kill/death/assist totals are populated on every row, whatever the metric.
func buildPlayerRows(aggs []playerAggregate, metric string, limit int) []models.PlayerLeaderboardRow {
	out := make([]models.PlayerLeaderboardRow, 0, len(aggs))
	for _, a := range aggs {
		out = append(out, models.PlayerLeaderboardRow{
			PlayerID:     a.PlayerID,
			PlayerName:   a.PlayerName,
			Position:     a.Position,
			GamesPlayed:  a.GamesPlayed,
			Metric:       metric,
			MetricValue:  round2(playerMetricValue(a, metric)),
			TotalKills:   a.Kills,
			TotalDeaths:  a.Deaths,
			TotalAssists: a.Assists,
		})
	}
	return rankTop(out,
		func(r models.PlayerLeaderboardRow) float64 { return r.MetricValue },
		func(r models.PlayerLeaderboardRow) string { return r.PlayerID },
		limit)
}

// playerMetricValue selects the raw derived value for a ranking metric.
// The handler boundary guarantees metric is one of the recognized values.
func playerMetricValue(a playerAggregate, metric string) float64 {
	switch metric {
	case MetricDPM:
		return a.AvgDPM
	case MetricCSPM:
		return a.AvgCSPM
	case MetricVision:
		return a.AvgVision
	case MetricWinRate:
		return a.WinRatio * 100
	default: // kda
		return kdaRatio(a.Kills, a.Assists, a.Deaths)
	}
}

// teamMatchResult is the intermediate (team, match, team_win) relation of
// the two-stage team aggregation. The win flag is derived per match from
// the five per-player result flags before anything is summed across matches.
type teamMatchResult struct {
	TeamID   string
	TeamName string
	MatchID  string
	Won      bool
}

// TeamLeaderboard runs the corrected two-stage team win-rate aggregation:
// stage one derives a single win flag per (team, match) with a majority-of-
// five threshold, stage two counts distinct matches and summed wins per team.
// Deriving per match first keeps the numbers right when a match has an
// incomplete roster, where dividing raw stat-line counts by 10 would not.
func (s *analyticsService) TeamLeaderboard(ctx context.Context, req models.TeamLeaderboardRequest) ([]models.TeamLeaderboardRow, error) {
	b := &whereBuilder{}
	applyScopeFilter(b, req.Scope)

	query := fmt.Sprintf(`
		SELECT
			tm.id,
			tm.team_name,
			s.match_id,
			(COALESCE(SUM(CASE WHEN s.result THEN 1 ELSE 0 END), 0) >= 3) AS team_win
		FROM match_player_stats s
		JOIN teams tm ON tm.id = s.team_id
		JOIN matches m ON m.id = s.match_id
		JOIN tournaments t ON t.id = m.tournament_id
		%s
		GROUP BY tm.id, tm.team_name, s.match_id
	`, b.where())

	rows, err := s.pg.Query(ctx, query, b.args...)
	if err != nil {
		return nil, fmt.Errorf("team results query: %w", err)
	}
	defer rows.Close()

	results := make([]teamMatchResult, 0)
	for rows.Next() {
		var r teamMatchResult
		if err := rows.Scan(&r.TeamID, &r.TeamName, &r.MatchID, &r.Won); err != nil {
			return nil, fmt.Errorf("team results scan: %w", err)
		}
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("team results rows: %w", err)
	}

	return aggregateTeamResults(results, req.MinMatches, req.Limit), nil
}

// aggregateTeamResults is stage two: per-team totals over the derived
// (team, match, team_win) relation, the min-sample filter and the win-rate
// ranking.
func aggregateTeamResults(results []teamMatchResult, minMatches, limit int) []models.TeamLeaderboardRow {
	type teamTotals struct {
		name    string
		matches int64
		wins    int64
	}
	totals := make(map[string]*teamTotals)
	for _, r := range results {
		t, ok := totals[r.TeamID]
		if !ok {
			t = &teamTotals{name: r.TeamName}
			totals[r.TeamID] = t
		}
		t.matches++
		if r.Won {
			t.wins++
		}
	}

	out := make([]models.TeamLeaderboardRow, 0, len(totals))
	for id, t := range totals {
		if t.matches < int64(minMatches) {
			continue
		}
		out = append(out, models.TeamLeaderboardRow{
			TeamID:        id,
			TeamName:      t.name,
			MatchesPlayed: t.matches,
			Wins:          t.wins,
			Losses:        t.matches - t.wins,
			WinRate:       round2(winRatePercent(t.wins, t.matches)),
		})
	}
	return rankTop(out,
		func(r models.TeamLeaderboardRow) float64 { return r.WinRate },
		func(r models.TeamLeaderboardRow) string { return r.TeamID },
		limit)
}

// tournamentAggregate is one grouped row of the tournament aggregation query.
type tournamentAggregate struct {
	TournamentID    string
	League          string
	Year            int
	Split           string
	TotalMatches    int64
	TotalTeams      int64
	AvgGameDuration float64
}

// TournamentLeaderboard groups matches and stat lines by tournament and
// ranks by the requested participation metric. No minimum-sample threshold
// applies here.
func (s *analyticsService) TournamentLeaderboard(ctx context.Context, req models.TournamentLeaderboardRequest) ([]models.TournamentLeaderboardRow, error) {
	b := &whereBuilder{}
	applyScopeFilter(b, req.Scope)

	query := fmt.Sprintf(`
		SELECT
			t.id,
			t.league,
			t.year,
			COALESCE(t.split, ''),
			COUNT(DISTINCT m.id)::bigint AS total_matches,
			COUNT(DISTINCT s.team_id)::bigint AS total_teams,
			COALESCE(AVG(m.game_length), 0)::float8 AS avg_game_duration
		FROM tournaments t
		LEFT JOIN matches m ON m.tournament_id = t.id
		LEFT JOIN match_player_stats s ON s.match_id = m.id
		%s
		GROUP BY t.id, t.league, t.year, t.split
	`, b.where())

	rows, err := s.pg.Query(ctx, query, b.args...)
	if err != nil {
		return nil, fmt.Errorf("tournament leaderboard query: %w", err)
	}
	defer rows.Close()

	aggs := make([]tournamentAggregate, 0)
	for rows.Next() {
		var a tournamentAggregate
		if err := rows.Scan(
			&a.TournamentID, &a.League, &a.Year, &a.Split,
			&a.TotalMatches, &a.TotalTeams, &a.AvgGameDuration,
		); err != nil {
			return nil, fmt.Errorf("tournament leaderboard scan: %w", err)
		}
		aggs = append(aggs, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("tournament leaderboard rows: %w", err)
	}

	return buildTournamentRows(aggs, req.Metric, req.Limit), nil
}

func buildTournamentRows(aggs []tournamentAggregate, metric string, limit int) []models.TournamentLeaderboardRow {
	out := make([]models.TournamentLeaderboardRow, 0, len(aggs))
	for _, a := range aggs {
		row := models.TournamentLeaderboardRow{
			TournamentID:    a.TournamentID,
			League:          a.League,
			Year:            a.Year,
			Split:           a.Split,
			Metric:          metric,
			TotalMatches:    a.TotalMatches,
			TotalTeams:      a.TotalTeams,
			AvgGameDuration: round2(a.AvgGameDuration),
		}
		switch metric {
		case MetricTotalTeams:
			row.MetricValue = float64(a.TotalTeams)
		case MetricAvgGameDuration:
			row.MetricValue = row.AvgGameDuration
		default: // total_matches
			row.MetricValue = float64(a.TotalMatches)
		}
		out = append(out, row)
	}
	return rankTop(out,
		func(r models.TournamentLeaderboardRow) float64 { return r.MetricValue },
		func(r models.TournamentLeaderboardRow) string { return r.TournamentID },
		limit)
}

// DashboardStats returns the four public entity counts. The counts are
// independent, so they run in parallel; a short Redis TTL absorbs repeated
// dashboard polling.
func (s *analyticsService) DashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	if s.redis != nil {
		if cached, err := s.redis.Get(ctx, dashboardCacheKey).Bytes(); err == nil {
			var stats models.DashboardStats
			if json.Unmarshal(cached, &stats) == nil {
				return &stats, nil
			}
		}
	}

	stats := &models.DashboardStats{}
	g, gctx := errgroup.WithContext(ctx)

	count := func(table string, dest *int64) func() error {
		return func() error {
			if err := s.pg.QueryRow(gctx, "SELECT COUNT(*) FROM "+table).Scan(dest); err != nil {
				return fmt.Errorf("count %s: %w", table, err)
			}
			return nil
		}
	}
	g.Go(count("teams", &stats.TotalTeams))
	g.Go(count("players", &stats.TotalPlayers))
	g.Go(count("tournaments", &stats.TotalTournaments))
	g.Go(count("matches", &stats.TotalMatches))

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if s.redis != nil {
		if data, err := json.Marshal(stats); err == nil {
			if err := s.redis.Set(ctx, dashboardCacheKey, data, s.dashboardTTL).Err(); err != nil {
				s.logger.Warnw("Failed to cache dashboard stats", "error", err)
			}
		}
	}

	return stats, nil
}
