package logic

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Compassionate-Cockroaches/ProjectDatabase/internal/models"
)

type mockRedis struct {
	getVal  string
	getErr  error
	setKeys []string
}

func (m *mockRedis) Get(ctx context.Context, key string) *redis.StringCmd {
	cmd := redis.NewStringCmd(ctx)
	if m.getErr != nil {
		cmd.SetErr(m.getErr)
	} else {
		cmd.SetVal(m.getVal)
	}
	return cmd
}

func (m *mockRedis) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	m.setKeys = append(m.setKeys, key)
	return redis.NewStatusResult("OK", nil)
}

func testLogger() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}

// Stage-one fixture: one row per (team, match) with the derived win flag.
func teamResultRows(teamID, teamName string, matches, wins int) [][]any {
	rows := make([][]any, 0, matches)
	for i := 0; i < matches; i++ {
		rows = append(rows, []any{teamID, teamName, teamID + "-m" + string(rune('a'+i)), i < wins})
	}
	return rows
}

func TestTeamLeaderboard(t *testing.T) {
	var capturedSQL string
	data := make([][]any, 0)
	data = append(data, teamResultRows("team-a", "T1", 10, 7)...)
	data = append(data, teamResultRows("team-b", "Gen.G", 10, 3)...)
	data = append(data, teamResultRows("team-c", "Sandbox", 4, 4)...)

	pool := &mockPool{
		queryFn: func(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
			capturedSQL = sql
			return &mockRows{data: data}, nil
		},
	}
	svc := NewAnalyticsService(pool, nil, testLogger(), time.Minute)

	rows, err := svc.TeamLeaderboard(context.Background(), models.TeamLeaderboardRequest{
		Limit:      10,
		MinMatches: 5,
	})
	if err != nil {
		t.Fatalf("TeamLeaderboard() error = %v", err)
	}

	if !strings.Contains(capturedSQL, ">= 3") {
		t.Errorf("stage-one query missing majority threshold: %s", capturedSQL)
	}
	if !strings.Contains(capturedSQL, "GROUP BY tm.id, tm.team_name, s.match_id") {
		t.Errorf("stage-one query not grouped per match: %s", capturedSQL)
	}

	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2 (min_matches should drop the 4-match team)", len(rows))
	}
	top := rows[0]
	if top.TeamName != "T1" || top.MatchesPlayed != 10 || top.Wins != 7 || top.Losses != 3 {
		t.Errorf("top row = %+v, want T1 with 10 matches, 7 wins, 3 losses", top)
	}
	if top.WinRate != 70.0 {
		t.Errorf("top win rate = %v, want 70.0", top.WinRate)
	}
	if rows[1].TeamName != "Gen.G" || rows[1].WinRate != 30.0 {
		t.Errorf("second row = %+v, want Gen.G at 30.0", rows[1])
	}
}

// Ten stat lines per team per match must still count as one match. A naive
// aggregation that divides raw row counts would report ten times the
// matches and a wildly wrong rate.
func TestAggregateTeamResultsCountsMatchesNotStatLines(t *testing.T) {
	results := make([]teamMatchResult, 0)
	for i := 0; i < 10; i++ {
		results = append(results, teamMatchResult{
			TeamID: "team-a", TeamName: "T1",
			MatchID: "m" + string(rune('a'+i)),
			Won:     i < 7,
		})
	}
	rows := aggregateTeamResults(results, 5, 10)
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	r := rows[0]
	if r.MatchesPlayed != 10 || r.Wins != 7 || r.Losses != 3 || r.WinRate != 70.0 {
		t.Errorf("aggregate = %+v, want 10 played, 7 wins, 3 losses, 70.0", r)
	}
}

func TestBuildPlayerRows(t *testing.T) {
	aggs := []playerAggregate{
		{PlayerID: "p1", PlayerName: "Faker", Position: "Mid", GamesPlayed: 20,
			Kills: 80, Deaths: 0, Assists: 220, AvgDPM: 560.5, WinRatio: 0.75},
		{PlayerID: "p2", PlayerName: "Chovy", Position: "Mid", GamesPlayed: 18,
			Kills: 90, Deaths: 30, Assists: 120, AvgDPM: 610.2, WinRatio: 0.5},
	}

	t.Run("kda with zero deaths divides by one", func(t *testing.T) {
		rows := buildPlayerRows(aggs, MetricKDA, 10)
		if rows[0].PlayerName != "Faker" {
			t.Fatalf("top player = %s, want Faker", rows[0].PlayerName)
		}
		if rows[0].MetricValue != 300.0 {
			t.Errorf("deathless KDA = %v, want (80+220)/1 = 300.0", rows[0].MetricValue)
		}
		if rows[1].MetricValue != 7.0 {
			t.Errorf("second KDA = %v, want (90+120)/30 = 7.0", rows[1].MetricValue)
		}
	})

	t.Run("winrate scales ratio to percent", func(t *testing.T) {
		rows := buildPlayerRows(aggs, MetricWinRate, 10)
		if rows[0].MetricValue != 75.0 {
			t.Errorf("top winrate = %v, want 75.0", rows[0].MetricValue)
		}
	})

	t.Run("dpm reorders and keeps totals", func(t *testing.T) {
		rows := buildPlayerRows(aggs, MetricDPM, 10)
		if rows[0].PlayerName != "Chovy" || rows[0].MetricValue != 610.2 {
			t.Errorf("top dpm row = %+v, want Chovy at 610.2", rows[0])
		}
		if rows[0].TotalKills != 90 || rows[0].TotalDeaths != 30 || rows[0].TotalAssists != 120 {
			t.Errorf("totals not carried on metric rows: %+v", rows[0])
		}
	})

	t.Run("limit truncates", func(t *testing.T) {
		rows := buildPlayerRows(aggs, MetricKDA, 1)
		if len(rows) != 1 {
			t.Errorf("got %d rows, want 1", len(rows))
		}
	})
}

func TestPlayerLeaderboard(t *testing.T) {
	var capturedSQL string
	var capturedArgs []any
	pool := &mockPool{
		queryFn: func(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
			capturedSQL = sql
			capturedArgs = args
			return &mockRows{data: [][]any{
				{"p1", "Faker", "Mid", int64(20), int64(80), int64(40), int64(220), 520.0, 8.9, 45.2, 0.75},
			}}, nil
		},
	}
	svc := NewAnalyticsService(pool, nil, testLogger(), time.Minute)

	year := 2024
	rows, err := svc.PlayerLeaderboard(context.Background(), models.PlayerLeaderboardRequest{
		Metric:   MetricKDA,
		Scope:    models.ScopeFilter{Year: &year, League: "LCK"},
		Limit:    10,
		MinGames: 5,
	})
	if err != nil {
		t.Fatalf("PlayerLeaderboard() error = %v", err)
	}

	// Two scope args, then the HAVING threshold.
	if !strings.Contains(capturedSQL, "HAVING COUNT(DISTINCT s.match_id) >= $3") {
		t.Errorf("HAVING ordinal wrong after two filters: %s", capturedSQL)
	}
	if len(capturedArgs) != 3 || capturedArgs[2] != 5 {
		t.Errorf("args = %v, want [2024 LCK 5]", capturedArgs)
	}

	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	if rows[0].MetricValue != 7.5 {
		t.Errorf("kda = %v, want (80+220)/40 = 7.5", rows[0].MetricValue)
	}
	if rows[0].Metric != MetricKDA || rows[0].GamesPlayed != 20 {
		t.Errorf("row = %+v", rows[0])
	}
}

func TestPlayerLeaderboardQueryError(t *testing.T) {
	pool := &mockPool{
		queryFn: func(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
			return nil, errors.New("db down")
		},
	}
	svc := NewAnalyticsService(pool, nil, testLogger(), time.Minute)
	if _, err := svc.PlayerLeaderboard(context.Background(), models.PlayerLeaderboardRequest{
		Metric: MetricKDA, Limit: 10, MinGames: 5,
	}); err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestBuildTournamentRows(t *testing.T) {
	aggs := []tournamentAggregate{
		{TournamentID: "t1", League: "LCK", Year: 2024, Split: "Spring",
			TotalMatches: 90, TotalTeams: 10, AvgGameDuration: 1930.456},
		{TournamentID: "t2", League: "LEC", Year: 2024, Split: "Spring",
			TotalMatches: 70, TotalTeams: 12, AvgGameDuration: 2010.0},
	}

	rows := buildTournamentRows(aggs, MetricTotalMatches, 10)
	if rows[0].TournamentID != "t1" || rows[0].MetricValue != 90 {
		t.Errorf("total_matches top = %+v, want t1 at 90", rows[0])
	}

	rows = buildTournamentRows(aggs, MetricTotalTeams, 10)
	if rows[0].TournamentID != "t2" || rows[0].MetricValue != 12 {
		t.Errorf("total_teams top = %+v, want t2 at 12", rows[0])
	}

	rows = buildTournamentRows(aggs, MetricAvgGameDuration, 10)
	if rows[0].TournamentID != "t2" {
		t.Errorf("avg_game_duration top = %+v, want t2", rows[0])
	}
	if rows[1].AvgGameDuration != 1930.46 {
		t.Errorf("duration = %v, want 1930.46", rows[1].AvgGameDuration)
	}
}

func TestDashboardStats(t *testing.T) {
	pool := &mockPool{
		queryRowFn: func(ctx context.Context, sql string, args ...any) pgx.Row {
			switch {
			case strings.Contains(sql, "FROM teams"):
				return &mockRow{vals: []any{int64(40)}}
			case strings.Contains(sql, "FROM players"):
				return &mockRow{vals: []any{int64(200)}}
			case strings.Contains(sql, "FROM tournaments"):
				return &mockRow{vals: []any{int64(12)}}
			default:
				return &mockRow{vals: []any{int64(900)}}
			}
		},
	}
	cache := &mockRedis{getErr: redis.Nil}
	svc := NewAnalyticsService(pool, cache, testLogger(), time.Minute)

	stats, err := svc.DashboardStats(context.Background())
	if err != nil {
		t.Fatalf("DashboardStats() error = %v", err)
	}
	want := models.DashboardStats{TotalTeams: 40, TotalPlayers: 200, TotalTournaments: 12, TotalMatches: 900}
	if *stats != want {
		t.Errorf("stats = %+v, want %+v", *stats, want)
	}
	if len(cache.setKeys) != 1 || cache.setKeys[0] != dashboardCacheKey {
		t.Errorf("cache writes = %v, want one write to %s", cache.setKeys, dashboardCacheKey)
	}
}

func TestDashboardStatsCacheHit(t *testing.T) {
	cached, _ := json.Marshal(models.DashboardStats{TotalTeams: 3, TotalPlayers: 15, TotalTournaments: 1, TotalMatches: 20})
	var dbHits int32
	pool := &mockPool{
		queryRowFn: func(ctx context.Context, sql string, args ...any) pgx.Row {
			atomic.AddInt32(&dbHits, 1)
			return &mockRow{vals: []any{int64(0)}}
		},
	}
	cache := &mockRedis{getVal: string(cached)}
	svc := NewAnalyticsService(pool, cache, testLogger(), time.Minute)

	stats, err := svc.DashboardStats(context.Background())
	if err != nil {
		t.Fatalf("DashboardStats() error = %v", err)
	}
	if stats.TotalMatches != 20 || stats.TotalPlayers != 15 {
		t.Errorf("stats = %+v, want cached values", *stats)
	}
	if n := atomic.LoadInt32(&dbHits); n != 0 {
		t.Errorf("database hit %d times despite cached dashboard", n)
	}
}

func TestDashboardStatsEmptyStore(t *testing.T) {
	pool := &mockPool{
		queryRowFn: func(ctx context.Context, sql string, args ...any) pgx.Row {
			return &mockRow{vals: []any{int64(0)}}
		},
	}
	svc := NewAnalyticsService(pool, nil, testLogger(), time.Minute)

	stats, err := svc.DashboardStats(context.Background())
	if err != nil {
		t.Fatalf("DashboardStats() error = %v", err)
	}
	if *stats != (models.DashboardStats{}) {
		t.Errorf("stats = %+v, want all zeros", *stats)
	}
}
