package logic

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"

	"github.com/Compassionate-Cockroaches/ProjectDatabase/internal/models"
)

// PgPool defines the interface for PostgreSQL connection pool
type PgPool interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// RedisClient defines the interface for Redis client
type RedisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// AnalyticsService runs the leaderboard and dashboard aggregation queries.
type AnalyticsService interface {
	PlayerLeaderboard(ctx context.Context, req models.PlayerLeaderboardRequest) ([]models.PlayerLeaderboardRow, error)
	TeamLeaderboard(ctx context.Context, req models.TeamLeaderboardRequest) ([]models.TeamLeaderboardRow, error)
	TournamentLeaderboard(ctx context.Context, req models.TournamentLeaderboardRequest) ([]models.TournamentLeaderboardRow, error)
	DashboardStats(ctx context.Context) (*models.DashboardStats, error)
}

// PlayerService serves the public player read endpoints.
type PlayerService interface {
	ListPlayers(ctx context.Context, position, search string, offset, limit int) ([]models.Player, error)
	GetPlayer(ctx context.Context, id string) (*models.PlayerCareerStats, error)
	GetChampionStats(ctx context.Context, playerID string) ([]models.ChampionStats, error)
	GetRecentMatches(ctx context.Context, playerID string, offset, limit int) ([]models.PlayerMatchEntry, error)
}

// TeamService serves the public team read endpoints.
type TeamService interface {
	ListTeams(ctx context.Context, search string, offset, limit int) ([]models.Team, error)
	GetTeam(ctx context.Context, id string) (*models.Team, error)
}

// TournamentService serves the public tournament read endpoints.
type TournamentService interface {
	ListTournaments(ctx context.Context, f models.ScopeFilter, sortBy, sortOrder string, offset, limit int) ([]models.Tournament, error)
	GetTournament(ctx context.Context, id string) (*models.TournamentDetail, error)
	GetStandings(ctx context.Context, tournamentID string) ([]models.TeamStanding, error)
	GetMatches(ctx context.Context, tournamentID string, offset, limit int) ([]models.Match, error)
}

// MatchService serves the public match read endpoints.
type MatchService interface {
	GetMatch(ctx context.Context, id string) (*models.MatchDetail, error)
}
