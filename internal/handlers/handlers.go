package handlers

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Compassionate-Cockroaches/ProjectDatabase/internal/logic"
)

type Config struct {
	Postgres *pgxpool.Pool
	Redis    *redis.Client
	Logger   *zap.Logger
	// Services
	Analytics   logic.AnalyticsService
	Players     logic.PlayerService
	Teams       logic.TeamService
	Tournaments logic.TournamentService
	Matches     logic.MatchService
	// TokenCacheTTL bounds how long a validated analyst token is served
	// from Redis before the database is consulted again.
	TokenCacheTTL time.Duration
}

type Handler struct {
	pg            *pgxpool.Pool
	redis         *redis.Client
	logger        *zap.SugaredLogger
	validator     *validator.Validate
	analytics     logic.AnalyticsService
	players       logic.PlayerService
	teams         logic.TeamService
	tournaments   logic.TournamentService
	matches       logic.MatchService
	tokenCacheTTL time.Duration
}

func New(cfg Config) *Handler {
	return &Handler{
		pg:            cfg.Postgres,
		redis:         cfg.Redis,
		logger:        cfg.Logger.Sugar(),
		validator:     validator.New(),
		analytics:     cfg.Analytics,
		players:       cfg.Players,
		teams:         cfg.Teams,
		tournaments:   cfg.Tournaments,
		matches:       cfg.Matches,
		tokenCacheTTL: cfg.TokenCacheTTL,
	}
}
