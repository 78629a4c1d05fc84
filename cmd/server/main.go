package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Compassionate-Cockroaches/ProjectDatabase/internal/config"
	"github.com/Compassionate-Cockroaches/ProjectDatabase/internal/handlers"
	"github.com/Compassionate-Cockroaches/ProjectDatabase/internal/logic"
)

func main() {
	// Local development convenience; production sets real env vars.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	var logger *zap.Logger
	if cfg.Env == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.PostgresURL)
	if err != nil {
		sugar.Fatalw("Failed to create postgres pool", "error", err)
	}
	defer pool.Close()
	if err := pool.Ping(ctx); err != nil {
		sugar.Fatalw("Failed to ping postgres", "error", err)
	}

	redisOpts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		sugar.Fatalw("Invalid redis URL", "error", err)
	}
	redisClient := redis.NewClient(redisOpts)
	defer redisClient.Close()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		sugar.Fatalw("Failed to ping redis", "error", err)
	}

	h := handlers.New(handlers.Config{
		Postgres:      pool,
		Redis:         redisClient,
		Logger:        logger,
		Analytics:     logic.NewAnalyticsService(pool, redisClient, sugar, cfg.DashboardCacheTTL),
		Players:       logic.NewPlayerService(pool, sugar),
		Teams:         logic.NewTeamService(pool, sugar),
		Tournaments:   logic.NewTournamentService(pool, sugar),
		Matches:       logic.NewMatchService(pool, sugar),
		TokenCacheTTL: cfg.TokenCacheTTL,
	})

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(handlers.MetricsMiddleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Analyst-Token"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Route("/analytics", func(r chi.Router) {
			r.Use(h.AnalystAuthMiddleware)
			r.Get("/dashboard", h.GetDashboard)
			r.Get("/leaderboard/players", h.GetPlayerLeaderboard)
			r.Get("/leaderboard/teams", h.GetTeamLeaderboard)
			r.Get("/leaderboard/tournaments", h.GetTournamentLeaderboard)
		})

		r.Route("/players", func(r chi.Router) {
			r.Get("/", h.ListPlayers)
			r.Get("/{id}", h.GetPlayer)
			r.Get("/{id}/champions", h.GetPlayerChampions)
			r.Get("/{id}/matches", h.GetPlayerMatches)
		})

		r.Route("/teams", func(r chi.Router) {
			r.Get("/", h.ListTeams)
			r.Get("/{id}", h.GetTeam)
		})

		r.Route("/tournaments", func(r chi.Router) {
			r.Get("/", h.ListTournaments)
			r.Get("/{id}", h.GetTournament)
			r.Get("/{id}/teams", h.GetTournamentStandings)
			r.Get("/{id}/matches", h.GetTournamentMatches)
		})

		r.Get("/matches/{id}", h.GetMatch)
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	go func() {
		sugar.Infow("Starting server", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			sugar.Fatalw("Server failed", "error", err)
		}
	}()

	<-ctx.Done()
	sugar.Infow("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		sugar.Errorw("Graceful shutdown failed", "error", err)
	}
}
