package handlers

import (
	"net/http"

	"github.com/Compassionate-Cockroaches/ProjectDatabase/internal/logic"
	"github.com/Compassionate-Cockroaches/ProjectDatabase/internal/models"
)

const (
	defaultLeaderboardLimit = 10
	defaultMinSample        = 5
)

// scopeFilterFromQuery reads the dataset-scope parameters shared by every
// leaderboard endpoint.
func scopeFilterFromQuery(r *http.Request) models.ScopeFilter {
	q := r.URL.Query()
	return models.ScopeFilter{
		Year:     queryIntPtr(r, "year"),
		League:   q.Get("league"),
		Split:    q.Get("split"),
		Playoffs: queryBoolPtr(r, "playoffs"),
		Patch:    q.Get("patch"),
	}
}

// GetPlayerLeaderboard returns ranked players by a derived metric
// @Summary Player leaderboard
// @Description Rank players by kda, dpm, cspm, vision or winrate over the filtered dataset
// @Tags Analytics
// @Produce json
// @Param metric query string false "Metric (kda, dpm, cspm, vision, winrate)" default(kda)
// @Param year query int false "Tournament year"
// @Param league query string false "League code (e.g. LCK)"
// @Param split query string false "Split (Spring, Summer)"
// @Param playoffs query bool false "Playoff games only"
// @Param patch query string false "Game patch"
// @Param position query string false "Player position"
// @Param champion query string false "Champion name"
// @Param side query string false "Side (Blue, Red)"
// @Param limit query int false "Rows to return" default(10)
// @Param min_games query int false "Minimum games played" default(5)
// @Success 200 {object} map[string]interface{} "Leaderboard rows"
// @Failure 400 {object} map[string]string "Invalid parameters"
// @Failure 500 {object} map[string]string "Internal error"
// @Router /analytics/leaderboard/players [get]
func (h *Handler) GetPlayerLeaderboard(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	metric := q.Get("metric")
	if metric == "" {
		metric = logic.MetricKDA
	}

	req := models.PlayerLeaderboardRequest{
		Metric: metric,
		Scope:  scopeFilterFromQuery(r),
		Player: models.PlayerFilter{
			Position: q.Get("position"),
			Champion: q.Get("champion"),
			Side:     q.Get("side"),
		},
		Limit:    queryInt(r, "limit", defaultLeaderboardLimit, 1, 100),
		MinGames: queryInt(r, "min_games", defaultMinSample, 1, 100),
	}

	if err := h.validator.Struct(req); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Invalid metric: "+metric)
		return
	}

	rows, err := h.analytics.PlayerLeaderboard(r.Context(), req)
	if err != nil {
		h.serviceError(w, "player_leaderboard", err)
		return
	}

	h.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"metric":      req.Metric,
		"leaderboard": rows,
	})
}

// GetTeamLeaderboard returns teams ranked by win rate
// @Summary Team leaderboard
// @Description Rank teams by win rate, derived per match before aggregation
// @Tags Analytics
// @Produce json
// @Param year query int false "Tournament year"
// @Param league query string false "League code"
// @Param split query string false "Split"
// @Param playoffs query bool false "Playoff games only"
// @Param patch query string false "Game patch"
// @Param limit query int false "Rows to return" default(10)
// @Param min_matches query int false "Minimum matches played" default(5)
// @Success 200 {object} map[string]interface{} "Leaderboard rows"
// @Failure 500 {object} map[string]string "Internal error"
// @Router /analytics/leaderboard/teams [get]
func (h *Handler) GetTeamLeaderboard(w http.ResponseWriter, r *http.Request) {
	req := models.TeamLeaderboardRequest{
		Scope:      scopeFilterFromQuery(r),
		Limit:      queryInt(r, "limit", defaultLeaderboardLimit, 1, 100),
		MinMatches: queryInt(r, "min_matches", defaultMinSample, 1, 100),
	}

	rows, err := h.analytics.TeamLeaderboard(r.Context(), req)
	if err != nil {
		h.serviceError(w, "team_leaderboard", err)
		return
	}

	h.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"metric":      "win_rate",
		"leaderboard": rows,
	})
}

// GetTournamentLeaderboard returns tournaments ranked by a participation metric
// @Summary Tournament leaderboard
// @Description Rank tournaments by total_matches, total_teams or avg_game_duration
// @Tags Analytics
// @Produce json
// @Param metric query string false "Metric (total_matches, total_teams, avg_game_duration)" default(total_matches)
// @Param year query int false "Tournament year"
// @Param league query string false "League code"
// @Param split query string false "Split"
// @Param playoffs query bool false "Playoff tournaments only"
// @Param limit query int false "Rows to return" default(10)
// @Success 200 {object} map[string]interface{} "Leaderboard rows"
// @Failure 400 {object} map[string]string "Invalid parameters"
// @Failure 500 {object} map[string]string "Internal error"
// @Router /analytics/leaderboard/tournaments [get]
func (h *Handler) GetTournamentLeaderboard(w http.ResponseWriter, r *http.Request) {
	metric := r.URL.Query().Get("metric")
	if metric == "" {
		metric = logic.MetricTotalMatches
	}

	req := models.TournamentLeaderboardRequest{
		Metric: metric,
		Scope:  scopeFilterFromQuery(r),
		Limit:  queryInt(r, "limit", defaultLeaderboardLimit, 1, 100),
	}

	if err := h.validator.Struct(req); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Invalid metric: "+metric)
		return
	}

	rows, err := h.analytics.TournamentLeaderboard(r.Context(), req)
	if err != nil {
		h.serviceError(w, "tournament_leaderboard", err)
		return
	}

	h.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"metric":      req.Metric,
		"leaderboard": rows,
	})
}

// GetDashboard returns the entity counts shown on the landing dashboard
// @Summary Dashboard stats
// @Description Total teams, players, tournaments and matches on record
// @Tags Analytics
// @Produce json
// @Success 200 {object} models.DashboardStats "Counts"
// @Failure 500 {object} map[string]string "Internal error"
// @Router /analytics/dashboard [get]
func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := h.analytics.DashboardStats(r.Context())
	if err != nil {
		h.serviceError(w, "dashboard", err)
		return
	}
	h.jsonResponse(w, http.StatusOK, stats)
}
