package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// ListTournaments returns a page of tournaments
// @Summary List tournaments
// @Tags Tournaments
// @Produce json
// @Param year query int false "Tournament year"
// @Param league query string false "League code"
// @Param split query string false "Split"
// @Param playoffs query bool false "Playoff tournaments only"
// @Param sort_by query string false "Sort column (year, league, split)" default(year)
// @Param sort_order query string false "Sort direction (asc, desc)" default(desc)
// @Param page query int false "Page" default(1)
// @Param limit query int false "Page size" default(25)
// @Success 200 {object} map[string]interface{} "Tournaments"
// @Router /tournaments [get]
func (h *Handler) ListTournaments(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit := queryInt(r, "limit", 25, 1, 100)
	page := queryInt(r, "page", 1, 1, 1<<30)
	offset := (page - 1) * limit

	tournaments, err := h.tournaments.ListTournaments(r.Context(),
		scopeFilterFromQuery(r), q.Get("sort_by"), q.Get("sort_order"), offset, limit)
	if err != nil {
		h.serviceError(w, "list_tournaments", err)
		return
	}
	h.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"tournaments": tournaments,
		"page":        page,
	})
}

// GetTournament returns one tournament with participation counts
// @Summary Get tournament
// @Tags Tournaments
// @Produce json
// @Param id path string true "Tournament ID"
// @Success 200 {object} models.TournamentDetail "Tournament"
// @Failure 404 {object} map[string]string "Unknown tournament"
// @Router /tournaments/{id} [get]
func (h *Handler) GetTournament(w http.ResponseWriter, r *http.Request) {
	tournament, err := h.tournaments.GetTournament(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.serviceError(w, "get_tournament", err)
		return
	}
	h.jsonResponse(w, http.StatusOK, tournament)
}

// GetTournamentStandings returns the win/loss table of one tournament
// @Summary Tournament standings
// @Tags Tournaments
// @Produce json
// @Param id path string true "Tournament ID"
// @Success 200 {object} map[string]interface{} "Standings"
// @Failure 404 {object} map[string]string "Unknown tournament"
// @Router /tournaments/{id}/teams [get]
func (h *Handler) GetTournamentStandings(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	standings, err := h.tournaments.GetStandings(r.Context(), id)
	if err != nil {
		h.serviceError(w, "tournament_standings", err)
		return
	}
	h.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"tournament_id": id,
		"standings":     standings,
	})
}

// GetTournamentMatches returns a tournament's matches, oldest first
// @Summary Tournament matches
// @Tags Tournaments
// @Produce json
// @Param id path string true "Tournament ID"
// @Param page query int false "Page" default(1)
// @Param limit query int false "Page size" default(50)
// @Success 200 {object} map[string]interface{} "Matches"
// @Failure 404 {object} map[string]string "Unknown tournament"
// @Router /tournaments/{id}/matches [get]
func (h *Handler) GetTournamentMatches(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	limit := queryInt(r, "limit", 50, 1, 100)
	page := queryInt(r, "page", 1, 1, 1<<30)
	offset := (page - 1) * limit

	matches, err := h.tournaments.GetMatches(r.Context(), id, offset, limit)
	if err != nil {
		h.serviceError(w, "tournament_matches", err)
		return
	}
	h.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"tournament_id": id,
		"matches":       matches,
		"page":          page,
	})
}
