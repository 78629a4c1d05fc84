package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// ListTeams returns a page of teams
// @Summary List teams
// @Tags Teams
// @Produce json
// @Param search query string false "Name substring, case-insensitive"
// @Param page query int false "Page" default(1)
// @Param limit query int false "Page size" default(25)
// @Success 200 {object} map[string]interface{} "Teams"
// @Router /teams [get]
func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit", 25, 1, 100)
	page := queryInt(r, "page", 1, 1, 1<<30)
	offset := (page - 1) * limit

	teams, err := h.teams.ListTeams(r.Context(), r.URL.Query().Get("search"), offset, limit)
	if err != nil {
		h.serviceError(w, "list_teams", err)
		return
	}
	h.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"teams": teams,
		"page":  page,
	})
}

// GetTeam returns one team
// @Summary Get team
// @Tags Teams
// @Produce json
// @Param id path string true "Team ID"
// @Success 200 {object} models.Team "Team"
// @Failure 404 {object} map[string]string "Unknown team"
// @Router /teams/{id} [get]
func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	team, err := h.teams.GetTeam(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.serviceError(w, "get_team", err)
		return
	}
	h.jsonResponse(w, http.StatusOK, team)
}
