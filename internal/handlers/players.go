package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// ListPlayers returns a page of players
// @Summary List players
// @Tags Players
// @Produce json
// @Param position query string false "Exact position filter"
// @Param search query string false "Name substring, case-insensitive"
// @Param page query int false "Page" default(1)
// @Param limit query int false "Page size" default(25)
// @Success 200 {object} map[string]interface{} "Players"
// @Router /players [get]
func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit := queryInt(r, "limit", 25, 1, 100)
	page := queryInt(r, "page", 1, 1, 1<<30)
	offset := (page - 1) * limit

	players, err := h.players.ListPlayers(r.Context(), q.Get("position"), q.Get("search"), offset, limit)
	if err != nil {
		h.serviceError(w, "list_players", err)
		return
	}

	h.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"players": players,
		"page":    page,
	})
}

// GetPlayer returns one player with career totals
// @Summary Player career stats
// @Tags Players
// @Produce json
// @Param id path string true "Player ID"
// @Success 200 {object} models.PlayerCareerStats "Player"
// @Failure 404 {object} map[string]string "Unknown player"
// @Router /players/{id} [get]
func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	player, err := h.players.GetPlayer(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.serviceError(w, "get_player", err)
		return
	}
	h.jsonResponse(w, http.StatusOK, player)
}

// GetPlayerChampions returns a player's per-champion aggregates
// @Summary Player champion pool
// @Tags Players
// @Produce json
// @Param id path string true "Player ID"
// @Success 200 {object} map[string]interface{} "Champion stats"
// @Router /players/{id}/champions [get]
func (h *Handler) GetPlayerChampions(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	stats, err := h.players.GetChampionStats(r.Context(), id)
	if err != nil {
		h.serviceError(w, "player_champions", err)
		return
	}
	h.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"player_id": id,
		"champions": stats,
	})
}

// GetPlayerMatches returns a player's stat lines, newest first
// @Summary Player match history
// @Tags Players
// @Produce json
// @Param id path string true "Player ID"
// @Param page query int false "Page" default(1)
// @Param limit query int false "Page size" default(20)
// @Success 200 {object} map[string]interface{} "Match history"
// @Router /players/{id}/matches [get]
func (h *Handler) GetPlayerMatches(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	limit := queryInt(r, "limit", 20, 1, 100)
	page := queryInt(r, "page", 1, 1, 1<<30)
	offset := (page - 1) * limit

	entries, err := h.players.GetRecentMatches(r.Context(), id, offset, limit)
	if err != nil {
		h.serviceError(w, "player_matches", err)
		return
	}
	h.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"player_id": id,
		"matches":   entries,
		"page":      page,
	})
}
