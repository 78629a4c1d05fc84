package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// GetMatch returns one match with all its stat lines
// @Summary Get match
// @Tags Matches
// @Produce json
// @Param id path string true "Match ID"
// @Success 200 {object} models.MatchDetail "Match"
// @Failure 404 {object} map[string]string "Unknown match"
// @Router /matches/{id} [get]
func (h *Handler) GetMatch(w http.ResponseWriter, r *http.Request) {
	match, err := h.matches.GetMatch(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.serviceError(w, "get_match", err)
		return
	}
	h.jsonResponse(w, http.StatusOK, match)
}
