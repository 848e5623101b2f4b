package handlers

import (
	"net/http"

	"github.com/castdraft/castdraft/go/internal/models"
	"github.com/go-chi/chi/v5"
)

// handleListSeasons lists all seasons.
func (h *Handlers) handleListSeasons(w http.ResponseWriter, r *http.Request) {
	seasons, err := h.Roster.ListSeasons(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	if seasons == nil {
		seasons = []models.Season{}
	}
	respondOK(w, SeasonsResponse{Seasons: seasons})
}

// handleGetSeason returns one season with its contestant roster.
func (h *Handlers) handleGetSeason(w http.ResponseWriter, r *http.Request) {
	season, err := h.Roster.GetSeason(r.Context(), chi.URLParam(r, "seasonID"))
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, season)
}
