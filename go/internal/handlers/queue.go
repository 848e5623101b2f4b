package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// handleGetQueue returns the user's autodraft queue, lazily defaulted.
func (h *Handlers) handleGetQueue(w http.ResponseWriter, r *http.Request) {
	q, err := h.Queues.GetQueue(r.Context(), chi.URLParam(r, "slug"), chi.URLParam(r, "userName"))
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, QueueResponse{Queue: q})
}

// handleToggleSelection adds or removes a queued preference.
func (h *Handlers) handleToggleSelection(w http.ResponseWriter, r *http.Request) {
	var req ToggleSelectionRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}
	if req.ContestantID <= 0 {
		respondError(w, BadRequest("contestant_id is required"))
		return
	}

	q, err := h.Queues.ToggleSelection(r.Context(), chi.URLParam(r, "slug"), chi.URLParam(r, "userName"), req.ContestantID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, QueueResponse{Queue: q})
}

// handleClearQueue empties the queue.
func (h *Handlers) handleClearQueue(w http.ResponseWriter, r *http.Request) {
	q, err := h.Queues.ClearQueue(r.Context(), chi.URLParam(r, "slug"), chi.URLParam(r, "userName"))
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, QueueResponse{Queue: q})
}

// handleToggleLock flips the queue lock.
func (h *Handlers) handleToggleLock(w http.ResponseWriter, r *http.Request) {
	q, err := h.Queues.ToggleLock(r.Context(), chi.URLParam(r, "slug"), chi.URLParam(r, "userName"))
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, QueueResponse{Queue: q})
}
