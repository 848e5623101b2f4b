package handlers

import (
	"net/http"

	"github.com/castdraft/castdraft/go/internal/draft"
	"github.com/castdraft/castdraft/go/internal/group"
	"github.com/castdraft/castdraft/go/internal/models"
	"github.com/go-chi/chi/v5"
)

// handleCreateGroup creates a group from a name and member list.
func (h *Handlers) handleCreateGroup(w http.ResponseWriter, r *http.Request) {
	var req CreateGroupRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}
	if len(req.UserNames) == 0 {
		respondError(w, BadRequest("at least one user is required"))
		return
	}

	g, err := h.Groups.CreateGroup(r.Context(), group.CreateGroupRequest{
		Name:      req.Name,
		SeasonID:  req.SeasonID,
		UserNames: req.UserNames,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, groupResponse(g))
}

// handleGetGroup returns the group document and the resolved turn.
func (h *Handlers) handleGetGroup(w http.ResponseWriter, r *http.Request) {
	g, err := h.Groups.GetGroup(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, groupResponse(g))
}

// handleDeleteGroup removes a group.
func (h *Handlers) handleDeleteGroup(w http.ResponseWriter, r *http.Request) {
	if err := h.Groups.DeleteGroup(r.Context(), chi.URLParam(r, "slug")); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleResolveTurn reports whose turn it is; turn is null between rounds.
func (h *Handlers) handleResolveTurn(w http.ResponseWriter, r *http.Request) {
	turn, err := h.Groups.ResolveTurn(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, TurnResponse{Turn: turnInfoResponse(turn)})
}

// handleCreateRound opens the next draft round.
func (h *Handlers) handleCreateRound(w http.ResponseWriter, r *http.Request) {
	g, err := h.Groups.CreateRound(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, groupResponse(g))
}

// handleMakePick submits a pick for the acting user.
func (h *Handlers) handleMakePick(w http.ResponseWriter, r *http.Request) {
	var req MakePickRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}
	if req.UserName == "" || req.ContestantID <= 0 {
		respondError(w, BadRequest("user_name and contestant_id are required"))
		return
	}

	g, err := h.Groups.MakePick(r.Context(), group.MakePickRequest{
		Slug:         chi.URLParam(r, "slug"),
		UserName:     req.UserName,
		ContestantID: req.ContestantID,
	})
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, groupResponse(g))
}

// handleUndrafted lists roster contestants still available to draft.
func (h *Handlers) handleUndrafted(w http.ResponseWriter, r *http.Request) {
	contestants, err := h.Groups.UndraftedContestants(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		respondError(w, err)
		return
	}
	if contestants == nil {
		contestants = []models.Contestant{}
	}
	respondOK(w, UndraftedResponse{Contestants: contestants})
}

func groupResponse(g *models.Group) GroupResponse {
	resp := GroupResponse{Group: g}
	if turn, err := draft.ResolveTurn(g); err == nil {
		resp.Turn = turnInfoResponse(turn)
	}
	return resp
}

func turnInfoResponse(turn *draft.TurnInfo) *TurnInfoResponse {
	if turn == nil {
		return nil
	}
	return &TurnInfoResponse{
		RoundNumber: turn.Round.RoundNumber,
		UserIndex:   turn.UserIndex,
		UserName:    turn.UserName,
		PickNumber:  len(turn.Round.Picks) + 1,
	}
}
