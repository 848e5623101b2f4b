package handlers

import (
	"github.com/castdraft/castdraft/go/internal/models"
)

// TurnResponse reports whose turn it is. Turn is null when no round is open.
type TurnResponse struct {
	Turn *TurnInfoResponse `json:"turn"`
}

// TurnInfoResponse describes the pick slot currently on the clock.
type TurnInfoResponse struct {
	RoundNumber int    `json:"round_number"`
	UserIndex   int    `json:"user_index"`
	UserName    string `json:"user_name"`
	PickNumber  int    `json:"pick_number"`
}

// GroupResponse is the group document plus the resolved turn.
type GroupResponse struct {
	Group *models.Group     `json:"group"`
	Turn  *TurnInfoResponse `json:"turn"`
}

// UndraftedResponse lists roster contestants nobody has drafted yet.
type UndraftedResponse struct {
	Contestants []models.Contestant `json:"contestants"`
}

// QueueResponse is the autodraft queue document.
type QueueResponse struct {
	Queue *models.AutodraftQueue `json:"queue"`
}

// SeasonsResponse lists all known seasons.
type SeasonsResponse struct {
	Seasons []models.Season `json:"seasons"`
}
