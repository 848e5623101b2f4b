package handlers

// CreateGroupRequest is the request body for creating a group.
type CreateGroupRequest struct {
	Name      string   `json:"name"`
	SeasonID  string   `json:"season_id"`
	UserNames []string `json:"user_names"`
}

// MakePickRequest is the request body for submitting a pick. UserName is the
// acting user, carried explicitly in every request.
type MakePickRequest struct {
	UserName     string `json:"user_name"`
	ContestantID int    `json:"contestant_id"`
}

// ToggleSelectionRequest is the request body for toggling an autodraft
// queue preference.
type ToggleSelectionRequest struct {
	ContestantID int `json:"contestant_id"`
}
