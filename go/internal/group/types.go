package group

// CreateGroupRequest carries the inputs for creating a group. The user
// ordering is preserved as the draft rotation order.
type CreateGroupRequest struct {
	Name      string   `json:"name"`
	SeasonID  string   `json:"season_id"`
	UserNames []string `json:"user_names"`
}

// MakePickRequest carries one pick submission. UserName is the acting user,
// passed explicitly on every call rather than resolved from ambient session
// state.
type MakePickRequest struct {
	Slug         string `json:"slug"`
	UserName     string `json:"user_name"`
	ContestantID int    `json:"contestant_id"`
}
