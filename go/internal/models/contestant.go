package models

// Contestant is one draftable entity in a season roster. Immutable once
// loaded for a draft; Eliminated is season data, not draft state.
type Contestant struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Image      string `json:"image"`
	Eliminated bool   `json:"eliminated"`
}

// Season is an ordered contestant roster.
type Season struct {
	ID           string       `json:"id"`
	SeasonNumber int          `json:"season_number"`
	Name         string       `json:"name"`
	Contestants  []Contestant `json:"contestants"`
}
