package types

// PlayerView is one participant as rendered to clients.
type PlayerView struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Tier  string `json:"tier"`
	Lanes string `json:"lanes"`
}

// TeamView is one team in pick order. Slots align with member slot indices;
// nil marks an empty slot.
type TeamView struct {
	ID      string        `json:"id"`
	Captain *PlayerView   `json:"captain,omitempty"`
	Slots   []*PlayerView `json:"slots"`
	Active  bool          `json:"active"`
}

// RoomState is the full view broadcast after every accepted command. Clients
// re-render from it wholesale; there are no deltas.
type RoomState struct {
	DraftActive    bool         `json:"draft_active"`
	Turn           int          `json:"turn"`
	ActiveTeamID   string       `json:"active_team_id,omitempty"`
	HighlightCount int          `json:"highlight_count"`
	LastPickedID   string       `json:"last_picked_id,omitempty"`
	Teams          []TeamView   `json:"teams"`
	Available      []PlayerView `json:"available"`
}
