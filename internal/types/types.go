package types

import "github.com/teambuilder/draft-backend/pkg/types"

// ClientMessage is one operator intent over the wire.
//
// Types and the fields they use:
//   AddParticipant    name, tier, lanes
//   EditParticipant   participant_id, name, tier, lanes
//   RemoveParticipant participant_id
//   ImportRoster      text
//   CreateTeam        participant_id (the captain)
//   RemoveTeam        team_id
//   ReorderTeams      team_id (dragged), target_team_id
//   ToggleDraft       -
//   Pick              participant_id, team_id, slot_index (omit for first empty)
//   Undo              -
//   ClearSlot         team_id, slot_index (draft must be off)
//   ClearCaptain      team_id (draft must be off)
type ClientMessage struct {
	Type          string `json:"type"`
	ParticipantID string `json:"participant_id,omitempty"`
	TeamID        string `json:"team_id,omitempty"`
	TargetTeamID  string `json:"target_team_id,omitempty"`
	SlotIndex     *int   `json:"slot_index,omitempty"`
	Name          string `json:"name,omitempty"`
	Tier          string `json:"tier,omitempty"`
	Lanes         string `json:"lanes,omitempty"`
	Text          string `json:"text,omitempty"`
}

// ServerMessage is either a full state snapshot or an error for the client
// whose command was rejected.
type ServerMessage struct {
	Type    string           `json:"type"` // "StateSnapshot" | "Error"
	Version int              `json:"version,omitempty"`
	State   *types.RoomState `json:"state,omitempty"`
	Error   string           `json:"error,omitempty"`
}
