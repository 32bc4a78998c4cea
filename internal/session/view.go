package session

import (
	"github.com/teambuilder/draft-backend/internal/engine"
	"github.com/teambuilder/draft-backend/pkg/types"
)

func playerView(p *engine.Participant) *types.PlayerView {
	if p == nil {
		return nil
	}
	return &types.PlayerView{
		ID:    p.ID,
		Name:  p.Name,
		Tier:  string(p.Tier),
		Lanes: engine.LanesText(p.Lanes),
	}
}

func buildRoomState(s *engine.State) types.RoomState {
	activeID := s.ActiveTeamID()

	teams := s.Roster.TeamsInOrder()
	teamViews := make([]types.TeamView, 0, len(teams))
	for _, t := range teams {
		tv := types.TeamView{
			ID:      t.ID,
			Captain: playerView(s.Directory.Get(t.CaptainID)),
			Slots:   make([]*types.PlayerView, len(t.Slots)),
			Active:  t.ID == activeID,
		}
		for i, pid := range t.Slots {
			if pid != "" {
				tv.Slots[i] = playerView(s.Directory.Get(pid))
			}
		}
		teamViews = append(teamViews, tv)
	}

	avail := s.Available()
	availViews := make([]types.PlayerView, 0, len(avail))
	for _, p := range avail {
		availViews = append(availViews, *playerView(p))
	}

	return types.RoomState{
		DraftActive:    s.IsDraftActive(),
		Turn:           s.Draft.Turn,
		ActiveTeamID:   activeID,
		HighlightCount: s.ActiveHighlightCount(),
		LastPickedID:   s.Draft.LastPicked,
		Teams:          teamViews,
		Available:      availViews,
	}
}
