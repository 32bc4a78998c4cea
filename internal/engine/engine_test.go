package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addParticipant(t *testing.T, s *State, name, tier, lanes string) *Participant {
	t.Helper()
	require.NoError(t, s.Apply(Command{Type: CmdAddParticipant, Name: name, Tier: tier, Lanes: lanes}))
	return s.Directory.participants[0]
}

func createTeam(t *testing.T, s *State, captain *Participant) *Team {
	t.Helper()
	require.NoError(t, s.Apply(Command{Type: CmdCreateTeam, ParticipantID: captain.ID}))
	teams := s.Roster.TeamsInOrder()
	return teams[len(teams)-1]
}

// pickNext places the participant into the active team's first empty slot.
func pickNext(t *testing.T, s *State, pid string) {
	t.Helper()
	require.NoError(t, s.Apply(Command{Type: CmdPick, ParticipantID: pid, TeamID: s.ActiveTeamID(), SlotIndex: -1}))
}

func TestAddParticipantRequiresName(t *testing.T) {
	s := NewState(4)
	err := s.Apply(Command{Type: CmdAddParticipant, Name: "   ", Tier: "gold"})
	require.ErrorIs(t, err, ErrEmptyName)
	assert.Equal(t, 0, s.Directory.Len())
}

func TestAvailabilityOrdering(t *testing.T) {
	s := NewState(4)
	addParticipant(t, s, "beta", "gold", "top")
	addParticipant(t, s, "alpha", "gold", "mid")
	addParticipant(t, s, "low", "xyz", "")
	addParticipant(t, s, "best", "챌", "all")

	names := make([]string, 0, 4)
	for _, p := range s.Available() {
		names = append(names, p.Name)
	}
	// Tier descending, name ties lexically, unknown tier dead last.
	assert.Equal(t, []string{"best", "alpha", "beta", "low"}, names)
}

func TestAvailabilityExcludesPlaced(t *testing.T) {
	s := NewState(4)
	cap1 := addParticipant(t, s, "captain", "diamond", "jgl")
	free := addParticipant(t, s, "free", "silver", "")
	createTeam(t, s, cap1)

	avail := s.Available()
	require.Len(t, avail, 1)
	assert.Equal(t, free.ID, avail[0].ID)
}

func TestRemoveParticipantWhilePlacedIsNoOp(t *testing.T) {
	s := NewState(4)
	cap1 := addParticipant(t, s, "captain", "gold", "")
	createTeam(t, s, cap1)

	require.NoError(t, s.Apply(Command{Type: CmdRemoveParticipant, ParticipantID: cap1.ID}))
	assert.NotNil(t, s.Directory.Get(cap1.ID), "placed participant must survive removal")
	assert.True(t, s.Roster.IsPlaced(cap1.ID))
}

func TestRemoveParticipantUnknownID(t *testing.T) {
	s := NewState(4)
	err := s.Apply(Command{Type: CmdRemoveParticipant, ParticipantID: "nope"})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestEditParticipantKeepsPlacement(t *testing.T) {
	s := NewState(4)
	cap1 := addParticipant(t, s, "before", "gold", "top")
	createTeam(t, s, cap1)

	require.NoError(t, s.Apply(Command{
		Type: CmdEditParticipant, ParticipantID: cap1.ID,
		Name: "after", Tier: "플레", Lanes: "mid",
	}))
	p := s.Directory.Get(cap1.ID)
	assert.Equal(t, "after", p.Name)
	assert.Equal(t, TierPlatinum, p.Tier)
	assert.Equal(t, []Lane{LaneMid}, p.Lanes)
	assert.True(t, s.Roster.IsPlaced(cap1.ID))
}

func TestCreateTeamRejectsPlacedCaptain(t *testing.T) {
	s := NewState(4)
	cap1 := addParticipant(t, s, "cap1", "gold", "")
	member := addParticipant(t, s, "member", "gold", "")
	team := createTeam(t, s, cap1)
	require.NoError(t, s.Roster.PlaceMember(team.ID, -1, member.ID))

	require.ErrorIs(t, s.Apply(Command{Type: CmdCreateTeam, ParticipantID: member.ID}), ErrAlreadyPlaced)
	require.ErrorIs(t, s.Apply(Command{Type: CmdCreateTeam, ParticipantID: cap1.ID}), ErrAlreadyPlaced)
	assert.Equal(t, 1, s.Roster.TeamCount())
}

func TestGlobalUniquenessOfPlacement(t *testing.T) {
	s := NewState(4)
	cap1 := addParticipant(t, s, "cap1", "gold", "")
	cap2 := addParticipant(t, s, "cap2", "gold", "")
	p := addParticipant(t, s, "player", "gold", "")
	t1 := createTeam(t, s, cap1)
	t2 := createTeam(t, s, cap2)

	require.NoError(t, s.Roster.PlaceMember(t1.ID, 0, p.ID))
	require.ErrorIs(t, s.Roster.PlaceMember(t2.ID, 0, p.ID), ErrAlreadyPlaced)
	require.ErrorIs(t, s.Roster.PlaceMember(t1.ID, 1, p.ID), ErrAlreadyPlaced)
	require.ErrorIs(t, s.Roster.PlaceCaptain(t2.ID, p.ID), ErrAlreadyPlaced)

	count := 0
	for _, team := range s.Roster.TeamsInOrder() {
		if team.CaptainID == p.ID {
			count++
		}
		for _, pid := range team.Slots {
			if pid == p.ID {
				count++
			}
		}
	}
	assert.Equal(t, 1, count)
}

func TestToggleDraftRefusesWithoutTeams(t *testing.T) {
	s := NewState(4)
	require.ErrorIs(t, s.Apply(Command{Type: CmdToggleDraft}), ErrNoTeams)
	assert.False(t, s.IsDraftActive())
}

func TestPickRequiresActiveDraft(t *testing.T) {
	s := NewState(4)
	cap1 := addParticipant(t, s, "cap1", "gold", "")
	p := addParticipant(t, s, "player", "gold", "")
	team := createTeam(t, s, cap1)

	err := s.Apply(Command{Type: CmdPick, ParticipantID: p.ID, TeamID: team.ID, SlotIndex: -1})
	require.ErrorIs(t, err, ErrDraftInactive)
}

func TestPickOutOfTurn(t *testing.T) {
	s := NewState(4)
	cap1 := addParticipant(t, s, "cap1", "gold", "")
	cap2 := addParticipant(t, s, "cap2", "gold", "")
	p := addParticipant(t, s, "player", "gold", "")
	createTeam(t, s, cap1)
	t2 := createTeam(t, s, cap2)
	require.NoError(t, s.Apply(Command{Type: CmdToggleDraft}))

	// Turn 0 belongs to the first team in order.
	err := s.Apply(Command{Type: CmdPick, ParticipantID: p.ID, TeamID: t2.ID, SlotIndex: -1})
	require.ErrorIs(t, err, ErrOutOfTurn)
	assert.Equal(t, 0, s.Draft.Turn)
	assert.Equal(t, 0, s.Draft.history.len())
}

func TestFailedPickLeavesNoHistoryEntry(t *testing.T) {
	s := NewState(4)
	cap1 := addParticipant(t, s, "cap1", "gold", "")
	p1 := addParticipant(t, s, "p1", "gold", "")
	p2 := addParticipant(t, s, "p2", "gold", "")
	team := createTeam(t, s, cap1)
	require.NoError(t, s.Apply(Command{Type: CmdToggleDraft}))

	require.NoError(t, s.Apply(Command{Type: CmdPick, ParticipantID: p1.ID, TeamID: team.ID, SlotIndex: 0}))
	require.Equal(t, 1, s.Draft.history.len())

	err := s.Apply(Command{Type: CmdPick, ParticipantID: p2.ID, TeamID: team.ID, SlotIndex: 0})
	require.ErrorIs(t, err, ErrSlotOccupied)
	assert.Equal(t, 1, s.Draft.history.len(), "stack must never record a no-op")
	assert.Equal(t, 1, s.Draft.Turn)
	assert.Equal(t, p1.ID, s.Draft.LastPicked)
}

func TestUndoExactness(t *testing.T) {
	s := NewState(4)
	cap1 := addParticipant(t, s, "cap1", "gold", "")
	p1 := addParticipant(t, s, "p1", "gold", "")
	p2 := addParticipant(t, s, "p2", "gold", "")
	team := createTeam(t, s, cap1)
	require.NoError(t, s.Apply(Command{Type: CmdToggleDraft}))
	pickNext(t, s, p1.ID)

	turnBefore := s.Draft.Turn
	lastBefore := s.Draft.LastPicked
	slotsBefore := append([]string(nil), s.Roster.Team(team.ID).Slots...)

	pickNext(t, s, p2.ID)
	require.NoError(t, s.Apply(Command{Type: CmdUndo}))

	assert.Equal(t, turnBefore, s.Draft.Turn)
	assert.Equal(t, lastBefore, s.Draft.LastPicked)
	assert.Equal(t, slotsBefore, s.Roster.Team(team.ID).Slots)
}

func TestUndoWithEmptyHistory(t *testing.T) {
	s := NewState(4)
	require.ErrorIs(t, s.Apply(Command{Type: CmdUndo}), ErrEmptyHistory)
}

func TestUndoHardlock(t *testing.T) {
	s := NewState(4)
	cap1 := addParticipant(t, s, "cap1", "gold", "")
	p1 := addParticipant(t, s, "p1", "gold", "")
	p2 := addParticipant(t, s, "p2", "gold", "")
	team := createTeam(t, s, cap1)
	require.NoError(t, s.Apply(Command{Type: CmdToggleDraft}))

	pickNext(t, s, p1.ID)
	pickNext(t, s, p2.ID)

	// Direct clears are forbidden while the draft runs, even for P1's slot.
	require.ErrorIs(t, s.Apply(Command{Type: CmdClearSlot, TeamID: team.ID, SlotIndex: 0}), ErrDraftActive)
	assert.False(t, s.CanUndo(p1.ID))
	assert.True(t, s.CanUndo(p2.ID))

	// Undo reverses P2; P1 becomes the reversible pick.
	require.NoError(t, s.Apply(Command{Type: CmdUndo}))
	assert.Equal(t, p1.ID, s.Draft.LastPicked)
	assert.True(t, s.CanUndo(p1.ID))
	assert.False(t, s.Roster.IsPlaced(p2.ID))

	require.NoError(t, s.Apply(Command{Type: CmdUndo}))
	assert.False(t, s.Roster.IsPlaced(p1.ID))
	assert.Equal(t, "", s.Draft.LastPicked)
}

func TestClearSlotWhileIdle(t *testing.T) {
	s := NewState(4)
	cap1 := addParticipant(t, s, "cap1", "gold", "")
	p1 := addParticipant(t, s, "p1", "gold", "")
	team := createTeam(t, s, cap1)
	require.NoError(t, s.Roster.PlaceMember(team.ID, 0, p1.ID))

	require.NoError(t, s.Apply(Command{Type: CmdClearSlot, TeamID: team.ID, SlotIndex: 0}))
	assert.False(t, s.Roster.IsPlaced(p1.ID))

	require.NoError(t, s.Apply(Command{Type: CmdClearCaptain, TeamID: team.ID}))
	assert.False(t, s.Roster.IsPlaced(cap1.ID))
}

func TestReorderTeamsResetsTurnWhileActive(t *testing.T) {
	s := NewState(4)
	cap1 := addParticipant(t, s, "cap1", "gold", "")
	cap2 := addParticipant(t, s, "cap2", "gold", "")
	p1 := addParticipant(t, s, "p1", "gold", "")
	t1 := createTeam(t, s, cap1)
	t2 := createTeam(t, s, cap2)
	require.NoError(t, s.Apply(Command{Type: CmdToggleDraft}))
	pickNext(t, s, p1.ID)
	require.Equal(t, 1, s.Draft.Turn)

	require.NoError(t, s.Apply(Command{Type: CmdReorderTeams, TeamID: t2.ID, TargetTeamID: t1.ID}))
	assert.Equal(t, 0, s.Draft.Turn)
	teams := s.Roster.TeamsInOrder()
	assert.Equal(t, t2.ID, teams[0].ID)
	assert.Equal(t, t1.ID, teams[1].ID)
}

func TestRemoveTeamWhileActive(t *testing.T) {
	s := NewState(4)
	cap1 := addParticipant(t, s, "cap1", "gold", "")
	cap2 := addParticipant(t, s, "cap2", "gold", "")
	p1 := addParticipant(t, s, "p1", "gold", "")
	t1 := createTeam(t, s, cap1)
	t2 := createTeam(t, s, cap2)
	require.NoError(t, s.Apply(Command{Type: CmdToggleDraft}))
	pickNext(t, s, p1.ID)

	require.NoError(t, s.Apply(Command{Type: CmdRemoveTeam, TeamID: t2.ID}))
	assert.True(t, s.IsDraftActive())
	assert.Equal(t, 0, s.Draft.Turn)

	// Removing the last team stops the draft entirely.
	require.NoError(t, s.Apply(Command{Type: CmdRemoveTeam, TeamID: t1.ID}))
	assert.False(t, s.IsDraftActive())
	assert.Equal(t, 0, s.Draft.history.len())
	assert.Equal(t, "", s.Draft.LastPicked)
}

func TestDraftAutoEndsWhenAllSlotsFill(t *testing.T) {
	s := NewState(4)

	captains := make([]*Participant, 3)
	for i, name := range []string{"cap1", "cap2", "cap3"} {
		captains[i] = addParticipant(t, s, name, "gold", "")
	}
	players := make([]*Participant, 12)
	for i := range players {
		players[i] = addParticipant(t, s, "p"+string(rune('a'+i)), "silver", "")
	}
	for _, c := range captains {
		createTeam(t, s, c)
	}

	require.NoError(t, s.Apply(Command{Type: CmdToggleDraft}))
	for _, p := range players {
		pickNext(t, s, p.ID)
	}

	assert.False(t, s.IsDraftActive(), "draft must auto-end once every slot fills")
	assert.Equal(t, 0, s.Draft.history.len())
	assert.Equal(t, "", s.Draft.LastPicked)
	assert.Empty(t, s.Available(), "all 15 placed participants excluded from availability")
}

func TestToggleOffForfeitsPendingUndo(t *testing.T) {
	s := NewState(4)
	cap1 := addParticipant(t, s, "cap1", "gold", "")
	p1 := addParticipant(t, s, "p1", "gold", "")
	createTeam(t, s, cap1)
	require.NoError(t, s.Apply(Command{Type: CmdToggleDraft}))
	pickNext(t, s, p1.ID)

	require.NoError(t, s.Apply(Command{Type: CmdToggleDraft}))
	assert.False(t, s.IsDraftActive())
	require.ErrorIs(t, s.Apply(Command{Type: CmdUndo}), ErrEmptyHistory)
	assert.True(t, s.Roster.IsPlaced(p1.ID), "the committed pick stays")
}
