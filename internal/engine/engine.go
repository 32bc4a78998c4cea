package engine

// DraftState tracks the in-progress draft. Turn counts picks since
// activation; it resets to 0 on (de)activation and whenever the pick order
// changes underneath it. LastPicked is the only pick eligible for undo.
type DraftState struct {
	Active     bool
	Turn       int
	LastPicked string
	history    historyStack
}

// State is the whole draft room: directory, roster and draft bookkeeping.
// Every mutation goes through Apply so the snapshot/turn-advance pairing can
// never be skipped by a caller.
type State struct {
	Directory *Directory
	Roster    *Roster
	Draft     DraftState
}

func NewState(memberSlots int) *State {
	return &State{
		Directory: NewDirectory(),
		Roster:    NewRoster(memberSlots),
	}
}

type CommandType string

const (
	CmdAddParticipant    CommandType = "AddParticipant"
	CmdEditParticipant   CommandType = "EditParticipant"
	CmdRemoveParticipant CommandType = "RemoveParticipant"
	CmdImportRoster      CommandType = "ImportRoster"
	CmdCreateTeam        CommandType = "CreateTeam"
	CmdRemoveTeam        CommandType = "RemoveTeam"
	CmdReorderTeams      CommandType = "ReorderTeams"
	CmdToggleDraft       CommandType = "ToggleDraft"
	CmdPick              CommandType = "Pick"
	CmdUndo              CommandType = "Undo"
	CmdClearSlot         CommandType = "ClearSlot"
	CmdClearCaptain      CommandType = "ClearCaptain"
)

// Command is one operator intent. Unused fields stay zero; SlotIndex -1
// means "first empty slot".
type Command struct {
	Type          CommandType
	ParticipantID string
	TeamID        string
	TargetTeamID  string
	SlotIndex     int
	Name          string
	Tier          string
	Lanes         string
	Text          string
}

// Apply executes a single command against the state. Validation failures
// come back as sentinel errors and leave the state untouched.
func (s *State) Apply(cmd Command) error {
	switch cmd.Type {
	case CmdAddParticipant:
		return s.Directory.Add(NewParticipant(cmd.Name, NormalizeTier(cmd.Tier), ParseLanes(cmd.Lanes)))

	case CmdEditParticipant:
		return s.Directory.Edit(cmd.ParticipantID, cmd.Name, NormalizeTier(cmd.Tier), ParseLanes(cmd.Lanes))

	case CmdRemoveParticipant:
		return s.removeParticipant(cmd.ParticipantID)

	case CmdImportRoster:
		s.importRoster(cmd.Text)
		return nil

	case CmdCreateTeam:
		return s.createTeam(cmd.ParticipantID)

	case CmdRemoveTeam:
		return s.removeTeam(cmd.TeamID)

	case CmdReorderTeams:
		s.Roster.Reorder(cmd.TeamID, cmd.TargetTeamID)
		if s.Draft.Active {
			s.Draft.Turn = 0
		}
		return nil

	case CmdToggleDraft:
		return s.toggleDraft()

	case CmdPick:
		return s.pick(cmd.ParticipantID, cmd.TeamID, cmd.SlotIndex)

	case CmdUndo:
		return s.undo()

	case CmdClearSlot:
		if s.Draft.Active {
			return ErrDraftActive
		}
		return s.Roster.ClearSlot(cmd.TeamID, cmd.SlotIndex)

	case CmdClearCaptain:
		if s.Draft.Active {
			return ErrDraftActive
		}
		return s.Roster.ClearCaptain(cmd.TeamID)

	default:
		return ErrUnsupportedCommand
	}
}

// removeParticipant is a silent no-op while the participant occupies a slot,
// so deletion can never bypass the global-uniqueness invariant.
func (s *State) removeParticipant(pid string) error {
	if s.Directory.Get(pid) == nil {
		return ErrNotFound
	}
	if s.Roster.IsPlaced(pid) {
		return nil
	}
	s.Directory.Remove(pid)
	return nil
}

func (s *State) importRoster(text string) {
	for _, p := range ParseRoster(text) {
		if s.Directory.HasName(p.Name) {
			continue
		}
		_ = s.Directory.Add(p)
	}
}

func (s *State) createTeam(captainID string) error {
	if s.Directory.Get(captainID) == nil {
		return ErrNotFound
	}
	_, err := s.Roster.CreateTeam(captainID)
	return err
}

func (s *State) removeTeam(teamID string) error {
	if err := s.Roster.RemoveTeam(teamID); err != nil {
		return err
	}
	if s.Draft.Active {
		s.Draft.Turn = 0
		if s.Roster.TeamCount() == 0 {
			s.setDraftActive(false)
		}
	}
	return nil
}

func (s *State) toggleDraft() error {
	if !s.Draft.Active && s.Roster.TeamCount() == 0 {
		return ErrNoTeams
	}
	s.setDraftActive(!s.Draft.Active)
	return nil
}

// setDraftActive arms or disarms the undo stack. Both transitions clear the
// history and the last-picked marker; a pending undo is forfeited on end.
func (s *State) setDraftActive(on bool) {
	s.Draft.Active = on
	s.Draft.Turn = 0
	s.Draft.LastPicked = ""
	s.Draft.history.clear()
}

// pick is the only mutation allowed while the draft is active. It snapshots,
// delegates to the roster, and either advances the turn or discards the
// snapshot it just took.
func (s *State) pick(pid, teamID string, slot int) error {
	if !s.Draft.Active {
		return ErrDraftInactive
	}
	if s.Directory.Get(pid) == nil {
		return ErrNotFound
	}
	if teamID != s.ActiveTeamID() {
		return ErrOutOfTurn
	}

	s.Draft.history.push(snapshot{
		turn:       s.Draft.Turn,
		teams:      s.Roster.snapshotTeams(),
		lastPicked: s.Draft.LastPicked,
	})

	if err := s.Roster.PlaceMember(teamID, slot, pid); err != nil {
		s.Draft.history.drop()
		return err
	}

	s.Draft.LastPicked = pid
	s.Draft.Turn++
	s.checkAutoEnd()
	return nil
}

func (s *State) undo() error {
	snap, ok := s.Draft.history.pop()
	if !ok {
		return ErrEmptyHistory
	}
	s.Draft.Turn = snap.turn
	s.Roster.restoreTeams(snap.teams)
	s.Draft.LastPicked = snap.lastPicked
	return nil
}

// checkAutoEnd stops the draft once every captain and member slot is filled,
// with the same teardown as a manual toggle.
func (s *State) checkAutoEnd() {
	if s.Draft.Active && s.Roster.AllSlotsFilled() {
		s.setDraftActive(false)
	}
}

// ActiveTeamID returns the team whose turn it is, or "" when no draft is
// running.
func (s *State) ActiveTeamID() string {
	if !s.Draft.Active {
		return ""
	}
	n := s.Roster.TeamCount()
	if n == 0 {
		return ""
	}
	teams := s.Roster.TeamsInOrder()
	return teams[ActiveIndex(n, s.Draft.Turn)].ID
}

// ActiveHighlightCount returns how many empty slots of the active team the
// presentation layer should mark, 0 when no draft is running.
func (s *State) ActiveHighlightCount() int {
	if !s.Draft.Active {
		return 0
	}
	n := s.Roster.TeamCount()
	if n == 0 {
		return 0
	}
	return HighlightCount(n, s.Draft.Turn)
}

func (s *State) IsDraftActive() bool {
	return s.Draft.Active
}

// CanUndo reports whether the given participant's placement is the one pick
// the hardlock allows to be reversed.
func (s *State) CanUndo(pid string) bool {
	return s.Draft.Active && s.Draft.history.len() > 0 && s.Draft.LastPicked == pid
}

// Available returns the participants not placed in any team, in presentation
// order.
func (s *State) Available() []*Participant {
	return s.Directory.Available(s.Roster.IsPlaced)
}
