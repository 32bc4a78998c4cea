package engine

import "github.com/google/uuid"

// Team holds one captain slot and a fixed number of member slots. Slots store
// participant ids; the empty string marks a free slot.
type Team struct {
	ID        string   `json:"id"`
	CaptainID string   `json:"captain_id"`
	Slots     []string `json:"slots"`
}

func (t *Team) firstEmptySlot() int {
	for i, pid := range t.Slots {
		if pid == "" {
			return i
		}
	}
	return -1
}

// Roster owns the set of teams and the pick order. A participant id appears
// in at most one slot across all teams; IsPlaced is the sole source of truth
// for that, there is no separate picked flag anywhere.
type Roster struct {
	teams     []*Team
	order     []string
	slotCount int
}

func NewRoster(slotCount int) *Roster {
	if slotCount <= 0 {
		slotCount = 4
	}
	return &Roster{slotCount: slotCount}
}

func (r *Roster) Team(id string) *Team {
	for _, t := range r.teams {
		if t.ID == id {
			return t
		}
	}
	return nil
}

func (r *Roster) TeamCount() int { return len(r.order) }

// TeamsInOrder walks teams in pick order.
func (r *Roster) TeamsInOrder() []*Team {
	out := make([]*Team, 0, len(r.order))
	for _, id := range r.order {
		if t := r.Team(id); t != nil {
			out = append(out, t)
		}
	}
	return out
}

func (r *Roster) IsPlaced(pid string) bool {
	if pid == "" {
		return false
	}
	for _, t := range r.teams {
		if t.CaptainID == pid {
			return true
		}
		for _, slot := range t.Slots {
			if slot == pid {
				return true
			}
		}
	}
	return false
}

// CreateTeam allocates a team captained by the given participant and appends
// it to the pick order.
func (r *Roster) CreateTeam(captainID string) (*Team, error) {
	if r.IsPlaced(captainID) {
		return nil, ErrAlreadyPlaced
	}
	t := &Team{
		ID:        uuid.NewString(),
		CaptainID: captainID,
		Slots:     make([]string, r.slotCount),
	}
	r.teams = append(r.teams, t)
	r.order = append(r.order, t.ID)
	return t, nil
}

// RemoveTeam deletes the team and strips it from the pick order. The
// participants it held become available again since availability is derived.
func (r *Roster) RemoveTeam(teamID string) error {
	idx := -1
	for i, t := range r.teams {
		if t.ID == teamID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return ErrNotFound
	}
	r.teams = append(r.teams[:idx], r.teams[idx+1:]...)
	for i, id := range r.order {
		if id == teamID {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// Reorder moves the dragged team to sit immediately before the target team in
// pick order. No-op if either id is absent or they are equal.
func (r *Roster) Reorder(draggedID, targetID string) {
	if draggedID == targetID {
		return
	}
	from, to := -1, -1
	for i, id := range r.order {
		if id == draggedID {
			from = i
		}
		if id == targetID {
			to = i
		}
	}
	if from == -1 || to == -1 {
		return
	}
	// Insert at the target's pre-removal index, as the drag UI expects.
	order := append([]string(nil), r.order...)
	order = append(order[:from], order[from+1:]...)
	order = append(order[:to], append([]string{draggedID}, order[to:]...)...)
	r.order = order
}

// PlaceMember puts a participant into a member slot. slot -1 selects the
// first empty slot.
func (r *Roster) PlaceMember(teamID string, slot int, pid string) error {
	t := r.Team(teamID)
	if t == nil {
		return ErrNotFound
	}
	if r.IsPlaced(pid) {
		return ErrAlreadyPlaced
	}
	if slot == -1 {
		slot = t.firstEmptySlot()
		if slot == -1 {
			return ErrSlotOccupied
		}
	}
	if slot < 0 || slot >= len(t.Slots) {
		return ErrNotFound
	}
	if t.Slots[slot] != "" {
		return ErrSlotOccupied
	}
	t.Slots[slot] = pid
	return nil
}

func (r *Roster) PlaceCaptain(teamID, pid string) error {
	t := r.Team(teamID)
	if t == nil {
		return ErrNotFound
	}
	if r.IsPlaced(pid) {
		return ErrAlreadyPlaced
	}
	if t.CaptainID != "" {
		return ErrSlotOccupied
	}
	t.CaptainID = pid
	return nil
}

func (r *Roster) ClearSlot(teamID string, slot int) error {
	t := r.Team(teamID)
	if t == nil || slot < 0 || slot >= len(t.Slots) {
		return ErrNotFound
	}
	t.Slots[slot] = ""
	return nil
}

func (r *Roster) ClearCaptain(teamID string) error {
	t := r.Team(teamID)
	if t == nil {
		return ErrNotFound
	}
	t.CaptainID = ""
	return nil
}

// AllSlotsFilled reports whether every captain and member slot across all
// teams is occupied. False when no teams exist.
func (r *Roster) AllSlotsFilled() bool {
	if len(r.teams) == 0 {
		return false
	}
	for _, t := range r.teams {
		if t.CaptainID == "" {
			return false
		}
		for _, pid := range t.Slots {
			if pid == "" {
				return false
			}
		}
	}
	return true
}

// snapshotTeams deep-copies every team so undo snapshots never alias live
// slot arrays.
func (r *Roster) snapshotTeams() []*Team {
	out := make([]*Team, len(r.teams))
	for i, t := range r.teams {
		out[i] = &Team{
			ID:        t.ID,
			CaptainID: t.CaptainID,
			Slots:     append([]string(nil), t.Slots...),
		}
	}
	return out
}

func (r *Roster) restoreTeams(teams []*Team) {
	r.teams = teams
}
