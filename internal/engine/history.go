package engine

// snapshot captures everything a single undo must restore: the turn counter,
// a structural copy of every team's slots, and the previous last-picked id.
type snapshot struct {
	turn       int
	teams      []*Team
	lastPicked string
}

// historyStack is armed only while a draft is active. It records at most the
// picks of the current draft and is force-cleared on every (de)activation.
type historyStack struct {
	stack []snapshot
}

func (h *historyStack) push(s snapshot) {
	h.stack = append(h.stack, s)
}

// drop discards the most recent snapshot. Used when the pick it guarded
// failed validation; the stack must never record a no-op.
func (h *historyStack) drop() {
	if len(h.stack) > 0 {
		h.stack = h.stack[:len(h.stack)-1]
	}
}

func (h *historyStack) pop() (snapshot, bool) {
	if len(h.stack) == 0 {
		return snapshot{}, false
	}
	s := h.stack[len(h.stack)-1]
	h.stack = h.stack[:len(h.stack)-1]
	return s, true
}

func (h *historyStack) clear() {
	h.stack = nil
}

func (h *historyStack) len() int {
	return len(h.stack)
}
