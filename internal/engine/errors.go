package engine

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrEmptyName          = errors.New("name must not be empty")
	ErrAlreadyPlaced      = errors.New("participant already placed")
	ErrSlotOccupied       = errors.New("slot occupied")
	ErrOutOfTurn          = errors.New("not this team's turn")
	ErrEmptyHistory       = errors.New("nothing to undo")
	ErrDraftActive        = errors.New("draft in progress")
	ErrDraftInactive      = errors.New("draft not active")
	ErrNoTeams            = errors.New("no teams in pick order")
	ErrUnsupportedCommand = errors.New("unsupported command")
)
