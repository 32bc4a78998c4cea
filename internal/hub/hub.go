package hub

import (
	"context"

	"go.uber.org/zap"

	"github.com/teambuilder/draft-backend/internal/engine"
	"github.com/teambuilder/draft-backend/internal/session"
)

type HubMsg interface{ isHubMsg() }

type GetRoom struct {
	Code  string
	Reply chan *session.Session
}

type EnsureRoom struct {
	Code  string
	State *engine.State // only used if creation happens
	Reply chan *session.Session
}

type RemoveRoom struct {
	Code string
}

type ShutdownHub struct{}

func (GetRoom) isHubMsg()     {}
func (EnsureRoom) isHubMsg()  {}
func (RemoveRoom) isHubMsg()  {}
func (ShutdownHub) isHubMsg() {}

// Hub is the registry of draft rooms, keyed by join code. Like the sessions
// it owns, it is driven entirely by message passing.
type Hub struct {
	inbox  chan HubMsg
	rooms  map[string]*session.Session
	log    *zap.Logger
	ctx    context.Context
	cancel context.CancelFunc
}

func NewHub(parent context.Context, log *zap.Logger) *Hub {
	ctx, cancel := context.WithCancel(parent)
	h := &Hub{
		inbox:  make(chan HubMsg, 64),
		rooms:  make(map[string]*session.Session),
		log:    log,
		ctx:    ctx,
		cancel: cancel,
	}
	go h.loop()
	return h
}

func (h *Hub) Inbox() chan<- HubMsg { return h.inbox }

func (h *Hub) loop() {
	for {
		select {
		case <-h.ctx.Done():
			return

		case m := <-h.inbox:
			switch msg := m.(type) {
			case GetRoom:
				msg.Reply <- h.rooms[msg.Code] // May be nil

			case EnsureRoom:
				if room := h.rooms[msg.Code]; room != nil {
					msg.Reply <- room
					break
				}
				room := session.NewSession(h.ctx, msg.State, h.log.With(zap.String("room", msg.Code)))
				h.rooms[msg.Code] = room
				h.log.Info("room created", zap.String("room", msg.Code))
				msg.Reply <- room

			case RemoveRoom:
				delete(h.rooms, msg.Code)

			case ShutdownHub:
				for _, room := range h.rooms {
					room.Inbox() <- session.Shutdown{}
				}
				clear(h.rooms)
				h.cancel()
			}
		}
	}
}
