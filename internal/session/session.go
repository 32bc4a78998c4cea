package session

import (
	"context"

	"go.uber.org/zap"

	"github.com/teambuilder/draft-backend/internal/engine"
	"github.com/teambuilder/draft-backend/pkg/types"
)

type Msg interface{ isSessionMsg() }

// FromClient carries one command into the session. Reply, if non-nil, gets
// the validation outcome; it must be buffered so the loop never blocks.
type FromClient struct {
	Cmd   engine.Command
	Reply chan error
}

func (FromClient) isSessionMsg() {}

type Join struct {
	ClientID string
	Outbox   chan Snapshot // where this client wants to receive snapshots
}

func (Join) isSessionMsg() {}

type Leave struct{ ClientID string }

func (Leave) isSessionMsg() {}

type Shutdown struct{}

func (Shutdown) isSessionMsg() {}

type GetState struct {
	Reply chan View
}

func (GetState) isSessionMsg() {}

type GetExport struct {
	Reply chan string
}

func (GetExport) isSessionMsg() {}

type Snapshot struct {
	Version int
	State   types.RoomState
}

// View is a test/diagnostic reflection of session internals.
type View struct {
	Version    int
	NumClients int
	State      types.RoomState
}

// Session is the actor that owns one room's draft state. All intents are
// handled one at a time to completion inside loop, so no intent can observe
// a partially applied pick.
type Session struct {
	inbox   chan Msg
	state   *engine.State
	version int
	clients map[string]chan Snapshot
	log     *zap.Logger
	ctx     context.Context
	cancel  context.CancelFunc
}

func NewSession(parent context.Context, state *engine.State, log *zap.Logger) *Session {
	ctx, cancel := context.WithCancel(parent)

	s := &Session{
		inbox:   make(chan Msg, 64),
		state:   state,
		version: 0,
		clients: make(map[string]chan Snapshot),
		log:     log,
		ctx:     ctx,
		cancel:  cancel,
	}

	go s.loop()
	return s
}

// Inbox exposes the message channel to the WS layer and tests.
func (s *Session) Inbox() chan<- Msg { return s.inbox }

func (s *Session) loop() {
	for {
		select {
		case <-s.ctx.Done():
			s.shutdown()
			return

		case m := <-s.inbox:
			switch msg := m.(type) {
			case Join:
				// Register client + send current snapshot immediately
				s.clients[msg.ClientID] = msg.Outbox
				msg.Outbox <- Snapshot{Version: s.version, State: buildRoomState(s.state)}
				s.log.Debug("client joined", zap.String("client_id", msg.ClientID))

			case Leave:
				delete(s.clients, msg.ClientID)

			case FromClient:
				err := s.state.Apply(msg.Cmd)
				if err != nil {
					s.log.Debug("command rejected",
						zap.String("type", string(msg.Cmd.Type)),
						zap.Error(err))
					reply(msg.Reply, err)
					break
				}
				s.version++
				s.broadcast(Snapshot{Version: s.version, State: buildRoomState(s.state)})
				reply(msg.Reply, nil)

			case GetState:
				msg.Reply <- View{
					Version:    s.version,
					NumClients: len(s.clients),
					State:      buildRoomState(s.state),
				}

			case GetExport:
				msg.Reply <- s.state.ExportKorean()

			case Shutdown:
				s.shutdown()
				return
			}
		}
	}
}

func reply(ch chan error, err error) {
	if ch == nil {
		return
	}
	select {
	case ch <- err:
	default:
	}
}

func (s *Session) shutdown() {
	for id, ch := range s.clients {
		close(ch) // Tell client no more snapshots
		delete(s.clients, id)
	}
	s.cancel()
}

func (s *Session) broadcast(snap Snapshot) {
	for id, ch := range s.clients {
		select {
		case ch <- snap:
			// ok
		default:
			// Client is slow/full - drop them.
			close(ch)
			delete(s.clients, id)
			s.log.Warn("dropped slow client", zap.String("client_id", id))
		}
	}
}
