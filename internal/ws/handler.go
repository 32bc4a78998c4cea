package ws

import (
	"context"
	"encoding/json"
	"math/rand"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"go.uber.org/zap"

	"github.com/teambuilder/draft-backend/internal/engine"
	"github.com/teambuilder/draft-backend/internal/hub"
	"github.com/teambuilder/draft-backend/internal/session"
	"github.com/teambuilder/draft-backend/internal/types"
)

func Handler(h *hub.Hub, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		code := r.URL.Query().Get("code")
		if code == "" {
			http.Error(w, "missing code", http.StatusBadRequest)
			return
		}

		reply := make(chan *session.Session, 1)
		h.Inbox() <- hub.GetRoom{Code: code, Reply: reply}
		room := <-reply
		if room == nil {
			http.Error(w, "room not found", http.StatusNotFound)
			return
		}

		conn, err := websocket.Accept(w, r, nil)
		if err != nil {
			log.Debug("websocket accept failed", zap.Error(err))
			return
		}
		defer conn.Close(websocket.StatusNormalClosure, "bye")

		out := make(chan session.Snapshot, 8)
		clientID := randID(6)

		room.Inbox() <- session.Join{ClientID: clientID, Outbox: out}
		defer func() { room.Inbox() <- session.Leave{ClientID: clientID} }()

		// Writer goroutine
		writeCtx, writeCancel := context.WithCancel(r.Context())
		defer writeCancel()
		go func() {
			for snap := range out {
				msg := types.ServerMessage{Type: "StateSnapshot", Version: snap.Version, State: &snap.State}
				payload, _ := json.Marshal(msg)
				ctx, cancel := context.WithTimeout(writeCtx, 3*time.Second)
				_ = conn.Write(ctx, websocket.MessageText, payload)
				cancel()
			}
		}()

		// Reader loop
		for {
			ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
			_, data, err := conn.Read(ctx)
			cancel()
			if err != nil {
				// Treat clean close/going-away as normal:
				switch websocket.CloseStatus(err) {
				case websocket.StatusNormalClosure, websocket.StatusGoingAway:
					return
				}
				// Otherwise, just exit (session.Leave in defer):
				return
			}

			var cm types.ClientMessage
			if err := json.Unmarshal(data, &cm); err != nil {
				writeError(r.Context(), conn, "bad json")
				continue
			}

			cmd, ok := toEngineCommand(cm)
			if !ok {
				writeError(r.Context(), conn, "unknown type")
				continue
			}

			errReply := make(chan error, 1)
			room.Inbox() <- session.FromClient{Cmd: cmd, Reply: errReply}
			if cmdErr := <-errReply; cmdErr != nil {
				writeError(r.Context(), conn, cmdErr.Error())
			}
		}
	}
}

func writeError(ctx context.Context, conn *websocket.Conn, msg string) {
	payload, _ := json.Marshal(types.ServerMessage{Type: "Error", Error: msg})
	_ = conn.Write(ctx, websocket.MessageText, payload)
}

func toEngineCommand(m types.ClientMessage) (engine.Command, bool) {
	slot := -1
	if m.SlotIndex != nil {
		slot = *m.SlotIndex
	}

	cmd := engine.Command{
		ParticipantID: m.ParticipantID,
		TeamID:        m.TeamID,
		TargetTeamID:  m.TargetTeamID,
		SlotIndex:     slot,
		Name:          m.Name,
		Tier:          m.Tier,
		Lanes:         m.Lanes,
		Text:          m.Text,
	}

	switch m.Type {
	case "AddParticipant":
		cmd.Type = engine.CmdAddParticipant
	case "EditParticipant":
		cmd.Type = engine.CmdEditParticipant
	case "RemoveParticipant":
		cmd.Type = engine.CmdRemoveParticipant
	case "ImportRoster":
		cmd.Type = engine.CmdImportRoster
	case "CreateTeam":
		cmd.Type = engine.CmdCreateTeam
	case "RemoveTeam":
		cmd.Type = engine.CmdRemoveTeam
	case "ReorderTeams":
		cmd.Type = engine.CmdReorderTeams
	case "ToggleDraft":
		cmd.Type = engine.CmdToggleDraft
	case "Pick":
		cmd.Type = engine.CmdPick
	case "Undo":
		cmd.Type = engine.CmdUndo
	case "ClearSlot":
		cmd.Type = engine.CmdClearSlot
	case "ClearCaptain":
		cmd.Type = engine.CmdClearCaptain
	default:
		return engine.Command{}, false
	}
	return cmd, true
}

func randID(length int) string {
	const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	b := make([]byte, length)
	for i := range b {
		b[i] = charset[rand.Intn(len(charset))]
	}
	return string(b)
}
