package booking

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"golang.org/x/net/websocket"
)

// socketIdleTimeout closes sockets with no inbound frames, abandoning their
// session. The deadline is refreshed per frame.
const socketIdleTimeout = 10 * time.Minute

// SocketMessage is what the booking widget receives over the WebSocket.
type SocketMessage struct {
	Type    string `json:"type"` // "session", "error", "pong"
	View    *View  `json:"view,omitempty"`
	Applied bool   `json:"applied,omitempty"`
	Reason  string `json:"reason,omitempty"`
	Error   string `json:"error,omitempty"`
}

// HandleWebSocket upgrades to a WebSocket where every inbound frame is an
// Event and every outbound frame is the resulting session view. Without a
// session query parameter the socket starts its own session and abandons it
// on close, matching a form being unmounted. With ?session=<id> it attaches
// to an existing session and leaves it to expire by TTL.
func (h *Handler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	websocket.Handler(func(conn *websocket.Conn) {
		h.serveWS(conn, r)
	}).ServeHTTP(w, r)
}

func (h *Handler) serveWS(conn *websocket.Conn, r *http.Request) {
	ctx := r.Context()

	var (
		session *Session
		err     error
	)
	id := r.URL.Query().Get("session")
	owned := id == ""
	if owned {
		session, err = h.service.Start(ctx)
	} else {
		session, err = h.service.Get(ctx, id)
	}
	if err != nil {
		_ = websocket.JSON.Send(conn, SocketMessage{Type: "error", Error: socketError(err)})
		return
	}

	sessionID := session.ID
	defer func() {
		if !owned {
			return
		}
		// The request context is done once the client goes away.
		cleanup, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
		defer cancel()
		if err := h.service.Abandon(cleanup, sessionID); err != nil {
			h.logger.Warn("booking ws: abandon failed", "session_id", sessionID, "error", err)
		}
	}()

	_ = conn.SetDeadline(time.Now().Add(socketIdleTimeout))
	view := session.View()
	_ = websocket.JSON.Send(conn, SocketMessage{Type: "session", View: &view, Applied: true})
	h.logger.Info("booking ws: connection opened", "session_id", sessionID)

	for {
		var raw json.RawMessage
		if err := websocket.JSON.Receive(conn, &raw); err != nil {
			h.logger.Debug("booking ws: connection closed", "session_id", sessionID, "error", err)
			return
		}
		_ = conn.SetDeadline(time.Now().Add(socketIdleTimeout))

		var peek struct {
			Type string `json:"type"`
		}
		if err := json.Unmarshal(raw, &peek); err == nil && peek.Type == "ping" {
			_ = websocket.JSON.Send(conn, SocketMessage{Type: "pong"})
			continue
		}

		evt, err := ParseEvent(raw)
		if err != nil {
			_ = websocket.JSON.Send(conn, SocketMessage{Type: "error", Error: "invalid event"})
			continue
		}

		updated, tr, err := h.service.Apply(ctx, sessionID, evt)
		if err != nil {
			_ = websocket.JSON.Send(conn, SocketMessage{Type: "error", Error: socketError(err)})
			if errors.Is(err, ErrSessionNotFound) {
				return
			}
			continue
		}
		view := updated.View()
		_ = websocket.JSON.Send(conn, SocketMessage{Type: "session", View: &view, Applied: tr.Applied, Reason: tr.Reason})
	}
}

func socketError(err error) string {
	if errors.Is(err, ErrSessionNotFound) {
		return "booking session not found"
	}
	return "something went wrong, please try again"
}
