// Package ws bridges the in-process event hub to WebSocket sessions.
package ws

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"

	"github.com/ankita1477/Suraksha-Yatra-SIH25-sub001/internal/broker"
	"github.com/ankita1477/Suraksha-Yatra-SIH25-sub001/internal/domain"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

type Handler struct {
	logger   *slog.Logger
	hub      *broker.Hub
	upgrader websocket.Upgrader
}

func NewHandler(logger *slog.Logger, hub *broker.Hub) *Handler {
	return &Handler{
		logger: logger,
		hub:    hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Origin checks happen at the gateway.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Serve upgrades the connection and streams hub events until the client
// disconnects. Topics come from the comma-separated "topics" query
// parameter; unknown names are rejected before the upgrade, an empty
// parameter means all topics.
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	l := h.logger.With(slog.String("request_id", chimw.GetReqID(r.Context())))

	topics, ok := parseTopics(r.URL.Query().Get("topics"))
	if !ok {
		http.Error(w, "unknown topic", http.StatusBadRequest)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		l.Warn("websocket upgrade failed", slog.Any("error", err))
		return
	}

	sub := h.hub.Subscribe(topics...)
	l.Info("websocket session opened", slog.Int("topics", len(topics)))

	go h.readLoop(conn, sub)
	h.writeLoop(l, conn, sub)
}

// readLoop discards inbound frames; its job is noticing the close.
func (h *Handler) readLoop(conn *websocket.Conn, sub *broker.Subscription) {
	defer sub.Close()

	conn.SetReadLimit(512)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Handler) writeLoop(l *slog.Logger, conn *websocket.Conn, sub *broker.Subscription) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		sub.Close()
		_ = conn.Close()
		l.Info("websocket session closed")
	}()

	for {
		select {
		case ev, open := <-sub.C():
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !open {
				_ = conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := conn.WriteJSON(ev); err != nil {
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func parseTopics(raw string) ([]domain.Topic, bool) {
	if raw == "" {
		return nil, true
	}

	parts := strings.Split(raw, ",")
	topics := make([]domain.Topic, 0, len(parts))
	for _, p := range parts {
		t, ok := domain.ParseTopic(strings.TrimSpace(p))
		if !ok {
			return nil, false
		}
		topics = append(topics, t)
	}
	return topics, true
}
