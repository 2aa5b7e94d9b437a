package websocket

import (
	"chat-hub/contract"
	"context"
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"
)

// Handler serves GET /chat?token=...
// The token is checked before the upgrade: an unauthenticated client gets a
// plain 401 and never reaches the hub.
type Handler struct {
	ctx       context.Context
	lifecycle contract.ILifecycle
	verifier  contract.TokenVerifier
	upgrader  websocket.Upgrader
	settings  Settings
	log       *slog.Logger
}

// NewHandler ties every session to ctx: cancelling it closes all live channels.
func NewHandler(ctx context.Context, log *slog.Logger, lifecycle contract.ILifecycle,
	verifier contract.TokenVerifier, settings Settings) *Handler {
	return &Handler{
		ctx:       ctx,
		lifecycle: lifecycle,
		verifier:  verifier,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Browser clients are served from anywhere, the token is the gate
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		settings: settings,
		log:      log,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	userID, err := h.verifier.VerifyToken(r.URL.Query().Get("token"))
	if err != nil {
		http.Error(w, "invalid or expired token", http.StatusUnauthorized)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already answered the client
		h.log.Debug("Websocket upgrade failed", "user_id", userID, "error", err)
		return
	}

	ch := NewChannel(h.log, conn, h.settings)
	go ch.writePump()

	ctx, cancel := context.WithCancel(h.ctx)
	defer cancel()
	go func() {
		select {
		case <-ctx.Done():
			_ = ch.Close()
		case <-ch.Done():
		}
	}()

	if err = h.lifecycle.HandleConnect(ctx, ch, userID); err != nil {
		h.log.Warn("Connection refused", "user_id", userID, "channel_id", ch.ID(), "error", err)
		_ = ch.Close()
		return
	}
	defer func() {
		if err := h.lifecycle.HandleDisconnect(ctx, ch); err != nil {
			h.log.Warn("Disconnect failed", "user_id", userID, "channel_id", ch.ID(), "error", err)
		}
	}()

	err = ch.readLoop(func(raw []byte) error {
		return h.lifecycle.HandleInboundPayload(ctx, ch, raw)
	})
	if err != nil {
		h.log.Debug("Session ended", "user_id", userID, "channel_id", ch.ID(), "error", err)
	}
}
