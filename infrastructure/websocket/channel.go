// Package websocket adapts gorilla websocket connections to hub channels.
package websocket

import (
	"chat-hub/contract"
	"chat-hub/errors"
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var _ contract.Channel = (*Channel)(nil)

type Settings struct {
	BufferSize     int
	PingInterval   time.Duration
	MaxMessageSize int64
}

// pongWait must exceed the ping interval, a missed pong ends the read loop.
func (s Settings) pongWait() time.Duration { return s.PingInterval * 2 }

const writeWait = 10 * time.Second

// Channel is one websocket connection seen as a hub channel.
// gorilla allows a single concurrent writer: every data frame goes through the
// send queue drained by writePump. Only Close writes from another goroutine,
// which gorilla permits for control frames.
type Channel struct {
	id       string
	conn     *websocket.Conn
	send     chan []byte
	done     chan struct{}
	once     sync.Once
	settings Settings
	log      *slog.Logger
}

func NewChannel(log *slog.Logger, conn *websocket.Conn, settings Settings) *Channel {
	return &Channel{
		id:       uuid.NewString(),
		conn:     conn,
		send:     make(chan []byte, settings.BufferSize),
		done:     make(chan struct{}),
		settings: settings,
		log:      log,
	}
}

func (c *Channel) ID() string { return c.id }

// Send queues a payload for the write pump.
// It fails with ErrChannelClosed once the channel is closed and with
// ErrSendTimeout when the queue stays full until ctx is done.
func (c *Channel) Send(ctx context.Context, payload []byte) error {
	select {
	case <-c.done:
		return errors.ErrChannelClosed
	default:
	}
	select {
	case c.send <- payload:
		return nil
	case <-c.done:
		return errors.ErrChannelClosed
	case <-ctx.Done():
		return fmt.Errorf("%w: %v", errors.ErrSendTimeout, ctx.Err())
	}
}

// Close is idempotent. Payloads still queued are dropped.
func (c *Channel) Close() error {
	var err error
	c.once.Do(func() {
		close(c.done)
		_ = c.conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(time.Second))
		err = c.conn.Close()
	})
	return err
}

// Done is closed once the channel is closed.
func (c *Channel) Done() <-chan struct{} { return c.done }

// writePump owns every data write on the connection and pings the peer.
func (c *Channel) writePump() {
	var tick <-chan time.Time
	if c.settings.PingInterval > 0 {
		ticker := time.NewTicker(c.settings.PingInterval)
		defer ticker.Stop()
		tick = ticker.C
	}
	for {
		select {
		case <-c.done:
			return
		case payload := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				c.log.Debug("Write failed, closing channel", "channel_id", c.id, "error", err)
				_ = c.Close()
				return
			}
		case <-tick:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				_ = c.Close()
				return
			}
		}
	}
}

// readLoop hands every inbound text frame to handle, in arrival order, until
// the peer goes away or handle fails.
func (c *Channel) readLoop(handle func(raw []byte) error) error {
	if c.settings.MaxMessageSize > 0 {
		c.conn.SetReadLimit(c.settings.MaxMessageSize)
	}
	if c.settings.PingInterval > 0 {
		_ = c.conn.SetReadDeadline(time.Now().Add(c.settings.pongWait()))
		c.conn.SetPongHandler(func(string) error {
			return c.conn.SetReadDeadline(time.Now().Add(c.settings.pongWait()))
		})
	}
	for {
		messageType, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				return err
			}
			return nil
		}
		if messageType != websocket.TextMessage {
			continue
		}
		if err = handle(raw); err != nil {
			return err
		}
	}
}
