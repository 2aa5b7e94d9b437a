package runtime

import (
	"chat-hub/contract"
	"chat-hub/domain"
	chaterrors "chat-hub/errors"
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// fakeChannel records every payload it accepts. A failing channel rejects sends.
type fakeChannel struct {
	id string

	mu         sync.Mutex
	payloads   [][]byte
	failing    bool
	closed     bool
	closes     int
	beforeSend func()
}

func newFakeChannel(id string) *fakeChannel { return &fakeChannel{id: id} }

func (c *fakeChannel) ID() string { return c.id }

func (c *fakeChannel) Send(ctx context.Context, payload []byte) error {
	c.mu.Lock()
	hook := c.beforeSend
	c.beforeSend = nil
	c.mu.Unlock()
	if hook != nil {
		hook()
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return chaterrors.ErrChannelClosed
	}
	if c.failing {
		return fmt.Errorf("write on %s: broken pipe", c.id)
	}
	c.payloads = append(c.payloads, append([]byte(nil), payload...))
	return nil
}

func (c *fakeChannel) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	c.closes++
	return nil
}

func (c *fakeChannel) fail() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.failing = true
}

// onFirstSend runs hook once, at the start of the next Send, outside the channel lock.
func (c *fakeChannel) onFirstSend(hook func()) *fakeChannel {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.beforeSend = hook
	return c
}

func (c *fakeChannel) isClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

// received decodes the accepted payloads as generic JSON objects.
func (c *fakeChannel) received(t *testing.T) []map[string]any {
	t.Helper()
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]map[string]any, 0, len(c.payloads))
	for _, p := range c.payloads {
		var m map[string]any
		require.NoError(t, json.Unmarshal(p, &m))
		out = append(out, m)
	}
	return out
}

// receivedOfType keeps only the payloads with the given "type".
func (c *fakeChannel) receivedOfType(t *testing.T, payloadType string) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, m := range c.received(t) {
		if m["type"] == payloadType {
			out = append(out, m)
		}
	}
	return out
}

// tracks reports whether the limiter holds a bucket for the channel.
func (l *ChannelLimiter) tracks(channelID string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, ok := l.byID[channelID]
	return ok
}

type statusRecord struct {
	userID domain.UserID
	online bool
}

// memStorage is an in-memory contract.Storage.
type memStorage struct {
	mu          sync.Mutex
	contacts    map[domain.UserID][]domain.Contact
	contactsErr error
	messages    []domain.StoredMessage
	persistErr  error
	statuses    []statusRecord
}

var _ contract.Storage = (*memStorage)(nil)

func newMemStorage() *memStorage {
	return &memStorage{contacts: make(map[domain.UserID][]domain.Contact)}
}

// link makes each user a contact of the other.
func (s *memStorage) link(a, b domain.UserID) *memStorage {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.contacts[a] = append(s.contacts[a], domain.Contact{ID: b, DisplayName: string(b)})
	s.contacts[b] = append(s.contacts[b], domain.Contact{ID: a, DisplayName: string(a)})
	return s
}

func (s *memStorage) GetContacts(_ context.Context, userID domain.UserID) ([]domain.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.contactsErr != nil {
		return nil, s.contactsErr
	}
	return append([]domain.Contact(nil), s.contacts[userID]...), nil
}

func (s *memStorage) PersistMessage(ctx context.Context, sender, receiver domain.UserID, text string, at time.Time) (domain.StoredMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return domain.StoredMessage{}, err
	}
	if s.persistErr != nil {
		return domain.StoredMessage{}, s.persistErr
	}
	msg := domain.StoredMessage{Sender: sender, Receiver: receiver, Text: text, At: at}
	s.messages = append(s.messages, msg)
	return msg, nil
}

func (s *memStorage) SetOnlineStatus(_ context.Context, userID domain.UserID, online bool, _ time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.statuses = append(s.statuses, statusRecord{userID: userID, online: online})
	return nil
}

func (s *memStorage) storedMessages() []domain.StoredMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.StoredMessage(nil), s.messages...)
}

func (s *memStorage) statusRecords() []statusRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]statusRecord(nil), s.statuses...)
}

// checkConsistency asserts the forward and inverse maps describe the same state.
func checkConsistency(t *testing.T, r *Registry) {
	t.Helper()
	r.mu.RLock()
	defer r.mu.RUnlock()

	total := 0
	for userID, set := range r.channels {
		require.NotEmpty(t, set, "user %s kept with an empty channel set", userID)
		for id := range set {
			require.Equal(t, userID, r.owners[id], "channel %s", id)
		}
		total += len(set)
	}
	require.Equal(t, total, len(r.owners))
}
