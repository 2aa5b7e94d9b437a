package domain

import (
	chaterrors "chat-hub/errors"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseEnvelope(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected Envelope
		err      error
		message  string
	}{
		{
			name:     "private message",
			raw:      `{"type":"private","receiver":"bob","text":"hi"}`,
			expected: Envelope{Type: TypePrivate, Receiver: "bob", Text: "hi"},
		},
		{
			name:     "numeric receiver",
			raw:      `{"type":"private","receiver":42,"text":"hi"}`,
			expected: Envelope{Type: TypePrivate, Receiver: "42", Text: "hi"},
		},
		{
			name:     "client sender is ignored",
			raw:      `{"type":"private","sender":"mallory","receiver":"bob","text":"hi"}`,
			expected: Envelope{Type: TypePrivate, Receiver: "bob", Text: "hi"},
		},
		{
			name:     "ping needs nothing else",
			raw:      `{"type":"ping"}`,
			expected: Envelope{Type: TypePing},
		},
		{name: "not json", raw: `{"type":`, err: chaterrors.ErrMalformedPayload},
		{name: "receiver of the wrong kind", raw: `{"type":"private","receiver":{},"text":"hi"}`, err: chaterrors.ErrMalformedPayload},
		{name: "missing type", raw: `{}`, err: chaterrors.ErrMalformedPayload, message: "missing type"},
		{
			name:    "missing receiver and text",
			raw:     `{"type":"private"}`,
			err:     chaterrors.ErrMalformedPayload,
			message: "missing receiver, text",
		},
		{name: "unsupported type", raw: `{"type":"group","text":"hi"}`, err: chaterrors.ErrUnsupportedType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			env, err := ParseEnvelope([]byte(tt.raw))
			if tt.err != nil {
				req.ErrorIs(err, tt.err)
				if tt.message != "" {
					req.Contains(err.Error(), tt.message)
				}
				return
			}
			req.NoError(err)
			req.Equal(tt.expected, env)
		})
	}
}

func TestPayloads_Wire_Format(t *testing.T) {
	req := require.New(t)

	event, err := json.Marshal(NewPresenceEvent("alice", StatusOffline))
	req.NoError(err)
	req.JSONEq(`{"type":"status","user_id":"alice","status":"offline"}`, string(event))

	msg, err := json.Marshal(NewPrivateMessage("alice", "bob", "hi"))
	req.NoError(err)
	req.JSONEq(`{"type":"private","sender":"alice","receiver":"bob","text":"hi"}`, string(msg))
}

func TestTransition_Status(t *testing.T) {
	req := require.New(t)

	status, ok := WentOnline.Status()
	req.True(ok)
	req.Equal(StatusOnline, status)

	status, ok = WentOffline.Status()
	req.True(ok)
	req.Equal(StatusOffline, status)

	_, ok = NoTransition.Status()
	req.False(ok)
	req.Equal("none", NoTransition.String())
}
