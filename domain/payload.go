package domain

// Payload types written on the wire.
const (
	TypeStatus    = "status"
	TypePrivate   = "private"
	TypeConnected = "connected"
	TypeError     = "error"
	TypePing      = "ping"
	TypePong      = "pong"
)

// PresenceEvent is sent to every contact when a user goes online or offline.
type PresenceEvent struct {
	Type   string `json:"type"`
	UserID UserID `json:"user_id"`
	Status Status `json:"status"`
}

func NewPresenceEvent(userID UserID, status Status) PresenceEvent {
	return PresenceEvent{Type: TypeStatus, UserID: userID, Status: status}
}

type PrivateMessage struct {
	Type     string `json:"type"`
	Sender   UserID `json:"sender"`
	Receiver UserID `json:"receiver"`
	Text     string `json:"text"`
}

func NewPrivateMessage(sender, receiver UserID, text string) PrivateMessage {
	return PrivateMessage{Type: TypePrivate, Sender: sender, Receiver: receiver, Text: text}
}

// Greeting acknowledges a freshly registered channel.
type Greeting struct {
	Type   string `json:"type"`
	UserID UserID `json:"user_id"`
}

type ErrorPayload struct {
	Type  string `json:"type"`
	Error string `json:"error"`
}

type Pong struct {
	Type string `json:"type"`
}
