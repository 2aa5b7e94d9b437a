//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"chat-hub/domain"
	"context"
	"reflect"
	"time"
)

// Channel is one live duplex connection owned by exactly one user.
// Send must be safe for concurrent use and must fail, not block forever,
// once the underlying transport is gone.
type Channel interface {
	ID() string
	Send(ctx context.Context, payload []byte) error
	Close() error
}

// OccupancyObserver is told, inside the registry critical section,
// when a user gains its first channel or loses its last one.
type OccupancyObserver interface {
	OccupancyChanged(userID domain.UserID, online bool)
}

// PresenceReader answers whether a user holds at least one live channel.
type PresenceReader interface {
	IsOnline(userID domain.UserID) bool
}

type IRegistry interface {
	PresenceReader
	Register(userID domain.UserID, ch Channel) (domain.Transition, error)
	Unregister(ch Channel) (domain.UserID, domain.Transition, error)
	ChannelsFor(userID domain.UserID) []Channel
	OwnerOf(ch Channel) (domain.UserID, bool)
}

type IPresenceTracker interface {
	OccupancyObserver
	PresenceReader
	Announce(ctx context.Context, userID domain.UserID, transition domain.Transition)
}

type IDispatcher interface {
	SendToChannel(ctx context.Context, ch Channel, payload []byte) error
	SendToUser(ctx context.Context, userID domain.UserID, payload []byte) domain.Delivery
	NotifyContacts(ctx context.Context, userID domain.UserID, status domain.Status) error
	Route(ctx context.Context, msg domain.PrivateMessage) (domain.Delivery, error)
}

// ILifecycle is the surface exposed to the connection-handling layer.
type ILifecycle interface {
	HandleConnect(ctx context.Context, ch Channel, userID domain.UserID) error
	HandleDisconnect(ctx context.Context, ch Channel) error
	HandleInboundPayload(ctx context.Context, ch Channel, raw []byte) error
}

type ContactStore interface {
	GetContacts(ctx context.Context, userID domain.UserID) ([]domain.Contact, error)
}

type MessageStore interface {
	PersistMessage(ctx context.Context, sender, receiver domain.UserID, text string, at time.Time) (domain.StoredMessage, error)
}

type StatusStore interface {
	SetOnlineStatus(ctx context.Context, userID domain.UserID, online bool, lastSeen time.Time) error
}

// Storage is the slice of the storage collaborator the hub consumes.
type Storage interface {
	ContactStore
	MessageStore
	StatusStore
}

// TokenVerifier resolves a bearer token into the identity it was issued for.
type TokenVerifier interface {
	VerifyToken(token string) (domain.UserID, error)
}

// Moderator rewrites message text before it leaves the hub.
type Moderator interface {
	Censor(text string) string
}

type WorkerName string

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker lifecycle events.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}
