package domain

import (
	"time"

	"github.com/google/uuid"
)

// StoredMessage is a private message as recorded by the storage collaborator.
type StoredMessage struct {
	ID       uuid.UUID
	Sender   UserID
	Receiver UserID
	Text     string
	At       time.Time
}
