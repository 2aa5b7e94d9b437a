package repositories

import (
	"chat-hub/domain"
	"context"
	"time"
)

// Store exposes the repositories through the context-aware storage surface
// the hub consumes. Badger calls do not block on the network, ctx is only
// checked before going to disk.
type Store struct {
	contacts IContactRepository
	messages IMessageRepository
	statuses IStatusRepository
}

func NewStore(contacts IContactRepository, messages IMessageRepository, statuses IStatusRepository) *Store {
	return &Store{contacts: contacts, messages: messages, statuses: statuses}
}

func (s *Store) GetContacts(ctx context.Context, userID domain.UserID) ([]domain.Contact, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.contacts.GetContacts(userID)
}

func (s *Store) PersistMessage(ctx context.Context, sender, receiver domain.UserID, text string, at time.Time) (domain.StoredMessage, error) {
	if err := ctx.Err(); err != nil {
		return domain.StoredMessage{}, err
	}
	return s.messages.StoreMessage(sender, receiver, text, at)
}

func (s *Store) SetOnlineStatus(ctx context.Context, userID domain.UserID, online bool, lastSeen time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.statuses.SetOnlineStatus(userID, online, lastSeen)
}
