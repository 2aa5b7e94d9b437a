//go:generate go run go.uber.org/mock/mockgen -source=contact.go -destination=../mocks/mock_contact_repository.go -package=mocks
package repositories

import (
	"chat-hub/domain"
	"chat-hub/errors"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
)

type IContactRepository interface {
	AddContact(userID, contactID domain.UserID) (domain.Contact, error)
	GetContacts(userID domain.UserID) ([]domain.Contact, error)
}

// ContactRepository stores directional contact lists:
// Alice having Bob as a contact says nothing about Bob's list.
type ContactRepository struct {
	db *badger.DB
}

func NewContactRepository(db *badger.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

type diskContact struct {
	ContactID   string    `json:"contact_id"`
	DisplayName string    `json:"display_name"`
	AddedAt     time.Time `json:"added_at"`
}

func contactPrefix(userID domain.UserID) []byte {
	return []byte(fmt.Sprintf("contact:%s:", userID))
}

func contactKey(userID, contactID domain.UserID) []byte {
	return []byte(fmt.Sprintf("contact:%s:%s", userID, contactID))
}

// AddContact links contactID into the list of userID.
// The display name is the contact's username at the time it was added.
func (c ContactRepository) AddContact(userID, contactID domain.UserID) (domain.Contact, error) {
	var contact diskContact
	err := c.db.Update(func(txn *badger.Txn) error {
		var target diskUser
		if err := readUser(txn, contactID, &target); err != nil {
			return notFound(err)
		}
		key := contactKey(userID, contactID)
		if _, err := txn.Get(key); err == nil {
			return errors.ErrContactAlreadyExists
		}
		contact = diskContact{
			ContactID:   target.ID,
			DisplayName: target.Username,
			AddedAt:     time.Now().UTC(),
		}
		data, err := json.Marshal(contact)
		if err != nil {
			return err
		}
		return txn.Set(key, data)
	})
	if err != nil {
		return domain.Contact{}, err
	}
	return toContact(contact), nil
}

// GetContacts lists the contacts of userID. A user without contacts gets an
// empty list, not an error.
func (c ContactRepository) GetContacts(userID domain.UserID) ([]domain.Contact, error) {
	contacts := make([]domain.Contact, 0)
	err := c.db.View(func(txn *badger.Txn) error {
		prefix := contactPrefix(userID)
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var contact diskContact
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &contact)
			})
			if err != nil {
				return err
			}
			contacts = append(contacts, toContact(contact))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return contacts, nil
}

func toContact(contact diskContact) domain.Contact {
	return domain.Contact{
		ID:          domain.UserID(contact.ContactID),
		DisplayName: contact.DisplayName,
	}
}
