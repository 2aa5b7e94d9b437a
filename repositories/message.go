//go:generate go run go.uber.org/mock/mockgen -source=message.go -destination=../mocks/mock_message_repository.go -package=mocks
package repositories

import (
	"chat-hub/domain"
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

type IMessageRepository interface {
	StoreMessage(sender, receiver domain.UserID, text string, at time.Time) (domain.StoredMessage, error)
	GetConversation(userA, userB domain.UserID, cursor *string) ([]domain.StoredMessage, *string, error)
}

type MessageRepository struct {
	db            *badger.DB
	log           *slog.Logger
	limitMessages *int
}

func NewMessageRepository(db *badger.DB, log *slog.Logger, limitMessages *int) *MessageRepository {
	return &MessageRepository{db: db, log: log, limitMessages: limitMessages}
}

type diskMessage struct {
	ID       string `json:"id"`
	Sender   string `json:"sender"`
	Receiver string `json:"receiver"`
	Text     string `json:"text"`
	At       int64  `json:"at"`
}

// conversationPrefix is the same for both directions of a conversation:
// the two participants are ordered before being written into the key.
func conversationPrefix(userA, userB domain.UserID) string {
	low, high := userA, userB
	if high < low {
		low, high = high, low
	}
	return fmt.Sprintf("msg:%s:%s:", low, high)
}

// StoreMessage persists a private message.
// The key is formatted as "msg:{low}:{high}:{timestamp_padded}:{uuid}" so that
//  1. both directions of a conversation share one prefix,
//  2. a prefix scan is chronological thanks to the 19-digit zero padding,
//  3. two messages at the same nanosecond do not overwrite each other.
func (m MessageRepository) StoreMessage(sender, receiver domain.UserID, text string, at time.Time) (domain.StoredMessage, error) {
	message := domain.StoredMessage{
		ID:       uuid.New(),
		Sender:   sender,
		Receiver: receiver,
		Text:     text,
		At:       at.UTC(),
	}
	key := fmt.Sprintf("%s%019d:%s", conversationPrefix(sender, receiver), at.UnixNano(), message.ID)
	bytes, err := json.Marshal(fromStoredMessage(message))
	if err != nil {
		return domain.StoredMessage{}, err
	}
	err = m.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), bytes)
	})
	if err != nil {
		return domain.StoredMessage{}, err
	}
	return message, nil
}

// GetConversation returns one page of the conversation between userA and userB,
// oldest first. Pages are walked from the most recent one backwards: the returned
// cursor points at the oldest message of the page and fetches the page before it.
// The cursor is nil when there is nothing older.
func (m MessageRepository) GetConversation(userA, userB domain.UserID, cursor *string) ([]domain.StoredMessage, *string, error) {
	var byteMessages [][]byte
	var lastKey string
	var more bool
	err := m.db.View(func(txn *badger.Txn) error {
		prefixStr := conversationPrefix(userA, userB)
		prefix := []byte(prefixStr)
		prefixLen := len(prefixStr)
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		it := txn.NewIterator(options)
		defer it.Close()

		var seekKey []byte
		switch cursor {
		case nil:
			// Reverse iteration starts from the greatest key below the seek key
			seekKey = append([]byte(prefixStr), []byte("9999999999999999999;")...)
		default:
			seekKey = append([]byte(prefixStr), []byte(*cursor)...)
		}

		it.Seek(seekKey)

		if cursor != nil && it.ValidForPrefix(prefix) && string(it.Item().Key()[prefixLen:]) == *cursor {
			it.Next()
		}

		for ; it.ValidForPrefix(prefix); it.Next() {
			if m.limitMessages != nil && len(byteMessages) == *m.limitMessages {
				m.log.Debug(fmt.Sprintf("Maximum of %d message reached", *m.limitMessages))
				more = true
				break
			}
			item := it.Item()
			lastKey = string(item.Key()[prefixLen:])
			err := item.Value(func(value []byte) error {
				byteMessages = append(byteMessages, slices.Clone(value))
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	messages := make([]domain.StoredMessage, 0, len(byteMessages))
	for _, b := range byteMessages {
		var disk diskMessage
		if err = json.Unmarshal(b, &disk); err != nil {
			return nil, nil, err
		}
		message, err := toStoredMessage(disk)
		if err != nil {
			return nil, nil, err
		}
		messages = append(messages, message)
	}
	slices.Reverse(messages)

	if !more {
		return messages, nil, nil
	}
	return messages, &lastKey, nil
}

func fromStoredMessage(message domain.StoredMessage) diskMessage {
	return diskMessage{
		ID:       message.ID.String(),
		Sender:   message.Sender.String(),
		Receiver: message.Receiver.String(),
		Text:     message.Text,
		At:       message.At.UnixNano(),
	}
}

func toStoredMessage(disk diskMessage) (domain.StoredMessage, error) {
	parsedID, err := uuid.Parse(disk.ID)
	if err != nil {
		return domain.StoredMessage{}, err
	}
	return domain.StoredMessage{
		ID:       parsedID,
		Sender:   domain.UserID(disk.Sender),
		Receiver: domain.UserID(disk.Receiver),
		Text:     disk.Text,
		At:       time.Unix(0, disk.At).UTC(),
	}, nil
}
