package repositories

import (
	"chat-hub/domain"
	"log/slog"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

func openDB(t *testing.T) *badger.DB {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func Test_Record_Conversation_Both_Directions(t *testing.T) {
	req := require.New(t)
	repository := NewMessageRepository(openDB(t), slog.Default(), nil)
	alice, bob := domain.UserID("alice"), domain.UserID("bob")
	at := time.Now().UTC()

	first, err := repository.StoreMessage(alice, bob, "hi bob", at)
	req.NoError(err)
	second, err := repository.StoreMessage(bob, alice, "hi alice", at.Add(time.Minute))
	req.NoError(err)
	third, err := repository.StoreMessage(alice, bob, "how are you?", at.Add(2*time.Minute))
	req.NoError(err)

	// Both participants see the same conversation, oldest first
	for _, pair := range [][2]domain.UserID{{alice, bob}, {bob, alice}} {
		messages, cursor, err := repository.GetConversation(pair[0], pair[1], nil)
		req.NoError(err)
		req.Nil(cursor)
		req.Equal([]domain.StoredMessage{first, second, third}, messages)
	}
}

func Test_Conversation_Is_Isolated_From_Others(t *testing.T) {
	req := require.New(t)
	repository := NewMessageRepository(openDB(t), slog.Default(), nil)
	at := time.Now().UTC()

	_, err := repository.StoreMessage("alice", "bob", "for bob", at)
	req.NoError(err)
	_, err = repository.StoreMessage("alice", "carol", "for carol", at)
	req.NoError(err)

	messages, _, err := repository.GetConversation("carol", "alice", nil)
	req.NoError(err)
	req.Len(messages, 1)
	req.Equal("for carol", messages[0].Text)
}

func Test_Conversation_Pages_Backwards_With_Limit(t *testing.T) {
	req := require.New(t)
	repository := NewMessageRepository(openDB(t), slog.Default(), lo.ToPtr(2))
	at := time.Now().UTC()

	texts := []string{"one", "two", "three", "four", "five"}
	for i, text := range texts {
		_, err := repository.StoreMessage("alice", "bob", text, at.Add(time.Duration(i)*time.Second))
		req.NoError(err)
	}

	textsOf := func(messages []domain.StoredMessage) []string {
		return lo.Map(messages, func(m domain.StoredMessage, _ int) string { return m.Text })
	}

	page, cursor, err := repository.GetConversation("alice", "bob", nil)
	req.NoError(err)
	req.Equal([]string{"four", "five"}, textsOf(page))
	req.NotNil(cursor)

	page, cursor, err = repository.GetConversation("alice", "bob", cursor)
	req.NoError(err)
	req.Equal([]string{"two", "three"}, textsOf(page))
	req.NotNil(cursor)

	page, cursor, err = repository.GetConversation("alice", "bob", cursor)
	req.NoError(err)
	req.Equal([]string{"one"}, textsOf(page))
	req.Nil(cursor)
}

func Test_Empty_Conversation(t *testing.T) {
	req := require.New(t)
	repository := NewMessageRepository(openDB(t), slog.Default(), nil)

	messages, cursor, err := repository.GetConversation("alice", "bob", nil)
	req.NoError(err)
	req.Empty(messages)
	req.Nil(cursor)
}
