//go:generate go run go.uber.org/mock/mockgen -source=history_service.go -destination=../mocks/mock_history_service.go -package=mocks
package services

import (
	"chat-hub/domain"
	"chat-hub/repositories"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

type IHistoryService interface {
	Conversation(userID, contactID domain.UserID, cursor *string) (HistoryPage, error)
}

type HistoryMessage struct {
	ID         uuid.UUID     `json:"id"`
	SenderID   domain.UserID `json:"sender_id"`
	ReceiverID domain.UserID `json:"receiver_id"`
	Text       string        `json:"text"`
	Timestamp  time.Time     `json:"timestamp"`
}

// HistoryPage holds messages oldest first. NextCursor fetches older messages
// and is nil on the first page of the conversation.
type HistoryPage struct {
	Messages   []HistoryMessage `json:"messages"`
	NextCursor *string          `json:"next_cursor,omitempty"`
}

type HistoryService struct {
	messageRepository repositories.IMessageRepository
}

func NewHistoryService(repo repositories.IMessageRepository) *HistoryService {
	return &HistoryService{messageRepository: repo}
}

func (s *HistoryService) Conversation(userID, contactID domain.UserID, cursor *string) (HistoryPage, error) {
	messages, next, err := s.messageRepository.GetConversation(userID, contactID, cursor)
	if err != nil {
		return HistoryPage{}, err
	}
	return HistoryPage{
		Messages: lo.Map(messages, func(m domain.StoredMessage, _ int) HistoryMessage {
			return HistoryMessage{
				ID:         m.ID,
				SenderID:   m.Sender,
				ReceiverID: m.Receiver,
				Text:       m.Text,
				Timestamp:  m.At,
			}
		}),
		NextCursor: next,
	}, nil
}
