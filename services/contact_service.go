//go:generate go run go.uber.org/mock/mockgen -source=contact_service.go -destination=../mocks/mock_contact_service.go -package=mocks
package services

import (
	"chat-hub/contract"
	"chat-hub/domain"
	"chat-hub/errors"
	"chat-hub/repositories"

	"github.com/samber/lo"
)

type IContactService interface {
	Add(userID, contactID domain.UserID) (ContactView, error)
	List(userID domain.UserID) ([]ContactView, error)
}

// ContactView is a contact as shown to its owner, with live presence.
type ContactView struct {
	ContactID domain.UserID `json:"contact_id"`
	Username  string        `json:"username"`
	IsOnline  bool          `json:"is_online"`
}

type ContactService struct {
	contactRepository repositories.IContactRepository
	presence          contract.PresenceReader
}

func NewContactService(repo repositories.IContactRepository, presence contract.PresenceReader) *ContactService {
	return &ContactService{contactRepository: repo, presence: presence}
}

// Add puts contactID in the list of userID. The target must exist and must not
// be userID itself or already listed.
func (s *ContactService) Add(userID, contactID domain.UserID) (ContactView, error) {
	if userID == contactID {
		return ContactView{}, errors.ErrSelfContact
	}
	contact, err := s.contactRepository.AddContact(userID, contactID)
	if err != nil {
		return ContactView{}, err
	}
	return s.view(contact), nil
}

func (s *ContactService) List(userID domain.UserID) ([]ContactView, error) {
	contacts, err := s.contactRepository.GetContacts(userID)
	if err != nil {
		return nil, err
	}
	return lo.Map(contacts, func(c domain.Contact, _ int) ContactView {
		return s.view(c)
	}), nil
}

func (s *ContactService) view(c domain.Contact) ContactView {
	return ContactView{
		ContactID: c.ID,
		Username:  c.DisplayName,
		IsOnline:  s.presence.IsOnline(c.ID),
	}
}
