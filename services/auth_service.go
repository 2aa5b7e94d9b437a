//go:generate go run go.uber.org/mock/mockgen -source=auth_service.go -destination=../mocks/mock_auth_service.go -package=mocks
package services

import (
	"chat-hub/auth"
	"chat-hub/contract"
	"chat-hub/domain"
	"chat-hub/errors"
	"chat-hub/repositories"
	"fmt"
	"time"
)

type IAuthService interface {
	Register(username, password string) (domain.User, error)
	Login(username, password string) (auth.Token, error)
	Me(userID domain.UserID) (Profile, error)
}

// Profile is the public view of an account.
type Profile struct {
	ID        domain.UserID `json:"id"`
	Username  string        `json:"username"`
	CreatedAt time.Time     `json:"created_at"`
	IsOnline  bool          `json:"is_online"`
}

type AuthService struct {
	userRepository repositories.IUserRepository
	issuer         *auth.Issuer
	presence       contract.PresenceReader
}

func NewAuthService(repo repositories.IUserRepository, issuer *auth.Issuer, presence contract.PresenceReader) *AuthService {
	return &AuthService{userRepository: repo, issuer: issuer, presence: presence}
}

func (s *AuthService) Register(username, password string) (domain.User, error) {
	// Validated before any expensive cryptographic operation
	if err := auth.ValidateRegister(auth.RegisterRequest{Username: username, Password: password}); err != nil {
		return domain.User{}, err
	}

	// The repository never sees plain passwords
	hashedPassword, err := auth.HashPassword(password)
	if err != nil {
		return domain.User{}, fmt.Errorf("hashing failed: %w", err)
	}

	// Will propagate ErrUserAlreadyExists if the username is taken
	return s.userRepository.CreateUser(username, hashedPassword)
}

func (s *AuthService) Login(username, password string) (auth.Token, error) {
	user, err := s.userRepository.GetUserByUsername(username)
	if err != nil {
		// Generic error to prevent user enumeration attacks
		return auth.Token{}, errors.ErrInvalidCredentials
	}

	match, err := auth.ComparePassword(password, user.PasswordHash)
	if err != nil || !match || !user.IsActive {
		return auth.Token{}, errors.ErrInvalidCredentials
	}

	return s.issuer.Issue(user.ID, user.Username)
}

func (s *AuthService) Me(userID domain.UserID) (Profile, error) {
	user, err := s.userRepository.GetUserByID(userID)
	if err != nil {
		return Profile{}, err
	}
	return Profile{
		ID:        user.ID,
		Username:  user.Username,
		CreatedAt: user.CreatedAt,
		IsOnline:  s.presence.IsOnline(user.ID),
	}, nil
}
