//go:generate go run go.uber.org/mock/mockgen -source=user.go -destination=../mocks/mock_user_repository.go -package=mocks
package repositories

import (
	"chat-hub/domain"
	"chat-hub/errors"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

type IUserRepository interface {
	CreateUser(username, hashedPassword string) (domain.User, error)
	GetUserByUsername(username string) (domain.User, error)
	GetUserByID(id domain.UserID) (domain.User, error)
}

type UserRepository struct {
	db *badger.DB
}

func NewUserRepository(db *badger.DB) *UserRepository {
	return &UserRepository{db: db}
}

type diskUser struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"password_hash"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}

func userIDKey(id domain.UserID) []byte { return []byte("user:id:" + id.String()) }

func usernameKey(username string) []byte { return []byte("user:name:" + username) }

// CreateUser persists a new active user under a fresh id.
// The username index and the record are written in the same transaction,
// a taken username returns ErrUserAlreadyExists.
func (u UserRepository) CreateUser(username, hashedPassword string) (domain.User, error) {
	user := diskUser{
		ID:           uuid.New().String(),
		Username:     username,
		PasswordHash: hashedPassword,
		IsActive:     true,
		CreatedAt:    time.Now().UTC(),
	}
	data, err := json.Marshal(user)
	if err != nil {
		return domain.User{}, fmt.Errorf("marshal failed: %w", err)
	}

	err = u.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(usernameKey(username)); err == nil {
			return errors.ErrUserAlreadyExists
		}
		if err := txn.Set(usernameKey(username), []byte(user.ID)); err != nil {
			return err
		}
		return txn.Set(userIDKey(domain.UserID(user.ID)), data)
	})
	if err != nil {
		return domain.User{}, err
	}
	return toUser(user), nil
}

func (u UserRepository) GetUserByUsername(username string) (domain.User, error) {
	var user diskUser
	err := u.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(usernameKey(username))
		if err != nil {
			return err
		}
		id, err := item.ValueCopy(nil)
		if err != nil {
			return err
		}
		return readUser(txn, domain.UserID(id), &user)
	})
	if err != nil {
		return domain.User{}, notFound(err)
	}
	return toUser(user), nil
}

func (u UserRepository) GetUserByID(id domain.UserID) (domain.User, error) {
	var user diskUser
	err := u.db.View(func(txn *badger.Txn) error {
		return readUser(txn, id, &user)
	})
	if err != nil {
		return domain.User{}, notFound(err)
	}
	return toUser(user), nil
}

func readUser(txn *badger.Txn, id domain.UserID, user *diskUser) error {
	item, err := txn.Get(userIDKey(id))
	if err != nil {
		return err
	}
	return item.Value(func(val []byte) error {
		return json.Unmarshal(val, user)
	})
}

func notFound(err error) error {
	if err == badger.ErrKeyNotFound {
		return errors.ErrUserNotFound
	}
	return err
}

func toUser(user diskUser) domain.User {
	return domain.User{
		ID:           domain.UserID(user.ID),
		Username:     user.Username,
		PasswordHash: user.PasswordHash,
		IsActive:     user.IsActive,
		CreatedAt:    user.CreatedAt,
	}
}
