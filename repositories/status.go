//go:generate go run go.uber.org/mock/mockgen -source=status.go -destination=../mocks/mock_status_repository.go -package=mocks
package repositories

import (
	"chat-hub/domain"
	"encoding/json"
	"time"

	"github.com/dgraph-io/badger/v4"
)

type IStatusRepository interface {
	SetOnlineStatus(userID domain.UserID, online bool, lastSeen time.Time) error
	GetOnlineStatus(userID domain.UserID) (domain.OnlineStatus, error)
}

type StatusRepository struct {
	db *badger.DB
}

func NewStatusRepository(db *badger.DB) *StatusRepository {
	return &StatusRepository{db: db}
}

type diskStatus struct {
	Online   bool  `json:"online"`
	LastSeen int64 `json:"last_seen"`
}

func statusKey(userID domain.UserID) []byte { return []byte("status:" + userID.String()) }

func (s StatusRepository) SetOnlineStatus(userID domain.UserID, online bool, lastSeen time.Time) error {
	data, err := json.Marshal(diskStatus{Online: online, LastSeen: lastSeen.UnixNano()})
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(statusKey(userID), data)
	})
}

// GetOnlineStatus returns the last recorded status.
// A user never seen connected is reported offline with a zero LastSeen.
func (s StatusRepository) GetOnlineStatus(userID domain.UserID) (domain.OnlineStatus, error) {
	status := domain.OnlineStatus{UserID: userID}
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(statusKey(userID))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			var disk diskStatus
			if err := json.Unmarshal(val, &disk); err != nil {
				return err
			}
			status.Online = disk.Online
			status.LastSeen = time.Unix(0, disk.LastSeen).UTC()
			return nil
		})
	})
	if err == badger.ErrKeyNotFound {
		return status, nil
	}
	if err != nil {
		return domain.OnlineStatus{}, err
	}
	return status, nil
}
