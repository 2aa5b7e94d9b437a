// Package domain contains core concepts of the chat hub.
// No runtime, network, or storage logic should be added here.
package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// UserID is the stable identity of an account, independent of any connection.
type UserID string

func (id UserID) String() string { return string(id) }

// UnmarshalJSON accepts both "42" and 42, some clients send numeric identifiers.
func (id *UserID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = UserID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("user id must be a string or a number: %w", err)
	}
	*id = UserID(n.String())
	return nil
}

type User struct {
	ID           UserID
	Username     string
	PasswordHash string
	IsActive     bool
	CreatedAt    time.Time
}

// Contact is one entry of a user's directional contact list.
type Contact struct {
	ID          UserID
	DisplayName string
}
