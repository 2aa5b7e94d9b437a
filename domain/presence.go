package domain

import "time"

type Status string

const (
	StatusOnline  Status = "online"
	StatusOffline Status = "offline"
)

// Transition is the presence edge produced by a registry mutation.
type Transition int

const (
	NoTransition Transition = iota
	WentOnline
	WentOffline
)

// Status returns the status announced for an edge, false when there is nothing to announce.
func (t Transition) Status() (Status, bool) {
	switch t {
	case WentOnline:
		return StatusOnline, true
	case WentOffline:
		return StatusOffline, true
	default:
		return "", false
	}
}

func (t Transition) String() string {
	if s, ok := t.Status(); ok {
		return string(s)
	}
	return "none"
}

// OnlineStatus is the persisted view of presence, including when the user was last seen.
type OnlineStatus struct {
	UserID   UserID
	Online   bool
	LastSeen time.Time
}

// Delivery summarizes a fan-out to every channel of one user.
type Delivery struct {
	Attempted int
	Delivered int
	Failed    []string // channel ids scheduled for cleanup
}
