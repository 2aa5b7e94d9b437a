package runtime

import (
	"chat-hub/contract"
	"chat-hub/domain"
	chaterrors "chat-hub/errors"
	"fmt"
	"sync"
)

// ChannelSet holds the live channels of one user keyed by channel id.
type ChannelSet map[string]contract.Channel

type Registry struct {
	mu       sync.RWMutex
	channels map[domain.UserID]ChannelSet // map user -> channels
	owners   map[string]domain.UserID     // map channel id -> user
	observer contract.OccupancyObserver
}

func NewRegistry() *Registry {
	return &Registry{
		channels: make(map[domain.UserID]ChannelSet),
		owners:   make(map[string]domain.UserID),
	}
}

// WithObserver attaches the observer told about 0->1 and 1->0 occupancy edges.
// It must be called before the registry is shared.
func (r *Registry) WithObserver(observer contract.OccupancyObserver) *Registry {
	r.observer = observer
	return r
}

// Register adds a channel under a user.
// Both maps and the observer are updated inside one critical section,
// so no reader can see a channel in one map and not the other.
// A channel already known under any user is a caller bug: ErrDuplicateChannel
// is returned and nothing changes.
func (r *Registry) Register(userID domain.UserID, ch contract.Channel) (domain.Transition, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if owner, ok := r.owners[ch.ID()]; ok {
		return domain.NoTransition, fmt.Errorf("%w: %s owned by %s", chaterrors.ErrDuplicateChannel, ch.ID(), owner)
	}

	set, ok := r.channels[userID]
	if !ok {
		set = make(ChannelSet)
		r.channels[userID] = set
	}
	set[ch.ID()] = ch
	r.owners[ch.ID()] = userID

	if len(set) > 1 {
		return domain.NoTransition, nil
	}
	if r.observer != nil {
		r.observer.OccupancyChanged(userID, true)
	}
	return domain.WentOnline, nil
}

// Unregister removes a channel from whichever user owns it.
// Unknown channels return ErrNotFound and leave the state untouched: transport
// and application may both detect the same close.
// The user key is deleted with its last channel, never left as an empty set.
func (r *Registry) Unregister(ch contract.Channel) (domain.UserID, domain.Transition, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	userID, ok := r.owners[ch.ID()]
	if !ok {
		return "", domain.NoTransition, chaterrors.ErrNotFound
	}
	delete(r.owners, ch.ID())

	set := r.channels[userID]
	delete(set, ch.ID())
	if len(set) > 0 {
		return userID, domain.NoTransition, nil
	}

	delete(r.channels, userID)
	if r.observer != nil {
		r.observer.OccupancyChanged(userID, false)
	}
	return userID, domain.WentOffline, nil
}

// ChannelsFor returns a copy of the user's channels, nil when offline.
// Sends on the copy happen without the lock.
func (r *Registry) ChannelsFor(userID domain.UserID) []contract.Channel {
	r.mu.RLock()
	defer r.mu.RUnlock()

	set, ok := r.channels[userID]
	if !ok {
		return nil
	}
	snapshot := make([]contract.Channel, 0, len(set))
	for _, ch := range set {
		snapshot = append(snapshot, ch)
	}
	return snapshot
}

func (r *Registry) OwnerOf(ch contract.Channel) (domain.UserID, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	userID, ok := r.owners[ch.ID()]
	return userID, ok
}

func (r *Registry) IsOnline(userID domain.UserID) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.channels[userID]) > 0
}

// Stats reports how many users and channels are registered.
func (r *Registry) Stats() (users, channels int) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.channels), len(r.owners)
}
