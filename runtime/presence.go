package runtime

import (
	"chat-hub/contract"
	"chat-hub/domain"
	"chat-hub/observability"
	"context"
	"log/slog"
	"sync"
)

// PresenceTracker caches the online flag of every user and announces edges to contacts.
//
// The flag is written only from OccupancyChanged, which the Registry calls while
// holding its own lock, so the flag never disagrees with registry occupancy.
// Announcements are made later, outside that lock, by whoever mutated the registry.
type PresenceTracker struct {
	mu         sync.RWMutex
	online     map[domain.UserID]bool
	dispatcher contract.IDispatcher
	metrics    *observability.Metrics
	log        *slog.Logger
}

func NewPresenceTracker(log *slog.Logger, dispatcher contract.IDispatcher, metrics *observability.Metrics) *PresenceTracker {
	return &PresenceTracker{
		online:     make(map[domain.UserID]bool),
		dispatcher: dispatcher,
		metrics:    metrics,
		log:        log,
	}
}

// OccupancyChanged commits the new flag. Offline users are dropped from the map.
func (p *PresenceTracker) OccupancyChanged(userID domain.UserID, online bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if online {
		p.online[userID] = true
		return
	}
	delete(p.online, userID)
}

// Announce notifies the user's contacts of an edge exactly once.
// A failed notification is logged and dropped: the flag is already committed.
func (p *PresenceTracker) Announce(ctx context.Context, userID domain.UserID, transition domain.Transition) {
	status, ok := transition.Status()
	if !ok {
		return
	}
	p.metrics.Transition(transition)
	if err := p.dispatcher.NotifyContacts(ctx, userID, status); err != nil {
		p.log.Warn("Presence notification failed",
			"user_id", userID,
			"status", status,
			"error", err)
	}
}

func (p *PresenceTracker) IsOnline(userID domain.UserID) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.online[userID]
}
