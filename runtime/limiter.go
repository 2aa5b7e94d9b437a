package runtime

import (
	"sync"

	"golang.org/x/time/rate"
)

// ChannelLimiter applies a token bucket per channel id.
// A nil *ChannelLimiter allows everything.
type ChannelLimiter struct {
	limit rate.Limit
	burst int
	mu    sync.Mutex
	byID  map[string]*rate.Limiter
}

// NewChannelLimiter returns nil when rps or burst is not positive.
func NewChannelLimiter(rps float64, burst int) *ChannelLimiter {
	if rps <= 0 || burst <= 0 {
		return nil
	}
	return &ChannelLimiter{
		limit: rate.Limit(rps),
		burst: burst,
		byID:  make(map[string]*rate.Limiter),
	}
}

// Allow reports whether the channel may process one more inbound payload.
func (l *ChannelLimiter) Allow(channelID string) bool {
	if l == nil {
		return true
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	limiter, ok := l.byID[channelID]
	if !ok {
		limiter = rate.NewLimiter(l.limit, l.burst)
		l.byID[channelID] = limiter
	}
	return limiter.Allow()
}

// Forget drops the bucket of a closed channel.
func (l *ChannelLimiter) Forget(channelID string) {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.byID, channelID)
}
