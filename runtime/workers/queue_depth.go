package workers

import (
	"chat-hub/contract"
	"chat-hub/observability"
	"context"
	"log/slog"
	"time"
)

var _ contract.Worker = (*QueueDepthWorker)(nil)

// QueueDepthWorker periodically samples the length of the cleanup queue.
// Reading len and cap of a channel does not block, the sample may be slightly
// stale by the time it is reported.
type QueueDepthWorker struct {
	log      *slog.Logger
	queue    chan contract.Channel
	metrics  *observability.Metrics
	interval time.Duration
}

func NewQueueDepthWorker(log *slog.Logger, queue chan contract.Channel,
	metrics *observability.Metrics, interval time.Duration) *QueueDepthWorker {
	return &QueueDepthWorker{log: log, queue: queue, metrics: metrics, interval: interval}
}

func (w *QueueDepthWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Context done, stopping queue sampling")
			return nil
		case <-ticker.C:
			w.sample()
		}
	}
}

func (w *QueueDepthWorker) sample() {
	length, capacity := len(w.queue), cap(w.queue)
	w.metrics.CleanupQueue(length)
	// Past 80% the dispatcher is about to close channels directly
	if capacity > 0 && length*5 >= capacity*4 {
		w.log.Warn("Cleanup queue nearly full", "length", length, "capacity", capacity)
	}
}
