package workers

import (
	"chat-hub/contract"
	"context"
	"log/slog"
)

// Ensure *ChannelReaper implements the contract.Worker interface at compile time.
var _ contract.Worker = (*ChannelReaper)(nil)

// ChannelReaper tears down channels the dispatcher could not write to.
// The channel's transport has most likely failed already; the reaper makes sure
// the registry entry and presence are released even if no read error ever comes.
type ChannelReaper struct {
	lifecycle contract.ILifecycle
	broken    <-chan contract.Channel
	log       *slog.Logger
}

func NewChannelReaper(log *slog.Logger, lifecycle contract.ILifecycle, broken <-chan contract.Channel) *ChannelReaper {
	return &ChannelReaper{lifecycle: lifecycle, broken: broken, log: log}
}

func (w *ChannelReaper) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Stopping channel reaper")
			return ctx.Err()
		case ch, ok := <-w.broken:
			if !ok {
				w.log.Debug("Cleanup queue is closed")
				return nil
			}
			if err := w.lifecycle.HandleDisconnect(ctx, ch); err != nil {
				w.log.Warn("Broken channel cleanup failed", "channel_id", ch.ID(), "error", err)
			}
		}
	}
}
