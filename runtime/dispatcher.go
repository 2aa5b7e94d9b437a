package runtime

import (
	"chat-hub/contract"
	"chat-hub/domain"
	"chat-hub/observability"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/samber/lo"
)

// Dispatcher delivers payloads to the channels of a user.
//
// Delivery is best-effort and at-most-once: a failed channel is handed to the
// cleanup queue and never retried, and nothing is queued for offline users.
// Dispatcher holds no lock of its own; it works on registry snapshots.
type Dispatcher struct {
	registry    contract.IRegistry
	storage     contract.Storage
	moderator   contract.Moderator
	broken      chan<- contract.Channel
	sendTimeout time.Duration
	metrics     *observability.Metrics
	log         *slog.Logger
	now         func() time.Time
}

func NewDispatcher(log *slog.Logger, registry contract.IRegistry, storage contract.Storage,
	broken chan<- contract.Channel, sendTimeout time.Duration, metrics *observability.Metrics) *Dispatcher {
	return &Dispatcher{
		registry:    registry,
		storage:     storage,
		broken:      broken,
		sendTimeout: sendTimeout,
		metrics:     metrics,
		log:         log,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// WithModerator censors private message text before delivery and persistence.
func (d *Dispatcher) WithModerator(moderator contract.Moderator) *Dispatcher {
	d.moderator = moderator
	return d
}

// SendToChannel writes one payload, bounded by the send timeout.
// The returned error is a soft failure confined to this channel.
func (d *Dispatcher) SendToChannel(ctx context.Context, ch contract.Channel, payload []byte) error {
	if d.sendTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.sendTimeout)
		defer cancel()
	}
	err := ch.Send(ctx, payload)
	d.metrics.Send(err)
	if err != nil {
		return fmt.Errorf("send on channel %s: %w", ch.ID(), err)
	}
	return nil
}

// SendToUser delivers the payload on every channel the user has right now.
// Channels are written concurrently so that one slow or broken channel does not
// hold back the others. A user without channels is a silent no-op.
func (d *Dispatcher) SendToUser(ctx context.Context, userID domain.UserID, payload []byte) domain.Delivery {
	channels := d.registry.ChannelsFor(userID)
	delivery := domain.Delivery{Attempted: len(channels)}
	if len(channels) == 0 {
		return delivery
	}

	type sendResult struct {
		ch  contract.Channel
		err error
	}
	results := make(chan sendResult, len(channels))
	var wg sync.WaitGroup
	for _, ch := range channels {
		wg.Add(1)
		go func(ch contract.Channel) {
			defer wg.Done()
			results <- sendResult{ch: ch, err: d.SendToChannel(ctx, ch, payload)}
		}(ch)
	}
	wg.Wait()
	close(results)

	for res := range results {
		if res.err == nil {
			delivery.Delivered++
			continue
		}
		d.log.Warn("Delivery failed, scheduling channel cleanup",
			"user_id", userID,
			"channel_id", res.ch.ID(),
			"error", res.err)
		delivery.Failed = append(delivery.Failed, res.ch.ID())
		d.scheduleCleanup(res.ch)
	}
	return delivery
}

// scheduleCleanup hands a broken channel to the reaper.
// When the queue is full the channel is closed directly, its session goroutine
// then runs the regular disconnect sequence.
func (d *Dispatcher) scheduleCleanup(ch contract.Channel) {
	if d.broken != nil {
		select {
		case d.broken <- ch:
			return
		default:
			d.log.Warn("Cleanup queue full, closing channel", "channel_id", ch.ID())
		}
	}
	if err := ch.Close(); err != nil {
		d.log.Debug("Closing broken channel", "channel_id", ch.ID(), "error", err)
	}
}

// NotifyContacts sends a presence event to every contact of userID.
// Offline contacts are skipped silently. Only the contact fetch can fail.
func (d *Dispatcher) NotifyContacts(ctx context.Context, userID domain.UserID, status domain.Status) error {
	contacts, err := d.storage.GetContacts(ctx, userID)
	if err != nil {
		return fmt.Errorf("fetch contacts of %s: %w", userID, err)
	}
	if len(contacts) == 0 {
		return nil
	}

	payload, err := json.Marshal(domain.NewPresenceEvent(userID, status))
	if err != nil {
		return err
	}

	recipients := lo.Uniq(lo.Map(contacts, func(c domain.Contact, _ int) domain.UserID {
		return c.ID
	}))
	for _, contactID := range recipients {
		d.SendToUser(ctx, contactID, payload)
	}
	d.log.Debug("Presence announced",
		"user_id", userID,
		"status", status,
		"contacts", len(recipients))
	return nil
}

// Route delivers a private message to the receiver and records it.
// Recording does not depend on delivery: an unreachable receiver still gets
// the message in its history. Recording survives the sender going away mid-call.
func (d *Dispatcher) Route(ctx context.Context, msg domain.PrivateMessage) (domain.Delivery, error) {
	msg.Type = domain.TypePrivate
	if d.moderator != nil {
		msg.Text = d.moderator.Censor(msg.Text)
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		return domain.Delivery{}, err
	}
	delivery := d.SendToUser(ctx, msg.Receiver, payload)

	_, err = d.storage.PersistMessage(context.WithoutCancel(ctx), msg.Sender, msg.Receiver, msg.Text, d.now())
	d.metrics.Persisted(err)
	if err != nil {
		return delivery, fmt.Errorf("persist message from %s to %s: %w", msg.Sender, msg.Receiver, err)
	}
	return delivery, nil
}
