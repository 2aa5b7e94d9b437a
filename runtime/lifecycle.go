package runtime

import (
	"chat-hub/contract"
	"chat-hub/domain"
	chaterrors "chat-hub/errors"
	"chat-hub/observability"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

const defaultTeardownTimeout = 5 * time.Second

// Lifecycle sequences connect, disconnect and inbound traffic of one channel.
// It keeps no state besides the inbound rate limiter.
type Lifecycle struct {
	registry        contract.IRegistry
	presence        contract.IPresenceTracker
	dispatcher      contract.IDispatcher
	statuses        contract.StatusStore
	limiter         *ChannelLimiter
	metrics         *observability.Metrics
	log             *slog.Logger
	teardownTimeout time.Duration
	now             func() time.Time
}

func NewLifecycle(log *slog.Logger, registry contract.IRegistry, presence contract.IPresenceTracker,
	dispatcher contract.IDispatcher, statuses contract.StatusStore, limiter *ChannelLimiter,
	metrics *observability.Metrics) *Lifecycle {
	return &Lifecycle{
		registry:        registry,
		presence:        presence,
		dispatcher:      dispatcher,
		statuses:        statuses,
		limiter:         limiter,
		metrics:         metrics,
		log:             log,
		teardownTimeout: defaultTeardownTimeout,
		now:             func() time.Time { return time.Now().UTC() },
	}
}

// HandleConnect runs the connect sequence on an accepted channel:
// register, greet, announce online, record the status.
// Each failing step stops the sequence. A channel that cannot be greeted is
// unregistered again; only an edge other channels of the user depend on is announced.
func (l *Lifecycle) HandleConnect(ctx context.Context, ch contract.Channel, userID domain.UserID) error {
	transition, err := l.registry.Register(userID, ch)
	if err != nil {
		return err
	}
	l.metrics.ChannelRegistered()

	if err = l.send(ctx, ch, domain.Greeting{Type: domain.TypeConnected, UserID: userID}); err != nil {
		l.rollback(ctx, ch, userID, transition)
		return fmt.Errorf("greeting %s: %w", userID, err)
	}

	l.presence.Announce(ctx, userID, transition)
	l.recordStatus(ctx, userID, true)
	l.log.Info("Channel connected",
		"user_id", userID,
		"channel_id", ch.ID(),
		"transition", transition.String())
	return nil
}

// rollback unregisters a channel that was never greeted and announces the net
// edge left by the channels of the same user that came and went meanwhile.
// Registered online, still online: a silent sibling joined, announce online.
// Registered silently, now offline: the siblings left silently, announce offline.
func (l *Lifecycle) rollback(ctx context.Context, ch contract.Channel, userID domain.UserID, registered domain.Transition) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), l.teardownTimeout)
	defer cancel()
	defer func() { _ = ch.Close() }()

	_, unregistered, err := l.registry.Unregister(ch)
	l.limiter.Forget(ch.ID())
	if err != nil {
		return
	}
	l.metrics.ChannelUnregistered()

	switch {
	case registered == domain.WentOnline && unregistered == domain.NoTransition:
		l.presence.Announce(ctx, userID, domain.WentOnline)
	case registered == domain.NoTransition && unregistered == domain.WentOffline:
		l.presence.Announce(ctx, userID, domain.WentOffline)
		l.recordStatus(ctx, userID, false)
	}
}

// HandleDisconnect runs the teardown sequence: unregister, announce offline on
// the last channel, record the status, release the channel.
// It may be called any number of times for the same channel; only the call
// that actually removes it does anything besides closing.
// Teardown is detached from ctx cancellation: a session torn down by its own
// context still has to notify and record.
func (l *Lifecycle) HandleDisconnect(ctx context.Context, ch contract.Channel) error {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), l.teardownTimeout)
	defer cancel()
	defer func() { _ = ch.Close() }()

	userID, transition, err := l.registry.Unregister(ch)
	// Forgotten after the channel left the registry, see HandleInboundPayload
	l.limiter.Forget(ch.ID())
	if errors.Is(err, chaterrors.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	l.metrics.ChannelUnregistered()

	l.presence.Announce(ctx, userID, transition)
	if transition == domain.WentOffline {
		l.recordStatus(ctx, userID, false)
	}
	l.log.Info("Channel disconnected",
		"user_id", userID,
		"channel_id", ch.ID(),
		"transition", transition.String())
	return nil
}

// HandleInboundPayload processes one raw payload read from ch.
// Malformed, unsupported or rate limited payloads are answered with an error
// payload on the same channel and the session goes on. The only error returned
// is ErrUnknownChannel, the channel has already been torn down.
func (l *Lifecycle) HandleInboundPayload(ctx context.Context, ch contract.Channel, raw []byte) error {
	// Ownership is checked after the bucket is taken: a bucket created while
	// the channel was being torn down is dropped here, not leaked.
	allowed := l.limiter.Allow(ch.ID())
	sender, ok := l.registry.OwnerOf(ch)
	if !ok {
		l.limiter.Forget(ch.ID())
		return fmt.Errorf("%w: %s", chaterrors.ErrUnknownChannel, ch.ID())
	}
	if !allowed {
		l.reject(ctx, ch, chaterrors.ErrRateLimited)
		return nil
	}

	envelope, err := domain.ParseEnvelope(raw)
	if err != nil {
		l.reject(ctx, ch, err)
		return nil
	}
	l.metrics.Inbound(envelope.Type)

	switch envelope.Type {
	case domain.TypePing:
		if err = l.send(ctx, ch, domain.Pong{Type: domain.TypePong}); err != nil {
			l.log.Debug("Pong not delivered", "channel_id", ch.ID(), "error", err)
		}
	case domain.TypePrivate:
		msg := domain.NewPrivateMessage(sender, envelope.Receiver, envelope.Text)
		delivery, err := l.dispatcher.Route(ctx, msg)
		if err != nil {
			l.reject(ctx, ch, err)
		}
		l.log.Debug("Private message routed",
			"sender", sender,
			"receiver", envelope.Receiver,
			"delivered", delivery.Delivered,
			"attempted", delivery.Attempted)
	}
	return nil
}

// reject reports a soft error to the sending channel.
func (l *Lifecycle) reject(ctx context.Context, ch contract.Channel, cause error) {
	l.metrics.Inbound("rejected")
	if err := l.send(ctx, ch, domain.ErrorPayload{Type: domain.TypeError, Error: cause.Error()}); err != nil {
		l.log.Debug("Error payload not delivered", "channel_id", ch.ID(), "error", err)
	}
}

func (l *Lifecycle) send(ctx context.Context, ch contract.Channel, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return l.dispatcher.SendToChannel(ctx, ch, payload)
}

// recordStatus persists online/last-seen. Storage failures are logged only.
func (l *Lifecycle) recordStatus(ctx context.Context, userID domain.UserID, online bool) {
	if l.statuses == nil {
		return
	}
	if err := l.statuses.SetOnlineStatus(ctx, userID, online, l.now()); err != nil {
		l.log.Warn("Online status not persisted",
			"user_id", userID,
			"online", online,
			"error", err)
	}
}
