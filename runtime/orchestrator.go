// Package runtime holds the connection registry, presence tracking and message fan-out.
// It owns no business rules of accounts, credentials or storage; those come in
// through the contract interfaces.
package runtime

import (
	"chat-hub/contract"
	"chat-hub/observability"
	"chat-hub/runtime/workers"
	"context"
	"log/slog"
	"time"
)

type Settings struct {
	SendTimeout      time.Duration
	ReaperBufferSize int
	RestartInterval  time.Duration
	InboundRate      float64
	InboundBurst     int
	// StatsInterval paces queue and process sampling, zero disables it
	StatsInterval time.Duration
}

// Orchestrator builds the hub components with explicit ownership and runs the
// background workers they need.
type Orchestrator struct {
	log        *slog.Logger
	registry   *Registry
	presence   *PresenceTracker
	dispatcher *Dispatcher
	lifecycle  *Lifecycle
	supervisor *workers.Supervisor
	broken     chan contract.Channel
}

func NewOrchestrator(log *slog.Logger, storage contract.Storage, moderator contract.Moderator,
	metrics *observability.Metrics, settings Settings) *Orchestrator {
	broken := make(chan contract.Channel, settings.ReaperBufferSize)

	registry := NewRegistry()
	dispatcher := NewDispatcher(log, registry, storage, broken, settings.SendTimeout, metrics)
	if moderator != nil {
		dispatcher.WithModerator(moderator)
	}
	presence := NewPresenceTracker(log, dispatcher, metrics)
	registry.WithObserver(presence)

	limiter := NewChannelLimiter(settings.InboundRate, settings.InboundBurst)
	lifecycle := NewLifecycle(log, registry, presence, dispatcher, storage, limiter, metrics)

	supervisor := workers.NewSupervisor(log, settings.RestartInterval).
		Add(workers.NewChannelReaper(log, lifecycle, broken))
	if settings.StatsInterval > 0 {
		supervisor.Add(
			workers.NewQueueDepthWorker(log, broken, metrics, settings.StatsInterval),
			workers.NewProcessStatsWorker(log, metrics, settings.StatsInterval),
		)
	}

	return &Orchestrator{
		log:        log,
		registry:   registry,
		presence:   presence,
		dispatcher: dispatcher,
		lifecycle:  lifecycle,
		supervisor: supervisor,
		broken:     broken,
	}
}

func (o *Orchestrator) Lifecycle() contract.ILifecycle { return o.lifecycle }

func (o *Orchestrator) Registry() contract.IRegistry { return o.registry }

// Presence answers live online questions for the REST layer.
func (o *Orchestrator) Presence() contract.PresenceReader { return o.presence }

// Start runs the supervised workers and blocks until Stop or ctx cancellation.
func (o *Orchestrator) Start(ctx context.Context) {
	o.log.Info("Starting orchestrator and all supervised workers")
	o.supervisor.Run(ctx)
}

// Stop cancels the workers. Live channels are left to their sessions.
func (o *Orchestrator) Stop() {
	o.log.Info("Requesting orchestrator shutdown")
	o.supervisor.Stop()
	users, channels := o.registry.Stats()
	o.log.Debug("Registry at shutdown", "users", users, "channels", channels)
}
