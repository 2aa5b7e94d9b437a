// Package observability exposes the hub's Prometheus metrics.
// A nil *Metrics is valid and records nothing.
package observability

import (
	"chat-hub/domain"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "chat_hub"

type Metrics struct {
	channels    prometheus.Gauge
	onlineUsers prometheus.Gauge
	transitions *prometheus.CounterVec
	deliveries  *prometheus.CounterVec
	inbound     *prometheus.CounterVec
	persisted   *prometheus.CounterVec
	queueDepth  prometheus.Gauge
	processRSS  prometheus.Gauge
	processCPU  prometheus.Gauge
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		channels: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "channels",
			Help:      "Channels currently registered.",
		}),
		onlineUsers: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "online_users",
			Help:      "Users with at least one registered channel.",
		}),
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "presence_transitions_total",
			Help:      "Presence edges by resulting status.",
		}, []string{"status"}),
		deliveries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "channel_sends_total",
			Help:      "Channel writes by outcome.",
		}, []string{"outcome"}),
		inbound: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "inbound_payloads_total",
			Help:      "Inbound payloads by type, rejected payloads under type \"rejected\".",
		}, []string{"type"}),
		persisted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "messages_persisted_total",
			Help:      "Private messages handed to storage by outcome.",
		}, []string{"outcome"}),
		queueDepth: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "cleanup_queue_depth",
			Help:      "Broken channels waiting for the reaper.",
		}),
		processRSS: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "process_rss_bytes",
			Help:      "Resident memory of the hub process.",
		}),
		processCPU: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "process_cpu_percent",
			Help:      "CPU usage of the hub process.",
		}),
	}
	reg.MustRegister(m.channels, m.onlineUsers, m.transitions, m.deliveries, m.inbound, m.persisted,
		m.queueDepth, m.processRSS, m.processCPU)
	return m
}

func (m *Metrics) ChannelRegistered() {
	if m == nil {
		return
	}
	m.channels.Inc()
}

func (m *Metrics) ChannelUnregistered() {
	if m == nil {
		return
	}
	m.channels.Dec()
}

func (m *Metrics) Transition(t domain.Transition) {
	if m == nil {
		return
	}
	status, ok := t.Status()
	if !ok {
		return
	}
	m.transitions.WithLabelValues(string(status)).Inc()
	if t == domain.WentOnline {
		m.onlineUsers.Inc()
	} else {
		m.onlineUsers.Dec()
	}
}

func (m *Metrics) Send(err error) {
	if m == nil {
		return
	}
	outcome := "delivered"
	if err != nil {
		outcome = "failed"
	}
	m.deliveries.WithLabelValues(outcome).Inc()
}

func (m *Metrics) Inbound(payloadType string) {
	if m == nil {
		return
	}
	m.inbound.WithLabelValues(payloadType).Inc()
}

func (m *Metrics) Persisted(err error) {
	if m == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "failed"
	}
	m.persisted.WithLabelValues(outcome).Inc()
}

func (m *Metrics) CleanupQueue(depth int) {
	if m == nil {
		return
	}
	m.queueDepth.Set(float64(depth))
}

func (m *Metrics) Process(rss uint64, cpuPercent float64) {
	if m == nil {
		return
	}
	m.processRSS.Set(float64(rss))
	m.processCPU.Set(cpuPercent)
}
