package workers

import (
	"chat-hub/contract"
	"chat-hub/observability"
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/shirou/gopsutil/process"
)

var _ contract.Worker = (*ProcessStatsWorker)(nil)

// ProcessStatsWorker samples memory and CPU of the hub process into the metrics.
type ProcessStatsWorker struct {
	log      *slog.Logger
	metrics  *observability.Metrics
	interval time.Duration
}

func NewProcessStatsWorker(log *slog.Logger, metrics *observability.Metrics, interval time.Duration) *ProcessStatsWorker {
	return &ProcessStatsWorker{log: log, metrics: metrics, interval: interval}
}

func (w *ProcessStatsWorker) Run(ctx context.Context) error {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return err
	}
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			rss, cpu, err := selfStats(p)
			if err != nil {
				w.log.Warn("Failed to collect process stats", "error", err)
				continue
			}
			w.metrics.Process(rss, cpu)
		}
	}
}

func selfStats(p *process.Process) (uint64, float64, error) {
	memInfo, err := p.MemoryInfo()
	if err != nil {
		return 0, 0, err
	}
	cpuPercent, err := p.CPUPercent()
	if err != nil {
		return 0, 0, err
	}
	return memInfo.RSS, cpuPercent, nil
}
