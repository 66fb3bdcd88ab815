package workers

import (
	"context"
	"log/slog"
	"os"
	"roomchat/observability"
	"time"

	"github.com/shirou/gopsutil/process"
)

// Counter reports a current population size.
type Counter interface {
	Count() int
}

type CounterFunc func() int

func (f CounterFunc) Count() int { return f() }

// HeartbeatWorker periodically samples the server population and the
// process resources, publishes them as gauges and logs a summary line.
type HeartbeatWorker struct {
	log        *slog.Logger
	sessions   Counter
	rooms      Counter
	monitoring *observability.MonitoringManager
	interval   time.Duration
}

func NewHeartbeatWorker(log *slog.Logger, sessions, rooms Counter,
	monitoring *observability.MonitoringManager, interval time.Duration) *HeartbeatWorker {
	return &HeartbeatWorker{
		log:        log,
		sessions:   sessions,
		rooms:      rooms,
		monitoring: monitoring,
		interval:   interval,
	}
}

func (w *HeartbeatWorker) Run(ctx context.Context) error {
	w.log.Info("Starting heartbeat worker", "interval", w.interval)
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			stats := w.Sample(p)
			w.monitoring.Update(stats)
			w.log.Info("Heartbeat",
				"sessions", stats.Sessions,
				"rooms", stats.Rooms,
				"rss_bytes", stats.RSSBytes,
				"cpu_percent", stats.CPUPercent)
		}
	}
}

// Sample collects one snapshot. Process figures are left at zero when the
// OS refuses to report them.
func (w *HeartbeatWorker) Sample(p *process.Process) observability.MonitoringStats {
	stats := observability.MonitoringStats{
		Sessions: w.sessions.Count(),
		Rooms:    w.rooms.Count(),
	}
	if p == nil {
		return stats
	}
	rss, cpu, err := getSelfStats(p)
	if err != nil {
		w.log.Debug("Failed to collect self stats", "error", err)
		return stats
	}
	stats.RSSBytes = rss
	stats.CPUPercent = cpu
	return stats
}

// getSelfStats retrieves memory and CPU usage for the given process.
func getSelfStats(p *process.Process) (uint64, float64, error) {
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
