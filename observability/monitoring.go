package observability

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "roomchat"

// Delivery kinds used as label values.
const (
	KindBroadcast = "broadcast"
	KindWhisper   = "whisper"
	KindNotify    = "notify"
	KindSystem    = "system"
)

// MonitoringStats is the latest heartbeat snapshot.
type MonitoringStats struct {
	Sessions   int     `json:"sessions"`
	Rooms      int     `json:"rooms"`
	RSSBytes   uint64  `json:"rss_bytes"`
	CPUPercent float64 `json:"cpu_percent"`
}

// MonitoringManager owns the Prometheus collectors of the chat server.
// A nil *MonitoringManager is valid and records nothing.
type MonitoringManager struct {
	mu          sync.RWMutex
	latestStats MonitoringStats

	sessions         prometheus.Gauge
	rooms            prometheus.Gauge
	rssBytes         prometheus.Gauge
	cpuPercent       prometheus.Gauge
	connections      prometheus.Counter
	commands         *prometheus.CounterVec
	deliveries       *prometheus.CounterVec
	deliveryFailures *prometheus.CounterVec
	censoredWords    prometheus.Counter
	workerRestarts   *prometheus.CounterVec
}

func NewMonitoringManager(registerer prometheus.Registerer) *MonitoringManager {
	factory := promauto.With(registerer)
	return &MonitoringManager{
		sessions: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "sessions",
			Help:      "Registered sessions.",
		}),
		rooms: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "rooms",
			Help:      "Open rooms.",
		}),
		rssBytes: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "process_rss_bytes",
			Help:      "Resident memory of the server process.",
		}),
		cpuPercent: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "process_cpu_percent",
			Help:      "CPU usage of the server process.",
		}),
		connections: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "connections_total",
			Help:      "Accepted connections.",
		}),
		commands: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "commands_total",
			Help:      "Processed input lines by command.",
		}, []string{"command"}),
		deliveries: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "deliveries_total",
			Help:      "Lines delivered to a sink.",
		}, []string{"kind"}),
		deliveryFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "delivery_failures_total",
			Help:      "Lines that could not be delivered.",
		}, []string{"kind"}),
		censoredWords: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "censored_words_total",
			Help:      "Words replaced by the moderator.",
		}),
		workerRestarts: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "worker_restarts_total",
			Help:      "Supervised workers restarted after a failure.",
		}, []string{"worker"}),
	}
}

func (mm *MonitoringManager) IncrConnections() {
	if mm == nil {
		return
	}
	mm.connections.Inc()
}

func (mm *MonitoringManager) IncrCommand(command string) {
	if mm == nil {
		return
	}
	mm.commands.WithLabelValues(command).Inc()
}

func (mm *MonitoringManager) IncrDelivered(kind string) {
	if mm == nil {
		return
	}
	mm.deliveries.WithLabelValues(kind).Inc()
}

func (mm *MonitoringManager) IncrDeliveryFailure(kind string) {
	if mm == nil {
		return
	}
	mm.deliveryFailures.WithLabelValues(kind).Inc()
}

func (mm *MonitoringManager) AddCensoredWords(n int) {
	if mm == nil || n == 0 {
		return
	}
	mm.censoredWords.Add(float64(n))
}

// Update stores a heartbeat snapshot and refreshes the gauges.
func (mm *MonitoringManager) IncrWorkerRestart(worker string) {
	if mm == nil {
		return
	}
	mm.workerRestarts.WithLabelValues(worker).Inc()
}

func (mm *MonitoringManager) Update(stats MonitoringStats) {
	if mm == nil {
		return
	}
	mm.mu.Lock()
	mm.latestStats = stats
	mm.mu.Unlock()

	mm.sessions.Set(float64(stats.Sessions))
	mm.rooms.Set(float64(stats.Rooms))
	mm.rssBytes.Set(float64(stats.RSSBytes))
	mm.cpuPercent.Set(stats.CPUPercent)
}

func (mm *MonitoringManager) GetLatest() MonitoringStats {
	if mm == nil {
		return MonitoringStats{}
	}
	mm.mu.RLock()
	defer mm.mu.RUnlock()
	return mm.latestStats
}
