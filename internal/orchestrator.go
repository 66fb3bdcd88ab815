package internal

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"roomchat/infrastructure/admin"
	healthgrpc "roomchat/infrastructure/grpc"
	"roomchat/infrastructure/tcp"
	"roomchat/infrastructure/ws"
	"roomchat/moderation"
	"roomchat/observability"
	"roomchat/runtime"
	"roomchat/runtime/workers"
	"roomchat/services"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Orchestrator assembles the chat server: shared state, the command
// processor, every listener and the background workers, all run under one
// supervisor. It holds no chat logic of its own.
type Orchestrator struct {
	log        *slog.Logger
	config     Config
	supervisor *workers.Supervisor
	metrics    *prometheus.Registry
	monitoring *observability.MonitoringManager
	sessions   *runtime.SessionRegistry
	rooms      *runtime.RoomDirectory
	chat       *tcp.Server
	admin      *admin.Server
	health     *healthgrpc.HealthServer
	heartbeat  *workers.HeartbeatWorker
}

func NewOrchestrator(log *slog.Logger, config Config) (*Orchestrator, error) {
	metrics := prometheus.NewRegistry()
	metrics.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	monitoring := observability.NewMonitoringManager(metrics)

	sessions := runtime.NewSessionRegistry()
	rooms := runtime.NewRoomDirectory(sessions)
	router := runtime.NewRouter(log, sessions, rooms, monitoring, config.SinkTimeout)

	if config.CensoredWordsDir != "" {
		moderator, err := prepareModeration(log, config.CensoredWordsDir, config.CharReplacement)
		if err != nil {
			return nil, err
		}
		router.WithCensor(moderator)
	}

	processor := services.NewProcessor(log, sessions, rooms, router, monitoring, config.MaxNicknameLength)

	o := &Orchestrator{
		log:        log,
		config:     config,
		supervisor: workers.NewSupervisor(log, config.RestartInterval).WithRestartRecorder(monitoring),
		metrics:    metrics,
		monitoring: monitoring,
		sessions:   sessions,
		rooms:      rooms,
		chat:       tcp.NewServer(log, config.Address(config.Port), processor, config.MaxLineLength, config.IdleTimeout),
		heartbeat: workers.NewHeartbeatWorker(log, sessions, workers.CounterFunc(rooms.RoomCount),
			monitoring, config.HeartbeatInterval),
	}
	if config.AdminPort > 0 {
		wsHandler := ws.NewHandler(log, processor, config.MaxLineLength, config.IdleTimeout)
		o.admin = admin.NewServer(log, config.Address(config.AdminPort), metrics, monitoring, wsHandler)
	}
	if config.GrpcHealthPort > 0 {
		o.health = healthgrpc.NewHealthServer(log, config.Address(config.GrpcHealthPort))
	}
	return o, nil
}

// prepareModeration loads the word lists and builds the Aho-Corasick automaton.
func prepareModeration(log *slog.Logger, dir, charReplacement string) (*moderation.Moderator, error) {
	char, err := CharacterRune(charReplacement)
	if err != nil {
		return nil, err
	}
	loader := moderation.NewCensoredLoader(os.DirFS(dir))
	data, err := loader.LoadAll(".")
	if err != nil {
		return nil, fmt.Errorf("loading censored words from %s: %w", dir, err)
	}
	log.Info(fmt.Sprintf("%d censored files loaded [%s]",
		len(data.Languages), strings.Join(data.Languages, ",")))
	log.Info(fmt.Sprintf("%d unique censored words loaded", len(data.Words)))
	return moderation.NewModerator(data.Words, char, log)
}

// Listen binds every enabled port, so a busy port fails startup instead of
// looping in the supervisor.
func (o *Orchestrator) Listen() error {
	if err := o.chat.Listen(); err != nil {
		return err
	}
	if o.admin != nil {
		if err := o.admin.Listen(); err != nil {
			return err
		}
	}
	if o.health != nil {
		if err := o.health.Listen(); err != nil {
			return err
		}
	}
	return nil
}

// Start runs all workers and blocks until ctx is canceled or Stop is called.
func (o *Orchestrator) Start(ctx context.Context) error {
	if err := o.Listen(); err != nil {
		return err
	}
	o.supervisor.Add(o.chat, o.heartbeat)
	if o.admin != nil {
		o.supervisor.Add(o.admin)
	}
	if o.health != nil {
		o.supervisor.Add(o.health)
	}
	o.log.Info("Starting orchestrator and all supervised workers")
	o.supervisor.Run(ctx)
	return nil
}

func (o *Orchestrator) Stop() {
	o.log.Info("Requesting orchestrator shutdown")
	o.supervisor.Stop()
}

func (o *Orchestrator) ChatAddr() string { return o.chat.Addr() }

// AdminAddr is empty when the admin server is disabled.
func (o *Orchestrator) AdminAddr() string {
	if o.admin == nil {
		return ""
	}
	return o.admin.Addr()
}

func (o *Orchestrator) HealthAddr() string {
	if o.health == nil {
		return ""
	}
	return o.health.Addr()
}

// Stats samples the live population without touching the gauges.
func (o *Orchestrator) Stats() observability.MonitoringStats {
	return o.heartbeat.Sample(nil)
}
