package workers

import (
	"context"
	"log/slog"
	"roomchat/contract"
	"roomchat/errors"
	"sync"
	"time"
)

const (
	defaultRestartInterval = 200 * time.Millisecond
	maxRestartInterval     = 5 * time.Second
)

// RestartRecorder is told every time a worker is restarted.
type RestartRecorder interface {
	IncrWorkerRestart(worker string)
}

// Supervisor keeps the chat listeners and background jobs alive.
// A worker that panics or returns an error is restarted, first after
// restartInterval and then with a doubling delay capped at
// maxRestartInterval. A run that lasted longer than the cap resets the delay.
// A nil return ends the worker for good.
type Supervisor struct {
	Cancel          context.CancelFunc
	wg              *sync.WaitGroup
	log             *slog.Logger
	restartInterval time.Duration
	recorder        RestartRecorder
	workers         []contract.Worker
}

func NewSupervisor(log *slog.Logger, restartInterval time.Duration) *Supervisor {
	if restartInterval <= 0 {
		restartInterval = defaultRestartInterval
	}
	return &Supervisor{wg: &sync.WaitGroup{}, log: log, restartInterval: restartInterval}
}

// WithRestartRecorder reports restarts to recorder. It must be called before Run.
func (s *Supervisor) WithRestartRecorder(recorder RestartRecorder) *Supervisor {
	s.recorder = recorder
	return s
}

// Run starts the registered workers and blocks until they all returned.
// Canceling ctx or calling Stop ends them.
func (s *Supervisor) Run(ctx context.Context) {
	supervisedCtx, cancel := context.WithCancel(ctx)
	s.Cancel = cancel
	defer s.Cancel()

	for _, worker := range s.workers {
		s.Start(supervisedCtx, worker)
	}
	s.wg.Wait()
}

func (s *Supervisor) Add(worker ...contract.Worker) contract.ISupervisor {
	s.workers = append(s.workers, worker...)
	return s
}

// Start supervises worker in its own goroutine.
func (s *Supervisor) Start(ctx context.Context, worker contract.Worker) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.supervise(ctx, worker)
	}()
}

func (s *Supervisor) supervise(ctx context.Context, worker contract.Worker) {
	name := contract.GetWorkerName(worker)
	log := s.log.With("worker", name)
	delay := s.restartInterval

	for ctx.Err() == nil {
		started := time.Now()
		err := s.runOnce(ctx, log, worker)
		switch {
		case err == nil:
			log.Info("Worker finished")
			return
		case ctx.Err() != nil:
			log.Info("Worker stopped", "error", err)
			return
		}

		if time.Since(started) > maxRestartInterval {
			delay = s.restartInterval
		}
		log.Warn("Worker failed, restarting", "error", err, "retry_in", delay)
		select {
		case <-ctx.Done():
			return
		case <-time.After(delay):
		}
		delay = min(delay*2, maxRestartInterval)
		if s.recorder != nil {
			s.recorder.IncrWorkerRestart(name)
		}
	}
	log.Info("Worker not started, supervisor stopping")
}

// runOnce turns a panic into ErrWorkerPanic.
func (s *Supervisor) runOnce(ctx context.Context, log *slog.Logger, worker contract.Worker) (err error) {
	defer func() {
		if r := recover(); r != nil {
			log.Error("Worker panicked", "panic", r)
			err = errors.ErrWorkerPanic
		}
	}()
	return worker.Run(ctx)
}

// Stop cancels every supervised worker. Run returns once they are done.
func (s *Supervisor) Stop() {
	if s.Cancel != nil {
		s.Cancel()
	}
}
