package cron

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

type job struct {
	name     string
	interval time.Duration
	run      func(ctx context.Context) error
}

// Scheduler drives background refresh jobs on fixed intervals. Register
// jobs with Every before calling Start; each job runs once immediately and
// then on its ticker until Stop cancels the shared context.
type Scheduler struct {
	logger *slog.Logger
	jobs   []job
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewScheduler(logger *slog.Logger) *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		logger: logger,
		ctx:    ctx,
		cancel: cancel,
	}
}

// Every registers a job. Not safe to call after Start.
func (s *Scheduler) Every(interval time.Duration, name string, run func(ctx context.Context) error) {
	s.jobs = append(s.jobs, job{name: name, interval: interval, run: run})
	s.logger.Info("cron job registered", "job", name, "interval", interval.String())
}

// Start launches one goroutine per registered job.
func (s *Scheduler) Start() {
	for _, j := range s.jobs {
		s.wg.Add(1)
		go s.loop(j)
	}
	s.logger.Info("cron scheduler started", "jobs", len(s.jobs))
}

// Stop cancels all jobs and waits for in-flight runs to finish.
func (s *Scheduler) Stop() {
	s.cancel()
	s.wg.Wait()
	s.logger.Info("cron scheduler stopped")
}

func (s *Scheduler) loop(j job) {
	defer s.wg.Done()

	// First run happens at startup so today_status is never stale for a
	// full interval after a deploy.
	s.runJob(j)

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.ctx.Done():
			return
		case <-ticker.C:
			s.runJob(j)
		}
	}
}

func (s *Scheduler) runJob(j job) {
	start := time.Now()
	if err := j.run(s.ctx); err != nil {
		s.logger.Error("cron job failed", "job", j.name, "error", err, "elapsed", time.Since(start).String())
		return
	}
	s.logger.Debug("cron job completed", "job", j.name, "elapsed", time.Since(start).String())
}
