// Package job runs named maintenance tasks on a fixed interval. Each task
// gets its own goroutine, runs once immediately on start and then on every
// tick, and is shielded by a recover so a panicking sweep cannot take the
// process down.
package job

import (
	"context"
	"log/slog"
	"runtime/debug"
	"sync"
	"time"
)

type task struct {
	name     string
	interval time.Duration
	run      func(ctx context.Context) error
}

type Service struct {
	tasks []task
	wg    sync.WaitGroup
}

func NewService() *Service {
	return &Service{}
}

// RegisterJob schedules fn to run every interval. Registration order is the
// start order; registering after Start has no effect.
func (s *Service) RegisterJob(name string, interval time.Duration, fn func(ctx context.Context) error) *Service {
	return s.TryRegisterJob(true, name, interval, fn)
}

// TryRegisterJob is RegisterJob behind a flag, for jobs toggled by config.
func (s *Service) TryRegisterJob(enabled bool, name string, interval time.Duration, fn func(ctx context.Context) error) *Service {
	if !enabled {
		return s
	}

	s.tasks = append(s.tasks, task{
		name:     name,
		interval: interval,
		run:      fn,
	})

	return s
}

// Start launches every registered task. Tasks stop when ctx is cancelled.
func (s *Service) Start(ctx context.Context) {
	for _, tk := range s.tasks {
		s.wg.Add(1)

		go s.loop(ctx, tk)
	}
}

func (s *Service) loop(ctx context.Context, tk task) {
	defer s.wg.Done()

	l := slog.Default().With("job", tk.name)

	ticker := time.NewTicker(tk.interval)
	defer ticker.Stop()

	for {
		if err := s.runOnce(ctx, tk); err != nil {
			l.Error("job run failed", "error", err)
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (s *Service) runOnce(ctx context.Context, tk task) (err error) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("job panicked", "job", tk.name, "panic", r, "stack", string(debug.Stack()))
		}
	}()

	return tk.run(ctx)
}

// Stop blocks until every task loop has observed cancellation and returned.
func (s *Service) Stop() {
	s.wg.Wait()
}
