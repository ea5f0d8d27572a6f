// Package cron runs the API's periodic housekeeping.
package cron

import (
	"context"
	"sync"
	"time"

	"github.com/linskybing/form-console/internal/api/middleware"
	"github.com/linskybing/form-console/internal/application"
	"github.com/linskybing/form-console/internal/session"
	"go.uber.org/zap"
)

// Task is one periodic job. Run is called once at start and then every Interval.
type Task struct {
	Name     string
	Interval time.Duration
	Run      func(ctx context.Context) error
}

// Run drives every task until ctx is done. Task failures are logged and the
// task keeps its schedule.
func Run(ctx context.Context, log *zap.Logger, tasks ...Task) error {
	var wg sync.WaitGroup
	for _, task := range tasks {
		wg.Add(1)
		go func(task Task) {
			defer wg.Done()
			runTask(ctx, log, task)
		}(task)
	}
	wg.Wait()
	return nil
}

func runTask(ctx context.Context, log *zap.Logger, task Task) {
	log.Info("starting background task", zap.String("task", task.Name), zap.Duration("interval", task.Interval))

	run := func() {
		if err := task.Run(ctx); err != nil {
			log.Warn("background task failed", zap.String("task", task.Name), zap.Error(err))
		}
	}

	// Run immediately on startup
	run()

	ticker := time.NewTicker(task.Interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			run()
		}
	}
}

// AuditCleanup deletes audit entries older than retentionDays once a day.
func AuditCleanup(svc *application.AuditService, retentionDays int, log *zap.Logger) Task {
	return Task{
		Name:     "audit-cleanup",
		Interval: 24 * time.Hour,
		Run: func(context.Context) error {
			n, err := svc.CleanupOldLogs(retentionDays)
			if err != nil {
				return err
			}
			log.Info("audit log cleanup completed", zap.Int64("deleted", n), zap.Int("retention_days", retentionDays))
			return nil
		},
	}
}

// RevokerSweep forgets revoked tokens that have expired anyway.
func RevokerSweep(rev *session.MemoryRevoker, interval time.Duration) Task {
	return Task{
		Name:     "revoker-sweep",
		Interval: interval,
		Run: func(context.Context) error {
			rev.Sweep()
			return nil
		},
	}
}

// LimiterSweep drops login limiters for clients idle for two hours.
func LimiterSweep(l *middleware.RateLimiter) Task {
	return Task{
		Name:     "login-limiter-sweep",
		Interval: time.Hour,
		Run: func(context.Context) error {
			l.Sweep(2 * time.Hour)
			return nil
		},
	}
}
