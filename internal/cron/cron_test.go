package cron

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/linskybing/form-console/internal/application"
	"github.com/linskybing/form-console/internal/repository"
	"github.com/linskybing/form-console/internal/repository/mock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestRun_RepeatsAndStops(t *testing.T) {
	var calls atomic.Int32
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, zap.NewNop(), Task{
			Name:     "count",
			Interval: 5 * time.Millisecond,
			Run: func(context.Context) error {
				if calls.Add(1) == 2 {
					return errors.New("transient")
				}
				return nil
			},
		})
	}()

	assert.Eventually(t, func() bool { return calls.Load() >= 3 }, time.Second, time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Run did not stop")
	}
}

func TestAuditCleanup(t *testing.T) {
	ctrl := gomock.NewController(t)
	audits := mock.NewMockAuditRepo(ctrl)
	svc := application.NewAuditService(&repository.Repos{Audit: audits})

	audits.EXPECT().DeleteOldAuditLogs(30).Return(int64(4), nil)

	task := AuditCleanup(svc, 30, zap.NewNop())
	assert.Equal(t, 24*time.Hour, task.Interval)
	assert.NoError(t, task.Run(context.Background()))
}
