package job_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/samandr77/approval/pkg/job"
)

func TestService_RunsImmediatelyAndStops(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())

	var runs atomic.Int32

	s := job.NewService().RegisterJob("counter", time.Hour, func(context.Context) error {
		runs.Add(1)
		return nil
	})
	s.Start(ctx)

	// First run happens on start, not on the first tick.
	require.Eventually(t, func() bool { return runs.Load() >= 1 }, time.Second, 10*time.Millisecond)

	cancel()
	s.Stop()
}

func TestService_RecoversFromPanic(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var after atomic.Bool

	s := job.NewService().
		RegisterJob("panics", time.Hour, func(context.Context) error {
			panic("boom")
		}).
		RegisterJob("survives", time.Hour, func(context.Context) error {
			after.Store(true)
			return nil
		})
	s.Start(ctx)

	require.Eventually(t, func() bool { return after.Load() }, time.Second, 10*time.Millisecond)
}

func TestService_TryRegisterJobDisabled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())

	var ran atomic.Bool

	s := job.NewService().TryRegisterJob(false, "disabled", time.Millisecond, func(context.Context) error {
		ran.Store(true)
		return nil
	})
	s.Start(ctx)

	time.Sleep(50 * time.Millisecond)

	cancel()
	s.Stop()
	require.False(t, ran.Load())
}
