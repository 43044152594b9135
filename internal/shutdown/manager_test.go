package shutdown

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"lingrow/internal/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestShutdownReverseOrder(t *testing.T) {
	m := NewManager(logger.Nop{}, time.Second)

	var mu sync.Mutex
	var order []string
	record := func(name string) Func {
		return func(context.Context) error {
			mu.Lock()
			defer mu.Unlock()
			order = append(order, name)
			return nil
		}
	}
	m.Register("store watcher", record("store watcher"))
	m.Register("controller", record("controller"))
	m.Register("failing", Func(func(context.Context) error { return errors.New("boom") }))

	m.Shutdown()
	m.Shutdown()

	select {
	case <-m.Done():
	default:
		t.Fatal("done not closed")
	}
	assert.Error(t, m.Context().Err())
	assert.Equal(t, []string{"controller", "store watcher"}, order)
}

func TestShutdownStepTimeout(t *testing.T) {
	m := NewManager(logger.Nop{}, 20*time.Millisecond)

	release := make(chan struct{})
	defer close(release)
	stopped := false
	m.Register("after", Func(func(context.Context) error { stopped = true; return nil }))
	m.Register("stuck", Func(func(ctx context.Context) error {
		select {
		case <-release:
		case <-ctx.Done():
		}
		return ctx.Err()
	}))

	start := time.Now()
	m.Shutdown()
	assert.Less(t, time.Since(start), time.Second)
	assert.True(t, stopped)
}

func TestListenStop(t *testing.T) {
	defer goleak.VerifyNone(t,
		goleak.IgnoreTopFunction("os/signal.signal_recv"),
		goleak.IgnoreTopFunction("os/signal.loop"),
	)

	m := NewManager(nil, 0)
	stop := m.Listen(nil)
	stop()
	stop()

	select {
	case <-m.Done():
		t.Fatal("shutdown ran without a signal")
	default:
	}
	require.NoError(t, m.Context().Err())
}
