package shutdown

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"lingrow/internal/logger"
)

const (
	component      = "ShutdownManager"
	DefaultTimeout = 5 * time.Second
)

// Component is anything that must release resources before exit.
type Component interface {
	Shutdown(ctx context.Context) error
}

// Func adapts a plain function to Component.
type Func func(ctx context.Context) error

func (f Func) Shutdown(ctx context.Context) error {
	return f(ctx)
}

type entry struct {
	name      string
	component Component
}

// Manager shuts registered components down once, in reverse registration
// order, giving each step at most timeout.
type Manager struct {
	components []entry
	logger     logger.Logger
	timeout    time.Duration
	mu         sync.Mutex
	once       sync.Once
	done       chan struct{}
	ctx        context.Context
	cancel     context.CancelFunc
}

func NewManager(log logger.Logger, timeout time.Duration) *Manager {
	if log == nil {
		log = logger.Nop{}
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Manager{
		logger:  log,
		timeout: timeout,
		done:    make(chan struct{}),
		ctx:     ctx,
		cancel:  cancel,
	}
}

func (m *Manager) Register(name string, c Component) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.components = append(m.components, entry{name: name, component: c})
}

// Listen shuts down on SIGINT or SIGTERM and then calls onSignal, if set.
// The returned function stops listening.
func (m *Manager) Listen(onSignal func()) (stop func()) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	quit := make(chan struct{})

	go func() {
		select {
		case sig := <-sigChan:
			m.logger.Info(component, "shutdown signal received", map[string]interface{}{
				"signal": sig.String(),
			})
			m.Shutdown()
			if onSignal != nil {
				onSignal()
			}
		case <-quit:
		}
	}()

	var stopOnce sync.Once
	return func() {
		stopOnce.Do(func() {
			signal.Stop(sigChan)
			close(quit)
		})
	}
}

// Shutdown runs the sequence. Calls after the first return immediately.
func (m *Manager) Shutdown() {
	m.once.Do(m.run)
}

func (m *Manager) run() {
	defer close(m.done)

	m.mu.Lock()
	components := make([]entry, len(m.components))
	copy(components, m.components)
	m.mu.Unlock()

	m.logger.Info(component, "shutdown sequence initiated", map[string]interface{}{
		"components": len(components),
	})
	m.cancel()

	for i := len(components) - 1; i >= 0; i-- {
		c := components[i]
		ctx, cancel := context.WithTimeout(context.Background(), m.timeout)

		errCh := make(chan error, 1)
		go func() {
			errCh <- c.component.Shutdown(ctx)
		}()

		select {
		case err := <-errCh:
			if err != nil {
				m.logger.Error(component, err, map[string]interface{}{"component": c.name})
			} else {
				m.logger.Debug(component, "component stopped", map[string]interface{}{"component": c.name})
			}
		case <-ctx.Done():
			m.logger.Warning(component, "component shutdown timeout", map[string]interface{}{
				"component": c.name,
				"timeout":   m.timeout.String(),
			})
		}
		cancel()
	}

	m.logger.Info(component, "shutdown sequence completed", nil)
}

// Context is cancelled as soon as shutdown starts.
func (m *Manager) Context() context.Context {
	return m.ctx
}

// Done is closed once every component has been handled.
func (m *Manager) Done() <-chan struct{} {
	return m.done
}
