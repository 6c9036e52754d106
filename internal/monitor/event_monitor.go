// Package monitor watches the active factory for on-chain activity and
// triggers session resynchronization when logs appear. It is purely an
// additional refresh trigger: it never mutates session state itself,
// the coordinator's atomic-replace reload does.
package monitor

import (
	"context"
	"sync"
	"time"

	"github.com/chokiwild/ChainFund-Dapp/internal/coordinator"
	"github.com/chokiwild/ChainFund-Dapp/internal/ethereum"
	"github.com/chokiwild/ChainFund-Dapp/internal/logger"
	"github.com/chokiwild/ChainFund-Dapp/internal/session"
	"github.com/panjf2000/ants/v2"
)

// EventMonitor polls factory logs on an interval.
type EventMonitor struct {
	gw      ethereum.Gateway
	coord   *coordinator.Coordinator
	factory *session.FactoryPointer

	pool     *ants.Pool
	interval time.Duration
	ctx      context.Context
	cancel   context.CancelFunc

	mu              sync.Mutex
	lastBlock       uint64
	lastFactory     string
	backoffDuration time.Duration
}

// NewEventMonitor creates a monitor polling at the given interval.
func NewEventMonitor(gw ethereum.Gateway, coord *coordinator.Coordinator, factory *session.FactoryPointer, interval time.Duration) (*EventMonitor, error) {
	pool, err := ants.NewPool(1) // one resync at a time
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &EventMonitor{
		gw:              gw,
		coord:           coord,
		factory:         factory,
		pool:            pool,
		interval:        interval,
		ctx:             ctx,
		cancel:          cancel,
		backoffDuration: time.Second * 5,
	}, nil
}

// Start launches the polling loop.
func (m *EventMonitor) Start() error {
	current, err := m.gw.BlockNumber(m.ctx)
	if err != nil {
		return err
	}

	m.mu.Lock()
	m.lastBlock = current
	m.mu.Unlock()

	logger.Info("Factory monitor starting from block %d", current)
	go m.loop()
	return nil
}

// Stop terminates the loop and releases the pool.
func (m *EventMonitor) Stop() {
	m.cancel()
	m.pool.Release()
	logger.Info("Factory monitor stopped")
}

func (m *EventMonitor) loop() {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-m.ctx.Done():
			return
		case <-ticker.C:
			if err := m.poll(); err != nil {
				logger.Error("Factory log poll failed: %v", err)
				m.backoff()
			} else {
				m.resetBackoff()
			}
		}
	}
}

// poll scans new blocks for factory logs. The factory pointer is read
// on every pass: after a governance redeployment the monitor follows
// the new address and restarts its cursor.
func (m *EventMonitor) poll() error {
	factory := m.factory.Get()

	current, err := m.gw.BlockNumber(m.ctx)
	if err != nil {
		return err
	}

	m.mu.Lock()
	if m.lastFactory != factory.Hex() {
		m.lastFactory = factory.Hex()
		m.lastBlock = current
		m.mu.Unlock()
		return nil
	}
	from := m.lastBlock + 1
	m.mu.Unlock()

	if current < from {
		return nil
	}

	logs, err := m.gw.FilterFactoryLogs(m.ctx, factory, from, current)
	if err != nil {
		return err
	}

	m.mu.Lock()
	m.lastBlock = current
	m.mu.Unlock()

	if len(logs) == 0 {
		return nil
	}

	logger.Info("Observed %d factory logs in blocks %d-%d, scheduling resync", len(logs), from, current)
	return m.pool.Submit(func() {
		if err := m.coord.TryResync(m.ctx); err != nil {
			logger.Warn("Monitor-triggered resync failed: %v", err)
		}
	})
}

func (m *EventMonitor) backoff() {
	m.mu.Lock()
	d := m.backoffDuration
	if m.backoffDuration < time.Minute {
		m.backoffDuration *= 2
	}
	m.mu.Unlock()

	select {
	case <-m.ctx.Done():
	case <-time.After(d):
	}
}

func (m *EventMonitor) resetBackoff() {
	m.mu.Lock()
	m.backoffDuration = time.Second * 5
	m.mu.Unlock()
}
