// Package worker runs the background health monitor for the external
// road-routing provider. The renderer fails fast on road fetches while the
// provider is marked down instead of piling up doomed requests.
package worker

import (
	"context"
	"log"
	"sync/atomic"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/gilby125/shipment-route-api/config"
)

// Pinger is the probe the monitor runs on each tick. Implemented by
// roadrouting.Client.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthMonitor periodically probes the road-routing provider and exposes
// the last observed state. It starts optimistic so the first real request
// is attempted even before the first probe completes.
type HealthMonitor struct {
	pinger  Pinger
	timeout time.Duration
	spec    string
	cron    *cron.Cron
	healthy atomic.Bool
}

// NewHealthMonitor creates a monitor on the configured cron schedule.
func NewHealthMonitor(cfg config.RoutingConfig, pinger Pinger) *HealthMonitor {
	m := &HealthMonitor{
		pinger:  pinger,
		timeout: cfg.HealthTimeout,
		spec:    cfg.HealthCron,
		cron:    cron.New(),
	}
	m.healthy.Store(true)
	return m
}

// Start probes once immediately, then on the cron schedule.
func (m *HealthMonitor) Start() error {
	m.probe()
	if _, err := m.cron.AddFunc(m.spec, m.probe); err != nil {
		return err
	}
	m.cron.Start()
	return nil
}

// Stop stops the schedule and waits for a running probe to finish.
func (m *HealthMonitor) Stop() {
	ctx := m.cron.Stop()
	<-ctx.Done()
}

// Healthy reports the last observed provider state.
func (m *HealthMonitor) Healthy() bool {
	return m.healthy.Load()
}

func (m *HealthMonitor) probe() {
	ctx, cancel := context.WithTimeout(context.Background(), m.timeout)
	defer cancel()

	err := m.pinger.Ping(ctx)
	was := m.healthy.Swap(err == nil)
	switch {
	case err != nil && was:
		log.Printf("road routing provider marked down: %v", err)
	case err == nil && !was:
		log.Printf("road routing provider recovered")
	}
}
