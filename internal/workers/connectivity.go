// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/lumina-sync/internal/config"
	"github.com/MKhiriev/lumina-sync/internal/logger"
)

const (
	defaultProbeInterval = 10 * time.Second
	defaultProbeTimeout  = 3 * time.Second
)

// ConnectivityMonitor polls the server and publishes every change of the
// online state. It starts out online so that the first operations are
// attempted instead of being queued blindly.
type ConnectivityMonitor struct {
	pinger   Pinger
	interval time.Duration
	timeout  time.Duration

	online  atomic.Bool
	probeMu sync.Mutex
	changes broadcaster[bool]

	logger *logger.Logger
}

func NewConnectivityMonitor(pinger Pinger, cfg config.ClientSync, logger *logger.Logger) *ConnectivityMonitor {
	interval := cfg.ProbeInterval
	if interval <= 0 {
		interval = defaultProbeInterval
	}
	timeout := cfg.ProbeTimeout
	if timeout <= 0 {
		timeout = defaultProbeTimeout
	}

	m := &ConnectivityMonitor{
		pinger:   pinger,
		interval: interval,
		timeout:  timeout,
		logger:   logger,
	}
	m.online.Store(true)
	return m
}

// Online implements service.ConnectivityStatus.
func (m *ConnectivityMonitor) Online() bool {
	return m.online.Load()
}

// Subscribe returns a channel receiving the new state on every transition.
// The channel is closed when Run returns.
func (m *ConnectivityMonitor) Subscribe() <-chan bool {
	return m.changes.Subscribe()
}

// Probe pings the server once, records the result and publishes it if the
// state changed.
func (m *ConnectivityMonitor) Probe(ctx context.Context) bool {
	m.probeMu.Lock()
	defer m.probeMu.Unlock()

	pingCtx, cancel := context.WithTimeout(ctx, m.timeout)
	err := m.pinger.Ping(pingCtx)
	cancel()
	if err != nil && ctx.Err() != nil {
		// shutting down, not a connectivity change
		return m.online.Load()
	}

	online := err == nil
	if m.online.Swap(online) == online {
		return online
	}

	event := m.logger.Info()
	if !online {
		event = m.logger.Warn().Err(err)
	}
	event.Str("func", "ConnectivityMonitor.Probe").Bool("online", online).Msg("connectivity changed")

	m.changes.Publish(online)
	return online
}

// Run probes immediately and then every probe interval until ctx is done.
func (m *ConnectivityMonitor) Run(ctx context.Context) {
	defer m.changes.Close()

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	m.Probe(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.Probe(ctx)
		}
	}
}
