package config

import (
	"context"
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bnema/cardboard/internal/logging"
)

// reloadDelay groups the burst of events editors emit for one save.
const reloadDelay = 100 * time.Millisecond

// Watch reloads the config file whenever it changes and hands the new
// values to the OnConfigChange callbacks. An invalid file keeps the previous
// values. Callbacks run on a timer goroutine; logs go to the logger in ctx.
func (m *Manager) Watch(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.watching {
		return nil
	}
	log := logging.FromContext(logging.WithComponent(ctx, "config"))

	var pending *time.Timer
	m.viper.OnConfigChange(func(e fsnotify.Event) {
		log.Debug().Str("op", e.Op.String()).Str("file", e.Name).Msg("config file changed")

		m.mu.Lock()
		defer m.mu.Unlock()
		if pending != nil {
			pending.Stop()
		}
		pending = time.AfterFunc(reloadDelay, func() {
			m.mu.Lock()
			if err := m.reload(); err != nil {
				m.mu.Unlock()
				log.Warn().Err(err).Msg("failed to reload config, keeping previous values")
				return
			}
			log.Info().Str("file", m.configFile).Msg("configuration reloaded")
			m.notifyCallbacksLocked()
		})
	})
	m.viper.WatchConfig()

	m.watching = true
	return nil
}

// notifyCallbacksLocked releases m.mu, which must be held for writing, and
// then calls every callback with the current config.
func (m *Manager) notifyCallbacksLocked() {
	cfg := m.config
	callbacks := append([]func(*Config){}, m.callbacks...)
	m.mu.Unlock()

	for _, cb := range callbacks {
		cb(cfg)
	}
}

// OnConfigChange registers a callback for reloaded configurations.
func (m *Manager) OnConfigChange(callback func(*Config)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callbacks = append(m.callbacks, callback)
}

// reload re-reads the file. Must be called with the write lock held.
func (m *Manager) reload() error {
	if err := m.viper.ReadInConfig(); err != nil {
		return err
	}
	cfg, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	if err := ensurePaths(cfg); err != nil {
		return err
	}
	normalizeConfig(cfg)
	if err := validateConfig(cfg); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	m.config = cfg
	return nil
}
