// Package plugins manages the platform plugins the shell registers at
// startup: clipboard, SQL storage, filesystem watcher and dialogs. The
// menu subsystem never calls into them; they are opaque collaborators
// initialized in order and shut down in reverse.
package plugins

import (
	"context"
	"fmt"
	"sync"
	"time"

	"ando-archive/internal/logger"
)

type Plugin interface {
	Name() string
	Init(ctx context.Context) error
	Shutdown()
}

type Registry struct {
	plugins []Plugin
	log     logger.Logger
	mu      sync.Mutex
	done    bool
}

func NewRegistry(log logger.Logger) *Registry {
	return &Registry{log: log}
}

func (r *Registry) Register(p Plugin) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.plugins = append(r.plugins, p)
}

// Init initializes plugins in registration order. The first failure
// aborts: a shell with a broken platform plugin should not launch.
func (r *Registry) Init(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range r.plugins {
		if err := p.Init(ctx); err != nil {
			return fmt.Errorf("plugin %s: %w", p.Name(), err)
		}
		r.log.Info("PluginRegistry", "plugin initialized", map[string]interface{}{
			"plugin": p.Name(),
		})
	}
	return nil
}

// Shutdown stops plugins in reverse registration order. Idempotent; a
// plugin that hangs is abandoned after a timeout so the rest still get
// their turn.
func (r *Registry) Shutdown() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.done {
		return
	}
	r.done = true

	for i := len(r.plugins) - 1; i >= 0; i-- {
		p := r.plugins[i]

		finished := make(chan struct{})
		go func() {
			defer close(finished)
			p.Shutdown()
		}()

		select {
		case <-finished:
			r.log.Debug("PluginRegistry", "plugin shut down", map[string]interface{}{
				"plugin": p.Name(),
			})
		case <-time.After(10 * time.Second):
			r.log.Warning("PluginRegistry", "plugin shutdown timeout", map[string]interface{}{
				"plugin": p.Name(),
			})
		}
	}
}
