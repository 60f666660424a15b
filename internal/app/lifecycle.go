package app

import (
	"sync"

	"ando-archive/internal/logger"
	"ando-archive/internal/plugins"
)

// Lifecycle runs the shutdown sequence exactly once, whichever path
// triggers it first (quit menu item, window close, OS signal).
type Lifecycle struct {
	registry   *plugins.Registry
	log        logger.Logger
	mu         sync.Mutex
	isShutdown bool
}

func NewLifecycle(registry *plugins.Registry, log logger.Logger) *Lifecycle {
	return &Lifecycle{registry: registry, log: log}
}

func (l *Lifecycle) Shutdown() {
	l.mu.Lock()
	if l.isShutdown {
		l.mu.Unlock()
		return
	}
	l.isShutdown = true
	l.mu.Unlock()

	l.log.Info("Lifecycle", "shutdown sequence initiated", nil)
	l.registry.Shutdown()
	l.log.Info("Lifecycle", "shutdown sequence completed", nil)
}
