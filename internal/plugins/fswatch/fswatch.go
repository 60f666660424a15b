// Package fswatch watches the archive directory for external changes.
package fswatch

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/fsnotify/fsnotify"

	"ando-archive/internal/logger"
)

type Plugin struct {
	dir     string
	watcher *fsnotify.Watcher
	log     logger.Logger
	wg      sync.WaitGroup
}

func New(dir string, log logger.Logger) *Plugin {
	return &Plugin{dir: dir, log: log}
}

func (p *Plugin) Name() string { return "fswatch" }

func (p *Plugin) Init(ctx context.Context) error {
	if err := os.MkdirAll(p.dir, 0755); err != nil {
		return fmt.Errorf("creating archive directory: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating filesystem watcher: %w", err)
	}
	if err := watcher.Add(p.dir); err != nil {
		watcher.Close()
		return fmt.Errorf("watching %s: %w", p.dir, err)
	}

	p.watcher = watcher
	p.wg.Add(1)
	go p.run()
	return nil
}

func (p *Plugin) run() {
	defer p.wg.Done()

	for {
		select {
		case event, ok := <-p.watcher.Events:
			if !ok {
				return
			}
			p.log.Debug("FSWatch", "archive directory changed", map[string]interface{}{
				"path": event.Name,
				"op":   event.Op.String(),
			})
		case err, ok := <-p.watcher.Errors:
			if !ok {
				return
			}
			p.log.Warning("FSWatch", "watch error", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}
}

func (p *Plugin) Shutdown() {
	if p.watcher == nil {
		return
	}
	p.watcher.Close()
	p.wg.Wait()
	p.watcher = nil
}
