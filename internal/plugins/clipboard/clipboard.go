// Package clipboard exposes the system clipboard to the shell.
package clipboard

import (
	"context"
	"fmt"

	"github.com/zyedidia/clipper"

	"ando-archive/internal/logger"
)

type Plugin struct {
	clip clipper.Clipboard
	log  logger.Logger
}

func New(log logger.Logger) *Plugin {
	return &Plugin{log: log}
}

func (p *Plugin) Name() string { return "clipboard" }

// Init probes for a usable system clipboard. Absence is not fatal:
// headless environments have none and the rest of the shell works
// without it, so the plugin degrades to unavailable with a warning.
func (p *Plugin) Init(ctx context.Context) error {
	clip, err := clipper.GetClipboard(clipper.Clipboards...)
	if err != nil {
		p.log.Warning("Clipboard", "no system clipboard available", map[string]interface{}{
			"error": err.Error(),
		})
		return nil
	}
	p.clip = clip
	return nil
}

func (p *Plugin) Shutdown() {}

func (p *Plugin) Available() bool { return p.clip != nil }

func (p *Plugin) Read() (string, error) {
	if p.clip == nil {
		return "", fmt.Errorf("clipboard unavailable")
	}
	data, err := p.clip.ReadAll(clipper.RegClipboard)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (p *Plugin) Write(text string) error {
	if p.clip == nil {
		return fmt.Errorf("clipboard unavailable")
	}
	return p.clip.WriteAll(clipper.RegClipboard, []byte(text))
}
