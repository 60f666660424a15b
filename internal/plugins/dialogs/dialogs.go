// Package dialogs provides native dialog helpers bound to the main
// window, for front-end components that need error or information
// popups.
package dialogs

import (
	"context"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"

	"ando-archive/internal/logger"
)

type Plugin struct {
	window fyne.Window
	log    logger.Logger
}

func New(window fyne.Window, log logger.Logger) *Plugin {
	return &Plugin{window: window, log: log}
}

func (p *Plugin) Name() string { return "dialogs" }

func (p *Plugin) Init(ctx context.Context) error { return nil }

func (p *Plugin) Shutdown() {}

func (p *Plugin) ShowError(err error) {
	p.log.Error("Dialogs", err, nil)
	fyne.Do(func() {
		dialog.ShowError(err, p.window)
	})
}

func (p *Plugin) ShowInformation(title, message string) {
	fyne.Do(func() {
		dialog.ShowInformation(title, message, p.window)
	})
}
