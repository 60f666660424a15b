package app

import (
	"context"
	"fmt"
	"image/color"
	"os"
	"os/signal"
	"syscall"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"

	"ando-archive/internal/config"
	"ando-archive/internal/events"
	"ando-archive/internal/logger"
	"ando-archive/internal/menu"
	"ando-archive/internal/plugins"
	"ando-archive/internal/plugins/clipboard"
	"ando-archive/internal/plugins/dialogs"
	"ando-archive/internal/plugins/fswatch"
	"ando-archive/internal/plugins/storage"
)

const (
	AppName    = "Ando Archive"
	AppID      = "com.andoarchive.desktop"
	AppVersion = "1.0.0"

	MinWindowWidth  = 800
	MinWindowHeight = 600
)

// Application owns the GUI runtime, the plugin registry, the event bus
// and the menu subsystem, composed linearly at startup.
type Application struct {
	fyneApp    fyne.App
	window     fyne.Window
	cfg        config.Config
	log        logger.Logger
	bus        *events.Bus
	registry   *plugins.Registry
	dispatcher *menu.Dispatcher
	lifecycle  *Lifecycle
}

func New() (*Application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}

	log := newLogger(cfg.Log)

	fyneApp := fyneapp.NewWithID(AppID)
	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(
		max32(cfg.Window.Width, MinWindowWidth),
		max32(cfg.Window.Height, MinWindowHeight),
	))
	window.CenterOnScreen()
	window.SetMaster()

	log.Info("Application", "starting application", map[string]interface{}{
		"version":  AppVersion,
		"database": cfg.Database.Path,
		"archive":  cfg.Archive.Dir,
	})

	bus := events.NewBus(log)

	registry := plugins.NewRegistry(log)
	registry.Register(clipboard.New(log))
	registry.Register(storage.New(cfg.Database.Path, log))
	registry.Register(fswatch.New(cfg.Archive.Dir, log))
	registry.Register(dialogs.New(window, log))

	if err := registry.Init(context.Background()); err != nil {
		return nil, fmt.Errorf("initializing plugins: %w", err)
	}

	lifecycle := NewLifecycle(registry, log)

	a := &Application{
		fyneApp:   fyneApp,
		window:    window,
		cfg:       cfg,
		log:       log,
		bus:       bus,
		registry:  registry,
		lifecycle: lifecycle,
	}

	a.dispatcher = menu.NewDispatcher(menu.DefaultTable(), bus, a.terminate, log)

	mainMenu, err := menu.Build(menu.DefaultTree(), a.dispatcher.Dispatch)
	if err != nil {
		lifecycle.Shutdown()
		return nil, fmt.Errorf("building menu: %w", err)
	}
	menu.Install(window, mainMenu)

	// The front end renders the window content; the shell only pins
	// the minimum window size.
	spacer := canvas.NewRectangle(color.Transparent)
	spacer.SetMinSize(fyne.NewSize(MinWindowWidth, MinWindowHeight))
	window.SetContent(spacer)

	log.Info("Application", "initialization complete", nil)
	return a, nil
}

// Bus exposes the event channel front-end components subscribe on.
func (a *Application) Bus() *events.Bus { return a.bus }

func (a *Application) Run() error {
	a.window.SetCloseIntercept(func() {
		a.log.Info("Application", "shutdown requested", nil)
		a.lifecycle.Shutdown()
		a.window.Close()
	})

	a.listenForSignals()

	a.window.Show()
	a.log.Info("Application", "GUI displayed", nil)
	a.fyneApp.Run()

	a.lifecycle.Shutdown()
	return nil
}

// terminate is the injected exit capability behind the quit menu item.
func (a *Application) terminate(code int) {
	a.lifecycle.Shutdown()
	os.Exit(code)
}

func (a *Application) listenForSignals() {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		a.log.Info("Application", "shutdown signal received", map[string]interface{}{
			"signal": sig.String(),
		})
		a.lifecycle.Shutdown()
		fyne.Do(a.fyneApp.Quit)
	}()
}

func newLogger(cfg config.LogConfig) logger.Logger {
	level := logger.ParseLevel(cfg.Level)
	if cfg.JSON {
		return logger.NewJSONLogger(level)
	}
	return logger.NewConsoleLogger(level)
}

func max32(v, floor float32) float32 {
	if v < floor {
		return floor
	}
	return v
}
