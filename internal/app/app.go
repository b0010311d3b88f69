package app

import (
	"sync/atomic"
	"time"

	"github.com/atotto/clipboard"
	"github.com/google/uuid"

	"github.com/dshills/xlgrid/internal/config"
	"github.com/dshills/xlgrid/internal/dispatcher"
	"github.com/dshills/xlgrid/internal/engine/workbook"
	"github.com/dshills/xlgrid/internal/input/keymap"
	"github.com/dshills/xlgrid/internal/persist"
	"github.com/dshills/xlgrid/internal/renderer"
	"github.com/dshills/xlgrid/internal/renderer/backend"
	"github.com/dshills/xlgrid/internal/session"
	"github.com/dshills/xlgrid/internal/watcher"
)

// Status messages shown by the application itself.
const (
	MsgConfirmQuit = "Unsaved changes: press quit again to discard, Ctrl+S to save"
	MsgFileChanged = "File changed on disk"
)

// saveMute covers the file events caused by our own save.
const saveMute = time.Second

// Application is the central coordinator for one editing run.
type Application struct {
	config  *config.Config
	logger  *Logger
	metrics *Metrics

	store      *persist.XLSX
	views      *persist.ViewStore
	session    *session.Session
	dispatcher *dispatcher.Dispatcher
	watcher    *watcher.FileWatcher

	backend  backend.Backend
	renderer *renderer.Renderer

	// quitArmed is set after a quit was refused for unsaved changes.
	quitArmed bool

	running atomic.Bool
	done    chan struct{}
}

// Options configures the application.
type Options struct {
	// Config holds the settings; config.Default() when nil.
	Config *config.Config

	// Path is the workbook to open. A missing file starts a new workbook.
	Path string

	// Backend is the terminal to draw on.
	Backend backend.Backend

	// Logger receives diagnostics; NullLogger when nil.
	Logger *Logger

	// Clipboard mirrors copies to the system clipboard when enabled in
	// Config. Defaults to the OS clipboard.
	Clipboard func(text string) error
}

// New opens the workbook and wires every component. It fails when the
// workbook cannot be read or the key overrides are invalid.
func New(opts Options) (*Application, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	logger := opts.Logger
	if logger == nil {
		logger = NullLogger
	}
	logger = logger.WithField("session", uuid.NewString())

	app := &Application{
		config:  cfg,
		logger:  logger,
		metrics: NewMetrics(),
		store:   persist.New(cfg.WidthPolicy()),
		backend: opts.Backend,
		done:    make(chan struct{}),
	}

	wb, err := app.store.Load(opts.Path)
	if err != nil {
		return nil, &InitError{Component: "workbook", Err: err}
	}
	logger.Info("opened %q: %d sheet(s)", opts.Path, wb.SheetCount())

	keys := keymap.NewDefaultRegistry()
	for mode, bindings := range cfg.Keys {
		if err := keys.Override(mode, bindings); err != nil {
			return nil, &InitError{Component: "keymap", Err: err}
		}
	}
	app.dispatcher = dispatcher.New(dispatcher.DefaultConfig().WithMetrics(), keys)

	sopts := session.Options{Path: opts.Path, Saver: app}
	if cfg.Clipboard.System {
		write := opts.Clipboard
		if write == nil {
			write = clipboard.WriteAll
		}
		clipLog := logger.WithComponent("clipboard")
		sopts.OnCopy = func(text string) {
			if err := write(text); err != nil {
				clipLog.Warn("system clipboard: %v", err)
			}
		}
	}
	app.session = session.New(wb, sopts)

	if opts.Path != "" {
		app.restoreView(opts.Path)
		app.startWatcher(opts.Path)
	}
	return app, nil
}

// Save writes the workbook, muting the file watcher around our own write.
// It implements session.Saver.
func (app *Application) Save(wb *workbook.Workbook, path string) error {
	if app.watcher != nil {
		app.watcher.Mute(saveMute)
	}
	t := StartTimer()
	err := app.store.Save(wb, path)
	if app.watcher != nil {
		app.watcher.Mute(saveMute)
	}
	log := app.logger.WithComponent("persist")
	if err != nil {
		log.Error("save %q: %v", path, err)
		return err
	}
	log.Info("saved %q in %v", path, t.Elapsed())
	return nil
}

// Session returns the editing session.
func (app *Application) Session() *session.Session {
	return app.session
}

// Dispatcher returns the key dispatcher.
func (app *Application) Dispatcher() *dispatcher.Dispatcher {
	return app.dispatcher
}

// Config returns the settings in use.
func (app *Application) Config() *config.Config {
	return app.config
}

// Metrics returns the event loop metrics.
func (app *Application) Metrics() *Metrics {
	return app.metrics
}

// Logger returns the application's logger.
func (app *Application) Logger() *Logger {
	return app.logger
}

// IsRunning reports whether Run is in progress.
func (app *Application) IsRunning() bool {
	return app.running.Load()
}
