package app

import (
	"github.com/dshills/xlgrid/internal/persist"
	"github.com/dshills/xlgrid/internal/renderer/backend"
	"github.com/dshills/xlgrid/internal/watcher"
)

// fileChanged is posted into the event queue when the workbook file changes
// on disk.
type fileChanged struct {
	event watcher.Event
}

// restoreView applies the view state saved by a previous run.
func (app *Application) restoreView(path string) {
	if !app.config.Session.RestoreView {
		return
	}
	log := app.logger.WithComponent("viewstate")
	app.views = persist.OpenViewStore(app.config.ViewStateDir())
	vs, ok, err := app.views.Load(path)
	if err != nil {
		log.Warn("%v", NewComponentError("viewstate", "load", err))
		if err := app.views.Forget(path); err != nil {
			log.Warn("%v", NewComponentError("viewstate", "forget", err))
		}
		return
	}
	if ok {
		app.session.RestoreViewState(vs)
		log.Debug("restored view: sheet %q", vs.Active)
	}
}

// saveView stores the current view state for the next run.
func (app *Application) saveView() {
	if app.views == nil {
		return
	}
	if err := app.views.Save(app.session.Path(), app.session.ViewState()); err != nil {
		app.logger.WithComponent("viewstate").Warn("%v", NewComponentError("viewstate", "save", err))
	}
}

// startWatcher begins watching path for external changes. Failure only
// disables the notice.
func (app *Application) startWatcher(path string) {
	if !app.config.Watch.Enabled {
		return
	}
	log := app.logger.WithComponent("watcher")
	w, err := watcher.NewFileWatcher(path)
	if err != nil {
		log.Warn("%v", NewComponentError("watcher", "start", err))
		return
	}
	app.watcher = w
	go app.forwardWatcher(w, log)
}

// forwardWatcher moves watcher events into the backend's event queue, so
// the session is only touched from the event loop.
func (app *Application) forwardWatcher(w *watcher.FileWatcher, log *Logger) {
	events, errs := w.Events(), w.Errors()
	for events != nil || errs != nil {
		select {
		case ev, ok := <-events:
			if !ok {
				events = nil
				continue
			}
			log.Info("%s changed (%s)", ev.Path, ev.Op)
			if app.backend == nil {
				continue
			}
			if err := app.backend.PostEvent(backend.Event{Type: backend.EventInterrupt, Data: fileChanged{event: ev}}); err != nil {
				log.Warn("post change notice: %v", err)
			}
		case err, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}
			log.Warn("%v", err)
		}
	}
}

// Close releases resources held outside the event loop: it stores the
// view state, stops the watcher and logs the run's metrics.
func (app *Application) Close() error {
	select {
	case <-app.done:
		return nil
	default:
		close(app.done)
	}

	app.saveView()

	var err error
	if app.watcher != nil {
		err = app.watcher.Close()
	}

	m := app.metrics.Snapshot()
	app.logger.Info("exit: %d keys (avg %v), %d frames (avg %v, max %v), uptime %v",
		m.InputCount, m.AvgInput, m.RenderCount, m.AvgRender, m.MaxRender, m.Uptime)
	if dm := app.dispatcher.Metrics(); dm != nil {
		d := dm.Snapshot()
		app.logger.WithComponent("dispatcher").Info("%d dispatched, %d ignored, %d errors, %d panics",
			d.TotalDispatches, d.TotalIgnored, d.TotalErrors, d.TotalPanics)
		for _, a := range dm.TopActions(5) {
			app.logger.WithComponent("dispatcher").Debug("%s: %d", a.Action, a.DispatchCount)
		}
	}
	return err
}
