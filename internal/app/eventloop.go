package app

import (
	"context"
	"errors"

	"github.com/dshills/xlgrid/internal/dispatcher"
	"github.com/dshills/xlgrid/internal/renderer"
	"github.com/dshills/xlgrid/internal/renderer/backend"
)

// Run initializes the backend and processes events until the user quits or
// ctx is cancelled. The backend is shut down before Run returns.
func (app *Application) Run(ctx context.Context) error {
	if app.backend == nil {
		return ErrNoBackend
	}
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}

	if err := app.backend.Init(); err != nil {
		app.running.Store(false)
		return &InitError{Component: "backend", Err: err}
	}
	defer func() {
		app.running.Store(false)
		app.backend.Shutdown()
	}()

	app.renderer = renderer.New(app.backend, renderer.DefaultTheme())
	app.resize(app.backend.Size())
	app.render()

	events := app.startInputPolling()
	for {
		select {
		case <-ctx.Done():
			app.logger.Info("stopping: %v", context.Cause(ctx))
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if app.HandleEvent(ev) {
				return nil
			}
			app.render()
		}
	}
}

// HandleEvent applies one backend event to the session. It returns true
// when the application should exit.
func (app *Application) HandleEvent(ev backend.Event) bool {
	switch ev.Type {
	case backend.EventKey:
		return app.handleKey(ev)
	case backend.EventResize:
		app.metrics.RecordEvent()
		app.resize(ev.Width, ev.Height)
	case backend.EventInterrupt:
		app.metrics.RecordEvent()
		if _, ok := ev.Data.(fileChanged); ok {
			app.session.SetStatus(MsgFileChanged)
		}
	}
	return false
}

func (app *Application) handleKey(ev backend.Event) bool {
	t := StartTimer()
	res := app.dispatcher.Dispatch(app.session, ev.Key)
	app.metrics.RecordInput(t.Elapsed())

	if res.Err != nil {
		log := app.logger.WithComponent("dispatcher")
		var pe *dispatcher.PanicError
		if errors.As(res.Err, &pe) {
			log.Error("%v\n%s", pe, pe.Stack)
		} else {
			log.Warn("%s: %v", res.Action, res.Err)
		}
	}
	if !res.Quit {
		app.quitArmed = false
		return false
	}
	if res.Unsaved && app.config.UI.ConfirmQuit && !app.quitArmed {
		app.quitArmed = true
		app.session.SetStatus(MsgConfirmQuit)
		return false
	}
	if res.Unsaved {
		app.logger.Warn("quit with unsaved changes")
	}
	return true
}

func (app *Application) resize(width, height int) {
	rows, cols := renderer.GridSize(width, height)
	app.session.SetViewport(rows, cols)
}

func (app *Application) render() {
	if app.renderer == nil {
		return
	}
	t := StartTimer()
	app.renderer.Render(app.session.Model())
	app.metrics.RecordRender(t.Elapsed())
}

// startInputPolling starts a goroutine that polls for input events.
// PollEvent is blocking; the backend.Shutdown call in Run unblocks it.
func (app *Application) startInputPolling() <-chan backend.Event {
	events := make(chan backend.Event, 64)

	go func() {
		defer close(events)
		for app.running.Load() {
			ev := app.backend.PollEvent()
			if ev.Type == backend.EventNone {
				if !app.running.Load() {
					return
				}
				continue
			}
			select {
			case events <- ev:
			case <-app.done:
				return
			}
		}
	}()

	return events
}
