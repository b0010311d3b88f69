package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dshills/xlgrid/internal/config"
	"github.com/dshills/xlgrid/internal/engine/workbook"
	"github.com/dshills/xlgrid/internal/input/key"
	"github.com/dshills/xlgrid/internal/persist"
	"github.com/dshills/xlgrid/internal/renderer/backend"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.Session.StateDir = t.TempDir()
	cfg.Watch.Enabled = false
	cfg.Clipboard.System = false
	return cfg
}

func newTestApp(t *testing.T, cfg *config.Config, path string) (*Application, *backend.NullBackend) {
	t.Helper()
	b := backend.NewNullBackend(80, 24)
	a, err := New(Options{Config: cfg, Path: path, Backend: b})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() { a.Close() })
	return a, b
}

func press(a *Application, spec string) bool {
	return a.HandleEvent(backend.Event{Type: backend.EventKey, Key: key.MustParse(spec)})
}

func TestNewMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "book.xlsx")
	a, _ := newTestApp(t, testConfig(t), path)

	s := a.Session()
	if s.Sheet().Name() != workbook.DefaultSheetName {
		t.Errorf("sheet = %q", s.Sheet().Name())
	}
	if s.Dirty() {
		t.Error("new workbook should be clean")
	}
	if s.Path() != path {
		t.Errorf("Path() = %q", s.Path())
	}
}

func TestNewMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "book.xlsx")
	if err := os.WriteFile(path, []byte("not a workbook"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := New(Options{Config: testConfig(t), Path: path})
	if !errors.Is(err, persist.ErrMalformed) {
		t.Fatalf("New() error = %v, want ErrMalformed", err)
	}
	var initErr *InitError
	if !errors.As(err, &initErr) || initErr.Component != "workbook" {
		t.Errorf("error = %#v, want InitError for workbook", err)
	}
}

func TestQuitConfirmation(t *testing.T) {
	a, _ := newTestApp(t, testConfig(t), "")

	if !press(a, "C-w") {
		t.Fatal("clean quit should exit immediately")
	}

	a.Session().Sheet().SetValue(workbook.Address{Row: 1, Col: 1}, "x")
	if press(a, "C-w") {
		t.Fatal("first quit with unsaved changes should not exit")
	}
	if got := a.Session().Status(); got != MsgConfirmQuit {
		t.Errorf("status = %q", got)
	}
	if !press(a, "C-w") {
		t.Error("second consecutive quit should exit")
	}
}

func TestQuitConfirmationResetsOnOtherKey(t *testing.T) {
	a, _ := newTestApp(t, testConfig(t), "")
	a.Session().Sheet().SetValue(workbook.Address{Row: 1, Col: 1}, "x")

	press(a, "C-w")
	press(a, "s")
	if press(a, "C-w") {
		t.Error("quit after another key should ask again")
	}
}

func TestQuitWithoutConfirmation(t *testing.T) {
	cfg := testConfig(t)
	cfg.UI.ConfirmQuit = false
	a, _ := newTestApp(t, cfg, "")
	a.Session().Sheet().SetValue(workbook.Address{Row: 1, Col: 1}, "x")
	if !press(a, "C-w") {
		t.Error("quit should exit when confirmation is off")
	}
}

func TestSaveWritesWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "book.xlsx")
	a, _ := newTestApp(t, testConfig(t), path)

	a.Session().Sheet().SetValue(workbook.Address{Row: 1, Col: 1}, "Hi")
	press(a, "2")
	press(a, "C-s")

	if a.Session().Dirty() {
		t.Error("save should clear the dirty flag")
	}
	wb, err := persist.Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	cell, _ := wb.Sheet(0).Cell(workbook.Address{Row: 1, Col: 1})
	if cell.Value != "Hi" || cell.Style != workbook.TagHighlightA {
		t.Errorf("saved A1 = %+v", cell)
	}
}

func TestSystemClipboardMirror(t *testing.T) {
	cfg := testConfig(t)
	cfg.Clipboard.System = true

	var copied string
	a, err := New(Options{
		Config:    cfg,
		Backend:   backend.NewNullBackend(80, 24),
		Clipboard: func(text string) error { copied = text; return nil },
	})
	if err != nil {
		t.Fatal(err)
	}
	defer a.Close()

	a.Session().Sheet().SetValue(workbook.Address{Row: 1, Col: 1}, "a")
	a.Session().Sheet().SetValue(workbook.Address{Row: 1, Col: 2}, "b")
	press(a, "D")
	press(a, "c")
	if copied != "a\tb" {
		t.Errorf("system clipboard got %q", copied)
	}
}

func TestKeyOverrides(t *testing.T) {
	cfg := testConfig(t)
	cfg.Keys = map[string]map[string]string{
		"browse": {"x": "app.quit", "C-w": "none"},
	}
	a, _ := newTestApp(t, cfg, "")
	if press(a, "C-w") {
		t.Error("unbound C-w should not quit")
	}
	if !press(a, "x") {
		t.Error("x should quit")
	}

	cfg.Keys = map[string]map[string]string{"browse": {"x": "no.such"}}
	_, err := New(Options{Config: cfg})
	var initErr *InitError
	if !errors.As(err, &initErr) || initErr.Component != "keymap" {
		t.Errorf("New() error = %v, want keymap InitError", err)
	}
}

func TestFileChangedNotice(t *testing.T) {
	a, _ := newTestApp(t, testConfig(t), "")
	a.HandleEvent(backend.Event{Type: backend.EventInterrupt, Data: fileChanged{}})
	if got := a.Session().Status(); got != MsgFileChanged {
		t.Errorf("status = %q", got)
	}
	press(a, "s")
	if got := a.Session().Status(); got == MsgFileChanged {
		t.Error("a key press should clear the notice")
	}
}

func TestResizeUpdatesViewport(t *testing.T) {
	a, _ := newTestApp(t, testConfig(t), "")
	a.HandleEvent(backend.Event{Type: backend.EventResize, Width: 40, Height: 8})
	if got := len(a.Session().Model().Rows); got != 5 {
		t.Errorf("visible rows = %d, want 5", got)
	}
}

func TestViewStateRestored(t *testing.T) {
	cfg := testConfig(t)
	path := filepath.Join(t.TempDir(), "book.xlsx")

	first, _ := newTestApp(t, cfg, path)
	press(first, "s")
	press(first, "d")
	if err := first.Close(); err != nil {
		t.Fatal(err)
	}

	second, _ := newTestApp(t, cfg, path)
	if got := second.Session().View().Focus(); got != (workbook.Address{Row: 2, Col: 2}) {
		t.Errorf("restored focus = %v, want B2", got)
	}
}

func TestRunQuitsOnKey(t *testing.T) {
	a, b := newTestApp(t, testConfig(t), "")
	if err := b.PostEvent(backend.Event{Type: backend.EventKey, Key: key.MustParse("C-w")}); err != nil {
		t.Fatal(err)
	}

	done := make(chan error, 1)
	go func() { done <- a.Run(context.Background()) }()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run() error = %v", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("Run() did not return after quit")
	}
	if b.Line(0) == "" {
		t.Error("Run() should have drawn the header")
	}
	if a.Metrics().Snapshot().RenderCount == 0 {
		t.Error("no frames recorded")
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	a, _ := newTestApp(t, testConfig(t), "")
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- a.Run(ctx) }()
	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run() error = %v", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("Run() did not return after cancel")
	}
}

func TestRunWithoutBackend(t *testing.T) {
	a, err := New(Options{Config: testConfig(t)})
	if err != nil {
		t.Fatal(err)
	}
	if err := a.Run(context.Background()); !errors.Is(err, ErrNoBackend) {
		t.Errorf("Run() error = %v", err)
	}
}

func TestWatcherPostsChange(t *testing.T) {
	cfg := testConfig(t)
	cfg.Watch.Enabled = true
	path := filepath.Join(t.TempDir(), "book.xlsx")
	if err := persist.Save(workbook.NewDefault(), path); err != nil {
		t.Fatal(err)
	}

	_, b := newTestApp(t, cfg, path)
	if err := os.WriteFile(path, []byte("changed elsewhere"), 0o644); err != nil {
		t.Fatal(err)
	}

	got := make(chan backend.Event, 1)
	go func() { got <- b.PollEvent() }()
	select {
	case ev := <-got:
		if _, ok := ev.Data.(fileChanged); ev.Type != backend.EventInterrupt || !ok {
			t.Errorf("event = %+v", ev)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("no change notice posted")
	}
}
