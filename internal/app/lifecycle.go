package app

import (
	"sync"

	"fyne.io/fyne/v2"

	"fushigi/internal/logger"
	"fushigi/internal/shutdown"
)

// LayoutSaver persists toolkit layout before the window goes away.
type LayoutSaver interface {
	SaveLayout() error
}

// Lifecycle funnels every way of closing the window through one shutdown.
type Lifecycle struct {
	window   fyne.Window
	layout   LayoutSaver
	shutdown *shutdown.Manager
	logger   logger.Logger
	closing  bool

	layoutOnce sync.Once
}

func NewLifecycle(w fyne.Window, layout LayoutSaver, sm *shutdown.Manager, log logger.Logger) *Lifecycle {
	return &Lifecycle{
		window:   w,
		layout:   layout,
		shutdown: sm,
		logger:   log,
	}
}

// RequestClose saves layout and settings and then closes the window. It
// must run on the fyne main goroutine.
func (l *Lifecycle) RequestClose() {
	if l.closing {
		return
	}
	l.closing = true
	l.logger.Info("Lifecycle", "close requested", nil)

	l.Shutdown()
	l.window.Close()
}

// Shutdown saves layout and runs the shutdown steps without touching the
// window. It backs the app's own Quit path and is safe to call after
// RequestClose.
func (l *Lifecycle) Shutdown() {
	l.layoutOnce.Do(func() {
		if err := l.layout.SaveLayout(); err != nil {
			l.logger.Warning("Lifecycle", "layout not saved", map[string]interface{}{
				"error": err.Error(),
			})
		}
	})
	l.shutdown.Shutdown()
}

func (l *Lifecycle) ListenForSignals() {
	l.shutdown.Listen(func() {
		fyne.Do(l.RequestClose)
	})
}
