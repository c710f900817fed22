// Package fyneui hosts the immediate-mode ui contract on top of fyne's
// retained widgets. Each frame's declared widgets are diffed against the
// previous frame and the window's menu and content are rebuilt only when
// they change. Widget callbacks queue clicks that the next frame consumes.
package fyneui

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"fyne.io/fyne/v2"

	"fushigi/internal/logger"
	"fushigi/internal/ui"
)

const (
	prefWindowWidth  = "layout.window_width"
	prefWindowHeight = "layout.window_height"
)

// Host drives a ui.RenderFunc from a ticker. Everything except Start, Stop
// and the ticker itself runs on fyne's main goroutine.
type Host struct {
	app      fyne.App
	window   fyne.Window
	logger   logger.Logger
	render   ui.RenderFunc
	interval time.Duration

	frameIndex uint64
	queued     atomic.Bool
	clicks     map[string]bool
	expanded   map[string]bool
	onClose    func()

	menuSig        string
	menuApplied    bool
	contentSig     string
	contentApplied bool
	rebuilds       int

	stop     chan struct{}
	stopOnce sync.Once
}

func NewHost(a fyne.App, w fyne.Window, interval time.Duration, render ui.RenderFunc, log logger.Logger) *Host {
	return &Host{
		app:      a,
		window:   w,
		logger:   log,
		render:   render,
		interval: interval,
		clicks:   make(map[string]bool),
		expanded: make(map[string]bool),
		stop:     make(chan struct{}),
	}
}

// SetCloseHandler replaces the default window close for RequestClose.
func (h *Host) SetCloseHandler(fn func()) {
	h.onClose = fn
}

// Frames is the number of frames rendered so far.
func (h *Host) Frames() uint64 {
	return h.frameIndex
}

// Start begins ticking frames. The fyne app must be run separately.
func (h *Host) Start() {
	go h.loop()
}

func (h *Host) Stop() {
	h.stopOnce.Do(func() {
		close(h.stop)
	})
}

func (h *Host) loop() {
	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			h.tick()
		case <-h.stop:
			return
		}
	}
}

// tick queues a frame on the main goroutine unless one is still pending.
func (h *Host) tick() {
	if !h.queued.CompareAndSwap(false, true) {
		return
	}
	fyne.Do(func() {
		defer h.queued.Store(false)
		h.RenderFrame()
	})
}

// RenderFrame renders one frame. Clicks not consumed by it are dropped.
func (h *Host) RenderFrame() {
	index := h.frameIndex
	defer func() {
		if r := recover(); r != nil {
			h.logger.Error("FyneHost", fmt.Errorf("render panic: %v", r), map[string]interface{}{
				"frame": index,
			})
		}
		h.clicks = make(map[string]bool)
		h.frameIndex++
	}()

	h.render(index, newFrame(h))
}

func (h *Host) click(id string) {
	h.clicks[id] = true
}

func (h *Host) consume(id string) bool {
	if h.clicks[id] {
		delete(h.clicks, id)
		return true
	}
	return false
}

func (h *Host) toggle(id string) {
	h.expanded[id] = !h.expanded[id]
}

func (h *Host) apply(f *frame) {
	if sig := signature(f.menus); !h.menuApplied || sig != h.menuSig {
		h.menuSig = sig
		h.menuApplied = true
		h.window.SetMainMenu(h.buildMainMenu(f.menus))
	}

	if sig := signature(f.windows); !h.contentApplied || sig != h.contentSig {
		h.contentSig = sig
		h.contentApplied = true
		h.rebuilds++
		h.window.SetContent(h.buildContent(f.windows))
		h.logger.Debug("FyneHost", "content rebuilt", map[string]interface{}{
			"frame":   h.frameIndex,
			"windows": len(f.windows),
		})
	}
}

// loadLayout restores the window size stored in the app preferences.
func (h *Host) loadLayout() error {
	prefs := h.app.Preferences()
	width := prefs.Float(prefWindowWidth)
	height := prefs.Float(prefWindowHeight)

	if width == 0 && height == 0 {
		return nil
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid stored window size %.0fx%.0f", width, height)
	}

	h.window.Resize(fyne.NewSize(float32(width), float32(height)))
	return nil
}

// SaveLayout stores the current window size in the app preferences.
func (h *Host) SaveLayout() error {
	size := h.window.Canvas().Size()
	if size.Width <= 0 || size.Height <= 0 {
		return fmt.Errorf("window has no size")
	}

	prefs := h.app.Preferences()
	prefs.SetFloat(prefWindowWidth, float64(size.Width))
	prefs.SetFloat(prefWindowHeight, float64(size.Height))
	return nil
}

func (h *Host) requestClose() {
	if h.onClose != nil {
		h.onClose()
		return
	}
	h.window.Close()
}

func (h *Host) notify(title, message string) {
	h.logger.Info("FyneHost", "notification", map[string]interface{}{
		"title":   title,
		"message": message,
	})
	h.app.SendNotification(fyne.NewNotification(title, message))
}
