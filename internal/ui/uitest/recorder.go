// Package uitest provides a scripted ui.Toolkit for tests.
package uitest

import (
	"strings"

	"fushigi/internal/ui"
)

var _ ui.Toolkit = (*Recorder)(nil)

// CloseBox is the path segment of a window's close box.
const CloseBox = "#close"

// Recorder records what a frame drew and answers widget calls from clicks
// scheduled with Click. Widget ids are the '/'-joined labels of the enclosing
// menus, windows and tree nodes followed by the widget's own label.
type Recorder struct {
	// Collapsed tree nodes report false; all others are open.
	Collapsed map[string]bool
	LayoutErr error

	MenuItems map[string]bool
	Windows   []string
	Radios    map[string]bool
	Texts     []string

	// Drawn lists tree node and radio button ids in draw order.
	Drawn []string

	LayoutLoads   int
	Commits       int
	CloseRequests int
	Notices       []string

	clicks map[string]bool
	stack  []string
}

func New() *Recorder {
	r := &Recorder{
		Collapsed: make(map[string]bool),
		clicks:    make(map[string]bool),
	}
	r.BeginFrame()
	return r
}

// BeginFrame clears what the previous frame drew.
func (r *Recorder) BeginFrame() {
	r.MenuItems = make(map[string]bool)
	r.Windows = nil
	r.Radios = make(map[string]bool)
	r.Texts = nil
	r.Drawn = nil
	r.stack = r.stack[:0]
}

// Click makes the widget with the given id report a click the next time it
// is drawn.
func (r *Recorder) Click(id string) {
	r.clicks[id] = true
}

// Pending reports whether a scheduled click has not been consumed yet.
func (r *Recorder) Pending(id string) bool {
	return r.clicks[id]
}

func (r *Recorder) HasWindow(title string) bool {
	for _, w := range r.Windows {
		if w == title {
			return true
		}
	}
	return false
}

func (r *Recorder) id(label string) string {
	return strings.Join(append(append([]string(nil), r.stack...), label), "/")
}

func (r *Recorder) consume(id string) bool {
	if r.clicks[id] {
		delete(r.clicks, id)
		return true
	}
	return false
}

func (r *Recorder) push(label string) {
	r.stack = append(r.stack, label)
}

func (r *Recorder) pop() {
	if len(r.stack) > 0 {
		r.stack = r.stack[:len(r.stack)-1]
	}
}

func (r *Recorder) BeginMainMenuBar() bool { return true }
func (r *Recorder) EndMainMenuBar()        {}

func (r *Recorder) BeginMenu(label string) bool {
	r.push(label)
	return true
}

func (r *Recorder) EndMenu() { r.pop() }

func (r *Recorder) MenuItem(label string, enabled bool) bool {
	id := r.id(label)
	r.MenuItems[id] = enabled
	clicked := r.consume(id)
	return clicked && enabled
}

func (r *Recorder) Separator() {}

func (r *Recorder) Begin(title string, open *bool) bool {
	r.Windows = append(r.Windows, title)
	r.push(title)
	if open != nil && r.consume(r.id(CloseBox)) {
		*open = false
	}
	return true
}

func (r *Recorder) End() { r.pop() }

func (r *Recorder) TreeNode(label string) bool {
	id := r.id(label)
	r.Drawn = append(r.Drawn, id)
	if r.Collapsed[id] {
		return false
	}
	r.push(label)
	return true
}

func (r *Recorder) TreePop() { r.pop() }

func (r *Recorder) RadioButton(label string, active bool) bool {
	id := r.id(label)
	r.Radios[id] = active
	r.Drawn = append(r.Drawn, id)
	return r.consume(id)
}

func (r *Recorder) Button(label string) bool {
	return r.consume(r.id(label))
}

func (r *Recorder) Text(text string) {
	r.Texts = append(r.Texts, text)
}

func (r *Recorder) LoadLayout() error {
	r.LayoutLoads++
	return r.LayoutErr
}

func (r *Recorder) Commit() { r.Commits++ }

func (r *Recorder) RequestClose() { r.CloseRequests++ }

func (r *Recorder) Notify(title, message string) {
	r.Notices = append(r.Notices, title+": "+message)
}
