// Package ui defines the immediate-mode drawing contract the orchestrator
// renders against once per frame. Widgets report interaction through their
// return values on the frame after the user acted.
package ui

import "strings"

// IDSeparator splits a label into visible text and an id suffix so that
// widgets with the same text get distinct ids, e.g. "Goomba##2".
const IDSeparator = "##"

// VisibleLabel returns the part of label that is shown to the user.
func VisibleLabel(label string) string {
	if i := strings.Index(label, IDSeparator); i >= 0 {
		return label[:i]
	}
	return label
}

// Drawer holds the widget primitives. Every Begin*/TreeNode that returns
// true must be matched with its End*/TreePop.
type Drawer interface {
	BeginMainMenuBar() bool
	EndMainMenuBar()
	BeginMenu(label string) bool
	EndMenu()
	// MenuItem reports a click. Disabled items never report one.
	MenuItem(label string, enabled bool) bool
	Separator()

	// Begin opens a window. When open is non-nil the window gets a close box
	// that sets *open to false.
	Begin(title string, open *bool) bool
	End()

	// Widget ids derive from labels; a "##" suffix is part of the id but
	// not of the shown text.
	TreeNode(label string) bool
	TreePop()
	RadioButton(label string, active bool) bool
	Button(label string) bool
	Text(text string)
}

// Toolkit is the per-frame handle the host passes to the render callback.
type Toolkit interface {
	Drawer

	// LoadLayout applies the toolkit's persisted layout settings.
	LoadLayout() error
	// Commit hands the finished frame to the toolkit.
	Commit()
	// RequestClose asks the host to close the window.
	RequestClose()
	// Notify shows a transient message outside the frame.
	Notify(title, message string)
}

// RenderFunc is invoked once per frame with a monotonically increasing,
// 0-based frame index.
type RenderFunc func(frame uint64, tk Toolkit)
