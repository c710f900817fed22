package fyneui

import (
	"fmt"
	"strings"

	"fushigi/internal/ui"
)

type nodeKind int

const (
	kindMenu nodeKind = iota
	kindMenuItem
	kindSeparator
	kindWindow
	kindTree
	kindRadio
	kindButton
	kindText
)

const closeBoxID = "#close"

// node is one widget declared during a frame.
type node struct {
	kind     nodeKind
	id       string
	label    string
	enabled  bool
	active   bool
	open     bool
	closable bool
	children []*node
}

// frame records the widgets one render pass declares and answers their
// interaction queries from clicks the host collected since the last frame.
type frame struct {
	host    *Host
	menus   []*node
	windows []*node
	parents []*node
	ids     []string
}

var _ ui.Toolkit = (*frame)(nil)

func newFrame(h *Host) *frame {
	return &frame{host: h}
}

func (f *frame) id(label string) string {
	if len(f.ids) == 0 {
		return label
	}
	return strings.Join(f.ids, "/") + "/" + label
}

func (f *frame) add(n *node) {
	if len(f.parents) == 0 {
		switch n.kind {
		case kindMenu:
			f.menus = append(f.menus, n)
		case kindWindow:
			f.windows = append(f.windows, n)
		}
		return
	}
	parent := f.parents[len(f.parents)-1]
	parent.children = append(parent.children, n)
}

func (f *frame) push(n *node, label string) {
	f.parents = append(f.parents, n)
	f.ids = append(f.ids, label)
}

func (f *frame) pop() {
	if len(f.parents) == 0 {
		return
	}
	f.parents = f.parents[:len(f.parents)-1]
	f.ids = f.ids[:len(f.ids)-1]
}

func (f *frame) BeginMainMenuBar() bool { return true }
func (f *frame) EndMainMenuBar()        {}

func (f *frame) BeginMenu(label string) bool {
	n := &node{kind: kindMenu, id: f.id(label), label: ui.VisibleLabel(label)}
	f.add(n)
	f.push(n, label)
	return true
}

func (f *frame) EndMenu() { f.pop() }

func (f *frame) MenuItem(label string, enabled bool) bool {
	n := &node{kind: kindMenuItem, id: f.id(label), label: ui.VisibleLabel(label), enabled: enabled}
	f.add(n)
	return f.host.consume(n.id) && enabled
}

func (f *frame) Separator() {
	f.add(&node{kind: kindSeparator})
}

func (f *frame) Begin(title string, open *bool) bool {
	n := &node{kind: kindWindow, id: f.id(title), label: ui.VisibleLabel(title), closable: open != nil}
	f.add(n)
	f.push(n, title)
	if open != nil && f.host.consume(f.id(closeBoxID)) {
		*open = false
	}
	return true
}

func (f *frame) End() { f.pop() }

func (f *frame) TreeNode(label string) bool {
	id := f.id(label)
	n := &node{kind: kindTree, id: id, label: ui.VisibleLabel(label), open: f.host.expanded[id]}
	f.add(n)
	if !n.open {
		return false
	}
	f.push(n, label)
	return true
}

func (f *frame) TreePop() { f.pop() }

func (f *frame) RadioButton(label string, active bool) bool {
	n := &node{kind: kindRadio, id: f.id(label), label: ui.VisibleLabel(label), active: active}
	f.add(n)
	return f.host.consume(n.id)
}

func (f *frame) Button(label string) bool {
	n := &node{kind: kindButton, id: f.id(label), label: ui.VisibleLabel(label)}
	f.add(n)
	return f.host.consume(n.id)
}

func (f *frame) Text(text string) {
	f.add(&node{kind: kindText, label: text})
}

func (f *frame) LoadLayout() error            { return f.host.loadLayout() }
func (f *frame) Commit()                      { f.host.apply(f) }
func (f *frame) RequestClose()                { f.host.requestClose() }
func (f *frame) Notify(title, message string) { f.host.notify(title, message) }

// signature serialises a node list so the host can tell whether the
// retained widgets need rebuilding.
func signature(nodes []*node) string {
	var b strings.Builder
	writeSignature(&b, nodes)
	return b.String()
}

func writeSignature(b *strings.Builder, nodes []*node) {
	for _, n := range nodes {
		fmt.Fprintf(b, "%d|%s|%s|%t|%t|%t|%t{", n.kind, n.id, n.label, n.enabled, n.active, n.open, n.closable)
		writeSignature(b, n.children)
		b.WriteString("}")
	}
}
