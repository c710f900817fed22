package fyneui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

const treeIndent = 16

func (h *Host) buildMainMenu(menus []*node) *fyne.MainMenu {
	built := make([]*fyne.Menu, 0, len(menus))
	for _, m := range menus {
		built = append(built, fyne.NewMenu(m.label, h.buildMenuItems(m.children)...))
	}
	return fyne.NewMainMenu(built...)
}

func (h *Host) buildMenuItems(nodes []*node) []*fyne.MenuItem {
	items := make([]*fyne.MenuItem, 0, len(nodes))
	for _, n := range nodes {
		switch n.kind {
		case kindSeparator:
			items = append(items, fyne.NewMenuItemSeparator())
		case kindMenuItem:
			id := n.id
			item := fyne.NewMenuItem(n.label, func() { h.click(id) })
			item.Disabled = !n.enabled
			items = append(items, item)
		case kindMenu:
			item := fyne.NewMenuItem(n.label, nil)
			item.ChildMenu = fyne.NewMenu(n.label, h.buildMenuItems(n.children)...)
			items = append(items, item)
		}
	}
	return items
}

func (h *Host) buildContent(windows []*node) fyne.CanvasObject {
	if len(windows) == 0 {
		return container.NewStack()
	}

	panels := make([]fyne.CanvasObject, 0, len(windows))
	for _, w := range windows {
		panels = append(panels, h.buildWindow(w))
	}
	return container.NewAdaptiveGrid(len(panels), panels...)
}

func (h *Host) buildWindow(n *node) fyne.CanvasObject {
	title := widget.NewLabelWithStyle(n.label, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})

	var closeButton fyne.CanvasObject
	if n.closable {
		id := n.id + "/" + closeBoxID
		b := widget.NewButtonWithIcon("", theme.CancelIcon(), func() { h.click(id) })
		b.Importance = widget.LowImportance
		closeButton = b
	}

	header := container.NewVBox(
		container.NewBorder(nil, nil, nil, closeButton, title),
		widget.NewSeparator(),
	)
	body := container.NewVScroll(h.buildBody(n.children))

	return widget.NewCard("", "", container.NewBorder(header, nil, nil, nil, body))
}

func (h *Host) buildBody(nodes []*node) *fyne.Container {
	objects := make([]fyne.CanvasObject, 0, len(nodes))
	for _, n := range nodes {
		id := n.id
		switch n.kind {
		case kindTree:
			icon := theme.MenuExpandIcon()
			if n.open {
				icon = theme.MenuDropDownIcon()
			}
			b := widget.NewButtonWithIcon(n.label, icon, func() { h.toggle(id) })
			b.Alignment = widget.ButtonAlignLeading
			b.Importance = widget.LowImportance
			objects = append(objects, b)

			if n.open && len(n.children) > 0 {
				indent := canvas.NewRectangle(color.Transparent)
				indent.SetMinSize(fyne.NewSize(treeIndent, 0))
				objects = append(objects, container.NewBorder(nil, nil, indent, nil, h.buildBody(n.children)))
			}
		case kindRadio:
			icon := theme.RadioButtonIcon()
			if n.active {
				icon = theme.RadioButtonCheckedIcon()
			}
			b := widget.NewButtonWithIcon(n.label, icon, func() { h.click(id) })
			b.Alignment = widget.ButtonAlignLeading
			b.Importance = widget.LowImportance
			objects = append(objects, b)
		case kindButton:
			objects = append(objects, widget.NewButton(n.label, func() { h.click(id) }))
		case kindText:
			label := widget.NewLabel(n.label)
			label.Wrapping = fyne.TextWrapWord
			objects = append(objects, label)
		case kindSeparator:
			objects = append(objects, widget.NewSeparator())
		}
	}
	return container.NewVBox(objects...)
}
