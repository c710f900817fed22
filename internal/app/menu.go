package app

import (
	"fushigi/internal/ui"
)

const (
	MenuFile        = "File"
	MenuPreferences = "Preferences"
	MenuOpenCourse  = "Open Course"
	MenuSave        = "Save"
	MenuSaveAs      = "Save As"
	MenuClose       = "Close"
)

// Command is a menu action.
type Command int

const (
	CommandPreferences Command = iota
	CommandOpenCourse
	CommandSave
	CommandSaveAs
	CommandClose
)

var commandLabels = map[Command]string{
	CommandPreferences: MenuPreferences,
	CommandOpenCourse:  MenuOpenCourse,
	CommandSave:        MenuSave,
	CommandSaveAs:      MenuSaveAs,
	CommandClose:       MenuClose,
}

func (c Command) String() string {
	if label, ok := commandLabels[c]; ok {
		return label
	}
	return "unknown"
}

// Enabled is the single precondition behind both a command's appearance and
// whether it runs.
func (o *Orchestrator) Enabled(cmd Command) bool {
	switch cmd {
	case CommandPreferences, CommandClose:
		return true
	case CommandOpenCourse:
		return o.assets.Root() != "" && o.settings.ModRomFSPath() != ""
	case CommandSave, CommandSaveAs:
		return o.session != nil
	default:
		return false
	}
}

// Dispatch runs cmd if it is enabled and reports whether it ran.
func (o *Orchestrator) Dispatch(cmd Command, tk ui.Toolkit) bool {
	if !o.Enabled(cmd) {
		o.logger.Debug("Menu", "ignored disabled command", map[string]interface{}{
			"command": cmd.String(),
		})
		return false
	}

	o.logger.Debug("Menu", "command selected", map[string]interface{}{
		"command": cmd.String(),
	})

	switch cmd {
	case CommandPreferences:
		o.state.Preferences = true
	case CommandOpenCourse:
		o.state.Content = ModeChoosingCourse
	case CommandSave:
		o.save(tk)
	case CommandSaveAs:
		o.saveAs(tk)
	case CommandClose:
		tk.RequestClose()
	}
	return true
}

func (o *Orchestrator) drawMainMenu(tk ui.Toolkit) {
	if !tk.BeginMainMenuBar() {
		return
	}
	defer tk.EndMainMenuBar()

	if !tk.BeginMenu(MenuFile) {
		return
	}
	defer tk.EndMenu()

	o.menuItem(tk, CommandPreferences)
	o.menuItem(tk, CommandOpenCourse)
	tk.Separator()
	o.menuItem(tk, CommandSave)
	o.menuItem(tk, CommandSaveAs)
	tk.Separator()
	o.menuItem(tk, CommandClose)
}

func (o *Orchestrator) menuItem(tk ui.Toolkit, cmd Command) {
	if tk.MenuItem(cmd.String(), o.Enabled(cmd)) {
		o.Dispatch(cmd, tk)
	}
}
