package app

import (
	"fushigi/internal/ui"
)

const (
	PreferencesTitle = "Preferences"
	ButtonAssetRoot  = "Select RomFS Path"
	ButtonModOutput  = "Select Mod Path"
	assetRootPrompt  = "Select the base game romfs directory."
	modOutputPrompt  = SavePrompt
	unsetPathLabel   = "(not set)"
)

func (o *Orchestrator) drawPreferences(tk ui.Toolkit) {
	open := true
	if !tk.Begin(PreferencesTitle, &open) {
		return
	}

	tk.Text("RomFS Path: " + orUnset(o.assets.Root()))
	if tk.Button(ButtonAssetRoot) {
		if path, ok := o.chooser.ChooseFolder(assetRootPrompt); ok {
			o.configureAssetRoot(tk, path)
		}
	}

	tk.Text("Mod Path: " + orUnset(o.settings.ModRomFSPath()))
	if tk.Button(ButtonModOutput) {
		if path, ok := o.chooser.ChooseFolder(modOutputPrompt); ok {
			o.settings.SetModRomFSPath(path)
			o.persistSettings("Preferences")
			o.logger.Info("Preferences", "mod output path set", map[string]interface{}{
				"path": path,
			})
		}
	}

	tk.End()

	if !open {
		o.state.Preferences = false
	}
}

// configureAssetRoot switches the provider to path, persists it and loads
// the parameter database if this is the first root.
func (o *Orchestrator) configureAssetRoot(tk ui.Toolkit, path string) {
	if err := o.assets.SetRoot(path); err != nil {
		o.logger.Error("Preferences", err, map[string]interface{}{
			"path": path,
		})
		o.notify(tk, "Invalid RomFS path", err.Error())
		return
	}

	o.settings.SetRomFSPath(path)
	o.persistSettings("Preferences")
	o.loadParams()

	if o.state.Content == ModeUninitialized {
		o.state.Content = ModeChoosingCourse
	}

	o.logger.Info("Preferences", "asset root set", map[string]interface{}{
		"path": path,
	})
}

func orUnset(path string) string {
	if path == "" {
		return unsetPathLabel
	}
	return path
}
