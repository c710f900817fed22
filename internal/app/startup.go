package app

import (
	"fushigi/internal/ui"
)

// startup loads the toolkit layout and applies user settings on
// StartupFrame. Any other frame, or a repeat of that frame, is a no-op.
func (o *Orchestrator) startup(frame uint64, tk ui.Toolkit) {
	if frame != StartupFrame || o.started {
		return
	}
	o.started = true

	if err := tk.LoadLayout(); err != nil {
		o.logger.Warning("Startup", "toolkit layout not loaded", map[string]interface{}{
			"error": err.Error(),
		})
	}

	o.applySettings()

	o.logger.Info("Startup", "settings applied", map[string]interface{}{
		"frame":      frame,
		"mode":       o.state.Mode().String(),
		"asset_root": o.assets.Root(),
	})
}

// applySettings runs three independent steps. A failing step is logged and
// leaves its defaults in place without stopping the others.
func (o *Orchestrator) applySettings() {
	if path := o.settings.RomFSPath(); path != "" {
		if err := o.assets.SetRoot(path); err != nil {
			o.logger.Warning("Startup", "stored asset root rejected", map[string]interface{}{
				"path":  path,
				"error": err.Error(),
			})
		} else {
			o.state.Preferences = false
			if o.state.Content == ModeUninitialized {
				o.state.Content = ModeChoosingCourse
			}
		}
	}

	o.loadParams()

	if id := o.settings.LatestCourse(); id != "" {
		session, err := o.openSession(id)
		if err != nil {
			o.logger.Warning("Startup", "latest course not reopened", map[string]interface{}{
				"course": id,
				"error":  err.Error(),
			})
			return
		}
		o.session = session
		o.state.Content = ModeEditingCourse
		o.state.Preferences = false
	}
}

// loadParams initialises the parameter database once an asset root exists.
func (o *Orchestrator) loadParams() {
	root := o.assets.Root()
	if root == "" || o.params.IsInitialized() {
		return
	}
	if err := o.params.Load(root); err != nil {
		o.logger.Error("ParamDB", err, map[string]interface{}{
			"root": root,
		})
		return
	}
	o.logger.Info("ParamDB", "parameter database loaded", map[string]interface{}{
		"root": root,
	})
}
