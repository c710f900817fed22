package app

import (
	"fushigi/internal/ui"
)

const (
	SavePrompt  = "Select the romfs directory to save to."
	NoticeTitle = "Notice"
)

// save writes to the configured mod output path, asking for one first if
// none is set.
func (o *Orchestrator) save(tk ui.Toolkit) {
	if o.session == nil {
		return
	}
	if modPath := o.settings.ModRomFSPath(); modPath != "" {
		o.writeSession(tk, modPath)
		return
	}
	o.saveAs(tk)
}

// saveAs always asks for the output directory. Cancelling aborts silently.
func (o *Orchestrator) saveAs(tk ui.Toolkit) {
	if o.session == nil {
		return
	}
	path, ok := o.chooseModPath()
	if !ok {
		o.logger.Debug("SaveFlow", "save cancelled", nil)
		return
	}
	o.writeSession(tk, path)
}

// chooseModPath runs the folder dialog and persists a confirmed choice.
func (o *Orchestrator) chooseModPath() (string, bool) {
	path, ok := o.chooser.ChooseFolder(SavePrompt)
	if !ok || path == "" {
		return "", false
	}
	o.settings.SetModRomFSPath(path)
	o.persistSettings("SaveFlow")
	o.logger.Info("SaveFlow", "mod output path set", map[string]interface{}{
		"path": path,
	})
	return path, true
}

// persistSettings writes the store right after a confirmed folder choice.
// A failed write is logged; the choice stays in effect for this session.
func (o *Orchestrator) persistSettings(component string) {
	if err := o.settings.Save(); err != nil {
		o.logger.Error(component, err, map[string]interface{}{
			"step": "persist settings",
		})
	}
}

func (o *Orchestrator) writeSession(tk ui.Toolkit, modPath string) {
	name := o.session.Name()
	if err := o.session.Save(modPath); err != nil {
		o.logger.Error("SaveFlow", err, map[string]interface{}{
			"course": name,
			"path":   modPath,
		})
		o.notify(tk, "Save failed", err.Error())
		return
	}
	o.logger.Info("SaveFlow", "course saved", map[string]interface{}{
		"course": name,
		"path":   modPath,
	})
}
