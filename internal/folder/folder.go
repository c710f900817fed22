// Package folder wraps the platform's native directory chooser.
package folder

import (
	"errors"

	"github.com/sqweek/dialog"

	"fushigi/internal/logger"
)

// Chooser blocks until the user picks a directory or cancels. ok is false
// on cancel.
type Chooser interface {
	ChooseFolder(prompt string) (path string, ok bool)
}

type NativeChooser struct {
	logger logger.Logger
}

func NewNativeChooser(log logger.Logger) *NativeChooser {
	return &NativeChooser{logger: log}
}

func (c *NativeChooser) ChooseFolder(prompt string) (string, bool) {
	path, err := dialog.Directory().Title(prompt).Browse()
	if err != nil {
		if !errors.Is(err, dialog.ErrCancelled) {
			c.logger.Error("FolderDialog", err, map[string]interface{}{
				"prompt": prompt,
			})
		}
		return "", false
	}
	if path == "" {
		return "", false
	}
	return path, true
}
