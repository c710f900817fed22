package app

import (
	"errors"
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"

	"fushigi/internal/logger"
	"fushigi/internal/shutdown"
)

type fakeLayout struct {
	saves int
	err   error
}

func (f *fakeLayout) SaveLayout() error {
	f.saves++
	return f.err
}

func TestRequestCloseSavesOnce(t *testing.T) {
	a := test.NewTempApp(t)
	w := a.NewWindow("lifecycle")

	settings := &fakeSettings{}
	o := NewOrchestrator(Deps{Settings: settings})

	sm := shutdown.NewManager(logger.NoOpLogger{})
	sm.Register("settings", o.Close)

	layout := &fakeLayout{err: errors.New("no size")}
	l := NewLifecycle(w, layout, sm, logger.NoOpLogger{})

	l.RequestClose()
	l.RequestClose()
	l.Shutdown()

	assert.Equal(t, 1, layout.saves)
	assert.Equal(t, 1, settings.saves)
}

func TestShutdownWithoutWindowCloseSavesLayout(t *testing.T) {
	a := test.NewTempApp(t)
	w := a.NewWindow("lifecycle")

	settings := &fakeSettings{}
	o := NewOrchestrator(Deps{Settings: settings})

	sm := shutdown.NewManager(logger.NoOpLogger{})
	sm.Register("settings", o.Close)

	layout := &fakeLayout{}
	l := NewLifecycle(w, layout, sm, logger.NoOpLogger{})

	l.Shutdown()
	l.Shutdown()

	assert.Equal(t, 1, layout.saves)
	assert.Equal(t, 1, settings.saves)
}
