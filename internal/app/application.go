package app

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"fushigi/internal/config"
	"fushigi/internal/course"
	"fushigi/internal/folder"
	"fushigi/internal/logger"
	"fushigi/internal/paramdb"
	"fushigi/internal/romfs"
	"fushigi/internal/settings"
	"fushigi/internal/shutdown"
	"fushigi/internal/ui/fyneui"
)

const (
	AppName         = "Fushigi"
	AppID           = "io.github.fushigi.editor"
	AppVersion      = "0.1.0"
	MinWindowWidth  = 1280
	MinWindowHeight = 720
)

type Application struct {
	fyneApp      fyne.App
	window       fyne.Window
	logger       logger.Logger
	orchestrator *Orchestrator
	host         *fyneui.Host
	lifecycle    *Lifecycle
}

func NewApplication(cfg config.Config, log logger.Logger) (*Application, error) {
	app.SetMetadata(fyne.AppMetadata{
		ID:      AppID,
		Name:    AppName,
		Version: AppVersion,
	})
	fyneApp := app.NewWithID(AppID)

	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(MinWindowWidth, MinWindowHeight))
	window.CenterOnScreen()
	window.SetMaster()

	store := settings.Open(cfg.SettingsPath, log)
	provider := romfs.NewProvider()
	params := paramdb.New()

	orchestrator := NewOrchestrator(Deps{
		Settings: store,
		Assets:   provider,
		Params:   params,
		OpenSession: func(id string) (Session, error) {
			s, err := course.Open(provider, params, id)
			if err != nil {
				return nil, err
			}
			return s, nil
		},
		Chooser:      folder.NewNativeChooser(log),
		Logger:       log,
		NoticeFrames: uint64(cfg.NoticeFrames),
	})

	host := fyneui.NewHost(fyneApp, window, cfg.FrameInterval(), orchestrator.Render, log)

	shutdownManager := shutdown.NewManager(log)
	shutdownManager.Register("settings", orchestrator.Close)
	shutdownManager.Register("frame ticker", func() error {
		host.Stop()
		return nil
	})

	lifecycle := NewLifecycle(window, host, shutdownManager, log)
	host.SetCloseHandler(lifecycle.RequestClose)

	log.Info("Application", "initialization complete", map[string]interface{}{
		"version":       AppVersion,
		"settings_path": cfg.SettingsPath,
		"frame_rate":    cfg.FrameRate,
	})

	return &Application{
		fyneApp:      fyneApp,
		window:       window,
		logger:       log,
		orchestrator: orchestrator,
		host:         host,
		lifecycle:    lifecycle,
	}, nil
}

// Run blocks until the window closes.
func (a *Application) Run() error {
	a.window.SetCloseIntercept(a.lifecycle.RequestClose)
	a.fyneApp.Lifecycle().SetOnStopped(a.lifecycle.Shutdown)
	a.lifecycle.ListenForSignals()

	a.window.Show()
	a.host.Start()

	a.logger.Info("Application", "window displayed", nil)
	a.fyneApp.Run()

	return nil
}
