package app

import (
	"fushigi/internal/folder"
	"fushigi/internal/logger"
	"fushigi/internal/romfs"
	"fushigi/internal/ui"
)

// StartupFrame is the first frame on which the toolkit's own settings can be
// queried. Layout and user settings are applied on this frame only.
const StartupFrame uint64 = 2

// SettingsStore is the persisted user settings.
type SettingsStore interface {
	RomFSPath() string
	SetRomFSPath(path string)
	ModRomFSPath() string
	SetModRomFSPath(path string)
	LatestCourse() string
	AppendRecentCourse(id string)
	Save() error
}

// AssetRoot resolves the configured asset root into courses.
type AssetRoot interface {
	SetRoot(path string) error
	Root() string
	CourseEntries() ([]romfs.World, error)
}

// ParamDB is loaded at most once, and only with an asset root.
type ParamDB interface {
	IsInitialized() bool
	Load(root string) error
}

// Session is an open course.
type Session interface {
	Name() string
	Save(modRoot string) error
	Draw(d ui.Drawer)
}

// SessionOpener creates a session for a course id.
type SessionOpener func(id string) (Session, error)

// Deps are the collaborators an Orchestrator drives.
type Deps struct {
	Settings     SettingsStore
	Assets       AssetRoot
	Params       ParamDB
	OpenSession  SessionOpener
	Chooser      folder.Chooser
	Logger       logger.Logger
	NoticeFrames uint64
}

// Orchestrator owns the view state and the open course session. All of its
// methods must be called from the render goroutine.
type Orchestrator struct {
	settings    SettingsStore
	assets      AssetRoot
	params      ParamDB
	openSession SessionOpener
	chooser     folder.Chooser
	logger      logger.Logger

	state   State
	session Session
	started bool
	frame   uint64

	notice       notice
	noticeFrames uint64
}

type notice struct {
	text  string
	until uint64
}

func NewOrchestrator(deps Deps) *Orchestrator {
	log := deps.Logger
	if log == nil {
		log = logger.NoOpLogger{}
	}

	return &Orchestrator{
		settings:     deps.Settings,
		assets:       deps.Assets,
		params:       deps.Params,
		openSession:  deps.OpenSession,
		chooser:      deps.Chooser,
		logger:       log,
		state:        initialState(),
		noticeFrames: deps.NoticeFrames,
	}
}

func (o *Orchestrator) State() State {
	return o.state
}

// Started reports whether the startup step has run.
func (o *Orchestrator) Started() bool {
	return o.started
}

// Session returns the open session, or nil.
func (o *Orchestrator) Session() Session {
	return o.session
}

// SelectedCourseName mirrors the open session's name.
func (o *Orchestrator) SelectedCourseName() (string, bool) {
	if o.session == nil {
		return "", false
	}
	return o.session.Name(), true
}

// Render draws one frame. It is the host's per-frame callback.
func (o *Orchestrator) Render(frame uint64, tk ui.Toolkit) {
	o.frame = frame

	o.startup(frame, tk)
	o.drawMainMenu(tk)

	if frame > StartupFrame {
		if o.contentReady() {
			switch o.state.Content {
			case ModeChoosingCourse:
				o.drawCourseList(tk)
			case ModeEditingCourse:
				if o.session != nil {
					o.session.Draw(tk)
				}
			}
		}

		if o.state.Preferences {
			o.drawPreferences(tk)
		}

		o.drawNotice(tk)
	}

	tk.Commit()
}

// contentReady gates the course views on both paths being configured.
func (o *Orchestrator) contentReady() bool {
	return o.assets.Root() != "" && o.settings.ModRomFSPath() != ""
}

// Close persists settings. The host calls it before tearing the window down.
func (o *Orchestrator) Close() error {
	if err := o.settings.Save(); err != nil {
		o.logger.Error("Orchestrator", err, nil)
		return err
	}
	o.logger.Info("Orchestrator", "settings persisted", nil)
	return nil
}

func (o *Orchestrator) notify(tk ui.Toolkit, title, message string) {
	tk.Notify(title, message)
	if o.noticeFrames == 0 {
		return
	}
	o.notice = notice{
		text:  title + ": " + message,
		until: o.frame + o.noticeFrames,
	}
}

func (o *Orchestrator) drawNotice(d ui.Drawer) {
	if o.notice.text == "" {
		return
	}
	if o.frame >= o.notice.until {
		o.notice = notice{}
		return
	}

	open := true
	if d.Begin(NoticeTitle, &open) {
		d.Text(o.notice.text)
		d.End()
	}
	if !open {
		o.notice = notice{}
	}
}
