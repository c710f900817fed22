package app

import (
	"errors"

	"fushigi/internal/romfs"
	"fushigi/internal/ui"
)

type fakeSettings struct {
	romfsPath string
	modPath   string
	latest    string
	recent    []string
	saves     int
	saveErr   error
}

func (f *fakeSettings) RomFSPath() string            { return f.romfsPath }
func (f *fakeSettings) SetRomFSPath(path string)     { f.romfsPath = path }
func (f *fakeSettings) ModRomFSPath() string         { return f.modPath }
func (f *fakeSettings) SetModRomFSPath(path string)  { f.modPath = path }
func (f *fakeSettings) LatestCourse() string         { return f.latest }
func (f *fakeSettings) AppendRecentCourse(id string) { f.recent = append(f.recent, id); f.latest = id }

func (f *fakeSettings) Save() error {
	f.saves++
	return f.saveErr
}

type fakeAssets struct {
	root     string
	worlds   []romfs.World
	setErr   error
	setCalls []string
}

func (f *fakeAssets) SetRoot(path string) error {
	f.setCalls = append(f.setCalls, path)
	if f.setErr != nil {
		return f.setErr
	}
	f.root = path
	return nil
}

func (f *fakeAssets) Root() string { return f.root }

func (f *fakeAssets) CourseEntries() ([]romfs.World, error) {
	if f.root == "" {
		return nil, romfs.ErrRootNotSet
	}
	return f.worlds, nil
}

type fakeParams struct {
	initialized bool
	loads       []string
	err         error
}

func (f *fakeParams) IsInitialized() bool { return f.initialized }

func (f *fakeParams) Load(root string) error {
	f.loads = append(f.loads, root)
	if f.err != nil {
		return f.err
	}
	f.initialized = true
	return nil
}

type fakeSession struct {
	name    string
	saves   []string
	saveErr error
	draws   int
}

func (f *fakeSession) Name() string { return f.name }

func (f *fakeSession) Save(modRoot string) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saves = append(f.saves, modRoot)
	return nil
}

func (f *fakeSession) Draw(d ui.Drawer) {
	f.draws++
	if d.Begin("Course "+f.name, nil) {
		d.End()
	}
}

var errNoSuchCourse = errors.New("no such course")

type fakeOpener struct {
	known    map[string]bool
	opened   []string
	sessions []*fakeSession
}

func (f *fakeOpener) open(id string) (Session, error) {
	f.opened = append(f.opened, id)
	if f.known != nil && !f.known[id] {
		return nil, errNoSuchCourse
	}
	s := &fakeSession{name: id}
	f.sessions = append(f.sessions, s)
	return s, nil
}

type fakeChooser struct {
	path    string
	ok      bool
	prompts []string
}

func (f *fakeChooser) ChooseFolder(prompt string) (string, bool) {
	f.prompts = append(f.prompts, prompt)
	return f.path, f.ok
}
