package app

// UIMode is what the main view shows.
type UIMode int

const (
	ModeUninitialized UIMode = iota
	ModeChoosingPreferences
	ModeChoosingCourse
	ModeEditingCourse
)

func (m UIMode) String() string {
	switch m {
	case ModeUninitialized:
		return "uninitialized"
	case ModeChoosingPreferences:
		return "choosing_preferences"
	case ModeChoosingCourse:
		return "choosing_course"
	case ModeEditingCourse:
		return "editing_course"
	default:
		return "unknown"
	}
}

// State is the orchestrator's view state. Content is one of
// ModeUninitialized, ModeChoosingCourse or ModeEditingCourse; the
// preferences window is an overlay drawn on top of any content.
type State struct {
	Content     UIMode
	Preferences bool
}

// initialState forces the preferences window open until settings say
// otherwise.
func initialState() State {
	return State{Content: ModeUninitialized, Preferences: true}
}

// Mode reports ModeChoosingPreferences when the overlay is the only thing on
// screen, the content mode otherwise.
func (s State) Mode() UIMode {
	if s.Content == ModeUninitialized && s.Preferences {
		return ModeChoosingPreferences
	}
	return s.Content
}

func (s State) ChoosingCourse() bool {
	return s.Content == ModeChoosingCourse
}
