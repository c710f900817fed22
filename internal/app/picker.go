package app

import (
	"fushigi/internal/ui"
)

const PickerTitle = "Select Course"

// drawCourseList lists the catalog grouped by world, in the provider's
// order. The catalog is read fresh on every draw.
func (o *Orchestrator) drawCourseList(d ui.Drawer) {
	open := true
	if !d.Begin(PickerTitle, &open) {
		return
	}

	current, hasCurrent := o.SelectedCourseName()

	worlds, err := o.assets.CourseEntries()
	if err != nil {
		d.Text("Courses unavailable: " + err.Error())
		o.logger.Debug("CoursePicker", "course catalog unavailable", map[string]interface{}{
			"error": err.Error(),
		})
	}

	selected := false
	for _, world := range worlds {
		if !d.TreeNode(world.Name) {
			continue
		}
		for _, id := range world.Courses {
			if d.RadioButton(id, hasCurrent && id == current) {
				o.selectCourse(id)
				selected = true
				break
			}
		}
		d.TreePop()
		// The picker is closed once a course is chosen.
		if selected {
			break
		}
	}

	d.End()

	if !open && o.state.ChoosingCourse() {
		o.closePicker()
	}
}

// selectCourse closes the picker and opens id unless it is already open.
func (o *Orchestrator) selectCourse(id string) {
	o.closePicker()

	if current, ok := o.SelectedCourseName(); ok && current == id {
		o.logger.Debug("CoursePicker", "course already open", map[string]interface{}{
			"course": id,
		})
		return
	}

	session, err := o.openSession(id)
	if err != nil {
		o.logger.Error("CoursePicker", err, map[string]interface{}{
			"course": id,
		})
		return
	}

	o.session = session
	o.state.Content = ModeEditingCourse
	o.settings.AppendRecentCourse(id)

	o.logger.Info("CoursePicker", "course opened", map[string]interface{}{
		"course": id,
	})
}

func (o *Orchestrator) closePicker() {
	if o.session != nil {
		o.state.Content = ModeEditingCourse
	} else {
		o.state.Content = ModeUninitialized
	}
}
