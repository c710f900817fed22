// Package course is the editor session for a single loaded course.
package course

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"fushigi/internal/paramdb"
	"fushigi/internal/romfs"
	"fushigi/internal/ui"
)

// Locator finds the course files under the configured asset root.
type Locator interface {
	Root() string
	Locate(id string) (string, error)
}

// ParamSource supplies parameter defaults for actors that omit them.
type ParamSource interface {
	IsInitialized() bool
	Params(component string) []string
	Lookup(component, name string) (paramdb.Param, bool)
}

type Course struct {
	Name  string `yaml:"name"`
	Areas []Area `yaml:"areas"`
}

type Area struct {
	Name   string  `yaml:"name"`
	Actors []Actor `yaml:"actors"`
}

type Actor struct {
	Name      string                 `yaml:"name"`
	Component string                 `yaml:"component,omitempty"`
	Params    map[string]interface{} `yaml:"params,omitempty"`
}

type Session struct {
	id     string
	world  string
	course Course
	params ParamSource
}

// Open reads the course id from the asset root.
func Open(loc Locator, params ParamSource, id string) (*Session, error) {
	world, err := loc.Locate(id)
	if err != nil {
		return nil, fmt.Errorf("open course %s: %w", id, err)
	}

	data, err := os.ReadFile(romfs.CoursePath(loc.Root(), world, id))
	if err != nil {
		return nil, fmt.Errorf("read course %s: %w", id, err)
	}

	var c Course
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse course %s: %w", id, err)
	}
	if c.Name == "" {
		c.Name = id
	}

	return &Session{
		id:     id,
		world:  world,
		course: c,
		params: params,
	}, nil
}

// Name is the course identifier the session was opened with.
func (s *Session) Name() string {
	return s.id
}

func (s *Session) World() string {
	return s.world
}

func (s *Session) Course() Course {
	return s.course
}

// Save writes the course below modRoot, mirroring its asset root location.
func (s *Session) Save(modRoot string) error {
	if modRoot == "" {
		return fmt.Errorf("save course %s: no output directory", s.id)
	}

	data, err := yaml.Marshal(s.course)
	if err != nil {
		return fmt.Errorf("encode course %s: %w", s.id, err)
	}

	path := romfs.CoursePath(modRoot, s.world, s.id)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create course directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write course %s: %w", s.id, err)
	}
	return nil
}

// Draw renders the area and actor tree of the course.
func (s *Session) Draw(d ui.Drawer) {
	if !d.Begin("Course "+s.id, nil) {
		return
	}
	defer d.End()

	d.Text(fmt.Sprintf("%s (%s)", s.course.Name, s.world))

	for i, area := range s.course.Areas {
		if !d.TreeNode(fmt.Sprintf("%s%s%d", area.Name, ui.IDSeparator, i)) {
			continue
		}
		for j, actor := range area.Actors {
			label := actor.Name
			if actor.Component != "" {
				label = fmt.Sprintf("%s [%s]", actor.Name, actor.Component)
			}
			if d.TreeNode(fmt.Sprintf("%s%s%d", label, ui.IDSeparator, j)) {
				for _, line := range s.paramLines(actor) {
					d.Text(line)
				}
				d.TreePop()
			}
		}
		d.TreePop()
	}
}

// paramLines merges the actor's own values with database defaults.
func (s *Session) paramLines(actor Actor) []string {
	values := make(map[string]string, len(actor.Params))
	for name, v := range actor.Params {
		values[name] = fmt.Sprintf("%s = %v", name, v)
	}

	if s.params != nil && s.params.IsInitialized() && actor.Component != "" {
		for _, name := range s.params.Params(actor.Component) {
			if _, set := values[name]; set {
				continue
			}
			if p, ok := s.params.Lookup(actor.Component, name); ok {
				values[name] = fmt.Sprintf("%s = %v (default)", name, p.Default)
			}
		}
	}

	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)

	lines := make([]string, len(names))
	for i, name := range names {
		lines[i] = values[name]
	}
	return lines
}
