// Package romfs resolves a configured asset root into the courses it holds.
//
// Courses live at <root>/Course/<World>/<CourseID>.yaml. Worlds and courses
// are reported in lexical order of their directory entries.
package romfs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	CourseDir       = "Course"
	CourseExtension = ".yaml"
)

var (
	ErrRootNotSet       = errors.New("asset root not set")
	ErrCourseNotFound   = errors.New("course not found")
	ErrRootNotDirectory = errors.New("asset root is not a directory")
)

// World groups the courses of one world in catalog order.
type World struct {
	Name    string
	Courses []string
}

type Provider struct {
	root string
}

func NewProvider() *Provider {
	return &Provider{}
}

// SetRoot points the provider at path. The path must be an existing
// directory; on error the previous root is kept.
func (p *Provider) SetRoot(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat asset root: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s: %w", path, ErrRootNotDirectory)
	}
	p.root = filepath.Clean(path)
	return nil
}

// Root returns the configured root, or "" when unset.
func (p *Provider) Root() string {
	return p.root
}

// CourseEntries lists every world and its courses. It reads the disk on each
// call.
func (p *Provider) CourseEntries() ([]World, error) {
	if p.root == "" {
		return nil, ErrRootNotSet
	}

	worldDirs, err := os.ReadDir(filepath.Join(p.root, CourseDir))
	if err != nil {
		return nil, fmt.Errorf("read course directory: %w", err)
	}

	worlds := make([]World, 0, len(worldDirs))
	for _, worldDir := range worldDirs {
		if !worldDir.IsDir() {
			continue
		}

		files, err := os.ReadDir(filepath.Join(p.root, CourseDir, worldDir.Name()))
		if err != nil {
			return nil, fmt.Errorf("read world %s: %w", worldDir.Name(), err)
		}

		world := World{Name: worldDir.Name()}
		for _, f := range files {
			if f.IsDir() || !strings.HasSuffix(f.Name(), CourseExtension) {
				continue
			}
			world.Courses = append(world.Courses, strings.TrimSuffix(f.Name(), CourseExtension))
		}
		worlds = append(worlds, world)
	}

	return worlds, nil
}

// Locate returns the world that contains the course id.
func (p *Provider) Locate(id string) (string, error) {
	worlds, err := p.CourseEntries()
	if err != nil {
		return "", err
	}
	for _, w := range worlds {
		for _, c := range w.Courses {
			if c == id {
				return w.Name, nil
			}
		}
	}
	return "", fmt.Errorf("%s: %w", id, ErrCourseNotFound)
}

// CoursePath is the on-disk location of a course under an arbitrary root,
// used both for reading from the asset root and writing to the mod output.
func CoursePath(root, world, id string) string {
	return filepath.Join(root, CourseDir, world, id+CourseExtension)
}
