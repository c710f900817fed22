// Package settings persists user choices (asset root, mod output path and
// course history) across restarts.
package settings

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/viper"

	"fushigi/internal/logger"
)

const (
	keyRomFSPath     = "romfs_path"
	keyModRomFSPath  = "mod_romfs_path"
	keyLatestCourse  = "latest_course"
	keyRecentCourses = "recent_courses"

	// MaxRecentCourses bounds the history kept on disk.
	MaxRecentCourses = 10
)

type Store struct {
	path   string
	v      *viper.Viper
	logger logger.Logger
	mu     sync.Mutex
}

// Open loads the settings file at path. A missing or malformed file is not an
// error: every setting falls back to its empty default and the problem is
// logged.
func Open(path string, log logger.Logger) *Store {
	s := &Store{
		path:   path,
		v:      newViper(),
		logger: log,
	}

	s.v.SetConfigFile(path)
	if err := s.v.ReadInConfig(); err != nil {
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) && errors.Is(pathErr.Err, fs.ErrNotExist) {
			log.Info("Settings", "no settings file, starting with defaults", map[string]interface{}{
				"path": path,
			})
		} else {
			log.Warning("Settings", "settings file unreadable, starting with defaults", map[string]interface{}{
				"path":  path,
				"error": err.Error(),
			})
		}
		s.v = newViper()
	}

	return s
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("json")
	return v
}

func (s *Store) Path() string {
	return s.path
}

func (s *Store) RomFSPath() string {
	return s.getString(keyRomFSPath)
}

func (s *Store) SetRomFSPath(path string) {
	s.set(keyRomFSPath, path)
}

func (s *Store) ModRomFSPath() string {
	return s.getString(keyModRomFSPath)
}

func (s *Store) SetModRomFSPath(path string) {
	s.set(keyModRomFSPath, path)
}

// LatestCourse is the most recently opened course, or "" if none.
func (s *Store) LatestCourse() string {
	return s.getString(keyLatestCourse)
}

func (s *Store) SetLatestCourse(id string) {
	s.set(keyLatestCourse, id)
}

// RecentCourses returns the history, most recent first.
func (s *Store) RecentCourses() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.recentLocked()
}

// AppendRecentCourse moves id to the head of the history and makes it the
// latest course.
func (s *Store) AppendRecentCourse(id string) {
	if id == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	recent := []string{id}
	for _, existing := range s.recentLocked() {
		if existing != id {
			recent = append(recent, existing)
		}
	}
	if len(recent) > MaxRecentCourses {
		recent = recent[:MaxRecentCourses]
	}

	s.v.Set(keyRecentCourses, recent)
	s.v.Set(keyLatestCourse, id)
}

// Save writes every setting to disk, creating the parent directory if needed.
func (s *Store) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("mkdir settings dir: %w", err)
	}

	out := newViper()
	out.Set(keyRomFSPath, s.stringLocked(keyRomFSPath))
	out.Set(keyModRomFSPath, s.stringLocked(keyModRomFSPath))
	out.Set(keyLatestCourse, s.stringLocked(keyLatestCourse))
	out.Set(keyRecentCourses, s.recentLocked())

	if err := out.WriteConfigAs(s.path); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	s.logger.Debug("Settings", "settings saved", map[string]interface{}{
		"path": s.path,
	})
	return nil
}

func (s *Store) getString(key string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stringLocked(key)
}

func (s *Store) set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.v.Set(key, value)
}

// stringLocked rejects values of the wrong type so that one corrupt entry
// does not leak into the others.
func (s *Store) stringLocked(key string) string {
	raw := s.v.Get(key)
	if raw == nil {
		return ""
	}
	value, ok := raw.(string)
	if !ok {
		s.logger.Warning("Settings", "ignoring malformed setting", map[string]interface{}{
			"key": key,
		})
		return ""
	}
	return value
}

func (s *Store) recentLocked() []string {
	raw := s.v.Get(keyRecentCourses)
	switch list := raw.(type) {
	case []string:
		return append([]string(nil), list...)
	case []interface{}:
		recent := make([]string, 0, len(list))
		for _, item := range list {
			if id, ok := item.(string); ok && id != "" {
				recent = append(recent, id)
			}
		}
		return recent
	default:
		return nil
	}
}
