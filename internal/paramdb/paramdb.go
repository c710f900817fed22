// Package paramdb holds the game's parameter definitions, loaded once from
// <root>/Param/<Component>.yaml and read thereafter.
package paramdb

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

const ParamDir = "Param"

var ErrNoRoot = errors.New("parameter database needs an asset root")

// Param describes one parameter of a component.
type Param struct {
	Type    string      `yaml:"type"`
	Default interface{} `yaml:"default"`
}

type DB struct {
	initialized bool
	components  map[string]map[string]Param
}

func New() *DB {
	return &DB{components: make(map[string]map[string]Param)}
}

func (db *DB) IsInitialized() bool {
	return db.initialized
}

// Load reads every component file under root. Calling it again after a
// successful load does nothing.
func (db *DB) Load(root string) error {
	if db.initialized {
		return nil
	}
	if root == "" {
		return ErrNoRoot
	}

	entries, err := os.ReadDir(filepath.Join(root, ParamDir))
	if err != nil {
		return fmt.Errorf("read param directory: %w", err)
	}

	components := make(map[string]map[string]Param, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".yaml" {
			continue
		}

		data, err := os.ReadFile(filepath.Join(root, ParamDir, entry.Name()))
		if err != nil {
			return fmt.Errorf("read %s: %w", entry.Name(), err)
		}

		params := make(map[string]Param)
		if err := yaml.Unmarshal(data, &params); err != nil {
			return fmt.Errorf("parse %s: %w", entry.Name(), err)
		}
		components[strings.TrimSuffix(entry.Name(), ".yaml")] = params
	}

	db.components = components
	db.initialized = true
	return nil
}

// Components returns component names in sorted order.
func (db *DB) Components() []string {
	names := make([]string, 0, len(db.components))
	for name := range db.components {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (db *DB) Lookup(component, name string) (Param, bool) {
	params, ok := db.components[component]
	if !ok {
		return Param{}, false
	}
	p, ok := params[name]
	return p, ok
}

// Params returns the parameter names of a component in sorted order.
func (db *DB) Params(component string) []string {
	params := db.components[component]
	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
