package paramdb

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeParams(t *testing.T, root, component, body string) {
	t.Helper()
	dir := filepath.Join(root, ParamDir)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, component+".yaml"), []byte(body), 0o644))
}

func TestLoadAndLookup(t *testing.T) {
	root := t.TempDir()
	writeParams(t, root, "Enemy", "Speed:\n  type: float\n  default: 1.5\nHealth:\n  type: int\n  default: 3\n")
	writeParams(t, root, "Block", "Hidden:\n  type: bool\n  default: false\n")

	db := New()
	assert.False(t, db.IsInitialized())
	require.NoError(t, db.Load(root))
	assert.True(t, db.IsInitialized())

	assert.Equal(t, []string{"Block", "Enemy"}, db.Components())
	assert.Equal(t, []string{"Health", "Speed"}, db.Params("Enemy"))

	p, ok := db.Lookup("Enemy", "Speed")
	require.True(t, ok)
	assert.Equal(t, "float", p.Type)
	assert.Equal(t, 1.5, p.Default)

	_, ok = db.Lookup("Enemy", "Missing")
	assert.False(t, ok)
	_, ok = db.Lookup("Missing", "Speed")
	assert.False(t, ok)
}

func TestLoadIsIdempotent(t *testing.T) {
	root := t.TempDir()
	writeParams(t, root, "Enemy", "Speed:\n  type: float\n  default: 1\n")

	db := New()
	require.NoError(t, db.Load(root))

	writeParams(t, root, "Late", "X:\n  type: int\n  default: 0\n")
	require.NoError(t, db.Load(root))
	assert.Equal(t, []string{"Enemy"}, db.Components())
}

func TestLoadWithoutRoot(t *testing.T) {
	db := New()
	assert.ErrorIs(t, db.Load(""), ErrNoRoot)
	assert.False(t, db.IsInitialized())
}

func TestLoadMalformedFileLeavesUninitialized(t *testing.T) {
	root := t.TempDir()
	writeParams(t, root, "Broken", "::: not yaml [")

	db := New()
	assert.Error(t, db.Load(root))
	assert.False(t, db.IsInitialized())
}
