package course

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"fushigi/internal/paramdb"
	"fushigi/internal/romfs"
	"fushigi/internal/ui/uitest"
)

const sampleCourse = `name: Grassland Start
areas:
  - name: Main
    actors:
      - name: Goomba
        component: Enemy
        params:
          Speed: 2
      - name: Block
`

func setupRoot(t *testing.T) (*romfs.Provider, *paramdb.DB) {
	t.Helper()
	root := t.TempDir()

	path := romfs.CoursePath(root, "World1", "1-1")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(sampleCourse), 0o644))

	paramDir := filepath.Join(root, paramdb.ParamDir)
	require.NoError(t, os.MkdirAll(paramDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(paramDir, "Enemy.yaml"),
		[]byte("Speed:\n  type: float\n  default: 1\nHealth:\n  type: int\n  default: 3\n"), 0o644))

	provider := romfs.NewProvider()
	require.NoError(t, provider.SetRoot(root))

	db := paramdb.New()
	require.NoError(t, db.Load(root))
	return provider, db
}

func TestOpen(t *testing.T) {
	provider, db := setupRoot(t)

	s, err := Open(provider, db, "1-1")
	require.NoError(t, err)
	assert.Equal(t, "1-1", s.Name())
	assert.Equal(t, "World1", s.World())
	assert.Equal(t, "Grassland Start", s.Course().Name)
	require.Len(t, s.Course().Areas, 1)
	assert.Len(t, s.Course().Areas[0].Actors, 2)
}

func TestOpenUnknownCourse(t *testing.T) {
	provider, db := setupRoot(t)

	_, err := Open(provider, db, "8-8")
	assert.ErrorIs(t, err, romfs.ErrCourseNotFound)
}

func TestSaveWritesUnderModRoot(t *testing.T) {
	provider, db := setupRoot(t)
	s, err := Open(provider, db, "1-1")
	require.NoError(t, err)

	mod := t.TempDir()
	require.NoError(t, s.Save(mod))

	data, err := os.ReadFile(romfs.CoursePath(mod, "World1", "1-1"))
	require.NoError(t, err)

	var saved Course
	require.NoError(t, yaml.Unmarshal(data, &saved))
	assert.Equal(t, s.Course().Name, saved.Name)
	assert.Equal(t, "Goomba", saved.Areas[0].Actors[0].Name)
}

func TestSaveWithoutModRoot(t *testing.T) {
	provider, db := setupRoot(t)
	s, err := Open(provider, db, "1-1")
	require.NoError(t, err)

	assert.Error(t, s.Save(""))
}

func TestDrawMergesParameterDefaults(t *testing.T) {
	provider, db := setupRoot(t)
	s, err := Open(provider, db, "1-1")
	require.NoError(t, err)

	r := uitest.New()
	s.Draw(r)

	assert.True(t, r.HasWindow("Course 1-1"))
	assert.Contains(t, r.Texts, "Grassland Start (World1)")
	assert.Contains(t, r.Texts, "Speed = 2")
	assert.Contains(t, r.Texts, "Health = 3 (default)")
	assert.NotContains(t, r.Texts, "Speed = 1 (default)")
}

func TestDrawSkipsCollapsedAreas(t *testing.T) {
	provider, db := setupRoot(t)
	s, err := Open(provider, db, "1-1")
	require.NoError(t, err)

	r := uitest.New()
	r.Collapsed["Course 1-1/Main##0"] = true
	s.Draw(r)

	assert.Equal(t, []string{"Grassland Start (World1)"}, r.Texts)
}

const twinCourse = `name: Twins
areas:
  - name: Main
    actors:
      - name: Goomba
        component: Enemy
        params:
          Speed: 2
      - name: Goomba
        component: Enemy
        params:
          Speed: 5
`

func TestDrawGivesDuplicateActorsDistinctIDs(t *testing.T) {
	provider, db := setupRoot(t)
	path := romfs.CoursePath(provider.Root(), "World1", "1-2")
	require.NoError(t, os.WriteFile(path, []byte(twinCourse), 0o644))

	s, err := Open(provider, db, "1-2")
	require.NoError(t, err)

	r := uitest.New()
	r.Collapsed["Course 1-2/Main##0/Goomba [Enemy]##0"] = true
	s.Draw(r)

	assert.Equal(t, []string{
		"Course 1-2/Main##0",
		"Course 1-2/Main##0/Goomba [Enemy]##0",
		"Course 1-2/Main##0/Goomba [Enemy]##1",
	}, r.Drawn)
	assert.Contains(t, r.Texts, "Speed = 5")
	assert.NotContains(t, r.Texts, "Speed = 2")
}
