package romfs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCourse(t *testing.T, root, world, id string) {
	t.Helper()
	path := CoursePath(root, world, id)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("name: "+id+"\n"), 0o644))
}

func TestProviderStartsUnset(t *testing.T) {
	p := NewProvider()
	assert.Empty(t, p.Root())

	_, err := p.CourseEntries()
	assert.ErrorIs(t, err, ErrRootNotSet)
}

func TestSetRootRejectsMissingAndFiles(t *testing.T) {
	p := NewProvider()
	dir := t.TempDir()

	assert.Error(t, p.SetRoot(filepath.Join(dir, "missing")))

	file := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(file, nil, 0o644))
	assert.ErrorIs(t, p.SetRoot(file), ErrRootNotDirectory)

	assert.Empty(t, p.Root())
}

func TestCourseEntriesOrder(t *testing.T) {
	root := t.TempDir()
	writeCourse(t, root, "World2", "2-1")
	writeCourse(t, root, "World1", "1-2")
	writeCourse(t, root, "World1", "1-1")
	require.NoError(t, os.WriteFile(filepath.Join(root, CourseDir, "World1", "notes.txt"), nil, 0o644))

	p := NewProvider()
	require.NoError(t, p.SetRoot(root))

	worlds, err := p.CourseEntries()
	require.NoError(t, err)
	assert.Equal(t, []World{
		{Name: "World1", Courses: []string{"1-1", "1-2"}},
		{Name: "World2", Courses: []string{"2-1"}},
	}, worlds)
}

func TestCourseEntriesReadsFreshEachCall(t *testing.T) {
	root := t.TempDir()
	writeCourse(t, root, "World1", "1-1")

	p := NewProvider()
	require.NoError(t, p.SetRoot(root))

	worlds, err := p.CourseEntries()
	require.NoError(t, err)
	require.Len(t, worlds[0].Courses, 1)

	writeCourse(t, root, "World1", "1-2")
	worlds, err = p.CourseEntries()
	require.NoError(t, err)
	assert.Len(t, worlds[0].Courses, 2)
}

func TestLocate(t *testing.T) {
	root := t.TempDir()
	writeCourse(t, root, "World3", "3-4")

	p := NewProvider()
	require.NoError(t, p.SetRoot(root))

	world, err := p.Locate("3-4")
	require.NoError(t, err)
	assert.Equal(t, "World3", world)

	_, err = p.Locate("9-9")
	assert.ErrorIs(t, err, ErrCourseNotFound)
}
