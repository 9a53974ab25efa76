package build_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/relbranch/internal/build"
)

func TestNewStagingAreaCreatesDistinctDirectories(t *testing.T) {
	stagingArea, stagingError := build.NewStagingArea()
	require.NoError(t, stagingError)
	t.Cleanup(func() { _ = stagingArea.Remove() })

	require.DirExists(t, stagingArea.RootPath())
	require.DirExists(t, stagingArea.WorktreeCopyPath())
	require.DirExists(t, stagingArea.ClonePath())
	require.NotEqual(t, stagingArea.WorktreeCopyPath(), stagingArea.ClonePath())
	require.Equal(t, stagingArea.RootPath(), filepath.Dir(stagingArea.WorktreeCopyPath()))
	require.Equal(t, stagingArea.RootPath(), filepath.Dir(stagingArea.ClonePath()))
}

func TestNewStagingAreaUsesNamespacedRoots(t *testing.T) {
	firstArea, firstError := build.NewStagingArea()
	require.NoError(t, firstError)
	t.Cleanup(func() { _ = firstArea.Remove() })

	secondArea, secondError := build.NewStagingArea()
	require.NoError(t, secondError)
	t.Cleanup(func() { _ = secondArea.Remove() })

	require.NotEqual(t, firstArea.RootPath(), secondArea.RootPath())
	require.Contains(t, filepath.Base(firstArea.RootPath()), "relbranch-update-")
}

func TestStagingAreaRemoveDeletesEverything(t *testing.T) {
	stagingArea, stagingError := build.NewStagingArea()
	require.NoError(t, stagingError)

	markerPath := filepath.Join(stagingArea.ClonePath(), "marker.txt")
	require.NoError(t, os.WriteFile(markerPath, []byte("built"), 0o644))

	require.NoError(t, stagingArea.Remove())

	_, statError := os.Stat(stagingArea.RootPath())
	require.True(t, os.IsNotExist(statError))
}
