package git_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/manulapulga/pump-design/internal/git"
	"github.com/manulapulga/pump-design/testhelpers"
)

func TestIsRepository(t *testing.T) {
	t.Run("true inside a repository", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		require.True(t, git.IsRepository(scene.Dir))
	})

	t.Run("true in a subdirectory of a repository", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)

		subDir := filepath.Join(scene.Dir, "docs")
		require.NoError(t, os.MkdirAll(subDir, 0750))
		require.True(t, git.IsRepository(subDir))
	})

	t.Run("false without repository metadata", func(t *testing.T) {
		scene := testhelpers.NewEmptyScene(t, nil)
		require.False(t, git.IsRepository(scene.Dir))
	})
}

func TestGetRepoRootFrom(t *testing.T) {
	scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)

	subDir := filepath.Join(scene.Dir, "nested", "deep")
	require.NoError(t, os.MkdirAll(subDir, 0750))

	root, err := git.GetRepoRootFrom(subDir)
	require.NoError(t, err)

	// Temp dirs may be behind symlinks on some systems; compare resolved paths.
	wantRoot, err := filepath.EvalSymlinks(scene.Dir)
	require.NoError(t, err)
	gotRoot, err := filepath.EvalSymlinks(root)
	require.NoError(t, err)
	require.Equal(t, wantRoot, gotRoot)
}
