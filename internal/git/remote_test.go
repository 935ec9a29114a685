package git_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	pderrors "github.com/manulapulga/pump-design/internal/errors"
	"github.com/manulapulga/pump-design/internal/git"
	"github.com/manulapulga/pump-design/testhelpers"
)

func TestHasRemote(t *testing.T) {
	t.Run("false without a registered remote", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)

		has, err := git.HasRemote(scene.Dir, "origin")
		require.NoError(t, err)
		require.False(t, has)
	})

	t.Run("true after registering", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)

		_, err := scene.Repo.CreateBareRemote("origin")
		require.NoError(t, err)

		has, err := git.HasRemote(scene.Dir, "origin")
		require.NoError(t, err)
		require.True(t, has)

		has, err = git.HasRemote(scene.Dir, "upstream")
		require.NoError(t, err)
		require.False(t, has)
	})
}

func TestGetRemoteURL(t *testing.T) {
	t.Run("returns the registered URL", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)

		bareDir, err := scene.Repo.CreateBareRemote("origin")
		require.NoError(t, err)

		url, err := git.GetRemoteURL(scene.Dir, "origin")
		require.NoError(t, err)
		require.Equal(t, bareDir, url)
	})

	t.Run("missing remote yields ErrNoRemoteConfigured", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)

		_, err := git.GetRemoteURL(scene.Dir, "origin")
		require.ErrorIs(t, err, pderrors.ErrNoRemoteConfigured)
	})
}

func TestListRemotes(t *testing.T) {
	scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)

	names, err := git.ListRemotes(scene.Dir)
	require.NoError(t, err)
	require.Empty(t, names)

	_, err = scene.Repo.CreateBareRemote("origin")
	require.NoError(t, err)

	names, err = git.ListRemotes(scene.Dir)
	require.NoError(t, err)
	require.Equal(t, []string{"origin"}, names)
}
