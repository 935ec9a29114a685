package git_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/manulapulga/pump-design/internal/git"
	"github.com/manulapulga/pump-design/testhelpers"
)

func TestPushUpstream(t *testing.T) {
	t.Run("first push creates the remote branch and upstream tracking", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)

		_, err := scene.Repo.CreateBareRemote("origin")
		require.NoError(t, err)

		require.Empty(t, scene.Repo.UpstreamOf("main"))

		err = git.PushUpstream(context.Background(), scene.Dir, "origin", "main")
		require.NoError(t, err)

		require.Equal(t, "origin/main", scene.Repo.UpstreamOf("main"))
	})

	t.Run("push to an unregistered remote surfaces the git error", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)

		err := git.PushUpstream(context.Background(), scene.Dir, "origin", "main")
		require.Error(t, err)
	})

	t.Run("empty branch pushes the current branch", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)

		_, err := scene.Repo.CreateBareRemote("origin")
		require.NoError(t, err)

		err = git.PushUpstream(context.Background(), scene.Dir, "origin", "")
		require.NoError(t, err)

		require.Equal(t, "origin/main", scene.Repo.UpstreamOf("main"))
	})
}

func TestGetUpstream(t *testing.T) {
	scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)

	upstream, err := git.GetUpstream(scene.Dir)
	require.NoError(t, err)
	require.Empty(t, upstream)

	_, err = scene.Repo.CreateBareRemote("origin")
	require.NoError(t, err)
	err = git.PushUpstream(context.Background(), scene.Dir, "origin", "main")
	require.NoError(t, err)

	upstream, err = git.GetUpstream(scene.Dir)
	require.NoError(t, err)
	require.Equal(t, "origin/main", upstream)
}
