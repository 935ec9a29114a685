package git_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/manulapulga/pump-design/internal/git"
	"github.com/manulapulga/pump-design/testhelpers"
)

func TestStageAll(t *testing.T) {
	t.Run("stages modifications and untracked files", func(t *testing.T) {
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CreateChangeAndCommit("initial", "init")
		})

		// Modify tracked file (unstaged)
		err := scene.Repo.CreateChange("new content", "init", true)
		require.NoError(t, err)

		// Create untracked file
		err = scene.Repo.CreateChange("untracked", "newfile", true)
		require.NoError(t, err)

		hasStaged, err := git.HasStagedChanges()
		require.NoError(t, err)
		require.False(t, hasStaged)

		err = git.StageAll()
		require.NoError(t, err)

		hasStaged, err = git.HasStagedChanges()
		require.NoError(t, err)
		require.True(t, hasStaged)

		hasUnstaged, err := git.HasUnstagedChanges()
		require.NoError(t, err)
		require.False(t, hasUnstaged)

		hasUntracked, err := git.HasUntrackedFiles()
		require.NoError(t, err)
		require.False(t, hasUntracked)
	})

	t.Run("stages deletions", func(t *testing.T) {
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CreateChangeAndCommit("initial", "doomed")
		})

		err := scene.Repo.RunGitCommand("rm", "--cached", "-q", "doomed_test.txt")
		require.NoError(t, err)

		hasStaged, err := git.HasStagedChanges()
		require.NoError(t, err)
		require.True(t, hasStaged)
	})
}

func TestHasStagedChanges(t *testing.T) {
	t.Run("works in a repository with no commits yet", func(t *testing.T) {
		scene := testhelpers.NewScene(t, nil)

		hasStaged, err := git.HasStagedChanges()
		require.NoError(t, err)
		require.False(t, hasStaged)

		err = scene.Repo.CreateChange("first", "first", true)
		require.NoError(t, err)

		err = git.StageAll()
		require.NoError(t, err)

		hasStaged, err = git.HasStagedChanges()
		require.NoError(t, err)
		require.True(t, hasStaged)
	})
}
