package testhelpers

import (
	"os"
	"testing"
)

// Scene represents a test scene with a temporary directory and Git
// repository. The process working directory is switched into the scene for
// the duration of the test.
type Scene struct {
	Dir  string
	Repo *GitRepo
}

// SceneSetup is a function type for setting up a scene.
type SceneSetup func(*Scene) error

// NewScene creates a new test scene with a temporary directory and Git
// repository. Cleanup is registered with t.Cleanup().
func NewScene(t *testing.T, setup SceneSetup) *Scene {
	t.Helper()
	return newScene(t, setup, true)
}

// NewEmptyScene creates a scene whose directory has no repository metadata.
func NewEmptyScene(t *testing.T, setup SceneSetup) *Scene {
	t.Helper()
	return newScene(t, setup, false)
}

func newScene(t *testing.T, setup SceneSetup, initRepo bool) *Scene {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "pumpdesign-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}

	// Commits must work even in repositories the code under test
	// initializes itself, where no user config has been written yet.
	t.Setenv("GIT_CONFIG_GLOBAL", "/dev/null")
	t.Setenv("GIT_AUTHOR_NAME", "Test User")
	t.Setenv("GIT_AUTHOR_EMAIL", "test@example.com")
	t.Setenv("GIT_COMMITTER_NAME", "Test User")
	t.Setenv("GIT_COMMITTER_EMAIL", "test@example.com")

	oldDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get current directory: %v", err)
	}

	var repo *GitRepo
	if initRepo {
		repo, err = NewGitRepo(tmpDir)
		if err != nil {
			os.RemoveAll(tmpDir)
			t.Fatalf("Failed to create Git repo: %v", err)
		}
	} else {
		repo = NewBareDir(tmpDir)
	}

	scene := &Scene{
		Dir:  tmpDir,
		Repo: repo,
	}

	if err := os.Chdir(tmpDir); err != nil {
		os.RemoveAll(tmpDir)
		t.Fatalf("Failed to change directory: %v", err)
	}

	if setup != nil {
		if err := setup(scene); err != nil {
			os.Chdir(oldDir)
			os.RemoveAll(tmpDir)
			t.Fatalf("Setup failed: %v", err)
		}
	}

	t.Cleanup(func() {
		os.Chdir(oldDir)
		if os.Getenv("DEBUG") == "" {
			os.RemoveAll(tmpDir)
		}
	})

	return scene
}

// BasicSceneSetup is a setup function that creates a scene with a single commit.
func BasicSceneSetup(scene *Scene) error {
	return scene.Repo.CreateChangeAndCommit("1", "1")
}
