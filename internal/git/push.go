package git

import (
	"context"
	"fmt"
)

// PushUpstream pushes a branch to the remote with -u, creating the remote
// branch and the upstream tracking link on first push. If branch is empty
// the current branch is pushed.
func PushUpstream(ctx context.Context, dir, remote, branch string) error {
	args := []string{"push", "-u", remote}
	if branch != "" {
		args = append(args, branch)
	}

	runner := &CommandRunner{workingDir: dir}
	if _, err := runner.Run(ctx, args...); err != nil {
		if branch == "" {
			return fmt.Errorf("failed to push current branch to %s: %w", remote, err)
		}
		return fmt.Errorf("failed to push branch %s to %s: %w", branch, remote, err)
	}
	return nil
}

// GetUpstream returns the upstream tracking ref of the current branch,
// or an empty string if none is set.
func GetUpstream(dir string) (string, error) {
	output, err := RunGitCommandInDir(dir, "rev-parse", "--abbrev-ref", "--symbolic-full-name", "@{upstream}")
	if err != nil {
		// No upstream configured is not an error for callers.
		return "", nil
	}
	return output, nil
}
