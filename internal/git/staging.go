package git

import (
	"fmt"
	"strings"
)

// StageAll stages all changes including untracked files and deletions
func StageAll() error {
	_, err := RunGitCommand("add", "-A")
	if err != nil {
		return fmt.Errorf("failed to stage all changes: %w", err)
	}
	return nil
}

// HasStagedChanges checks if there are staged changes.
// It works in repositories with no commits yet, where diff --cached
// against HEAD is not possible.
func HasStagedChanges() (bool, error) {
	output, err := RunGitCommand("status", "--porcelain")
	if err != nil {
		return false, fmt.Errorf("failed to check staged changes: %w", err)
	}
	for _, line := range strings.Split(output, "\n") {
		if len(line) > 0 && line[0] != '?' && line[0] != ' ' {
			return true, nil
		}
	}
	return false, nil
}

// HasUnstagedChanges checks if there are unstaged changes to tracked files
func HasUnstagedChanges() (bool, error) {
	output, err := RunGitCommand("diff", "--name-only")
	if err != nil {
		return false, fmt.Errorf("failed to check unstaged changes: %w", err)
	}
	return strings.TrimSpace(output) != "", nil
}

// HasUntrackedFiles checks if there are untracked files
func HasUntrackedFiles() (bool, error) {
	output, err := RunGitCommand("ls-files", "--others", "--exclude-standard")
	if err != nil {
		return false, fmt.Errorf("failed to check untracked files: %w", err)
	}
	return strings.TrimSpace(output) != "", nil
}
