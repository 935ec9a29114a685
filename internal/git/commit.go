package git

import (
	"fmt"
	"time"
)

// TimestampLayout is the layout used for publish commit messages.
// Second granularity, so messages from runs more than one second
// apart always differ.
const TimestampLayout = "2006-01-02 15:04:05"

// CommitOptions contains options for creating a commit
type CommitOptions struct {
	Message    string
	AllowEmpty bool
}

// Commit creates a commit with the given message
func Commit(message string) error {
	return CommitWithOptions(CommitOptions{Message: message})
}

// CommitWithOptions creates a commit with the given options
func CommitWithOptions(opts CommitOptions) error {
	args := []string{"commit", "-m", opts.Message}
	if opts.AllowEmpty {
		args = append(args, "--allow-empty")
	}

	_, err := RunGitCommand(args...)
	if err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}

// TimestampedMessage composes a publish commit message from a label and
// the given time.
func TimestampedMessage(label string, now time.Time) string {
	return fmt.Sprintf("%s: %s", label, now.Format(TimestampLayout))
}

// GetLastCommitMessage returns the subject of the most recent commit
func GetLastCommitMessage() (string, error) {
	output, err := RunGitCommand("log", "-1", "--format=%s")
	if err != nil {
		return "", fmt.Errorf("failed to read last commit message: %w", err)
	}
	return output, nil
}
