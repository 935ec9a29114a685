// Package errors provides sentinel errors and custom error types for the
// pumpdesign application. Use errors.Is() and errors.As() to check for
// specific error types.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	// ErrNoRemoteConfigured indicates that no remote URL is configured or registered
	ErrNoRemoteConfigured = errors.New("no remote configured")

	// ErrRemoteMismatch indicates that the registered remote URL differs from the configured one
	ErrRemoteMismatch = errors.New("remote url mismatch")

	// ErrYieldExceeded indicates that the required flow exceeds the borewell yield
	ErrYieldExceeded = errors.New("required flow exceeds borewell yield")
)

// RemoteMismatchError represents a remote whose registered URL differs from
// the configured one.
type RemoteMismatchError struct {
	Remote     string
	WantURL    string
	CurrentURL string
}

func (e *RemoteMismatchError) Error() string {
	return fmt.Sprintf("remote %s points at %s, expected %s", e.Remote, e.CurrentURL, e.WantURL)
}

// Is returns true if the target error is ErrRemoteMismatch
func (e *RemoteMismatchError) Is(target error) bool {
	return target == ErrRemoteMismatch
}

// NewRemoteMismatchError creates a new RemoteMismatchError
func NewRemoteMismatchError(remote, wantURL, currentURL string) *RemoteMismatchError {
	return &RemoteMismatchError{Remote: remote, WantURL: wantURL, CurrentURL: currentURL}
}

// GitCommandError represents an error from a git command execution
type GitCommandError struct {
	Command string
	Args    []string
	Stdout  string
	Stderr  string
	Err     error
}

func (e *GitCommandError) Error() string {
	msg := fmt.Sprintf("git command failed: %s", e.Command)
	if len(e.Args) > 0 {
		msg += fmt.Sprintf(" %v", e.Args)
	}
	if e.Stderr != "" {
		msg += fmt.Sprintf("\nstderr: %s", e.Stderr)
	}
	if e.Stdout != "" {
		msg += fmt.Sprintf("\nstdout: %s", e.Stdout)
	}
	if e.Err != nil {
		msg += fmt.Sprintf("\n%v", e.Err)
	}
	return msg
}

func (e *GitCommandError) Unwrap() error {
	return e.Err
}

// NewGitCommandError creates a new GitCommandError
func NewGitCommandError(command string, args []string, stdout, stderr string, err error) *GitCommandError {
	return &GitCommandError{
		Command: command,
		Args:    args,
		Stdout:  stdout,
		Stderr:  stderr,
		Err:     err,
	}
}
