// Package git provides a wrapper around git commands and go-git for
// repository operations.
package git

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"strings"
	"time"

	pderrors "github.com/manulapulga/pump-design/internal/errors"
)

// DefaultCommandTimeout is the default timeout for git commands
const DefaultCommandTimeout = 5 * time.Minute

// CommandRunner handles execution of git commands
type CommandRunner struct {
	workingDir string
}

// NewCommandRunner creates a new CommandRunner
func NewCommandRunner(workingDir string) *CommandRunner {
	return &CommandRunner{workingDir: workingDir}
}

// defaultRunner is the global runner used by the package-level functions
var defaultRunner = &CommandRunner{}

// SetWorkingDir sets the working directory for the default git runner.
func SetWorkingDir(dir string) {
	defaultRunner.workingDir = dir
}

// GetWorkingDir returns the current working directory setting for the default runner.
func GetWorkingDir() string {
	return defaultRunner.workingDir
}

// RunGitCommand executes a git command using the default runner and returns
// the output. It uses context.Background() with a default timeout.
func RunGitCommand(args ...string) (string, error) {
	return defaultRunner.Run(context.Background(), args...)
}

// RunGitCommandInDir executes a git command in a specific directory and returns the output.
func RunGitCommandInDir(dir string, args ...string) (string, error) {
	runner := &CommandRunner{workingDir: dir}
	return runner.Run(context.Background(), args...)
}

// RunGitCommandWithContext executes a git command with the given context using the default runner.
func RunGitCommandWithContext(ctx context.Context, args ...string) (string, error) {
	return defaultRunner.Run(ctx, args...)
}

// Run executes a git command with the given context and returns the output
func (r *CommandRunner) Run(ctx context.Context, args ...string) (string, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	// If no timeout/deadline is set in the context, add the default one
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, DefaultCommandTimeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, "git", args...)
	if r.workingDir != "" {
		cmd.Dir = r.workingDir
	}
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return "", pderrors.NewGitCommandError("git", args, stdout.String(), stderr.String(), ctx.Err())
		}
		return "", pderrors.NewGitCommandError("git", args, stdout.String(), stderr.String(), err)
	}
	return strings.TrimSpace(stdout.String()), nil
}

// RunGitCommandLines executes a git command using the default runner and returns output as lines
func RunGitCommandLines(args ...string) ([]string, error) {
	output, err := RunGitCommand(args...)
	if err != nil {
		return nil, err
	}
	if output == "" {
		return []string{}, nil
	}
	return strings.Split(output, "\n"), nil
}

// GitOnPath reports whether a git binary is available on the execution path.
func GitOnPath() bool {
	_, err := exec.LookPath("git")
	return err == nil
}

// Runner defines the interface for git operations used by the publish
// pipeline. This allows the pipeline to be used with both real git and mock
// implementations.
type Runner interface {
	// Repository
	IsRepository() bool
	InitRepository(ctx context.Context) error
	GetCurrentBranch() (string, error)

	// Remotes
	HasRemote(name string) (bool, error)
	GetRemoteURL(name string) (string, error)
	AddRemote(ctx context.Context, name, url string) error

	// Staging and committing
	StageAll(ctx context.Context) error
	HasStagedChanges(ctx context.Context) (bool, error)
	Commit(ctx context.Context, message string, allowEmpty bool) error

	// Push
	PushUpstream(ctx context.Context, remote, branch string) error

	// Runner state
	SetWorkingDir(dir string)
	GetWorkingDir() string
}

// NewRealRunner returns a standard implementation of Runner that calls
// the package-level git functions.
func NewRealRunner() Runner {
	return &realRunner{}
}

// NewRealRunnerWithDir returns a standard implementation of Runner that calls
// the package-level git functions in a specific directory.
func NewRealRunnerWithDir(dir string) Runner {
	return &realRunner{workingDir: dir}
}

// realRunner implements Runner by calling the actual git package functions
type realRunner struct {
	workingDir string
}

func (r *realRunner) SetWorkingDir(dir string) {
	r.workingDir = dir
}

func (r *realRunner) GetWorkingDir() string {
	return r.workingDir
}

func (r *realRunner) dir() string {
	if r.workingDir != "" {
		return r.workingDir
	}
	wd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return wd
}

func (r *realRunner) run(ctx context.Context, args ...string) (string, error) {
	if r.workingDir != "" {
		runner := &CommandRunner{workingDir: r.workingDir}
		return runner.Run(ctx, args...)
	}
	return RunGitCommandWithContext(ctx, args...)
}

func (r *realRunner) IsRepository() bool {
	return IsRepository(r.dir())
}

func (r *realRunner) InitRepository(ctx context.Context) error {
	_, err := r.run(ctx, "init")
	return err
}

func (r *realRunner) GetCurrentBranch() (string, error) {
	return RunGitCommandInDir(r.dir(), "branch", "--show-current")
}

func (r *realRunner) HasRemote(name string) (bool, error) {
	return HasRemote(r.dir(), name)
}

func (r *realRunner) GetRemoteURL(name string) (string, error) {
	return GetRemoteURL(r.dir(), name)
}

func (r *realRunner) AddRemote(ctx context.Context, name, url string) error {
	_, err := r.run(ctx, "remote", "add", name, url)
	return err
}

func (r *realRunner) StageAll(ctx context.Context) error {
	_, err := r.run(ctx, "add", "-A")
	return err
}

func (r *realRunner) HasStagedChanges(ctx context.Context) (bool, error) {
	output, err := r.run(ctx, "status", "--porcelain")
	if err != nil {
		return false, err
	}
	for _, line := range strings.Split(output, "\n") {
		// Anything but "??" or " X" in the first column is staged.
		if len(line) > 0 && line[0] != '?' && line[0] != ' ' {
			return true, nil
		}
	}
	return false, nil
}

func (r *realRunner) Commit(ctx context.Context, message string, allowEmpty bool) error {
	args := []string{"commit", "-m", message}
	if allowEmpty {
		args = append(args, "--allow-empty")
	}
	_, err := r.run(ctx, args...)
	return err
}

func (r *realRunner) PushUpstream(ctx context.Context, remote, branch string) error {
	return PushUpstream(ctx, r.dir(), remote, branch)
}
