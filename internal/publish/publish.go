// Package publish implements the repository publish pipeline: ensure the
// local repository exists and is linked to a remote, stage everything,
// commit with a timestamped message, and push with upstream tracking.
package publish

import (
	"context"
	"fmt"
	"time"

	pderrors "github.com/manulapulga/pump-design/internal/errors"
	"github.com/manulapulga/pump-design/internal/git"
	"github.com/manulapulga/pump-design/internal/output"
)

// Options configures a publish run. RemoteURL is only required when the
// remote is not registered yet.
type Options struct {
	RemoteName string
	RemoteURL  string
	Branch     string
	Label      string

	// AllowEmpty forces a commit even when staging produced no changes.
	AllowEmpty bool
}

// Result describes what a publish run did.
type Result struct {
	Initialized    bool
	RemoteAdded    bool
	Committed      bool
	CommitMessage  string
	PushedBranch   string
	NothingToSend  bool
}

// Publisher runs the publish pipeline against a git runner.
type Publisher struct {
	Runner git.Runner
	Splog  *output.Splog

	// Now is the clock used for commit messages. Tests override it.
	Now func() time.Time
}

// NewPublisher creates a Publisher using the real git runner.
func NewPublisher(splog *output.Splog) *Publisher {
	return &Publisher{
		Runner: git.NewRealRunner(),
		Splog:  splog,
		Now:    time.Now,
	}
}

// Run executes the pipeline. Each step surfaces its error; a failed step
// aborts the run.
func (p *Publisher) Run(ctx context.Context, opts Options) (*Result, error) {
	result := &Result{}

	if err := p.ensureRepository(ctx, opts, result); err != nil {
		return nil, err
	}

	if err := p.Runner.StageAll(ctx); err != nil {
		return nil, fmt.Errorf("failed to stage changes: %w", err)
	}
	p.Splog.Debug("staged all working directory changes")

	staged, err := p.Runner.HasStagedChanges(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check staged changes: %w", err)
	}

	if !staged && !opts.AllowEmpty {
		result.NothingToSend = true
		p.Splog.Info("Nothing to publish: working directory matches the last commit.")
		return result, nil
	}

	message := git.TimestampedMessage(opts.Label, p.Now())
	if err := p.Runner.Commit(ctx, message, opts.AllowEmpty && !staged); err != nil {
		return nil, fmt.Errorf("failed to commit: %w", err)
	}
	result.Committed = true
	result.CommitMessage = message
	p.Splog.Debug("committed: %s", message)

	branch := opts.Branch
	if branch == "" {
		branch, err = p.Runner.GetCurrentBranch()
		if err != nil {
			return nil, fmt.Errorf("failed to determine current branch: %w", err)
		}
	}

	if err := p.Runner.PushUpstream(ctx, opts.RemoteName, branch); err != nil {
		return nil, err
	}
	result.PushedBranch = branch
	p.Splog.Debug("pushed %s to %s", branch, opts.RemoteName)

	return result, nil
}

// ensureRepository performs the repository presence check: initialize and
// register the remote when metadata is absent, otherwise leave the existing
// repository untouched apart from registering a missing remote.
func (p *Publisher) ensureRepository(ctx context.Context, opts Options, result *Result) error {
	if !p.Runner.IsRepository() {
		if opts.RemoteURL == "" {
			return fmt.Errorf("cannot initialize repository: %w", pderrors.ErrNoRemoteConfigured)
		}
		if err := p.Runner.InitRepository(ctx); err != nil {
			return fmt.Errorf("failed to initialize repository: %w", err)
		}
		result.Initialized = true
		p.Splog.Info("Initialized a new repository.")
	}

	hasRemote, err := p.Runner.HasRemote(opts.RemoteName)
	if err != nil {
		return err
	}

	if !hasRemote {
		if opts.RemoteURL == "" {
			return fmt.Errorf("remote %s is not registered: %w", opts.RemoteName, pderrors.ErrNoRemoteConfigured)
		}
		if err := p.Runner.AddRemote(ctx, opts.RemoteName, opts.RemoteURL); err != nil {
			return fmt.Errorf("failed to register remote %s: %w", opts.RemoteName, err)
		}
		result.RemoteAdded = true
		p.Splog.Info("Registered remote %s -> %s", opts.RemoteName, opts.RemoteURL)
		return nil
	}

	// Never re-register an existing remote, but flag a URL conflict.
	if opts.RemoteURL != "" {
		currentURL, err := p.Runner.GetRemoteURL(opts.RemoteName)
		if err != nil {
			return err
		}
		if currentURL != opts.RemoteURL {
			return pderrors.NewRemoteMismatchError(opts.RemoteName, opts.RemoteURL, currentURL)
		}
	}

	return nil
}
