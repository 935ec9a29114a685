package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/manulapulga/pump-design/internal/config"
	pderrors "github.com/manulapulga/pump-design/internal/errors"
	"github.com/manulapulga/pump-design/internal/git"
	"github.com/manulapulga/pump-design/internal/github"
	"github.com/manulapulga/pump-design/internal/output"
)

// newDoctorCmd creates the doctor command
func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check the environment and the publish setup",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDoctor(cmd.Context())
		},
	}
}

// runDoctor runs the diagnostic checks and fails when any check errors.
func runDoctor(ctx context.Context) error {
	splog := output.NewSplog()
	splog.Info("Running pumpdesign doctor...")
	splog.Newline()

	var warnings []string
	var failures []string

	splog.Info("Environment:")
	if git.GitOnPath() {
		splog.Info("  ✓ git binary found on PATH")
	} else {
		splog.Error("  git binary not found on PATH")
		failures = append(failures, "git binary not found on PATH")
	}

	wd, err := os.Getwd()
	if err != nil {
		return err
	}

	cfg, err := config.Load(wd)
	if err != nil {
		return err
	}

	splog.Newline()
	splog.Info("Repository:")
	warnings, failures = checkRepository(splog, wd, cfg, warnings, failures)

	splog.Newline()
	splog.Info("GitHub:")
	warnings = checkGitHub(ctx, splog, wd, cfg, warnings)

	splog.Newline()
	switch {
	case len(failures) > 0:
		splog.Warn("Doctor found %d error(s) and %d warning(s).", len(failures), len(warnings))
		return fmt.Errorf("doctor found %d error(s)", len(failures))
	case len(warnings) > 0:
		splog.Info("Doctor found %d warning(s). Your publish setup is mostly healthy.", len(warnings))
		for _, warning := range warnings {
			splog.Warn("  %s", warning)
		}
	default:
		splog.Info("✅ All checks passed. Your publish setup is healthy.")
	}
	return nil
}

func checkRepository(splog *output.Splog, wd string, cfg *config.ProjectConfig, warnings, failures []string) ([]string, []string) {
	if !git.IsRepository(wd) {
		splog.Warn("  no repository metadata yet; publish will initialize one")
		warnings = append(warnings, "no repository metadata yet")
		return warnings, failures
	}
	splog.Info("  ✓ repository metadata present")

	url, err := git.GetRemoteURL(wd, cfg.RemoteName)
	switch {
	case errors.Is(err, pderrors.ErrNoRemoteConfigured):
		if cfg.RemoteURL == "" {
			splog.Error("  remote %s is not registered and no remote URL is configured", cfg.RemoteName)
			failures = append(failures, "no remote registered or configured")
		} else {
			splog.Warn("  remote %s is not registered yet; publish will add it", cfg.RemoteName)
			warnings = append(warnings, "remote not registered yet")
		}
	case err != nil:
		splog.Error("  failed to inspect remote %s: %v", cfg.RemoteName, err)
		failures = append(failures, "failed to inspect remote")
	case cfg.RemoteURL != "" && url != cfg.RemoteURL:
		splog.Error("  remote %s points at %s, config says %s", cfg.RemoteName, url, cfg.RemoteURL)
		failures = append(failures, "remote url mismatch")
	default:
		splog.Info("  ✓ remote %s -> %s", cfg.RemoteName, url)
	}

	return warnings, failures
}

func checkGitHub(ctx context.Context, splog *output.Splog, wd string, cfg *config.ProjectConfig, warnings []string) []string {
	remoteURL := cfg.RemoteURL
	if remoteURL == "" && git.IsRepository(wd) {
		if url, err := git.GetRemoteURL(wd, cfg.RemoteName); err == nil {
			remoteURL = url
		}
	}

	if remoteURL == "" || !strings.Contains(remoteURL, "github.") {
		splog.Info("  - skipped (remote is not a GitHub URL)")
		return warnings
	}

	if _, err := github.GetToken(); err != nil {
		splog.Warn("  GITHUB_TOKEN not set; cannot verify the remote repository exists")
		return append(warnings, "GITHUB_TOKEN not set")
	}

	exists, err := github.RepositoryExists(ctx, remoteURL)
	switch {
	case err != nil:
		splog.Warn("  could not verify remote repository: %v", err)
		warnings = append(warnings, "could not verify remote repository")
	case !exists:
		splog.Warn("  remote repository does not exist yet; the first push will fail until it is created")
		warnings = append(warnings, "remote repository does not exist")
	default:
		splog.Info("  ✓ remote repository exists")
	}
	return warnings
}
