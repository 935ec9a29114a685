package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/manulapulga/pump-design/internal/config"
	"github.com/manulapulga/pump-design/internal/output"
	"github.com/manulapulga/pump-design/internal/publish"
	"github.com/manulapulga/pump-design/internal/tui"
)

// newPublishCmd creates the publish command
func newPublishCmd() *cobra.Command {
	var (
		remoteURL  string
		remoteName string
		branch     string
		label      string
		allowEmpty bool
		noPause    bool
	)

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Stage, commit and push the working directory in one step",
		Long: `Publish runs the repository pipeline: make sure a repository exists and is
linked to the remote, stage every change, commit with a timestamped message,
and push the branch with upstream tracking.

Remote URL and branch come from flags or from the project config file
(` + config.FileName + `); flags win. A repository is only initialized when no
repository metadata exists yet, and an existing remote is never
re-registered.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			wd, err := os.Getwd()
			if err != nil {
				return err
			}

			cfg, err := config.Load(wd)
			if err != nil {
				return err
			}

			opts := publish.Options{
				RemoteName: cfg.RemoteName,
				RemoteURL:  cfg.RemoteURL,
				Branch:     cfg.Branch,
				Label:      cfg.Label,
				AllowEmpty: allowEmpty,
			}
			if remoteName != "" {
				opts.RemoteName = remoteName
			}
			if remoteURL != "" {
				opts.RemoteURL = remoteURL
			}
			if branch != "" {
				opts.Branch = branch
			}
			if label != "" {
				opts.Label = label
			}

			splog := output.NewSplog()
			publisher := publish.NewPublisher(splog)

			result, err := publisher.Run(cmd.Context(), opts)
			if err != nil {
				return err
			}

			if result.NothingToSend {
				return nil
			}

			splog.Info("✓ Changes pushed to %s (%s).", opts.RemoteName, result.PushedBranch)
			splog.Info("   %s", result.CommitMessage)

			if !noPause && tui.IsInteractive() {
				if err := tui.Pause("Publish complete."); err != nil {
					splog.Debug("pause skipped: %v", err)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&remoteURL, "remote-url", "", "remote URL to register when the remote is missing")
	cmd.Flags().StringVar(&remoteName, "remote", "", "remote name (default from config, then origin)")
	cmd.Flags().StringVarP(&branch, "branch", "b", "", "branch to push (default from config, then the current branch)")
	cmd.Flags().StringVar(&label, "label", "", "commit message label (default from config)")
	cmd.Flags().BoolVar(&allowEmpty, "allow-empty", false, "commit even when staging produced no changes")
	cmd.Flags().BoolVar(&noPause, "no-pause", false, "do not wait for Enter after publishing")

	return cmd
}
