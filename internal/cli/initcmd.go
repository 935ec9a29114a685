package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/manulapulga/pump-design/internal/config"
	"github.com/manulapulga/pump-design/internal/output"
	"github.com/manulapulga/pump-design/internal/tui"
)

// newInitCmd creates the init command
func newInitCmd() *cobra.Command {
	var (
		remoteURL  string
		remoteName string
		branch     string
		label      string
		catalog    string
		force      bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the project config file",
		Long: `Init writes ` + config.FileName + ` with the remote URL, branch and commit
label used by publish. Values come from flags; missing ones are prompted
for in an interactive terminal.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			wd, err := os.Getwd()
			if err != nil {
				return err
			}

			if config.Exists(wd) && !force {
				return fmt.Errorf("%s already exists, use --force to overwrite", config.FileName)
			}

			cfg, err := config.Load(wd)
			if err != nil {
				return err
			}

			if remoteName != "" {
				cfg.RemoteName = remoteName
			}
			if branch != "" {
				cfg.Branch = branch
			}
			if label != "" {
				cfg.Label = label
			}
			if catalog != "" {
				cfg.CatalogPath = catalog
			}

			switch {
			case remoteURL != "":
				cfg.RemoteURL = remoteURL
			case tui.IsInteractive():
				answer, err := tui.PromptInput("Remote URL for publish", "git@github.com:owner/repo.git", cfg.RemoteURL)
				if err != nil {
					return err
				}
				cfg.RemoteURL = answer

				branchAnswer, err := tui.AskInput("Branch to push", cfg.Branch)
				if err != nil {
					return err
				}
				cfg.Branch = branchAnswer
			default:
				return fmt.Errorf("--remote-url is required when not running interactively")
			}

			if err := cfg.Save(); err != nil {
				return err
			}

			splog := output.NewSplog()
			splog.Info("Wrote %s (remote %s -> %s, branch %s).", config.FileName, cfg.RemoteName, cfg.RemoteURL, cfg.Branch)
			return nil
		},
	}

	cmd.Flags().StringVar(&remoteURL, "remote-url", "", "remote URL used by publish")
	cmd.Flags().StringVar(&remoteName, "remote", "", "remote name (default origin)")
	cmd.Flags().StringVarP(&branch, "branch", "b", "", "branch to push (default main)")
	cmd.Flags().StringVar(&label, "label", "", "commit message label (default \""+config.DefaultLabel+"\")")
	cmd.Flags().StringVar(&catalog, "catalog", "", "path to the pump catalog workbook")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing config file")

	return cmd
}
