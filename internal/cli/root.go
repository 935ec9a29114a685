// Package cli wires the pumpdesign command tree.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "pumpdesign",
		Short: "Pumpdesign sizes submersible pumps and publishes the project repository",
		Long: `Pumpdesign sizes submersible pumps for water supply systems and keeps the
project repository published to its remote.

The sizing commands compute required flow, total dynamic head, motor power
and stage count, check the pumping line, and match a pump from the catalog
workbook. The publish command stages, commits and pushes the working
directory in one step.`,
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.AddCommand(newPublishCmd())
	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newCalcCmd())
	rootCmd.AddCommand(newSelectCmd())
	rootCmd.AddCommand(newReportCmd())
	rootCmd.AddCommand(newDoctorCmd())
	rootCmd.AddCommand(newVersionCmd(version, commit, date))

	return rootCmd
}

// newVersionCmd creates the version command
func newVersionCmd(version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("pumpdesign %s (commit %s, built %s)\n", version, commit, date)
		},
	}
}
