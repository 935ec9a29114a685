package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/manulapulga/pump-design/internal/catalog"
	"github.com/manulapulga/pump-design/internal/config"
	"github.com/manulapulga/pump-design/internal/hydraulics"
	"github.com/manulapulga/pump-design/internal/output"
)

// defaultCatalogPath is the workbook name used when neither the flag nor
// the config file names one.
const defaultCatalogPath = "Pumps.xlsx"

// newSelectCmd creates the select command
func newSelectCmd() *cobra.Command {
	flags := &sizingFlags{}
	var catalogPath string

	cmd := &cobra.Command{
		Use:   "select",
		Short: "Compute system requirements and pick a pump from the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := flags.toInput()
			if err != nil {
				return err
			}

			sizing, err := hydraulics.Compute(input)
			if err != nil {
				return err
			}

			pumps, err := catalog.Load(resolveCatalogPath(catalogPath))
			if err != nil {
				return err
			}

			selection, err := pumps.Select(sizing.PowerHPRounded, sizing.Stages, sizing.TDH)
			if err != nil {
				return err
			}

			splog := output.NewSplog()
			printSizing(splog, input, sizing)
			printSelection(splog, sizing, selection)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&catalogPath, "catalog", "", "path to the pump catalog workbook (default "+defaultCatalogPath+")")
	return cmd
}

// resolveCatalogPath picks the catalog workbook path: flag, then config
// file, then the default name in the working directory.
func resolveCatalogPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if wd, err := os.Getwd(); err == nil {
		if cfg, err := config.Load(wd); err == nil && cfg.CatalogPath != "" {
			return cfg.CatalogPath
		}
	}
	return defaultCatalogPath
}

// printSelection prints the recommended pump and the match-quality verdict.
func printSelection(splog *output.Splog, sizing *hydraulics.Sizing, selection catalog.Selection) {
	pump := selection.Pump

	splog.Info("%s", output.Heading("Recommended Pump"))
	splog.Info("  Model:      %s", output.Value(pump.Model))
	splog.Info("  Phase:      %s", pump.Phase)
	splog.Info("  Power:      %g HP", pump.HP)
	splog.Info("  Stages:     %d", pump.Stages)
	splog.Info("  Head Range: %g-%g m (your TDH: %.1f m)", pump.MinHead, pump.MaxHead, sizing.TDH)

	if selection.Compatible(sizing.TDH) {
		splog.Info("  Compatibility: %s", output.Good("within range"))
	} else {
		splog.Info("  Compatibility: %s", output.Caution("outside optimal range"))
	}
	splog.Newline()

	switch selection.Kind {
	case catalog.MatchExact:
		splog.Info("%s", output.Good("Found a pump matching the exact HP and stage requirements."))
	case catalog.MatchHigherHP:
		splog.Warn("Using a higher HP pump (%g HP) that meets the stage requirements.", pump.HP)
	case catalog.MatchTDH:
		splog.Warn("Selected the pump on TDH range with a different stage count.")
	case catalog.MatchLastResort:
		splog.Warn("No suitable pump found; showing the highest capacity option.")
	}
}
