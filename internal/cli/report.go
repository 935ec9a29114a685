package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/manulapulga/pump-design/internal/catalog"
	"github.com/manulapulga/pump-design/internal/hydraulics"
	"github.com/manulapulga/pump-design/internal/output"
	"github.com/manulapulga/pump-design/internal/report"
)

// newReportCmd creates the report command
func newReportCmd() *cobra.Command {
	flags := &sizingFlags{}
	var (
		catalogPath string
		outPath     string
		noCatalog   bool
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Write the pump selection report as a PDF",
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

			data := buildReportData(input, sizing)

			if !noCatalog {
				pumps, err := catalog.Load(resolveCatalogPath(catalogPath))
				if err != nil {
					return err
				}
				selection, err := pumps.Select(sizing.PowerHPRounded, sizing.Stages, sizing.TDH)
				if err != nil {
					return err
				}
				data.Recommendations = buildRecommendations(sizing, selection)
			}

			if err := report.Write(data, outPath); err != nil {
				return err
			}

			splog := output.NewSplog()
			splog.Info("Wrote %s.", outPath)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&catalogPath, "catalog", "", "path to the pump catalog workbook (default "+defaultCatalogPath+")")
	cmd.Flags().StringVarP(&outPath, "out", "o", "Pump_Selection_Report.pdf", "output PDF path")
	cmd.Flags().BoolVar(&noCatalog, "no-catalog", false, "skip the catalog lookup and report sizing only")
	return cmd
}

// buildReportData assembles the input and result sections of the report.
func buildReportData(input hydraulics.Input, sizing *hydraulics.Sizing) report.Data {
	data := report.Data{
		Inputs: []report.Entry{
			{Label: "Borewell Yield (LPH)", Value: formatFloat(input.YieldLPH, 0)},
			{Label: "Total Tap Connections", Value: formatInt(input.Taps)},
			{Label: "Daily Water Demand per Tap (Liters)", Value: formatFloat(input.DemandPerTap, 0)},
			{Label: "Hours Available for Pumping", Value: formatFloat(input.PumpingHours, 1)},
			{Label: "Pump Installation Depth (m)", Value: formatFloat(input.InstallationDepth, 1)},
			{Label: "Tank Height from Ground (m)", Value: formatFloat(input.TankHeight, 1)},
			{Label: "Pumping Line Length (m)", Value: formatFloat(input.LineLength, 1)},
			{Label: "Pipe Diameter (mm)", Value: formatFloat(input.PipeDiameterMM, 0)},
			{Label: "Pipe Material", Value: string(input.PipeMaterial)},
			{Label: "Safety Margin (%)", Value: formatFloat(input.SafetyMarginPct, 1)},
			{Label: "Pump Efficiency (%)", Value: formatFloat(input.EfficiencyPct, 1)},
			{Label: "Head per Pump Stage (m)", Value: formatFloat(input.HeadPerStage, 1)},
		},
		Results: []report.Entry{
			{Label: "Total Daily Demand (liters)", Value: formatFloat(sizing.DemandLiters, 0)},
			{Label: "Required Flow Rate (LPH)", Value: formatFloat(sizing.FlowLPH, 0)},
			{Label: "Total Dynamic Head (m)", Value: formatFloat(sizing.TDH, 1)},
			{Label: "Required Power", Value: fmt.Sprintf("%.1f HP -> use %.0f HP", sizing.PowerHP, sizing.PowerHPRounded)},
			{Label: "Number of Stages", Value: formatInt(sizing.Stages)},
			{Label: "Flow Velocity (m/s)", Value: formatFloat(sizing.Velocity, 2)},
		},
	}

	if spec, err := hydraulics.LookupPipe(input.PipeDiameterMM); err == nil {
		status := "good"
		if !spec.VelocityOK(sizing.Velocity) {
			status = "high - consider larger pipe"
		}
		data.Results = append(data.Results, report.Entry{Label: "Pipe Sizing Status", Value: status})
	}

	return data
}

// buildRecommendations assembles the recommendation lines for the report.
func buildRecommendations(sizing *hydraulics.Sizing, selection catalog.Selection) []string {
	pump := selection.Pump
	inRange := "No"
	if selection.Compatible(sizing.TDH) {
		inRange = "Yes"
	}
	return []string{
		fmt.Sprintf("Recommended pump: %s (%g HP, %d stages)", pump.Model, pump.HP, pump.Stages),
		fmt.Sprintf("Head range of pump: %g - %g m", pump.MinHead, pump.MaxHead),
		fmt.Sprintf("TDH falls within range: %s", inRange),
	}
}
