package cli

import (
	"github.com/spf13/cobra"

	"github.com/manulapulga/pump-design/internal/hydraulics"
	"github.com/manulapulga/pump-design/internal/output"
)

// newCalcCmd creates the calc command
func newCalcCmd() *cobra.Command {
	flags := &sizingFlags{}

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Compute TDH, motor power and stage count for a system",
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

			splog := output.NewSplog()
			printSizing(splog, input, sizing)
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}

// printSizing prints the computed requirements the way the calc, select and
// report commands share.
func printSizing(splog *output.Splog, input hydraulics.Input, sizing *hydraulics.Sizing) {
	splog.Info("%s", output.Heading("Hydraulic Requirements"))
	splog.Info("  Total Daily Demand:   %s liters", output.Value(formatFloat(sizing.DemandLiters, 0)))
	splog.Info("  Required Flow Rate:   %s LPH (%.2f L/s)", output.Value(formatFloat(sizing.FlowLPH, 0)), sizing.FlowM3PS*1000)
	splog.Info("  Total Dynamic Head:   %s m", output.Value(formatFloat(sizing.TDH, 1)))
	splog.Newline()

	splog.Info("%s", output.Heading("Head Loss Breakdown"))
	splog.Info("  Static Head:          %.1f m", sizing.StaticHead)
	splog.Info("  Pipe Friction Loss:   %.1f m", sizing.PipeLosses())
	splog.Info("  Velocity Head:        %.2f m", sizing.VelocityHead)
	splog.Info("  Safety Margin:        %.1f m", sizing.SafetyHead)
	splog.Newline()

	splog.Info("%s", output.Heading("Pump Specifications"))
	splog.Info("  Required Power:       %.1f HP -> use %s HP (%.1f kW)", sizing.PowerHP, output.Value(formatFloat(sizing.PowerHPRounded, 0)), sizing.PowerKW)
	splog.Info("  Number of Stages:     %s", output.Value(formatInt(sizing.Stages)))
	splog.Info("  Recommended RPM:      2850 (standard 4\" pumps)")
	splog.Newline()

	printPipeEvaluation(splog, input, sizing)
}

// printPipeEvaluation prints the pumping line verdict.
func printPipeEvaluation(splog *output.Splog, input hydraulics.Input, sizing *hydraulics.Sizing) {
	splog.Info("%s", output.Heading("Pipe Sizing Evaluation"))
	splog.Info("  Selected Pipe:        %gmm %s", input.PipeDiameterMM, input.PipeMaterial)

	spec, err := hydraulics.LookupPipe(input.PipeDiameterMM)
	if err != nil {
		splog.Info("  Actual Flow Velocity: %.2f m/s", sizing.Velocity)
		splog.Warn("No sizing recommendation for %gmm pipe.", input.PipeDiameterMM)
		return
	}

	if spec.VelocityOK(sizing.Velocity) {
		splog.Info("  Actual Flow Velocity: %.2f m/s (%s)", sizing.Velocity, output.Good("good"))
	} else {
		splog.Info("  Actual Flow Velocity: %.2f m/s (%s)", sizing.Velocity, output.Caution("high, consider a larger pipe"))
	}
	splog.Info("  Recommended Max Flow: %s LPH", formatFloat(spec.MaxFlowLPH, 0))

	if !spec.VelocityOK(sizing.Velocity) {
		splog.Warn("High velocity detected. Increasing the pipe size reduces friction losses.")
	}
}
