package cli

import (
	"github.com/spf13/cobra"

	"github.com/manulapulga/pump-design/internal/hydraulics"
)

// sizingFlags holds the system parameters shared by calc, select and report.
// Defaults mirror a typical small borewell scheme.
type sizingFlags struct {
	yieldLPH     float64
	taps         int
	demandPerTap float64
	pumpingHours float64

	depth      float64
	tankHeight float64
	lineLength float64

	pipeDiameter float64
	pipeMaterial string

	safetyMargin float64
	efficiency   float64
	headPerStage float64
}

func (f *sizingFlags) register(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&f.yieldLPH, "yield", 2000, "borewell yield (LPH)")
	cmd.Flags().IntVar(&f.taps, "taps", 20, "total tap connections")
	cmd.Flags().Float64Var(&f.demandPerTap, "demand-per-tap", 50, "daily water demand per tap (liters)")
	cmd.Flags().Float64Var(&f.pumpingHours, "pumping-hours", 6, "hours available for pumping")

	cmd.Flags().Float64Var(&f.depth, "depth", 30, "pump installation depth (m)")
	cmd.Flags().Float64Var(&f.tankHeight, "tank-height", 10, "tank height from ground (m)")
	cmd.Flags().Float64Var(&f.lineLength, "line-length", 50, "pumping line length (m)")

	cmd.Flags().Float64Var(&f.pipeDiameter, "pipe", 50, "pumping line diameter (mm)")
	cmd.Flags().StringVar(&f.pipeMaterial, "material", "PVC", "piping material (PVC or GI)")

	cmd.Flags().Float64Var(&f.safetyMargin, "safety-margin", 15, "safety margin (%)")
	cmd.Flags().Float64Var(&f.efficiency, "efficiency", 65, "pump efficiency (%)")
	cmd.Flags().Float64Var(&f.headPerStage, "head-per-stage", 5, "head per pump stage (m)")
}

func (f *sizingFlags) toInput() (hydraulics.Input, error) {
	material, err := hydraulics.ParseMaterial(f.pipeMaterial)
	if err != nil {
		return hydraulics.Input{}, err
	}

	return hydraulics.Input{
		YieldLPH:          f.yieldLPH,
		Taps:              f.taps,
		DemandPerTap:      f.demandPerTap,
		PumpingHours:      f.pumpingHours,
		InstallationDepth: f.depth,
		TankHeight:        f.tankHeight,
		LineLength:        f.lineLength,
		PipeDiameterMM:    f.pipeDiameter,
		PipeMaterial:      material,
		SafetyMarginPct:   f.safetyMargin,
		EfficiencyPct:     f.efficiency,
		HeadPerStage:      f.headPerStage,
	}, nil
}
