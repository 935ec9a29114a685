// Package hydraulics computes the hydraulic requirements for a submersible
// pump installation: required flow, total dynamic head, motor power and the
// number of pump stages.
package hydraulics

import (
	"fmt"
	"math"

	pderrors "github.com/manulapulga/pump-design/internal/errors"
)

// Physical constants used in the head and power formulas.
const (
	gravity       = 9.81   // m/s²
	waterDensity  = 1000.0 // kg/m³
	wattsPerHP    = 745.7
	kwPerHP       = 0.7457
	minorLossRate = 0.10 // fraction of friction loss added for fittings
)

// Input describes the system to size a pump for. Flows are in liters per
// hour, lengths and heads in meters, percentages as 0-100.
type Input struct {
	YieldLPH     float64 // borewell yield
	Taps         int     // total tap connections
	DemandPerTap float64 // daily demand per tap, liters
	PumpingHours float64 // hours available for pumping

	InstallationDepth float64 // pump installation depth
	TankHeight        float64 // tank height from ground
	LineLength        float64 // pumping line length

	PipeDiameterMM float64
	PipeMaterial   Material

	SafetyMarginPct float64
	EfficiencyPct   float64
	HeadPerStage    float64
}

// Sizing is the computed hydraulic requirement set.
type Sizing struct {
	DemandLiters float64 // total daily demand
	FlowLPH      float64 // required flow rate
	FlowM3PS     float64 // required flow rate, m³/s

	FrictionLoss float64 // Hazen-Williams pipe friction, m
	MinorLosses  float64 // fitting allowance, m
	Velocity     float64 // flow velocity in the pumping line, m/s
	VelocityHead float64 // m
	StaticHead   float64 // m
	SafetyHead   float64 // safety margin contribution, m
	TDH          float64 // total dynamic head, m

	PowerHP        float64 // required shaft power
	PowerHPRounded float64 // rounded up to the next usable motor size
	PowerKW        float64
	Stages         int
}

// Compute sizes the pump for the given system. It returns ErrYieldExceeded
// when the demand cannot be met within the available pumping hours.
func Compute(in Input) (*Sizing, error) {
	if in.Taps <= 0 {
		return nil, fmt.Errorf("tap count must be positive, got %d", in.Taps)
	}
	if in.PumpingHours <= 0 {
		return nil, fmt.Errorf("pumping hours must be positive, got %g", in.PumpingHours)
	}
	if in.PipeDiameterMM <= 0 {
		return nil, fmt.Errorf("pipe diameter must be positive, got %g", in.PipeDiameterMM)
	}
	if in.EfficiencyPct <= 0 {
		return nil, fmt.Errorf("pump efficiency must be positive, got %g", in.EfficiencyPct)
	}
	if in.HeadPerStage <= 0 {
		return nil, fmt.Errorf("head per stage must be positive, got %g", in.HeadPerStage)
	}

	s := &Sizing{}
	s.DemandLiters = float64(in.Taps) * in.DemandPerTap
	s.FlowLPH = s.DemandLiters / in.PumpingHours
	s.FlowM3PS = s.FlowLPH / 3600000.0

	if s.FlowLPH > in.YieldLPH {
		return nil, fmt.Errorf("required flow %.0f LPH against yield %.0f LPH: %w",
			s.FlowLPH, in.YieldLPH, pderrors.ErrYieldExceeded)
	}

	diameterM := in.PipeDiameterMM / 1000.0
	c := in.PipeMaterial.RoughnessC()

	// Hazen-Williams friction loss plus a flat fitting allowance.
	s.FrictionLoss = (10.67 * in.LineLength * math.Pow(s.FlowM3PS, 1.852)) /
		(math.Pow(c, 1.852) * math.Pow(diameterM, 4.87))
	s.MinorLosses = minorLossRate * s.FrictionLoss

	pipeArea := math.Pi * diameterM * diameterM / 4.0
	s.Velocity = s.FlowM3PS / pipeArea
	s.VelocityHead = s.Velocity * s.Velocity / (2 * gravity)

	s.StaticHead = in.InstallationDepth + in.TankHeight
	headWithoutMargin := s.StaticHead + s.FrictionLoss + s.MinorLosses + s.VelocityHead
	s.SafetyHead = in.SafetyMarginPct / 100.0 * headWithoutMargin
	s.TDH = headWithoutMargin + s.SafetyHead

	s.PowerHP = (s.FlowM3PS * s.TDH * waterDensity * gravity) /
		(in.EfficiencyPct / 100.0 * wattsPerHP)
	s.PowerHPRounded = math.Max(0.5, math.Round(s.PowerHP+0.4))
	s.PowerKW = s.PowerHP * kwPerHP

	s.Stages = int(s.TDH/in.HeadPerStage + 0.5)

	return s, nil
}

// PipeLosses returns the total pipe loss (friction plus fittings).
func (s *Sizing) PipeLosses() float64 {
	return s.FrictionLoss + s.MinorLosses
}
