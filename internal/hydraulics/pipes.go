package hydraulics

import "fmt"

// Material is a pumping line material with a Hazen-Williams roughness
// coefficient.
type Material string

// Supported pipe materials.
const (
	PVC Material = "PVC"
	GI  Material = "GI"
)

// RoughnessC returns the Hazen-Williams C value for the material.
// Unknown materials fall back to the PVC value.
func (m Material) RoughnessC() float64 {
	switch m {
	case GI:
		return 120
	case PVC:
		return 140
	default:
		return 140
	}
}

// ParseMaterial validates a material name.
func ParseMaterial(name string) (Material, error) {
	switch Material(name) {
	case PVC, GI:
		return Material(name), nil
	default:
		return "", fmt.Errorf("unknown pipe material %q (supported: PVC, GI)", name)
	}
}

// PipeSpec holds the sizing recommendation for a pumping line diameter.
type PipeSpec struct {
	DiameterMM  float64
	MaxFlowLPH  float64
	MaxVelocity float64 // recommended maximum, m/s
}

// pipeSpecs lists the supported pumping line diameters in ascending order.
var pipeSpecs = []PipeSpec{
	{DiameterMM: 32, MaxFlowLPH: 2000, MaxVelocity: 0.7},
	{DiameterMM: 40, MaxFlowLPH: 4000, MaxVelocity: 0.9},
	{DiameterMM: 50, MaxFlowLPH: 7000, MaxVelocity: 1.0},
	{DiameterMM: 63, MaxFlowLPH: 12000, MaxVelocity: 1.1},
	{DiameterMM: 75, MaxFlowLPH: 18000, MaxVelocity: 1.2},
	{DiameterMM: 90, MaxFlowLPH: 25000, MaxVelocity: 1.3},
}

// PipeSpecs returns the supported pumping line diameters.
func PipeSpecs() []PipeSpec {
	specs := make([]PipeSpec, len(pipeSpecs))
	copy(specs, pipeSpecs)
	return specs
}

// LookupPipe returns the sizing recommendation for a diameter.
func LookupPipe(diameterMM float64) (PipeSpec, error) {
	for _, spec := range pipeSpecs {
		if spec.DiameterMM == diameterMM {
			return spec, nil
		}
	}
	return PipeSpec{}, fmt.Errorf("unsupported pipe diameter %g mm", diameterMM)
}

// VelocityOK reports whether the actual velocity is within the
// recommendation for the pipe.
func (p PipeSpec) VelocityOK(velocity float64) bool {
	return velocity <= p.MaxVelocity
}
