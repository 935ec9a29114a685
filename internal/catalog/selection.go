package catalog

import "fmt"

// MatchKind says how a pump was matched against the requirement.
type MatchKind string

const (
	// MatchExact is an exact HP match with sufficient stages and TDH in range.
	MatchExact MatchKind = "exact"
	// MatchHigherHP is a higher-HP pump with sufficient stages and TDH in range.
	MatchHigherHP MatchKind = "higher-hp"
	// MatchTDH matched on TDH range alone among pumps of at least the required HP.
	MatchTDH MatchKind = "tdh"
	// MatchLastResort is the highest-capacity pump, chosen when nothing fits.
	MatchLastResort MatchKind = "last-resort"
)

// Selection is the outcome of matching the catalog against a requirement.
type Selection struct {
	Pump Pump
	Kind MatchKind
}

// Compatible reports whether the selected pump's head range covers the TDH.
func (s Selection) Compatible(tdh float64) bool {
	return s.Pump.InHeadRange(tdh)
}

// Select picks a pump for the required HP, stage count and TDH. The fallback
// chain prefers an exact HP match, then a higher-HP pump with enough stages,
// then any sufficiently powered pump whose head range covers the TDH, and
// finally the highest-capacity pump in the catalog.
func (c *Catalog) Select(requiredHP float64, requiredStages int, tdh float64) (Selection, error) {
	if len(c.Pumps) == 0 {
		return Selection{}, fmt.Errorf("catalog is empty")
	}

	var exactHP []Pump
	for _, pump := range c.Pumps {
		if pump.HP == requiredHP {
			exactHP = append(exactHP, pump)
		}
	}

	if len(exactHP) > 0 {
		for _, pump := range exactHP {
			if pump.Stages >= requiredStages && pump.InHeadRange(tdh) {
				return Selection{Pump: pump, Kind: MatchExact}, nil
			}
		}

		for _, pump := range c.Pumps {
			if pump.HP > requiredHP && pump.Stages >= requiredStages && pump.InHeadRange(tdh) {
				return Selection{Pump: pump, Kind: MatchHigherHP}, nil
			}
		}
	}

	for _, pump := range c.Pumps {
		if pump.HP >= requiredHP && pump.InHeadRange(tdh) {
			return Selection{Pump: pump, Kind: MatchTDH}, nil
		}
	}

	// Catalog is sorted by HP then stages, so the last entry is the
	// highest-capacity pump.
	return Selection{Pump: c.Pumps[len(c.Pumps)-1], Kind: MatchLastResort}, nil
}
