package derived

import "math"

// Risk is a UV index severity band
type Risk struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

// UV risk bands
var (
	RiskLow      = Risk{Label: "LOW", Color: "#6BCF7F"}
	RiskMed      = Risk{Label: "MED", Color: "#FFD93D"}
	RiskHigh     = Risk{Label: "HIGH", Color: "#FF8C42"}
	RiskVeryHigh = Risk{Label: "VERY HIGH", Color: "#FF6B6B"}
	RiskExtreme  = Risk{Label: "EXTREME", Color: "#B57EDC"}
)

// uvBands are checked in order; each upper bound is inclusive
var uvBands = []struct {
	max  float64
	risk Risk
}{
	{2, RiskLow},
	{5, RiskMed},
	{7, RiskHigh},
	{10, RiskVeryHigh},
}

// UVMax is the scale maximum used for the UV bar
const UVMax = 11

// UVRisk classifies a UV index. Values above 10 (and NaN) are EXTREME.
func UVRisk(uv float64) Risk {
	for _, b := range uvBands {
		if uv <= b.max {
			return b.risk
		}
	}
	return RiskExtreme
}

// BarFraction returns current/max clamped to [0,1]. A non-positive max or a
// NaN ratio gives 0.
func BarFraction(current, max float64) float64 {
	if max <= 0 {
		return 0
	}
	f := current / max
	switch {
	case math.IsNaN(f), f < 0:
		return 0
	case f > 1:
		return 1
	}
	return f
}
