// Package derived computes display values from a weather snapshot: wind
// direction lookups, UV risk banding and bar fill fractions.
package derived

import "math"

// UnknownDirection is shown when the provider sends a direction outside the
// 16-point compass.
const UnknownDirection = "--"

var oppositeDirections = map[string]string{
	"N":   "S",
	"NNE": "SSW",
	"NE":  "SW",
	"ENE": "WSW",
	"E":   "W",
	"ESE": "WNW",
	"SE":  "NW",
	"SSE": "NNW",
	"S":   "N",
	"SSW": "NNE",
	"SW":  "NE",
	"WSW": "ENE",
	"W":   "E",
	"WNW": "ESE",
	"NW":  "SE",
	"NNW": "SSE",
}

// CompassPoints lists the 16 canonical abbreviations clockwise from north
var CompassPoints = []string{
	"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW", "W", "WNW", "NW", "NNW",
}

// OppositeDirection returns the antipode of a 16-point compass abbreviation.
// The match is exact and case-sensitive; anything else yields UnknownDirection.
func OppositeDirection(dir string) string {
	if opp, ok := oppositeDirections[dir]; ok {
		return opp
	}
	return UnknownDirection
}

var arrows = []string{"↑", "↗", "→", "↘", "↓", "↙", "←", "↖"}

// CompassArrow returns an 8-way arrow glyph pointing at deg (0 = north,
// clockwise). Degrees outside 0-359 are normalized.
func CompassArrow(deg int) string {
	d := ((deg % 360) + 360) % 360
	idx := int(math.Round(float64(d)/45)) % len(arrows)
	return arrows[idx]
}

// RoundTemp rounds a temperature to the nearest whole degree
func RoundTemp(c float64) int {
	return int(math.Round(c))
}
