// Copyright © 2026 Geoff Holden <geoff@geoffholden.com>

package units

import (
	"errors"
	"strings"
)

// Concentration is a mass concentration of particulate matter.
type Concentration struct {
	ugm3 float64
}

func NewConcentrationMicrogramsPerCubicMeter(value float64) Concentration {
	return Concentration{value}
}

func NewConcentrationMilligramsPerCubicMeter(value float64) Concentration {
	return Concentration{value * 1000.0}
}

func (c *Concentration) MicrogramsPerCubicMeter() float64 {
	return c.ugm3
}

func (c *Concentration) MilligramsPerCubicMeter() float64 {
	return c.ugm3 / 1000.0
}

func (c *Concentration) Get(unit string) (float64, error) {
	switch strings.ToLower(unit) {
	case "ug/m3", "µg/m³", "µg/m3", "ugm3":
		return c.MicrogramsPerCubicMeter(), nil
	case "mg/m3", "mg/m³", "mgm3":
		return c.MilligramsPerCubicMeter(), nil
	}
	return 0, errors.New("Unknown unit")
}

// ConcentrationSymbol returns the display symbol for a concentration unit.
func ConcentrationSymbol(unit string) string {
	switch strings.ToLower(unit) {
	case "mg/m3", "mg/m³", "mgm3":
		return "mg/m³"
	}
	return "µg/m³"
}
