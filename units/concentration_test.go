// Copyright © 2026 Geoff Holden <geoff@geoffholden.com>

package units

import (
	"testing"
	"testing/quick"
)

func TestConcentrationMicrograms(t *testing.T) {
	if err := quick.Check(func(x float64) bool {
		y := NewConcentrationMicrogramsPerCubicMeter(x)
		return floatEquals(x, y.MicrogramsPerCubicMeter())
	}, nil); err != nil {
		t.Error(err)
	}
}

func TestConcentrationMilligrams(t *testing.T) {
	if err := quick.Check(func(x float64) bool {
		y := NewConcentrationMilligramsPerCubicMeter(x)
		return floatEquals(x, y.MilligramsPerCubicMeter())
	}, nil); err != nil {
		t.Error(err)
	}
}

func TestConcentrationGet(t *testing.T) {
	c := NewConcentrationMicrogramsPerCubicMeter(35.4)

	value, err := c.Get("ug/m3")
	if err != nil {
		t.Fatal(err)
	}
	if !floatEquals(value, 35.4) {
		t.Fatal("Value should be 35.4")
	}

	value, err = c.Get("mg/m3")
	if err != nil {
		t.Fatal(err)
	}
	if !floatEquals(value, 0.0354) {
		t.Fatal("Value should be 0.0354")
	}

	value, err = c.Get("ppm")
	if err == nil {
		t.Fatal("Invalid unit should give an error")
	}

	if ConcentrationSymbol("MG/M3") != "mg/m³" || ConcentrationSymbol("") != "µg/m³" {
		t.Fatal("Wrong symbol")
	}
}
