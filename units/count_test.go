// Copyright © 2026 Geoff Holden <geoff@geoffholden.com>

package units

import (
	"testing"
	"testing/quick"
)

func TestCountPerDeciliter(t *testing.T) {
	if err := quick.Check(func(x float64) bool {
		y := NewParticleCountPerDeciliter(x)
		return floatEquals(x, y.PerDeciliter())
	}, nil); err != nil {
		t.Error(err)
	}
}

func TestCountPerLiter(t *testing.T) {
	if err := quick.Check(func(x float64) bool {
		y := NewParticleCountPerLiter(x)
		return floatEquals(x, y.PerLiter())
	}, nil); err != nil {
		t.Error(err)
	}
}

func TestCountPerCubicMeter(t *testing.T) {
	if err := quick.Check(func(x float64) bool {
		y := NewParticleCountPerCubicMeter(x)
		return floatEquals(x, y.PerCubicMeter())
	}, nil); err != nil {
		t.Error(err)
	}
}

func TestCountPerCubicFoot(t *testing.T) {
	if err := quick.Check(func(x float64) bool {
		y := NewParticleCountPerCubicFoot(x)
		return floatEquals(x, y.PerCubicFoot())
	}, nil); err != nil {
		t.Error(err)
	}
}

func TestCountGet(t *testing.T) {
	c := NewParticleCountPerDeciliter(1500)

	value, err := c.Get("0.1L")
	if err != nil {
		t.Fatal(err)
	}
	if !floatEquals(value, 1500) {
		t.Fatal("Value should be 1500")
	}

	value, err = c.Get("L")
	if err != nil {
		t.Fatal(err)
	}
	if !floatEquals(value, 15000) {
		t.Fatal("Value should be 15000")
	}

	value, err = c.Get("m3")
	if err != nil {
		t.Fatal(err)
	}
	if !floatEquals(value, 15000000) {
		t.Fatal("Value should be 15000000")
	}

	value, err = c.Get("ft3")
	if err != nil {
		t.Fatal(err)
	}
	if !floatEquals(value, 424752.69888) {
		t.Fatal("Value should be 424752.69888")
	}

	value, err = c.Get("gallon")
	if err == nil {
		t.Fatal("Invalid unit should give an error")
	}
}
