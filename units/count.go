// Copyright © 2026 Geoff Holden <geoff@geoffholden.com>

package units

import (
	"errors"
	"strings"
)

const litresPerCubicFoot = 28.316846592

// ParticleCount is a number concentration of particles, stored per 0.1 L
// of air as the sensor reports it.
type ParticleCount struct {
	perDeciliter float64
}

func NewParticleCountPerDeciliter(value float64) ParticleCount {
	return ParticleCount{value}
}

func NewParticleCountPerLiter(value float64) ParticleCount {
	return ParticleCount{value / 10.0}
}

func NewParticleCountPerCubicMeter(value float64) ParticleCount {
	return ParticleCount{value / 10000.0}
}

func NewParticleCountPerCubicFoot(value float64) ParticleCount {
	return ParticleCount{value / litresPerCubicFoot / 10.0}
}

func (p *ParticleCount) PerDeciliter() float64 {
	return p.perDeciliter
}

func (p *ParticleCount) PerLiter() float64 {
	return p.perDeciliter * 10.0
}

func (p *ParticleCount) PerCubicMeter() float64 {
	return p.perDeciliter * 10000.0
}

func (p *ParticleCount) PerCubicFoot() float64 {
	return p.perDeciliter * 10.0 * litresPerCubicFoot
}

func (p *ParticleCount) Get(unit string) (float64, error) {
	switch strings.ToLower(unit) {
	case "0.1l", "dl":
		return p.PerDeciliter(), nil
	case "l":
		return p.PerLiter(), nil
	case "m3", "m³":
		return p.PerCubicMeter(), nil
	case "ft3", "ft³", "cf":
		return p.PerCubicFoot(), nil
	}
	return 0, errors.New("Unknown unit")
}
