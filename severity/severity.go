// Copyright © 2026 Geoff Holden <geoff@geoffholden.com>

// Package severity buckets particulate concentrations into air quality bands
// and renders accepted records on the console. It has no effect on what is
// persisted.
package severity

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Band is an air quality level covering concentrations up to and including
// Max µg/m³.
type Band struct {
	Max   float64
	Level string
	Style lipgloss.Style
}

var Bands = []Band{
	{12, "Good", lipgloss.NewStyle().Foreground(lipgloss.Color("10"))},
	{35.4, "Moderate", lipgloss.NewStyle().Foreground(lipgloss.Color("11"))},
	{55.4, "Unhealthy for Sensitive Groups", lipgloss.NewStyle().Foreground(lipgloss.Color("3"))},
	{150.4, "Unhealthy", lipgloss.NewStyle().Foreground(lipgloss.Color("9"))},
	{250.4, "Very Unhealthy", lipgloss.NewStyle().Foreground(lipgloss.Color("13"))},
	{math.Inf(1), "Hazardous", lipgloss.NewStyle().Background(lipgloss.Color("1"))},
}

// Classify returns the band v falls into.
func Classify(v float64) Band {
	for _, b := range Bands {
		if v <= b.Max {
			return b
		}
	}
	return Bands[len(Bands)-1]
}

// Format renders a concentration reading with its band's style. Values that
// are not numbers are shown as is, unstyled.
func Format(label, value string) string {
	v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil || math.IsNaN(v) {
		return fmt.Sprintf("%-7s: %s µg/m³", label, value)
	}
	b := Classify(v)
	return b.Style.Render(fmt.Sprintf("%-7s: %.2f µg/m³ (%s)", label, v, b.Level))
}
