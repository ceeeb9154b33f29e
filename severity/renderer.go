// Copyright © 2026 Geoff Holden <geoff@geoffholden.com>

package severity

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/geoffholden/gopm/data"
	"github.com/geoffholden/gopm/units"
)

// Renderer prints a summary of every record it is handed.
type Renderer struct {
	w io.Writer

	// ConcentrationUnit and CountUnit select display units, see package units.
	ConcentrationUnit string
	CountUnit         string
}

func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{w: w, ConcentrationUnit: "ug/m3", CountUnit: "0.1L"}
}

func (r *Renderer) Write(rec data.Record) error {
	var b strings.Builder
	b.WriteString("\nSelected PM values:\n")
	for _, field := range rec.Fields() {
		b.WriteString("  ")
		if strings.HasPrefix(field, "PC") {
			b.WriteString(r.count(field, rec.Value(field)))
		} else {
			b.WriteString(r.concentration(field, rec.Value(field)))
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "Saved at %s\n", rec.TimeStamp.Format("15:04:05"))

	_, err := io.WriteString(r.w, b.String())
	return err
}

func (r *Renderer) count(field, value string) string {
	v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return fmt.Sprintf("%-7s: %8s particles", field, value)
	}
	c := units.NewParticleCountPerDeciliter(v)
	converted, err := c.Get(r.CountUnit)
	if err != nil {
		return fmt.Sprintf("%-7s: %8.0f particles/0.1L", field, v)
	}
	return fmt.Sprintf("%-7s: %8.0f particles/%s", field, converted, r.CountUnit)
}

// concentration styles by the µg/m³ reading whatever the display unit.
func (r *Renderer) concentration(field, value string) string {
	styled := Format(field, value)
	v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return styled
	}
	c := units.NewConcentrationMicrogramsPerCubicMeter(v)
	converted, err := c.Get(r.ConcentrationUnit)
	if err != nil || units.ConcentrationSymbol(r.ConcentrationUnit) == "µg/m³" {
		return styled
	}
	b := Classify(v)
	return b.Style.Render(fmt.Sprintf("%-7s: %.4f %s (%s)", field, converted, units.ConcentrationSymbol(r.ConcentrationUnit), b.Level))
}
