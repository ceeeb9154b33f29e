// Copyright © 2026 Geoff Holden <geoff@geoffholden.com>

package sensors

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/geoffholden/gopm/data"
)

// DustFormat is the framing of the particulate sensor: an optional
// "Dust Sensor Data:" label followed by 14 comma separated key,value pairs.
var DustFormat = FrameFormat{
	Prefix:    "Dust Sensor Data:",
	Delimiter: ",",
	MinTokens: 28,
}

type Dust struct {
	format FrameFormat
	fields []string
}

func init() {
	RegisterSensor("dust", DustFormat, func(format FrameFormat) (data.RecordParser, error) {
		return NewDust(format, data.ParticleFields)
	})
}

func NewDust(format FrameFormat, fields []string) (*Dust, error) {
	if err := format.Validate(); err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("dust sensor: no fields")
	}
	return &Dust{format: format, fields: append([]string(nil), fields...)}, nil
}

// Parse decodes one frame. Tokens alternate key, value; unknown keys are
// ignored and missing fields default to data.DefaultValue. now is called
// once, only for frames that validate.
func (d *Dust) Parse(frame []byte, now func() time.Time) (data.Record, error) {
	var empty data.Record

	if !utf8.Valid(frame) {
		return empty, fmt.Errorf("%w: invalid utf-8", ErrMalformedFrame)
	}

	tokens := d.format.Tokens(d.format.Payload(frame))
	if len(tokens) < d.format.MinTokens {
		return empty, fmt.Errorf("%w: %d tokens, want at least %d", ErrMalformedFrame, len(tokens), d.format.MinTokens)
	}

	parsed := make(map[string]string, len(tokens)/2)
	for i := 0; i+1 < len(tokens); i += 2 {
		parsed[strings.TrimSpace(tokens[i])] = strings.TrimSpace(tokens[i+1])
	}

	return data.NewRecord("dust", now(), d.fields, parsed), nil
}
