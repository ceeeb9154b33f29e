// Copyright © 2026 Geoff Holden <geoff@geoffholden.com>

package sensors

import (
	"errors"
	"fmt"
	"sort"

	"github.com/geoffholden/gopm/data"
)

// ErrMalformedFrame is returned for frames that do not meet the minimum
// shape of the sensor protocol. Callers skip the frame and carry on.
var ErrMalformedFrame = errors.New("malformed frame")

// Constructor builds a parser for the given frame format.
type Constructor func(format FrameFormat) (data.RecordParser, error)

type registration struct {
	ctor   Constructor
	format FrameFormat
}

var registry map[string]registration

// RegisterSensor makes a sensor available by name, with its default frame
// format.
func RegisterSensor(key string, format FrameFormat, ctor Constructor) {
	if nil == registry {
		registry = make(map[string]registration)
	}
	registry[key] = registration{ctor: ctor, format: format}
}

// DefaultFormat returns the frame format a sensor was registered with.
func DefaultFormat(key string) (FrameFormat, bool) {
	r, ok := registry[key]
	return r.format, ok
}

// New builds the named sensor's parser using format.
func New(key string, format FrameFormat) (data.RecordParser, error) {
	r, ok := registry[key]
	if !ok {
		return nil, fmt.Errorf("unknown sensor %q, one of %v", key, Names())
	}
	return r.ctor(format)
}

func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
