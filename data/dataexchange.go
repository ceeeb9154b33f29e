// Copyright © 2026 Geoff Holden <geoff@geoffholden.com>

package data

import "time"

// DefaultValue is reported for any known field a frame did not carry.
const DefaultValue = "0"

// ParticleFields are the channels reported by the dust sensor, in the order
// they are persisted.
var ParticleFields = []string{
	"PC0.1", "PC0.3", "PC0.5", "PC1.0", "PC2.5", "PC5.0", "PC10",
	"PM0.1", "PM0.3", "PM0.5", "PM1.0", "PM2.5", "PM5.0", "PM10",
}

// Record is one timestamped measurement. Every field named at construction
// is present; it is not modified after NewRecord returns.
type Record struct {
	TimeStamp time.Time
	Sensor    string

	fields []string
	values map[string]string
}

// NewRecord builds a Record exposing exactly fields, taking values from
// parsed and defaulting the rest to DefaultValue. Keys of parsed that are not
// in fields are dropped.
func NewRecord(sensor string, ts time.Time, fields []string, parsed map[string]string) Record {
	r := Record{
		TimeStamp: ts,
		Sensor:    sensor,
		fields:    append([]string(nil), fields...),
		values:    make(map[string]string, len(fields)),
	}
	for _, f := range fields {
		if v, ok := parsed[f]; ok {
			r.values[f] = v
		} else {
			r.values[f] = DefaultValue
		}
	}
	return r
}

// Value returns the value of a field, DefaultValue if the field is unknown.
func (r Record) Value(field string) string {
	if v, ok := r.values[field]; ok {
		return v
	}
	return DefaultValue
}

// Fields returns the record's field names in persisted order.
func (r Record) Fields() []string {
	return append([]string(nil), r.fields...)
}

// Values returns a copy of the field to value mapping.
func (r Record) Values() map[string]string {
	m := make(map[string]string, len(r.values))
	for k, v := range r.values {
		m[k] = v
	}
	return m
}

// IsZero reports whether the record was never built.
func (r Record) IsZero() bool {
	return r.values == nil
}

type RecordParser interface {
	Parse(frame []byte, now func() time.Time) (Record, error)
}
