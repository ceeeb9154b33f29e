// Copyright © 2026 Geoff Holden <geoff@geoffholden.com>

package pipeline

import "github.com/geoffholden/gopm/data"

// Deduplicator keeps at most one record per wall-clock second. It compares
// timestamps only, never content.
type Deduplicator struct {
	marker int64
	seen   bool
}

// Admit reports whether rec falls in a different second than the last
// admitted record. The marker only moves on admission.
func (d *Deduplicator) Admit(rec data.Record) bool {
	second := rec.TimeStamp.Unix()
	if d.seen && second == d.marker {
		return false
	}
	d.marker = second
	d.seen = true
	return true
}
