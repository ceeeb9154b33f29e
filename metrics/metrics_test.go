// Copyright © 2026 Geoff Holden <geoff@geoffholden.com>

package metrics

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteTextfile(t *testing.T) {
	m := New()
	m.Frames.Add(3)
	m.Persisted.Inc()

	assert.Equal(t, 3.0, testutil.ToFloat64(m.Frames))
	n, err := testutil.GatherAndCount(m.Registry())
	require.NoError(t, err)
	assert.Equal(t, 7, n)

	path := filepath.Join(t.TempDir(), "gopm.prom")
	require.NoError(t, m.WriteTextfile(path))

	body, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(body), "gopm_frames_total 3")
	assert.Contains(t, string(body), "gopm_records_persisted_total 1")
}
