// Copyright © 2026 Geoff Holden <geoff@geoffholden.com>

package stream

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	jww "github.com/spf13/jwalterweatherman"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopPort struct {
	io.Reader
	closed bool
}

func (p *nopPort) Close() error {
	p.closed = true
	return errors.New("already closed")
}

func testNotepad(out, log *bytes.Buffer) *jww.Notepad {
	return jww.NewNotepad(jww.LevelTrace, jww.LevelError, out, log, "", 0)
}

func TestConnectRetriesUntilOpen(t *testing.T) {
	var out, log bytes.Buffer
	attempts := 0
	var delays []time.Duration
	var failures []error
	port := &nopPort{Reader: bytes.NewReader(nil)}

	c := &Connector{
		Address: "/dev/ttyUSB0",
		Baud:    115200,
		Open: func(address string, baud int) (io.ReadCloser, error) {
			attempts++
			assert.Equal(t, "/dev/ttyUSB0", address)
			assert.Equal(t, 115200, baud)
			if attempts <= 3 {
				return nil, errors.New("no such device")
			}
			return port, nil
		},
		Log: testNotepad(&out, &log),
		Sleep: func(ctx context.Context, d time.Duration) bool {
			delays = append(delays, d)
			return true
		},
		OnFailure: func(err error) { failures = append(failures, err) },
	}

	got, err := c.Connect(context.Background())
	require.NoError(t, err)
	assert.Same(t, port, got)
	assert.Equal(t, 4, attempts)
	assert.Equal(t, []time.Duration{DefaultRetryInterval, DefaultRetryInterval, DefaultRetryInterval}, delays)
	assert.Len(t, failures, 3)
	assert.Equal(t, 3, bytes.Count(log.Bytes(), []byte("Serial connection failed: no such device")))
	assert.Contains(t, out.String(), "[CONNECTED] Serial port /dev/ttyUSB0 opened.")
}

func TestConnectStopsOnCancel(t *testing.T) {
	var out, log bytes.Buffer
	ctx, cancel := context.WithCancel(context.Background())

	c := &Connector{
		Address: "/dev/ttyUSB0",
		Open: func(string, int) (io.ReadCloser, error) {
			return nil, errors.New("busy")
		},
		RetryInterval: time.Hour,
		Log:           testNotepad(&out, &log),
		Sleep: func(ctx context.Context, d time.Duration) bool {
			assert.Equal(t, time.Hour, d)
			cancel()
			return SleepContext(ctx, d)
		},
	}

	_, err := c.Connect(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestReconnectSwallowsCloseError(t *testing.T) {
	var out, log bytes.Buffer
	old := &nopPort{Reader: bytes.NewReader(nil)}
	fresh := &nopPort{Reader: bytes.NewReader(nil)}

	c := &Connector{
		Open: func(string, int) (io.ReadCloser, error) { return fresh, nil },
		Log:  testNotepad(&out, &log),
	}
	got, err := c.Reconnect(context.Background(), old)
	require.NoError(t, err)
	assert.True(t, old.closed)
	assert.Same(t, fresh, got)
	assert.Contains(t, out.String(), "[RETRYING]")
}

func TestSleepContext(t *testing.T) {
	assert.True(t, SleepContext(context.Background(), 0))
	assert.True(t, SleepContext(context.Background(), time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.False(t, SleepContext(ctx, time.Hour))
}

func TestOpenSerialReplaysRegularFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "capture.txt")
	require.NoError(t, os.WriteFile(path, []byte("a,1\n"), 0644))

	assert.True(t, IsRegularFile(path))
	assert.False(t, IsRegularFile(filepath.Dir(path)))
	assert.False(t, IsRegularFile(filepath.Join(path, "missing")))

	port, err := OpenSerial(path, 9600)
	require.NoError(t, err)
	defer port.Close()

	frame, err := NewLineReader(port).ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "a,1\n", string(frame))
}
