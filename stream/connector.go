// Copyright © 2026 Geoff Holden <geoff@geoffholden.com>

package stream

import (
	"context"
	"io"
	"time"

	jww "github.com/spf13/jwalterweatherman"
)

// DefaultRetryInterval is the fixed wait between failed open attempts.
const DefaultRetryInterval = 5 * time.Second

// Opener opens the device at address.
type Opener func(address string, baud int) (io.ReadCloser, error)

// Connector owns the device handle's lifecycle. Connect keeps trying until
// the device opens or ctx is cancelled.
type Connector struct {
	Address       string
	Baud          int
	Open          Opener
	RetryInterval time.Duration
	Log           *jww.Notepad

	// Sleep waits for d, returning false if ctx ends first.
	Sleep func(ctx context.Context, d time.Duration) bool
	// OnFailure is called after every failed attempt.
	OnFailure func(err error)
}

// Connect returns an open handle. The only error it returns is ctx.Err().
func (c *Connector) Connect(ctx context.Context) (io.ReadCloser, error) {
	interval := c.RetryInterval
	if interval <= 0 {
		interval = DefaultRetryInterval
	}
	sleep := c.Sleep
	if sleep == nil {
		sleep = SleepContext
	}

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		port, err := c.Open(c.Address, c.Baud)
		if err == nil {
			c.Log.INFO.Printf("[CONNECTED] Serial port %s opened.", c.Address)
			return port, nil
		}

		c.Log.ERROR.Printf("[ERROR] Serial connection failed: %v", err)
		if c.OnFailure != nil {
			c.OnFailure(err)
		}
		c.Log.DEBUG.Printf("Waiting %d seconds before reconnecting...", interval/time.Second)
		if !sleep(ctx, interval) {
			return nil, ctx.Err()
		}
	}
}

// Reconnect closes port, ignoring any error, and connects again.
func (c *Connector) Reconnect(ctx context.Context, port io.Closer) (io.ReadCloser, error) {
	if port != nil {
		port.Close()
	}
	c.Log.INFO.Println("[RETRYING] Reconnecting to serial port...")
	return c.Connect(ctx)
}

func SleepContext(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return true
	}
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
