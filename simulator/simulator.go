// Copyright © 2026 Geoff Holden <geoff@geoffholden.com>

// Package simulator fabricates dust sensor output so the pipeline can run
// without a device attached.
package simulator

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/geoffholden/gopm/data"
)

// Baseline readings around which values vary by ±30%.
var Baseline = map[string]float64{
	"PC0.1": 5000,
	"PC0.3": 1500,
	"PC0.5": 800,
	"PC1.0": 400,
	"PC2.5": 200,
	"PC5.0": 100,
	"PC10":  50,
	"PM0.1": 5.0,
	"PM0.3": 8.0,
	"PM0.5": 12.0,
	"PM1.0": 15.0,
	"PM2.5": 25.0,
	"PM5.0": 35.0,
	"PM10":  45.0,
}

// Multiplier scales readings by hour of day: busier during the day, worst
// at rush hour, quiet at night.
func Multiplier(hour int) float64 {
	switch {
	case hour >= 6 && hour < 10:
		return 1.0
	case hour >= 10 && hour < 16:
		return 1.3
	case hour >= 16 && hour < 20:
		return 1.6
	}
	return 0.7
}

// Source is a fake device. Each Read blocks until the next frame is due.
type Source struct {
	Prefix   string
	Fields   []string
	Interval time.Duration
	Clock    func() time.Time
	Rand     *rand.Rand

	mu      sync.Mutex
	pending bytes.Buffer
	ctx     context.Context
	cancel  context.CancelFunc
	started bool
}

func New(prefix string, interval time.Duration) *Source {
	ctx, cancel := context.WithCancel(context.Background())
	return &Source{
		Prefix:   prefix,
		Fields:   data.ParticleFields,
		Interval: interval,
		Clock:    time.Now,
		Rand:     rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0)),
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Opener returns a function matching stream.Opener that always hands out a
// fresh Source.
func Opener(prefix string, interval time.Duration) func(string, int) (io.ReadCloser, error) {
	return func(string, int) (io.ReadCloser, error) {
		return New(prefix, interval), nil
	}
}

// Frame builds one frame as the device would print it.
func (s *Source) Frame() []byte {
	mult := Multiplier(s.Clock().Hour())
	parts := make([]string, 0, 2*len(s.Fields))
	for _, field := range s.Fields {
		v := Baseline[field] * (1 + (s.Rand.Float64()*0.6 - 0.3)) * mult
		if v < 0 {
			v = 0
		}
		var value string
		if strings.HasPrefix(field, "PC") {
			value = fmt.Sprintf("%.0f", v)
		} else {
			value = fmt.Sprintf("%.2f", v)
		}
		parts = append(parts, field, value)
	}

	payload := strings.Join(parts, ",")
	if s.Prefix != "" {
		payload = s.Prefix + " " + payload
	}
	return []byte(payload + "\r\n")
}

// Available reports the bytes of the current frame not yet read.
func (s *Source) Available() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending.Len()
}

func (s *Source) Read(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ctx.Err() != nil {
		return 0, io.ErrClosedPipe
	}
	if s.pending.Len() == 0 {
		if s.started && s.Interval > 0 {
			s.mu.Unlock()
			t := time.NewTimer(s.Interval)
			select {
			case <-t.C:
			case <-s.ctx.Done():
				t.Stop()
			}
			s.mu.Lock()
			if s.ctx.Err() != nil {
				return 0, io.ErrClosedPipe
			}
		}
		s.started = true
		s.pending.Write(s.Frame())
	}
	return s.pending.Read(p)
}

func (s *Source) Close() error {
	s.cancel()
	return nil
}
