// Copyright © 2026 Geoff Holden <geoff@geoffholden.com>

// Package pipeline runs the ingestion loop: connect to the device, reassemble
// frames, parse them, drop records that share a second with the previous one
// and persist the rest. Everything runs on the caller's goroutine.
package pipeline

import (
	"context"
	"errors"
	"io"
	"sync"
	"time"

	jww "github.com/spf13/jwalterweatherman"

	"github.com/geoffholden/gopm/data"
	"github.com/geoffholden/gopm/metrics"
	"github.com/geoffholden/gopm/stream"
)

// Sink accepts admitted records.
type Sink interface {
	Write(rec data.Record) error
}

type Pipeline struct {
	Connector *stream.Connector
	Parser    data.RecordParser

	// Store is the record of truth; a failure here stops the pipeline.
	Store Sink
	// Observers see every stored record. Their failures are logged only.
	Observers []Sink

	Metrics *metrics.Metrics
	Log     *jww.Notepad

	// StopAtEOF ends Run cleanly at the end of a replayed capture instead
	// of treating EOF as a disconnect.
	StopAtEOF bool
	Clock     func() time.Time

	dedup Deduplicator
}

// Run ingests until ctx is cancelled, returning nil, or until a fatal
// error occurs.
func (p *Pipeline) Run(ctx context.Context) error {
	if p.Clock == nil {
		p.Clock = time.Now
	}
	if p.Metrics == nil {
		p.Metrics = metrics.New()
	}
	if p.Connector.OnFailure == nil {
		p.Connector.OnFailure = func(error) { p.Metrics.ConnectFailures.Inc() }
	}

	port, err := p.Connector.Connect(ctx)
	if err != nil {
		return nil
	}

	h := &handle{port: port}
	defer h.close()
	stop := context.AfterFunc(ctx, h.close)
	defer stop()

	reader := stream.NewLineReader(port)
	for {
		if ctx.Err() != nil {
			return nil
		}

		err := p.step(reader)
		switch {
		case err == nil:
		case ctx.Err() != nil:
			return nil
		case p.StopAtEOF && errors.Is(err, io.EOF):
			p.Log.INFO.Println("End of input reached.")
			return nil
		case IsTransient(err):
			p.Metrics.ReadErrors.Inc()
			p.Log.ERROR.Printf("Read error: %v", errors.Unwrap(err))
			port, err = p.Connector.Reconnect(ctx, h.take())
			if err != nil {
				return nil
			}
			h.set(port)
			reader = stream.NewLineReader(port)
		default:
			p.Log.ERROR.Println(err)
			return err
		}
	}
}

// step handles a single frame.
func (p *Pipeline) step(reader *stream.LineReader) error {
	frame, err := reader.ReadLine()
	if err != nil {
		return &TransientError{Op: "read", Err: err}
	}
	p.Metrics.Frames.Inc()

	rec, err := p.Parser.Parse(frame, p.Clock)
	if err != nil {
		p.Metrics.Rejected.Inc()
		p.Log.DEBUG.Printf("Skipping frame %q: %v", frame, err)
		return nil
	}

	if !p.dedup.Admit(rec) {
		p.Metrics.Duplicates.Inc()
		return nil
	}

	if err := p.Store.Write(rec); err != nil {
		return &FatalError{Op: "store", Err: err}
	}
	p.Metrics.Persisted.Inc()

	for _, o := range p.Observers {
		if err := o.Write(rec); err != nil {
			p.Metrics.MirrorErrors.Inc()
			p.Log.ERROR.Printf("Sink error: %v", err)
		}
	}
	return nil
}

// handle is the current device handle, closed from whichever of the worker
// or a cancelled context gets there first.
type handle struct {
	mu   sync.Mutex
	port io.Closer
}

func (h *handle) set(port io.Closer) {
	h.mu.Lock()
	h.port = port
	h.mu.Unlock()
}

func (h *handle) take() io.Closer {
	h.mu.Lock()
	defer h.mu.Unlock()
	port := h.port
	h.port = nil
	return port
}

func (h *handle) close() {
	if port := h.take(); port != nil {
		port.Close()
	}
}
