// Copyright © 2026 Geoff Holden <geoff@geoffholden.com>

package store

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	jww "github.com/spf13/jwalterweatherman"

	"github.com/geoffholden/gopm/data"
)

const (
	fileDateLayout = "02-01-2006"
	rowDateLayout  = "02/01/2006"
	rowTimeLayout  = "15:04:05"
)

// CSV appends records to one file per calendar day, named
// <prefix><DD-MM-YYYY><ext> inside dir. A file is given its header row only
// when it is empty, so restarting mid-day keeps appending to the same file.
type CSV struct {
	dir    string
	prefix string
	ext    string
	fields []string
	log    *jww.Notepad

	date string
	path string
	f    *os.File
}

type Option func(*CSV)

func WithPrefix(prefix string) Option {
	return func(c *CSV) { c.prefix = prefix }
}

func WithExtension(ext string) Option {
	return func(c *CSV) { c.ext = ext }
}

func WithLog(log *jww.Notepad) Option {
	return func(c *CSV) { c.log = log }
}

func NewCSV(dir string, fields []string, opts ...Option) *CSV {
	c := &CSV{
		dir:    dir,
		prefix: "PM_",
		ext:    ".csv",
		fields: append([]string(nil), fields...),
		log:    jww.NewNotepad(jww.LevelError, jww.LevelError, io.Discard, io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Header returns the header row: Date, Time, then every field.
func (c *CSV) Header() []string {
	return append([]string{"Date", "Time"}, c.fields...)
}

// Filename returns the name of the file holding records of t's day.
func (c *CSV) Filename(t time.Time) string {
	return c.prefix + t.Format(fileDateLayout) + c.ext
}

// Path returns the currently open file, empty before the first Rotate.
func (c *CSV) Path() string {
	return c.path
}

// Rotate makes sure the file for t's day is the open one, creating it with
// a header if needed. Calling it again for the same day does nothing.
func (c *CSV) Rotate(t time.Time) error {
	date := t.Format(fileDateLayout)
	if c.f != nil && date == c.date {
		return nil
	}

	if err := c.Close(); err != nil {
		c.log.WARN.Printf("Closing %s: %v", c.path, err)
	}

	if err := os.MkdirAll(c.dir, 0755); err != nil {
		return err
	}
	path := filepath.Join(c.dir, c.Filename(t))
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return err
	}

	if info.Size() == 0 {
		if err := appendRow(f, c.Header()); err != nil {
			f.Close()
			return fmt.Errorf("write header to %s: %w", path, err)
		}
		c.log.INFO.Printf("[INFO] Header written to %s", path)
	} else {
		c.log.INFO.Printf("[INFO] Using existing file: %s", path)
	}

	c.f = f
	c.date = date
	c.path = path
	return nil
}

// Write appends one row for rec, rotating first if rec belongs to another
// day. The row is synced to disk before Write returns.
func (c *CSV) Write(rec data.Record) error {
	if err := c.Rotate(rec.TimeStamp); err != nil {
		return err
	}

	row := make([]string, 0, len(c.fields)+2)
	row = append(row, rec.TimeStamp.Format(rowDateLayout), rec.TimeStamp.Format(rowTimeLayout))
	for _, field := range c.fields {
		row = append(row, rec.Value(field))
	}

	if err := appendRow(c.f, row); err != nil {
		return fmt.Errorf("append to %s: %w", c.path, err)
	}
	return nil
}

func (c *CSV) Close() error {
	if c.f == nil {
		return nil
	}
	err := c.f.Close()
	c.f = nil
	c.date = ""
	return err
}

// appendRow encodes row and hands it to f in a single write.
func appendRow(f *os.File, row []string) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(row); err != nil {
		return err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	if _, err := f.Write(buf.Bytes()); err != nil {
		return err
	}
	return f.Sync()
}
