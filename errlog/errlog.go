// Copyright © 2026 Geoff Holden <geoff@geoffholden.com>

package errlog

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"

	jww "github.com/spf13/jwalterweatherman"
)

// DefaultName is the error log's file name inside the logs directory.
const DefaultName = "pm_error_log.txt"

// File is an append-only log file that is only created, along with its
// directory, on the first write.
type File struct {
	Path string

	mu sync.Mutex
	f  *os.File
}

func (l *File) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.f == nil {
		if err := os.MkdirAll(filepath.Dir(l.Path), 0755); err != nil {
			return 0, err
		}
		f, err := os.OpenFile(l.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return 0, err
		}
		l.f = f
	}
	return l.f.Write(p)
}

func (l *File) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.f == nil {
		return nil
	}
	err := l.f.Close()
	l.f = nil
	return err
}

// NewNotepad returns the logger shared by every component: INFO and above
// (TRACE and above when verbose) on stdout, ERROR and above also appended
// to logFile with a timestamp.
func NewNotepad(stdout io.Writer, logFile io.Writer, verbose bool) *jww.Notepad {
	threshold := jww.LevelInfo
	if verbose {
		threshold = jww.LevelTrace
	}
	return jww.NewNotepad(threshold, jww.LevelError, stdout, logFile, "", log.Ldate|log.Ltime)
}

// Discard returns a Notepad that drops everything.
func Discard() *jww.Notepad {
	return jww.NewNotepad(jww.LevelCritical, jww.LevelCritical, io.Discard, io.Discard, "", 0)
}
