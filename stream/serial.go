// Copyright © 2026 Geoff Holden <geoff@geoffholden.com>

package stream

import (
	"io"
	"os"

	"github.com/tarm/serial"
)

// OpenSerial opens a serial port. A regular file is opened as is, which
// allows replaying a captured stream.
func OpenSerial(address string, baud int) (io.ReadCloser, error) {
	if IsRegularFile(address) {
		return os.Open(address)
	}

	c := &serial.Config{
		Name: address,
		Baud: baud,
	}
	s, err := serial.OpenPort(c)
	if err != nil {
		return nil, err
	}
	s.Flush()
	return s, nil
}

func IsRegularFile(address string) bool {
	fi, err := os.Stat(address)
	if err != nil {
		return false
	}
	return fi.Mode().IsRegular()
}
