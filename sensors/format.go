// Copyright © 2026 Geoff Holden <geoff@geoffholden.com>

package sensors

import (
	"bytes"
	"errors"
	"strings"
)

// FrameFormat declares how a sensor frames its payload: an optional leading
// label, the token delimiter and the fewest tokens a complete frame carries.
// Frames always end in "\n", optionally preceded by "\r".
type FrameFormat struct {
	Prefix    string
	Delimiter string
	MinTokens int
}

func (f FrameFormat) Validate() error {
	if f.Delimiter == "" {
		return errors.New("frame format: empty delimiter")
	}
	if f.MinTokens < 2 || f.MinTokens%2 != 0 {
		return errors.New("frame format: minimum token count must be a positive even number")
	}
	if strings.Contains(f.Prefix, "\n") {
		return errors.New("frame format: prefix contains a newline")
	}
	return nil
}

// Payload strips the frame terminator and the declared prefix, if present.
func (f FrameFormat) Payload(frame []byte) []byte {
	p := bytes.TrimRight(frame, "\r\n")
	p = bytes.TrimSpace(p)
	if f.Prefix != "" {
		p = bytes.TrimPrefix(p, []byte(f.Prefix))
	}
	return bytes.TrimSpace(p)
}

// Tokens splits a payload on the delimiter.
func (f FrameFormat) Tokens(payload []byte) []string {
	if len(payload) == 0 {
		return nil
	}
	return strings.Split(string(payload), f.Delimiter)
}
