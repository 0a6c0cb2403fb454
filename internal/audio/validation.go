package audio

import (
	"fmt"
	"io"
)

// Status is the outcome of checking a recording against the expected format
type Status string

const (
	StatusOK    Status = "OK"
	StatusWarn  Status = "WARN"
	StatusError Status = "ERROR"
)

// Testable reports whether a recording with this status should be played back
func (s Status) Testable() bool {
	return s == StatusOK || s == StatusWarn
}

// ExpectedFormat is the sample rate and channel count a recording should have
type ExpectedFormat struct {
	SampleRate int
	Channels   int
}

// Classify returns StatusOK only when both rate and channel count match
func (e ExpectedFormat) Classify(h *Header) Status {
	if h.SampleRate == e.SampleRate && h.Channels == e.Channels {
		return StatusOK
	}
	return StatusWarn
}

// PrintStatus displays the classification and, on mismatch, both formats
func (e ExpectedFormat) PrintStatus(w io.Writer, h *Header, status Status) {
	if status == StatusOK {
		fmt.Fprintf(w, "  Status: [OK] Correct format\n")
		return
	}

	fmt.Fprintf(w, "  Status: [WARN] Unexpected format\n")
	fmt.Fprintf(w, "    Expected: %d Hz, %d channels\n", e.SampleRate, e.Channels)
	fmt.Fprintf(w, "    Got: %d Hz, %d channels\n", h.SampleRate, h.Channels)
}
