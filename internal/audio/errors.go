package audio

import (
	"errors"
	"fmt"
)

var (
	ErrNotWAV              = errors.New("not a RIFF/WAVE file")
	ErrMalformedHeader     = errors.New("malformed WAV header")
	ErrUnsupportedEncoding = errors.New("unsupported WAV encoding")
	ErrMissingPCMData      = errors.New("missing PCM data chunk")
	ErrTruncated           = errors.New("truncated WAV file")
)

// HeaderError reports a failure to decode the header of a recording.
// Err is one of the sentinel errors above, possibly wrapped with detail.
type HeaderError struct {
	Path string
	Err  error
}

func (e *HeaderError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *HeaderError) Unwrap() error {
	return e.Err
}
