package audio

import (
	"fmt"
	"io"
	"path/filepath"
)

// DurationMinutes converts a frame count at the given sample rate to minutes.
// A non-positive rate yields 0.
func DurationMinutes(frames int64, sampleRate int) float64 {
	if sampleRate <= 0 {
		return 0
	}
	return float64(frames) / float64(sampleRate) / 60
}

// ChannelLayout names common channel counts
func ChannelLayout(channels int) string {
	switch channels {
	case 1:
		return "mono"
	case 2:
		return "stereo"
	default:
		return fmt.Sprintf("%d channels", channels)
	}
}

// PrintInfo displays the header fields of a recording under a label
func (h *Header) PrintInfo(w io.Writer, label string) {
	fmt.Fprintf(w, "[%s]\n", label)
	fmt.Fprintf(w, "  File: %s\n", filepath.Base(h.Path))
	fmt.Fprintf(w, "  Sample Rate: %d Hz\n", h.SampleRate)
	fmt.Fprintf(w, "  Channels: %d\n", h.Channels)
	fmt.Fprintf(w, "  Duration: %.1f minutes\n", h.DurationMinutes())
	fmt.Fprintf(w, "  Size: %.1f MB\n", h.SizeMB())
}
