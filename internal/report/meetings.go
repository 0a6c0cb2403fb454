package report

import (
	"fmt"
	"io"
	"os"

	"recdiag/internal/audio"
	"recdiag/internal/config"
)

// CheckMeetings inspects every configured meeting in order. Missing files
// are reported and skipped; unreadable ones are recorded with StatusError.
func CheckMeetings(w io.Writer, cfg *config.Config) ([]Result, []string) {
	expected := audio.ExpectedFormat{SampleRate: cfg.ExpectedRate, Channels: cfg.ExpectedChannels}

	var results []Result
	var missing []string

	for _, m := range cfg.Meetings {
		path := cfg.MeetingPath(m)

		if _, err := os.Stat(path); os.IsNotExist(err) {
			fmt.Fprintf(w, "[WARNING] %s: File not found!\n", m.Label)
			fmt.Fprintf(w, "  Expected: %s\n\n", path)
			missing = append(missing, m.Label)
			continue
		}

		results = append(results, checkMeeting(w, m, path, expected))
		fmt.Fprintln(w)
	}

	return results, missing
}

func checkMeeting(w io.Writer, m config.Meeting, path string, expected audio.ExpectedFormat) Result {
	h, err := audio.ReadHeader(path)
	if err != nil {
		fmt.Fprintf(w, "[ERROR] %s: %v\n", m.Label, err)
		return Result{
			Filename: m.Filename,
			Label:    m.Label,
			Path:     path,
			Status:   audio.StatusError,
			Err:      err,
		}
	}

	h.PrintInfo(w, m.Label)

	status := expected.Classify(h)
	expected.PrintStatus(w, h, status)

	return Result{
		Filename:   m.Filename,
		Label:      m.Label,
		Path:       path,
		SampleRate: h.SampleRate,
		Channels:   h.Channels,
		Status:     status,
	}
}
