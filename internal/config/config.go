package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Meeting is a recording to inspect, identified by filename inside the
// meetings directory.
type Meeting struct {
	Filename string
	Label    string
}

// Config holds all configuration parameters for recdiag
type Config struct {
	// Meeting recordings
	MeetingsDir string
	Meetings    []Meeting

	// Snippet check
	SnippetsDir    string
	SnippetPattern string
	SnippetLimit   int

	// Expected output format of the recorder
	ExpectedRate     int // Hz
	ExpectedChannels int
}

// DefaultMeetings are the two recordings under investigation.
var DefaultMeetings = []Meeting{
	{Filename: "complete_recording_20260216_120130.wav", Label: "Meeting 1 (Feb 16, 12:01)"},
	{Filename: "complete_recording_20260215_132302.wav", Label: "Meeting 2 (Feb 15, 13:23)"},
}

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	dir := defaultMeetingsDir()

	meetings := make([]Meeting, len(DefaultMeetings))
	copy(meetings, DefaultMeetings)

	return &Config{
		MeetingsDir:      dir,
		Meetings:         meetings,
		SnippetsDir:      SnippetsDirFor(dir),
		SnippetPattern:   "snippet_20260216_*.wav",
		SnippetLimit:     3,
		ExpectedRate:     48000,
		ExpectedChannels: 2,
	}
}

func defaultMeetingsDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, "Documents", "Pilot", "summaries")
}

// SnippetsDirFor returns the snippets directory inside a meetings directory
func SnippetsDirFor(meetingsDir string) string {
	return filepath.Join(meetingsDir, "snippets")
}

// MeetingPath resolves a meeting filename against the meetings directory
func (c *Config) MeetingPath(m Meeting) string {
	return filepath.Join(c.MeetingsDir, m.Filename)
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.MeetingsDir == "" {
		return fmt.Errorf("meetings directory must not be empty")
	}

	if len(c.Meetings) == 0 {
		return fmt.Errorf("no meeting recordings specified")
	}

	for _, m := range c.Meetings {
		if m.Filename == "" {
			return fmt.Errorf("meeting %q has no filename", m.Label)
		}
	}

	if c.SnippetPattern == "" {
		return fmt.Errorf("snippet pattern must not be empty")
	}

	if _, err := filepath.Match(c.SnippetPattern, ""); err != nil {
		return fmt.Errorf("invalid snippet pattern %q: %w", c.SnippetPattern, err)
	}

	if c.SnippetLimit <= 0 {
		return fmt.Errorf("snippet limit must be positive")
	}

	if c.ExpectedRate <= 0 {
		return fmt.Errorf("expected sample rate must be positive")
	}

	if c.ExpectedChannels <= 0 {
		return fmt.Errorf("expected channel count must be positive")
	}

	return nil
}
