// Package report runs the recording diagnostic and prints its narrative.
package report

import (
	"fmt"
	"io"
	"strings"

	"recdiag/internal/audio"
	"recdiag/internal/config"
)

const ruleWidth = 70

// Result is the outcome of inspecting one meeting recording. SampleRate and
// Channels are zero when Status is audio.StatusError.
type Result struct {
	Filename   string
	Label      string
	Path       string
	SampleRate int
	Channels   int
	Status     audio.Status
	Err        error
}

// Snippet is a recent snippet recording found by the secondary check
type Snippet struct {
	Name       string
	Path       string
	SampleRate int
	Channels   int
	Err        error
}

// Report collects everything a run observed
type Report struct {
	Results          []Result
	Missing          []string // labels of meetings whose file was not found
	SnippetsDirFound bool
	Snippets         []Snippet
}

// Testable returns the results that should be played back by hand
func (r *Report) Testable() []Result {
	var out []Result
	for _, res := range r.Results {
		if res.Status.Testable() {
			out = append(out, res)
		}
	}
	return out
}

// Run executes the full diagnostic, writing the narrative to w. It never
// fails: every problem is reported inline and recorded in the Report.
func Run(w io.Writer, cfg *config.Config) *Report {
	rep := &Report{}

	printBanner(w, "MEETING RECORDINGS DIAGNOSTIC")
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Checking meeting recordings...\n\n")
	rep.Results, rep.Missing = CheckMeetings(w, cfg)

	printBanner(w, "ANALYSIS:")
	fmt.Fprintln(w)
	PrintAnalysis(w, cfg)
	PrintPlaybackTest(w, rep.Results)
	PrintGuidance(w, cfg)

	fmt.Fprintln(w, rule("="))
	fmt.Fprintln(w)

	rep.SnippetsDirFound, rep.Snippets = CheckSnippets(w, cfg)

	fmt.Fprintln(w)
	printBanner(w, "Next step: Please test playback and report results!")

	return rep
}

func rule(ch string) string {
	return strings.Repeat(ch, ruleWidth)
}

func printBanner(w io.Writer, title string) {
	fmt.Fprintln(w, rule("="))
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, rule("="))
}
