package report

import (
	"fmt"
	"io"

	"recdiag/internal/audio"
	"recdiag/internal/config"
)

// sourceRate is the rate the recorder captures its chunks at before
// resampling them for the final meeting file.
const sourceRate = 44100

// PrintAnalysis prints the resampling background. The text describes the
// recorder pipeline, not the files just measured.
func PrintAnalysis(w io.Writer, cfg *config.Config) {
	fmt.Fprintf(w, "The meeting recordings appear to be in the expected format:\n")
	fmt.Fprintf(w, "  • %d Hz sample rate\n", cfg.ExpectedRate)
	fmt.Fprintf(w, "  • %d channels (%s)\n\n", cfg.ExpectedChannels, audio.ChannelLayout(cfg.ExpectedChannels))

	fmt.Fprintf(w, "These were RESAMPLED by the application from the original %d Hz\n", sourceRate)
	fmt.Fprintf(w, "mono chunks. The resampling process:\n")
	fmt.Fprintf(w, "  1. Took %d Hz mono chunks\n", sourceRate)
	fmt.Fprintf(w, "  2. Converted to %d Hz %s for final output\n\n",
		cfg.ExpectedRate, audio.ChannelLayout(cfg.ExpectedChannels))
}

// PrintPlaybackTest lists every OK or WARN result for manual listening
func PrintPlaybackTest(w io.Writer, results []Result) {
	fmt.Fprintln(w, "PLAYBACK TEST NEEDED:")
	fmt.Fprintln(w, rule("-"))
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Please manually test the following files:\n\n")

	for _, res := range results {
		if !res.Status.Testable() {
			continue
		}
		fmt.Fprintf(w, "%s:\n", res.Label)
		fmt.Fprintf(w, "  %s\n\n", res.Path)
	}
}

// PrintGuidance explains how to interpret the three listening outcomes
func PrintGuidance(w io.Writer, cfg *config.Config) {
	fmt.Fprintf(w, "Listen for:\n")
	fmt.Fprintf(w, "  ✓ Normal speaking speed (not too fast)\n")
	fmt.Fprintf(w, "  ✓ Normal voice pitch (not high-pitched/chipmunk)\n")
	fmt.Fprintf(w, "  ✓ Clear audio quality\n\n")

	fmt.Fprintf(w, "If the audio sounds NORMAL:\n")
	fmt.Fprintf(w, "  → No repair needed! The app's resampling worked correctly.\n\n")

	fmt.Fprintf(w, "If the audio sounds TOO FAST (chipmunk effect):\n")
	fmt.Fprintf(w, "  → This would be unexpected given the resampling from %d→%d Hz\n", sourceRate, cfg.ExpectedRate)
	fmt.Fprintf(w, "  → Please report this so a repair can be prepared\n\n")

	fmt.Fprintf(w, "If the audio sounds TOO SLOW (deeper voices):\n")
	fmt.Fprintf(w, "  → This suggests the original chunks were actually %d Hz\n", cfg.ExpectedRate)
	fmt.Fprintf(w, "  → But were tagged as %d Hz, then resampled to %d Hz\n", sourceRate, cfg.ExpectedRate)
	fmt.Fprintf(w, "  → The recordings can be repaired by retagging the source rate\n\n")
}
