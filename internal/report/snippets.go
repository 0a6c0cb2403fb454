package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"recdiag/internal/audio"
	"recdiag/internal/config"
)

// RecentSnippets globs dir for pattern and returns at most limit paths,
// lexically greatest first. Snippet names carry a timestamp, so this is
// newest first.
func RecentSnippets(dir, pattern string, limit int) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return nil, fmt.Errorf("failed to glob %s in %s: %w", pattern, dir, err)
	}

	sort.Sort(sort.Reverse(sort.StringSlice(matches)))

	if len(matches) > limit {
		matches = matches[:limit]
	}

	return matches, nil
}

// CheckSnippets prints the format of the most recent snippets. It returns
// whether the snippets directory exists and what was inspected.
func CheckSnippets(w io.Writer, cfg *config.Config) (bool, []Snippet) {
	fmt.Fprintln(w, "SNIPPETS CHECK:")
	fmt.Fprintln(w, rule("-"))
	fmt.Fprintln(w)

	if _, err := os.Stat(cfg.SnippetsDir); err != nil {
		fmt.Fprintln(w, "[WARNING] Snippets directory not found!")
		return false, nil
	}

	paths, err := RecentSnippets(cfg.SnippetsDir, cfg.SnippetPattern, cfg.SnippetLimit)
	if err != nil {
		fmt.Fprintf(w, "[ERROR] %v\n", err)
		return true, nil
	}

	if len(paths) == 0 {
		fmt.Fprintf(w, "No recent snippets found matching %s.\n", cfg.SnippetPattern)
		return true, nil
	}

	fmt.Fprintf(w, "Recent snippets (check these too):\n\n")

	snippets := make([]Snippet, 0, len(paths))
	for _, path := range paths {
		s := Snippet{Name: filepath.Base(path), Path: path}
		fmt.Fprintf(w, "  %s\n", s.Name)

		h, err := audio.ReadHeader(path)
		if err != nil {
			s.Err = err
			fmt.Fprintf(w, "    [ERROR] %v\n", err)
		} else {
			s.SampleRate = h.SampleRate
			s.Channels = h.Channels
			fmt.Fprintf(w, "    %d Hz, %dch\n", h.SampleRate, h.Channels)
		}

		snippets = append(snippets, s)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Snippets are typically resampled to 16000 Hz for AI processing.")
	fmt.Fprintln(w, "They should sound normal when played back.")

	return true, snippets
}
