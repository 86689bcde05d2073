package dictionary

import (
	"fmt"
	"os"
	"strings"
)

// MergeSuggestion returns the sorted union of the given sets.
func MergeSuggestion(sets ...LineSet) []string {
	return Union(sets...).Sorted()
}

// WriteSuggestion writes the sorted union of the public, original and extra token
// sets to outPath, one entry per line, replacing any existing file. The parent
// directory must already exist. It returns the entries written.
func WriteSuggestion(pubSet, origSet, extraTokens LineSet, outPath string) ([]string, error) {
	entries := MergeSuggestion(pubSet, origSet, extraTokens)
	if err := os.WriteFile(outPath, []byte(strings.Join(entries, "\n")), 0o644); err != nil {
		return nil, fmt.Errorf("failed to write suggestion file %s: %w", outPath, err)
	}
	return entries, nil
}
