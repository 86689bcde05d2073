package dictionary

import "strings"

// Compare loads both lists and computes their normalized differences and overlap.
func Compare(origPath, pubPath string) (*Comparison, error) {
	origLines, err := LoadLines(origPath)
	if err != nil {
		return nil, err
	}
	pubLines, err := LoadLines(pubPath)
	if err != nil {
		return nil, err
	}
	return CompareLines(origLines, pubLines), nil
}

// CompareLines is Compare over lines that are already loaded.
func CompareLines(origLines, pubLines []string) *Comparison {
	origSet := NewLineSet(origLines)
	pubSet := NewLineSet(pubLines)

	return &Comparison{
		OrigLines:    origLines,
		PubLines:     pubLines,
		OrigSet:      origSet,
		PubSet:       pubSet,
		OnlyInOrig:   origSet.Difference(pubSet).Sorted(),
		OnlyInPub:    pubSet.Difference(origSet).Sorted(),
		Intersection: origSet.Intersection(pubSet).Sorted(),
	}
}

// DetectMultiTokenLines returns the raw lines that hold more than one
// whitespace-separated token and at least one letter. Such rows are often table
// headers or several names pasted together, but a genuine multi-word name matches too.
func DetectMultiTokenLines(lines []string) []string {
	var out []string
	for _, l := range lines {
		if len(strings.Fields(l)) > 1 && hasLetter(l) {
			out = append(out, l)
		}
	}
	return out
}

// ExtractExtraTokens splits each line on whitespace and normalizes every token.
func ExtractExtraTokens(lines []string) LineSet {
	tokens := make(LineSet)
	for _, l := range lines {
		for _, tok := range strings.Fields(l) {
			tokens.Add(Normalize(tok))
		}
	}
	return tokens
}
