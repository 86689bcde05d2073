package dictionary

import "strings"

var (
	frenchPrefixes = []string{"le ", "la ", "du ", "de "}
	frenchSuffixes = []string{"eau", "eux", "ier"}
)

// IsPotentiallyFrench flags names with common French particles or endings.
// It is a rough hint, not a classifier.
func IsPotentiallyFrench(name string) bool {
	lower := strings.ToLower(name)
	for _, p := range frenchPrefixes {
		if strings.HasPrefix(lower, p) {
			return true
		}
	}
	for _, s := range frenchSuffixes {
		if strings.HasSuffix(lower, s) {
			return true
		}
	}
	return false
}

func AnalyzeSurnames(surnames []string) SurnameStats {
	stats := SurnameStats{Total: len(surnames)}
	for _, s := range surnames {
		if IsPotentiallyFrench(s) {
			stats.FrenchCount++
		}
	}
	return stats
}
