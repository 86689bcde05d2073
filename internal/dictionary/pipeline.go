package dictionary

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
)

// RunStats summarizes a completed comparison run.
type RunStats struct {
	RunID           string
	OrigLines       int
	PubLines        int
	OnlyInOrig      int
	OnlyInPub       int
	Intersection    int
	MultiTokenLines int
	ExtraTokens     int
	Written         int
	OutputPath      string
	Duration        time.Duration
}

type Pipeline struct {
	Config   *Config
	Reporter Reporter
}

func NewPipeline(cfg *Config, reporter Reporter) *Pipeline {
	return &Pipeline{
		Config:   cfg,
		Reporter: reporter,
	}
}

// Run compares the configured lists, reports every stage and writes the merged
// suggestion file. The first error aborts the run.
func (p *Pipeline) Run() (RunStats, error) {
	start := time.Now()
	stats := RunStats{RunID: uuid.NewString(), OutputPath: p.Config.OutputPath}
	log.Printf("[%s] Comparing %q against %q", stats.RunID, p.Config.OriginalPath, p.Config.PublicPath)

	// 1. Load, normalize, compare
	cmp, err := Compare(p.Config.OriginalPath, p.Config.PublicPath)
	if err != nil {
		return stats, fmt.Errorf("compare error: %w", err)
	}
	stats.OrigLines = len(cmp.OrigLines)
	stats.PubLines = len(cmp.PubLines)
	stats.OnlyInOrig = len(cmp.OnlyInOrig)
	stats.OnlyInPub = len(cmp.OnlyInPub)
	stats.Intersection = len(cmp.Intersection)
	p.Reporter.Comparison(cmp)

	// 2. Heuristic split of rows holding several names
	multi := DetectMultiTokenLines(cmp.OrigLines)
	stats.MultiTokenLines = len(multi)
	p.Reporter.MultiTokenLines(multi)

	extra := ExtractExtraTokens(multi)
	stats.ExtraTokens = extra.Len()
	p.Reporter.ExtraTokens(extra.Sorted())

	// 3. Merge and write
	entries, err := WriteSuggestion(cmp.PubSet, cmp.OrigSet, extra, p.Config.OutputPath)
	if err != nil {
		return stats, err
	}
	stats.Written = len(entries)
	p.Reporter.SuggestionWritten(p.Config.OutputPath, len(entries))
	p.Reporter.Surnames(AnalyzeSurnames(entries))

	stats.Duration = time.Since(start)
	log.Printf("[%s] Run complete: %d entries written to %s in %s",
		stats.RunID, stats.Written, stats.OutputPath, stats.Duration.Round(time.Millisecond))
	return stats, nil
}
