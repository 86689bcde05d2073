// Package report renders comparison results for humans.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/david/name-dictionary/internal/dictionary"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
)

var heading = color.New(color.FgCyan, color.Bold)

// Console writes each report section to W as plain text.
type Console struct {
	W       io.Writer
	Samples dictionary.SampleLimits
}

func NewConsole(w io.Writer, samples dictionary.SampleLimits) *Console {
	return &Console{W: w, Samples: samples}
}

func (c *Console) Comparison(cmp *dictionary.Comparison) {
	t := table.NewWriter()
	t.SetOutputMirror(c.W)
	t.AppendHeader(table.Row{"List", "Non-empty lines", "Unique normalized"})
	t.AppendRow(table.Row{"original", len(cmp.OrigLines), cmp.OrigSet.Len()})
	t.AppendRow(table.Row{"public", len(cmp.PubLines), cmp.PubSet.Len()})
	t.AppendFooter(table.Row{"Intersection", "", len(cmp.Intersection)})
	t.Render()

	fmt.Fprintln(c.W)
	heading.Fprintf(c.W, "names present in original but NOT in public: %d sample:\n", len(cmp.OnlyInOrig))
	c.numbered(cmp.OnlyInOrig)

	fmt.Fprintln(c.W)
	heading.Fprintf(c.W, "names present in public but NOT in original: %d sample:\n", len(cmp.OnlyInPub))
	c.numbered(cmp.OnlyInPub)
}

func (c *Console) MultiTokenLines(lines []string) {
	fmt.Fprintln(c.W)
	heading.Fprintf(c.W, "original lines containing multiple tokens (first %d): %d\n", c.Samples.MultiTokenLines, len(lines))
	for _, l := range head(lines, c.Samples.MultiTokenLines) {
		fmt.Fprintf(c.W, "- %s\n", l)
	}
}

func (c *Console) ExtraTokens(tokens []string) {
	fmt.Fprintln(c.W)
	heading.Fprintf(c.W, "unique tokens found in multi-token original lines: %d sample:\n", len(tokens))
	fmt.Fprintf(c.W, "[%s]\n", strings.Join(head(tokens, c.Samples.Tokens), ", "))
}

func (c *Console) SuggestionWritten(path string, entries int) {
	fmt.Fprintln(c.W)
	heading.Fprintf(c.W, "Wrote suggestion file at %s (%d entries)\n", path, entries)
}

func (c *Console) Surnames(stats dictionary.SurnameStats) {
	fmt.Fprintf(c.W, "potentially French entries in suggestion: %d/%d\n", stats.FrenchCount, stats.Total)
}

// numbered prints up to Samples.Diff entries, 1-indexed.
func (c *Console) numbered(entries []string) {
	for i, v := range head(entries, c.Samples.Diff) {
		fmt.Fprintf(c.W, "%3d. %s\n", i+1, v)
	}
}

func head(s []string, n int) []string {
	if n < len(s) {
		return s[:n]
	}
	return s
}
