package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/david/name-dictionary/internal/dictionary"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func newTestConsole(t *testing.T, samples dictionary.SampleLimits) (*Console, *bytes.Buffer) {
	t.Helper()
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })

	var buf bytes.Buffer
	return NewConsole(&buf, samples), &buf
}

func TestConsole_Comparison(t *testing.T) {
	c, buf := newTestConsole(t, dictionary.SampleLimits{Diff: 50, MultiTokenLines: 20, Tokens: 50})

	c.Comparison(dictionary.CompareLines([]string{"Ana", "Ana Maria", "Zoe", "Zoe"}, []string{"ana", "zoe", "Olga"}))
	out := buf.String()

	assert.Contains(t, out, "original")
	assert.Contains(t, out, "public")
	assert.Contains(t, out, "names present in original but NOT in public: 1 sample:\n  1. ana maria\n")
	assert.Contains(t, out, "names present in public but NOT in original: 1 sample:\n  1. olga\n")
}

func TestConsole_DiffSampleLimit(t *testing.T) {
	c, buf := newTestConsole(t, dictionary.SampleLimits{Diff: 2})

	c.Comparison(dictionary.CompareLines([]string{"a", "b", "c"}, nil))
	out := buf.String()

	assert.Contains(t, out, "names present in original but NOT in public: 3 sample:")
	assert.Contains(t, out, "  1. a\n")
	assert.Contains(t, out, "  2. b\n")
	assert.NotContains(t, out, "  3. c")
}

func TestConsole_MultiTokenLines(t *testing.T) {
	c, buf := newTestConsole(t, dictionary.SampleLimits{MultiTokenLines: 1})

	c.MultiTokenLines([]string{"John Smith", "Name Country"})
	out := buf.String()

	assert.Contains(t, out, "original lines containing multiple tokens (first 1): 2\n")
	assert.Contains(t, out, "- John Smith\n")
	assert.NotContains(t, out, "Name Country")
}

func TestConsole_ExtraTokens(t *testing.T) {
	c, buf := newTestConsole(t, dictionary.SampleLimits{Tokens: 2})

	c.ExtraTokens([]string{"john", "mary", "smith"})
	out := buf.String()

	assert.Contains(t, out, "unique tokens found in multi-token original lines: 3 sample:\n[john, mary]\n")
}

func TestConsole_SuggestionAndSurnames(t *testing.T) {
	c, buf := newTestConsole(t, dictionary.SampleLimits{})

	c.SuggestionWritten("public/out.txt", 7)
	c.Surnames(dictionary.SurnameStats{FrenchCount: 2, Total: 7})
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")

	assert.Equal(t, []string{
		"Wrote suggestion file at public/out.txt (7 entries)",
		"potentially French entries in suggestion: 2/7",
	}, lines)
}

func TestNewTestConsole_RestoresColorSetting(t *testing.T) {
	prev := color.NoColor
	t.Cleanup(func() { color.NoColor = prev })
	color.NoColor = false

	t.Run("plain output", func(t *testing.T) {
		c, buf := newTestConsole(t, dictionary.SampleLimits{})
		c.SuggestionWritten("out.txt", 1)
		assert.Equal(t, "\nWrote suggestion file at out.txt (1 entries)\n", buf.String())
	})

	assert.False(t, color.NoColor)
}
