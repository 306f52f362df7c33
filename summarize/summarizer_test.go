package summarize

import (
	"strings"
	"testing"

	"github.com/hupe1980/chainctx/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitSentences(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected []string
	}{
		{
			"terminal punctuation",
			"Hello world. Second sentence! Third one? Done.",
			[]string{"Hello world.", "Second sentence!", "Third one?", "Done."},
		},
		{
			"trailing text without terminator",
			"First sentence. trailing fragment",
			[]string{"First sentence.", "trailing fragment"},
		},
		{
			"ellipsis stays together",
			"Wait for it... And then it happened.",
			[]string{"Wait for it...", "And then it happened."},
		},
		{
			"decimal numbers not split",
			"The value was 3.14 exactly. Next sentence.",
			[]string{"The value was 3.14 exactly.", "Next sentence."},
		},
		{"empty", "", nil},
		{"whitespace only", "   \n  ", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SplitSentences(tt.text))
		})
	}
}

const sampleText = "The experiment began early. " +
	"Filler sentence with nothing special here. " +
	"The result was 42 percent improvement. " +
	"More filler text goes here. " +
	"In conclusion, 90 percent of runs improved."

func TestSummarizer_PicksHighScoringSentences(t *testing.T) {
	s := New()

	got, truncated := s.Summarize(sampleText, 25)

	assert.False(t, truncated)
	assert.Contains(t, got, "result was 42")
	assert.Contains(t, got, "In conclusion")
	assert.NotContains(t, got, "Filler sentence")
}

func TestSummarizer_OutputInChronologicalOrder(t *testing.T) {
	s := New()

	// The final sentence outscores the middle one (indicator + numeric +
	// position) and is selected first, but must still appear last.
	got, _ := s.Summarize(sampleText, 25)

	resultIdx := strings.Index(got, "The result was 42")
	conclusionIdx := strings.Index(got, "In conclusion")
	require.GreaterOrEqual(t, resultIdx, 0)
	require.GreaterOrEqual(t, conclusionIdx, 0)
	assert.Less(t, resultIdx, conclusionIdx)
}

func TestSummarizer_NumericBonus(t *testing.T) {
	// Positional bonus disabled so the numeric literal is the only signal.
	s := New(func(o *Options) { o.PositionWeight = 0 })

	text := "Alpha filler sentence one. Latency dropped to 12 ms overall. Beta filler sentence two."
	got, _ := s.Summarize(text, 10)

	assert.Contains(t, got, "12 ms")
}

func TestSummarizer_TruncatesOversizedBestSentence(t *testing.T) {
	s := New()

	text := strings.Repeat("unbroken run of words with no terminal punctuation ", 20)
	got, truncated := s.Summarize(text, 15)

	assert.True(t, truncated)
	assert.Contains(t, got, "[content truncated:")
	assert.Less(t, len(got), len(text))
}

func TestSummarizer_TinyBudgetStaysWithinAllocation(t *testing.T) {
	s := New()

	// Budget smaller than the truncation marker itself: even the marker must
	// be cut so the digest honors its allocation.
	text := strings.Repeat("word ", 200)
	got, truncated := s.Summarize(text, 3)

	assert.True(t, truncated)
	est, err := token.NewHeuristicEstimator().Estimate(got)
	require.NoError(t, err)
	assert.LessOrEqual(t, est, 3)
}

func TestSummarizer_EmptyInput(t *testing.T) {
	s := New()

	got, truncated := s.Summarize("", 100)
	assert.Empty(t, got)
	assert.False(t, truncated)
}

func TestSummarizer_Deterministic(t *testing.T) {
	s := New()

	first, _ := s.Summarize(sampleText, 25)
	second, _ := s.Summarize(sampleText, 25)

	assert.Equal(t, first, second)
}

func TestSummarizer_CustomIndicators(t *testing.T) {
	s := New(func(o *Options) {
		o.Indicators = []string{"verdict"}
		o.IndicatorWeight = 5
	})

	text := "Plain opening sentence here. The verdict favors option two. Plain closing sentence here."
	got, _ := s.Summarize(text, 8)

	assert.Contains(t, got, "verdict")
}

func TestSummarizer_CustomWeightsDisablePositionBonus(t *testing.T) {
	s := New(func(o *Options) { o.PositionWeight = 0 })

	// With no positional bonus only the indicator sentence scores.
	text := "Opening filler sentence words. Therefore the fix works. Closing filler sentence words."
	got, _ := s.Summarize(text, 7)

	assert.Contains(t, got, "Therefore")
	assert.NotContains(t, got, "Opening")
}
