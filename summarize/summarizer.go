package summarize

import (
	"sort"
	"strings"
	"unicode"

	"github.com/hupe1980/chainctx/core"
	"github.com/hupe1980/chainctx/token"
	"github.com/hupe1980/chainctx/truncate"
)

// DefaultIndicators are the importance indicator tokens that raise a
// sentence's score. Matching is case-insensitive substring containment.
var DefaultIndicators = []string{
	"conclusion",
	"result",
	"important",
	"therefore",
	"in summary",
	"final",
	"decision",
	"recommend",
	"key finding",
}

// Default scoring weights.
const (
	DefaultIndicatorWeight = 2
	DefaultNumericWeight   = 1
	DefaultPositionWeight  = 1
)

// Options configures a Summarizer.
type Options struct {
	// Indicators is the importance indicator word list. Defaults to
	// DefaultIndicators when empty.
	Indicators []string
	// IndicatorWeight is added when a sentence contains an indicator.
	IndicatorWeight int
	// NumericWeight is added when a sentence contains a numeric literal.
	NumericWeight int
	// PositionWeight is added to the first and last sentence of the text.
	PositionWeight int
	// Estimator approximates token counts. Defaults to the character
	// heuristic when nil.
	Estimator core.TokenEstimator
	// MarkerFormat overrides the truncation marker used when even the single
	// best sentence exceeds the budget.
	MarkerFormat string
}

// Summarizer produces extractive, deterministic digests. It holds no mutable
// state and is safe for concurrent use.
type Summarizer struct {
	indicators      []string
	indicatorWeight int
	numericWeight   int
	positionWeight  int
	estimator       core.TokenEstimator
	truncator       *truncate.Truncator
}

// New constructs a Summarizer with optional overrides.
func New(optFns ...func(o *Options)) *Summarizer {
	opts := Options{
		IndicatorWeight: DefaultIndicatorWeight,
		NumericWeight:   DefaultNumericWeight,
		PositionWeight:  DefaultPositionWeight,
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	if len(opts.Indicators) == 0 {
		opts.Indicators = DefaultIndicators
	}
	if opts.Estimator == nil {
		opts.Estimator = token.NewHeuristicEstimator()
	}

	lowered := make([]string, len(opts.Indicators))
	for i, ind := range opts.Indicators {
		lowered[i] = strings.ToLower(ind)
	}

	return &Summarizer{
		indicators:      lowered,
		indicatorWeight: opts.IndicatorWeight,
		numericWeight:   opts.NumericWeight,
		positionWeight:  opts.PositionWeight,
		estimator:       opts.Estimator,
		truncator: truncate.New(func(o *truncate.Options) {
			o.Estimator = opts.Estimator
			o.MarkerFormat = opts.MarkerFormat
		}),
	}
}

// scoredSentence pairs a sentence with its score and original position.
type scoredSentence struct {
	text     string
	position int
	score    int
}

// Summarize compresses text into a digest fitting budget tokens. Sentences
// are picked greedily by descending score (ties broken by original position,
// earliest first) until the next pick would overflow, then re-ordered into
// original chronological order. When even the single highest-scored sentence
// exceeds the budget it is hard-truncated with a marker; the second return
// value reports that case.
func (s *Summarizer) Summarize(text string, budget int) (string, bool) {
	sentences := SplitSentences(text)
	if len(sentences) == 0 {
		return "", false
	}

	scored := make([]scoredSentence, len(sentences))
	for i, sentence := range sentences {
		scored[i] = scoredSentence{text: sentence, position: i, score: s.score(sentence, i, len(sentences))}
	}

	byScore := make([]scoredSentence, len(scored))
	copy(byScore, scored)
	sort.SliceStable(byScore, func(i, j int) bool {
		if byScore[i].score != byScore[j].score {
			return byScore[i].score > byScore[j].score
		}
		return byScore[i].position < byScore[j].position
	})

	var selected []scoredSentence
	used := 0
	for _, cand := range byScore {
		cost := s.estimate(cand.text)
		if len(selected) > 0 {
			cost += s.estimate(" ")
		}
		if used+cost > budget {
			break
		}
		selected = append(selected, cand)
		used += cost
	}

	if len(selected) == 0 {
		// Even the single best sentence overflows: hard-truncate it.
		cut, _ := s.truncator.Simple(byScore[0].text, budget)
		return cut, true
	}

	// Summaries must read coherently: emit in original order, never score order.
	sort.Slice(selected, func(i, j int) bool { return selected[i].position < selected[j].position })

	parts := make([]string, len(selected))
	for i, sel := range selected {
		parts[i] = sel.text
	}
	return strings.Join(parts, " "), false
}

// score computes the heuristic importance of a sentence.
func (s *Summarizer) score(sentence string, position, total int) int {
	score := 0
	lowered := strings.ToLower(sentence)
	for _, ind := range s.indicators {
		if strings.Contains(lowered, ind) {
			score += s.indicatorWeight
			break
		}
	}
	if containsDigit(sentence) {
		score += s.numericWeight
	}
	if position == 0 || position == total-1 {
		score += s.positionWeight
	}
	return score
}

func (s *Summarizer) estimate(text string) int {
	n, err := s.estimator.Estimate(text)
	if err != nil || n < 0 {
		n = (len(text) + 3) / 4
	}
	return n
}

func containsDigit(text string) bool {
	for _, r := range text {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

// SplitSentences splits text into sentences on terminal punctuation followed
// by whitespace. Trailing text without terminal punctuation forms a final
// sentence. Empty sentences are dropped; original order is preserved.
func SplitSentences(text string) []string {
	var sentences []string
	var current strings.Builder

	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		current.WriteRune(r)
		if isTerminal(r) {
			// Consume run of terminal punctuation ("!?", "...").
			for i+1 < len(runes) && isTerminal(runes[i+1]) {
				i++
				current.WriteRune(runes[i])
			}
			if i+1 >= len(runes) || unicode.IsSpace(runes[i+1]) {
				if s := strings.TrimSpace(current.String()); s != "" {
					sentences = append(sentences, s)
				}
				current.Reset()
			}
		}
	}
	if s := strings.TrimSpace(current.String()); s != "" {
		sentences = append(sentences, s)
	}
	return sentences
}

func isTerminal(r rune) bool { return r == '.' || r == '!' || r == '?' }
