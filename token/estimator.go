package token

import (
	"strings"

	"github.com/hupe1980/chainctx/core"
	"github.com/hupe1980/chainctx/logging"
)

// charsPerToken is the character-count heuristic divisor: roughly four
// characters of English text per token.
const charsPerToken = 4

// HeuristicEstimator approximates token counts as ceil(len(text)/4). It is
// the default estimator and the fallback used when a wrapped estimator fails.
type HeuristicEstimator struct{}

// NewHeuristicEstimator constructs the character-count heuristic estimator.
func NewHeuristicEstimator() *HeuristicEstimator { return &HeuristicEstimator{} }

// Estimate implements core.TokenEstimator. It never fails.
func (e *HeuristicEstimator) Estimate(text string) (int, error) {
	return (len(text) + charsPerToken - 1) / charsPerToken, nil
}

// WordEstimator approximates token counts from whitespace-delimited words
// (roughly four tokens per three words). It tracks real tokenizers more
// closely on prose with long words than the character heuristic does.
type WordEstimator struct{}

// NewWordEstimator constructs the word-count estimator.
func NewWordEstimator() *WordEstimator { return &WordEstimator{} }

// Estimate implements core.TokenEstimator. It never fails.
func (e *WordEstimator) Estimate(text string) (int, error) {
	words := len(strings.Fields(text))
	return (words*4 + 2) / 3, nil
}

// SafeEstimator wraps another estimator and recovers from its failures by
// substituting the character-count heuristic. Each fallback is logged as a
// warning; estimation is never surfaced as an error to callers.
type SafeEstimator struct {
	inner    core.TokenEstimator
	fallback *HeuristicEstimator
	logger   logging.Logger
}

// NewSafeEstimator wraps inner with heuristic fallback. A nil inner or nil
// logger is substituted with the heuristic estimator / NoOpLogger.
func NewSafeEstimator(inner core.TokenEstimator, logger logging.Logger) *SafeEstimator {
	if inner == nil {
		inner = NewHeuristicEstimator()
	}
	if logger == nil {
		logger = logging.NoOpLogger{}
	}
	return &SafeEstimator{inner: inner, fallback: NewHeuristicEstimator(), logger: logger}
}

// Estimate implements core.TokenEstimator. It never fails.
func (e *SafeEstimator) Estimate(text string) (int, error) {
	n, err := e.inner.Estimate(text)
	if err != nil {
		e.logger.Warn("token estimation failed, using character heuristic", "error", err)
		return e.fallback.Estimate(text)
	}
	if n < 0 {
		e.logger.Warn("token estimator returned negative count, using character heuristic", "count", n)
		return e.fallback.Estimate(text)
	}
	return n, nil
}
