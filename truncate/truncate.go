package truncate

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/hupe1980/chainctx/core"
	"github.com/hupe1980/chainctx/token"
)

// DefaultMarkerFormat is the truncation marker appended to cut text. The
// single verb placeholder receives the estimated number of omitted tokens.
const DefaultMarkerFormat = "[content truncated: %d tokens omitted]"

// Options configures a Truncator.
type Options struct {
	// Estimator approximates token counts. Defaults to the character
	// heuristic when nil.
	Estimator core.TokenEstimator
	// MarkerFormat is the fmt string for the truncation marker; it must
	// contain exactly one %d verb for the omitted token count.
	MarkerFormat string
}

// Truncator bounds text to token budgets. It holds no mutable state and is
// safe for concurrent use.
type Truncator struct {
	estimator    core.TokenEstimator
	markerFormat string
}

// New constructs a Truncator with optional overrides.
func New(optFns ...func(o *Options)) *Truncator {
	opts := Options{MarkerFormat: DefaultMarkerFormat}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Estimator == nil {
		opts.Estimator = token.NewHeuristicEstimator()
	}
	if opts.MarkerFormat == "" {
		opts.MarkerFormat = DefaultMarkerFormat
	}
	return &Truncator{estimator: opts.Estimator, markerFormat: opts.MarkerFormat}
}

// Intelligent bounds text to budget by greedily keeping whole paragraphs in
// original order. The first paragraph that would overflow stops accumulation;
// it is never split. If the first paragraph alone exceeds the budget the text
// is hard-cut at the budget boundary instead. Returns the bounded text and
// whether truncation occurred.
func (t *Truncator) Intelligent(text string, budget int) (string, bool) {
	total := t.estimate(text)
	if total <= budget {
		return text, false
	}

	contentBudget := budget - t.estimate("\n"+fmt.Sprintf(t.markerFormat, total))
	if contentBudget <= 0 {
		return t.boundedMarker(total, budget), true
	}

	paragraphs := splitParagraphs(text)
	var kept []string
	used := 0
	for _, p := range paragraphs {
		// Separator cost between paragraphs is counted with the paragraph.
		cost := t.estimate(p)
		if len(kept) > 0 {
			cost += t.estimate("\n\n")
		}
		if used+cost > contentBudget {
			break
		}
		kept = append(kept, p)
		used += cost
	}

	if len(kept) == 0 {
		// First paragraph alone exceeds the budget: hard character cut.
		cut := t.hardCut(text, contentBudget, total)
		return cut + "\n" + t.marker(total-t.estimate(cut)), true
	}

	body := strings.Join(kept, "\n\n")
	return body + "\n" + t.marker(total-t.estimate(body)), true
}

// Simple bounds text to budget with a hard character-level cut at the budget
// boundary, ignoring paragraph structure. Returns the bounded text and
// whether truncation occurred.
func (t *Truncator) Simple(text string, budget int) (string, bool) {
	total := t.estimate(text)
	if total <= budget {
		return text, false
	}

	contentBudget := budget - t.estimate("\n"+fmt.Sprintf(t.markerFormat, total))
	if contentBudget <= 0 {
		return t.boundedMarker(total, budget), true
	}

	cut := t.hardCut(text, contentBudget, total)
	return cut + "\n" + t.marker(total-t.estimate(cut)), true
}

// hardCut shortens text so its estimate fits contentBudget, scaling the byte
// length proportionally to the token estimate and trimming to a rune
// boundary.
func (t *Truncator) hardCut(text string, contentBudget, totalTokens int) string {
	if totalTokens <= 0 {
		return text
	}
	cutBytes := len(text) * contentBudget / totalTokens
	if cutBytes <= 0 {
		return ""
	}
	if cutBytes >= len(text) {
		return text
	}
	for cutBytes > 0 && !utf8.RuneStart(text[cutBytes]) {
		cutBytes--
	}
	return text[:cutBytes]
}

// boundedMarker returns the truncation marker, itself cut down when the
// budget cannot hold the full marker. Degenerate budgets must still honor
// the segment-fits-allocation contract; a budget of zero yields empty text.
func (t *Truncator) boundedMarker(omitted, budget int) string {
	m := t.marker(omitted)
	if est := t.estimate(m); est > budget {
		return t.hardCut(m, budget, est)
	}
	return m
}

func (t *Truncator) marker(omitted int) string {
	if omitted < 0 {
		omitted = 0
	}
	return fmt.Sprintf(t.markerFormat, omitted)
}

func (t *Truncator) estimate(text string) int {
	n, err := t.estimator.Estimate(text)
	if err != nil || n < 0 {
		// Estimation failures are recovered with the character heuristic.
		n = (len(text) + 3) / 4
	}
	return n
}

// splitParagraphs splits text on blank-line boundaries, dropping empty
// paragraphs and preserving original order.
func splitParagraphs(text string) []string {
	raw := strings.Split(text, "\n\n")
	paragraphs := make([]string, 0, len(raw))
	for _, p := range raw {
		if strings.TrimSpace(p) == "" {
			continue
		}
		paragraphs = append(paragraphs, p)
	}
	return paragraphs
}
