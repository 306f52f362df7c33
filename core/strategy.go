package core

import "fmt"

// Strategy selects the compaction method applied to responses whose estimate
// exceeds their tier budget. It is a closed enumeration rather than a free
// string so invalid states are unrepresentable past the configuration
// boundary; ParseStrategy is that boundary.
type Strategy int

const (
	// StrategyIntelligent truncates on paragraph boundaries, keeping whole
	// paragraphs in original order until the budget is exhausted. Default.
	StrategyIntelligent Strategy = iota
	// StrategySimple cuts hard at the budget boundary ignoring structure.
	StrategySimple
	// StrategySummarizeAll applies extractive summarization to every tier,
	// including the most recent response, instead of truncating.
	StrategySummarizeAll
)

// Strategy names accepted by ParseStrategy and emitted by String.
const (
	strategyNameIntelligent  = "intelligent_truncation"
	strategyNameSimple       = "simple_truncation"
	strategyNameSummarizeAll = "summarization_only"
)

// String returns the configuration name of the strategy.
func (s Strategy) String() string {
	switch s {
	case StrategyIntelligent:
		return strategyNameIntelligent
	case StrategySimple:
		return strategyNameSimple
	case StrategySummarizeAll:
		return strategyNameSummarizeAll
	default:
		return "unknown"
	}
}

// ParseStrategy maps a configuration value to a Strategy. Unknown values fall
// back to StrategyIntelligent and return a wrapped ErrInvalidStrategy so the
// caller can log a warning; the fallback is always usable, never a hard
// failure.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case strategyNameIntelligent, "":
		return StrategyIntelligent, nil
	case strategyNameSimple:
		return StrategySimple, nil
	case strategyNameSummarizeAll:
		return StrategySummarizeAll, nil
	default:
		return StrategyIntelligent, fmt.Errorf("%w: %q", ErrInvalidStrategy, name)
	}
}
