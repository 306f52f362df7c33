package assemble

import (
	"github.com/hupe1980/chainctx/budget"
	"github.com/hupe1980/chainctx/core"
	"github.com/hupe1980/chainctx/logging"
	"github.com/hupe1980/chainctx/summarize"
	"github.com/hupe1980/chainctx/token"
	"github.com/hupe1980/chainctx/truncate"
)

// Config controls one Process invocation. It is threaded as an explicit
// parameter rather than assembler-wide mutable state, preserving
// per-conversation reentrancy.
type Config struct {
	// Enabled toggles compaction. When false every response is returned
	// unmodified and the caller bears the overflow risk.
	Enabled bool
	// Strategy selects the compaction method for recent tiers. Older-tier
	// responses are always summarized first regardless of strategy.
	Strategy core.Strategy
}

// Options configures an Assembler. Nil components are substituted with
// defaults so the zero configuration is fully usable.
type Options struct {
	Planner    *budget.Planner
	Allocator  *budget.Allocator
	Truncator  *truncate.Truncator
	Summarizer *summarize.Summarizer
	Estimator  core.TokenEstimator
	Logger     logging.Logger
}

// Assembler converts an ordered response history into budget-compliant
// segments. It holds no shared mutable state and is safe for concurrent use
// across independent conversations.
type Assembler struct {
	planner    *budget.Planner
	allocator  *budget.Allocator
	truncator  *truncate.Truncator
	summarizer *summarize.Summarizer
	estimator  core.TokenEstimator
	logger     logging.Logger
}

// New constructs an Assembler with optional overrides.
func New(optFns ...func(o *Options)) *Assembler {
	opts := Options{}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Planner == nil {
		opts.Planner = budget.NewPlanner()
	}
	if opts.Allocator == nil {
		opts.Allocator = budget.NewAllocator()
	}
	if opts.Estimator == nil {
		opts.Estimator = token.NewHeuristicEstimator()
	}
	if opts.Truncator == nil {
		opts.Truncator = truncate.New(func(o *truncate.Options) { o.Estimator = opts.Estimator })
	}
	if opts.Summarizer == nil {
		opts.Summarizer = summarize.New(func(o *summarize.Options) { o.Estimator = opts.Estimator })
	}
	if opts.Logger == nil {
		opts.Logger = logging.NoOpLogger{}
	}
	return &Assembler{
		planner:    opts.Planner,
		allocator:  opts.Allocator,
		truncator:  opts.Truncator,
		summarizer: opts.Summarizer,
		estimator:  opts.Estimator,
		logger:     opts.Logger,
	}
}

// Process converts the ordered response history (oldest first) into the
// ordered list of bounded segments for the given window profile and config.
//
// Disabled compaction passes every response through verbatim. Otherwise a
// fresh allocation plan is derived and each response is compacted by the
// method its tier and the configured strategy select:
//
//   - a response whose estimate already fits its budget passes through
//     unchanged regardless of strategy
//   - older-tier responses are always summarized first, never truncated
//     verbatim, since truncation of stale content keeps arbitrary prefixes
//     and discards conclusions and final values
//   - StrategySummarizeAll summarizes every tier
//   - otherwise the configured truncation method applies.
//
// The only error condition is core.ErrInsufficientCapacity: the window's
// reserved overhead alone exceeds its capacity.
func (a *Assembler) Process(responses []core.AgentResponse, window core.WindowProfile, cfg Config) ([]core.BoundedSegment, error) {
	if !cfg.Enabled {
		segments := make([]core.BoundedSegment, len(responses))
		for i, resp := range responses {
			segments[i] = passThrough(resp)
		}
		return segments, nil
	}

	historyBudget, err := a.planner.HistoryBudget(window)
	if err != nil {
		return nil, err
	}

	plan := a.allocator.Plan(historyBudget, len(responses))
	a.logger.Debug("allocation plan derived",
		"history_budget", historyBudget,
		"responses", len(responses),
		"planned_total", plan.TotalBudget(),
	)

	segments := make([]core.BoundedSegment, len(responses))
	for i, resp := range responses {
		segments[i] = a.compact(resp, plan.Tiers[i], plan.Budgets[i], cfg.Strategy)
	}
	return segments, nil
}

// compact applies the tier-appropriate compaction method to one response.
func (a *Assembler) compact(resp core.AgentResponse, tier core.Tier, allocated int, strategy core.Strategy) core.BoundedSegment {
	estimated := a.estimate(resp.Text)
	if estimated <= allocated {
		return passThrough(resp)
	}

	seg := core.BoundedSegment{Index: resp.Index, ProducerID: resp.ProducerID}

	switch {
	case tier == core.TierOlder || strategy == core.StrategySummarizeAll:
		seg.Text, seg.Truncated = a.summarizer.Summarize(resp.Text, allocated)
		seg.Summarized = true
	case strategy == core.StrategySimple:
		seg.Text, seg.Truncated = a.truncator.Simple(resp.Text, allocated)
	default:
		seg.Text, seg.Truncated = a.truncator.Intelligent(resp.Text, allocated)
	}

	if cl, ok := a.logger.(*logging.ChainLogger); ok {
		cl.LogCompaction(resp.Index, tier.String(), allocated, estimated, seg.Truncated, seg.Summarized)
	} else {
		a.logger.Debug("response compacted",
			"index", resp.Index,
			"tier", tier.String(),
			"budget_tokens", allocated,
			"estimated_tokens", estimated,
			"truncated", seg.Truncated,
			"summarized", seg.Summarized,
		)
	}
	return seg
}

func (a *Assembler) estimate(text string) int {
	n, err := a.estimator.Estimate(text)
	if err != nil || n < 0 {
		a.logger.Warn("token estimation failed, using character heuristic", "error", err)
		n = (len(text) + 3) / 4
	}
	return n
}

func passThrough(resp core.AgentResponse) core.BoundedSegment {
	return core.BoundedSegment{Index: resp.Index, ProducerID: resp.ProducerID, Text: resp.Text}
}
