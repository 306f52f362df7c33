package budget

import (
	"fmt"
	"math"

	"github.com/hupe1980/chainctx/core"
)

// DefaultHistoryShare is the fraction of post-overhead window capacity
// reserved for historical agent output. The remaining 40% backs instructions,
// the current message and output space.
const DefaultHistoryShare = 0.6

// PlannerOptions configures a Planner.
type PlannerOptions struct {
	// HistoryShare is the fraction of post-overhead capacity allocated to
	// history. Must be in (0, 1]; out-of-range values are clamped to the
	// default.
	HistoryShare float64
}

// Planner derives the token budget available for historical agent output
// from a window profile.
type Planner struct {
	share float64
}

// NewPlanner constructs a Planner with optional overrides.
func NewPlanner(optFns ...func(o *PlannerOptions)) *Planner {
	opts := PlannerOptions{HistoryShare: DefaultHistoryShare}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.HistoryShare <= 0 || opts.HistoryShare > 1 {
		opts.HistoryShare = DefaultHistoryShare
	}
	return &Planner{share: opts.HistoryShare}
}

// HistoryBudget returns the tokens available for historical responses:
// round(share * (capacity - overhead)). It fails with
// core.ErrInsufficientCapacity when the overhead alone meets or exceeds the
// window capacity; this is a configuration error the caller must surface,
// since no amount of truncation can produce a usable prompt.
func (p *Planner) HistoryBudget(window core.WindowProfile) (int, error) {
	headroom := window.Headroom()
	if headroom <= 0 {
		return 0, fmt.Errorf("%w: capacity=%d overhead=%d",
			core.ErrInsufficientCapacity, window.CapacityTokens, window.ReservedOverheadTokens)
	}
	return int(math.Round(p.share * float64(headroom))), nil
}
