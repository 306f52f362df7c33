package budget

import (
	"github.com/hupe1980/chainctx/core"
)

// Default tier caps as fractions of the history budget.
const (
	DefaultMostRecentShare   = 0.5
	DefaultSecondRecentShare = 0.3
	DefaultOlderShare        = 0.2
)

// AllocatorOptions configures the tier caps of an Allocator. The shares of
// tiers that actually have members are renormalized to sum to one, so the
// full history budget is always distributable regardless of chain length.
type AllocatorOptions struct {
	MostRecentShare   float64
	SecondRecentShare float64
	OlderShare        float64
}

// Allocator partitions a history budget across an ordered response list into
// recency tiers. It holds no mutable state and is safe for concurrent use.
type Allocator struct {
	opts AllocatorOptions
}

// NewAllocator constructs an Allocator with optional tier cap overrides.
// Non-positive shares are replaced with the defaults.
func NewAllocator(optFns ...func(o *AllocatorOptions)) *Allocator {
	opts := AllocatorOptions{
		MostRecentShare:   DefaultMostRecentShare,
		SecondRecentShare: DefaultSecondRecentShare,
		OlderShare:        DefaultOlderShare,
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.MostRecentShare <= 0 {
		opts.MostRecentShare = DefaultMostRecentShare
	}
	if opts.SecondRecentShare <= 0 {
		opts.SecondRecentShare = DefaultSecondRecentShare
	}
	if opts.OlderShare <= 0 {
		opts.OlderShare = DefaultOlderShare
	}
	return &Allocator{opts: opts}
}

// Plan assigns a tier and token budget to each of n responses ordered oldest
// first (index n-1 is the most recent). Tiers that have no member contribute
// nothing and do not inflate other tiers:
//
//   - n == 1: the sole response receives the full history budget.
//   - n == 2: the two defined tiers are renormalized to sum to 100%.
//   - n >= 3: most recent / second recent get their caps; all remaining
//     responses split the older cap evenly.
//
// Budgets are floored, so the plan's total never exceeds historyBudget.
// Unused capacity in one tier is never redistributed to another.
func (a *Allocator) Plan(historyBudget, n int) core.AllocationPlan {
	plan := core.AllocationPlan{
		Tiers:   make([]core.Tier, n),
		Budgets: make([]int, n),
	}
	if n <= 0 || historyBudget <= 0 {
		return plan
	}

	budget := float64(historyBudget)

	switch n {
	case 1:
		plan.Tiers[0] = core.TierMostRecent
		plan.Budgets[0] = historyBudget
	case 2:
		norm := a.opts.MostRecentShare + a.opts.SecondRecentShare
		plan.Tiers[1] = core.TierMostRecent
		plan.Budgets[1] = floorTokens(budget * a.opts.MostRecentShare / norm)
		plan.Tiers[0] = core.TierSecondRecent
		plan.Budgets[0] = floorTokens(budget * a.opts.SecondRecentShare / norm)
	default:
		plan.Tiers[n-1] = core.TierMostRecent
		plan.Budgets[n-1] = floorTokens(budget * a.opts.MostRecentShare)
		plan.Tiers[n-2] = core.TierSecondRecent
		plan.Budgets[n-2] = floorTokens(budget * a.opts.SecondRecentShare)

		olderCount := n - 2
		perOlder := floorTokens(budget * a.opts.OlderShare / float64(olderCount))
		for i := 0; i < olderCount; i++ {
			plan.Tiers[i] = core.TierOlder
			plan.Budgets[i] = perOlder
		}
	}

	return plan
}

// floorTokens floors a fractional token count. The epsilon absorbs binary
// representation dust so that exact products like 4320*0.3 do not land one
// token short.
func floorTokens(x float64) int {
	return int(x + 1e-9)
}
