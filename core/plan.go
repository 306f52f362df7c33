package core

// Tier classifies a prior response by recency. The tier determines how much
// of the history budget a response is allocated and, for TierOlder, forces
// summarization as the compaction method regardless of configured strategy.
type Tier int

const (
	// TierMostRecent is the single latest response in the chain.
	TierMostRecent Tier = iota
	// TierSecondRecent is the next-latest response (chains of two or more).
	TierSecondRecent
	// TierOlder covers all remaining responses (chains of three or more).
	TierOlder
)

// String returns the tier's identifier for logging.
func (t Tier) String() string {
	switch t {
	case TierMostRecent:
		return "most_recent"
	case TierSecondRecent:
		return "second_recent"
	case TierOlder:
		return "older"
	default:
		return "unknown"
	}
}

// AllocationPlan assigns each response (by chain index) a tier and a token
// budget. A plan is a pure function of the window profile and the ordered
// response list: it is derived fresh per invocation and never persisted.
// The sum of Budgets never exceeds the history budget it was planned from.
type AllocationPlan struct {
	Tiers   []Tier `json:"tiers"`
	Budgets []int  `json:"budgets"`
}

// Len returns the number of responses covered by the plan.
func (p AllocationPlan) Len() int { return len(p.Budgets) }

// TotalBudget returns the sum of all per-response budgets.
func (p AllocationPlan) TotalBudget() int {
	total := 0
	for _, b := range p.Budgets {
		total += b
	}
	return total
}
