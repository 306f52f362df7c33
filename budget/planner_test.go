package budget

import (
	"testing"

	"github.com/hupe1980/chainctx/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanner_HistoryBudget(t *testing.T) {
	p := NewPlanner()

	got, err := p.HistoryBudget(core.WindowProfile{CapacityTokens: 8000, ReservedOverheadTokens: 800})
	require.NoError(t, err)
	assert.Equal(t, 4320, got) // round(0.6 * 7200)
}

func TestPlanner_HistoryBudget_Rounding(t *testing.T) {
	p := NewPlanner()

	// 0.6 * 1001 = 600.6 → rounds to 601
	got, err := p.HistoryBudget(core.WindowProfile{CapacityTokens: 1001, ReservedOverheadTokens: 0})
	require.NoError(t, err)
	assert.Equal(t, 601, got)
}

func TestPlanner_InsufficientCapacity(t *testing.T) {
	p := NewPlanner()

	tests := []struct {
		name   string
		window core.WindowProfile
	}{
		{"overhead equals capacity", core.WindowProfile{CapacityTokens: 800, ReservedOverheadTokens: 800}},
		{"overhead exceeds capacity", core.WindowProfile{CapacityTokens: 500, ReservedOverheadTokens: 800}},
		{"zero capacity", core.WindowProfile{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := p.HistoryBudget(tt.window)
			assert.ErrorIs(t, err, core.ErrInsufficientCapacity)
		})
	}
}

func TestPlanner_CustomShare(t *testing.T) {
	p := NewPlanner(func(o *PlannerOptions) { o.HistoryShare = 0.5 })

	got, err := p.HistoryBudget(core.WindowProfile{CapacityTokens: 1000, ReservedOverheadTokens: 0})
	require.NoError(t, err)
	assert.Equal(t, 500, got)
}

func TestPlanner_InvalidShareFallsBackToDefault(t *testing.T) {
	p := NewPlanner(func(o *PlannerOptions) { o.HistoryShare = 1.5 })

	got, err := p.HistoryBudget(core.WindowProfile{CapacityTokens: 1000, ReservedOverheadTokens: 0})
	require.NoError(t, err)
	assert.Equal(t, 600, got)
}
