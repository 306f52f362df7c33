package token

import (
	"fmt"
	"strings"
	"testing"

	"github.com/hupe1980/chainctx/core"
	"github.com/hupe1980/chainctx/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeuristicEstimator(t *testing.T) {
	e := NewHeuristicEstimator()

	tests := []struct {
		text     string
		expected int
	}{
		{"", 0},
		{"abc", 1},     // rounds up
		{"abcd", 1},    // exact boundary
		{"abcde", 2},   // rounds up
		{strings.Repeat("x", 400), 100},
	}

	for _, tt := range tests {
		got, err := e.Estimate(tt.text)
		require.NoError(t, err)
		assert.Equal(t, tt.expected, got, "text length %d", len(tt.text))
	}
}

func TestWordEstimator(t *testing.T) {
	e := NewWordEstimator()

	got, err := e.Estimate("three short words")
	require.NoError(t, err)
	assert.Equal(t, 4, got)

	empty, err := e.Estimate("   ")
	require.NoError(t, err)
	assert.Equal(t, 0, empty)
}

func TestSafeEstimator_FallsBackOnError(t *testing.T) {
	failing := core.EstimatorFunc(func(string) (int, error) {
		return 0, fmt.Errorf("%w: tokenizer unreachable", core.ErrEstimation)
	})

	e := NewSafeEstimator(failing, logging.NoOpLogger{})

	got, err := e.Estimate("abcdefgh")
	require.NoError(t, err)
	assert.Equal(t, 2, got) // heuristic: 8 chars / 4
}

func TestSafeEstimator_FallsBackOnNegative(t *testing.T) {
	bogus := core.EstimatorFunc(func(string) (int, error) { return -5, nil })

	e := NewSafeEstimator(bogus, nil)

	got, err := e.Estimate("abcd")
	require.NoError(t, err)
	assert.Equal(t, 1, got)
}

func TestSafeEstimator_PassesThroughSuccess(t *testing.T) {
	fixed := core.EstimatorFunc(func(string) (int, error) { return 42, nil })

	e := NewSafeEstimator(fixed, nil)

	got, err := e.Estimate("anything")
	require.NoError(t, err)
	assert.Equal(t, 42, got)
}

func TestSafeEstimator_NilInnerUsesHeuristic(t *testing.T) {
	e := NewSafeEstimator(nil, nil)

	got, err := e.Estimate("abcdefgh")
	require.NoError(t, err)
	assert.Equal(t, 2, got)
}
