package chainctx

import (
	"context"
	"strings"
	"testing"

	"github.com/hupe1980/chainctx/assemble"
	"github.com/hupe1980/chainctx/chain"
	"github.com/hupe1980/chainctx/config"
	"github.com/hupe1980/chainctx/core"
	"github.com/hupe1980/chainctx/internal/testutil"
	"github.com/hupe1980/chainctx/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChainCtx_RunChain(t *testing.T) {
	research := model.NewMockModel("research-model")
	research.AddResponse("topic", "research findings")
	write := model.NewMockModel("write-model")
	write.AddResponse("topic", "final draft")

	cc := New()
	c, err := cc.NewChain([]chain.Step{
		{ID: "researcher", Instructions: "Research.", Model: research},
		{ID: "writer", Instructions: "Write.", Model: write},
	})
	require.NoError(t, err)

	result, err := c.Run(context.Background(), "topic")
	require.NoError(t, err)
	assert.Equal(t, "final draft", result.Final)
	require.Len(t, result.Steps, 2)
}

func TestChainCtx_Compact(t *testing.T) {
	cc := New()
	history := testutil.NewTranscriptBuilder().
		LongResponse("a", "Filler sentence with detail. ", 800).
		Response("b", "short").
		Build()

	segments, err := cc.Compact(
		history,
		core.WindowProfile{CapacityTokens: 8000, ReservedOverheadTokens: 800},
	)
	require.NoError(t, err)
	require.Len(t, segments, 2)
	assert.True(t, segments[0].Truncated)
	assert.Equal(t, "short", segments[1].Text)
}

func TestChainCtx_DisabledCompaction(t *testing.T) {
	cc := New(func(o *Options) {
		o.Config = assemble.Config{Enabled: false}
	})
	long := strings.Repeat("x", 100000)

	segments, err := cc.Compact(
		[]core.AgentResponse{{Index: 0, ProducerID: "a", Text: long}},
		core.WindowProfile{CapacityTokens: 1000, ReservedOverheadTokens: 100},
	)
	require.NoError(t, err)
	assert.Equal(t, long, segments[0].Text)
}

func TestFromSettings(t *testing.T) {
	settings, err := config.Parse([]byte(`
context:
  enabled: true
  strategy: summarization_only
`))
	require.NoError(t, err)

	cc := FromSettings(settings)
	long := strings.Repeat("The result was 42. More filler text follows here. ", 500)

	segments, err := cc.Compact(
		[]core.AgentResponse{{Index: 0, ProducerID: "a", Text: long}},
		core.WindowProfile{CapacityTokens: 2000, ReservedOverheadTokens: 200},
	)
	require.NoError(t, err)
	assert.True(t, segments[0].Summarized)
}

func TestFromSettings_InjectedEstimator(t *testing.T) {
	settings, err := config.Parse([]byte("context:\n  enabled: true\n"))
	require.NoError(t, err)

	calls := 0
	counting := core.EstimatorFunc(func(text string) (int, error) {
		calls++
		return (len(text) + 3) / 4, nil
	})

	cc := FromSettings(settings, func(o *Options) { o.Estimator = counting })

	history := testutil.NewTranscriptBuilder().
		LongResponse("a", "Oversized filler sentence. ", 2000).
		Build()
	_, err = cc.Compact(history, core.WindowProfile{CapacityTokens: 2000, ReservedOverheadTokens: 200})
	require.NoError(t, err)

	assert.Greater(t, calls, 0, "injected estimator must drive the pipeline")
}
