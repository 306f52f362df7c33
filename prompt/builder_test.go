package prompt

import (
	"testing"

	"github.com/hupe1980/chainctx/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_Build(t *testing.T) {
	b := NewBuilder()

	segments := []core.BoundedSegment{
		{Index: 0, ProducerID: "researcher", Text: "findings", Summarized: true},
		{Index: 1, ProducerID: "writer", Text: "draft"},
	}

	req := b.Build("You are an editor.", segments, "polish the draft")

	assert.Equal(t, "You are an editor.", req.Instructions)
	require.Len(t, req.Messages, 3)

	assert.Equal(t, "assistant", req.Messages[0].Role)
	assert.Equal(t, "researcher", req.Messages[0].ProducerID)
	assert.Contains(t, req.Messages[0].Text, "[researcher]")
	assert.Contains(t, req.Messages[0].Text, "findings")
	assert.Contains(t, req.Messages[0].Text, "condensed summary")

	assert.Equal(t, "writer", req.Messages[1].ProducerID)
	assert.NotContains(t, req.Messages[1].Text, "condensed summary")

	assert.Equal(t, "user", req.Messages[2].Role)
	assert.Equal(t, "polish the draft", req.Messages[2].Text)
}

func TestBuilder_TruncationNote(t *testing.T) {
	b := NewBuilder()

	segments := []core.BoundedSegment{{ProducerID: "a", Text: "partial", Truncated: true}}
	req := b.Build("", segments, "go")

	assert.Contains(t, req.Messages[0].Text, "truncated to fit")
}

func TestBuilder_PlainRendering(t *testing.T) {
	b := NewBuilder(func(o *Options) {
		o.AttributeProducers = false
		o.AnnotateCompaction = false
	})

	segments := []core.BoundedSegment{{ProducerID: "a", Text: "exact text", Summarized: true}}
	req := b.Build("", segments, "go")

	assert.Equal(t, "exact text", req.Messages[0].Text)
}

func TestBuilder_EmptyHistory(t *testing.T) {
	b := NewBuilder()

	req := b.Build("instructions", nil, "first step input")

	require.Len(t, req.Messages, 1)
	assert.Equal(t, "user", req.Messages[0].Role)
}
