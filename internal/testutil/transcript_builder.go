package testutil

import (
	"strings"

	"github.com/hupe1980/chainctx/core"
)

// TranscriptBuilder helps construct ordered response histories with fluent
// chaining for tests. Indexes are assigned in append order.
// Example:
//
//	history := NewTranscriptBuilder().
//		Response("researcher", "findings").
//		Response("analyst", "analysis").
//		Build()
type TranscriptBuilder struct {
	responses []core.AgentResponse
}

// NewTranscriptBuilder creates a new empty builder.
func NewTranscriptBuilder() *TranscriptBuilder { return &TranscriptBuilder{} }

// Response appends a response from the given producer (chainable).
func (b *TranscriptBuilder) Response(producerID, text string) *TranscriptBuilder {
	b.responses = append(b.responses, core.AgentResponse{
		Index:      len(b.responses),
		ProducerID: producerID,
		Text:       text,
	})
	return b
}

// LongResponse appends a response whose text is the given sentence repeated
// n times, handy for exceeding token budgets deterministically (chainable).
func (b *TranscriptBuilder) LongResponse(producerID, sentence string, n int) *TranscriptBuilder {
	return b.Response(producerID, strings.Repeat(sentence, n))
}

// Build returns the ordered response history, oldest first.
func (b *TranscriptBuilder) Build() []core.AgentResponse {
	out := make([]core.AgentResponse, len(b.responses))
	copy(out, b.responses)
	return out
}

// BuildTranscript returns a populated transcript with the given run ID.
func (b *TranscriptBuilder) BuildTranscript(runID string) *core.Transcript {
	tr := core.NewTranscript(runID)
	for _, resp := range b.responses {
		tr.Append(resp.ProducerID, resp.Text)
	}
	return tr
}
