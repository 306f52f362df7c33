package model

import (
	"context"
	"fmt"

	"github.com/hupe1980/chainctx/core"
)

// Message is one entry of the prompt history handed to a model. ProducerID
// identifies the chain step that produced assistant text; it is empty for
// user messages.
type Message struct {
	Role       string `json:"role"` // "user" or "assistant"
	ProducerID string `json:"producer_id,omitempty"`
	Text       string `json:"text"`
}

// Request captures the normalized model input produced by the prompt builder.
type Request struct {
	Instructions string    `json:"instructions"` // System instructions for the model
	Messages     []Message `json:"messages"`     // Ordered conversation messages
}

// TokenUsage captures token usage statistics for a response.
type TokenUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Response is the completed output of one generation call.
type Response struct {
	Text         string      `json:"text"`
	FinishReason string      `json:"finish_reason"` // "stop", "length", etc.
	Usage        *TokenUsage `json:"usage,omitempty"`
}

// Info contains metadata about a model implementation, including the window
// geometry the compaction pipeline plans against.
type Info struct {
	Name             string `json:"name"`
	Provider         string `json:"provider"` // "openai", "anthropic", "mock", etc.
	ContextWindow    int    `json:"context_window"`    // Maximum input size in tokens
	ReservedOverhead int    `json:"reserved_overhead"` // Instructions + current message + output reserve
}

// WindowProfile derives the window profile the compaction pipeline plans
// against for this model.
func (i Info) WindowProfile() core.WindowProfile {
	return core.WindowProfile{CapacityTokens: i.ContextWindow, ReservedOverheadTokens: i.ReservedOverhead}
}

// Model is the minimal interface required by chains to drive generation.
type Model interface {
	Generate(ctx context.Context, req Request) (Response, error)

	// Info returns information about the model implementation.
	Info() Info
}

// MockModel is a lightweight in-memory Model useful for tests & examples.
// Responses are canned per input text; unknown inputs yield a deterministic
// echo so chains remain reproducible.
type MockModel struct {
	info      Info
	responses map[string]string
}

// NewMockModel constructs a MockModel with a generous default window.
func NewMockModel(name string) *MockModel {
	return &MockModel{
		info:      Info{Name: name, Provider: "mock", ContextWindow: 8000, ReservedOverhead: 800},
		responses: make(map[string]string),
	}
}

// AddResponse registers a deterministic canned completion for an input text.
func (m *MockModel) AddResponse(input, response string) { m.responses[input] = response }

// SetWindow overrides the mock's window geometry, handy for exercising
// compaction paths in tests.
func (m *MockModel) SetWindow(capacity, overhead int) {
	m.info.ContextWindow = capacity
	m.info.ReservedOverhead = overhead
}

// Generate implements Model. It keys canned responses by the last message's
// text and never fails unless the context is cancelled.
func (m *MockModel) Generate(ctx context.Context, req Request) (Response, error) {
	if err := ctx.Err(); err != nil {
		return Response{}, err
	}
	if len(req.Messages) == 0 {
		return Response{}, fmt.Errorf("no messages provided")
	}
	input := req.Messages[len(req.Messages)-1].Text
	text, ok := m.responses[input]
	if !ok {
		text = fmt.Sprintf("Mock response to: %s", input)
	}
	return Response{Text: text, FinishReason: "stop"}, nil
}

// Info implements Model.
func (m *MockModel) Info() Info { return m.info }
