// Package openai provides an implementation of model.Model using the OpenAI
// Chat Completions API. It adapts chainctx's normalized Request/Response
// structures into the SDK's message format and back.
package openai

import (
	"context"
	"fmt"

	"github.com/hupe1980/chainctx/model"
	"github.com/openai/openai-go"
)

// defaultContextWindow is used for models missing from the window table.
const defaultContextWindow = 128000

// contextWindows maps known model identifiers to their context window size in
// tokens.
var contextWindows = map[string]int{
	openai.ChatModelGPT4oMini:   128000,
	openai.ChatModelGPT4o:       128000,
	openai.ChatModelGPT4Turbo:   128000,
	openai.ChatModelGPT3_5Turbo: 16385,
}

// Options configure the OpenAI model adapter. Fields mirror a subset of Chat
// Completion parameters intentionally kept minimal; extend via functional
// options without breaking callers.
type Options struct {
	Model               string
	Temperature         float64
	MaxCompletionTokens int64
	ContextWindow       int
	ReservedOverhead    int
}

// Model wraps the OpenAI Chat Completions API behind the generic model.Model interface.
type Model struct {
	client *openai.Client
	opts   Options
}

// NewModel creates a new OpenAI model using the official client
func NewModel(optFns ...func(o *Options)) *Model {
	client := openai.NewClient()
	return NewModelFromClient(&client, optFns...)
}

// NewModelFromClient creates a new OpenAI model from an existing client
func NewModelFromClient(client *openai.Client, optFns ...func(o *Options)) *Model {
	opts := Options{
		Model:               openai.ChatModelGPT4oMini,
		Temperature:         0.7,
		MaxCompletionTokens: 4096,
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.ContextWindow == 0 {
		if w, ok := contextWindows[opts.Model]; ok {
			opts.ContextWindow = w
		} else {
			opts.ContextWindow = defaultContextWindow
		}
	}
	if opts.ReservedOverhead == 0 {
		opts.ReservedOverhead = int(opts.MaxCompletionTokens) + 2000
	}
	return &Model{client: client, opts: opts}
}

// Generate implements model.Model using Chat Completions.
func (m *Model) Generate(ctx context.Context, req model.Request) (model.Response, error) {
	params := openai.ChatCompletionNewParams{
		Model:               m.opts.Model,
		Messages:            buildMessages(req),
		Temperature:         openai.Float(m.opts.Temperature),
		MaxCompletionTokens: openai.Int(m.opts.MaxCompletionTokens),
	}

	resp, err := m.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return model.Response{}, fmt.Errorf("openai api error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return model.Response{}, fmt.Errorf("openai returned no choices")
	}

	choice := resp.Choices[0]
	finishReason := string(choice.FinishReason)
	if finishReason == "" {
		finishReason = "stop"
	}

	return model.Response{
		Text:         choice.Message.Content,
		FinishReason: finishReason,
		Usage: &model.TokenUsage{
			PromptTokens:     int(resp.Usage.PromptTokens),
			CompletionTokens: int(resp.Usage.CompletionTokens),
			TotalTokens:      int(resp.Usage.TotalTokens),
		},
	}, nil
}

// buildMessages converts the normalized request to the SDK's message union.
func buildMessages(req model.Request) []openai.ChatCompletionMessageParamUnion {
	out := make([]openai.ChatCompletionMessageParamUnion, 0, len(req.Messages)+1)
	if req.Instructions != "" {
		out = append(out, openai.SystemMessage(req.Instructions))
	}
	for _, msg := range req.Messages {
		if msg.Text == "" {
			continue
		}
		switch msg.Role {
		case "assistant":
			out = append(out, openai.AssistantMessage(msg.Text))
		default:
			out = append(out, openai.UserMessage(msg.Text))
		}
	}
	return out
}

// Info returns metadata describing this OpenAI model implementation,
// including the window geometry derived from the model table.
func (m *Model) Info() model.Info {
	return model.Info{
		Name:             m.opts.Model,
		Provider:         "openai",
		ContextWindow:    m.opts.ContextWindow,
		ReservedOverhead: m.opts.ReservedOverhead,
	}
}
