// Package anthropic provides a model wrapper for the Anthropic Claude API.
package anthropic

import (
	"context"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/hupe1980/chainctx/model"
)

// defaultContextWindow is used for models missing from the window table.
// Every currently shipping Claude model carries a 200k window.
const defaultContextWindow = 200000

// contextWindows maps known model identifiers to their context window size in
// tokens.
var contextWindows = map[anthropic.Model]int{
	anthropic.ModelClaude3_5Sonnet20241022: 200000,
	anthropic.ModelClaude3_5Haiku20241022:  200000,
	anthropic.ModelClaude3OpusLatest:       200000,
}

// Options configures the Anthropic model adapter. ContextWindow and
// ReservedOverhead override the window geometry reported to the compaction
// pipeline; when zero they default to the model table and max tokens plus an
// instruction allowance respectively.
type Options struct {
	Model            anthropic.Model
	Temperature      float64
	MaxTokens        int64
	APIKey           string
	ContextWindow    int
	ReservedOverhead int
}

// Model wraps the Anthropic Messages API behind the generic model.Model interface.
type Model struct {
	client *anthropic.Client
	opts   Options
}

// NewModel creates a new Anthropic model using the official client
func NewModel(optFns ...func(o *Options)) *Model {
	opts := applyDefaults(optFns)

	var clientOpts []option.RequestOption
	if opts.APIKey != "" {
		clientOpts = append(clientOpts, option.WithAPIKey(opts.APIKey))
	}
	client := anthropic.NewClient(clientOpts...)

	return &Model{client: &client, opts: opts}
}

// NewModelFromClient creates a new Anthropic model from an existing client
func NewModelFromClient(client *anthropic.Client, optFns ...func(o *Options)) *Model {
	return &Model{client: client, opts: applyDefaults(optFns)}
}

func applyDefaults(optFns []func(o *Options)) Options {
	opts := Options{
		Model:       anthropic.ModelClaude3_5Sonnet20241022,
		Temperature: 0.7,
		MaxTokens:   4096,
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
		// Output reserve plus an allowance for instructions and the
		// current message.
		opts.ReservedOverhead = int(opts.MaxTokens) + 2000
	}
	return opts
}

// Generate implements model.Model using the Messages API.
func (m *Model) Generate(ctx context.Context, req model.Request) (model.Response, error) {
	params := anthropic.MessageNewParams{
		Model:       m.opts.Model,
		Messages:    buildMessages(req.Messages),
		MaxTokens:   m.opts.MaxTokens,
		Temperature: anthropic.Float(m.opts.Temperature),
	}

	if req.Instructions != "" {
		params.System = []anthropic.TextBlockParam{{Text: req.Instructions}}
	}

	resp, err := m.client.Messages.New(ctx, params)
	if err != nil {
		return model.Response{}, fmt.Errorf("anthropic api error: %w", err)
	}

	var text string
	for _, block := range resp.Content {
		if block.Type == "text" {
			text += block.AsText().Text
		}
	}

	finishReason := "stop"
	if resp.StopReason != "" {
		finishReason = string(resp.StopReason)
	}

	return model.Response{
		Text:         text,
		FinishReason: finishReason,
		Usage: &model.TokenUsage{
			PromptTokens:     int(resp.Usage.InputTokens),
			CompletionTokens: int(resp.Usage.OutputTokens),
			TotalTokens:      int(resp.Usage.InputTokens + resp.Usage.OutputTokens),
		},
	}, nil
}

// buildMessages converts prompt messages to the Anthropic message format.
func buildMessages(messages []model.Message) []anthropic.MessageParam {
	out := make([]anthropic.MessageParam, 0, len(messages))
	for _, msg := range messages {
		if msg.Text == "" {
			continue
		}
		switch msg.Role {
		case "assistant":
			out = append(out, anthropic.NewAssistantMessage(anthropic.NewTextBlock(msg.Text)))
		default:
			// Unknown roles are treated as user input.
			out = append(out, anthropic.NewUserMessage(anthropic.NewTextBlock(msg.Text)))
		}
	}
	return out
}

// Info returns metadata describing this Anthropic model implementation,
// including the window geometry derived from the model table.
func (m *Model) Info() model.Info {
	return model.Info{
		Name:             string(m.opts.Model),
		Provider:         "anthropic",
		ContextWindow:    m.opts.ContextWindow,
		ReservedOverhead: m.opts.ReservedOverhead,
	}
}
