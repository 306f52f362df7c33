package prompt

import (
	"fmt"
	"strings"

	"github.com/hupe1980/chainctx/core"
	"github.com/hupe1980/chainctx/model"
)

// Options configures a Builder.
type Options struct {
	// AttributeProducers prefixes each history message with the producing
	// step's identifier so downstream steps can refer to prior agents by
	// name. Enabled by default.
	AttributeProducers bool
	// AnnotateCompaction appends a short note to messages whose text was
	// summarized or truncated, so the model knows it is reading a digest.
	AnnotateCompaction bool
}

// Builder renders bounded segments into model requests. It holds no mutable
// state and is safe for concurrent use.
type Builder struct {
	opts Options
}

// NewBuilder constructs a Builder with optional overrides.
func NewBuilder(optFns ...func(o *Options)) *Builder {
	opts := Options{AttributeProducers: true, AnnotateCompaction: true}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Builder{opts: opts}
}

// Build assembles a model request from system instructions, the bounded
// history segments (oldest first) and the current user input. Segment order
// is preserved; each segment becomes one assistant message.
func (b *Builder) Build(instructions string, segments []core.BoundedSegment, input string) model.Request {
	messages := make([]model.Message, 0, len(segments)+1)
	for _, seg := range segments {
		messages = append(messages, model.Message{
			Role:       "assistant",
			ProducerID: seg.ProducerID,
			Text:       b.renderSegment(seg),
		})
	}
	messages = append(messages, model.Message{Role: "user", Text: input})
	return model.Request{Instructions: instructions, Messages: messages}
}

// renderSegment formats one segment's text with optional producer
// attribution and compaction notes.
func (b *Builder) renderSegment(seg core.BoundedSegment) string {
	var sb strings.Builder
	if b.opts.AttributeProducers && seg.ProducerID != "" {
		fmt.Fprintf(&sb, "[%s]\n", seg.ProducerID)
	}
	sb.WriteString(seg.Text)
	if b.opts.AnnotateCompaction {
		switch {
		case seg.Summarized:
			sb.WriteString("\n(condensed summary of a longer response)")
		case seg.Truncated:
			sb.WriteString("\n(truncated to fit the context window)")
		}
	}
	return sb.String()
}
