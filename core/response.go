package core

// AgentResponse is the output of a single agent invocation within a chain.
// Index is the chain's invocation order (0 = earliest); ProducerID identifies
// the agent that produced the text. Responses are immutable once created:
// the compaction pipeline never mutates them, it only derives new artifacts.
type AgentResponse struct {
	Index      int    `json:"index"`
	ProducerID string `json:"producer_id"`
	Text       string `json:"text"`
}

// BoundedSegment is the final budget-compliant artifact handed to the prompt
// builder. Its estimated token count is guaranteed to be at or below the
// budget its tier was allocated. Truncated and Summarized record which
// compaction method(s) produced the text; both false means the original
// response fit its budget and was passed through byte-identical.
type BoundedSegment struct {
	Index      int    `json:"index"`
	ProducerID string `json:"producer_id"`
	Text       string `json:"text"`
	Truncated  bool   `json:"truncated"`
	Summarized bool   `json:"summarized"`
}
