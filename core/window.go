package core

// WindowProfile describes the usable input size of a model invocation.
// CapacityTokens is the model's maximum context window; ReservedOverheadTokens
// covers system instructions, the current user message and reserved output
// space. Profiles are supplied per model/provider, typically by the model
// adapter (see model.Info.WindowProfile) or by configuration.
type WindowProfile struct {
	CapacityTokens         int `json:"capacity_tokens" yaml:"capacity_tokens"`
	ReservedOverheadTokens int `json:"reserved_overhead_tokens" yaml:"reserved_overhead_tokens"`
}

// Headroom returns the tokens remaining after the reserved overhead is
// subtracted. A non-positive headroom means no history can be carried at all.
func (w WindowProfile) Headroom() int {
	return w.CapacityTokens - w.ReservedOverheadTokens
}
