package core

// TokenEstimator approximates how many tokens a text occupies in a model's
// context window. Exact tokenization is provider-specific and out of scope;
// implementations trade accuracy for determinism and zero I/O. An estimator
// may fail (for example a wrapped external tokenizer), in which case callers
// recover via the character-count heuristic; see token.SafeEstimator.
type TokenEstimator interface {
	Estimate(text string) (int, error)
}

// EstimatorFunc adapts a plain function to the TokenEstimator interface.
type EstimatorFunc func(text string) (int, error)

// Estimate implements TokenEstimator.
func (f EstimatorFunc) Estimate(text string) (int, error) { return f(text) }
