// Package token provides approximate token estimators implementing
// core.TokenEstimator. Exact tokenization is provider-specific; these
// estimators favor determinism and zero I/O over accuracy, which is
// sufficient for budget planning where estimates only need to be stable
// and roughly proportional to real token counts.
//
// SafeEstimator wraps any estimator (including external tokenizers) and
// recovers from failures via the character-count heuristic, so estimation
// is never a fatal path in the compaction pipeline.
package token
