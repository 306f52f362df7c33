// Package summarize compresses a response into a token-bounded digest by
// extractive selection: sentences are scored with cheap lexical heuristics
// (importance indicator words, numeric literals, positional bonus), picked
// greedily by score, then re-emitted in their original chronological order so
// the digest reads coherently.
//
// The summarizer is deterministic and makes no model calls; identical input
// always yields identical output. Scoring weights and the indicator word list
// are configuration, not constants, so they can be tuned without touching the
// selection algorithm.
package summarize
