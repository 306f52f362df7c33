// Package config loads chainctx settings from YAML: compaction behavior
// (enable flag, strategy, budget shares), summarizer tuning, window profiles
// per model, and declarative chain step definitions.
//
// Unknown strategy values never fail the load; they fall back to intelligent
// truncation with a logged warning, so a typo in an operator-edited file
// degrades gracefully instead of taking the chain down.
package config
