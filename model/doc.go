// Package model defines the minimal interface chains use to drive text
// generation, plus a deterministic MockModel for tests and examples.
// Provider adapters live in the anthropic and openai subpackages.
//
// A model's Info carries its context window capacity and reserved overhead,
// from which the compaction pipeline derives a core.WindowProfile. This keeps
// window knowledge with the provider that owns it instead of scattering
// magic numbers through calling code.
package model
