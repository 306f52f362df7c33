// Package chain executes an ordered sequence of model-backed steps where
// each step's prompt includes the outputs of all prior steps, bounded by the
// compaction pipeline so the accumulated history never overflows a step's
// context window.
//
// Execution within one run is strictly sequential: step k+1 cannot start
// until step k's response exists. Independent runs of the same Chain may
// proceed concurrently; all per-run state (transcript, allocation plans,
// bounded segments) is locally scoped.
package chain
