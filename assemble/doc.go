// Package assemble orchestrates the compaction pipeline: it plans the
// history budget for a window profile, partitions it across the ordered
// response list into recency tiers, and applies the tier-appropriate
// compaction method under the configured strategy, producing the ordered
// list of budget-compliant segments handed to the prompt builder.
//
// An Assembler is stateless across invocations; every call derives its
// allocation plan and segments locally, so a single instance may serve many
// independent conversations concurrently without locking.
package assemble
