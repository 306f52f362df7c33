// Package budget computes how many tokens of a model's context window may be
// spent on historical agent output, and partitions that budget across the
// ordered response list into recency tiers.
//
// Two components cooperate:
//
//   - Planner derives the history budget from a core.WindowProfile: a fixed
//     share (default 60%) of the capacity remaining after reserved overhead.
//   - Allocator splits the history budget across responses: the latest
//     response gets the largest cap, the second-latest a smaller one, and all
//     older responses share the remainder evenly.
//
// Allocation is deterministic and independent of actual text lengths: unused
// capacity in one tier is never redistributed to another. This wastes some
// headroom when a recent response is short, but keeps plans reproducible and
// cheap to reason about.
package budget
