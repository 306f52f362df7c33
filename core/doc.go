// Package core defines the shared data model of chainctx: agent responses,
// window profiles, allocation plans, bounded segments, the compaction
// strategy enumeration and the token estimator contract.
//
// The package is deliberately free of behavior beyond small constructors and
// validation helpers; the algorithms operating on these types live in the
// budget, truncate, summarize and assemble packages. Keeping the model here
// avoids cyclic dependencies between those packages.
//
// All types are plain values. AgentResponse is immutable once created and
// every derived artifact (AllocationPlan, BoundedSegment) is computed fresh
// per invocation, which makes the whole pipeline safe for concurrent use
// across independent conversations without locking.
package core
