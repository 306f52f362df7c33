// Package prompt renders the ordered, budget-compliant segments produced by
// the assembler into a model.Request. It is the downstream collaborator of
// the compaction pipeline: segments arrive already bounded, and this package
// only decides presentation (producer attribution, compaction notes), never
// size.
package prompt
