// Package truncate bounds a response text to a token budget by cutting it.
//
// Two methods are provided:
//
//   - Intelligent keeps whole paragraphs (blank-line boundaries) in original
//     order until the budget is exhausted, never splitting a paragraph. When
//     even the first paragraph alone exceeds the budget it degrades to a hard
//     character-level cut.
//   - Simple cuts hard at the budget boundary regardless of structure.
//
// Both methods append a truncation marker stating how many estimated tokens
// were omitted; the marker's own token cost is reserved out of the budget so
// the emitted segment always fits its allocation.
package truncate
