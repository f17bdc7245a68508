// Package compound tracks the parent/owner set of a compound value (a list,
// map, or user-defined container) well enough to break reference cycles.
//
// A compound value can be adopted by more than one owner — the same list
// value might be referenced as an item of two different parent lists. Data
// records each distinct parent along with how many times that specific
// parent has adopted it, so the same parent adopting twice doesn't get lost
// when it abandons once.
//
// Two parents are tracked inline with no allocation. A third promotes the
// value to a chunked overflow list, grown and shrunk one chunk at a time so
// a value with many owners doesn't pay for a large contiguous table up
// front. This mirrors the reference runtime's embedded-then-chunked layout,
// translated to Go slices instead of manually managed realloc'd chunks.
//
// Data is not safe for concurrent use without external synchronization —
// same contract as the rest of the value runtime, which assumes callers
// serialize access to a given value graph themselves.
package compound
