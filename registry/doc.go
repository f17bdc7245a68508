// Package registry implements the global type-descriptor table and
// interface-slot table that power method dispatch and single-inheritance
// subclassing across the value runtime.
//
// Table is generic over the concrete cell type (package value's Value) so
// this package has no dependency on it — the original design's global,
// process-wide type table and the value cell that dispatches through it
// would otherwise form an import cycle. Instantiating Table[value.Value]
// in package value gets the exact same global-registry behavior the
// reference implementation has, with the dependency edge running the
// other way.
package registry
