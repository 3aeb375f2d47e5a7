// Package option provides Option[T], an immutable value that either holds a
// T (present) or nothing (empty). It replaces nil-valued references with an
// explicit, composable absence.
//
// Highlights:
// - FromNullable/FromOk/FromPtr: enter the option world at a boundary
// - Some/None: build a variant directly; Some rejects absent markers
// - Map/FlatMap/Filter: compose without unwrapping
// - Match/OrElse/Unpack/Get: leave the option world
//
// Absent markers are nil pointers, maps, slices, channels, funcs and
// interfaces. Once wrapped, absence is represented by the empty variant only.
package option
