// Package try provides Try[T], an immutable value that is either a success
// holding a T or a failure holding the error that prevented producing it.
//
// Try is the boundary where panics turn into data: Attempt, Capture, Map,
// Filter and Recover run caller code under recover() and store whatever was
// raised as a failure. FlatMap is the exception, its function already
// returns a Try and owns its own capture.
//
// Highlights:
// - Attempt/Capture/From: run or wrap a computation
// - Success/Failure: build a variant directly
// - Map/FlatMap/Filter: compose; failures pass through untouched
// - Match/Unpack/Get/GetError: leave the try world
// - ToOption/FromOption: bridge to package option
package try
