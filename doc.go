// Package greenthread implements symmetric, cooperatively scheduled
// coroutines with explicit context switching.
//
// A Ctx is the universe in which coroutines (Thread values) live. Exactly
// one Thread per Ctx is logically running at a time; control passes between
// them only when a caller explicitly invokes Resume, Yield, or Switch.
// There is no preemption, no scheduler, and no run queue: nothing happens
// unless something asks for it.
//
// A Ctx and every Thread derived from it must be used from a single
// goroutine at a time, in the same cooperative sense the original C
// implementation this package is modeled on requires a single OS thread:
// concurrent use from multiple goroutines racing each other is undefined,
// even though each Thread is, internally, backed by a real parked
// goroutine (see switchregs.go).
package greenthread
