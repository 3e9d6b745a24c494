package greenthread

type (
	// DestructorFunc is invoked with its registered arg when the Thread it
	// was registered on terminates.
	DestructorFunc func(arg any)

	destructor struct {
		fn  DestructorFunc
		arg any
	}
)

// RegisterDestructor appends a destructor to the current Thread's cleanup
// list. Destructors run in insertion order, exactly once, when the current
// Thread terminates (via its start function returning, or via ThreadFree),
// before its coroutine-local storage is released.
//
// Destructors run on the goroutine that observes the termination (the
// resumer, or the caller of ThreadFree), not on the terminating Thread's own
// goroutine. Anything arg references is kept alive by the garbage collector,
// so it is safe for arg to reference the current Thread's own local state.
func (ctx *Ctx) RegisterDestructor(fn DestructorFunc, arg any) {
	if fn == nil {
		panic("greenthread: nil destructor")
	}
	t := ctx.current
	t.dtors = append(t.dtors, destructor{fn: fn, arg: arg})
}
