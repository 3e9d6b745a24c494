package greenthread

import "sync"

// State is the lifecycle state of a Thread.
type State int

const (
	// StateNew is the state of a Thread that has never been resumed.
	StateNew State = iota
	// StateAlive is the state of a Thread between its first resume and the
	// return of its start function.
	StateAlive
	// StateDead is the terminal state; a Dead Thread may not be resumed
	// (Resume on one is a defined no-op returning nil).
	StateDead
)

func (s State) String() string {
	switch s {
	case StateNew:
		return "new"
	case StateAlive:
		return "alive"
	case StateDead:
		return "dead"
	default:
		return "unknown"
	}
}

type (
	// StartFunc is the signature of a coroutine's entry point. arg is
	// whatever was passed to the first Resume of this Thread.
	StartFunc func(ctx *Ctx, arg any)

	// Thread is a suspendable computation with its own logical stack,
	// registered destructors, and coroutine-local storage. The zero value
	// is not usable; Threads are created via Ctx.ThreadCreate or
	// Ctx.ThreadCreateChild.
	Thread struct { // betteralign:ignore
		ctx    *Ctx
		fn     StartFunc
		state  State
		caller *Thread
		dtors  []destructor
		tls    []any

		// id is a small, process-local, log-correlation-only identifier;
		// it carries no semantic weight and is never compared for equality
		// by anything other than log.go.
		id int

		// wake is the switch primitive's rendezvous channel; see
		// switchregs.go. It is unbuffered: a send only completes once this
		// Thread's goroutine (or, for the root Thread, its owning
		// goroutine) is parked waiting to receive it.
		wake chan struct{}

		// kill is closed exactly once, by destroy, to reclaim a goroutine
		// that is parked on wake with nothing left that will ever resume
		// it - either never-started (parked in park's initial receive) or
		// suspended mid-run (parked inside switchRegs). See switchregs.go.
		kill     chan struct{}
		killOnce sync.Once
	}
)

// ThreadCreate allocates a new Thread bound to fn, in state StateNew. fn
// does not begin executing until the Thread is first passed to Resume.
func (ctx *Ctx) ThreadCreate(fn StartFunc) *Thread {
	if fn == nil {
		panic("greenthread: nil start function")
	}
	ctx.nextThreadID++
	t := &Thread{
		ctx:   ctx,
		fn:    fn,
		state: StateNew,
		wake:  make(chan struct{}),
		kill:  make(chan struct{}),
		id:    ctx.nextThreadID,
	}
	ctx.logDebug("thread_create", t, nil)
	go t.park()
	return t
}

// ThreadCreateChild is equivalent to calling ThreadCreate, then registering
// a destructor on the current Thread that frees the new Thread when the
// current one terminates or is explicitly freed.
func (ctx *Ctx) ThreadCreateChild(fn StartFunc) *Thread {
	t := ctx.ThreadCreate(fn)
	ctx.RegisterDestructor(func(arg any) {
		ThreadFree(arg.(*Thread))
	}, t)
	return t
}

// ThreadFree runs t's registered destructors (in insertion order, exactly
// once), releases its coroutine-local storage, drops its reference to its
// start function, transitions t to StateDead, and reclaims its backing
// goroutine - whether t has never been resumed or is currently suspended
// mid-run, nothing is left parked waiting on a wake that will never come.
// The StateDead transition means a subsequent Resume of a freed Thread is
// the same defined no-op as resuming one that died naturally, rather than
// a Resume blocking forever on a goroutine that no longer exists.
//
// Safe to call on a Thread in any state. Freeing a Thread that is currently
// reachable via another Thread's caller chain is undefined behavior - the
// library does not detect this.
func ThreadFree(t *Thread) {
	t.destroy()
}

// State returns t's current lifecycle state.
func (t *Thread) State() State {
	return t.state
}

// destroy runs destructors and releases tls/fn exactly once; subsequent
// calls are no-ops because the slices/closures are nilled out as they're
// consumed. This mirrors gt_thread_destroy in the reference C
// implementation, which is likewise safe to invoke twice.
//
// Closing kill last, after every other field write, is what lets park and
// switchRegs observe a consistent t across the channel handoff: close
// happens-before the receive that wakes them.
func (t *Thread) destroy() {
	dtors := t.dtors
	t.dtors = nil
	for _, d := range dtors {
		d.fn(d.arg)
	}
	t.tls = nil
	t.fn = nil
	t.state = StateDead
	t.killOnce.Do(func() { close(t.kill) })
}
