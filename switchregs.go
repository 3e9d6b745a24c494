package greenthread

// This file holds the one inherently machine-level component: the primitive
// that suspends one coroutine and resumes another. A native implementation
// would save callee-preserved registers and the stack pointer into the
// outgoing Thread's control block, load the incoming Thread's, and return
// into wherever it last called the equivalent of switchRegs. In Go, without
// cgo or assembly, the closest faithful substitute is to give each Thread
// its own real, permanently-parked goroutine, and use a pair of unbuffered
// channel operations as the handoff: exactly one goroutine is ever
// unblocked at a time, and the Go scheduler - not hand-rolled register
// save/restore - is what preserves each one's local state across a switch.

// threadKilled is the panic value switchRegs raises in a suspended Thread's
// goroutine when destroy closes that Thread's kill channel out from under
// it. It is recovered in runStartFunc, which treats it as "the goroutine
// may now exit" rather than as a real fault.
type threadKilled struct{}

// switchRegs suspends from and resumes to. from must be the Thread whose
// goroutine is calling switchRegs (its own wake channel is what will be
// signalled by whoever switches back into it later). It returns once some
// other switchRegs call, or the die of a Thread whose caller is from,
// targets from again, or panics with threadKilled if from is freed while
// suspended here.
func switchRegs(from, to *Thread) {
	to.wake <- struct{}{}
	select {
	case <-from.wake:
	case <-from.kill:
		panic(threadKilled{})
	}
}

// park is the body of the goroutine spawned for every non-root Thread at
// creation time. Parking here, before touching fn, is the goroutine-based
// equivalent of synthesizing an initial stack frame and start trampoline -
// the first value ever sent on t.wake is indistinguishable, from t's
// perspective, from an ordinary first call into fn.
//
// park also recovers threadKilled: whether t is freed before ever being
// resumed (the select below) or freed while suspended inside a nested
// switchRegs call (the select in switchRegs), the goroutine unwinds here
// and simply returns, instead of leaking parked on a wake nothing will ever
// send to again.
func (t *Thread) park() {
	select {
	case <-t.wake:
	case <-t.kill:
		return
	}

	t.state = StateAlive
	t.ctx.logDebug("thread_start", t, nil)

	if !t.runStartFunc() {
		return
	}

	t.die()
}

// runStartFunc calls t.fn, recovering threadKilled so a freed-while-suspended
// Thread's goroutine unwinds cleanly. It reports whether fn ran to a normal
// return (false means t was killed and die must not run).
func (t *Thread) runStartFunc() (completed bool) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(threadKilled); ok {
				completed = false
				return
			}
			panic(r)
		}
	}()
	t.fn(t.ctx, t.ctx.buffer)
	return true
}

// die is the termination routine: it marks t Dead, clears the shared
// buffer, and switches back to t's caller without ever returning control
// to t. It never blocks on t.wake again, so the goroutine backing t simply
// exits once die's send completes.
func (t *Thread) die() {
	t.state = StateDead
	t.ctx.buffer = nil
	t.ctx.logDebug("thread_die", t, nil)
	t.caller.wake <- struct{}{}
}
