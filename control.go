package greenthread

// Resume transfers control to to, passing arg. If to has never run, arg is
// delivered as the second argument to its start function; otherwise it
// becomes the return value of to's most recent Yield/Resume. Resume blocks
// until to (or whatever it eventually resumes) switches back to the
// current Thread, then returns whatever value was passed to that switch.
//
// Resuming a Dead Thread is a defined no-op that returns nil without
// switching. Resuming the current Thread is a defined no-op that returns
// arg unchanged.
func (ctx *Ctx) Resume(to *Thread, arg any) any {
	if to.state == StateDead {
		return nil
	}

	curr := ctx.current
	if to == curr {
		return arg
	}

	savedCaller := curr.caller
	to.caller = curr
	ctx.current = to
	ctx.buffer = arg

	ctx.logDebug("resume", curr, to)
	switchRegs(curr, to)

	if to.state == StateDead {
		to.destroy()
	}
	curr.caller = savedCaller

	return ctx.buffer
}

// Yield resumes ctx's caller, passing arg, and returns whatever value is
// next passed to this Thread via Resume. Yielding from the root Thread
// (which has no caller) is undefined behavior and panics.
func (ctx *Ctx) Yield(arg any) any {
	caller := ctx.Caller()
	if caller == nil {
		panic("greenthread: yield from a thread with no caller")
	}
	return ctx.Resume(caller, arg)
}

// Switch performs a raw, unstructured transfer from from to to: it does
// not update Current, Caller, or the shared buffer. It is for advanced
// callers that manage their own bookkeeping. from must be the currently
// running Thread.
func (ctx *Ctx) Switch(from, to *Thread) {
	if from != ctx.current {
		panic("greenthread: switch from a thread that is not current")
	}
	if from == to {
		return
	}
	ctx.logDebug("switch", from, to)
	switchRegs(from, to)
}

// Caller returns the Thread that most recently resumed the current Thread,
// or nil if there isn't one (such as for the root Thread). Switch does not
// update Current, so inside a Thread entered via Switch, Caller reports the
// caller of the Thread that called Switch.
func (ctx *Ctx) Caller() *Thread {
	return ctx.current.caller
}

// Current returns the Thread presently running on ctx. Never nil.
func (ctx *Ctx) Current() *Thread {
	return ctx.current
}
