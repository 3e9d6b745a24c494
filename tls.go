package greenthread

// TlsKey is an opaque handle for a coroutine-local storage slot. Keys are
// dense positive integers issued by a Ctx and are never recycled.
type TlsKey int

// TlsNew issues a fresh TlsKey, unique within ctx, never reused.
func (ctx *Ctx) TlsNew() TlsKey {
	ctx.tlsCount++
	return TlsKey(ctx.tlsCount)
}

// TlsGet returns the current Thread's value for key, or nil if it was
// never set on this Thread. TLS is per-Thread: the same key holds
// independent values in different Threads.
func (ctx *Ctx) TlsGet(key TlsKey) any {
	return *ctx.tlsSlot(key)
}

// TlsSet stores value in the current Thread's slot for key, returning the
// previous value (nil if unset).
func (ctx *Ctx) TlsSet(key TlsKey, value any) any {
	slot := ctx.tlsSlot(key)
	old := *slot
	*slot = value
	return old
}

// TlsFree is a no-op: keys are permanent for the lifetime of a Ctx. It
// exists for parity with the reference API.
func (ctx *Ctx) TlsFree(TlsKey) {}

// tlsSlot returns a pointer into the current Thread's tls array for key,
// growing the array lazily (and exactly) to the high-water-mark key index
// used by that Thread.
func (ctx *Ctx) tlsSlot(key TlsKey) *any {
	if key <= 0 {
		panic("greenthread: invalid tls key")
	}
	t := ctx.current
	n := int(key)
	if len(t.tls) < n {
		grown := make([]any, n)
		copy(grown, t.tls)
		t.tls = grown
	}
	return &t.tls[n-1]
}
