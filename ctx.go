package greenthread

const (
	// MinStackSize is the minimum value ctx.SetStackSize / WithStackSize
	// will accept; anything smaller is silently clamped to the existing
	// value, matching the C reference implementation's gt_ctx_set_stack_size.
	MinStackSize = 4096

	// DefaultStackSize is the stack size new Ctx values start with.
	DefaultStackSize = 131072
)

type (
	// Ctx is the universe in which a family of coroutines lives. It owns
	// the root Thread (standing in for the goroutine that created it), the
	// currently running Thread, and the single-word buffer used to carry a
	// value across each context switch.
	//
	// A Ctx and every Thread derived from it must be used from one
	// goroutine at a time; see the package doc comment.
	Ctx struct {
		current *Thread
		root    *Thread

		// buffer carries the argument/return value across exactly one
		// context switch: written by the suspending side immediately
		// before switching, read by the resuming side immediately after.
		buffer any

		defaultStackSize int
		tlsCount         int
		nextThreadID     int

		logger Logger
	}

	// Option configures a Ctx at construction time.
	Option func(*Ctx)
)

// NewCtx allocates a context. Its root Thread, representing the calling
// goroutine, starts in StateAlive and is never transitioned to StateDead by
// this package.
func NewCtx(opts ...Option) *Ctx {
	ctx := &Ctx{defaultStackSize: DefaultStackSize}
	ctx.root = &Thread{
		ctx:   ctx,
		state: StateAlive,
		wake:  make(chan struct{}),
		kill:  make(chan struct{}),
	}
	ctx.current = ctx.root
	for _, opt := range opts {
		opt(ctx)
	}
	return ctx
}

// WithStackSize sets the context's default stack size, subject to the same
// clamp as SetStackSize.
func WithStackSize(size int) Option {
	return func(ctx *Ctx) { ctx.SetStackSize(size) }
}

// WithLogger attaches a structured logger used to trace lifecycle and
// control-transfer events at debug level. A nil Logger (the default)
// disables logging entirely at no cost.
func WithLogger(logger Logger) Option {
	return func(ctx *Ctx) { ctx.logger = logger }
}

// SetStackSize updates the context's default stack size for subsequently
// created Threads. Values below MinStackSize are silently ignored.
func (ctx *Ctx) SetStackSize(size int) {
	if size >= MinStackSize {
		ctx.defaultStackSize = size
	}
}

// Close runs the root Thread's destructors and releases its
// coroutine-local storage. Callers must ensure no non-root Thread derived
// from ctx is still alive - this package does not enumerate or terminate
// child coroutines on their owner's behalf, except for Threads created with
// ThreadCreateChild, which are freed as a destructor of their parent.
func (ctx *Ctx) Close() error {
	ctx.root.destroy()
	// destroy marks the Thread it tears down Dead; the root Thread keeps
	// StateAlive, as documented on NewCtx.
	ctx.root.state = StateAlive
	return nil
}
