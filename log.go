package greenthread

import (
	"github.com/joeycumines/logiface"
	"github.com/joeycumines/stumpy"
)

// Logger is the structured logger type accepted by WithLogger. A nil
// Logger (the default) disables all logging at effectively no cost: every
// method on a nil *logiface.Logger[E] is safe to call and reports
// logiface.LevelDisabled.
type Logger = *logiface.Logger[*stumpy.Event]

// NewJSONLogger builds a Logger writing newline-delimited JSON at level
// and above, suitable for passing to WithLogger. It is a thin convenience
// wrapper over stumpy.L.New for callers that don't need custom stumpy
// options.
func NewJSONLogger(level logiface.Level) Logger {
	return stumpy.L.New(
		stumpy.L.WithStumpy(),
		logiface.WithLevel[*stumpy.Event](level),
	)
}

// logDebug traces a thread lifecycle or control-transfer event. It is a
// no-op (down to the nil check) when ctx has no logger configured.
func (ctx *Ctx) logDebug(event string, self, other *Thread) {
	if ctx == nil || ctx.logger == nil {
		return
	}
	b := ctx.logger.Debug().Str("event", event)
	if self != nil {
		b = b.Int("self", self.id)
	}
	if other != nil {
		b = b.Int("other", other.id)
	}
	b.Log("greenthread")
}
