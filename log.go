package arquery

import (
	"sync"

	"github.com/getsentry/sentry-go"
	"github.com/inconshreveable/log15"
)

var (
	log        = NewLog("arquery")
	sentryOnce sync.Once
)

func NewLog(module string) log15.Logger {
	return log15.New("module", module)
}

// WithSentry makes lg also report error and crit records to sentry, which
// drops them unless the application called sentry.Init.
func WithSentry(lg log15.Logger) log15.Logger {
	lg.SetHandler(log15.MultiHandler(lg.GetHandler(), sentryHandler(func(msg string) {
		sentry.CaptureMessage(msg)
	})))
	return lg
}

// ForwardErrorsToSentry turns on sentry reporting for the package logger.
// Off by default; repeated calls are no-ops.
func ForwardErrorsToSentry() {
	sentryOnce.Do(func() {
		WithSentry(log)
	})
}

func sentryHandler(capture func(msg string)) log15.Handler {
	return log15.FuncHandler(func(r *log15.Record) error {
		if r.Lvl <= log15.LvlError {
			capture(string(log15.JsonFormat().Format(r)))
		}
		return nil
	})
}
