package reactive

import "log/slog"

// ReentrancyPolicy decides what happens when an effect is notified while its
// own body is running.
type ReentrancyPolicy uint8

const (
	// ReentrancyRerun schedules exactly one follow-up run once the current
	// run returns. A self-notification during that follow-up run is dropped.
	ReentrancyRerun ReentrancyPolicy = iota
	// ReentrancyDrop ignores the notification.
	ReentrancyDrop
	// ReentrancyError ignores the notification and reports
	// ErrReentrantSchedule through the error handler.
	ReentrancyError
)

func (p ReentrancyPolicy) String() string {
	switch p {
	case ReentrancyRerun:
		return "rerun"
	case ReentrancyDrop:
		return "drop"
	case ReentrancyError:
		return "error"
	default:
		return "unknown"
	}
}

// ErrorHandler receives the failures collected during a flush, joined into
// one error.
type ErrorHandler func(err error)

type options struct {
	logger           *slog.Logger
	onError          ErrorHandler
	writeEquality    bool
	computedEquality bool
	reentrancy       ReentrancyPolicy
}

func defaultOptions() options {
	return options{
		logger:           slog.New(slog.DiscardHandler),
		writeEquality:    true,
		computedEquality: true,
		reentrancy:       ReentrancyRerun,
	}
}

// Option configures a Runtime.
type Option func(*options)

// WithLogger sets the structured logger. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithErrorHandler installs the handler for flush failures. Without one, the
// joined error is re-panicked at the write that triggered the flush, after
// every queued effect has run.
func WithErrorHandler(fn ErrorHandler) Option {
	return func(o *options) {
		o.onError = fn
	}
}

// WithWriteEquality controls whether writing a value identical to the
// current one is a no-op. Enabled by default.
func WithWriteEquality(enabled bool) Option {
	return func(o *options) {
		o.writeEquality = enabled
	}
}

// WithComputedEquality controls whether a computed only wakes its readers
// when its recomputed value differs from the cached one. Enabled by default.
func WithComputedEquality(enabled bool) Option {
	return func(o *options) {
		o.computedEquality = enabled
	}
}

// WithReentrancy sets the policy for effects notified during their own run.
func WithReentrancy(p ReentrancyPolicy) Option {
	return func(o *options) {
		o.reentrancy = p
	}
}
