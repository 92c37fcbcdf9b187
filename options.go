package sqlcheck

import (
	"log/slog"

	"github.com/omniql-engine/sqlcheck/engine/guard"
	"github.com/omniql-engine/sqlcheck/engine/validator"
)

// Option configures a Checker
type Option func(*options)

type options struct {
	guard     guard.Config
	logger    *slog.Logger
	validator validator.Validator
}

func defaultOptions() options {
	return options{
		guard:  guard.DefaultConfig(),
		logger: slog.New(slog.DiscardHandler),
	}
}

// WithMaxLength sets the largest accepted statement in bytes; 0 removes the limit
func WithMaxLength(n int) Option {
	return func(o *options) {
		o.guard.MaxLength = n
	}
}

// WithInvalidUTF8 forwards text that is not well-formed UTF-8 to the parser
// instead of rejecting it up front
func WithInvalidUTF8() Option {
	return func(o *options) {
		o.guard.AllowInvalidUTF8 = true
	}
}

// WithLogger sets the logger for rejections and parser faults (debug level)
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithValidator replaces the dialect's parser with v
func WithValidator(v validator.Validator) Option {
	return func(o *options) {
		o.validator = v
	}
}
