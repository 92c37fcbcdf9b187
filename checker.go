package sqlcheck

import (
	"log/slog"
	"runtime/debug"
	"unsafe"

	"github.com/omniql-engine/sqlcheck/engine/guard"
	"github.com/omniql-engine/sqlcheck/engine/validator"
	"github.com/omniql-engine/sqlcheck/mapping"
)

// ============================================
// CHECKER STRUCT
// ============================================

// Checker answers "is this syntactically valid SQL" for one dialect. It
// keeps no per-call state and is safe for concurrent use.
type Checker struct {
	dialect string
	guard   *guard.Guard
	adapter *validator.Adapter
	logger  *slog.Logger
}

// ============================================
// CONSTRUCTORS
// ============================================

// New creates a checker for a dialect name or alias. With WithValidator the
// dialect is only used as a label.
func New(dialect string, opts ...Option) (*Checker, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	name := mapping.NormalizeDialect(dialect)
	if name == "" {
		name = dialect
	}

	v := o.validator
	if v == nil {
		var err error
		if v, err = validator.ForDialect(dialect); err != nil {
			return nil, err
		}
	}

	logger := o.logger.With(slog.String("dialect", name))
	return &Checker{
		dialect: name,
		guard:   guard.New(o.guard),
		adapter: validator.NewAdapter(v, logger),
		logger:  logger,
	}, nil
}

// Dialect returns the canonical dialect name
func (c *Checker) Dialect() string {
	return c.dialect
}

// ============================================
// CHECKS
// ============================================

// Check returns true only when the candidate is present, passes the input
// guard, and parses as valid SQL
func (c *Checker) Check(candidate guard.Candidate) bool {
	text, err := c.guard.Admit(candidate)
	if err != nil {
		c.logger.Debug("input rejected",
			slog.Any("error", err),
			slog.Int("length", candidate.Len()))
		return false
	}
	return c.adapter.IsValid(text)
}

// IsValid checks a Go string
func (c *Checker) IsValid(query string) bool {
	return c.Check(guard.Present(query))
}

// CheckPointer checks a NUL-terminated string owned by the caller. A nil
// pointer is invalid. The terminator is looked for within the configured
// length limit only; a memory fault while reading yields false where the
// platform reports faults as panics.
func (c *Checker) CheckPointer(p unsafe.Pointer) (valid bool) {
	defer debug.SetPanicOnFault(debug.SetPanicOnFault(true))
	defer func() {
		if r := recover(); r != nil {
			c.logger.Debug("input fault", slog.Any("panic", r))
			valid = false
		}
	}()

	return c.Check(guard.FromCString(p, c.guard.MaxLength()))
}
