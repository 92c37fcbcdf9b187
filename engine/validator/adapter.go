package validator

import (
	"log/slog"
	"sync"

	"github.com/pkg/errors"
)

// Adapter is the single call site of a collaborator. It turns the
// collaborator's outcome into a verdict and keeps any fault inside the call.
type Adapter struct {
	v      Validator
	mu     *sync.Mutex // set when v is not reentrant
	logger *slog.Logger
}

// NewAdapter wraps v. A nil logger discards everything.
func NewAdapter(v Validator, logger *slog.Logger) *Adapter {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	a := &Adapter{v: v, logger: logger}
	if r, ok := v.(Reentrant); ok && !r.Reentrant() {
		a.mu = &sync.Mutex{}
	}
	return a
}

// IsValid reports whether query is syntactically valid. Errors and panics
// from the collaborator both yield false.
func (a *Adapter) IsValid(query string) (valid bool) {
	if a.mu != nil {
		a.mu.Lock()
		defer a.mu.Unlock()
	}

	defer func() {
		if r := recover(); r != nil {
			a.logger.Debug("parser fault",
				slog.Any("error", errors.Errorf("recovered: %v", r)),
				slog.Int("length", len(query)))
			valid = false
		}
	}()

	if err := a.v.Validate(query); err != nil {
		a.logger.Debug("statement rejected",
			slog.Any("error", err),
			slog.Int("length", len(query)))
		return false
	}
	return true
}
