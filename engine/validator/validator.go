package validator

import (
	"sort"
	"sync"

	"github.com/pkg/errors"

	"github.com/omniql-engine/sqlcheck/mapping"
)

// Validator checks the syntax of native SQL for one dialect. A nil error
// means the text parsed as at least one well-formed statement.
type Validator interface {
	Validate(query string) error
}

// Reentrant is implemented by validators that know whether they may be
// entered from several goroutines at once. Validators without it are
// assumed to be reentrant.
type Reentrant interface {
	Reentrant() bool
}

// ValidatorFunc adapts a plain function to Validator
type ValidatorFunc func(query string) error

// Validate calls f(query)
func (f ValidatorFunc) Validate(query string) error {
	return f(query)
}

var (
	// ErrNoStatement is returned when the text parses but holds no statement,
	// e.g. an empty string or only comments.
	ErrNoStatement = errors.New("no statement found")
	// ErrUnsupportedDialect is returned for unknown dialects and for dialects
	// whose parser is not compiled into this build.
	ErrUnsupportedDialect = errors.New("unsupported dialect")
)

var (
	registryMu sync.RWMutex
	registry   = map[string]func() Validator{}
)

// Register makes a collaborator available under a dialect name. Collaborator
// files call it from init so build constraints decide what is available.
func Register(dialect string, factory func() Validator) {
	name := canonicalDialect(dialect)

	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = factory
}

// ForDialect returns a new validator for the dialect name or alias
func ForDialect(dialect string) (Validator, error) {
	name := canonicalDialect(dialect)

	registryMu.RLock()
	factory, ok := registry[name]
	registryMu.RUnlock()

	if !ok {
		return nil, errors.Wrapf(ErrUnsupportedDialect, "%q", dialect)
	}
	return factory(), nil
}

// Dialects lists the dialects available in this build
func Dialects() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ValidateSQL validates SQL syntax based on dialect
func ValidateSQL(query string, dialect string) error {
	v, err := ForDialect(dialect)
	if err != nil {
		return err
	}
	return v.Validate(query)
}

// canonicalDialect resolves known aliases and leaves other names as given
func canonicalDialect(dialect string) string {
	if name := mapping.NormalizeDialect(dialect); name != "" {
		return name
	}
	return dialect
}
