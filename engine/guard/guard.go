package guard

import (
	"strings"
	"unicode/utf8"
)

// DefaultMaxLength bounds the statement size when no limit is configured
const DefaultMaxLength = 1 << 20

// Config controls the checks applied before a candidate reaches the parser
type Config struct {
	// MaxLength is the largest accepted statement in bytes. 0 disables the limit.
	MaxLength int
	// AllowInvalidUTF8 forwards text that is not well-formed UTF-8.
	AllowInvalidUTF8 bool
}

// DefaultConfig returns the configuration used when none is given
func DefaultConfig() Config {
	return Config{MaxLength: DefaultMaxLength}
}

// Guard decides whether a candidate may be forwarded to the parser. It holds
// no per-call state and is safe for concurrent use.
type Guard struct {
	cfg Config
}

// New creates a guard. A negative MaxLength is treated as 0.
func New(cfg Config) *Guard {
	if cfg.MaxLength < 0 {
		cfg.MaxLength = 0
	}
	return &Guard{cfg: cfg}
}

// MaxLength returns the configured limit, 0 meaning unlimited
func (g *Guard) MaxLength() int {
	return g.cfg.MaxLength
}

// Admit returns the statement text if c is safe to parse. The text is
// returned unchanged; the error says why it was not admitted.
func (g *Guard) Admit(c Candidate) (string, error) {
	if !c.present {
		return "", ErrAbsent
	}
	if c.unterminated {
		return "", ErrUnterminated
	}
	if g.cfg.MaxLength > 0 && len(c.text) > g.cfg.MaxLength {
		return "", ErrTooLong
	}
	if strings.IndexByte(c.text, 0) >= 0 {
		return "", ErrEmbeddedNUL
	}
	if !g.cfg.AllowInvalidUTF8 && !utf8.ValidString(c.text) {
		return "", ErrInvalidUTF8
	}

	return c.text, nil
}
