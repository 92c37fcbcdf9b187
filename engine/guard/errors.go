package guard

import "github.com/pkg/errors"

// Rejection reasons. None of them is visible past the boundary, where every
// rejection reads as "invalid".
var (
	ErrAbsent       = errors.New("candidate statement is absent")
	ErrUnterminated = errors.New("candidate statement has no terminator within the length limit")
	ErrTooLong      = errors.New("candidate statement exceeds the length limit")
	ErrEmbeddedNUL  = errors.New("candidate statement contains a NUL byte")
	ErrInvalidUTF8  = errors.New("candidate statement is not valid UTF-8")
)
