package guard

import "unsafe"

// Candidate is the statement text handed across the boundary. It is a
// borrowed view: the backing memory belongs to the caller and must stay
// unchanged until the check returns. The zero value is an absent candidate.
type Candidate struct {
	text         string
	present      bool
	unterminated bool
}

// Absent returns the candidate for a missing (null) reference
func Absent() Candidate {
	return Candidate{}
}

// Present wraps text that the caller did supply
func Present(text string) Candidate {
	return Candidate{text: text, present: true}
}

// FromBytes views b as a candidate without copying. A nil slice is absent,
// an empty non-nil slice is an empty statement.
func FromBytes(b []byte) Candidate {
	if b == nil {
		return Absent()
	}
	return Candidate{text: unsafe.String(unsafe.SliceData(b), len(b)), present: true}
}

// FromCString views a NUL-terminated byte sequence at p. At most limit+1
// bytes are read looking for the terminator; if none is found the candidate
// is marked unterminated. A limit <= 0 scans until the terminator.
func FromCString(p unsafe.Pointer, limit int) Candidate {
	if p == nil {
		return Absent()
	}

	for n := 0; limit <= 0 || n <= limit; n++ {
		if *(*byte)(unsafe.Add(p, n)) == 0 {
			return Candidate{text: unsafe.String((*byte)(p), n), present: true}
		}
	}

	return Candidate{present: true, unterminated: true}
}

// IsAbsent reports whether the caller passed no text at all
func (c Candidate) IsAbsent() bool {
	return !c.present
}

// Len returns the length of the text in bytes (0 when absent or unterminated)
func (c Candidate) Len() int {
	return len(c.text)
}
