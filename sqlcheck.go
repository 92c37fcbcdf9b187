package sqlcheck

import (
	"github.com/omniql-engine/sqlcheck/mapping"
)

// DefaultDialect is PostgreSQL in every build. With cgo the parser is
// pg_query_go, without it the same libpg_query compiled to WebAssembly.
func DefaultDialect() string {
	return mapping.PostgreSQL
}

// IsValidSQL reports whether query is a syntactically valid statement in the
// default dialect. No state is kept between calls.
func IsValidSQL(query string) bool {
	c, err := New(DefaultDialect())
	if err != nil {
		return false
	}
	return c.IsValid(query)
}

// Verdict encodes a result for C and wasm callers: 1 valid, 0 invalid
func Verdict(valid bool) int32 {
	if valid {
		return 1
	}
	return 0
}
