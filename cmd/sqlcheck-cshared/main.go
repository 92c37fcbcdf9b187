//go:build cgo

// Command sqlcheck-cshared builds a C library around the PostgreSQL parser:
//
//	go build -buildmode=c-shared -o libsqlcheck.so ./cmd/sqlcheck-cshared
//
// Both exports take a NUL-terminated string and return 1 for valid SQL and
// 0 for anything else, including NULL.
package main

import "C"

import (
	"unsafe"

	"github.com/omniql-engine/sqlcheck"
	"github.com/omniql-engine/sqlcheck/mapping"
)

//export pg_parse_is_valid_sql
func pg_parse_is_valid_sql(query *C.char) C.int {
	c, err := sqlcheck.New(mapping.PostgreSQL)
	if err != nil {
		return 0
	}
	return C.int(sqlcheck.Verdict(c.CheckPointer(unsafe.Pointer(query))))
}

//export is_valid_sql
func is_valid_sql(query *C.char) C.int {
	if query == nil {
		return 0
	}
	return pg_parse_is_valid_sql(query)
}

func main() {}
