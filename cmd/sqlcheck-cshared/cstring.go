//go:build cgo

package main

/*
#include <stdlib.h>
*/
import "C"

import "unsafe"

// withCString hands f a C copy of s that is freed once f returns, the way a
// host passes a statement into the library
func withCString(s string, f func(*C.char) int) int {
	p := C.CString(s)
	defer C.free(unsafe.Pointer(p))
	return f(p)
}

func pgParseIsValid(p *C.char) int {
	return int(pg_parse_is_valid_sql(p))
}

func isValid(p *C.char) int {
	return int(is_valid_sql(p))
}
