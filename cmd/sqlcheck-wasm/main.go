//go:build wasip1

// Command sqlcheck-wasm is the sandbox build of the checker. It exports
// is_valid_sql plus malloc/free so a host can place a NUL-terminated
// statement in linear memory:
//
//	GOOS=wasip1 GOARCH=wasm go build -buildmode=c-shared -o sqlcheck.wasm ./cmd/sqlcheck-wasm
//
// The parser is libpg_query built for WebAssembly, as cgo is unavailable here.
package main

import (
	"unsafe"

	"github.com/omniql-engine/sqlcheck"
	"github.com/omniql-engine/sqlcheck/engine/hostmem"
	"github.com/omniql-engine/sqlcheck/mapping"
)

var arena = hostmem.NewArena()

//go:wasmexport is_valid_sql
func isValidSQL(ptr uint32) int32 {
	c, err := sqlcheck.New(mapping.PostgreSQL)
	if err != nil {
		return 0
	}
	return sqlcheck.Verdict(c.CheckPointer(unsafe.Pointer(uintptr(ptr))))
}

//go:wasmexport malloc
func malloc(size uint32) uint32 {
	return uint32(uintptr(arena.Alloc(int(size))))
}

//go:wasmexport free
func free(ptr uint32) {
	arena.Free(unsafe.Pointer(uintptr(ptr)))
}

func main() {}
