//go:build !cgo

package validator

import (
	"github.com/pkg/errors"
	pgquery "github.com/wasilibs/go-pgquery"

	"github.com/omniql-engine/sqlcheck/mapping"
)

func init() {
	Register(mapping.PostgreSQL, func() Validator { return ValidatorFunc(ValidatePostgreSQL) })
}

// ValidatePostgreSQL validates PostgreSQL SQL syntax. Without cgo, libpg_query
// runs as a WebAssembly module inside the process.
func ValidatePostgreSQL(query string) error {
	result, err := pgquery.Parse(query)
	if err != nil {
		return errors.Wrap(err, mapping.PostgreSQL)
	}
	if len(result.GetStmts()) == 0 {
		return ErrNoStatement
	}
	return nil
}
