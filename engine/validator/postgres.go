//go:build cgo

package validator

import (
	pg_query "github.com/pganalyze/pg_query_go/v5"
	"github.com/pkg/errors"

	"github.com/omniql-engine/sqlcheck/mapping"
)

func init() {
	Register(mapping.PostgreSQL, func() Validator { return ValidatorFunc(ValidatePostgreSQL) })
}

// ValidatePostgreSQL validates PostgreSQL SQL syntax through libpg_query
func ValidatePostgreSQL(query string) error {
	result, err := pg_query.Parse(query)
	if err != nil {
		return errors.Wrap(err, mapping.PostgreSQL)
	}
	if len(result.Stmts) == 0 {
		return ErrNoStatement
	}
	return nil
}
