package validator

import (
	"github.com/pkg/errors"
	"github.com/xwb1989/sqlparser"

	"github.com/omniql-engine/sqlcheck/mapping"
)

func init() {
	Register(mapping.MySQL, func() Validator { return ValidatorFunc(ValidateMySQL) })
}

// ValidateMySQL validates MySQL SQL syntax. The grammar takes a single
// statement with an optional trailing semicolon.
func ValidateMySQL(query string) error {
	stmt, err := sqlparser.Parse(query)
	if err != nil {
		return errors.Wrap(err, mapping.MySQL)
	}
	if stmt == nil {
		return ErrNoStatement
	}
	return nil
}
