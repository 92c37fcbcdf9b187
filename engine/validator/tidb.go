package validator

import (
	"github.com/pingcap/tidb/parser"
	_ "github.com/pingcap/tidb/parser/test_driver"
	"github.com/pkg/errors"

	"github.com/omniql-engine/sqlcheck/mapping"
)

func init() {
	Register(mapping.TiDB, func() Validator { return newTiDBValidator() })
}

// tidbValidator owns a parser, which keeps lexer state between calls and
// must not be shared by concurrent callers.
type tidbValidator struct {
	p *parser.Parser
}

func newTiDBValidator() *tidbValidator {
	return &tidbValidator{p: parser.New()}
}

func (v *tidbValidator) Validate(query string) error {
	stmts, _, err := v.p.Parse(query, "", "")
	if err != nil {
		return errors.Wrap(err, mapping.TiDB)
	}
	if len(stmts) == 0 {
		return ErrNoStatement
	}
	return nil
}

func (v *tidbValidator) Reentrant() bool {
	return false
}

// ValidateTiDB validates TiDB SQL syntax with a parser of its own
func ValidateTiDB(query string) error {
	return newTiDBValidator().Validate(query)
}
