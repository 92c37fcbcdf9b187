package validator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// statements every collaborator agrees on
var (
	commonValid = []struct{ name, sql string }{
		{"select literal", "SELECT 1;"},
		{"select without semicolon", "SELECT 1"},
		{"select with where", "SELECT * FROM t WHERE x = 1;"},
		{"drop unknown table", "DROP TABLE missing_table;"},
		{"insert", "INSERT INTO users (id, name) VALUES (1, 'Alice')"},
		{"update", "UPDATE users SET name = 'Bob' WHERE id = 1"},
		{"delete", "DELETE FROM users WHERE id IN (1, 2, 3)"},
		{"join", "SELECT u.id FROM users u JOIN orders o ON o.user_id = u.id"},
		{"lowercase", "select 1"},
	}

	commonInvalid = []struct{ name, sql string }{
		{"misspelled keyword", "SELEC 1"},
		{"misspelled keywords", "SELEC * FORM"},
		{"empty", ""},
		{"whitespace", "   \n\t"},
		{"lone semicolon", ";"},
		{"unbalanced paren", "SELECT (1"},
		{"unterminated string", "SELECT 'abc"},
		{"dangling from", "SELECT 1 FROM"},
		{"deep unbalanced nesting", "SELECT " + strings.Repeat("(", 2000) + "1"},
		{"prose", "INVALID SQL"},
	}
)

func assertCommonCases(t *testing.T, v Validator) {
	t.Helper()

	for _, tt := range commonValid {
		t.Run("valid/"+tt.name, func(t *testing.T) {
			assert.NoError(t, v.Validate(tt.sql))
		})
	}
	for _, tt := range commonInvalid {
		t.Run("invalid/"+tt.name, func(t *testing.T) {
			assert.Error(t, v.Validate(tt.sql))
		})
	}
}

func TestMySQLValidator(t *testing.T) {
	assertCommonCases(t, ValidatorFunc(ValidateMySQL))

	t.Run("single statement grammar", func(t *testing.T) {
		assert.Error(t, ValidateMySQL("SELECT 1; SELECT 2"))
	})

	t.Run("idempotent", func(t *testing.T) {
		for i := 0; i < 3; i++ {
			assert.NoError(t, ValidateMySQL("SELECT 1;"))
			assert.Error(t, ValidateMySQL("SELEC 1"))
		}
	})
}

func TestTiDBValidator(t *testing.T) {
	v, err := ForDialect("tidb")
	if !assert.NoError(t, err) {
		return
	}
	assertCommonCases(t, v)

	t.Run("statement lists", func(t *testing.T) {
		assert.NoError(t, ValidateTiDB("SELECT 1; SELECT 2;"))
	})

	t.Run("not reentrant", func(t *testing.T) {
		r, ok := v.(Reentrant)
		assert.True(t, ok)
		assert.False(t, r.Reentrant())
	})

	t.Run("parser state does not leak between calls", func(t *testing.T) {
		assert.Error(t, v.Validate("SELECT (1"))
		assert.NoError(t, v.Validate("SELECT 1"))
	})
}
