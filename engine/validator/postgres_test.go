package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omniql-engine/sqlcheck/mapping"
)

func TestPostgreSQLValidator(t *testing.T) {
	assertCommonCases(t, ValidatorFunc(ValidatePostgreSQL))

	tests := []struct {
		name  string
		sql   string
		valid bool
	}{
		{"statement list", "SELECT 1; SELECT 2;", true},
		{"cte", "WITH x AS (SELECT 1 AS n) SELECT n FROM x", true},
		{"create table", "CREATE TABLE t (id int PRIMARY KEY, name text NOT NULL)", true},
		{"returning", "INSERT INTO t (id) VALUES (1) RETURNING id", true},
		{"cast", "SELECT 1::int", true},
		{"positional parameter", "SELECT $1", true},
		{"comment only", "-- nothing here", false},
		{"drop without name", "DROP TABLE;", false},
		{"double from", "SELECT * FROM FROM t", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePostgreSQL(tt.sql)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}

	t.Run("empty is no statement", func(t *testing.T) {
		assert.ErrorIs(t, ValidatePostgreSQL(""), ErrNoStatement)
	})
}

func TestPostgreSQLRegistered(t *testing.T) {
	v, err := ForDialect("postgres")
	require.NoError(t, err)
	assert.NoError(t, v.Validate("SELECT 1;"))
	assert.Contains(t, Dialects(), mapping.PostgreSQL)
}
