package mapping

import "strings"

// Dialect names accepted by the checker
const (
	PostgreSQL = "PostgreSQL"
	MySQL      = "MySQL"
	TiDB       = "TiDB"
)

// SupportedDialects lists every SQL dialect a collaborator exists for.
// Whether it is usable in a given build depends on the validator registry.
var SupportedDialects = []string{
	PostgreSQL,
	MySQL,
	TiDB,
}

// dialectAliases maps lowercase spellings to canonical names
var dialectAliases = map[string]string{
	"postgresql": PostgreSQL,
	"postgres":   PostgreSQL,
	"pg":         PostgreSQL,
	"pgsql":      PostgreSQL,
	"mysql":      MySQL,
	"mariadb":    MySQL,
	"tidb":       TiDB,
}

// NormalizeDialect returns the canonical dialect name for name, or "" if unknown
func NormalizeDialect(name string) string {
	return dialectAliases[strings.ToLower(strings.TrimSpace(name))]
}

// IsSupportedDialect checks if a dialect name (or alias) is known
func IsSupportedDialect(name string) bool {
	return NormalizeDialect(name) != ""
}
