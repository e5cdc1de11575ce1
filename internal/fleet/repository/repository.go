// Package repository provides PostgreSQL persistence for the fleet entities.
package repository

import (
	"fmt"
	"strings"
)

// filterColumn pairs a query parameter name with the column it filters.
type filterColumn struct {
	key    string
	column string
}

// likeEscaper neutralizes LIKE wildcards so filter values match literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// buildSubstringFilters builds a WHERE clause with case-insensitive substring
// matches. Columns come from a fixed allow-list, never from raw request input,
// and values are escaped so "%" and "_" are plain characters.
func buildSubstringFilters(filters map[string]string, columns []filterColumn) (string, []any) {
	var clauses []string
	var args []any

	for _, fc := range columns {
		value, ok := filters[fc.key]
		if !ok || value == "" {
			continue
		}
		args = append(args, likeEscaper.Replace(value))
		clauses = append(clauses, fmt.Sprintf(`%s ILIKE '%%' || $%d || '%%' ESCAPE '\'`, fc.column, len(args)))
	}

	if len(clauses) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

// isPostgreSQLUniqueViolation checks if the error is a PostgreSQL unique constraint violation.
func isPostgreSQLUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "duplicate key") || strings.Contains(errMsg, "unique constraint")
}

// isPostgreSQLForeignKeyViolation checks if the error is a PostgreSQL foreign key violation.
func isPostgreSQLForeignKeyViolation(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(strings.ToLower(err.Error()), "foreign key")
}
