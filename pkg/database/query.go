package database

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// IsUniqueViolation reports whether err is a PostgreSQL unique_violation (23505).
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// LikePattern wraps s for a substring match with LIKE/ILIKE, escaping wildcards.
func LikePattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

// Where accumulates AND-ed predicates with positional arguments.
//
//	var w database.Where
//	w.Add("kind = ?", kind)
//	rows, err := db.QueryContext(ctx, "SELECT ... FROM t"+w.SQL(), w.Args()...)
type Where struct {
	clauses []string
	args    []any
}

// Add appends a predicate. Each "?" in clause is bound, in order, to the next arg.
func (w *Where) Add(clause string, args ...any) {
	for _, a := range args {
		w.args = append(w.args, a)
		clause = strings.Replace(clause, "?", fmt.Sprintf("$%d", len(w.args)), 1)
	}
	w.clauses = append(w.clauses, clause)
}

// SQL renders the WHERE clause, or "" when no predicate was added.
func (w *Where) SQL() string {
	if len(w.clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.clauses, " AND ")
}

// Args returns the bound arguments in placeholder order.
func (w *Where) Args() []any {
	return w.args
}
