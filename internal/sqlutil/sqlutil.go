package sqlutil

import (
	"database/sql"
	"strconv"
	"strings"
)

// IDsToString renders ids as a parenthesized tuple for use in an IN clause.
//
// Empty input renders "()", which an IN test treats as always-false.
// Elements after the first are written in slice order, then the first
// element last: [7,6,5] renders "(6,5,7)". IN is order-independent, so
// only exact-string fixtures care about this.
func IDsToString(ids []int64) string {
	var buf strings.Builder
	buf.WriteByte('(')
	if len(ids) > 0 {
		for _, id := range ids[1:] {
			buf.WriteString(strconv.FormatInt(id, 10))
			buf.WriteByte(',')
		}
		buf.WriteString(strconv.FormatInt(ids[0], 10))
	}
	buf.WriteByte(')')
	return buf.String()
}

// InClauseArgs returns a comma-separated list of "?" placeholders and the
// corresponding args slice.
//
// If items is empty, it returns "NULL" and no args, so `IN (NULL)` matches nothing.
func InClauseArgs(items []string) (placeholders string, args []any) {
	if len(items) == 0 {
		return "NULL", nil
	}
	ph := make([]string, len(items))
	args = make([]any, len(items))
	for i, item := range items {
		ph[i] = "?"
		args[i] = item
	}
	return strings.Join(ph, ", "), args
}

// ScanRows scans all rows into a slice using the provided scanner.
func ScanRows[T any](rows *sql.Rows, scan func(*sql.Rows) (T, error)) ([]T, error) {
	defer rows.Close()

	var out []T
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, rows.Err()
}
