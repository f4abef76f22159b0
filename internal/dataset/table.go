// Package dataset loads tabular source files into memory and resolves
// their column names against known synonym lists. Source releases rename
// columns freely, so callers never hard-code a column name: they resolve
// it first and handle the not-found outcome explicitly.
package dataset

// Row maps a column name to its raw cell value. Values stay untyped
// strings; coercion happens during normalization.
type Row map[string]string

// Table is an ordered sequence of rows read from one source file.
// All rows carry the same column set.
type Table struct {
	Columns []string
	Rows    []Row
}

// Empty reports whether the table holds no rows and no columns, the shape
// the loader substitutes for a missing or unreadable file.
func (t Table) Empty() bool {
	return len(t.Rows) == 0 && len(t.Columns) == 0
}

// Len returns the number of rows.
func (t Table) Len() int {
	return len(t.Rows)
}

// HasColumn reports whether name is one of the table's columns.
func (t Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// ResolveColumn returns the first candidate present among the table's
// columns. The boolean result is false when none match; an absent optional
// column is an expected outcome, not an error.
func ResolveColumn(t Table, candidates ...string) (string, bool) {
	for _, c := range candidates {
		if t.HasColumn(c) {
			return c, true
		}
	}
	return "", false
}
