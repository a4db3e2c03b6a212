// Package search provides helpers for safe substring search over SQL LIKE
// and ILIKE predicates.
package search

import (
	"strings"
	"time"
)

// DefaultSearchTimeout bounds the execution time of search queries.
// Substring search over large tables can be slow; the timeout keeps a
// pathological pattern from holding a pooled connection indefinitely.
const DefaultSearchTimeout = 10 * time.Second

// likeEscaper escapes the LIKE metacharacters and the escape character
// itself. The backslash must be replaced first conceptually, but
// strings.Replacer applies all rules in a single pass, so ordering here
// only documents intent.
var likeEscaper = strings.NewReplacer(
	`\`, `\\`,
	`%`, `\%`,
	`_`, `\_`,
)

// EscapeLike escapes user-supplied text for literal matching inside a LIKE
// or ILIKE pattern. A literal "%" in the input matches a percent sign
// instead of acting as a wildcard.
//
// This does not provide SQL-injection safety on its own; the result must
// still be passed as a bound parameter. Escaping only prevents semantic
// widening of the pattern.
func EscapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// EscapeILIKE escapes keyword and wraps it in "%...%" for substring
// matching with a bound ILIKE parameter.
func EscapeILIKE(keyword string) string {
	return "%" + EscapeLike(keyword) + "%"
}
