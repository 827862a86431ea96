// Package strings provides string and slice helpers
package strings

import (
	std "strings"

	"golang.org/x/text/cases"
)

// IfEmpty returns def if in is empty, otherwise returns in
func IfEmpty[T any](in []T, def []T) []T {
	if len(in) == 0 {
		return def
	}
	return in
}

// MustString returns s if it has non whitespace content otherwise panics
// name is used in the panic message so you can tell what was missing
func MustString(s string, name string) string {
	if std.TrimSpace(s) == "" {
		panic(name + " is required")
	}
	return s
}

// MustPrefix normalizes and asserts a root path like /prs or /contributors
// ensures a single leading slash and no trailing slash, panics on an empty root
func MustPrefix(s string) string {
	s = std.TrimSpace(s)
	s = "/" + std.Trim(s, " /")
	if s == "/" {
		panic("root path is required")
	}
	return s
}

// Fold returns the trimmed, Unicode case folded form of s
// logins and repo names compare equal when their folded forms match
func Fold(s string) string {
	s = std.TrimSpace(s)
	if s == "" {
		return ""
	}
	// a Caser carries state, never share one across goroutines
	return cases.Fold().String(s)
}

// FoldSet folds every non blank value into a set
func FoldSet(values []string) map[string]struct{} {
	out := make(map[string]struct{}, len(values))
	for _, v := range values {
		if f := Fold(v); f != "" {
			out[f] = struct{}{}
		}
	}
	return out
}

// SplitCSV splits a comma separated list, trimming blanks away
func SplitCSV(s string) []string {
	parts := std.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := std.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// Ptr returns a pointer to s, or nil if s is empty
func Ptr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Deref returns "" if ps is nil, else *ps
func Deref(ps *string) string {
	if ps == nil {
		return ""
	}
	return *ps
}
