// Package normalize holds the string normalization shared by the roster
// loader and the resolver, so both sides of a surname lookup agree.
package normalize

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// Surname returns the lookup key for a surname: NFC-composed, trimmed and
// uppercased with Italian casing rules. Internal whitespace is kept as-is,
// so "DE ROSSI" and "DEROSSI" stay different names; accents are significant.
func Surname(s string) string {
	s = norm.NFC.String(s)
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	// cases.Caser is stateful, one per call
	return cases.Upper(language.Italian).String(s)
}

// Surnames normalizes every entry and drops the empty ones, keeping order
// and duplicates.
func Surnames(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if n := Surname(s); n != "" {
			out = append(out, n)
		}
	}
	return out
}

// SplitLines splits pasted text into one entry per line.
func SplitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.Split(text, "\n")
}

// ColumnName normalizes a header cell: trimmed, uppercased, inner
// whitespace runs turned into a single underscore.
func ColumnName(name string) string {
	name = strings.TrimSpace(norm.NFC.String(name))
	name = whitespaceRun.ReplaceAllString(name, "_")
	return cases.Upper(language.Und).String(name)
}
