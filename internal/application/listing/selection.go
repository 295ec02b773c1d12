// Package listing derives the visible, ordered subset of the portfolio and insights
// collections from the toolbar state: a single-select category, a free-text search and,
// for insights, a sort mode. Every function here is pure.
package listing

import (
	"strings"

	"github.com/Satoshi-Nakamoto68/HangKyGroup/internal/domain"
)

// All is the wildcard selector value.
const All = "all"

type selectionKind int

const (
	selectAll selectionKind = iota
	selectOne
	selectUnrecognized
)

// Selection is a parsed category or sector selector. A raw value outside the enum is kept
// as Unrecognized and matches no record.
type Selection[T ~string] struct {
	Raw   string `json:"raw"`
	Value T      `json:"value,omitempty"`
	kind  selectionKind
}

// SelectSector parses a portfolio sector selector. "" and "all" select everything.
func SelectSector(raw string) Selection[domain.Sector] {
	return parseSelection(raw, domain.ParseSector)
}

// SelectCategory parses an insights category selector. Matching is exact and
// case-sensitive against the stored category id.
func SelectCategory(raw string) Selection[domain.Category] {
	return parseSelection(raw, domain.ParseCategory)
}

func parseSelection[T ~string](raw string, parse func(string) (T, bool)) Selection[T] {
	if raw == "" || raw == All {
		return Selection[T]{Raw: All, kind: selectAll}
	}
	if v, ok := parse(raw); ok {
		return Selection[T]{Raw: raw, Value: v, kind: selectOne}
	}
	return Selection[T]{Raw: raw, kind: selectUnrecognized}
}

// All reports whether the wildcard is selected.
func (s Selection[T]) All() bool { return s.kind == selectAll }

// Recognized is false only for a raw value outside the enum.
func (s Selection[T]) Recognized() bool { return s.kind != selectUnrecognized }

func (s Selection[T]) Matches(v T) bool {
	switch s.kind {
	case selectAll:
		return true
	case selectOne:
		return v == s.Value
	}
	return false
}

// Normalize lowercases, trims and collapses whitespace runs to one space.
func Normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// matchesSearch reports whether the normalized query occurs in any field. An empty
// query matches everything.
func matchesSearch(query string, fields ...string) bool {
	if query == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(Normalize(f), query) {
			return true
		}
	}
	return false
}

func filter[T any](records []T, keep func(T) bool) []T {
	out := make([]T, 0, len(records))
	for _, r := range records {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}
