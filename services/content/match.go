package content

import (
	"strings"

	"verdanta/models"
)

// Predicate decides whether a normalized record fills a display slot.
type Predicate[T any] func(T) bool

// FirstMatch returns the first record satisfying any predicate, scanning
// predicates in declaration order. A record matched by an earlier predicate
// wins over one matched by a later predicate regardless of list position.
// ok is false when nothing matches, including on an empty list.
func FirstMatch[T any](records []T, preds ...Predicate[T]) (T, bool) {
	for _, p := range preds {
		for _, r := range records {
			if p(r) {
				return r, true
			}
		}
	}
	var zero T
	return zero, false
}

// TitleContains matches sections whose title contains substr,
// case-insensitively.
func TitleContains(substr string) Predicate[models.SectionView] {
	substr = strings.ToLower(substr)
	return func(s models.SectionView) bool {
		return strings.Contains(strings.ToLower(s.Title), substr)
	}
}

// OrderEquals matches sections pinned to a fixed ordinal.
func OrderEquals(n int) Predicate[models.SectionView] {
	return func(s models.SectionView) bool {
		return s.Order == n
	}
}
