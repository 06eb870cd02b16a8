package collide

import "github.com/vovakirdan/tui-collide/internal/core"

// Any reports whether a overlaps at least one entity in b.
// It stops at the first match.
func Any[E Entity](a Entity, b []E) bool {
	for _, e := range b {
		if Check(a, e) {
			return true
		}
	}
	return false
}

// AnyAt is Any with a temporarily moved to at.
func AnyAt[E Entity](a Entity, b []E, at core.Vector2) bool {
	return withPosition(a, at, func() bool {
		return Any(a, b)
	})
}

// First returns the first entity in b that a overlaps, in slice order.
// found is false when nothing matches.
func First[E Entity](a Entity, b []E) (match E, found bool) {
	for _, e := range b {
		if Check(a, e) {
			return e, true
		}
	}
	return match, false
}

// FirstAt is First with a temporarily moved to at.
func FirstAt[E Entity](a Entity, b []E, at core.Vector2) (E, bool) {
	type result struct {
		match E
		found bool
	}
	r := withPosition(a, at, func() result {
		m, ok := First(a, b)
		return result{m, ok}
	})
	return r.match, r.found
}

// All returns every entity in b that a overlaps, preserving order.
// Duplicates in b are reported as many times as they appear.
// The result is never nil.
func All[E Entity](a Entity, b []E) []E {
	return AllInto(a, b, make([]E, 0))
}

// AllInto appends every entity in b that a overlaps to into and returns the
// extended slice. Pass into[:0] to reuse a buffer across frames.
func AllInto[E Entity](a Entity, b []E, into []E) []E {
	for _, e := range b {
		if Check(a, e) {
			into = append(into, e)
		}
	}
	return into
}

// AllAt is All with a temporarily moved to at.
func AllAt[E Entity](a Entity, b []E, at core.Vector2) []E {
	return AllIntoAt(a, b, make([]E, 0), at)
}

// AllIntoAt is AllInto with a temporarily moved to at.
func AllIntoAt[E Entity](a Entity, b []E, into []E, at core.Vector2) []E {
	return withPosition(a, at, func() []E {
		return AllInto(a, b, into)
	})
}
