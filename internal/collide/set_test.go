package collide

import (
	"testing"

	"github.com/vovakirdan/tui-collide/internal/core"
)

func names(es []*testEntity) []string {
	out := make([]string, len(es))
	for i, e := range es {
		out[i] = e.name
	}
	return out
}

func equalNames(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestSetQueriesEmpty(t *testing.T) {
	a := newBoxEntity("a", 0, 0, 10, 10)
	var none []*testEntity

	if Any(a, none) {
		t.Error("Any() on empty set should be false")
	}
	if _, found := First(a, none); found {
		t.Error("First() on empty set should find nothing")
	}
	all := All(a, none)
	if all == nil || len(all) != 0 {
		t.Errorf("All() on empty set = %v, expected empty non-nil slice", all)
	}
}

func TestSetQueries(t *testing.T) {
	a := newBoxEntity("a", 0, 0, 10, 10)
	far := newBoxEntity("far", 50, 50, 5, 5)
	left := newBoxEntity("left", -5, 0, 6, 6)
	ghost := newBoxEntity("ghost", 2, 2, 2, 2)
	ghost.collidable = false
	right := newBoxEntity("right", 9, 9, 3, 3)

	candidates := []*testEntity{far, a, left, ghost, right, left}

	if !Any(a, candidates) {
		t.Error("Any() should find an overlap")
	}

	first, found := First(a, candidates)
	if !found || first != left {
		t.Errorf("First() = %v (found=%v), expected left", first, found)
	}

	got := names(All(a, candidates))
	want := []string{"left", "right", "left"}
	if !equalNames(got, want) {
		t.Errorf("All() = %v, expected %v", got, want)
	}

	// Every reported entity must satisfy Check and appear in input order
	for _, e := range All(a, candidates) {
		if !Check(a, e) {
			t.Errorf("All() returned %s which does not satisfy Check()", e.name)
		}
	}
}

func TestAnyShortCircuits(t *testing.T) {
	a := newBoxEntity("a", 0, 0, 10, 10)
	hits := []*testEntity{
		newBoxEntity("h1", 1, 1, 1, 1),
		newBoxEntity("h2", 2, 2, 1, 1),
		newBoxEntity("h3", 3, 3, 1, 1),
	}

	if !Any(a, hits) {
		t.Fatal("Any() should match")
	}
	if calls := a.collider.(*testBox).calls; calls != 1 {
		t.Errorf("collider consulted %d times, expected 1", calls)
	}
}

func TestAllIntoReusesBuffer(t *testing.T) {
	a := newBoxEntity("a", 0, 0, 10, 10)
	b := newBoxEntity("b", 5, 5, 10, 10)
	c := newBoxEntity("c", 8, 0, 4, 4)
	stale := newBoxEntity("stale", 0, 0, 1, 1)

	buf := make([]*testEntity, 0, 8)
	buf = append(buf, stale)

	// Appending keeps existing content
	out := AllInto(a, []*testEntity{b, c}, buf)
	if !equalNames(names(out), []string{"stale", "b", "c"}) {
		t.Errorf("AllInto() = %v, expected [stale b c]", names(out))
	}

	// Reslicing to zero reuses the backing array
	out = AllInto(a, []*testEntity{c}, out[:0])
	if !equalNames(names(out), []string{"c"}) {
		t.Errorf("AllInto() after reset = %v, expected [c]", names(out))
	}
	if &out[0] != &buf[0] {
		t.Error("AllInto() should reuse the caller's backing array")
	}
}

func TestSetQueriesAt(t *testing.T) {
	a := newBoxEntity("a", 0, 0, 4, 4)
	b := newBoxEntity("b", 20, 0, 4, 4)
	c := newBoxEntity("c", 22, 2, 4, 4)
	candidates := []*testEntity{b, c}
	at := core.Vec(21, 1)
	home := a.Position()

	if Any(a, candidates) {
		t.Fatal("Any() at home should be false")
	}
	if !AnyAt(a, candidates, at) {
		t.Error("AnyAt() should match")
	}

	first, found := FirstAt(a, candidates, at)
	if !found || first != b {
		t.Errorf("FirstAt() = %v (found=%v), expected b", first, found)
	}
	if _, found := FirstAt(a, candidates, core.Vec(-100, 0)); found {
		t.Error("FirstAt() far away should find nothing")
	}

	if got := names(AllAt(a, candidates, at)); !equalNames(got, []string{"b", "c"}) {
		t.Errorf("AllAt() = %v, expected [b c]", got)
	}

	buf := AllIntoAt(a, candidates, nil, core.Vec(23, 3))
	if !equalNames(names(buf), []string{"b", "c"}) {
		t.Errorf("AllIntoAt() = %v, expected [b c]", names(buf))
	}

	if a.Position() != home {
		t.Errorf("Position after override queries = %v, expected %v", a.Position(), home)
	}
}

func TestSetQueriesAcceptInterfaceSlices(t *testing.T) {
	a := newBoxEntity("a", 0, 0, 10, 10)
	b := newBoxEntity("b", 5, 5, 1, 1)
	var candidates []Entity = []Entity{a, b}

	match, found := First(a, candidates)
	if !found || match != Entity(b) {
		t.Errorf("First() = %v (found=%v), expected b", match, found)
	}
}
