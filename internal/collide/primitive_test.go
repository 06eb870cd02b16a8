package collide

import (
	"testing"

	"github.com/vovakirdan/tui-collide/internal/core"
)

func TestPrimitiveQueries(t *testing.T) {
	a := newBoxEntity("a", 0, 0, 10, 10)

	if !CheckPoint(a, core.Vec(5, 5)) {
		t.Error("CheckPoint() inside should be true")
	}
	if CheckPoint(a, core.Vec(10, 5)) {
		t.Error("CheckPoint() on exclusive right edge should be false")
	}
	if !CheckLine(a, core.Vec(-5, 5), core.Vec(5, 5)) {
		t.Error("CheckLine() crossing should be true")
	}
	if CheckLine(a, core.Vec(15, 15), core.Vec(20, 20)) {
		t.Error("CheckLine() outside should be false")
	}
	if !CheckRect(a, core.NewRect(8, 8, 5, 5)) {
		t.Error("CheckRect() overlapping should be true")
	}
	if CheckRect(a, core.NewRect(10, 0, 5, 5)) {
		t.Error("CheckRect() adjacent should be false")
	}
}

func TestPrimitiveQueriesWithoutCollider(t *testing.T) {
	bare := &testEntity{name: "bare", collidable: true}

	if CheckPoint(bare, core.Vec(0, 0)) {
		t.Error("CheckPoint() without collider should be false")
	}
	if CheckLine(bare, core.Vec(-1, -1), core.Vec(1, 1)) {
		t.Error("CheckLine() without collider should be false")
	}
	if CheckRect(bare, core.NewRect(-1, -1, 2, 2)) {
		t.Error("CheckRect() without collider should be false")
	}
	if CheckPointAt(bare, core.Vec(0, 0), core.Vec(0, 0)) {
		t.Error("CheckPointAt() without collider should be false")
	}
}

func TestPrimitiveQueriesAt(t *testing.T) {
	a := newBoxEntity("a", 0, 0, 2, 2)
	home := a.Position()
	at := core.Vec(20, 20)

	if !CheckPointAt(a, core.Vec(21, 21), at) {
		t.Error("CheckPointAt() should hit at override position")
	}
	if CheckPointAt(a, core.Vec(1, 1), at) {
		t.Error("CheckPointAt() should not hit at home position")
	}
	if !CheckLineAt(a, core.Vec(15, 21), core.Vec(25, 21), at) {
		t.Error("CheckLineAt() should hit at override position")
	}
	if !CheckRectAt(a, core.NewRect(21, 21, 5, 5), at) {
		t.Error("CheckRectAt() should hit at override position")
	}
	if a.Position() != home {
		t.Errorf("Position after override queries = %v, expected %v", a.Position(), home)
	}
}
