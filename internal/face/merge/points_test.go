package merge

import "testing"

func TestPointsDetectSameKindCycle(t *testing.T) {
	var p Points
	if !p.push("a", KindInherit) {
		t.Fatal("first push refused")
	}
	if !p.push("b", KindInherit) {
		t.Fatal("unrelated push refused")
	}
	if p.push("a", KindInherit) {
		t.Error("repeated inherit push on a should be refused")
	}
	if p.Depth() != 2 {
		t.Errorf("Depth = %d, want 2", p.Depth())
	}
}

func TestPointsRemapHidesInherit(t *testing.T) {
	var p Points
	p.push("a", KindInherit)
	if !p.push("a", KindRemap) {
		t.Fatal("remap push under inherit refused")
	}
	// An active remap of a means the plain name now refers to the terminal
	// definition, so an inherit push is allowed again.
	if !p.push("a", KindInherit) {
		t.Error("inherit push under active remap refused")
	}
	// But a second remap of the same name closes a cycle.
	if p.push("a", KindRemap) {
		t.Error("second remap push on a should be refused")
	}
}

func TestPointsPopRestores(t *testing.T) {
	var p Points
	p.push("a", KindInherit)
	if p.push("a", KindInherit) {
		t.Fatal("want refusal while a is active")
	}
	p.pop()
	if !p.push("a", KindInherit) {
		t.Error("push after pop refused")
	}
}

func TestKindString(t *testing.T) {
	if KindInherit.String() != "inherit" || KindRemap.String() != "remap" {
		t.Errorf("kind strings = %q, %q", KindInherit, KindRemap)
	}
}
