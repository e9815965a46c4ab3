package annotate

import (
	"testing"

	"github.com/dshills/facet/internal/face/attr"
)

func TestAnnotationsAtOrdering(t *testing.T) {
	s := NewStore()
	s.Add("syntax", Span{Start: 0, End: 100, Ref: attr.Name("keyword"), Priority: PriorityLow})
	s.Add("search", Span{Start: 10, End: 20, Ref: attr.Name("match"), Priority: PriorityHigh})
	s.Add("region", Span{Start: 5, End: 50, Ref: attr.Name("region"), Priority: PriorityNormal})

	refs, _ := s.AnnotationsAt(15)
	want := []attr.Ref{attr.Name("match"), attr.Name("region"), attr.Name("keyword")}
	if len(refs) != len(want) {
		t.Fatalf("got %d refs, want %d", len(refs), len(want))
	}
	for i := range want {
		if refs[i] != want[i] {
			t.Errorf("refs[%d] = %v, want %v", i, refs[i], want[i])
		}
	}
}

func TestAnnotationsAtNextChange(t *testing.T) {
	s := NewStore()
	s.Add("a", Span{Start: 0, End: 30, Ref: attr.Name("a"), Priority: PriorityNormal})
	s.Add("b", Span{Start: 10, End: 20, Ref: attr.Name("b"), Priority: PriorityNormal})

	if _, next := s.AnnotationsAt(0); next != 10 {
		t.Errorf("next at 0 = %d, want 10 (b starts)", next)
	}
	if _, next := s.AnnotationsAt(12); next != 20 {
		t.Errorf("next at 12 = %d, want 20 (b ends)", next)
	}
	if _, next := s.AnnotationsAt(25); next != 30 {
		t.Errorf("next at 25 = %d, want 30 (a ends)", next)
	}
	if refs, next := s.AnnotationsAt(40); len(refs) != 0 || next != NoChange {
		t.Errorf("at 40 = %v, %d; want empty, NoChange", refs, next)
	}
}

func TestEqualPriorityNewestFirst(t *testing.T) {
	s := NewStore()
	s.Add("old", Span{Start: 0, End: 10, Ref: attr.Name("old"), Priority: PriorityNormal})
	s.Add("new", Span{Start: 0, End: 10, Ref: attr.Name("new"), Priority: PriorityNormal})

	refs, _ := s.AnnotationsAt(5)
	if refs[0] != attr.Ref(attr.Name("new")) {
		t.Errorf("refs[0] = %v, want the newest span first", refs[0])
	}
}

func TestAddReplaceRemove(t *testing.T) {
	s := NewStore()
	s.Add("x", Span{Start: 0, End: 10, Ref: attr.Name("one"), Priority: PriorityNormal})
	s.Add("x", Span{Start: 0, End: 10, Ref: attr.Name("two"), Priority: PriorityNormal})
	if s.Len() != 1 {
		t.Fatalf("Len = %d, want 1 after replace", s.Len())
	}
	refs, _ := s.AnnotationsAt(5)
	if refs[0] != attr.Ref(attr.Name("two")) {
		t.Errorf("refs[0] = %v, want the replacement", refs[0])
	}

	if !s.Remove("x") {
		t.Error("Remove returned false for a live id")
	}
	if s.Remove("x") {
		t.Error("Remove returned true for a dead id")
	}
	if refs, _ := s.AnnotationsAt(5); len(refs) != 0 {
		t.Errorf("refs after remove = %v, want none", refs)
	}

	s.Add("y", Span{Start: 0, End: 1, Ref: attr.Name("y"), Priority: PriorityNormal})
	s.Clear()
	if s.Len() != 0 {
		t.Errorf("Len after Clear = %d", s.Len())
	}
}
