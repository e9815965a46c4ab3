package annotate

import (
	"sort"

	"github.com/dshills/facet/internal/face/attr"
)

// NoChange is returned as the next-change position when no annotation
// boundary lies beyond the queried position.
const NoChange = -1

// Source supplies face references for positions. The returned references
// are ordered highest priority first; resolving them as a list gives the
// earlier entries precedence.
type Source interface {
	// AnnotationsAt returns the references active at pos and the next
	// position at which the answer changes, or NoChange.
	AnnotationsAt(pos int) ([]attr.Ref, int)
}

// Priority levels for spans. Higher priorities win conflicting attributes.
const (
	PriorityLow      = 50
	PriorityNormal   = 100
	PriorityHigh     = 150
	PriorityCritical = 200
)

// Span is one annotated half-open interval [Start, End).
type Span struct {
	Start    int
	End      int
	Ref      attr.Ref
	Priority int
}

// Contains reports whether pos falls inside the span.
func (s Span) Contains(pos int) bool {
	return pos >= s.Start && pos < s.End
}

// Store is a Source over explicitly added spans, keyed by ID.
type Store struct {
	spans map[string]Span
	order []string
	added int
	seq   map[string]int
}

// NewStore creates an empty span store.
func NewStore() *Store {
	return &Store{
		spans: make(map[string]Span),
		seq:   make(map[string]int),
	}
}

// Add installs or replaces the span with the given id.
func (s *Store) Add(id string, span Span) {
	if _, ok := s.spans[id]; !ok {
		s.order = append(s.order, id)
		s.added++
		s.seq[id] = s.added
	}
	s.spans[id] = span
}

// Remove deletes the span with the given id.
func (s *Store) Remove(id string) bool {
	if _, ok := s.spans[id]; !ok {
		return false
	}
	delete(s.spans, id)
	delete(s.seq, id)
	for i, sid := range s.order {
		if sid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

// Clear removes all spans.
func (s *Store) Clear() {
	s.spans = make(map[string]Span)
	s.seq = make(map[string]int)
	s.order = s.order[:0]
}

// Len returns the number of spans.
func (s *Store) Len() int {
	return len(s.spans)
}

// AnnotationsAt implements Source. Spans containing pos are returned
// highest priority first; equal priorities order newest first, matching
// the convention that the most recently added annotation is the most
// specific.
func (s *Store) AnnotationsAt(pos int) ([]attr.Ref, int) {
	type hit struct {
		priority int
		seq      int
		ref      attr.Ref
	}
	var hits []hit
	next := NoChange
	for _, id := range s.order {
		span := s.spans[id]
		if span.Contains(pos) {
			hits = append(hits, hit{priority: span.Priority, seq: s.seq[id], ref: span.Ref})
			if next == NoChange || span.End < next {
				next = span.End
			}
		} else if span.Start > pos && (next == NoChange || span.Start < next) {
			next = span.Start
		}
	}
	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].priority != hits[j].priority {
			return hits[i].priority > hits[j].priority
		}
		return hits[i].seq > hits[j].seq
	})
	refs := make([]attr.Ref, len(hits))
	for i, h := range hits {
		refs[i] = h.ref
	}
	return refs, next
}
