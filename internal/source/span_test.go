package source

import "testing"

func TestSpanBasics(t *testing.T) {
	s := Span{File: 1, Start: 3, End: 7}
	if s.Empty() {
		t.Fatalf("span %v should not be empty", s)
	}
	if s.Len() != 4 {
		t.Fatalf("expected length 4, got %d", s.Len())
	}
	if got := s.String(); got != "1:3-7" {
		t.Fatalf("unexpected String: %q", got)
	}

	empty := Span{File: 1, Start: 5, End: 5}
	if !empty.Empty() {
		t.Fatalf("span %v should be empty", empty)
	}
}

func TestSpanCover(t *testing.T) {
	a := Span{File: 0, Start: 4, End: 8}
	b := Span{File: 0, Start: 2, End: 6}
	c := a.Cover(b)
	if c.Start != 2 || c.End != 8 {
		t.Fatalf("expected cover 2-8, got %d-%d", c.Start, c.End)
	}

	other := Span{File: 9, Start: 0, End: 100}
	if got := a.Cover(other); got != a {
		t.Fatalf("cover across files should be a no-op, got %v", got)
	}
}
