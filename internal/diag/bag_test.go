package diag

import (
	"testing"

	"rill/internal/source"
)

func span(file source.FileID, start, end uint32) source.Span {
	return source.Span{File: file, Start: start, End: end}
}

func TestBagCap(t *testing.T) {
	b := NewBag(2)
	if !b.Add(NewError(SemaAttrWrongTarget, span(0, 0, 1), "one")) {
		t.Fatalf("first add should succeed")
	}
	if !b.Add(NewError(SemaAttrWrongTarget, span(0, 1, 2), "two")) {
		t.Fatalf("second add should succeed")
	}
	if b.Add(NewError(SemaAttrWrongTarget, span(0, 2, 3), "three")) {
		t.Fatalf("add past cap should report false")
	}
	if b.Len() != 2 {
		t.Fatalf("expected 2 items, got %d", b.Len())
	}
}

func TestBagSortStable(t *testing.T) {
	b := NewBag(10)
	b.Add(NewWarning(SemaReprConflict, span(0, 10, 12), "late"))
	b.Add(NewError(SemaAttrWrongTarget, span(0, 2, 4), "early"))
	b.Add(NewError(SemaAttrWrongTarget, span(0, 10, 12), "same span, higher severity"))
	b.Sort()

	items := b.Items()
	if items[0].Message != "early" {
		t.Fatalf("expected earliest span first, got %q", items[0].Message)
	}
	// Equal spans order by severity, errors before warnings.
	if items[1].Severity != SevError || items[2].Severity != SevWarning {
		t.Fatalf("expected error before warning at same span: %v, %v", items[1].Severity, items[2].Severity)
	}
}

func TestBagSeverityQueries(t *testing.T) {
	b := NewBag(4)
	if b.HasErrors() || b.HasWarnings() {
		t.Fatalf("empty bag should have no findings")
	}
	b.Add(NewWarning(SemaReprConflict, span(0, 0, 1), "warn"))
	if b.HasErrors() {
		t.Fatalf("warning must not count as error")
	}
	if !b.HasWarnings() {
		t.Fatalf("expected HasWarnings after adding a warning")
	}
	b.Add(NewError(SemaAttrWrongTarget, span(0, 0, 1), "err"))
	if !b.HasErrors() {
		t.Fatalf("expected HasErrors after adding an error")
	}
}

func TestDedupReporter(t *testing.T) {
	b := NewBag(10)
	r := NewDedupReporter(BagReporter{Bag: b})

	sp := span(0, 0, 3)
	r.Report(SemaAttrWrongTarget, SevError, sp, "dup", nil)
	r.Report(SemaAttrWrongTarget, SevError, sp, "dup", nil)
	r.Report(SemaAttrWrongTarget, SevError, sp, "other message", nil)

	if b.Len() != 2 {
		t.Fatalf("expected 2 unique diagnostics, got %d", b.Len())
	}
}
