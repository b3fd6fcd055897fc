package diag

import (
	"testing"

	"dlint/internal/source"
)

func TestDedupReporter(t *testing.T) {
	bag := NewBag(10)
	r := NewDedupReporter(BagReporter{Bag: bag})

	sp := source.Span{Start: 1, End: 4}
	r.Report(LintFunctionAttribute, SevWarning, sp, "dup", nil, nil)
	r.Report(LintFunctionAttribute, SevWarning, sp, "dup", nil, nil)
	r.Report(LintFunctionAttribute, SevWarning, sp, "other message", nil, nil)
	r.Report(LintFunctionAttribute, SevWarning, source.Span{Start: 9, End: 12}, "dup", nil, nil)

	if bag.Len() != 3 {
		t.Errorf("Len = %d, want 3", bag.Len())
	}
}

func TestDedupReporterNilNext(t *testing.T) {
	r := NewDedupReporter(nil)
	// must not panic
	r.Report(LexUnknownChar, SevError, source.Span{}, "msg", nil, nil)
}
