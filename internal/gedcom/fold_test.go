package gedcom

import "testing"

func mustParseLines(t *testing.T, raws ...string) []Line {
	t.Helper()
	lines := make([]Line, 0, len(raws))
	for i, raw := range raws {
		line, err := ParseLine(raw, i+1)
		if err != nil {
			t.Fatalf("line %d %q: %v", i+1, raw, err)
		}
		lines = append(lines, line)
	}
	return lines
}

func TestFold_ConcatenationAndContinuation(t *testing.T) {
	lines := mustParseLines(t,
		"0 NOTE first part",
		"1 CONC  second part",
		"1 CONT third line",
	)
	folded, warnings := Fold(lines)
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	if len(folded) != 1 {
		t.Fatalf("expected 1 logical line, got %d", len(folded))
	}
	want := "first part second part\nthird line"
	if folded[0].Value != want {
		t.Errorf("expected %q, got %q", want, folded[0].Value)
	}
}

func TestFold_OrderSensitive(t *testing.T) {
	// base + CONC + CONT is not the same as base + CONT + CONC.
	a, _ := Fold(mustParseLines(t, "0 NOTE a", "1 CONC b", "1 CONT c"))
	b, _ := Fold(mustParseLines(t, "0 NOTE a", "1 CONT c", "1 CONC b"))
	if a[0].Value == b[0].Value {
		t.Errorf("expected order-sensitive folding, both gave %q", a[0].Value)
	}
	if a[0].Value != "ab\nc" {
		t.Errorf("expected %q, got %q", "ab\nc", a[0].Value)
	}
	if b[0].Value != "a\ncb" {
		t.Errorf("expected %q, got %q", "a\ncb", b[0].Value)
	}
}

func TestFold_AbsentContinuationValueIsEmpty(t *testing.T) {
	lines := mustParseLines(t,
		"0 NOTE para one",
		"1 CONT",
		"1 CONT para two",
	)
	folded, _ := Fold(lines)
	want := "para one\n\npara two"
	if folded[0].Value != want {
		t.Errorf("expected %q, got %q", want, folded[0].Value)
	}
}

func TestFold_ContinuationGivesValueToBareTag(t *testing.T) {
	lines := mustParseLines(t, "0 NOTE", "1 CONT text")
	folded, _ := Fold(lines)
	if !folded[0].HasValue {
		t.Error("expected folded line to have a value")
	}
	if folded[0].Value != "\ntext" {
		t.Errorf("expected %q, got %q", "\ntext", folded[0].Value)
	}
}

func TestFold_OtherTagTerminatesFolding(t *testing.T) {
	lines := mustParseLines(t,
		"0 NOTE one",
		"1 CONC  more",
		"1 SOUR cite",
		"1 CONT after",
	)
	folded, _ := Fold(lines)
	if len(folded) != 2 {
		t.Fatalf("expected 2 logical lines, got %d", len(folded))
	}
	if folded[0].Value != "one more" {
		t.Errorf("expected %q, got %q", "one more", folded[0].Value)
	}
	// The stray CONT after SOUR folds into SOUR, the most recent line.
	if folded[1].Value != "cite\nafter" {
		t.Errorf("expected %q, got %q", "cite\nafter", folded[1].Value)
	}
}

func TestFold_NoContinuationTagSurvives(t *testing.T) {
	lines := mustParseLines(t,
		"0 @I1@ INDI",
		"1 NOTE a",
		"2 CONC b",
		"2 CONT c",
		"1 SEX M",
	)
	folded, _ := Fold(lines)
	for _, l := range folded {
		if isContinuation(l.Tag) {
			t.Fatalf("continuation tag %s leaked past folding", l.Tag)
		}
	}
	if len(folded) != 3 {
		t.Errorf("expected 3 logical lines, got %d", len(folded))
	}
}

func TestFold_LeadingContinuationDropped(t *testing.T) {
	lines := mustParseLines(t, "0 CONT orphan", "0 HEAD")
	folded, warnings := Fold(lines)
	if len(folded) != 1 || folded[0].Tag != "HEAD" {
		t.Fatalf("expected orphan continuation to be dropped, got %+v", folded)
	}
	if len(warnings) != 1 {
		t.Errorf("expected a warning for the dropped continuation, got %v", warnings)
	}
}
