package gedcom

import (
	"errors"
	"testing"
)

func TestParseLine_RecordDeclaration(t *testing.T) {
	line, err := ParseLine("0 @I1@ INDI", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if line.Level != 0 {
		t.Errorf("expected level 0, got %d", line.Level)
	}
	if line.XrefID != "I1" {
		t.Errorf("expected xref id %q, got %q", "I1", line.XrefID)
	}
	if line.Tag != "INDI" {
		t.Errorf("expected tag INDI, got %q", line.Tag)
	}
	if line.HasValue {
		t.Errorf("expected no value, got %q", line.Value)
	}
}

func TestParseLine_TagWithValue(t *testing.T) {
	line, err := ParseLine("1 NAME John /Doe/", 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if line.Level != 1 {
		t.Errorf("expected level 1, got %d", line.Level)
	}
	if line.Tag != "NAME" {
		t.Errorf("expected tag NAME, got %q", line.Tag)
	}
	if !line.HasValue || line.Value != "John /Doe/" {
		t.Errorf("expected value %q, got %q (has=%v)", "John /Doe/", line.Value, line.HasValue)
	}
}

func TestParseLine_ValueKeptVerbatim(t *testing.T) {
	// Runs of spaces and embedded @..@ syntax must survive untouched.
	line, err := ParseLine("2 NOTE spaced  out @I1@ text", 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if line.Value != "spaced  out @I1@ text" {
		t.Errorf("value not verbatim: %q", line.Value)
	}
}

func TestParseLine_AbsentVersusEmptyValue(t *testing.T) {
	absent, err := ParseLine("1 NOTE", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if absent.HasValue {
		t.Error("expected absent value for bare tag")
	}

	empty, err := ParseLine("1 NOTE ", 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !empty.HasValue || empty.Value != "" {
		t.Errorf("expected present empty value, got has=%v value=%q", empty.HasValue, empty.Value)
	}
}

func TestParseLine_PointerValue(t *testing.T) {
	line, err := ParseLine("1 FAMS @F1@", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if line.XrefID != "" {
		t.Errorf("pointer value must not become a declaration, got xref %q", line.XrefID)
	}
	id, ok := PointerTarget(line.Value)
	if !ok || id != "F1" {
		t.Errorf("expected pointer target F1, got %q (ok=%v)", id, ok)
	}
}

func TestParseLine_UserDefinedTag(t *testing.T) {
	line, err := ParseLine("1 _UID 12345", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if line.Tag != "_UID" {
		t.Errorf("expected tag _UID, got %q", line.Tag)
	}
}

func TestParseLine_ObsoleteTagIgnorable(t *testing.T) {
	line, err := ParseLine("1 SSN 000-00-0000", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !line.Ignorable {
		t.Error("expected obsolete tag to be marked ignorable")
	}
}

func TestParseLine_Malformed(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"no tag", "0"},
		{"negative level", "-1 INDI"},
		{"non-numeric level", "x INDI"},
		{"three digit level", "100 NOTE deep"},
		{"unknown tag", "1 BOGUS value"},
		{"double underscore tag", "1 __UID x"},
		{"xref without tag", "0 @I1@"},
		{"empty xref", "0 @@ INDI"},
		{"xref with bad chars", "0 @I 1@ INDI"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseLine(tt.raw, 7)
			if err == nil {
				t.Fatalf("expected error for %q", tt.raw)
			}
			if !errors.Is(err, ErrMalformedLine) {
				t.Errorf("expected ErrMalformedLine, got %v", err)
			}
			var mle *MalformedLineError
			if !errors.As(err, &mle) {
				t.Fatalf("expected *MalformedLineError, got %T", err)
			}
			if mle.Num != 7 {
				t.Errorf("expected line number 7 in error, got %d", mle.Num)
			}
		})
	}
}

func TestPointerTarget_NonPointers(t *testing.T) {
	for _, v := range []string{"", "@", "@@", "plain text", "@I1@ trailing", "leading @I1@"} {
		if _, ok := PointerTarget(v); ok {
			t.Errorf("expected %q not to parse as pointer", v)
		}
	}
}
