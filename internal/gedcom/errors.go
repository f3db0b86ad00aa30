package gedcom

import (
	"errors"
	"fmt"
)

// Sentinel errors for the fatal parse failure classes. Typed errors below
// wrap these so callers can match with errors.Is while still getting the
// offending line in the message.
var (
	ErrMalformedLine = errors.New("malformed line")
	ErrLevelSkip     = errors.New("level skip")
	ErrDuplicateXref = errors.New("duplicate cross-reference id")
)

// MalformedLineError reports a physical line that could not be tokenized.
type MalformedLineError struct {
	Num    int    // 1-based source line number
	Text   string // the raw line
	Reason string
}

func (e *MalformedLineError) Error() string {
	return fmt.Sprintf("line %d: %s: %q", e.Num, e.Reason, e.Text)
}

func (e *MalformedLineError) Unwrap() error { return ErrMalformedLine }

// StructureError reports a logical line whose level jumps more than one
// past the current nesting depth.
type StructureError struct {
	Num   int
	Tag   string
	Level int
	Want  int // the deepest level a child could legally have here
}

func (e *StructureError) Error() string {
	return fmt.Sprintf("line %d: tag %s at level %d skips levels (max allowed %d)", e.Num, e.Tag, e.Level, e.Want)
}

func (e *StructureError) Unwrap() error { return ErrLevelSkip }

// DuplicateXrefError reports a cross-reference id declared twice.
type DuplicateXrefError struct {
	Num    int
	XrefID string
}

func (e *DuplicateXrefError) Error() string {
	return fmt.Sprintf("line %d: cross-reference id @%s@ already declared", e.Num, e.XrefID)
}

func (e *DuplicateXrefError) Unwrap() error { return ErrDuplicateXref }
