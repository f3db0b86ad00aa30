package gedcom

import "strings"

// Line is one tokenized GEDCOM line: level, optional cross-reference id,
// tag, optional value. Before folding each Line maps to a physical source
// line; after folding, continuation lines have been absorbed into Value.
type Line struct {
	Num    int    // 1-based physical line number
	Level  int
	XrefID string // bare id (no @s); set only when the line declares a record
	Tag    string
	Value  string
	// HasValue distinguishes "1 NOTE" (absent) from "1 NOTE " (empty).
	HasValue bool
	// Ignorable marks lines carrying an obsolete tag. They still occupy
	// their place in the tree so nesting stays intact.
	Ignorable bool
}

// ParseLine tokenizes a single physical line. Grammar:
//
//	level SP [xref_id SP] tag [SP value]
//
// The value is the remainder of the line verbatim; embedded @..@ pointer
// syntax is left for the resolver. Blank lines must be filtered out by the
// caller before tokenizing.
func ParseLine(raw string, num int) (Line, error) {
	line := Line{Num: num}

	levelTok, rest, found := strings.Cut(raw, " ")
	if !found {
		return line, &MalformedLineError{Num: num, Text: raw, Reason: "missing tag"}
	}
	level, ok := parseLevel(levelTok)
	if !ok {
		return line, &MalformedLineError{Num: num, Text: raw, Reason: "invalid level " + levelTok}
	}
	line.Level = level

	// Optional cross-reference id before the tag.
	if strings.HasPrefix(rest, "@") {
		xrefTok, after, found := strings.Cut(rest, " ")
		if !found {
			return line, &MalformedLineError{Num: num, Text: raw, Reason: "cross-reference id without tag"}
		}
		id, ok := xrefIDOf(xrefTok)
		if !ok {
			return line, &MalformedLineError{Num: num, Text: raw, Reason: "invalid cross-reference id " + xrefTok}
		}
		line.XrefID = id
		rest = after
	}

	tag, value, hasValue := strings.Cut(rest, " ")
	switch {
	case tag == "":
		return line, &MalformedLineError{Num: num, Text: raw, Reason: "missing tag"}
	case IsKnownTag(tag):
		line.Ignorable = IsObsoleteTag(tag)
	case IsUserDefinedTag(tag):
		// Vendor extension, kept as-is.
	default:
		return line, &MalformedLineError{Num: num, Text: raw, Reason: "invalid tag " + tag}
	}
	line.Tag = tag
	line.Value = value
	line.HasValue = hasValue

	return line, nil
}

// parseLevel accepts a non-negative integer of at most two digits (0-99).
func parseLevel(tok string) (int, bool) {
	if tok == "" || len(tok) > 2 {
		return 0, false
	}
	n := 0
	for i := 0; i < len(tok); i++ {
		c := tok[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	return n, true
}

// xrefIDOf strips the enclosing @s and validates the inner characters.
func xrefIDOf(tok string) (string, bool) {
	if len(tok) < 3 || tok[0] != '@' || tok[len(tok)-1] != '@' {
		return "", false
	}
	inner := tok[1 : len(tok)-1]
	for i := 0; i < len(inner); i++ {
		c := inner[i]
		if !isAlnum(c) {
			return "", false
		}
	}
	return inner, true
}

// PointerTarget returns the bare id when value is exactly a pointer
// (@id@) and reports whether it matched.
func PointerTarget(value string) (string, bool) {
	return xrefIDOf(value)
}

func isAlnum(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z'
}
