// Package gedcom parses GEDCOM 5.5.1/5.5.5 line records into a tree of
// cross-linked records. The pipeline is tokenize, fold continuations,
// build the level-indexed tree, then resolve @id@ pointers; the first
// three stages are all-or-nothing, resolution is best-effort.
package gedcom

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Parse reads GEDCOM text and returns the fully built and resolved
// Document. Tokenizer, folder and builder failures abort the parse; no
// partial Document is ever returned. The reader is decoded first, so
// BOM-prefixed and UTF-16/32 input is accepted directly.
func Parse(r io.Reader) (*Document, error) {
	scanner := bufio.NewScanner(DecodeReader(r))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var lines []Line
	var warnings []string
	num := 0
	for scanner.Scan() {
		num++
		raw := scanner.Text()
		if strings.TrimSpace(raw) == "" {
			continue
		}
		line, err := ParseLine(raw, num)
		if err != nil {
			return nil, err
		}
		if line.Ignorable {
			warnings = append(warnings, fmt.Sprintf("line %d: obsolete tag %s", line.Num, line.Tag))
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	folded, foldWarnings := Fold(lines)
	doc, err := Build(folded)
	if err != nil {
		return nil, err
	}
	doc.Warnings = append(doc.Warnings, warnings...)
	doc.Warnings = append(doc.Warnings, foldWarnings...)

	Resolve(doc)
	return doc, nil
}

// ParseLines parses an already-materialized line sequence. Line numbers
// in errors and warnings are 1-based indexes into the slice.
func ParseLines(rawLines []string) (*Document, error) {
	return Parse(strings.NewReader(strings.Join(rawLines, "\n")))
}
