package gedcom

import "fmt"

// Fold merges CONC/CONT continuation lines into the value of the
// preceding line, producing the logical line sequence the tree builder
// consumes. CONC appends with no separator, CONT appends a newline plus
// the continuation's value (absent treated as empty). No continuation tag
// survives folding.
//
// Folding trusts levels only to know that a continuation belongs to the
// line under construction; nesting correctness is the tree builder's job
// on the folded stream. A continuation with no preceding line is dropped
// with a warning rather than aborting the parse.
func Fold(lines []Line) ([]Line, []string) {
	folded := make([]Line, 0, len(lines))
	var warnings []string

	for _, line := range lines {
		if isContinuation(line.Tag) {
			if len(folded) == 0 {
				warnings = append(warnings, fmt.Sprintf("line %d: %s with nothing to continue, dropped", line.Num, line.Tag))
				continue
			}
			cur := &folded[len(folded)-1]
			if line.Tag == TagCont {
				cur.Value += "\n"
			}
			cur.Value += line.Value
			cur.HasValue = true
			continue
		}
		folded = append(folded, line)
	}

	return folded, warnings
}
