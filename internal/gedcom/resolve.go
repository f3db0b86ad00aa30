package gedcom

import "fmt"

// Resolve walks every record in the document and links pointer-valued
// records to their targets. A pointer whose id is declared nowhere marks
// the record Unresolved and adds a document warning; dangling references
// are common in real-world exports and never abort the load. Resolution
// adds cross-links only, it never touches the ByXref index, and the
// resulting pointer graph may be cyclic (spouses referencing each other)
// because Target edges are not ownership edges.
func Resolve(doc *Document) {
	var walk func(r *Record)
	walk = func(r *Record) {
		if id, ok := r.Pointer(); ok {
			if target, found := doc.ByXref[id]; found {
				r.Target = target
			} else {
				r.Unresolved = true
				doc.Warnings = append(doc.Warnings,
					fmt.Sprintf("line %d: %s points at undeclared id @%s@", r.Num, r.Tag, id))
			}
		}
		for _, c := range r.Children {
			walk(c)
		}
	}
	for _, root := range doc.Roots {
		walk(root)
	}
}
