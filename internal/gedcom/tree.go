package gedcom

// Record is one node of the parsed tree. The child slice is the sole
// ownership edge; Parent and Target are navigation-only so the ownership
// graph stays strictly tree-shaped even when records point at each other.
type Record struct {
	Level    int
	Tag      string
	XrefID   string // bare id this record declares, if any
	Value    string
	HasValue bool
	Num      int // source line number of the logical line

	// Ignorable marks records carried by an obsolete tag.
	Ignorable bool

	Parent   *Record
	Children []*Record // document order

	// Pointer resolution results, filled in by Resolve.
	Target     *Record // non-owning link to the record Value points at
	Unresolved bool    // Value is a pointer whose id is not declared anywhere
}

// Pointer returns the bare id when the record's value is a pointer.
func (r *Record) Pointer() (string, bool) {
	if !r.HasValue {
		return "", false
	}
	return PointerTarget(r.Value)
}

// Child returns the first child with the given tag, or nil.
func (r *Record) Child(tag string) *Record {
	for _, c := range r.Children {
		if c.Tag == tag {
			return c
		}
	}
	return nil
}

// Document owns the forest of level-0 records plus the cross-reference
// index. ByXref is the sole owner of nothing extra: it indexes records
// already owned through Roots.
type Document struct {
	Roots    []*Record
	ByXref   map[string]*Record
	Warnings []string
}

// Header returns the HEAD record, or nil when the file has none.
func (d *Document) Header() *Record {
	for _, r := range d.Roots {
		if r.Tag == TagHead {
			return r
		}
	}
	return nil
}

// RootsByTag returns the level-0 records with the given tag, in document
// order.
func (d *Document) RootsByTag(tag string) []*Record {
	var out []*Record
	for _, r := range d.Roots {
		if r.Tag == tag {
			out = append(out, r)
		}
	}
	return out
}

// Build assembles folded logical lines into a Document. It maintains a
// stack holding the path from a root to the last-inserted record: the
// stack is popped until the top is exactly one level above the new line.
// A line whose level exceeds that by more than one is a level skip and
// aborts the parse, as does a duplicate cross-reference declaration.
func Build(lines []Line) (*Document, error) {
	doc := &Document{ByXref: make(map[string]*Record)}

	var stack []*Record
	for _, line := range lines {
		for len(stack) > 0 && stack[len(stack)-1].Level >= line.Level {
			stack = stack[:len(stack)-1]
		}

		// An empty stack admits only a new root at level 0.
		want := 0
		if len(stack) > 0 {
			want = stack[len(stack)-1].Level + 1
		}
		if line.Level > want {
			return nil, &StructureError{Num: line.Num, Tag: line.Tag, Level: line.Level, Want: want}
		}

		rec := &Record{
			Level:     line.Level,
			Tag:       line.Tag,
			XrefID:    line.XrefID,
			Value:     line.Value,
			HasValue:  line.HasValue,
			Num:       line.Num,
			Ignorable: line.Ignorable,
		}

		if len(stack) > 0 {
			parent := stack[len(stack)-1]
			rec.Parent = parent
			parent.Children = append(parent.Children, rec)
		} else {
			doc.Roots = append(doc.Roots, rec)
		}

		if rec.XrefID != "" {
			if _, exists := doc.ByXref[rec.XrefID]; exists {
				return nil, &DuplicateXrefError{Num: line.Num, XrefID: rec.XrefID}
			}
			doc.ByXref[rec.XrefID] = rec
		}

		stack = append(stack, rec)
	}

	return doc, nil
}
