// Package project walks a resolved gedcom.Document and emits a
// JSON-ready subset of it. Individuals, families and the header get
// semantic projections; every other record kind degrades to a raw
// tag/value tree so unsupported tags never abort an export.
package project

import (
	"strings"

	"github.com/dgallion1/gedgest/internal/gedcom"
)

// Options selects which top-level record kinds to project and how
// resolved pointers are rendered.
type Options struct {
	// Kinds lists top-level tags to include (INDI, FAM, ...). Empty
	// means every root kind present in the document.
	Kinds []string
	// InlinePointers nests the resolved target's subtree where a record
	// points at another; otherwise pointers render as the @id@ string.
	// Pointers inside an inlined target always render as ids, which
	// keeps the walk finite on cyclic pointer graphs.
	InlinePointers bool
}

// Keys for the projected document, by record tag.
var kindKeys = map[string]string{
	gedcom.TagHead: "header",
	gedcom.TagIndi: "individuals",
	gedcom.TagFam:  "families",
	"SOUR":         "sources",
	"REPO":         "repositories",
	"SUBM":         "submitters",
	"NOTE":         "notes",
	"OBJE":         "objects",
}

// Project renders the selected kinds of doc into a structured document.
// Projecting the same document twice with the same options yields
// structurally identical output; the walk follows ownership edges only.
func Project(doc *gedcom.Document, opts Options) map[string]any {
	selected := kindSet(doc, opts.Kinds)
	out := make(map[string]any)

	for kind := range selected {
		switch kind {
		case gedcom.TagHead:
			if head := doc.Header(); head != nil {
				out["header"] = ProjectHeader(head)
			}
		case gedcom.TagIndi:
			var indis []*Individual
			for _, r := range doc.RootsByTag(gedcom.TagIndi) {
				indis = append(indis, ProjectIndividual(r))
			}
			if len(indis) > 0 {
				out["individuals"] = indis
			}
		case gedcom.TagFam:
			var fams []*Family
			for _, r := range doc.RootsByTag(gedcom.TagFam) {
				fams = append(fams, ProjectFamily(r))
			}
			if len(fams) > 0 {
				out["families"] = fams
			}
		case gedcom.TagTrlr:
			// Nothing to project.
		default:
			var raws []*RawNode
			for _, r := range doc.RootsByTag(kind) {
				raws = append(raws, projectRaw(r, opts.InlinePointers))
			}
			if len(raws) > 0 {
				out[keyFor(kind)] = raws
			}
		}
	}

	return out
}

func kindSet(doc *gedcom.Document, kinds []string) map[string]bool {
	set := make(map[string]bool)
	if len(kinds) == 0 {
		for _, r := range doc.Roots {
			set[r.Tag] = true
		}
		return set
	}
	for _, k := range kinds {
		set[strings.ToUpper(strings.TrimSpace(k))] = true
	}
	return set
}

func keyFor(kind string) string {
	if key, ok := kindKeys[kind]; ok {
		return key
	}
	return strings.ToLower(kind)
}

// RawNode is the pass-through projection for tags without a semantic
// mapping: the record as-is, pointer targets optionally inlined.
type RawNode struct {
	Tag      string     `json:"tag"`
	ID       string     `json:"id,omitempty"`
	Value    string     `json:"value,omitempty"`
	Target   *RawNode   `json:"target,omitempty"`
	Children []*RawNode `json:"children,omitempty"`
}

func projectRaw(r *gedcom.Record, inline bool) *RawNode {
	node := &RawNode{
		Tag:   r.Tag,
		ID:    r.XrefID,
		Value: r.Value,
	}
	if inline && r.Target != nil {
		// Never inline recursively: pointers inside the target render
		// as ids so mutual references terminate.
		node.Target = projectRaw(r.Target, false)
	}
	for _, c := range r.Children {
		node.Children = append(node.Children, projectRaw(c, inline))
	}
	return node
}
