package project

import (
	"strings"
	"testing"

	"github.com/dgallion1/gedgest/internal/gedcom"
	"github.com/google/go-cmp/cmp"
)

func parse(t *testing.T, lines ...string) *gedcom.Document {
	t.Helper()
	doc, err := gedcom.Parse(strings.NewReader(strings.Join(lines, "\n")))
	if err != nil {
		t.Fatalf("parse fixture: %v", err)
	}
	return doc
}

func TestProject_SelectedKinds(t *testing.T) {
	doc := parse(t,
		"0 HEAD",
		"1 CHAR UTF-8",
		"0 @I1@ INDI",
		"1 NAME John /Doe/",
		"0 @F1@ FAM",
		"1 HUSB @I1@",
		"0 TRLR",
	)

	out := Project(doc, Options{Kinds: []string{"INDI"}})
	if _, ok := out["individuals"]; !ok {
		t.Error("expected individuals key")
	}
	if _, ok := out["families"]; ok {
		t.Error("families should be excluded")
	}
	if _, ok := out["header"]; ok {
		t.Error("header should be excluded")
	}

	all := Project(doc, Options{})
	for _, key := range []string{"individuals", "families", "header"} {
		if _, ok := all[key]; !ok {
			t.Errorf("expected %s key with empty kind selection", key)
		}
	}
}

func TestProject_Idempotent(t *testing.T) {
	doc := parse(t,
		"0 @I1@ INDI",
		"1 NAME Jane /Roe/",
		"1 SEX F",
		"1 FAMS @F1@",
		"0 @F1@ FAM",
		"1 WIFE @I1@",
	)
	opts := Options{Kinds: []string{"INDI", "FAM"}}
	first := Project(doc, opts)
	second := Project(doc, opts)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("projections differ (-first +second):\n%s", diff)
	}
}

func TestProjectIndividual_Semantic(t *testing.T) {
	doc := parse(t,
		"0 @I1@ INDI",
		"1 NAME John /Van Buren/ Jr.",
		"2 TYPE birth",
		"2 NICK Johnny",
		"1 SEX M",
		"1 BIRT",
		"2 DATE 5 DEC 1782",
		"2 PLAC Kinderhook, New York",
		"1 OCCU President",
		"1 FAMC @F1@",
		"1 FAMS @F2@",
		"1 NOTE A note.",
	)
	got := ProjectIndividual(doc.ByXref["I1"])

	want := &Individual{
		ID: "I1",
		Names: []Name{{
			Value:    "John /Van Buren/ Jr.",
			Type:     "birth",
			Given:    "John",
			Surname:  "Van Buren",
			Suffix:   "Jr.",
			Nickname: "Johnny",
		}},
		Sex: "M",
		Events: []Event{{
			Type:  "Birth",
			Date:  "5 DEC 1782",
			Place: &Place{Name: "Kinderhook, New York"},
		}},
		Attributes:     []*Attribute{{Type: "Occupation", Value: "President"}},
		ChildOfFamily:  "F1",
		SpouseOfFamily: []string{"F2"},
		Note:           "A note.",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("individual mismatch (-want +got):\n%s", diff)
	}
}

func TestProjectFamily_Semantic(t *testing.T) {
	doc := parse(t,
		"0 @F1@ FAM",
		"1 HUSB @I1@",
		"1 WIFE @I2@",
		"1 CHIL @I3@",
		"1 CHIL @I4@",
		"1 MARR",
		"2 DATE 12 JUN 1901",
		"1 NCHI 2",
	)
	got := ProjectFamily(doc.ByXref["F1"])

	want := &Family{
		ID:               "F1",
		Husband:          "I1",
		Wife:             "I2",
		Children:         []string{"I3", "I4"},
		Events:           []Event{{Type: "Marriage", Date: "12 JUN 1901"}},
		NumberOfChildren: "2",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("family mismatch (-want +got):\n%s", diff)
	}
}

func TestProjectHeader(t *testing.T) {
	doc := parse(t,
		"0 HEAD",
		"1 SOUR GEDGEST",
		"2 VERS 1.0",
		"2 NAME gedgest",
		"1 GEDC",
		"2 VERS 5.5.5",
		"2 FORM LINEAGE-LINKED",
		"1 CHAR UTF-8",
		"1 LANG English",
		"0 TRLR",
	)
	got := ProjectHeader(doc.Header())
	want := &Header{
		SourceSystem:  "GEDGEST",
		SourceVersion: "1.0",
		ProductName:   "gedgest",
		GedcomVersion: "5.5.5",
		GedcomForm:    "LINEAGE-LINKED",
		Charset:       "UTF-8",
		Language:      "English",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("header mismatch (-want +got):\n%s", diff)
	}
}

func TestProject_UnresolvedPointerRendersRawID(t *testing.T) {
	doc := parse(t,
		"0 @I1@ INDI",
		"1 FAMS @F99@",
	)
	got := ProjectIndividual(doc.ByXref["I1"])
	if len(got.SpouseOfFamily) != 1 || got.SpouseOfFamily[0] != "F99" {
		t.Errorf("expected dangling pointer to render as its id, got %v", got.SpouseOfFamily)
	}
}

func TestProject_UnknownTagsPassThrough(t *testing.T) {
	doc := parse(t,
		"0 @I1@ INDI",
		"1 _UID ABC-123",
		"2 TYPE vendor",
	)
	got := ProjectIndividual(doc.ByXref["I1"])
	if len(got.Raw) != 1 {
		t.Fatalf("expected 1 raw node, got %d", len(got.Raw))
	}
	raw := got.Raw[0]
	if raw.Tag != "_UID" || raw.Value != "ABC-123" {
		t.Errorf("unexpected raw node: %+v", raw)
	}
	if len(raw.Children) != 1 || raw.Children[0].Tag != "TYPE" {
		t.Errorf("expected raw children preserved, got %+v", raw.Children)
	}
}

func TestProject_ObsoleteTagsSkipped(t *testing.T) {
	doc := parse(t,
		"0 @I1@ INDI",
		"1 SSN 000-00-0000",
		"1 SEX F",
	)
	got := ProjectIndividual(doc.ByXref["I1"])
	if len(got.Raw) != 0 {
		t.Errorf("expected ignorable records to be dropped from projection, got %+v", got.Raw)
	}
	if got.Sex != "F" {
		t.Errorf("expected SEX to survive, got %q", got.Sex)
	}
}

func TestProject_InlinePointersTerminateOnCycles(t *testing.T) {
	doc := parse(t,
		"0 @S1@ SOUR",
		"1 NOTE @S2@",
		"0 @S2@ SOUR",
		"1 NOTE @S1@",
	)
	out := Project(doc, Options{Kinds: []string{"SOUR"}, InlinePointers: true})
	sources, ok := out["sources"].([]*RawNode)
	if !ok || len(sources) != 2 {
		t.Fatalf("expected 2 raw sources, got %#v", out["sources"])
	}
	inlined := sources[0].Children[0].Target
	if inlined == nil {
		t.Fatal("expected pointer target to be inlined")
	}
	// The inlined copy must not inline further.
	if inlined.Children[0].Target != nil {
		t.Error("expected nested pointers to stay as ids")
	}
}

func TestSplitName(t *testing.T) {
	tests := []struct {
		value   string
		given   string
		surname string
		suffix  string
	}{
		{"John /Doe/", "John", "Doe", ""},
		{"John /Van Buren/ Jr.", "John", "Van Buren", "Jr."},
		{"/Doe/", "", "Doe", ""},
		{"Madonna", "Madonna", "", ""},
		{"Broken /Slash", "Broken /Slash", "", ""},
	}
	for _, tt := range tests {
		given, surname, suffix := splitName(tt.value)
		if given != tt.given || surname != tt.surname || suffix != tt.suffix {
			t.Errorf("splitName(%q) = %q/%q/%q, want %q/%q/%q",
				tt.value, given, surname, suffix, tt.given, tt.surname, tt.suffix)
		}
	}
}
