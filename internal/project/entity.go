package project

import (
	"strings"

	"github.com/dgallion1/gedgest/internal/gedcom"
)

// indiEventTypes maps individual event tags to readable names.
var indiEventTypes = map[string]string{
	"BIRT": "Birth", "DEAT": "Death", "BURI": "Burial", "CREM": "Cremation",
	"NATU": "Naturalization", "EMIG": "Emigration", "IMMI": "Immigration",
	"ADOP": "Adoption", "BAPM": "Baptism", "BARM": "Bar Mitzvah",
	"BASM": "Bas Mitzvah", "CHR": "Christening", "CHRA": "Adult Christening",
	"CONF": "Confirmation", "FCOM": "First Communion", "CENS": "Census",
	"PROB": "Probate", "WILL": "Will", "GRAD": "Graduation",
	"RETI": "Retirement", "EVEN": "",
}

// famEventTypes maps family event tags to readable names.
var famEventTypes = map[string]string{
	"MARR": "Marriage", "ENGA": "Engagement", "MARB": "Marriage Banns",
	"MARC": "Marriage Contract", "MARL": "Marriage License",
	"MARS": "Marriage Settlement", "DIV": "Divorce", "DIVF": "Divorce Filed",
	"ANUL": "Annulment", "CENS": "Census", "EVEN": "",
}

// attributeTypes maps individual attribute tags to readable names.
var attributeTypes = map[string]string{
	"CAST": "Caste", "DESC": "Physical Description", "EDUC": "Education",
	"IDNO": "National ID", "NATI": "Nationality", "OCCU": "Occupation",
	"POSS": "Property", "RELI": "Religion", "RESI": "Residence",
	"TITL": "Title", "FACT": "",
}

// Name is one NAME structure of an individual. Given/surname/suffix come
// from the slash convention in the line value; the name-piece children
// override them when present.
type Name struct {
	Value         string `json:"value,omitempty"`
	Type          string `json:"type,omitempty"`
	Given         string `json:"given,omitempty"`
	Surname       string `json:"surname,omitempty"`
	Prefix        string `json:"prefix,omitempty"`
	Suffix        string `json:"suffix,omitempty"`
	Nickname      string `json:"nickname,omitempty"`
	SurnamePrefix string `json:"surnamePrefix,omitempty"`
	Note          string `json:"note,omitempty"`
}

// Place is an event location.
type Place struct {
	Name      string `json:"name,omitempty"`
	Latitude  string `json:"latitude,omitempty"`
	Longitude string `json:"longitude,omitempty"`
}

// Address is a postal address structure.
type Address struct {
	Lines      []string `json:"lines,omitempty"`
	City       string   `json:"city,omitempty"`
	State      string   `json:"state,omitempty"`
	PostalCode string   `json:"postalCode,omitempty"`
	Country    string   `json:"country,omitempty"`
	Phone      string   `json:"phone,omitempty"`
	Email      string   `json:"email,omitempty"`
	Fax        string   `json:"fax,omitempty"`
	Website    string   `json:"website,omitempty"`
}

// Event is a dated occurrence attached to an individual or family.
type Event struct {
	Type    string   `json:"type,omitempty"`
	Detail  string   `json:"detail,omitempty"`
	Date    string   `json:"date,omitempty"`
	Place   *Place   `json:"place,omitempty"`
	Address *Address `json:"address,omitempty"`
	Age     string   `json:"age,omitempty"`
	Cause   string   `json:"cause,omitempty"`
	Agency  string   `json:"agency,omitempty"`
	Note    string   `json:"note,omitempty"`
}

// Attribute is a fact about an individual (occupation, religion, ...).
type Attribute struct {
	Type  string `json:"type,omitempty"`
	Value string `json:"value,omitempty"`
	Event
}

// Individual is the semantic projection of an INDI record. Pointer-valued
// fields hold bare cross-reference ids; dangling pointers keep their id
// so callers can still see what the file claimed.
type Individual struct {
	ID              string       `json:"id,omitempty"`
	Names           []Name       `json:"names,omitempty"`
	Sex             string       `json:"sex,omitempty"`
	Events          []Event      `json:"events,omitempty"`
	Attributes      []*Attribute `json:"attributes,omitempty"`
	ChildOfFamily   string       `json:"childOfFamily,omitempty"`
	SpouseOfFamily  []string     `json:"spouseOfFamilies,omitempty"`
	Aliases         []string     `json:"aliases,omitempty"`
	Note            string       `json:"note,omitempty"`
	ChangedAt       string       `json:"changedAt,omitempty"`
	ReferenceNumber string       `json:"referenceNumber,omitempty"`
	RecordID        string       `json:"recordId,omitempty"`
	Raw             []*RawNode   `json:"raw,omitempty"`
}

// Family is the semantic projection of a FAM record.
type Family struct {
	ID               string     `json:"id,omitempty"`
	Husband          string     `json:"husband,omitempty"`
	Wife             string     `json:"wife,omitempty"`
	Children         []string   `json:"children,omitempty"`
	Events           []Event    `json:"events,omitempty"`
	NumberOfChildren string     `json:"numberOfChildren,omitempty"`
	Note             string     `json:"note,omitempty"`
	ChangedAt        string     `json:"changedAt,omitempty"`
	Raw              []*RawNode `json:"raw,omitempty"`
}

// Header is the semantic projection of the HEAD record.
type Header struct {
	SourceSystem  string `json:"sourceSystem,omitempty"`
	SourceVersion string `json:"sourceVersion,omitempty"`
	ProductName   string `json:"productName,omitempty"`
	Corporation   string `json:"corporation,omitempty"`
	Destination   string `json:"destination,omitempty"`
	Date          string `json:"date,omitempty"`
	Submitter     string `json:"submitter,omitempty"`
	File          string `json:"file,omitempty"`
	Copyright     string `json:"copyright,omitempty"`
	GedcomVersion string `json:"gedcomVersion,omitempty"`
	GedcomForm    string `json:"gedcomForm,omitempty"`
	Charset       string `json:"charset,omitempty"`
	Language      string `json:"language,omitempty"`
	Note          string `json:"note,omitempty"`
}

// ProjectIndividual maps one INDI record. Unknown child tags pass
// through under Raw rather than being dropped.
func ProjectIndividual(r *gedcom.Record) *Individual {
	indi := &Individual{ID: r.XrefID}
	for _, c := range r.Children {
		if c.Ignorable {
			continue
		}
		switch {
		case c.Tag == "NAME":
			indi.Names = append(indi.Names, projectName(c))
		case c.Tag == "SEX":
			indi.Sex = c.Value
		case c.Tag == "FAMC":
			indi.ChildOfFamily = pointerID(c)
		case c.Tag == "FAMS":
			indi.SpouseOfFamily = append(indi.SpouseOfFamily, pointerID(c))
		case c.Tag == "ALIA":
			indi.Aliases = append(indi.Aliases, pointerID(c))
		case c.Tag == "NOTE":
			indi.Note = c.Value
		case c.Tag == "CHAN":
			indi.ChangedAt = changeDate(c)
		case c.Tag == "REFN":
			indi.ReferenceNumber = c.Value
		case c.Tag == "RIN":
			indi.RecordID = c.Value
		default:
			if _, ok := indiEventTypes[c.Tag]; ok {
				indi.Events = append(indi.Events, projectEvent(c, indiEventTypes))
				continue
			}
			if _, ok := attributeTypes[c.Tag]; ok {
				indi.Attributes = append(indi.Attributes, projectAttribute(c))
				continue
			}
			indi.Raw = append(indi.Raw, projectRaw(c, false))
		}
	}
	return indi
}

// ProjectFamily maps one FAM record. Parent and child links stay bare
// ids; the ownership tree is never duplicated into the projection.
func ProjectFamily(r *gedcom.Record) *Family {
	fam := &Family{ID: r.XrefID}
	for _, c := range r.Children {
		if c.Ignorable {
			continue
		}
		switch c.Tag {
		case "HUSB":
			fam.Husband = pointerID(c)
		case "WIFE":
			fam.Wife = pointerID(c)
		case "CHIL":
			fam.Children = append(fam.Children, pointerID(c))
		case "NCHI":
			fam.NumberOfChildren = c.Value
		case "NOTE":
			fam.Note = c.Value
		case "CHAN":
			fam.ChangedAt = changeDate(c)
		default:
			if _, ok := famEventTypes[c.Tag]; ok {
				fam.Events = append(fam.Events, projectEvent(c, famEventTypes))
				continue
			}
			fam.Raw = append(fam.Raw, projectRaw(c, false))
		}
	}
	return fam
}

// ProjectHeader maps the HEAD record's metadata.
func ProjectHeader(r *gedcom.Record) *Header {
	h := &Header{}
	for _, c := range r.Children {
		switch c.Tag {
		case "SOUR":
			h.SourceSystem = c.Value
			for _, sc := range c.Children {
				switch sc.Tag {
				case "VERS":
					h.SourceVersion = sc.Value
				case "NAME":
					h.ProductName = sc.Value
				case "CORP":
					h.Corporation = sc.Value
				}
			}
		case "DEST":
			h.Destination = c.Value
		case "DATE":
			h.Date = c.Value
			if tm := c.Child("TIME"); tm != nil {
				h.Date += " " + tm.Value
			}
		case "SUBM":
			h.Submitter = pointerID(c)
		case "FILE":
			h.File = c.Value
		case "COPR":
			h.Copyright = c.Value
		case "GEDC":
			if v := c.Child("VERS"); v != nil {
				h.GedcomVersion = v.Value
			}
			if f := c.Child("FORM"); f != nil {
				h.GedcomForm = f.Value
			}
		case "CHAR":
			h.Charset = c.Value
		case "LANG":
			h.Language = c.Value
		case "NOTE":
			h.Note = c.Value
		}
	}
	return h
}

func projectName(r *gedcom.Record) Name {
	name := Name{Value: r.Value}
	name.Given, name.Surname, name.Suffix = splitName(r.Value)
	for _, c := range r.Children {
		switch c.Tag {
		case "TYPE":
			name.Type = c.Value
		case "NPFX":
			name.Prefix = c.Value
		case "GIVN":
			name.Given = c.Value
		case "NICK":
			name.Nickname = c.Value
		case "SPFX":
			name.SurnamePrefix = c.Value
		case "SURN":
			name.Surname = c.Value
		case "NSFX":
			name.Suffix = c.Value
		case "NOTE":
			name.Note = c.Value
		}
	}
	return name
}

// splitName applies the /slash/ surname convention: text before the
// first slash is the given name, between the slashes the surname, after
// the closing slash a suffix. Unbalanced slashes degrade to treating the
// whole value as a given name.
func splitName(v string) (given, surname, suffix string) {
	open := strings.IndexByte(v, '/')
	if open < 0 {
		return strings.TrimSpace(v), "", ""
	}
	closing := strings.IndexByte(v[open+1:], '/')
	if closing < 0 {
		return strings.TrimSpace(v), "", ""
	}
	given = strings.TrimSpace(v[:open])
	surname = strings.TrimSpace(v[open+1 : open+1+closing])
	suffix = strings.TrimSpace(v[open+closing+2:])
	return given, surname, suffix
}

func projectEvent(r *gedcom.Record, types map[string]string) Event {
	ev := Event{Type: types[r.Tag], Detail: r.Value}
	// EVEN and FACT carry their kind in a TYPE child instead.
	for _, c := range r.Children {
		switch c.Tag {
		case "TYPE":
			if ev.Type == "" {
				ev.Type = c.Value
			}
		case "DATE":
			ev.Date = c.Value
		case "PLAC":
			ev.Place = projectPlace(c)
		case "ADDR":
			ev.Address = projectAddress(c)
		case "PHON":
			ensureAddress(&ev).Phone = c.Value
		case "EMAIL":
			ensureAddress(&ev).Email = c.Value
		case "FAX":
			ensureAddress(&ev).Fax = c.Value
		case "WWW":
			ensureAddress(&ev).Website = c.Value
		case "AGE":
			ev.Age = c.Value
		case "CAUS":
			ev.Cause = c.Value
		case "AGNC":
			ev.Agency = c.Value
		case "NOTE":
			ev.Note = c.Value
		}
	}
	return ev
}

func projectAttribute(r *gedcom.Record) *Attribute {
	attr := &Attribute{Type: attributeTypes[r.Tag], Value: r.Value}
	attr.Event = projectEvent(r, attributeTypes)
	attr.Event.Type = ""
	attr.Event.Detail = ""
	if attr.Type == "" {
		// FACT names its kind in the TYPE child.
		if tc := r.Child("TYPE"); tc != nil {
			attr.Type = tc.Value
		}
	}
	return attr
}

func projectPlace(r *gedcom.Record) *Place {
	p := &Place{Name: r.Value}
	// 5.5.5 nests coordinates under MAP; some exporters put them
	// directly under PLAC.
	coords := r
	if m := r.Child("MAP"); m != nil {
		coords = m
	}
	if lat := coords.Child("LATI"); lat != nil {
		p.Latitude = lat.Value
	}
	if lon := coords.Child("LONG"); lon != nil {
		p.Longitude = lon.Value
	}
	return p
}

func projectAddress(r *gedcom.Record) *Address {
	a := &Address{}
	// Folding turns ADDR continuation lines into a newline-joined value.
	if r.HasValue && r.Value != "" {
		a.Lines = append(a.Lines, strings.Split(r.Value, "\n")...)
	}
	for _, c := range r.Children {
		switch c.Tag {
		case "ADR1", "ADR2", "ADR3":
			a.Lines = append(a.Lines, c.Value)
		case "CITY":
			a.City = c.Value
		case "STAE":
			a.State = c.Value
		case "POST":
			a.PostalCode = c.Value
		case "CTRY":
			a.Country = c.Value
		}
	}
	return a
}

func ensureAddress(ev *Event) *Address {
	if ev.Address == nil {
		ev.Address = &Address{}
	}
	return ev.Address
}

// pointerID returns the bare id for pointer-valued records, falling back
// to the raw value so unresolved or malformed pointers stay visible.
func pointerID(r *gedcom.Record) string {
	if id, ok := r.Pointer(); ok {
		return id
	}
	return r.Value
}

func changeDate(r *gedcom.Record) string {
	d := r.Child("DATE")
	if d == nil {
		return ""
	}
	out := d.Value
	if tm := d.Child("TIME"); tm != nil {
		out += " " + tm.Value
	}
	return out
}
