package gedcom

import "strings"

// Continuation tags, folded away before tree building.
const (
	TagConc = "CONC"
	TagCont = "CONT"
)

// Tags with dedicated handling elsewhere in the codebase.
const (
	TagHead = "HEAD"
	TagTrlr = "TRLR"
	TagIndi = "INDI"
	TagFam  = "FAM"
)

// knownTags is the 5.5.5 tag set plus SSN and FSID, which some exporters
// still emit.
var knownTags = map[string]bool{
	"ABBR": true, "ADDR": true, "ADOP": true, "ADR1": true, "ADR2": true,
	"ADR3": true, "AGE": true, "AGNC": true, "ALIA": true, "ANUL": true,
	"ASSO": true, "AUTH": true, "BAPM": true, "BARM": true, "BASM": true,
	"BIRT": true, "BURI": true, "CAST": true, "CAUS": true, "CENS": true,
	"CERT": true, "CHAN": true, "CHAR": true, "CHIL": true, "CHR": true,
	"CHRA": true, "CITY": true, "COMM": true, "CONC": true, "CONF": true,
	"CONT": true, "COPR": true, "CORP": true, "COUN": true, "CREM": true,
	"CTRY": true, "DATA": true, "DATE": true, "DEAT": true, "DESC": true,
	"DEST": true, "DIV": true, "DIVF": true, "EDUC": true, "EMAIL": true,
	"EMIG": true, "ENGA": true, "EVEN": true, "FACT": true, "FAM": true,
	"FAMC": true, "FAMS": true, "FAX": true, "FCOM": true, "FILE": true,
	"FONE": true, "FORM": true, "FSID": true, "GEDC": true, "GIVN": true,
	"GRAD": true, "HEAD": true, "HUSB": true, "IDNO": true, "IMMI": true,
	"INDI": true, "LANG": true, "LATI": true, "LONG": true, "MAP": true,
	"MARB": true, "MARC": true, "MARL": true, "MARR": true, "MARS": true,
	"MEDI": true, "NAME": true, "NATI": true, "NATU": true, "NCHI": true,
	"NICK": true, "NOTE": true, "NPFX": true, "NSFX": true, "OBJE": true,
	"OCCU": true, "PAGE": true, "PEDI": true, "PHON": true, "PLAC": true,
	"POSS": true, "POST": true, "PROB": true, "PUBL": true, "REFN": true,
	"RELA": true, "RELI": true, "RELN": true, "REPO": true, "RESI": true,
	"RETI": true, "RIN": true, "ROLE": true, "ROMN": true, "SEX": true,
	"SOUR": true, "SPFX": true, "SSN": true, "STAE": true, "SUBM": true,
	"SUBN": true, "SURN": true, "TEXT": true, "TIME": true, "TITL": true,
	"TRLR": true, "TYPE": true, "VERS": true, "WIFE": true, "WILL": true,
	"WWW": true,
}

// obsoleteTags are accepted with a warning and marked ignorable.
var obsoleteTags = map[string]bool{
	"SSN":  true,
	"FSID": true,
}

// IsKnownTag reports whether tag is part of the supported tag set.
func IsKnownTag(tag string) bool { return knownTags[tag] }

// IsObsoleteTag reports whether tag is accepted but no longer part of the
// current GEDCOM edition.
func IsObsoleteTag(tag string) bool { return obsoleteTags[tag] }

// IsUserDefinedTag reports whether tag is a vendor extension: a single
// leading underscore followed by underscore-free characters.
func IsUserDefinedTag(tag string) bool {
	if len(tag) < 2 || tag[0] != '_' {
		return false
	}
	return !strings.Contains(tag[1:], "_")
}

// isContinuation reports whether tag is a continuation folded by Fold.
func isContinuation(tag string) bool {
	return tag == TagConc || tag == TagCont
}
