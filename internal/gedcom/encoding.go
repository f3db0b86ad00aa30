package gedcom

import (
	"bufio"
	"io"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
	"golang.org/x/text/transform"
)

// DecodeReader wraps r so the tokenizer always sees UTF-8 with no byte
// order mark. Real-world GEDCOM exports show up as UTF-8 (with or without
// BOM), UTF-16, and occasionally UTF-32; anything without a BOM is passed
// through untouched.
func DecodeReader(r io.Reader) io.Reader {
	br := bufio.NewReader(r)
	bom, _ := br.Peek(4)
	switch {
	case len(bom) >= 4 && bom[0] == 0xFF && bom[1] == 0xFE && bom[2] == 0x00 && bom[3] == 0x00:
		return transform.NewReader(br, utf32.UTF32(utf32.LittleEndian, utf32.UseBOM).NewDecoder())
	case len(bom) >= 4 && bom[0] == 0x00 && bom[1] == 0x00 && bom[2] == 0xFE && bom[3] == 0xFF:
		return transform.NewReader(br, utf32.UTF32(utf32.BigEndian, utf32.UseBOM).NewDecoder())
	}
	// BOMOverride strips a UTF-8 BOM and decodes UTF-16 of either
	// endianness; BOM-less input falls through to the no-op decoder.
	return transform.NewReader(br, unicode.BOMOverride(encoding.Nop.NewDecoder()))
}
