// internal/roster/decode.go
package roster

import (
	"bytes"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Decoder turns raw file bytes into text. Decoders never fail on invalid
// input: UTF-8 variants drop malformed sequences and the single-byte
// charsets map every byte.
type Decoder struct {
	Name     string
	encoding encoding.Encoding
	// sanitize drops invalid UTF-8 before decoding.
	sanitize bool
}

// Decode converts raw into a UTF-8 string.
func (d Decoder) Decode(raw []byte) (string, error) {
	if d.sanitize {
		raw = bytes.ToValidUTF8(raw, nil)
	}
	out, _, err := transform.Bytes(d.encoding.NewDecoder(), raw)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// DefaultDecoders lists the decoders tried by Load, most likely first.
// utf-8-sig strips a leading byte-order mark; plain utf-8 keeps it.
func DefaultDecoders() []Decoder {
	return []Decoder{
		{Name: "utf-8-sig", encoding: unicode.UTF8BOM, sanitize: true},
		{Name: "utf-8", encoding: unicode.UTF8, sanitize: true},
		{Name: "latin-1", encoding: charmap.ISO8859_1},
		{Name: "cp1252", encoding: charmap.Windows1252},
		{Name: "iso-8859-1", encoding: charmap.ISO8859_1},
	}
}
