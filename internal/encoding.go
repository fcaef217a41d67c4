package internal

import (
	"io"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// SourceCharset is the fixed charset allocation tables are decoded as.
// It is a constant of the format, not a detected or configurable value.
const SourceCharset = "iso-8859-1"

// NewSourceReader wraps r so that ISO-8859-1 bytes read as UTF-8 text.
func NewSourceReader(r io.Reader) io.Reader {
	return transform.NewReader(r, charmap.ISO8859_1.NewDecoder())
}

// DecodeSource converts a whole ISO-8859-1 byte slice to a UTF-8 string.
func DecodeSource(data []byte) (string, error) {
	out, _, err := transform.Bytes(charmap.ISO8859_1.NewDecoder(), data)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
