package tabular

import (
	"bytes"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Byte order marks.
var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// Decode detects the character encoding of raw file bytes, strips any byte
// order mark, and returns UTF-8 bytes plus the name of the detected
// encoding. Input that is neither BOM-marked nor valid UTF-8 falls back to
// Latin-1, which accepts any byte sequence.
func Decode(data []byte) ([]byte, string, error) {
	if len(data) == 0 {
		return data, "utf-8", nil
	}

	switch {
	case bytes.HasPrefix(data, bomUTF8):
		return data[len(bomUTF8):], "utf-8-bom", nil

	case bytes.HasPrefix(data, bomUTF16LE):
		decoded, err := decodeUTF16(data[2:], unicode.LittleEndian)
		if err != nil {
			return nil, "", err
		}
		return decoded, "utf-16le", nil

	case bytes.HasPrefix(data, bomUTF16BE):
		decoded, err := decodeUTF16(data[2:], unicode.BigEndian)
		if err != nil {
			return nil, "", err
		}
		return decoded, "utf-16be", nil
	}

	if utf8.Valid(data) {
		return data, "utf-8", nil
	}

	decoded, _, err := transform.Bytes(charmap.ISO8859_1.NewDecoder(), data)
	if err != nil {
		return nil, "", err
	}
	return decoded, "latin-1", nil
}

// decodeUTF16 converts UTF-16 bytes (BOM already stripped) to UTF-8.
func decodeUTF16(data []byte, endianness unicode.Endianness) ([]byte, error) {
	decoder := unicode.UTF16(endianness, unicode.IgnoreBOM).NewDecoder()
	decoded, _, err := transform.Bytes(decoder, data)
	return decoded, err
}
