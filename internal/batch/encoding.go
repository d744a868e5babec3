package batch

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// encodingSampleSize is how many leading bytes are inspected when guessing
// the character encoding of a batch input file.
const encodingSampleSize = 2000

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// decodeToUTF8 converts raw file bytes to UTF-8, detecting the source
// encoding from a byte sample: BOMs first, then a UTF-8 validity check,
// then Windows-1252 as the single-byte fallback common in exported
// spreadsheets. Returns the decoded bytes and the detected encoding name.
func decodeToUTF8(data []byte) ([]byte, string, error) {
	switch {
	case bytes.HasPrefix(data, bomUTF8):
		return data[len(bomUTF8):], "utf-8", nil
	case bytes.HasPrefix(data, bomUTF16LE):
		return decodeWith(unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM), data, "utf-16le")
	case bytes.HasPrefix(data, bomUTF16BE):
		return decodeWith(unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM), data, "utf-16be")
	}

	sample := data
	if len(sample) > encodingSampleSize {
		sample = trimPartialRune(sample[:encodingSampleSize])
	}
	if utf8.Valid(sample) {
		return data, "utf-8", nil
	}
	return decodeWith(charmap.Windows1252, data, "windows-1252")
}

func decodeWith(enc encoding.Encoding, data []byte, name string) ([]byte, string, error) {
	decoded, _, err := transform.Bytes(enc.NewDecoder(), data)
	if err != nil {
		return nil, "", fmt.Errorf("decode as %s: %w", name, err)
	}
	return decoded, name, nil
}

// trimPartialRune drops trailing continuation bytes so a mid-rune cut does
// not fail the UTF-8 validity check.
func trimPartialRune(sample []byte) []byte {
	for i := 0; i < utf8.UTFMax && len(sample) > 0; i++ {
		r, size := utf8.DecodeLastRune(sample)
		if r != utf8.RuneError || size != 1 {
			return sample
		}
		sample = sample[:len(sample)-1]
	}
	return sample
}
