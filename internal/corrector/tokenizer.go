package corrector

import (
	"errors"
	"strings"
)

// ErrEmptyName signals that tokenization found no words after salutation
// removal. Callers surface it as a guidance message, not a crash.
var ErrEmptyName = errors.New("name must contain at least one word")

// salutations are honorific prefixes stripped before correction. The first
// word of a name is matched against this set case-insensitively, with or
// without a trailing period.
var salutations = map[string]struct{}{
	"mr":     {},
	"mrs":    {},
	"ms":     {},
	"miss":   {},
	"dr":     {},
	"prof":   {},
	"sir":    {},
	"madam":  {},
	"shri":   {},
	"sri":    {},
	"smt":    {},
	"kumari": {},
}

// RemoveSalutation drops a leading honorific from text, rejoining the
// remainder with single spaces. Text without a salutation passes through
// unchanged. Empty input yields empty output.
func RemoveSalutation(text string) string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return text
	}
	head := strings.ToLower(strings.TrimSuffix(words[0], "."))
	if _, ok := salutations[head]; ok {
		return strings.Join(words[1:], " ")
	}
	return text
}

// Tokenize splits a raw name into first and last tokens after salutation
// removal. A single-word name has an absent last token, not an error. Words
// beyond the second are discarded: only a two-part name model is supported,
// so middle names and multi-word surnames are a known limitation.
func Tokenize(text string) (first, last string, err error) {
	words := strings.Fields(RemoveSalutation(text))
	switch len(words) {
	case 0:
		return "", "", ErrEmptyName
	case 1:
		return words[0], "", nil
	default:
		return words[0], words[1], nil
	}
}
