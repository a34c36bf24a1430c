package domain

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Word length bounds, counted in characters (runes) after trimming.
const (
	MinWordLength = 2
	MaxWordLength = 10
)

// Hangul syllable block.
const (
	hangulFirst = '가'
	hangulLast  = '힣'
)

// reservedCharacters may not appear in a word.
const reservedCharacters = "[]"

// Word is the Korean word a poem is composed for. Its value is always trimmed.
type Word string

// NewWord trims raw and validates it as a poem subject.
// Checks run in the order a user would want to hear about them: empty input
// first, then missing Korean, then reserved characters, then the length bounds.
func NewWord(raw string) (Word, error) {
	w := Word(strings.TrimSpace(raw))
	if err := w.Validate(); err != nil {
		return "", err
	}
	return w, nil
}

// Validate checks the word against the form rules.
func (w Word) Validate() error {
	s := string(w)
	if strings.TrimSpace(s) == "" {
		return NewValidationError("word", "is required", ErrEmptyWord)
	}

	if !ContainsHangul(s) {
		return NewValidationError("word", "has no Hangul syllable", ErrNotKorean)
	}

	if HasReservedCharacter(s) {
		return NewValidationError("word", "contains a square bracket", ErrInvalidCharacter)
	}

	n := utf8.RuneCountInString(strings.TrimSpace(s))
	if n > MaxWordLength {
		return NewValidationError("word", "exceeds maximum length", ErrWordTooLong)
	}
	if n < MinWordLength {
		return NewValidationError("word", "is below minimum length", ErrWordTooShort)
	}

	return nil
}

// Characters returns the line-start characters of the word: every rune
// except whitespace, in order.
func (w Word) Characters() []string {
	chars := make([]string, 0, utf8.RuneCountInString(string(w)))
	for _, r := range string(w) {
		if unicode.IsSpace(r) {
			continue
		}
		chars = append(chars, string(r))
	}
	return chars
}

// String returns the word as a plain string.
func (w Word) String() string {
	return string(w)
}

// ContainsHangul reports whether s has at least one precomposed Hangul syllable.
func ContainsHangul(s string) bool {
	for _, r := range s {
		if r >= hangulFirst && r <= hangulLast {
			return true
		}
	}
	return false
}

// HasReservedCharacter reports whether s contains '[' or ']'.
func HasReservedCharacter(s string) bool {
	return strings.ContainsAny(s, reservedCharacters)
}
