package phonetic

import "errors"

// Errors returned by New and Chain.Append. They are wrapped with
// context, so compare with errors.Is.
var (
	ErrEmptyInput       = errors.New("word is empty")
	ErrNoVowels         = errors.New("word has no vowels")
	ErrInvalidStress    = errors.New("invalid stressed syllable number")
	ErrInvalidLength    = errors.New("letter must be exactly one character")
	ErrNotRussianLetter = errors.New("not a Russian letter")
)
