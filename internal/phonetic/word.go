package phonetic

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

var lower = cases.Lower(language.Russian)

// StressMark is the combining acute accent written over a stressed vowel.
const StressMark = "\u0301"

// Word is a Russian word together with the number of its stressed
// syllable, ready to be transcribed.
type Word struct {
	surface string
	working string
	stress  int
}

// LetterInfo describes how one written letter was pronounced.
type LetterInfo struct {
	Letter     string
	Sound      string
	Stressed   bool
	Voiced     bool
	Soft       bool
	Suppressed bool
	Geminate   bool
}

// New validates word and stress and applies the orthographic rules.
// stress is the 1-based number of the stressed vowel.
func New(word string, stress int) (*Word, error) {
	surface := strings.TrimSpace(lower.String(norm.NFC.String(word)))
	if surface == "" {
		return nil, ErrEmptyInput
	}

	w := &Word{surface: surface}

	syllables := w.CountSyllables()
	if syllables == 0 {
		return nil, fmt.Errorf("%w: %q", ErrNoVowels, surface)
	}
	if stress <= 0 || stress > syllables {
		return nil, fmt.Errorf("%w: %d (word %q has %d syllables)", ErrInvalidStress, stress, surface, syllables)
	}
	w.stress = stress

	for _, r := range surface {
		if !IsRussianLetter(r) {
			return nil, fmt.Errorf("%w: %q in %q", ErrNotRussianLetter, r, surface)
		}
	}

	w.working = Normalize(surface)
	return w, nil
}

// Transcribe is a shortcut for New followed by Word.Transcribe.
func Transcribe(word string, stress int) (string, error) {
	w, err := New(word, stress)
	if err != nil {
		return "", err
	}
	return w.Transcribe()
}

// MarkStress returns word with StressMark after its stress-th vowel. The
// word is returned unchanged when it has fewer vowels.
func MarkStress(word string, stress int) string {
	var b strings.Builder
	n := 0
	for _, r := range word {
		b.WriteRune(r)
		if IsVowelRune(unicode.ToLower(r)) {
			n++
			if n == stress {
				b.WriteString(StressMark)
			}
		}
	}
	return b.String()
}

// ParseMarked strips stress accents from word and reports which vowel
// carried one. A word without accents but with a single ё is stressed
// on the ё. ok is false when no stress can be read off the word or when
// more than one vowel is accented.
func ParseMarked(word string) (plain string, stress int, ok bool) {
	var b strings.Builder
	vowels, yo, yoCount, marks := 0, 0, 0, 0
	prevVowel := false

	for _, r := range norm.NFC.String(word) {
		if string(r) == StressMark {
			if prevVowel {
				stress = vowels
				marks++
			}
			continue
		}
		b.WriteRune(r)

		lr := unicode.ToLower(r)
		prevVowel = IsVowelRune(lr)
		if prevVowel {
			vowels++
		}
		if lr == 'ё' {
			yo = vowels
			yoCount++
		}
	}

	plain = b.String()
	switch {
	case marks == 1:
		return plain, stress, true
	case marks == 0 && yoCount == 1:
		return plain, yo, true
	default:
		return plain, 0, false
	}
}

// Surface returns the lower-cased, trimmed input.
func (w *Word) Surface() string { return w.surface }

// Working returns the word after the orthographic rules were applied.
func (w *Word) Working() string { return w.working }

// Stress returns the number of the stressed syllable.
func (w *Word) Stress() int { return w.stress }

// CountSyllables returns the number of vowels in the input word.
func (w *Word) CountSyllables() int {
	n := 0
	for _, r := range w.surface {
		if IsVowelRune(r) {
			n++
		}
	}
	return n
}

// Transcribe returns the phonetic transcription of the word. Every call
// builds a fresh chain, so repeated calls return the same result.
func (w *Word) Transcribe() (string, error) {
	c, err := w.chain()
	if err != nil {
		return "", err
	}
	return c.Sounds(), nil
}

// Letters returns the per-letter breakdown of the transcription of the
// working form.
func (w *Word) Letters() ([]LetterInfo, error) {
	c, err := w.chain()
	if err != nil {
		return nil, err
	}

	infos := make([]LetterInfo, 0, c.Len())
	for i := 0; i < c.Len(); i++ {
		l := c.At(i)
		infos = append(infos, LetterInfo{
			Letter:     l.Char(),
			Sound:      l.FinalSound(),
			Stressed:   l.IsStressed(),
			Voiced:     l.IsVoiced(),
			Soft:       l.IsSoft(),
			Suppressed: l.Suppressed(),
			Geminate:   l.Geminate(),
		})
	}
	return infos, nil
}

func (w *Word) chain() (*Chain, error) {
	c := NewChain()
	vowelCount := 0
	for _, r := range w.working {
		stressed := false
		if IsVowelRune(r) {
			vowelCount++
			stressed = vowelCount == w.stress
		}
		if _, err := c.Append(string(r), stressed); err != nil {
			return nil, err
		}
	}
	c.Finalize()
	return c, nil
}
