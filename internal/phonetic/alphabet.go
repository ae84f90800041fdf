package phonetic

import "strings"

// Character classes of the Russian alphabet
const (
	vowels     = "аеёиоуыэюя"
	consonants = "бвгджзйклмнпрстфхцчшщ"
	marks      = "ъь"

	hardSign = 'ъ'
	softSign = 'ь'
)

// Consonants whose hardness never changes
const (
	alwaysHard = "жшц"
	alwaysSoft = "йчщ"
)

// Vowels that harden or soften the preceding consonant
const (
	hardeningVowels = "аоуыэ"
	softeningVowels = "еёиюя"
)

// Consonants whose voicing never changes
const (
	alwaysVoiced   = "йлмнр"
	alwaysDevoiced = "хцчщ"
)

// softenedDentals are softened by a following soft consonant
const softenedDentals = "дзнст"

// hardSignPrefixes are the letter sequences after which a hard sign
// still softens the preceding consonant (разъезд, изъян, съесть).
var hardSignPrefixes = []string{"раз", "из", "с"}

// iotated maps each iotated vowel to its plain counterpart.
var iotated = map[rune]rune{
	'е': 'э',
	'ё': 'о',
	'ю': 'у',
	'я': 'а',
}

// voicingPair holds the voiced and devoiced member of a consonant pair.
type voicingPair struct {
	voiced   rune
	devoiced rune
}

var voicingPairs = []voicingPair{
	{'б', 'п'},
	{'в', 'ф'},
	{'г', 'к'},
	{'д', 'т'},
	{'ж', 'ш'},
	{'з', 'с'},
}

// Phonetic symbols used in the output
const (
	SoftMark   = "'"
	LengthMark = ":"
	Glide      = "й'"

	reducedO = 'а'
	reducedE = 'и'
	backI    = 'ы'
	frontI   = 'и'
	plainO   = 'о'
)

// inertVoiced is the voiced paired consonant that never voices the
// consonant before it (сварка, твой).
const inertVoiced = 'в'

func in(set string, r rune) bool {
	return strings.ContainsRune(set, r)
}

// pairOf returns the voicing pair a consonant belongs to.
func pairOf(r rune) (voicingPair, bool) {
	for _, p := range voicingPairs {
		if p.voiced == r || p.devoiced == r {
			return p, true
		}
	}
	return voicingPair{}, false
}

// IsRussianLetter reports whether r is a lower-case letter of the
// Russian alphabet.
func IsRussianLetter(r rune) bool {
	return in(vowels, r) || in(consonants, r) || in(marks, r)
}

// IsVowelRune reports whether r is a Russian vowel letter.
func IsVowelRune(r rune) bool {
	return in(vowels, r)
}
