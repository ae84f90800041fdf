package phonetic

// Voicing is a voicing override forced onto a consonant by its
// neighbours.
type Voicing int

const (
	VoicingUnset Voicing = iota
	Voiced
	Devoiced
)

func (v Voicing) String() string {
	switch v {
	case Voiced:
		return "voiced"
	case Devoiced:
		return "devoiced"
	default:
		return "unset"
	}
}

// Hardness is a palatalization override forced onto a consonant by the
// letter that follows it.
type Hardness int

const (
	HardnessUnset Hardness = iota
	Hard
	Soft
)

func (h Hardness) String() string {
	switch h {
	case Hard:
		return "hard"
	case Soft:
		return "soft"
	default:
		return "unset"
	}
}

// Letter is one character of a word inside a Chain. Its sound depends on
// the letters before it and on the overrides written into it by the
// letters appended after it.
type Letter struct {
	char     rune
	index    int
	chain    *Chain
	stressed bool

	voicing  Voicing
	hardness Hardness

	// suppressed letters are absorbed by an identical sound that follows
	suppressed bool
	geminate   bool
}

// Char returns the letter as written.
func (l *Letter) Char() string {
	return string(l.char)
}

// Index returns the position of the letter in its chain.
func (l *Letter) Index() int {
	return l.index
}

// Prev returns the letter written immediately before this one, marks
// included, or nil at the start of the word.
func (l *Letter) Prev() *Letter {
	if l.index == 0 {
		return nil
	}
	return l.chain.letters[l.index-1]
}

// SoundingPrev returns the nearest preceding letter that is not a mark.
func (l *Letter) SoundingPrev() *Letter {
	j := l.chain.soundingPredecessor(l.index)
	if j < 0 {
		return nil
	}
	return l.chain.letters[j]
}

func (l *Letter) IsVowel() bool     { return in(vowels, l.char) }
func (l *Letter) IsConsonant() bool { return in(consonants, l.char) }
func (l *Letter) IsMark() bool      { return in(marks, l.char) }

// IsStressed reports whether this is the stressed vowel of the word.
func (l *Letter) IsStressed() bool { return l.stressed }

func (l *Letter) Voicing() Voicing   { return l.voicing }
func (l *Letter) Hardness() Hardness { return l.hardness }
func (l *Letter) Suppressed() bool   { return l.suppressed }
func (l *Letter) Geminate() bool     { return l.geminate }

// IsPaired reports whether the letter is a consonant with a voiced or
// devoiced counterpart.
func (l *Letter) IsPaired() bool {
	if !l.IsConsonant() {
		return false
	}
	_, ok := pairOf(l.char)
	return ok
}

// IsVoiced reports whether the consonant is currently pronounced voiced.
func (l *Letter) IsVoiced() bool {
	if !l.IsConsonant() {
		return false
	}
	switch {
	case in(alwaysVoiced, l.char):
		return true
	case in(alwaysDevoiced, l.char):
		return false
	}
	switch l.voicing {
	case Voiced:
		return true
	case Devoiced:
		return false
	}
	p, ok := pairOf(l.char)
	return ok && p.voiced == l.char
}

// IsDevoiced reports whether the consonant is currently pronounced
// devoiced.
func (l *Letter) IsDevoiced() bool {
	if !l.IsConsonant() {
		return false
	}
	switch {
	case in(alwaysDevoiced, l.char):
		return true
	case in(alwaysVoiced, l.char):
		return false
	}
	switch l.voicing {
	case Voiced:
		return false
	case Devoiced:
		return true
	}
	p, ok := pairOf(l.char)
	return ok && p.devoiced == l.char
}

// IsHard reports whether the consonant is hard. A consonant nobody forced
// either way is neither hard nor soft.
func (l *Letter) IsHard() bool {
	if !l.IsConsonant() {
		return false
	}
	switch {
	case in(alwaysHard, l.char):
		return true
	case in(alwaysSoft, l.char):
		return false
	}
	return l.hardness == Hard
}

// IsSoft reports whether the consonant is palatalized.
func (l *Letter) IsSoft() bool {
	if !l.IsConsonant() {
		return false
	}
	switch {
	case in(alwaysSoft, l.char):
		return true
	case in(alwaysHard, l.char):
		return false
	}
	return l.hardness == Soft
}

// IsAfterStress reports whether a stressed vowel occurs earlier in the
// word.
func (l *Letter) IsAfterStress() bool {
	for p := l.Prev(); p != nil; p = p.Prev() {
		if p.stressed {
			return true
		}
	}
	return false
}

// Sound renders the letter from its current state. Marks render empty.
// withSoftMark controls whether a soft consonant carries the ' marker.
func (l *Letter) Sound(withSoftMark bool) string {
	switch {
	case l.IsMark():
		return ""
	case l.IsVowel():
		return l.vowelSound()
	}

	s := string(l.variant())
	if withSoftMark && l.IsSoft() {
		s += SoftMark
	}
	return s
}

// FinalSound is what the letter contributes to the transcription.
func (l *Letter) FinalSound() string {
	if l.IsMark() || l.suppressed {
		return ""
	}
	s := l.Sound(true)
	if l.geminate && l.IsAfterStress() {
		s += LengthMark
	}
	return s
}

func (l *Letter) vowelSound() string {
	prev := l.Prev()
	v := l.char

	if plain, ok := iotated[v]; ok {
		switch {
		case prev == nil || prev.IsVowel() || prev.IsMark():
			return Glide + string(plain)
		case !l.stressed:
			v = reducedE
		default:
			v = plain
		}
	}

	if v == plainO && !l.stressed {
		v = reducedO
	}

	if v == frontI && prev != nil {
		switch {
		case prev.char == softSign:
			return Glide + string(frontI)
		case in(alwaysHard, prev.char):
			v = backI
		}
	}
	return string(v)
}

// variant picks the voiced or devoiced member of the consonant's pair.
func (l *Letter) variant() rune {
	p, ok := pairOf(l.char)
	if !ok {
		return l.char
	}
	if l.IsDevoiced() {
		return p.devoiced
	}
	return p.voiced
}
