package phonetic

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Chain is the ordered sequence of letters of one word. Letters only
// ever reach backwards: appending a letter re-derives the voicing,
// hardness and gemination of the letters before it.
type Chain struct {
	letters []*Letter
}

// NewChain returns an empty chain.
func NewChain() *Chain {
	return &Chain{}
}

// Len returns the number of letters in the chain.
func (c *Chain) Len() int {
	return len(c.letters)
}

// At returns the i-th letter.
func (c *Chain) At(i int) *Letter {
	return c.letters[i]
}

// Append adds a letter to the end of the chain and propagates its
// influence onto the letters already in it. stressed is ignored for
// anything but vowels.
func (c *Chain) Append(char string, stressed bool) (*Letter, error) {
	char = strings.ToLower(strings.TrimSpace(char))
	if utf8.RuneCountInString(char) != 1 {
		return nil, fmt.Errorf("%w: got %q", ErrInvalidLength, char)
	}

	r, _ := utf8.DecodeRuneInString(char)
	if !IsRussianLetter(r) {
		return nil, fmt.Errorf("%w: %q", ErrNotRussianLetter, char)
	}

	l := &Letter{
		char:  r,
		index: len(c.letters),
		chain: c,
	}
	l.stressed = stressed && l.IsVowel()
	c.letters = append(c.letters, l)

	c.propagateVoicing(l.index)
	c.propagateHardness(l.index)
	c.refreshGemination(l.index)

	return l, nil
}

// Finalize applies word-final devoicing to the last sounding letter.
// Gemination is not rescanned afterwards.
func (c *Chain) Finalize() {
	last := len(c.letters) - 1
	for last >= 0 && c.letters[last].IsMark() {
		last--
	}
	if last < 0 || !c.letters[last].IsConsonant() {
		return
	}
	c.letters[last].voicing = Devoiced
	c.propagateVoicing(last)
}

// Sounds concatenates the final sounds of all letters.
func (c *Chain) Sounds() string {
	var b strings.Builder
	for _, l := range c.letters {
		b.WriteString(l.FinalSound())
	}
	return b.String()
}

// soundingPredecessor returns the index of the nearest letter before i
// that is not a mark, or -1.
func (c *Chain) soundingPredecessor(i int) int {
	for j := i - 1; j >= 0; j-- {
		if !c.letters[j].IsMark() {
			return j
		}
	}
	return -1
}

// propagateVoicing lets letter i assimilate the consonant before it and
// carries the change further back through the consonant cluster.
func (c *Chain) propagateVoicing(i int) {
	for {
		p := c.soundingPredecessor(i)
		if p < 0 {
			return
		}
		cur, prev := c.letters[i], c.letters[p]
		if !cur.IsConsonant() || !prev.IsConsonant() {
			return
		}

		switch {
		case cur.IsVoiced() && cur.IsPaired():
			if cur.variant() == inertVoiced {
				return
			}
			prev.voicing = Voiced
		case cur.IsDevoiced():
			prev.voicing = Devoiced
		default:
			return
		}
		i = p
	}
}

// propagateHardness lets letter i soften or harden the consonant before
// it. A softened dental passes the softening on to the consonant before
// it in turn.
func (c *Chain) propagateHardness(i int) {
	for {
		p := c.soundingPredecessor(i)
		if p < 0 {
			return
		}
		prev := c.letters[p]
		if !prev.IsConsonant() {
			return
		}

		var h Hardness
		switch {
		case c.softens(i, p):
			h = Soft
		case in(hardeningVowels, c.letters[i].char):
			h = Hard
		default:
			return
		}

		if in(alwaysHard, prev.char) || in(alwaysSoft, prev.char) {
			return
		}
		prev.hardness = h
		i = p
	}
}

// softens reports whether letter i palatalizes letter p.
func (c *Chain) softens(i, p int) bool {
	cur, prev := c.letters[i], c.letters[p]
	if in(alwaysHard, prev.char) || !prev.IsConsonant() {
		return false
	}

	switch {
	case in(softeningVowels, cur.char), cur.char == softSign:
		return true
	case cur.IsSoft() && in(softenedDentals, prev.char):
		return true
	case cur.char == hardSign:
		for _, prefix := range hardSignPrefixes {
			if c.precededBy(i, prefix) {
				return true
			}
		}
	}
	return false
}

// precededBy reports whether the letters written right before i spell seq.
func (c *Chain) precededBy(i int, seq string) bool {
	rs := []rune(seq)
	j := i - 1
	for k := len(rs) - 1; k >= 0; k-- {
		if j < 0 || c.letters[j].char != rs[k] {
			return false
		}
		j--
	}
	return true
}

// refreshGemination recomputes the merged-sound flags of the consonant
// run that ends at letter i (or right before it, if i is not a
// consonant). Runs are delimited by vowels; marks are skipped.
func (c *Chain) refreshGemination(i int) {
	c.letters[i].geminate = false

	k := i
	if !c.letters[k].IsConsonant() {
		k = c.soundingPredecessor(k)
	}

	// newest first
	var run []int
	for k >= 0 && c.letters[k].IsConsonant() {
		run = append(run, k)
		k = c.soundingPredecessor(k)
	}

	for _, j := range run {
		c.letters[j].suppressed = false
		c.letters[j].geminate = false
	}

	for j := len(run) - 1; j > 0; j-- {
		earlier, later := c.letters[run[j]], c.letters[run[j-1]]
		if earlier.Sound(true) == later.Sound(true) {
			earlier.suppressed = true
			earlier.geminate = true
			later.geminate = true
		}
	}
}
