// Package phonetic transcribes a single Russian word into the sounds it
// is pronounced with, given the number of its stressed syllable. It
// applies the orthographic cluster rules first and then builds a chain
// of letters in which every new letter re-derives voicing, softness and
// gemination of the letters before it.
package phonetic
