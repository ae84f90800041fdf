// Package archive moves the directory of saved words out of the way so
// that a new set of words can be collected for the next Anki export.
package archive
