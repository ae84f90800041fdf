// Package processor contains the core business logic for processing
// Russian words. It transcribes them, records the history, saves word
// directories, asks the language model backends for translations and
// explanations, and generates the Anki import file. This package serves
// as the main coordinator between all other components.
package processor
