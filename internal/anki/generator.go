package anki

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"codeberg.org/snonux/rusphonetic/internal/phonetic"
	"codeberg.org/snonux/rusphonetic/internal/translation"
)

// Files written into a word directory by the processor
const (
	TranscriptionFile = "transcription.txt"
	ExplanationFile   = "explanation.txt"
)

// Card represents a single Anki flashcard
type Card struct {
	Word          string // The Russian word as written
	Stress        int    // Number of the stressed syllable
	Transcription string // Phonetic transcription
	Translation   string // Optional English translation
	Notes         string // Optional pronunciation notes
}

// GeneratorOptions configures the Anki export
type GeneratorOptions struct {
	OutputPath     string // Output CSV file path
	IncludeHeaders bool   // Include CSV headers
	MarkStress     bool   // Put an accent over the stressed vowel on the front
}

// DefaultGeneratorOptions returns sensible defaults
func DefaultGeneratorOptions() *GeneratorOptions {
	return &GeneratorOptions{
		OutputPath:     "anki_import.csv",
		IncludeHeaders: true,
		MarkStress:     true,
	}
}

// Generator creates Anki-compatible import files
type Generator struct {
	options *GeneratorOptions
	cards   []Card
}

// NewGenerator creates a new Anki generator
func NewGenerator(options *GeneratorOptions) *Generator {
	if options == nil {
		options = DefaultGeneratorOptions()
	}
	return &Generator{
		options: options,
		cards:   make([]Card, 0),
	}
}

// AddCard adds a card to the collection
func (g *Generator) AddCard(card Card) {
	g.cards = append(g.cards, card)
}

// GetCards returns a slice of all cards for modification
func (g *Generator) GetCards() []Card {
	return g.cards
}

// GenerateCSV creates a CSV file for Anki import
func (g *Generator) GenerateCSV() error {
	file, err := os.Create(g.options.OutputPath)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	if g.options.IncludeHeaders {
		headers := []string{"Russian", "Transcription", "Translation", "Notes"}
		if err := writer.Write(headers); err != nil {
			return fmt.Errorf("failed to write headers: %w", err)
		}
	}

	for _, card := range g.cards {
		record := []string{
			g.formatFront(card),
			formatTranscription(card.Transcription),
			card.Translation,
			card.Notes,
		}

		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write card: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to write CSV file: %w", err)
	}
	return nil
}

// formatFront formats the word shown on the front of the card
func (g *Generator) formatFront(card Card) string {
	if !g.options.MarkStress {
		return card.Word
	}
	return phonetic.MarkStress(card.Word, card.Stress)
}

// formatTranscription wraps the transcription in brackets
func formatTranscription(transcription string) string {
	if transcription == "" {
		return ""
	}
	return fmt.Sprintf("[%s]", transcription)
}

// GenerateFromDirectory creates cards from a directory of saved words
func (g *Generator) GenerateFromDirectory(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read directory: %w", err)
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		// Skip hidden directories like .trashbin
		if strings.HasPrefix(entry.Name(), ".") {
			continue
		}

		wordDir := filepath.Join(dir, entry.Name())
		card, err := ReadWordDirectory(wordDir)
		if err != nil {
			// Not a word directory
			continue
		}
		g.AddCard(card)
	}

	return nil
}

// ReadWordDirectory loads a card from a word directory. The
// transcription file holds "word = stress" on the first line and the
// transcription on the second.
func ReadWordDirectory(wordDir string) (Card, error) {
	data, err := os.ReadFile(filepath.Join(wordDir, TranscriptionFile))
	if err != nil {
		return Card{}, err
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) < 2 {
		return Card{}, fmt.Errorf("malformed %s in %s", TranscriptionFile, wordDir)
	}

	parts := strings.SplitN(lines[0], "=", 2)
	if len(parts) != 2 {
		return Card{}, fmt.Errorf("malformed %s in %s", TranscriptionFile, wordDir)
	}
	stress, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Card{}, fmt.Errorf("malformed stress in %s: %w", wordDir, err)
	}

	card := Card{
		Word:          strings.TrimSpace(parts[0]),
		Stress:        stress,
		Transcription: strings.TrimSpace(lines[1]),
	}

	if text, err := translation.LoadTranslation(wordDir); err == nil {
		card.Translation = text
	}
	if notes, err := os.ReadFile(filepath.Join(wordDir, ExplanationFile)); err == nil {
		card.Notes = strings.TrimSpace(string(notes))
	}

	return card, nil
}

// WriteWordDirectory saves a card into wordDir in the layout
// ReadWordDirectory expects.
func WriteWordDirectory(wordDir string, card Card) error {
	if err := os.MkdirAll(wordDir, 0755); err != nil {
		return fmt.Errorf("failed to create word directory: %w", err)
	}

	content := fmt.Sprintf("%s = %d\n%s\n", card.Word, card.Stress, card.Transcription)
	if err := os.WriteFile(filepath.Join(wordDir, TranscriptionFile), []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write transcription file: %w", err)
	}
	return nil
}

// Stats returns statistics about the card collection
func (g *Generator) Stats() (totalCards, withTranslation, withNotes int) {
	totalCards = len(g.cards)

	for _, card := range g.cards {
		if card.Translation != "" {
			withTranslation++
		}
		if card.Notes != "" {
			withNotes++
		}
	}

	return
}
