package processor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"text/tabwriter"

	"codeberg.org/snonux/rusphonetic/internal"
	"codeberg.org/snonux/rusphonetic/internal/anki"
	"codeberg.org/snonux/rusphonetic/internal/batch"
	"codeberg.org/snonux/rusphonetic/internal/cli"
	"codeberg.org/snonux/rusphonetic/internal/explain"
	"codeberg.org/snonux/rusphonetic/internal/phonetic"
	"codeberg.org/snonux/rusphonetic/internal/store"
	"codeberg.org/snonux/rusphonetic/internal/translation"
)

// Processor handles the main word processing logic
type Processor struct {
	flags        *cli.Flags
	out          io.Writer
	history      *store.Store
	explainer    *explain.Explainer
	translator   *translation.Translator
	translations *translation.TranslationCache
	cards        *anki.Generator
}

// NewProcessor creates a new word processor. The history database is
// opened unless disabled. The language model backend is only set up
// when --explain or --translate is given.
func NewProcessor(flags *cli.Flags) (*Processor, error) {
	p := &Processor{
		flags:        flags,
		out:          os.Stdout,
		translations: translation.NewTranslationCache(),
		cards:        anki.NewGenerator(nil),
	}

	if !flags.NoHistory {
		history, err := store.Open(flags.DBPath)
		if err != nil {
			return nil, err
		}
		p.history = history
	}

	if flags.Explain || flags.Translate {
		provider, err := explain.NewProvider(explain.Config{
			Provider:    flags.ExplainProvider,
			OpenAIKey:   cli.GetOpenAIKey(),
			OpenAIModel: flags.OpenAIModel,
			GeminiKey:   cli.GetGeminiKey(),
			GeminiModel: flags.GeminiModel,
		})
		if err != nil {
			p.Close()
			return nil, err
		}
		if flags.Explain {
			p.explainer = explain.NewExplainer(provider)
		}
		if flags.Translate {
			p.translator = translation.NewTranslator(provider)
		}
	}

	return p, nil
}

// Close releases the history database
func (p *Processor) Close() error {
	if p.history == nil {
		return nil
	}
	return p.history.Close()
}

// ProcessBatch processes multiple words from a batch file
func (p *Processor) ProcessBatch(ctx context.Context) error {
	entries, err := batch.ReadBatchFile(p.flags.BatchFile)
	if err != nil {
		return err
	}

	// Validate all words before transcribing any of them
	for _, entry := range entries {
		if _, err := phonetic.New(entry.Word, entry.Stress); err != nil {
			return fmt.Errorf("line %d: invalid word '%s': %w", entry.Line, entry.Word, err)
		}
	}

	processedCount := 0
	errorCount := 0

	for _, entry := range entries {
		if err := p.ProcessSingleWord(ctx, entry.Word, entry.Stress); err != nil {
			fmt.Fprintf(os.Stderr, "Error processing '%s': %v\n", entry.Word, err)
			errorCount++
			// Continue with next word
		} else {
			processedCount++
		}
	}

	// Print summary
	fmt.Fprintf(p.out, "\n=== Batch Processing Summary ===\n")
	fmt.Fprintf(p.out, "Total words: %d\n", len(entries))
	fmt.Fprintf(p.out, "Processed: %d\n", processedCount)
	if errorCount > 0 {
		fmt.Fprintf(p.out, "Errors: %d\n", errorCount)
	}
	fmt.Fprintf(p.out, "================================\n")

	return nil
}

// ProcessSingleWord transcribes one word and records the result
func (p *Processor) ProcessSingleWord(ctx context.Context, word string, stress int) error {
	w, err := phonetic.New(word, stress)
	if err != nil {
		return fmt.Errorf("invalid word '%s': %w", word, err)
	}

	transcription, err := w.Transcribe()
	if err != nil {
		return fmt.Errorf("transcription of '%s' failed: %w", word, err)
	}

	fmt.Fprintf(p.out, "%s [%s]\n", phonetic.MarkStress(w.Surface(), w.Stress()), transcription)

	if p.flags.Breakdown {
		if err := p.printBreakdown(w); err != nil {
			return err
		}
	}

	card := anki.Card{
		Word:          w.Surface(),
		Stress:        w.Stress(),
		Transcription: transcription,
	}

	if err := p.recordHistory(ctx, card); err != nil {
		// History is a convenience, don't fail the transcription
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	if p.translator != nil {
		card.Translation = p.translate(ctx, card.Word)
	}

	if p.flags.Save || p.explainer != nil || card.Translation != "" {
		wordDir := p.wordDirectory(card.Word)
		if err := anki.WriteWordDirectory(wordDir, card); err != nil {
			return err
		}
		slog.Debug("saved word", "word", card.Word, "dir", wordDir)

		if card.Translation != "" {
			if err := translation.SaveTranslation(wordDir, card.Word, card.Translation); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
			}
		}

		if p.explainer != nil {
			notes, err := p.explainer.ExplainAndSave(ctx, card.Word, card.Stress, transcription, wordDir)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Warning: Failed to fetch explanation: %v\n", err)
			} else {
				card.Notes = notes
				fmt.Fprintf(p.out, "%s\n", notes)
			}
		}
	}

	p.cards.AddCard(card)
	return nil
}

// translate returns the English translation of word, or "" when the
// backend fails. Words repeated in a batch are translated once.
func (p *Processor) translate(ctx context.Context, word string) string {
	if cached, ok := p.translations.Get(word); ok {
		return cached
	}

	text, err := p.translator.TranslateWord(ctx, word)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Translation failed: %v\n", err)
		return ""
	}

	p.translations.Add(word, text)
	fmt.Fprintf(p.out, "  Translation: %s\n", text)
	return text
}

// recordHistory saves the transcription. A word already transcribed the
// same way only has its timestamp refreshed.
func (p *Processor) recordHistory(ctx context.Context, card anki.Card) error {
	if p.history == nil {
		return nil
	}

	record := &store.Record{
		Word:          card.Word,
		Stress:        card.Stress,
		Transcription: card.Transcription,
	}

	prev, err := p.history.Lookup(ctx, card.Word, card.Stress)
	switch {
	case err == nil && prev.Transcription == card.Transcription:
		record.ID = prev.ID
	case err != nil && !errors.Is(err, store.ErrNotFound):
		return err
	}

	return p.history.Save(ctx, record)
}

func (p *Processor) printBreakdown(w *phonetic.Word) error {
	letters, err := w.Letters()
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(p.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "  letter\tsound\tstressed\tvoiced\tsoft\tnotes\n")
	for _, l := range letters {
		notes := ""
		switch {
		case l.Suppressed:
			notes = "silent"
		case l.Geminate:
			notes = "long"
		}
		fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\t%s\t%s\n",
			l.Letter, l.Sound, yesNo(l.Stressed), yesNo(l.Voiced), yesNo(l.Soft), notes)
	}
	return tw.Flush()
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "-"
}

// wordDirectory returns the directory a word is saved in
func (p *Processor) wordDirectory(word string) string {
	return filepath.Join(p.flags.OutputDir, internal.SanitizeFilename(word))
}

// GenerateAnkiFile writes the Anki import CSV and returns its path. The
// words processed in this run are exported; without any, the saved word
// directories under the output directory are.
func (p *Processor) GenerateAnkiFile() (string, error) {
	if err := os.MkdirAll(p.flags.OutputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	outputPath := p.flags.AnkiFile
	if !filepath.IsAbs(outputPath) {
		outputPath = filepath.Join(p.flags.OutputDir, outputPath)
	}

	gen := anki.NewGenerator(&anki.GeneratorOptions{
		OutputPath:     outputPath,
		IncludeHeaders: true,
		MarkStress:     true,
	})

	if cards := p.cards.GetCards(); len(cards) > 0 {
		for _, card := range cards {
			gen.AddCard(card)
		}
	} else if err := gen.GenerateFromDirectory(p.flags.OutputDir); err != nil {
		return "", err
	}

	total, withTranslation, withNotes := gen.Stats()
	if total == 0 {
		return "", fmt.Errorf("no words to export in %s", p.flags.OutputDir)
	}

	if err := gen.GenerateCSV(); err != nil {
		return "", err
	}

	fmt.Fprintf(p.out, "\nAnki import file created: %s\n", outputPath)
	fmt.Fprintf(p.out, "Cards: %d (with translation: %d, with notes: %d)\n", total, withTranslation, withNotes)
	return outputPath, nil
}

// ShowHistory prints the limit most recent transcriptions
func (p *Processor) ShowHistory(ctx context.Context, limit int) error {
	if p.history == nil {
		return fmt.Errorf("history is disabled")
	}

	records, err := p.history.Recent(ctx, limit)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Fprintf(p.out, "No transcriptions yet\n")
		return nil
	}

	tw := tabwriter.NewWriter(p.out, 0, 0, 2, ' ', 0)
	for _, r := range records {
		fmt.Fprintf(tw, "%s\t%s\t[%s]\n",
			r.CreatedAt.Format("2006-01-02 15:04"),
			phonetic.MarkStress(r.Word, r.Stress),
			r.Transcription)
	}
	return tw.Flush()
}
