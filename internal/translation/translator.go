package translation

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"codeberg.org/snonux/rusphonetic/internal/explain"
)

// TranslationFile is the name of the file SaveTranslation writes
const TranslationFile = "translation.txt"

const systemPrompt = "You translate single Russian words into English for language learners."

// Translator handles Russian to English translation
type Translator struct {
	provider explain.Provider
}

// NewTranslator creates a new translator on top of a language model
// provider
func NewTranslator(provider explain.Provider) *Translator {
	return &Translator{provider: provider}
}

// TranslateWord translates a Russian word to English
func (t *Translator) TranslateWord(ctx context.Context, word string) (string, error) {
	prompt := fmt.Sprintf("Translate the Russian word '%s' to English. Respond with only the English translation, nothing else.", word)

	reply, err := t.provider.Complete(ctx, systemPrompt, prompt)
	if err != nil {
		return "", fmt.Errorf("%s: %w", t.provider.Name(), err)
	}

	translation := strings.TrimSpace(reply)
	if translation == "" {
		return "", fmt.Errorf("no translation returned")
	}
	return translation, nil
}

// SaveTranslation saves the translation to a file in the word directory
func SaveTranslation(wordDir, word, translation string) error {
	outputFile := filepath.Join(wordDir, TranslationFile)
	content := fmt.Sprintf("%s = %s\n", word, translation)

	if err := os.WriteFile(outputFile, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write translation file: %w", err)
	}

	return nil
}

// LoadTranslation reads the translation SaveTranslation wrote
func LoadTranslation(wordDir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(wordDir, TranslationFile))
	if err != nil {
		return "", err
	}

	_, translation, ok := strings.Cut(strings.TrimSpace(string(data)), "=")
	if !ok {
		return "", fmt.Errorf("malformed %s in %s", TranslationFile, wordDir)
	}
	return strings.TrimSpace(translation), nil
}

// TranslationCache stores translations in memory for batch operations
type TranslationCache struct {
	translations map[string]string
}

// NewTranslationCache creates a new translation cache
func NewTranslationCache() *TranslationCache {
	return &TranslationCache{
		translations: make(map[string]string),
	}
}

// Add adds a translation to the cache
func (tc *TranslationCache) Add(word, translation string) {
	tc.translations[word] = translation
}

// Get retrieves a translation from the cache
func (tc *TranslationCache) Get(word string) (string, bool) {
	translation, ok := tc.translations[word]
	return translation, ok
}
