package translation

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"codeberg.org/snonux/rusphonetic/internal/explain"
	"codeberg.org/snonux/rusphonetic/internal/testutil"
)

func TestTranslateWord(t *testing.T) {
	mock := &testutil.MockProvider{Replies: map[string]string{"дуб": "  oak\n"}}
	translator := NewTranslator(mock)

	translation, err := translator.TranslateWord(context.Background(), "дуб")
	if err != nil {
		t.Fatalf("TranslateWord failed: %v", err)
	}

	if translation != "oak" {
		t.Errorf("Expected 'oak', got '%s'", translation)
	}

	if len(mock.Calls) != 1 || !strings.Contains(mock.Calls[0], "Russian word 'дуб'") {
		t.Errorf("Unexpected prompt: %v", mock.Calls)
	}
}

func TestTranslateWord_Errors(t *testing.T) {
	translator := NewTranslator(&testutil.MockProvider{Err: errors.New("quota exceeded")})

	_, err := translator.TranslateWord(context.Background(), "дуб")
	if err == nil || !strings.Contains(err.Error(), "quota exceeded") {
		t.Errorf("Expected provider error, got: %v", err)
	}

	translator = NewTranslator(&testutil.MockProvider{Replies: map[string]string{"дуб": " "}})
	if _, err := translator.TranslateWord(context.Background(), "дуб"); err == nil {
		t.Error("Expected error for empty translation")
	}
}

func TestTranslateWord_NoAPIKey(t *testing.T) {
	translator := NewTranslator(explain.NewOpenAIProvider("", ""))

	_, err := translator.TranslateWord(context.Background(), "дуб")
	if err == nil {
		t.Fatal("Expected error for missing API key")
	}

	if !strings.Contains(err.Error(), "OpenAI API key not configured") {
		t.Errorf("Expected missing key error, got: %v", err)
	}
}

func TestTranslateWord_Integration(t *testing.T) {
	// Skip if no API key
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		t.Skip("Skipping integration test: OPENAI_API_KEY not set")
	}

	translator := NewTranslator(explain.NewOpenAIProvider(apiKey, ""))

	translation, err := translator.TranslateWord(context.Background(), "яблоко")
	if err != nil {
		t.Fatalf("TranslateWord failed: %v", err)
	}

	if translation == "" {
		t.Error("Got empty translation")
	}

	t.Logf("Translation of 'яблоко': %s", translation)
}

func TestSaveAndLoadTranslation(t *testing.T) {
	tmpDir := t.TempDir()

	if err := SaveTranslation(tmpDir, "дуб", "oak"); err != nil {
		t.Fatalf("SaveTranslation failed: %v", err)
	}

	testutil.AssertFileContains(t, filepath.Join(tmpDir, TranslationFile), "дуб = oak\n")

	translation, err := LoadTranslation(tmpDir)
	if err != nil {
		t.Fatalf("LoadTranslation failed: %v", err)
	}
	if translation != "oak" {
		t.Errorf("Expected 'oak', got '%s'", translation)
	}
}

func TestLoadTranslation_Errors(t *testing.T) {
	tmpDir := t.TempDir()

	if _, err := LoadTranslation(tmpDir); err == nil {
		t.Error("Expected error for missing translation file")
	}

	testutil.CreateTestFile(t, filepath.Join(tmpDir, TranslationFile), []byte("no separator\n"))
	if _, err := LoadTranslation(tmpDir); err == nil {
		t.Error("Expected error for malformed translation file")
	}
}

func TestSaveTranslation_InvalidDirectory(t *testing.T) {
	if err := SaveTranslation("/nonexistent/path", "дуб", "oak"); err == nil {
		t.Error("Expected error for invalid directory")
	}
}

func TestTranslationCache(t *testing.T) {
	cache := NewTranslationCache()

	if _, ok := cache.Get("дуб"); ok {
		t.Error("Expected empty cache")
	}

	cache.Add("дуб", "oak")
	cache.Add("мама", "mom")

	if translation, ok := cache.Get("дуб"); !ok || translation != "oak" {
		t.Errorf("Get(дуб) = %q, %v", translation, ok)
	}

	// Overwrite existing
	cache.Add("дуб", "oak tree")
	if translation, _ := cache.Get("дуб"); translation != "oak tree" {
		t.Errorf("Expected overwritten translation, got '%s'", translation)
	}
}
