package models

import (
	"bytes"
	"context"
	"os"
	"reflect"
	"strings"
	"testing"
)

func TestNewLister(t *testing.T) {
	lister := NewLister("openai-key", "gemini-key")

	if lister == nil {
		t.Fatal("NewLister returned nil")
	}

	if lister.openAIKey != "openai-key" || lister.geminiKey != "gemini-key" {
		t.Errorf("Keys not set: %q, %q", lister.openAIKey, lister.geminiKey)
	}

	if lister.out == nil {
		t.Error("Output writer not initialized")
	}
}

func TestListAvailableModels_NoAPIKey(t *testing.T) {
	lister := NewLister("", "")

	tests := map[string]string{
		"openai": "OpenAI API key not found",
		"gemini": "Gemini API key not found",
	}

	for provider, expected := range tests {
		err := lister.ListAvailableModels(context.Background(), provider)
		if err == nil {
			t.Errorf("Expected error for missing %s API key", provider)
			continue
		}
		if !strings.HasPrefix(err.Error(), expected) {
			t.Errorf("Expected error starting with '%s', got: %v", expected, err)
		}
	}
}

func TestListAvailableModels_UnknownProvider(t *testing.T) {
	lister := NewLister("key", "key")

	if err := lister.ListAvailableModels(context.Background(), "telepathy"); err == nil {
		t.Error("Expected error for unknown provider")
	}
}

func TestChatModels(t *testing.T) {
	ids := []string{
		"gpt-4o-mini-tts",
		"gpt-4o",
		"dall-e-3",
		"whisper-1",
		"gpt-4o-realtime-preview",
		"o3-mini",
		"gpt-3.5-turbo",
		"gpt-image-1",
		"text-embedding-3-small",
		"chatgpt-4o-latest",
	}

	expected := []string{"chatgpt-4o-latest", "gpt-3.5-turbo", "gpt-4o", "o3-mini"}
	if got := chatModels(ids); !reflect.DeepEqual(got, expected) {
		t.Errorf("chatModels() = %v, want %v", got, expected)
	}
}

func TestListAvailableModels_Integration(t *testing.T) {
	// Skip if no API key
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		t.Skip("Skipping integration test: OPENAI_API_KEY not set")
	}

	lister := NewLister(apiKey, "")
	out := &bytes.Buffer{}
	lister.out = out

	if err := lister.ListAvailableModels(context.Background(), "openai"); err != nil {
		t.Fatalf("ListAvailableModels failed: %v", err)
	}
	if !strings.Contains(out.String(), "Available OpenAI Models:") {
		t.Errorf("Unexpected output: %q", out.String())
	}
}
