package explain

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sony/gobreaker"
)

type fakeProvider struct {
	reply string
	err   error
	calls int

	lastSystem string
	lastPrompt string
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) Complete(ctx context.Context, system, prompt string) (string, error) {
	f.calls++
	f.lastSystem = system
	f.lastPrompt = prompt
	return f.reply, f.err
}

func TestNewProvider(t *testing.T) {
	tests := []struct {
		name     string
		config   Config
		wantName string
		wantErr  bool
	}{
		{"default is openai", Config{OpenAIKey: "k"}, ProviderOpenAI, false},
		{"openai", Config{Provider: "openai"}, ProviderOpenAI, false},
		{"gemini", Config{Provider: "gemini"}, ProviderGemini, false},
		{"unknown", Config{Provider: "eliza"}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewProvider(tt.config)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewProvider() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if p.Name() != tt.wantName {
				t.Errorf("Name() = %s, want %s", p.Name(), tt.wantName)
			}
		})
	}
}

func TestNewOpenAIProvider(t *testing.T) {
	p := NewOpenAIProvider("test-api-key", "")

	if p.apiKey != "test-api-key" {
		t.Errorf("Expected API key 'test-api-key', got '%s'", p.apiKey)
	}
	if p.model == "" {
		t.Error("Expected a default model")
	}
	if p.client == nil {
		t.Error("OpenAI client not initialized")
	}
}

func TestProviders_NoAPIKey(t *testing.T) {
	tests := []struct {
		provider Provider
		wantErr  string
	}{
		{NewOpenAIProvider("", ""), "OpenAI API key not configured"},
		{NewGeminiProvider("", ""), "Gemini API key not configured"},
	}

	for _, tt := range tests {
		t.Run(tt.provider.Name(), func(t *testing.T) {
			_, err := tt.provider.Complete(context.Background(), "system", "prompt")
			if err == nil {
				t.Fatal("Expected error for missing API key")
			}
			if err.Error() != tt.wantErr {
				t.Errorf("Expected %q error, got: %v", tt.wantErr, err)
			}
		})
	}
}

func TestExplainAndSave(t *testing.T) {
	fake := &fakeProvider{reply: "  • /м/ - like 'm' in 'mother'\n"}
	explainer := NewExplainer(fake)
	tmpDir := t.TempDir()

	text, err := explainer.ExplainAndSave(context.Background(), "мама", 1, "мама", tmpDir)
	if err != nil {
		t.Fatalf("ExplainAndSave failed: %v", err)
	}
	if text != "• /м/ - like 'm' in 'mother'" {
		t.Errorf("Unexpected explanation: %q", text)
	}

	content, err := os.ReadFile(filepath.Join(tmpDir, ExplanationFile))
	if err != nil {
		t.Fatalf("Failed to read explanation file: %v", err)
	}
	if string(content) != "• /м/ - like 'm' in 'mother'\n" {
		t.Errorf("Unexpected explanation content: %q", content)
	}

	if !strings.Contains(fake.lastPrompt, "'мама'") || !strings.Contains(fake.lastPrompt, "[мама]") {
		t.Errorf("Prompt does not mention word and transcription: %s", fake.lastPrompt)
	}
	if !strings.Contains(fake.lastPrompt, "syllable 1") {
		t.Errorf("Prompt does not mention the stress: %s", fake.lastPrompt)
	}
	if fake.lastSystem != systemPrompt {
		t.Error("System prompt not passed to provider")
	}
}

func TestExplain_EmptyReply(t *testing.T) {
	explainer := NewExplainer(&fakeProvider{reply: "   "})

	_, err := explainer.Explain(context.Background(), "мама", 1, "мама")
	if err == nil {
		t.Fatal("Expected error for empty reply")
	}
}

func TestExplain_BreakerOpens(t *testing.T) {
	backendErr := errors.New("backend down")
	fake := &fakeProvider{err: backendErr}
	explainer := NewExplainer(fake)

	for i := 0; i < 3; i++ {
		_, err := explainer.Explain(context.Background(), "мама", 1, "мама")
		if !errors.Is(err, backendErr) {
			t.Fatalf("call %d: expected backend error, got %v", i+1, err)
		}
	}

	_, err := explainer.Explain(context.Background(), "мама", 1, "мама")
	if !errors.Is(err, gobreaker.ErrOpenState) {
		t.Fatalf("Expected open breaker, got %v", err)
	}
	if fake.calls != 3 {
		t.Errorf("Expected 3 provider calls, got %d", fake.calls)
	}
}

func TestExplainAndSave_InvalidDirectory(t *testing.T) {
	explainer := NewExplainer(&fakeProvider{reply: "ok"})

	_, err := explainer.ExplainAndSave(context.Background(), "мама", 1, "мама", "/nonexistent/path")
	if err == nil {
		t.Error("Expected error for invalid directory")
	}
}

func TestExplain_Integration(t *testing.T) {
	// Skip if no API key
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		t.Skip("Skipping integration test: OPENAI_API_KEY not set")
	}

	explainer := NewExplainer(NewOpenAIProvider(apiKey, ""))
	text, err := explainer.Explain(context.Background(), "счастье", 2, "щ'ас'т'й'э")
	if err != nil {
		t.Fatalf("Explain failed: %v", err)
	}
	if len(text) < 50 {
		t.Error("Explanation seems too short")
	}
	t.Logf("Explanation for 'счастье':\n%s", text)
}
