package models

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"
	"sort"
	"strings"

	"github.com/sashabaranov/go-openai"
	"google.golang.org/genai"
)

const keyHint = "environment variable or configure in .rusphonetic.yaml"

// Lister handles listing the models usable for explanations
type Lister struct {
	openAIKey string
	geminiKey string
	out       io.Writer
}

// NewLister creates a new model lister
func NewLister(openAIKey, geminiKey string) *Lister {
	return &Lister{
		openAIKey: openAIKey,
		geminiKey: geminiKey,
		out:       os.Stdout,
	}
}

// ListAvailableModels prints the chat models of provider ("openai" or
// "gemini") that can be passed to --openai-model or --gemini-model
func (l *Lister) ListAvailableModels(ctx context.Context, provider string) error {
	var (
		names []string
		err   error
	)

	switch provider {
	case "openai", "":
		provider = "OpenAI"
		names, err = l.openAIModels(ctx)
	case "gemini":
		provider = "Gemini"
		names, err = l.geminiModels(ctx)
	default:
		return fmt.Errorf("unknown explain provider: %s", provider)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(l.out, "Available %s Models:\n", provider)
	if len(names) == 0 {
		fmt.Fprintln(l.out, "  No chat models found")
		return nil
	}
	for _, name := range names {
		fmt.Fprintf(l.out, "  %s\n", name)
	}
	return nil
}

func (l *Lister) openAIModels(ctx context.Context) ([]string, error) {
	if l.openAIKey == "" {
		return nil, fmt.Errorf("OpenAI API key not found. Set OPENAI_API_KEY %s", keyHint)
	}

	models, err := openai.NewClient(l.openAIKey).ListModels(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list models: %w", err)
	}

	ids := make([]string, 0, len(models.Models))
	for _, model := range models.Models {
		ids = append(ids, model.ID)
	}
	return chatModels(ids), nil
}

func (l *Lister) geminiModels(ctx context.Context) ([]string, error) {
	if l.geminiKey == "" {
		return nil, fmt.Errorf("Gemini API key not found. Set GEMINI_API_KEY %s", keyHint)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  l.geminiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	var names []string
	for model, err := range client.Models.All(ctx) {
		if err != nil {
			return nil, fmt.Errorf("failed to list models: %w", err)
		}
		if slices.Contains(model.SupportedActions, "generateContent") {
			names = append(names, strings.TrimPrefix(model.Name, "models/"))
		}
	}
	sort.Strings(names)
	return names, nil
}

// chatModels keeps the model IDs that can hold a chat conversation
func chatModels(ids []string) []string {
	var chat []string
	for _, id := range ids {
		switch {
		case strings.Contains(id, "tts"), strings.Contains(id, "audio"),
			strings.Contains(id, "realtime"), strings.Contains(id, "transcribe"),
			strings.Contains(id, "image"):
			continue
		case strings.HasPrefix(id, "gpt"), strings.HasPrefix(id, "chatgpt"),
			strings.HasPrefix(id, "o1"), strings.HasPrefix(id, "o3"), strings.HasPrefix(id, "o4"):
			chat = append(chat, id)
		}
	}
	sort.Strings(chat)
	return chat
}
