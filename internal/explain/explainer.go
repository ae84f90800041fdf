package explain

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sony/gobreaker"
)

const systemPrompt = "You are a Russian language expert helping language learners understand pronunciation. " +
	"You are given a Russian word, its stressed syllable and its phonetic transcription in Cyrillic notation, " +
	"where ' marks a soft consonant, й' marks the glide before an iotated vowel and : marks a long consonant. " +
	"Explain the transcription; never change the stress you were given."

// ExplanationFile is the name of the file ExplainAndSave writes.
const ExplanationFile = "explanation.txt"

// Explainer handles fetching pronunciation explanations
type Explainer struct {
	provider Provider
	breaker  *gobreaker.CircuitBreaker
	timeout  time.Duration
}

// NewExplainer creates a new explainer on top of provider
func NewExplainer(provider Provider) *Explainer {
	settings := gobreaker.Settings{
		Name:    provider.Name(),
		Timeout: time.Minute,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			slog.Warn("explain backend state changed", "provider", name, "from", from.String(), "to", to.String())
		},
	}

	return &Explainer{
		provider: provider,
		breaker:  gobreaker.NewCircuitBreaker(settings),
		timeout:  30 * time.Second,
	}
}

// Explain returns the explanation for word, whose stress-th vowel is
// stressed and which transcribes to transcription.
func (e *Explainer) Explain(ctx context.Context, word string, stress int, transcription string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	result, err := e.breaker.Execute(func() (interface{}, error) {
		return e.provider.Complete(ctx, systemPrompt, buildPrompt(word, stress, transcription))
	})
	if err != nil {
		return "", fmt.Errorf("%s: %w", e.provider.Name(), err)
	}

	text := strings.TrimSpace(result.(string))
	if text == "" {
		return "", fmt.Errorf("no response from %s", e.provider.Name())
	}
	return text, nil
}

// ExplainAndSave fetches the explanation, saves it to the word directory
// and returns it
func (e *Explainer) ExplainAndSave(ctx context.Context, word string, stress int, transcription, wordDir string) (string, error) {
	text, err := e.Explain(ctx, word, stress, transcription)
	if err != nil {
		return "", err
	}

	path := filepath.Join(wordDir, ExplanationFile)
	if err := os.WriteFile(path, []byte(text+"\n"), 0644); err != nil {
		return "", fmt.Errorf("failed to write explanation file: %w", err)
	}
	return text, nil
}

func buildPrompt(word string, stress int, transcription string) string {
	return fmt.Sprintf(`For the Russian word '%s' (stress on syllable %d), transcribed as [%s]:
1. Explain each sound of the transcription in order
2. For every sound, say how it is pronounced, comparing it to English sounds where possible
3. Point out which letters are pronounced differently from how they are written and why
   (vowel reduction, devoicing, assimilation, soft consonants, long consonants)

Keep the answer short and use a bulleted list.`, word, stress, transcription)
}
