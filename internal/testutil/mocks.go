package testutil

import (
	"context"
	"fmt"
	"strings"
)

// MockProvider mocks a language model backend for the explain package
type MockProvider struct {
	Replies map[string]string
	Err     error
	Calls   []string
}

// Name returns the provider name
func (m *MockProvider) Name() string { return "mock" }

// Complete records the prompt and returns the reply registered for the
// first word the prompt quotes
func (m *MockProvider) Complete(ctx context.Context, system, prompt string) (string, error) {
	m.Calls = append(m.Calls, prompt)

	if m.Err != nil {
		return "", m.Err
	}

	for key, reply := range m.Replies {
		if strings.Contains(prompt, "'"+key+"'") {
			return reply, nil
		}
	}

	return fmt.Sprintf("mock explanation (%d)", len(m.Calls)), nil
}
