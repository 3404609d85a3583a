package ai

import "context"

// MockChat is a canned ChatClient for local runs and tests; it never calls
// an external model.
type MockChat struct {
	Reply string
	Err   error

	// Captured from the last Complete call.
	LastSystemPrompt string
	LastUserPrompt   string
}

func (m *MockChat) Complete(_ context.Context, systemPrompt, userPrompt string) (string, error) {
	m.LastSystemPrompt = systemPrompt
	m.LastUserPrompt = userPrompt
	if m.Err != nil {
		return "", m.Err
	}
	return m.Reply, nil
}
