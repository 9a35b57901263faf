package testutil

import (
	"context"
	"fmt"
	"sync"
)

// TranslateCall records one call to MockTranslator
type TranslateCall struct {
	Content  string
	Language string
}

// MockTranslator mocks the translation client. By default it wraps the
// content in a marker naming the language.
type MockTranslator struct {
	// Errors fails calls whose content matches a key
	Errors map[string]error
	// LanguageErrors fails calls for a target language name
	LanguageErrors map[string]error
	// Empty returns an empty translation without error for matching content
	Empty map[string]bool
	// Replies returns a fixed reply for matching content
	Replies map[string]string

	mu    sync.Mutex
	calls []TranslateCall
}

// Translate mocks translating a document
func (m *MockTranslator) Translate(ctx context.Context, content, language string) (string, error) {
	m.mu.Lock()
	m.calls = append(m.calls, TranslateCall{Content: content, Language: language})
	m.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err, ok := m.Errors[content]; ok {
		return "", err
	}
	if err, ok := m.LanguageErrors[language]; ok {
		return "", err
	}
	if m.Empty[content] {
		return "", nil
	}
	if reply, ok := m.Replies[content]; ok {
		return reply, nil
	}
	return MockTranslation(content, language), nil
}

// Name returns the mock backend name
func (m *MockTranslator) Name() string {
	return "mock"
}

// Calls returns a copy of the recorded calls
func (m *MockTranslator) Calls() []TranslateCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]TranslateCall(nil), m.calls...)
}

// CallCount returns the number of recorded calls
func (m *MockTranslator) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

// MockTranslation is the text MockTranslator returns for content and language
func MockTranslation(content, language string) string {
	return fmt.Sprintf("<!-- %s -->%s", language, content)
}
