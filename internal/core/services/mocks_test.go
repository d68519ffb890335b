package services

import (
	"context"
	"sync"

	"github.com/custodia-labs/snipcheck/internal/core/domain"
)

// mockChecker returns a canned result and records what it saw.
type mockChecker struct {
	name       string
	extensions []string
	result     domain.CheckResult
	panicWith  any

	mu       sync.Mutex
	contents []string
}

func newMockChecker(name string, result domain.CheckResult, extensions ...string) *mockChecker {
	return &mockChecker{name: name, extensions: extensions, result: result}
}

func (m *mockChecker) Name() string         { return m.name }
func (m *mockChecker) Extensions() []string { return m.extensions }

func (m *mockChecker) Check(_ context.Context, content string) domain.CheckResult {
	if m.panicWith != nil {
		panic(m.panicWith)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.contents = append(m.contents, content)
	return m.result
}

func (m *mockChecker) calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.contents)
}
