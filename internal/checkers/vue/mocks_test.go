package vue

import (
	"context"

	"github.com/custodia-labs/snipcheck/internal/core/domain"
)

// mockStyleChecker records the style bodies it receives.
type mockStyleChecker struct {
	result domain.CheckResult
	bodies []string
}

func (m *mockStyleChecker) Name() string         { return "mock-style" }
func (m *mockStyleChecker) Extensions() []string { return []string{"css"} }

func (m *mockStyleChecker) Check(_ context.Context, content string) domain.CheckResult {
	m.bodies = append(m.bodies, content)
	return m.result
}
