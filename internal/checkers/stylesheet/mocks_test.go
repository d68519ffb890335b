package stylesheet

import (
	"context"
)

// mockCompiler records its input and returns a canned error.
type mockCompiler struct {
	name    string
	err     error
	sources []string
}

func (m *mockCompiler) Name() string {
	if m.name == "" {
		return "mock"
	}
	return m.name
}

func (m *mockCompiler) Compile(_ context.Context, source string) error {
	m.sources = append(m.sources, source)
	return m.err
}
