package watch

import (
	"context"
	"strings"
	"sync"

	"github.com/custodia-labs/snipcheck/internal/core/domain"
)

// mockSyntaxService accepts .py files and rejects content containing "{{{".
type mockSyntaxService struct {
	mu      sync.Mutex
	checked []string
}

func (m *mockSyntaxService) Check(_ context.Context, unit domain.SourceUnit) domain.CheckResult {
	m.mu.Lock()
	m.checked = append(m.checked, unit.Filename)
	m.mu.Unlock()

	if strings.Contains(unit.Content, "{{{") {
		return domain.GrammarError("Syntax Error: invalid syntax (line 0)", domain.LineAt(0))
	}
	return domain.OK()
}

func (m *mockSyntaxService) CheckPaths(_ context.Context, _ []string) (*domain.Report, error) {
	return &domain.Report{}, nil
}

func (m *mockSyntaxService) Supports(filename string) bool {
	return domain.ExtensionOf(filename) == "py"
}

func (m *mockSyntaxService) SupportedExtensions() []string {
	return []string{"py"}
}
