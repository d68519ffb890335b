package mcp

import (
	"context"

	"github.com/custodia-labs/snipcheck/internal/core/domain"
)

// mockSyntaxService is a mock implementation of driving.SyntaxService.
type mockSyntaxService struct {
	result     domain.CheckResult
	report     *domain.Report
	err        error
	extensions []string
	lastUnit   domain.SourceUnit
}

func (m *mockSyntaxService) Check(_ context.Context, unit domain.SourceUnit) domain.CheckResult {
	m.lastUnit = unit
	return m.result
}

func (m *mockSyntaxService) CheckPaths(_ context.Context, _ []string) (*domain.Report, error) {
	return m.report, m.err
}

func (m *mockSyntaxService) Supports(filename string) bool {
	ext := domain.ExtensionOf(filename)
	for _, e := range m.extensions {
		if e == ext {
			return true
		}
	}
	return false
}

func (m *mockSyntaxService) SupportedExtensions() []string {
	return m.extensions
}

// mockSettingsService is a mock implementation of driving.SettingsService.
type mockSettingsService struct {
	settings *domain.Settings
	err      error
}

func (m *mockSettingsService) Get() (*domain.Settings, error) {
	return m.settings, m.err
}

func (m *mockSettingsService) Set(_, _ string) error {
	return m.err
}

func (m *mockSettingsService) Keys() []string {
	return nil
}
