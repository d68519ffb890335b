package services

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/custodia-labs/snipcheck/internal/core/domain"
	"github.com/custodia-labs/snipcheck/internal/core/ports/driven"
	"github.com/custodia-labs/snipcheck/internal/logger"
)

// Ensure CheckerRegistry implements the interface.
var _ driven.CheckerRegistry = (*CheckerRegistry)(nil)

// CheckerRegistry dispatches snippets to checkers by filename extension.
// Extensions without a checker pass through as valid.
type CheckerRegistry struct {
	mu       sync.RWMutex
	checkers map[string]driven.Checker
}

// NewCheckerRegistry creates a registry holding the given checkers.
func NewCheckerRegistry(checkers ...driven.Checker) *CheckerRegistry {
	r := &CheckerRegistry{
		checkers: make(map[string]driven.Checker),
	}
	for _, c := range checkers {
		r.Register(c)
	}
	return r
}

// Register adds a checker for each of its extensions.
func (r *CheckerRegistry) Register(checker driven.Checker) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, ext := range checker.Extensions() {
		if prev, ok := r.checkers[ext]; ok {
			logger.Debug("registry: %s replaces %s for .%s", checker.Name(), prev.Name(), ext)
		}
		r.checkers[ext] = checker
	}
}

// Lookup returns the checker for an extension.
func (r *CheckerRegistry) Lookup(ext string) (driven.Checker, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.checkers[ext]
	return c, ok
}

// SupportedExtensions returns all extensions with a checker, sorted.
func (r *CheckerRegistry) SupportedExtensions() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	exts := make([]string, 0, len(r.checkers))
	for ext := range r.checkers {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// Check validates unit with the checker registered for its extension.
// A checker that panics produces a tool error instead of crashing the caller.
func (r *CheckerRegistry) Check(ctx context.Context, unit domain.SourceUnit) (result domain.CheckResult) {
	ext := unit.Extension()
	checker, ok := r.Lookup(ext)
	if !ok {
		logger.Debug("registry: no checker for %q, accepting %s", ext, unit.Filename)
		return domain.OK()
	}

	defer func() {
		if p := recover(); p != nil {
			result = domain.ToolError(fmt.Sprintf("Error: %s checker failed: %v", checker.Name(), p))
		}
	}()

	logger.Debug("registry: checking %s with %s", unit.Filename, checker.Name())
	return checker.Check(ctx, unit.Content)
}
