package services

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/custodia-labs/snipcheck/internal/core/domain"
	"github.com/custodia-labs/snipcheck/internal/core/ports/driven"
	"github.com/custodia-labs/snipcheck/internal/core/ports/driving"
	"github.com/custodia-labs/snipcheck/internal/logger"
)

// Ensure SyntaxService implements the interface.
var _ driving.SyntaxService = (*SyntaxService)(nil)

// skipDirs are never descended into when walking a directory.
var skipDirs = map[string]bool{
	".git": true, ".idea": true, ".vscode": true, ".snipcheck": true,
	"node_modules": true, "venv": true, "env": true, "__pycache__": true,
}

// SyntaxService validates snippets and files.
type SyntaxService struct {
	registry    driven.CheckerRegistry
	concurrency int
}

// NewSyntaxService creates a syntax service. concurrency bounds how many
// files CheckPaths validates at once; values below one mean NumCPU.
func NewSyntaxService(registry driven.CheckerRegistry, concurrency int) *SyntaxService {
	if concurrency < 1 {
		concurrency = runtime.NumCPU()
	}
	return &SyntaxService{
		registry:    registry,
		concurrency: concurrency,
	}
}

// Check validates a single snippet.
func (s *SyntaxService) Check(ctx context.Context, unit domain.SourceUnit) domain.CheckResult {
	return s.registry.Check(ctx, unit)
}

// Supports returns true if a checker is registered for filename.
func (s *SyntaxService) Supports(filename string) bool {
	_, ok := s.registry.Lookup(domain.ExtensionOf(filename))
	return ok
}

// SupportedExtensions returns the registered extensions.
func (s *SyntaxService) SupportedExtensions() []string {
	return s.registry.SupportedExtensions()
}

// CheckPaths validates files and directory trees. Files named explicitly are
// always checked; files found by walking a directory are checked only when a
// checker handles their extension.
func (s *SyntaxService) CheckPaths(ctx context.Context, paths []string) (*domain.Report, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("no paths given: %w", domain.ErrInvalidInput)
	}

	report := &domain.Report{
		ID:        uuid.New().String(),
		StartedAt: time.Now(),
	}

	files, skipped, err := s.collect(paths)
	if err != nil {
		return nil, err
	}
	report.Skipped = skipped
	logger.Debug("check %s: %d files, %d skipped", report.ID, len(files), skipped)

	results := make([]domain.FileResult, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, path := range files {
		g.Go(func() error {
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("reading %s: %w", path, err)
			}
			results[i] = domain.FileResult{
				Path:   path,
				Result: s.registry.Check(gctx, domain.NewSourceUnit(string(data), path)),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(results, func(i, j int) bool { return results[i].Path < results[j].Path })
	for i := range results {
		if !results[i].Result.OK() {
			report.InvalidCount++
		}
	}
	report.Results = results
	report.Duration = time.Since(report.StartedAt)

	logger.Info("check %s: %d checked, %d invalid in %s", report.ID, report.Checked(), report.InvalidCount, report.Duration)
	return report, nil
}

// collect expands paths into the files to check.
func (s *SyntaxService) collect(paths []string) ([]string, int, error) {
	var files []string
	skipped := 0
	seen := make(map[string]bool)

	add := func(path string) {
		if !seen[path] {
			seen[path] = true
			files = append(files, path)
		}
	}

	for _, root := range paths {
		info, err := os.Stat(root)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, 0, fmt.Errorf("%s: %w", root, domain.ErrNotFound)
			}
			return nil, 0, err
		}
		if !info.IsDir() {
			add(root)
			continue
		}

		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if path != root && (skipDirs[d.Name()] || strings.HasPrefix(d.Name(), ".")) {
					return filepath.SkipDir
				}
				return nil
			}
			if !d.Type().IsRegular() {
				return nil
			}
			if s.Supports(path) {
				add(path)
			} else {
				skipped++
			}
			return nil
		})
		if err != nil {
			return nil, 0, fmt.Errorf("walking %s: %w", root, err)
		}
	}

	return files, skipped, nil
}
