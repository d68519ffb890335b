package services

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/custodia-labs/snipcheck/internal/core/domain"
	"github.com/custodia-labs/snipcheck/internal/core/ports/driven"
	"github.com/custodia-labs/snipcheck/internal/core/ports/driving"
	"github.com/custodia-labs/snipcheck/internal/logger"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keySassBinary       = "checkers.sass.binary"
	keySassTimeout      = "checkers.sass.timeout_seconds"
	keyHTMLIgnore       = "checkers.html.ignore_categories"
	keyCompositeTags    = "checkers.composite.balanced_tags"
	keyCheckConcurrency = "check.concurrency"
	keyFrontendFeedback = "pipeline.frontend_feedback"
)

// settingKind describes how a setting value is parsed.
type settingKind int

const (
	kindString settingKind = iota
	kindPositiveInt
	kindBool
	kindList
)

var settingKinds = map[string]settingKind{
	keySassBinary:       kindString,
	keySassTimeout:      kindPositiveInt,
	keyHTMLIgnore:       kindList,
	keyCompositeTags:    kindList,
	keyCheckConcurrency: kindPositiveInt,
	keyFrontendFeedback: kindBool,
}

// SettingsService resolves settings from the config store.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current settings, applying defaults for unset keys.
func (s *SettingsService) Get() (*domain.Settings, error) {
	defaults := domain.DefaultSettings()

	return &domain.Settings{
		Sass: domain.SassSettings{
			Binary:         s.getString(keySassBinary, defaults.Sass.Binary),
			TimeoutSeconds: s.getPositiveInt(keySassTimeout, defaults.Sass.TimeoutSeconds),
		},
		HTML: domain.HTMLSettings{
			IgnoreCategories: s.getCategories(),
		},
		Composite: domain.CompositeSettings{
			BalancedTags: s.getList(keyCompositeTags, defaults.Composite.BalancedTags),
		},
		Check: domain.CheckSettings{
			Concurrency: s.getPositiveInt(keyCheckConcurrency, defaults.Check.Concurrency),
		},
		Pipeline: domain.PipelineSettings{
			FrontendFeedback: s.configStore.GetBool(keyFrontendFeedback),
		},
	}, nil
}

// Set parses value according to key and stores it.
func (s *SettingsService) Set(key, value string) error {
	kind, ok := settingKinds[key]
	if !ok {
		return fmt.Errorf("%w: unknown key %q", domain.ErrInvalidSetting, key)
	}

	var parsed any
	switch kind {
	case kindString:
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("%w: %s must not be empty", domain.ErrInvalidSetting, key)
		}
		parsed = value

	case kindPositiveInt:
		n, err := strconv.Atoi(value)
		if err != nil || n < 1 {
			return fmt.Errorf("%w: %s must be a positive integer, got %q", domain.ErrInvalidSetting, key, value)
		}
		parsed = n

	case kindBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: %s must be true or false, got %q", domain.ErrInvalidSetting, key, value)
		}
		parsed = b

	case kindList:
		items := splitList(value)
		if key == keyHTMLIgnore {
			for _, item := range items {
				if !domain.DiagnosticCategory(item).IsValid() {
					return fmt.Errorf("%w: unknown diagnostic category %q", domain.ErrInvalidSetting, item)
				}
			}
		}
		parsed = items
	}

	if err := s.configStore.Set(key, parsed); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// Keys returns the recognised setting keys.
func (s *SettingsService) Keys() []string {
	keys := make([]string, 0, len(settingKinds))
	for k := range settingKinds {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (s *SettingsService) getString(key, fallback string) string {
	if v := s.configStore.GetString(key); v != "" {
		return v
	}
	return fallback
}

func (s *SettingsService) getPositiveInt(key string, fallback int) int {
	if v := s.configStore.GetInt(key); v > 0 {
		return v
	}
	return fallback
}

func (s *SettingsService) getList(key string, fallback []string) []string {
	if _, ok := s.configStore.Get(key); !ok {
		return fallback
	}
	return s.configStore.GetStringSlice(key)
}

// getCategories drops unrecognised categories with a warning.
func (s *SettingsService) getCategories() []domain.DiagnosticCategory {
	var categories []domain.DiagnosticCategory
	for _, raw := range s.configStore.GetStringSlice(keyHTMLIgnore) {
		c := domain.DiagnosticCategory(raw)
		if !c.IsValid() {
			logger.Warn("settings: ignoring unknown diagnostic category %q in %s", raw, keyHTMLIgnore)
			continue
		}
		categories = append(categories, c)
	}
	return categories
}

// splitList parses a comma separated value, dropping empty items.
func splitList(value string) []string {
	items := []string{}
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
