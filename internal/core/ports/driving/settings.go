package driving

import "github.com/custodia-labs/snipcheck/internal/core/domain"

// SettingsService manages snipcheck settings.
type SettingsService interface {
	// Get resolves current settings, applying defaults for unset keys.
	Get() (*domain.Settings, error)

	// Set validates and stores a single setting by key.
	Set(key, value string) error

	// Keys returns the recognised setting keys.
	Keys() []string
}
