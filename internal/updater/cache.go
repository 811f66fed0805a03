package updater

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const (
	cacheFileName = "version-check.json"

	// CacheMaxAge bounds how long a check result stays fresh.
	CacheMaxAge = 24 * time.Hour
)

// CheckResult is the persisted outcome of one release check.
type CheckResult struct {
	LatestVersion   string    `json:"latest_version"`
	CurrentVersion  string    `json:"current_version"`
	CheckedAt       time.Time `json:"checked_at"`
	UpdateAvailable bool      `json:"update_available"`
}

// LoadCache reads the cached check result from dir. A missing cache file is
// not an error; it returns nil, nil.
func LoadCache(dir string) (*CheckResult, error) {
	data, err := os.ReadFile(filepath.Join(dir, cacheFileName))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading version cache: %w", err)
	}

	var result CheckResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("parsing version cache: %w", err)
	}
	return &result, nil
}

// SaveCache writes the check result into dir.
func SaveCache(dir string, result *CheckResult) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating cache directory: %w", err)
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling version cache: %w", err)
	}

	if err := os.WriteFile(filepath.Join(dir, cacheFileName), data, 0644); err != nil {
		return fmt.Errorf("writing version cache: %w", err)
	}
	return nil
}

// Stale reports whether the cached result is missing or older than CacheMaxAge.
func Stale(result *CheckResult) bool {
	return result == nil || time.Since(result.CheckedAt) > CacheMaxAge
}
