package reporting

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/ducminhle1904/coinchange-ga/pkg/config"
)

// DefaultPathManager implements path management functionality
type DefaultPathManager struct{}

// NewDefaultPathManager creates a new path manager
func NewDefaultPathManager() *DefaultPathManager {
	return &DefaultPathManager{}
}

// GetDefaultOutputDir returns results/<variant>
func (p *DefaultPathManager) GetDefaultOutputDir(variant string) string {
	v := strings.ToLower(strings.TrimSpace(variant))
	if v == "" {
		v = "unknown"
	}
	return filepath.Join(config.DefaultResultsDir, v)
}

// EnsureDirectoryExists creates the parent directory of path if it doesn't exist
func (p *DefaultPathManager) EnsureDirectoryExists(path string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		return os.MkdirAll(dir, 0755)
	}
	return nil
}

// Package-level convenience function
func DefaultOutputDir(variant string) string {
	manager := NewDefaultPathManager()
	return manager.GetDefaultOutputDir(variant)
}
