package reporting

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultPathManager implements path management functionality
type DefaultPathManager struct{}

// NewDefaultPathManager creates a new path manager
func NewDefaultPathManager() *DefaultPathManager {
	return &DefaultPathManager{}
}

// GetDefaultOutputDir returns the default output directory for a symbol and
// analysis period
func (p *DefaultPathManager) GetDefaultOutputDir(symbol, period string) string {
	s := strings.ToUpper(strings.TrimSpace(symbol))
	pd := strings.ToLower(strings.TrimSpace(period))
	if s == "" {
		s = "ALL"
	}
	if pd == "" {
		pd = "full"
	}

	return filepath.Join("results", fmt.Sprintf("%s_%s", s, pd))
}

// EnsureDirectoryExists creates the parent directory if it doesn't exist
func (p *DefaultPathManager) EnsureDirectoryExists(path string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		return os.MkdirAll(dir, 0755)
	}
	return nil
}

// Package-level convenience function
func DefaultOutputDir(symbol, period string) string {
	manager := NewDefaultPathManager()
	return manager.GetDefaultOutputDir(symbol, period)
}
