package platform

import (
	"fmt"
	"os"
	"path/filepath"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// Application directory name under the user config root
const (
	AppDirName = "catalog-browser"
)

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// GetAppDataDir returns the per-user directory where the app keeps its
// catalog database, creating it when missing.
func GetAppDataDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}

	dataDir := filepath.Join(configDir, AppDirName)
	if err := CreateDirectoryIfNotExists(dataDir); err != nil {
		return "", fmt.Errorf("failed to create app data directory: %w", err)
	}
	return dataDir, nil
}

// DefaultDatabasePath returns the default location of the catalog database.
func DefaultDatabasePath() (string, error) {
	dataDir, err := GetAppDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, "catalog.db"), nil
}
