package config

import (
	"os"
	"path/filepath"
)

// GetHome returns CODEBRIDGE_HOME or the ~/.codebridge default
func GetHome() string {
	home := os.Getenv("CODEBRIDGE_HOME")
	if home == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".codebridge"
		}
		return filepath.Join(homeDir, ".codebridge")
	}
	return ExpandPath(home)
}

// GetSettingsPath returns <home>/settings.json
func GetSettingsPath(home string) string {
	return filepath.Join(home, "settings.json")
}

// GetDBPath returns <home>/state.db
func GetDBPath(home string) string {
	return filepath.Join(home, "state.db")
}

// GetSessionsFilePath returns <home>/sessions.json
func GetSessionsFilePath(home string) string {
	return filepath.Join(home, "sessions.json")
}

// GetRepoBaseDir returns <home>/repos
func GetRepoBaseDir(home string) string {
	return filepath.Join(home, "repos")
}

// GetWorkspaceDir returns <home>/workspace
func GetWorkspaceDir(home string) string {
	return filepath.Join(home, "workspace")
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}
