package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"
)

// Settings represents the structure of $CODEBRIDGE_HOME/settings.json.
// Every field is optional; unset fields fall back to defaults.
type Settings struct {
	Branches          StringArray `json:"branches,omitempty"`
	CloneTimeout      *Duration   `json:"clone_timeout,omitempty"`
	DefaultHost       string      `json:"default_host,omitempty"`
	DefaultWorkingDir string      `json:"default_working_dir,omitempty"`
	GitCheckTimeout   *Duration   `json:"git_check_timeout,omitempty"`
	IdleExpiry        *Duration   `json:"idle_expiry,omitempty"`
	IndexTimeout      *Duration   `json:"index_timeout,omitempty"`
	ListenAddr        string      `json:"listen_addr,omitempty"`
	MaxLogFiles       *int        `json:"max_log_files,omitempty"`
	MaxParallelGitOps *int        `json:"max_parallel_git_ops,omitempty"`
	PullTimeout       *Duration   `json:"pull_timeout,omitempty"`
	RepoBaseDir       string      `json:"repo_base_dir,omitempty"`
	Retention         *Duration   `json:"retention,omitempty"`
	StoreBackend      string      `json:"store_backend,omitempty"`
	StorePath         string      `json:"store_path,omitempty"`
}

// StringArray supports both JSON arrays and comma-separated strings
type StringArray []string

// UnmarshalJSON implements custom unmarshaling for StringArray
func (sa *StringArray) UnmarshalJSON(data []byte) error {
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*sa = arr
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*sa = parseCommaSeparated(str)
	return nil
}

// Duration supports "90s"-style strings or a plain number of seconds in JSON
type Duration time.Duration

// UnmarshalJSON implements custom unmarshaling for Duration
func (d *Duration) UnmarshalJSON(data []byte) error {
	var seconds float64
	if err := json.Unmarshal(data, &seconds); err == nil {
		*d = Duration(time.Duration(seconds * float64(time.Second)))
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(str)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", str, err)
	}
	*d = Duration(parsed)
	return nil
}

// parseCommaSeparated splits comma-separated string and trims whitespace
func parseCommaSeparated(s string) []string {
	if s == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// LoadSettings loads settings from path.
// Returns empty Settings if the file doesn't exist (not an error).
func LoadSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	settings.DefaultWorkingDir = ExpandPath(settings.DefaultWorkingDir)
	settings.RepoBaseDir = ExpandPath(settings.RepoBaseDir)
	settings.StorePath = ExpandPath(settings.StorePath)

	return &settings, nil
}
