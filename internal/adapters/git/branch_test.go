package git

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateBranchName_Valid(t *testing.T) {
	for _, name := range []string{"main", "master", "release/1.2", "feature_x", "v2.0-rc1"} {
		t.Run(name, func(t *testing.T) {
			assert.NoError(t, validateBranchName(name))
		})
	}
}

func TestValidateBranchName_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		contains string
	}{
		{"empty", "", "empty"},
		{"starts with dot", ".hidden", "start with '.'"},
		{"starts with slash", "/path", "start with '/'"},
		{"looks like an option", "--upload-pack=evil", "start with '-'"},
		{"ends with .lock", "branch.lock", ".lock"},
		{"ends with slash", "branch/", "end with '/'"},
		{"double dot", "feature..branch", "'..'"},
		{"double slash", "feature//branch", "'//'"},
		{"at brace", "branch@{0}", "'@{'"},
		{"control character", "feature\x00branch", "control characters"},
		{"space", "my branch", "invalid characters"},
		{"shell metacharacter", "main;rm", "invalid characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateBranchName(tt.input)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}
