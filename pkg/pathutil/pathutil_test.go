package pathutil

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateDataPath(t *testing.T) {
	tests := []struct {
		name        string
		path        string
		dataDir     string
		errContains string
		wantErr     bool
	}{
		{
			name:    "valid path without data dir",
			path:    "assessments/test.json",
			wantErr: false,
		},
		{
			name:        "path with directory traversal",
			path:        "../../../etc/passwd",
			wantErr:     true,
			errContains: "directory traversal",
		},
		{
			name:    "path within data dir",
			path:    "data/assessments/test.json",
			dataDir: "data",
			wantErr: false,
		},
		{
			name:        "path outside data dir",
			path:        "/etc/passwd",
			dataDir:     "data",
			wantErr:     true,
			errContains: "not within data directory",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateDataPath(tt.path, tt.dataDir)
			if tt.wantErr {
				require.Error(t, err)
				if tt.errContains != "" {
					assert.Contains(t, err.Error(), tt.errContains)
				}
			} else {
				require.NoError(t, err)
				assert.True(t, filepath.IsAbs(got))
			}
		})
	}
}

func TestValidateConfigPath(t *testing.T) {
	tests := []struct {
		name        string
		path        string
		errContains string
		wantErr     bool
	}{
		{
			name:    "valid yaml config",
			path:    "configs/helsegrad.yaml",
			wantErr: false,
		},
		{
			name:    "valid yml config",
			path:    "helsegrad.yml",
			wantErr: false,
		},
		{
			name:        "wrong extension",
			path:        "config.json",
			wantErr:     true,
			errContains: ".yaml or .yml",
		},
		{
			name:        "directory traversal",
			path:        "../secrets.yaml",
			wantErr:     true,
			errContains: "directory traversal",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateConfigPath(tt.path)
			if tt.wantErr {
				require.Error(t, err)
				if tt.errContains != "" {
					assert.Contains(t, err.Error(), tt.errContains)
				}
			} else {
				require.NoError(t, err)
				assert.True(t, filepath.IsAbs(got))
			}
		})
	}
}

func TestValidateOutputPath(t *testing.T) {
	dir := t.TempDir()

	got, err := ValidateOutputPath(filepath.Join(dir, "report.html"))
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(got))

	_, err = ValidateOutputPath(filepath.Join(dir, "missing", "report.html"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parent directory does not exist")
}

func TestJoinAndValidate(t *testing.T) {
	dir := t.TempDir()

	got, err := JoinAndValidate(dir, "assessments", "test.json")
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(got))

	_, err = JoinAndValidate(dir, "..", "outside.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "directory traversal")
}
