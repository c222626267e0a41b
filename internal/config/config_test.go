// filepath: internal/config/config_test.go
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSize(t *testing.T) {
	tests := []struct {
		input    string
		expected int64
		hasError bool
	}{
		{"10MB", 10 * 1024 * 1024, false},
		{"512KB", 512 * 1024, false},
		{"1GB", 1 * 1024 * 1024 * 1024, false},
		{"100", 100, false},        // Bytes
		{"1024B", 1024, false},     // Bytes with suffix
		{" 4 MB ", 4194304, false}, // Spaces
		{"10mb", 10485760, false},  // Lowercase
		{"invalid", 0, true},
		{"10XB", 0, true},
		{"-10MB", 0, true}, // Regex expects digits, not negatives
	}

	for _, tc := range tests {
		val, err := parseSize(tc.input)
		if tc.hasError {
			assert.Error(t, err, "Expected error for input: %s", tc.input)
		} else {
			assert.NoError(t, err, "Unexpected error for input: %s", tc.input)
			assert.Equal(t, tc.expected, val, "Mismatch for input: %s", tc.input)
		}
	}
}

func TestConfig_ParseAndValidate(t *testing.T) {
	t.Run("Valid Config", func(t *testing.T) {
		cfg := &Config{
			Upload: UploadConfig{
				MaxUploadSize: "8MB",
			},
		}
		err := cfg.ParseAndValidate()
		assert.NoError(t, err)
		assert.Equal(t, int64(8388608), cfg.MaxUploadSizeBytes)
	})

	t.Run("Default Fallback", func(t *testing.T) {
		cfg := &Config{}
		err := cfg.ParseAndValidate()
		assert.NoError(t, err)
		assert.Equal(t, "10MB", cfg.Upload.MaxUploadSize)
		assert.Equal(t, int64(10485760), cfg.MaxUploadSizeBytes)
	})

	t.Run("Invalid Size", func(t *testing.T) {
		cfg := &Config{
			Upload: UploadConfig{
				MaxUploadSize: "lots",
			},
		}
		err := cfg.ParseAndValidate()
		assert.Error(t, err)
	})
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[server]
host = "127.0.0.1"
port = 3001

[database]
path = "mio_couple.db"
uploads_root = "uploads"

[logging]
level = "debug"
audit_enabled = true

[upload]
max_upload_size = "10MB"
`
	err := os.WriteFile(path, []byte(content), 0644)
	assert.NoError(t, err)

	cfg, err := LoadConfig(path)
	assert.NoError(t, err)
	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 3001, cfg.Server.Port)
	assert.Equal(t, "mio_couple.db", cfg.Database.Path)
	assert.Equal(t, "uploads", cfg.Database.UploadsRoot)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.Logging.AuditEnabled)
	assert.Equal(t, "10MB", cfg.Upload.MaxUploadSize)
}
