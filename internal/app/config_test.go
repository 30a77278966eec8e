package app

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "pretty", cfg.LogFormat)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "Data Sheet", cfg.SheetName)
	assert.Equal(t, int64(50*1024*1024), cfg.MaxWorkbookBytes)
	assert.Equal(t, 4, cfg.Workers)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("FINSHEET_LOG_FORMAT", "json")
	t.Setenv("FINSHEET_WORKERS", "8")
	t.Setenv("FINSHEET_SHEET_NAME", "Financials")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 8, cfg.Workers)
	assert.Equal(t, "Financials", cfg.SheetName)
}

func TestLoadConfigFromEnvFile(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("FINSHEET_LOG_LEVEL=debug\nFINSHEET_MAX_WORKBOOK_BYTES=1024\n"), 0644))
	// godotenv sets variables directly; restore them after the test.
	t.Setenv("FINSHEET_LOG_LEVEL", "")
	os.Unsetenv("FINSHEET_LOG_LEVEL")
	t.Setenv("FINSHEET_MAX_WORKBOOK_BYTES", "")
	os.Unsetenv("FINSHEET_MAX_WORKBOOK_BYTES")

	cfg, err := LoadConfig(envFile)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, int64(1024), cfg.MaxWorkbookBytes)
}

func TestLoadConfigInvalid(t *testing.T) {
	tests := map[string]string{
		"FINSHEET_LOG_FORMAT": "xml",
		"FINSHEET_LOG_LEVEL":  "trace",
		"FINSHEET_WORKERS":    "0",
		"FINSHEET_SHEET_NAME": "this sheet name is far too long for excel",
	}

	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)
			_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
			assert.Error(t, err)
		})
	}

	t.Run("not a number", func(t *testing.T) {
		t.Setenv("FINSHEET_MAX_WORKBOOK_BYTES", "lots")
		_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
		assert.Error(t, err)
	})
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&Config{LogFormat: "json", LogLevel: "warn"}, &buf)
	logger.Info("hidden")
	logger.Warn("shown", "file", "acme.xlsx")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"msg":"shown"`)
	assert.Contains(t, out, `"file":"acme.xlsx"`)

	buf.Reset()
	logger = NewLogger(nil, &buf)
	logger.Debug("hidden")
	logger.Info("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=shown")
}
