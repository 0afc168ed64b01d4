package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "LOG_LEVEL", "TELEGRAM_API_URL", "GRAPH_API_URL", "GRAPH_API_VERSION", "CORS_ALLOW_ORIGIN", "FORM_CATALOG_PATH", "TELEGRAM_BOT_TOKEN", "TELEGRAM_CHAT_ID"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "https://api.telegram.org", cfg.TelegramAPIURL)
	assert.Equal(t, "https://graph.facebook.com", cfg.GraphAPIURL)
	assert.Equal(t, "v23.0", cfg.GraphAPIVersion)
	assert.Equal(t, "*", cfg.CORSAllowOrigin)
	assert.Empty(t, cfg.Forms.OldForms)
	assert.Error(t, cfg.Validate())
}

func TestLoadFromEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), "forms.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"old_forms":{"1":"English"},"new_forms":{"2":"IELTS"}}`), 0o600))

	t.Setenv("TELEGRAM_BOT_TOKEN", "42:abc")
	t.Setenv("TELEGRAM_CHAT_ID", "-100")
	t.Setenv("TELEGRAM_NEW_CHAT_ID", "-200")
	t.Setenv("FORM_CATALOG_PATH", path)
	t.Setenv("CORS_ALLOW_ORIGIN", "https://example.uz")

	cfg, err := Load()

	require.NoError(t, err)
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, "-200", cfg.TelegramNewChatID)
	assert.Equal(t, "https://example.uz", cfg.CORSAllowOrigin)
	assert.Equal(t, map[string]string{"1": "English"}, cfg.Forms.OldForms)
	assert.Equal(t, map[string]string{"2": "IELTS"}, cfg.Forms.NewForms)
}

func TestLoadFormCatalogErrors(t *testing.T) {
	_, err := LoadFormCatalog(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"old_forms":[]}`), 0o600))
	_, err = LoadFormCatalog(path)
	assert.Error(t, err)
}

func TestLoadFormCatalogPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "forms.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"old_forms":{"1":"English"}}`), 0o600))

	catalog, err := LoadFormCatalog(path)

	require.NoError(t, err)
	assert.NotNil(t, catalog.NewForms)
	assert.Len(t, catalog.OldForms, 1)
}

func TestValidateNamesMissingKeys(t *testing.T) {
	err := (&Config{}).Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "TELEGRAM_BOT_TOKEN")
	assert.Contains(t, err.Error(), "TELEGRAM_CHAT_ID")
}
