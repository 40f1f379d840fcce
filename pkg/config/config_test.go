package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), DefaultFile)
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
listen: 127.0.0.1:9000
data:
  dealers: /srv/dealers.json
contact:
  webhookURL: https://hooks.example.com/contact
  webhookTimeout: 3s
export:
  workers: 8
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.Listen)
	assert.Equal(t, "/srv/dealers.json", cfg.Data.Dealers)
	assert.Equal(t, "", cfg.Data.Products)
	assert.Equal(t, "https://hooks.example.com/contact", cfg.Contact.WebhookURL)
	assert.Equal(t, 3*time.Second, cfg.Contact.WebhookTimeout)
	assert.Equal(t, int64(10<<20), cfg.Contact.MaxUploadBytes)
	assert.Equal(t, 8, cfg.Export.Workers)
	assert.Equal(t, "public", cfg.Export.Dir)
	assert.Equal(t, "https://stara.com", cfg.BaseURL)
}

func TestLoadInvalid(t *testing.T) {
	testCases := map[string]string{
		"bad yaml":     "listen: [",
		"no workers":   "export:\n  workers: 0\n",
		"empty listen": "listen: \"\"\n",
	}

	for name, body := range testCases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, body))
			assert.Error(t, err)
		})
	}
}
