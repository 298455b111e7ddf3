package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasDatabaseWithDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.True(t, cfg.HasDatabase())
}

func TestEmptyDBHostDisablesTheDataLayer(t *testing.T) {
	t.Setenv("DB_HOST", "")
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Empty(t, cfg.Database.Host, "an explicitly empty host must not fall back to localhost")
	assert.False(t, cfg.HasDatabase())
}

func TestUploadPolicyDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, int64(10*1024*1024), cfg.Storage.MaxImageSize)
	assert.Equal(t, 200, cfg.Storage.MaxBatchFiles)
	assert.Equal(t, "images", cfg.Storage.ImagesBucket)
	assert.Equal(t, "pdfs", cfg.Storage.PDFsBucket)
}
