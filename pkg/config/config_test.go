package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
server:
  addr: ":9000"
mongo:
  host: "mongo.internal"
  port: "27018"
  database: "reviews_db"
  collection: "product_reviews"
model:
  path: "/var/lib/reviewlens/model.gob"
training:
  max_features: 1000
  test_split: 0.3
  seed: 7
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.Server.Addr)
	assert.Equal(t, "mongo.internal", cfg.Mongo.Host)
	assert.Equal(t, "27018", cfg.Mongo.Port)
	assert.Equal(t, "reviews_db", cfg.Mongo.Database)
	assert.Equal(t, "product_reviews", cfg.Mongo.Collection)
	assert.Equal(t, "/var/lib/reviewlens/model.gob", cfg.Model.Path)
	assert.Equal(t, 1000, cfg.Training.MaxFeatures)
	assert.Equal(t, 0.3, cfg.Training.TestSplit)
	assert.Equal(t, int64(7), cfg.Training.Seed)
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, "server:\n  addr: \"\"\n"))
	require.NoError(t, err)

	assert.Equal(t, ":8100", cfg.Server.Addr)
	assert.Equal(t, "localhost", cfg.Mongo.Host)
	assert.Equal(t, "27017", cfg.Mongo.Port)
	assert.Equal(t, "ecommerce_db", cfg.Mongo.Database)
	assert.Equal(t, "reviews", cfg.Mongo.Collection)
	assert.Equal(t, "models/sentiment_model.gob", cfg.Model.Path)
	assert.Equal(t, 5000, cfg.Training.MaxFeatures)
	assert.Equal(t, 0.2, cfg.Training.TestSplit)
	assert.Equal(t, int64(42), cfg.Training.Seed)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
