package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "4900", cfg.Port)
	assert.Equal(t, StoreDriverMongo, cfg.StoreDriver)
	assert.Equal(t, "antopolis", cfg.MongoDatabase)
	assert.Equal(t, UploadBackendLocal, cfg.UploadBackend)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
}

func TestLoadCustomValues(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("MONGODB_URI", "mongodb://db:27017")
	t.Setenv("UPLOAD_DIR", "/tmp/uploads")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8081", cfg.Port)
	assert.Equal(t, "mongodb://db:27017", cfg.MongoURI)
	assert.Equal(t, "/tmp/uploads", cfg.UploadDir)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadPostgresRequiresDSN(t *testing.T) {
	t.Setenv("STORE_DRIVER", "postgres")

	_, err := Load()
	assert.Error(t, err)

	t.Setenv("DATABASE_DSN", "host=localhost user=postgres dbname=antopolis sslmode=disable")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, StoreDriverPostgres, cfg.StoreDriver)
}

func TestLoadMinioRequiresCredentials(t *testing.T) {
	t.Setenv("UPLOAD_BACKEND", "minio")
	t.Setenv("MINIO_ENDPOINT", "localhost:9000")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRejectsUnknownDriver(t *testing.T) {
	t.Setenv("STORE_DRIVER", "sqlite")

	_, err := Load()
	assert.Error(t, err)
}

func TestOrigins(t *testing.T) {
	cfg := Default()
	assert.Equal(t, []string{DevOrigin}, cfg.Origins())

	cfg.AllowedOrigins = "https://menu.example.com, http://localhost:3000,,"
	assert.Equal(t, []string{DevOrigin, "https://menu.example.com"}, cfg.Origins())
}
