// Package config reads the server settings from the environment. A `.env` file in the
// working directory is loaded first when present.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

const (
	StoreDriverMongo    = "mongo"
	StoreDriverPostgres = "postgres"

	UploadBackendLocal = "local"
	UploadBackendMinio = "minio"

	// DevOrigin is always allowed by CORS.
	DevOrigin = "http://localhost:3000"
)

type Config struct {
	Port     string `koanf:"port" validate:"required,numeric"`
	GinMode  string `koanf:"gin_mode" validate:"oneof=debug release test"`
	LogLevel string `koanf:"log_level" validate:"oneof=trace debug info warn error"`

	// AllowedOrigins is a comma separated list added to DevOrigin.
	AllowedOrigins string `koanf:"allowed_origins"`

	StoreDriver   string `koanf:"store_driver" validate:"oneof=mongo postgres"`
	MongoURI      string `koanf:"mongodb_uri" validate:"required_if=StoreDriver mongo"`
	MongoDatabase string `koanf:"mongodb_database" validate:"required_if=StoreDriver mongo"`
	DatabaseDSN   string `koanf:"database_dsn" validate:"required_if=StoreDriver postgres"`

	UploadBackend  string `koanf:"upload_backend" validate:"oneof=local minio"`
	UploadDir      string `koanf:"upload_dir" validate:"required_if=UploadBackend local"`
	MinioEndpoint  string `koanf:"minio_endpoint" validate:"required_if=UploadBackend minio"`
	MinioAccessKey string `koanf:"minio_access_key" validate:"required_if=UploadBackend minio"`
	MinioSecretKey string `koanf:"minio_secret_key" validate:"required_if=UploadBackend minio"`
	MinioBucket    string `koanf:"minio_bucket" validate:"required_if=UploadBackend minio"`

	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"gt=0"`
}

func Default() *Config {
	return &Config{
		Port:            "4900",
		GinMode:         "debug",
		LogLevel:        "info",
		StoreDriver:     StoreDriverMongo,
		MongoURI:        "mongodb://localhost:27017",
		MongoDatabase:   "antopolis",
		UploadBackend:   UploadBackendLocal,
		UploadDir:       "./uploads",
		ShutdownTimeout: 10 * time.Second,
	}
}

// Load overlays environment variables on Default and validates the result. Variable
// names are the lower-cased koanf keys, upper-cased: PORT, MONGODB_URI, UPLOAD_DIR, ...
func Load() (*Config, error) {
	k := koanf.New(".")
	err := k.Load(env.Provider("", ".", func(s string) string {
		return strings.ToLower(s)
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Origins returns the CORS allow list: the development origin plus ALLOWED_ORIGINS.
func (c *Config) Origins() []string {
	origins := []string{DevOrigin}
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		o = strings.TrimSpace(o)
		if o != "" && o != DevOrigin {
			origins = append(origins, o)
		}
	}
	return origins
}
