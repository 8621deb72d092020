package utils

import (
	"errors"
	"io/fs"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App        AppConfig
	Catalog    CatalogConfig
	Collection CollectionConfig
	Database   DatabaseConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

// CatalogConfig points the catalog client at a remote collection endpoint.
type CatalogConfig struct {
	APIURL        string
	Token         string
	Timeout       time.Duration
	DefaultFilter int
}

// CollectionConfig configures the self-hosted collection server.
type CollectionConfig struct {
	Port      string
	Name      string
	Store     string
	Token     string
	RateLimit int
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
)

// LoadConfig reads .env from the working directory when present, then the environment.
func LoadConfig() (*Config, error) {
	return LoadConfigFrom(".env")
}

func LoadConfigFrom(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")

	// Set defaults
	v.SetDefault("APP_NAME", "movie-catalog")
	v.SetDefault("PORT", "8080")
	v.SetDefault("DEBUG", false)
	v.SetDefault("LOG_PATH", "logs/")
	v.SetDefault("CATALOG_API_URL", "http://localhost:8081/movies")
	v.SetDefault("CATALOG_API_TOKEN", "")
	v.SetDefault("CATALOG_TIMEOUT_SECONDS", 0)
	v.SetDefault("CATALOG_DEFAULT_FILTER", 16)
	v.SetDefault("COLLECTION_PORT", "8081")
	v.SetDefault("COLLECTION_NAME", "movies")
	v.SetDefault("COLLECTION_STORE", StoreMemory)
	v.SetDefault("COLLECTION_TOKEN", "")
	v.SetDefault("COLLECTION_RATE_LIMIT", 0)
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_NAME", "")
	v.SetDefault("DB_USER", "")
	v.SetDefault("DB_PASS", "")
	v.SetDefault("DB_MAX_CONNS", 10)

	if err := v.ReadInConfig(); err != nil {
		var pathErr *fs.PathError
		if !errors.As(err, &pathErr) {
			return nil, err
		}
	}

	v.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    v.GetString("APP_NAME"),
			Port:    v.GetString("PORT"),
			Debug:   v.GetBool("DEBUG"),
			LogPath: v.GetString("LOG_PATH"),
		},
		Catalog: CatalogConfig{
			APIURL:        v.GetString("CATALOG_API_URL"),
			Token:         v.GetString("CATALOG_API_TOKEN"),
			Timeout:       time.Duration(v.GetInt("CATALOG_TIMEOUT_SECONDS")) * time.Second,
			DefaultFilter: v.GetInt("CATALOG_DEFAULT_FILTER"),
		},
		Collection: CollectionConfig{
			Port:      v.GetString("COLLECTION_PORT"),
			Name:      v.GetString("COLLECTION_NAME"),
			Store:     v.GetString("COLLECTION_STORE"),
			Token:     v.GetString("COLLECTION_TOKEN"),
			RateLimit: v.GetInt("COLLECTION_RATE_LIMIT"),
		},
		Database: DatabaseConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			Name:     v.GetString("DB_NAME"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASS"),
			MaxConns: v.GetInt32("DB_MAX_CONNS"),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate rejects settings no component can run with.
func (c *Config) Validate() error {
	if c.Catalog.APIURL == "" {
		return errors.New("config: CATALOG_API_URL is required")
	}
	if c.Catalog.DefaultFilter < 0 {
		return errors.New("config: CATALOG_DEFAULT_FILTER must not be negative")
	}
	if c.Catalog.Timeout < 0 {
		return errors.New("config: CATALOG_TIMEOUT_SECONDS must not be negative")
	}
	switch c.Collection.Store {
	case StoreMemory, StorePostgres:
	default:
		return errors.New("config: COLLECTION_STORE must be memory or postgres")
	}
	if c.Collection.RateLimit < 0 {
		return errors.New("config: COLLECTION_RATE_LIMIT must not be negative")
	}
	return nil
}
