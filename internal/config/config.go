package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config represents the full application configuration surface.
type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	Auth       AuthConfig
	Cloudinary CloudinaryConfig
	CORS       CORSConfig
}

// ServerConfig holds HTTP server related options.
type ServerConfig struct {
	Port string
}

// DatabaseConfig holds Postgres connection settings.
type DatabaseConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	Database string
}

// AuthConfig holds token signing secrets.
type AuthConfig struct {
	AccessTokenSecret  string
	RefreshTokenSecret string
}

// CloudinaryConfig contains the unsigned-upload credentials for the image CDN.
// Only the cloud name and preset are needed; no API secret is involved.
type CloudinaryConfig struct {
	CloudName    string
	UploadPreset string
	Folder       string
	BaseURL      string
}

// CORSConfig holds the allowed browser origins.
type CORSConfig struct {
	AllowOrigins []string
}

// Load reads environment variables (optionally from the provided file) and
// materializes a Config instance.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
			}
		}
	} else {
		// Missing .env files are acceptable when configuration comes from
		// the environment directly.
		_ = godotenv.Load()
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getenvWithDefault("PORT", "8080"),
		},
		Database: DatabaseConfig{
			Host:     os.Getenv("DB_HOST"),
			Port:     getenvWithDefault("DB_PORT", "5432"),
			Username: os.Getenv("DB_USERNAME"),
			Password: os.Getenv("DB_PASSWORD"),
			Database: os.Getenv("DB_DATABASE"),
		},
		Auth: AuthConfig{
			AccessTokenSecret:  os.Getenv("ACCESS_TOKEN_SECRET"),
			RefreshTokenSecret: os.Getenv("REFRESH_TOKEN_SECRET"),
		},
		Cloudinary: CloudinaryConfig{
			CloudName:    os.Getenv("CLOUDINARY_CLOUD_NAME"),
			UploadPreset: os.Getenv("CLOUDINARY_UPLOAD_PRESET"),
			Folder:       getenvWithDefault("CLOUDINARY_FOLDER", "constructax"),
			BaseURL:      getenvWithDefault("CLOUDINARY_BASE_URL", "https://api.cloudinary.com"),
		},
		CORS: CORSConfig{
			AllowOrigins: []string{getenvWithDefault("CORS_ALLOW_ORIGIN", "http://localhost:5173")},
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures that required configuration fields are populated.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	switch {
	case c.Database.Host == "":
		return errors.New("DB_HOST must be provided")
	case c.Database.Username == "":
		return errors.New("DB_USERNAME must be provided")
	case c.Database.Password == "":
		return errors.New("DB_PASSWORD must be provided")
	case c.Database.Database == "":
		return errors.New("DB_DATABASE must be provided")
	}

	if c.Auth.AccessTokenSecret == "" {
		return errors.New("ACCESS_TOKEN_SECRET must be provided")
	}
	if c.Auth.RefreshTokenSecret == "" {
		return errors.New("REFRESH_TOKEN_SECRET must be provided")
	}

	if c.Cloudinary.CloudName == "" {
		return errors.New("CLOUDINARY_CLOUD_NAME must be provided")
	}
	if c.Cloudinary.UploadPreset == "" {
		return errors.New("CLOUDINARY_UPLOAD_PRESET must be provided")
	}

	return nil
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
