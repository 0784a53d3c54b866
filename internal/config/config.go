package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverMongo    = "mongo"
)

type Config struct {
	Port          string
	StorageDriver string

	DatabaseURL    string
	MigrationsPath string

	MongoURI      string
	MongoDatabase string

	CORSOrigins   []string
	DefaultLocale string
	Timezone      string

	DiscordToken     string
	DiscordChannelID string
}

// Load reads configuration from environment variables and validates it.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// .env is optional when variables come from the environment (Docker, CI, etc.).
	}

	cfg := &Config{
		Port:             os.Getenv("PORT"),
		StorageDriver:    os.Getenv("STORAGE_DRIVER"),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		MigrationsPath:   os.Getenv("MIGRATIONS_PATH"),
		MongoURI:         os.Getenv("MONGODB_URI"),
		MongoDatabase:    os.Getenv("MONGODB_DATABASE"),
		DefaultLocale:    os.Getenv("DEFAULT_LOCALE"),
		Timezone:         os.Getenv("TIMEZONE"),
		DiscordToken:     os.Getenv("DISCORD_TOKEN"),
		DiscordChannelID: os.Getenv("DISCORD_ANNOUNCE_CHANNEL_ID"),
	}

	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.CORSOrigins = append(cfg.CORSOrigins, o)
			}
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate applies defaults and checks every rule on the loaded configuration.
func (c *Config) validate() error {
	if strings.TrimSpace(c.Port) == "" {
		c.Port = "8080"
	}

	if strings.TrimSpace(c.StorageDriver) == "" {
		c.StorageDriver = DriverPostgres
	}
	if c.StorageDriver != DriverPostgres && c.StorageDriver != DriverMongo {
		return fmt.Errorf("config: STORAGE_DRIVER must be %q or %q (got %q)",
			DriverPostgres, DriverMongo, c.StorageDriver)
	}

	switch c.StorageDriver {
	case DriverPostgres:
		if strings.TrimSpace(c.DatabaseURL) == "" {
			// Sensible local default when DATABASE_URL is not provided.
			c.DatabaseURL = "postgres://localhost:5432/dojocrm?sslmode=disable"
		}
		parsed, err := url.Parse(c.DatabaseURL)
		if err != nil {
			return fmt.Errorf("config: invalid DATABASE_URL (%q): %w", c.DatabaseURL, err)
		}
		if parsed.Scheme == "" || parsed.Host == "" {
			return fmt.Errorf("config: invalid DATABASE_URL (%q): missing scheme or host", c.DatabaseURL)
		}
		if strings.TrimSpace(c.MigrationsPath) == "" {
			c.MigrationsPath = "migrations"
		}
	case DriverMongo:
		if strings.TrimSpace(c.MongoURI) == "" {
			c.MongoURI = "mongodb://localhost:27017"
		}
		if strings.TrimSpace(c.MongoDatabase) == "" {
			c.MongoDatabase = "dojocrm"
		}
	}

	if strings.TrimSpace(c.DefaultLocale) == "" {
		c.DefaultLocale = "en"
	}

	if c.DiscordChannelID != "" {
		for _, r := range c.DiscordChannelID {
			if r < '0' || r > '9' {
				return fmt.Errorf("config: DISCORD_ANNOUNCE_CHANNEL_ID must be a Discord channel ID (digits only)")
			}
		}
	}
	if c.DiscordToken != "" && c.DiscordChannelID == "" {
		return fmt.Errorf("config: DISCORD_ANNOUNCE_CHANNEL_ID is required when DISCORD_TOKEN is set")
	}

	return nil
}
