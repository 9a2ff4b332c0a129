package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server     ServerConfig
	MongoDB    MongoDBConfig
	Redis      RedisConfig
	JWT        JWTConfig
	PrideAPI   PrideAPIConfig
	Moderation ModerationConfig
	LogLevel   string
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port            string
	AllowedOrigins  []string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	GinMode         string
}

// MongoDBConfig holds MongoDB-specific configuration
type MongoDBConfig struct {
	URI      string
	Database string
}

// RedisConfig configures the wizard session store. An empty URL keeps
// sessions in process memory.
type RedisConfig struct {
	URL       string
	WizardTTL time.Duration
}

// JWTConfig holds JWT-specific configuration
type JWTConfig struct {
	Secret    string
	ExpiresIn time.Duration
	Issuer    string
}

// PrideAPIConfig points at the remote REST API that owns all persistent
// community data.
type PrideAPIConfig struct {
	BaseURL        string
	Token          string
	OrganizationID string
	Timeout        time.Duration
	MockAPI        bool
}

type ModerationConfig struct {
	ExtraBannedWords []string
}

// Load reads .env (if present), an optional config.yaml from path or
// ./config, and environment variables such as PRIDEAPI_BASEURL.
func Load(path string) (*Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(path)
	v.AddConfigPath("./config")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		// It's okay if config file is not found, we'll use environment variables
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects configurations the server cannot start with.
func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return errors.New("config: JWT.Secret (JWT_SECRET) is required")
	}
	if c.PrideAPI.BaseURL == "" && !c.PrideAPI.MockAPI {
		return errors.New("config: PrideAPI.BaseURL (PRIDEAPI_BASEURL) is required unless PrideAPI.MockAPI is set")
	}
	if c.Redis.WizardTTL <= 0 {
		return errors.New("config: Redis.WizardTTL must be positive")
	}
	return nil
}

// setDefaults sets default values for configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("Server.Port", "4000")
	v.SetDefault("Server.AllowedOrigins", []string{"http://localhost:3000"})
	v.SetDefault("Server.ReadTimeout", 10*time.Second)
	v.SetDefault("Server.WriteTimeout", 15*time.Second)
	v.SetDefault("Server.ShutdownTimeout", 5*time.Second)
	v.SetDefault("Server.GinMode", "release")
	v.SetDefault("MongoDB.URI", "mongodb://localhost:27017")
	v.SetDefault("MongoDB.Database", "pride-center")
	v.SetDefault("Redis.URL", "")
	v.SetDefault("Redis.WizardTTL", 2*time.Hour)
	v.SetDefault("JWT.Secret", "")
	v.SetDefault("JWT.ExpiresIn", 24*time.Hour)
	v.SetDefault("JWT.Issuer", "pride-backend")
	v.SetDefault("PrideAPI.BaseURL", "")
	v.SetDefault("PrideAPI.Token", "")
	v.SetDefault("PrideAPI.OrganizationID", "")
	v.SetDefault("PrideAPI.Timeout", 10*time.Second)
	v.SetDefault("PrideAPI.MockAPI", false)
	v.SetDefault("Moderation.ExtraBannedWords", []string{})
	v.SetDefault("LogLevel", "info")
}
