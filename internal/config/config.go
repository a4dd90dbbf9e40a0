package config

import (
	"log"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	JWT       JWTConfig
	Storage   StorageConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
}

type AppConfig struct {
	Name     string
	Env      string
	Port     string
	LogLevel string
}

type JWTConfig struct {
	Secret             string
	ExpiryHours        time.Duration
	RefreshExpiryHours time.Duration
}

// StorageConfig names the three flat-file stores. The defaults match the
// documents the shop has always kept, so an existing data directory is
// picked up as-is.
type StorageConfig struct {
	Path     string
	DataFile string
	ItemFile string
	UserFile string
	// ResetOnCorruption controls the load policy: when true, a missing or
	// malformed store file yields empty collections instead of an error.
	ResetOnCorruption bool
}

type CORSConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
}

type RateLimitConfig struct {
	Requests int
	Duration int
}

func Load() *Config {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables: %v", err)
	}

	// Set defaults
	viper.SetDefault("APP_NAME", "jaintriad-api")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_LOG_LEVEL", "info")
	viper.SetDefault("JWT_SECRET", "change-this-secret-in-production")
	viper.SetDefault("JWT_EXPIRY_HOURS", 24)
	viper.SetDefault("JWT_REFRESH_EXPIRY_HOURS", 168)
	viper.SetDefault("STORAGE_PATH", ".")
	viper.SetDefault("STORAGE_DATA_FILE", "khataa_data.txt")
	viper.SetDefault("STORAGE_ITEM_FILE", "items_data.txt")
	viper.SetDefault("STORAGE_USER_FILE", "khataa_users.txt")
	viper.SetDefault("STORAGE_RESET_ON_CORRUPTION", true)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("CORS_ALLOWED_HEADERS", []string{})
	viper.SetDefault("RATE_LIMIT_REQUESTS", 100)
	viper.SetDefault("RATE_LIMIT_DURATION", 60)

	return &Config{
		App: AppConfig{
			Name:     viper.GetString("APP_NAME"),
			Env:      viper.GetString("APP_ENV"),
			Port:     viper.GetString("APP_PORT"),
			LogLevel: viper.GetString("APP_LOG_LEVEL"),
		},
		JWT: JWTConfig{
			Secret:             viper.GetString("JWT_SECRET"),
			ExpiryHours:        time.Duration(viper.GetInt("JWT_EXPIRY_HOURS")) * time.Hour,
			RefreshExpiryHours: time.Duration(viper.GetInt("JWT_REFRESH_EXPIRY_HOURS")) * time.Hour,
		},
		Storage: StorageConfig{
			Path:              viper.GetString("STORAGE_PATH"),
			DataFile:          viper.GetString("STORAGE_DATA_FILE"),
			ItemFile:          viper.GetString("STORAGE_ITEM_FILE"),
			UserFile:          viper.GetString("STORAGE_USER_FILE"),
			ResetOnCorruption: viper.GetBool("STORAGE_RESET_ON_CORRUPTION"),
		},
		CORS: CORSConfig{
			AllowedOrigins: viper.GetStringSlice("CORS_ALLOWED_ORIGINS"),
			AllowedMethods: viper.GetStringSlice("CORS_ALLOWED_METHODS"),
			AllowedHeaders: viper.GetStringSlice("CORS_ALLOWED_HEADERS"),
		},
		RateLimit: RateLimitConfig{
			Requests: viper.GetInt("RATE_LIMIT_REQUESTS"),
			Duration: viper.GetInt("RATE_LIMIT_DURATION"),
		},
	}
}

// DataPath returns the full path of the customer/bill document.
func (c *StorageConfig) DataPath() string {
	return filepath.Join(c.Path, c.DataFile)
}

// ItemPath returns the full path of the item document.
func (c *StorageConfig) ItemPath() string {
	return filepath.Join(c.Path, c.ItemFile)
}

// UserPath returns the full path of the credential file.
func (c *StorageConfig) UserPath() string {
	return filepath.Join(c.Path, c.UserFile)
}
