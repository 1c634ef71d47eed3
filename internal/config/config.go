package config

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Log       LogConfig
	CORS      CORSConfig
	Upload    UploadConfig
	Reference ReferenceConfig
	Narrative NarrativeConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// UploadConfig holds limits for document uploads.
type UploadConfig struct {
	MaxFileSizeMB int64 `mapstructure:"max_file_size_mb"`
}

// ReferenceConfig holds the reference-table override settings. An empty
// path means the compiled-in defaults are used.
type ReferenceConfig struct {
	Path string `mapstructure:"path"`
}

// NarrativeProviderConfig holds settings for a single summary provider.
type NarrativeProviderConfig struct {
	Provider     string `mapstructure:"provider"`
	APIKey       string `mapstructure:"api_key"`
	DefaultModel string `mapstructure:"default_model"`
	TimeoutSecs  int    `mapstructure:"timeout_secs"`
}

// NarrativeConfig holds summary-generation settings with primary/secondary
// provider fallback.
type NarrativeConfig struct {
	Primary   NarrativeProviderConfig `mapstructure:"primary"`
	Secondary NarrativeProviderConfig `mapstructure:"secondary"`
}

// SecondaryConfig returns the secondary provider config, or nil if not configured.
func (n *NarrativeConfig) SecondaryConfig() *NarrativeProviderConfig {
	if n.Secondary.Provider != "" {
		return &n.Secondary
	}
	return nil
}

// Load reads configuration from environment variables with the MEDREPORTZ_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("MEDREPORTZ")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Upload defaults
	v.SetDefault("upload.max_file_size_mb", 10)

	// Reference table defaults (empty path = compiled-in table)
	v.SetDefault("reference.path", "")

	// Narrative defaults
	v.SetDefault("narrative.primary.provider", "noop")
	v.SetDefault("narrative.primary.api_key", "")
	v.SetDefault("narrative.primary.default_model", "")
	v.SetDefault("narrative.primary.timeout_secs", 60)
	v.SetDefault("narrative.secondary.provider", "")
	v.SetDefault("narrative.secondary.api_key", "")
	v.SetDefault("narrative.secondary.default_model", "")
	v.SetDefault("narrative.secondary.timeout_secs", 60)

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":                       "MEDREPORTZ_SERVER_PORT",
		"server.read_timeout":               "MEDREPORTZ_SERVER_READ_TIMEOUT",
		"server.write_timeout":              "MEDREPORTZ_SERVER_WRITE_TIMEOUT",
		"server.environment":                "MEDREPORTZ_SERVER_ENVIRONMENT",
		"log.level":                         "MEDREPORTZ_LOG_LEVEL",
		"log.format":                        "MEDREPORTZ_LOG_FORMAT",
		"cors.allowed_origins":              "MEDREPORTZ_CORS_ALLOWED_ORIGINS",
		"upload.max_file_size_mb":           "MEDREPORTZ_UPLOAD_MAX_FILE_SIZE_MB",
		"reference.path":                    "MEDREPORTZ_REFERENCE_PATH",
		"narrative.primary.provider":        "MEDREPORTZ_NARRATIVE_PRIMARY_PROVIDER",
		"narrative.primary.api_key":         "MEDREPORTZ_NARRATIVE_PRIMARY_API_KEY",
		"narrative.primary.default_model":   "MEDREPORTZ_NARRATIVE_PRIMARY_DEFAULT_MODEL",
		"narrative.primary.timeout_secs":    "MEDREPORTZ_NARRATIVE_PRIMARY_TIMEOUT_SECS",
		"narrative.secondary.provider":      "MEDREPORTZ_NARRATIVE_SECONDARY_PROVIDER",
		"narrative.secondary.api_key":       "MEDREPORTZ_NARRATIVE_SECONDARY_API_KEY",
		"narrative.secondary.default_model": "MEDREPORTZ_NARRATIVE_SECONDARY_DEFAULT_MODEL",
		"narrative.secondary.timeout_secs":  "MEDREPORTZ_NARRATIVE_SECONDARY_TIMEOUT_SECS",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if MEDREPORTZ_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("MEDREPORTZ_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{AllowedOrigins: corsOrigins}

	cfg.Upload = UploadConfig{
		MaxFileSizeMB: v.GetInt64("upload.max_file_size_mb"),
	}
	cfg.Reference = ReferenceConfig{
		Path: v.GetString("reference.path"),
	}
	cfg.Narrative = NarrativeConfig{
		Primary: NarrativeProviderConfig{
			Provider:     v.GetString("narrative.primary.provider"),
			APIKey:       v.GetString("narrative.primary.api_key"),
			DefaultModel: v.GetString("narrative.primary.default_model"),
			TimeoutSecs:  v.GetInt("narrative.primary.timeout_secs"),
		},
		Secondary: NarrativeProviderConfig{
			Provider:     v.GetString("narrative.secondary.provider"),
			APIKey:       v.GetString("narrative.secondary.api_key"),
			DefaultModel: v.GetString("narrative.secondary.default_model"),
			TimeoutSecs:  v.GetInt("narrative.secondary.timeout_secs"),
		},
	}

	return cfg, nil
}
