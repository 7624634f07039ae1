package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	Port string `mapstructure:"port" validate:"required,numeric"`

	// Auth; empty disables bearer checks on /api routes.
	APIKey string `mapstructure:"api_key"`

	// Upload limits
	MaxUploadBytes    int64    `mapstructure:"max_upload_bytes" validate:"gt=0"`
	AllowedExtensions []string `mapstructure:"allowed_extensions" validate:"min=1,dive,startswith=."`

	// Session state
	SessionTTL time.Duration `mapstructure:"session_ttl" validate:"gt=0"`

	LogLevel string `mapstructure:"log_level" validate:"oneof=debug info warn error"`
}

var defaults = map[string]any{
	"port":               "5000",
	"api_key":            "",
	"max_upload_bytes":   16 << 20, // 16MB
	"allowed_extensions": []string{".docx"},
	"session_ttl":        time.Hour,
	"log_level":          "info",
}

// Load reads configuration from defaults, an optional config file, and
// environment variables (PORT, MAX_UPLOAD_BYTES, SESSION_TTL, ...), in
// increasing precedence.
func Load(path string) (Config, error) {
	v := viper.New()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	for i, ext := range cfg.AllowedExtensions {
		cfg.AllowedExtensions[i] = strings.ToLower(strings.TrimSpace(ext))
	}
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	return cfg, nil
}

func (c Config) Validate() error {
	err := validator.New(validator.WithRequiredStructEnabled()).Struct(c)
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		msgs := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			msgs = append(msgs, fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag()))
		}
		return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
	}
	return err
}

// Level returns the slog level named by LogLevel.
func (c Config) Level() slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return l
}

// IsAllowed reports whether uploads with the given extension are accepted.
func (c Config) IsAllowed(ext string) bool {
	ext = strings.ToLower(ext)
	for _, a := range c.AllowedExtensions {
		if a == ext {
			return true
		}
	}
	return false
}
