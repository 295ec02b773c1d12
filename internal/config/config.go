package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/Satoshi-Nakamoto68/HangKyGroup/internal/domain"

	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvTest        = "test"
)

// Config holds application configuration (env + Viper).
type Config struct {
	Env                    string
	Port                   string
	LogLevel               string
	RedisURL               string // optional; request stats are off when empty
	HealthAdminKey         string
	FrontendURLEndsWith    string // CORS origin suffix, e.g. .hangky.vn
	FormSubmitDelay        time.Duration
	AnimationFrameInterval time.Duration
	DefaultLocale          domain.Locale
}

func (c *Config) IsProduction() bool { return c.Env == EnvProduction }

// Load loads config from env and optional .env file.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("PORT", "8080")
	v.SetDefault("APP_ENV", EnvDevelopment)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("FORM_SUBMIT_DELAY", "600ms")
	v.SetDefault("ANIMATION_FRAME_INTERVAL", "16ms")
	v.SetDefault("DEFAULT_LOCALE", string(domain.LocaleEN))

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	env := strings.ToLower(strings.TrimSpace(v.GetString("APP_ENV")))
	switch env {
	case EnvDevelopment, EnvProduction, EnvTest:
	default:
		return nil, fmt.Errorf("config: APP_ENV must be development, production or test, got %q", env)
	}

	delay, err := duration(v, "FORM_SUBMIT_DELAY")
	if err != nil {
		return nil, err
	}
	frame, err := duration(v, "ANIMATION_FRAME_INTERVAL")
	if err != nil {
		return nil, err
	}
	if frame <= 0 {
		return nil, fmt.Errorf("config: ANIMATION_FRAME_INTERVAL must be positive")
	}

	return &Config{
		Env:                    env,
		Port:                   v.GetString("PORT"),
		LogLevel:               v.GetString("LOG_LEVEL"),
		RedisURL:               strings.TrimSpace(v.GetString("REDIS_URL")),
		HealthAdminKey:         v.GetString("HEALTH_ADMIN_KEY"),
		FrontendURLEndsWith:    v.GetString("FRONTEND_URL_ENDS_WITH"),
		FormSubmitDelay:        delay,
		AnimationFrameInterval: frame,
		DefaultLocale:          domain.ParseLocale(v.GetString("DEFAULT_LOCALE")),
	}, nil
}

func duration(v *viper.Viper, key string) (time.Duration, error) {
	d, err := time.ParseDuration(strings.TrimSpace(v.GetString(key)))
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", key, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("config: %s must not be negative", key)
	}
	return d, nil
}
