package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"golang.org/x/text/language"

	"github.com/jfgoncalves/morning-weather/internal/application"
)

type Config struct {
	App          AppConfig
	Wunderground WundergroundConfig
	Email        EmailConfig
	Assets       AssetsConfig
	Schedule     ScheduleConfig
}

type AppConfig struct {
	Name     string `mapstructure:"name"`
	Env      string `mapstructure:"env"`
	LogLevel string `mapstructure:"log_level"`
}

type WundergroundConfig struct {
	Key       string        `mapstructure:"key"`
	PWS       string        `mapstructure:"pws"`
	Lang      string        `mapstructure:"lang"`
	BaseURL   string        `mapstructure:"base_url"`
	MatchMode string        `mapstructure:"match_mode"`
	Timeout   time.Duration `mapstructure:"timeout"`
}

type EmailConfig struct {
	From  string `mapstructure:"from"`
	To    string `mapstructure:"to"`
	SMTP  string `mapstructure:"smtp"`
	Port  int    `mapstructure:"port"`
	Login string `mapstructure:"login"`
	Pwd   string `mapstructure:"pwd"`
}

type AssetsConfig struct {
	Dir string `mapstructure:"dir"`
}

type ScheduleConfig struct {
	Cron    string        `mapstructure:"cron"`
	Timeout time.Duration `mapstructure:"timeout"`
}

var envOverrides = map[string]string{
	"WUNDERGROUND_KEY":      "wunderground.key",
	"WUNDERGROUND_PWS":      "wunderground.pws",
	"WUNDERGROUND_LANG":     "wunderground.lang",
	"WUNDERGROUND_BASE_URL": "wunderground.base_url",
	"EMAIL_FROM":            "email.from",
	"EMAIL_TO":              "email.to",
	"EMAIL_SMTP":            "email.smtp",
	"EMAIL_PORT":            "email.port",
	"EMAIL_LOGIN":           "email.login",
	"EMAIL_PWD":             "email.pwd",
	"ASSETS_DIR":            "assets.dir",
	"LOG_LEVEL":             "app.log_level",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "morning-weather")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.log_level", "info")
	v.SetDefault("wunderground.base_url", "https://api.wunderground.com/api/")
	v.SetDefault("wunderground.match_mode", string(application.MatchByHour))
	v.SetDefault("email.port", 587)
	v.SetDefault("assets.dir", "./assets")
	v.SetDefault("schedule.cron", "0 0 5 * * *")
	v.SetDefault("schedule.timeout", "2m")
}

// Load reads the YAML configuration. With an empty path the usual search
// locations are tried and a missing file is tolerated, leaving env vars and
// defaults. A .env file in the working directory is applied first and never
// overrides variables already set.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("/etc/morning-weather/")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	for env, key := range envOverrides {
		if value := strings.TrimSpace(os.Getenv(env)); value != "" {
			v.Set(key, value)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if cfg.Email.Login == "" {
		cfg.Email.Login = cfg.Email.From
	}
	cfg.Wunderground.Lang = strings.ToUpper(cfg.Wunderground.Lang)

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

func validateConfig(cfg *Config) error {
	required := []struct {
		name  string
		value string
	}{
		{"wunderground.key", cfg.Wunderground.Key},
		{"wunderground.pws", cfg.Wunderground.PWS},
		{"wunderground.lang", cfg.Wunderground.Lang},
		{"email.from", cfg.Email.From},
		{"email.to", cfg.Email.To},
		{"email.smtp", cfg.Email.SMTP},
		{"email.pwd", cfg.Email.Pwd},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return fmt.Errorf("%s must not be empty", r.name)
		}
	}

	if _, err := language.ParseBase(cfg.Wunderground.Lang); err != nil {
		return fmt.Errorf("wunderground.lang %q is not a language code: %w", cfg.Wunderground.Lang, err)
	}

	if _, err := application.ParseMatchMode(cfg.Wunderground.MatchMode); err != nil {
		return fmt.Errorf("wunderground.match_mode: %w", err)
	}

	if cfg.Wunderground.Timeout < 0 {
		return fmt.Errorf("wunderground.timeout must not be negative")
	}

	if cfg.Email.Port < 1 || cfg.Email.Port > 65535 {
		return fmt.Errorf("email.port %d out of range", cfg.Email.Port)
	}

	return nil
}
