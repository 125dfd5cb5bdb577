package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const configContent = `
app:
  name: "morning-weather-test"
  env: "test"
  log_level: "debug"

wunderground:
  key: "test-key"
  pws: "IPARIS42"
  lang: "fr"
  timeout: "15s"

email:
  from: "weather@example.com"
  to: "me@example.com"
  smtp: "smtp.example.com"
  port: 587
  pwd: "secret"

assets:
  dir: "/srv/morning-weather/assets"

schedule:
  cron: "0 15 5 * * *"
  timeout: "90s"
`

// isolate clears every variable Load consults and moves into a fresh
// working directory so no stray config.yaml or .env is picked up.
func isolate(t *testing.T) string {
	t.Helper()
	for env := range envOverrides {
		t.Setenv(env, "")
	}

	dir := t.TempDir()
	originalDir, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(originalDir) })

	return dir
}

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("load from search path", func(t *testing.T) {
		dir := isolate(t)
		writeConfig(t, dir, configContent)

		cfg, err := Load("")
		require.NoError(t, err)

		assert.Equal(t, "morning-weather-test", cfg.App.Name)
		assert.Equal(t, "test", cfg.App.Env)
		assert.Equal(t, "debug", cfg.App.LogLevel)

		assert.Equal(t, "test-key", cfg.Wunderground.Key)
		assert.Equal(t, "IPARIS42", cfg.Wunderground.PWS)
		assert.Equal(t, "FR", cfg.Wunderground.Lang)
		assert.Equal(t, "https://api.wunderground.com/api/", cfg.Wunderground.BaseURL)
		assert.Equal(t, "hour", cfg.Wunderground.MatchMode)
		assert.Equal(t, 15*time.Second, cfg.Wunderground.Timeout)

		assert.Equal(t, "weather@example.com", cfg.Email.From)
		assert.Equal(t, "me@example.com", cfg.Email.To)
		assert.Equal(t, "smtp.example.com", cfg.Email.SMTP)
		assert.Equal(t, 587, cfg.Email.Port)
		assert.Equal(t, "weather@example.com", cfg.Email.Login)
		assert.Equal(t, "secret", cfg.Email.Pwd)

		assert.Equal(t, "/srv/morning-weather/assets", cfg.Assets.Dir)
		assert.Equal(t, "0 15 5 * * *", cfg.Schedule.Cron)
		assert.Equal(t, 90*time.Second, cfg.Schedule.Timeout)
	})

	t.Run("explicit path", func(t *testing.T) {
		isolate(t)
		path := writeConfig(t, t.TempDir(), configContent)

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "IPARIS42", cfg.Wunderground.PWS)
	})

	t.Run("explicit path must exist", func(t *testing.T) {
		dir := isolate(t)

		_, err := Load(filepath.Join(dir, "missing.yaml"))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read config file")
	})

	t.Run("override with environment variables", func(t *testing.T) {
		dir := isolate(t)
		writeConfig(t, dir, configContent)

		t.Setenv("WUNDERGROUND_KEY", "env-key")
		t.Setenv("WUNDERGROUND_PWS", "KCASANFR58")
		t.Setenv("WUNDERGROUND_LANG", "en")
		t.Setenv("WUNDERGROUND_BASE_URL", "http://localhost:9999/api/")
		t.Setenv("EMAIL_PORT", "2525")
		t.Setenv("EMAIL_LOGIN", "relay-user")
		t.Setenv("EMAIL_PWD", "env-secret")
		t.Setenv("ASSETS_DIR", "./icons")

		cfg, err := Load("")
		require.NoError(t, err)

		assert.Equal(t, "env-key", cfg.Wunderground.Key)
		assert.Equal(t, "KCASANFR58", cfg.Wunderground.PWS)
		assert.Equal(t, "EN", cfg.Wunderground.Lang)
		assert.Equal(t, "http://localhost:9999/api/", cfg.Wunderground.BaseURL)
		assert.Equal(t, 2525, cfg.Email.Port)
		assert.Equal(t, "relay-user", cfg.Email.Login)
		assert.Equal(t, "env-secret", cfg.Email.Pwd)
		assert.Equal(t, "./icons", cfg.Assets.Dir)
	})

	t.Run("env only without config file", func(t *testing.T) {
		isolate(t)

		t.Setenv("WUNDERGROUND_KEY", "k")
		t.Setenv("WUNDERGROUND_PWS", "p")
		t.Setenv("WUNDERGROUND_LANG", "FR")
		t.Setenv("EMAIL_FROM", "a@example.com")
		t.Setenv("EMAIL_TO", "b@example.com")
		t.Setenv("EMAIL_SMTP", "smtp.example.com")
		t.Setenv("EMAIL_PWD", "pwd")

		cfg, err := Load("")
		require.NoError(t, err)

		assert.Equal(t, "morning-weather", cfg.App.Name)
		assert.Equal(t, 587, cfg.Email.Port)
		assert.Equal(t, "./assets", cfg.Assets.Dir)
		assert.Equal(t, "0 0 5 * * *", cfg.Schedule.Cron)
		assert.Equal(t, 2*time.Minute, cfg.Schedule.Timeout)
	})

	t.Run("dotenv file", func(t *testing.T) {
		dir := isolate(t)
		writeConfig(t, dir, configContent)
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("EMAIL_PWD=from-dotenv\n"), 0o600))
		// godotenv never overrides variables that exist, even empty ones
		os.Unsetenv("EMAIL_PWD")
		t.Cleanup(func() { os.Unsetenv("EMAIL_PWD") })

		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, "from-dotenv", cfg.Email.Pwd)
	})

	t.Run("missing required field", func(t *testing.T) {
		dir := isolate(t)
		writeConfig(t, dir, `
wunderground:
  key: "k"
  lang: "FR"
email:
  from: "a@example.com"
  to: "b@example.com"
  smtp: "smtp.example.com"
  pwd: "pwd"
`)

		_, err := Load("")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "wunderground.pws must not be empty")
	})
}

func validConfig() *Config {
	return &Config{
		Wunderground: WundergroundConfig{Key: "k", PWS: "p", Lang: "FR", MatchMode: "hour"},
		Email:        EmailConfig{From: "a@example.com", To: "b@example.com", SMTP: "smtp", Port: 587, Pwd: "pwd"},
		Schedule:     ScheduleConfig{Cron: "0 0 5 * * *"},
	}
}

func TestValidateConfig(t *testing.T) {
	assert.NoError(t, validateConfig(validConfig()))

	testCases := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"missing key", func(c *Config) { c.Wunderground.Key = "" }, "wunderground.key must not be empty"},
		{"missing pws", func(c *Config) { c.Wunderground.PWS = " " }, "wunderground.pws must not be empty"},
		{"missing lang", func(c *Config) { c.Wunderground.Lang = "" }, "wunderground.lang must not be empty"},
		{"invalid lang", func(c *Config) { c.Wunderground.Lang = "FRENCH" }, "is not a language code"},
		{"missing from", func(c *Config) { c.Email.From = "" }, "email.from must not be empty"},
		{"missing to", func(c *Config) { c.Email.To = "" }, "email.to must not be empty"},
		{"missing smtp", func(c *Config) { c.Email.SMTP = "" }, "email.smtp must not be empty"},
		{"missing pwd", func(c *Config) { c.Email.Pwd = "" }, "email.pwd must not be empty"},
		{"unknown match mode", func(c *Config) { c.Wunderground.MatchMode = "nearest" }, "unknown match mode"},
		{"negative timeout", func(c *Config) { c.Wunderground.Timeout = -time.Second }, "timeout must not be negative"},
		{"port zero", func(c *Config) { c.Email.Port = 0 }, "email.port 0 out of range"},
		{"port too large", func(c *Config) { c.Email.Port = 70000 }, "out of range"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(cfg)

			err := validateConfig(cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestLoad_EmptyCronAllowed(t *testing.T) {
	dir := isolate(t)
	path := writeConfig(t, dir, `
wunderground:
  key: "k"
  pws: "IPARIS42"
  lang: "FR"
email:
  from: "weather@example.com"
  to: "me@example.com"
  smtp: "smtp.example.com"
  pwd: "pwd"
schedule:
  cron: ""
`)

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Empty(t, cfg.Schedule.Cron)
}
