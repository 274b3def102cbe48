package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config is shared by the CLI and the sandbox. Values come from a .env
// file when present, overridden by real environment variables.
type Config struct {
	BaseURL         string        `mapstructure:"FTK_BASE_URL"`
	Timeout         time.Duration `mapstructure:"FTK_TIMEOUT"`
	TokenFile       string        `mapstructure:"FTK_TOKEN_FILE"`
	TokenPassphrase string        `mapstructure:"FTK_TOKEN_PASSPHRASE"`
	LogLevel        string        `mapstructure:"FTK_LOG_LEVEL"`

	SandboxAddr      string `mapstructure:"SANDBOX_ADDR"`
	SandboxJWTSecret string `mapstructure:"SANDBOX_JWT_SECRET"`
}

// Load reads configuration, falling back to sane defaults for local
// use against the sandbox.
func Load(log *logrus.Logger) Config {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	viper.SetDefault("FTK_BASE_URL", "http://localhost:8080/api")
	viper.SetDefault("FTK_TIMEOUT", 30*time.Second)
	viper.SetDefault("FTK_TOKEN_FILE", defaultTokenFile())
	viper.SetDefault("FTK_TOKEN_PASSPHRASE", "ftk-dev-passphrase")
	viper.SetDefault("FTK_LOG_LEVEL", "warn")
	viper.SetDefault("SANDBOX_ADDR", ":8080")
	viper.SetDefault("SANDBOX_JWT_SECRET", "sandbox-dev-secret")

	if err := viper.ReadInConfig(); err != nil {
		log.Debug("no .env file found, using env variables only")
	}

	var c Config
	if err := viper.Unmarshal(&c); err != nil {
		log.Fatal("config unmarshal error: ", err)
	}
	return c
}

// Level parses the configured log level, defaulting to warn.
func (c Config) Level() logrus.Level {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.WarnLevel
	}
	return level
}

func defaultTokenFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".ftk/token"
	}
	return filepath.Join(home, ".ftk", "token")
}
