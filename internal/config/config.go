// Package config loads CLI settings from env files, the environment and an
// optional YAML file.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the settings the library CLI needs.
type Config struct {
	// File is the catalog file read and written by every command.
	File string    `mapstructure:"file"`
	Log  LogConfig `mapstructure:"log"`
}

// LogConfig controls report output.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `mapstructure:"level"`
	// Format is text or json.
	Format string `mapstructure:"format"`
}

// Defaults returns the configuration used when nothing overrides it.
func Defaults() Config {
	return Config{
		File: "library.txt",
		Log:  LogConfig{Level: "info", Format: "text"},
	}
}

// LoadEnvFiles reads .env and .env.local. Variables already set in the
// environment are never overridden.
func LoadEnvFiles() {
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")
}

// Load resolves configuration with precedence env > config file > defaults.
// LIBRARY_FILE, LIBRARY_LOG_LEVEL and LIBRARY_LOG_FORMAT are recognised.
// An empty cfgFile means no config file.
func Load(v *viper.Viper, cfgFile string) (Config, error) {
	d := Defaults()
	v.SetDefault("file", d.File)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)

	v.SetEnvPrefix("library")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", cfgFile, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the CLI cannot run with.
func (c Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.File) == "" {
		errs = append(errs, errors.New("file must not be empty"))
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("log.format must be text or json, got %q", c.Log.Format))
	}
	return errors.Join(errs...)
}
