/*
Package config manages the TOML configuration of the nerdify binaries.

Values are read in this order, later ones winning:

 1. built-in defaults
 2. the TOML file
 3. a .env file in the working directory, if there is one
 4. NERDIFY_* environment variables

A config file looks like this:

	[server]
	addr = "localhost:8080"
	slow_ms = 30

	[dictionary]
	path = "./dictionary.yaml"

	[translator]
	seed = 0
	decorate = true
	cache_size = 1024

	[log]
	level = "info"
	timestamps = true
*/
package config

import (
	"errors"
	"fmt"
	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"os"
)

type Config struct {
	Server     ServerConfig     `toml:"server"`
	Dictionary DictionaryConfig `toml:"dictionary"`
	Translator TranslatorConfig `toml:"translator"`
	Log        LogConfig        `toml:"log"`
}

type ServerConfig struct {
	Addr   string `toml:"addr" split_words:"true"`
	SlowMS int    `toml:"slow_ms" split_words:"true"`
}

// DictionaryConfig points to a YAML dictionary file or directory. The
// built-in dictionary is used when Path is empty.
type DictionaryConfig struct {
	Path string `toml:"path" split_words:"true"`
}

// TranslatorConfig sets up the translator. A zero seed means a time-based seed.
type TranslatorConfig struct {
	Seed      int64 `toml:"seed" split_words:"true"`
	Decorate  bool  `toml:"decorate" split_words:"true"`
	CacheSize int   `toml:"cache_size" split_words:"true"`
}

type LogConfig struct {
	Level      string `toml:"level" split_words:"true"`
	Timestamps bool   `toml:"timestamps" split_words:"true"`
}

const envPrefix = "NERDIFY"

func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:   "localhost:8080",
			SlowMS: 30,
		},
		Translator: TranslatorConfig{
			Seed:      0,
			Decorate:  true,
			CacheSize: 1024,
		},
		Log: LogConfig{
			Level:      "info",
			Timestamps: true,
		},
	}
}

// Load reads the config at path on top of the defaults and applies the
// environment. A blank path or a missing file only applies the environment.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("could not read config %s: %w", path, err)
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("could not read .env: %w", err)
	}

	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ApplyEnv overrides fields from NERDIFY_* variables.
func (c *Config) ApplyEnv() error {
	if err := envconfig.Process(envPrefix+"_SERVER", &c.Server); err != nil {
		return fmt.Errorf("server env: %w", err)
	}
	if err := envconfig.Process(envPrefix+"_DICTIONARY", &c.Dictionary); err != nil {
		return fmt.Errorf("dictionary env: %w", err)
	}
	if err := envconfig.Process(envPrefix+"_TRANSLATOR", &c.Translator); err != nil {
		return fmt.Errorf("translator env: %w", err)
	}
	if err := envconfig.Process(envPrefix+"_LOG", &c.Log); err != nil {
		return fmt.Errorf("log env: %w", err)
	}

	return nil
}

// Save writes the config as TOML.
func (c *Config) Save(path string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	return toml.NewEncoder(f).Encode(c)
}
