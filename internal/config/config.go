package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// RepoType selects the storage backend.
type RepoType string

const (
	RepoInMemory RepoType = "inmemory"
	RepoFile     RepoType = "file"
	RepoBinary   RepoType = "binary"
	RepoKV       RepoType = "kv"
)

// ParseRepoType validates s as a RepoType.
func ParseRepoType(s string) (RepoType, error) {
	switch t := RepoType(strings.ToLower(strings.TrimSpace(s))); t {
	case RepoInMemory, RepoFile, RepoBinary, RepoKV:
		return t, nil
	default:
		return "", fmt.Errorf("unknown repository type %q (want inmemory, file, binary or kv)", s)
	}
}

// Config holds all configuration for the application.
// Values are read by viper from a config file or environment variables.
type Config struct {
	RepoType     RepoType `mapstructure:"REPO_TYPE"`
	ClientsFile  string   `mapstructure:"CLIENTS_FILE"`
	MoviesFile   string   `mapstructure:"MOVIES_FILE"`
	RentalsFile  string   `mapstructure:"RENTALS_FILE"`
	BadgerDBPath string   `mapstructure:"BADGERDB_PATH"`
	LogLevel     string   `mapstructure:"LOG_LEVEL"`
	LogFormat    string   `mapstructure:"LOG_FORMAT"`
	Populate     bool     `mapstructure:"POPULATE"`
}

var defaults = map[string]any{
	"REPO_TYPE":     string(RepoInMemory),
	"CLIENTS_FILE":  "clients.txt",
	"MOVIES_FILE":   "movies.txt",
	"RENTALS_FILE":  "rentals.txt",
	"BADGERDB_PATH": "./badger_data",
	"LOG_LEVEL":     "info",
	"LOG_FORMAT":    "json",
	"POPULATE":      true,
}

// LoadConfig reads configuration from path/config.yaml and the environment.
// A missing config file is not an error.
func LoadConfig(path string) (Config, error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	for k, val := range defaults {
		v.SetDefault(k, val)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unable to decode into struct: %w", err)
	}

	if err := cfg.normalize(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// normalize validates the repo type and strips the quotes settings files put
// around file names.
func (c *Config) normalize() error {
	t, err := ParseRepoType(string(c.RepoType))
	if err != nil {
		return err
	}
	c.RepoType = t

	for _, f := range []*string{&c.ClientsFile, &c.MoviesFile, &c.RentalsFile, &c.BadgerDBPath} {
		*f = strings.Trim(strings.TrimSpace(*f), `"`)
		if *f == "" {
			return errors.New("storage paths must not be empty")
		}
	}
	return nil
}

// WithRepoType returns a copy of c using repo type s.
func (c Config) WithRepoType(s string) (Config, error) {
	t, err := ParseRepoType(s)
	if err != nil {
		return Config{}, err
	}
	c.RepoType = t
	return c, nil
}
