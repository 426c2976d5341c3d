package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	configName = "config"
	configType = "json"
)

// Config is the locally persisted session plus the API URL resolved for this run.
// Only Token, Username and UserID are written to disk.
type Config struct {
	Token    string `json:"token" mapstructure:"token"`
	Username string `json:"username" mapstructure:"username"`
	UserID   int    `json:"user_id" mapstructure:"user_id"`

	APIUrl string `json:"-" mapstructure:"-"`
}

// GetAPIURL returns the API URL
func (cfg *Config) GetAPIURL() string {
	if cfg.APIUrl != "" {
		return cfg.APIUrl
	}
	return DefaultAPIURL
}

func (cfg *Config) LoggedIn() bool {
	return cfg != nil && cfg.Token != ""
}

// Store reads and writes the session file inside a single directory.
type Store struct {
	dir string
}

func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) Path() string {
	return filepath.Join(s.dir, configName+"."+configType)
}

// Load returns an empty Config when no session file exists yet. Only
// config.json is read; other config.* files in the directory are ignored.
func (s *Store) Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(s.Path())
	v.SetConfigType(configType)

	err := v.ReadInConfig()
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Config{}, nil
		}
		var parseErr viper.ConfigParseError
		if errors.As(err, &parseErr) {
			return nil, fmt.Errorf("malformed config file %s: %w", s.Path(), err)
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", s.Path(), err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", s.Path(), err)
	}
	return &cfg, nil
}

// Save replaces the whole session file with the session fields of cfg.
func (s *Store) Save(cfg *Config) error {
	if err := os.MkdirAll(s.dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// fresh instance so nothing read earlier gets merged back in
	v := viper.New()
	v.SetConfigType(configType)
	v.SetConfigPermissions(0600)
	v.Set("token", cfg.Token)
	v.Set("username", cfg.Username)
	v.Set("user_id", cfg.UserID)

	if err := v.WriteConfigAs(s.Path()); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Clear removes the session file. A missing file is not an error.
func (s *Store) Clear() error {
	if err := os.Remove(s.Path()); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
