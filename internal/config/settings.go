package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// DefaultAPIURL is the API endpoint used when nothing overrides it
const DefaultAPIURL = "http://localhost:8080/api/v1"

// DefaultWebURL is the web app that mints CLI tokens for `login --web`
const DefaultWebURL = "http://localhost:3000"

const envPrefix = "codelearn"

const (
	keyAPIURL    = "api_url"
	keyWebURL    = "web_url"
	keyConfigDir = "config_dir"
)

// Settings resolves runtime options from flags, CODELEARN_* variables and defaults,
// in that order of precedence.
type Settings struct {
	v *viper.Viper
}

func NewSettings() *Settings {
	// .env only fills variables that are not already set
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetDefault(keyAPIURL, DefaultAPIURL)
	v.SetDefault(keyWebURL, DefaultWebURL)
	v.SetDefault(keyConfigDir, DefaultDir())
	return &Settings{v: v}
}

// BindFlags wires the persistent --api-url and --config-dir flags.
func (s *Settings) BindFlags(flags *pflag.FlagSet) error {
	if err := s.v.BindPFlag(keyAPIURL, flags.Lookup("api-url")); err != nil {
		return err
	}
	return s.v.BindPFlag(keyConfigDir, flags.Lookup("config-dir"))
}

func (s *Settings) APIURL() string {
	return s.v.GetString(keyAPIURL)
}

func (s *Settings) WebURL() string {
	return s.v.GetString(keyWebURL)
}

func (s *Settings) ConfigDir() string {
	return s.v.GetString(keyConfigDir)
}

func (s *Settings) Store() *Store {
	return NewStore(s.ConfigDir())
}

// DefaultDir is ~/.codelearn, or a relative .codelearn when there is no home.
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ".codelearn"
	}
	return filepath.Join(home, ".codelearn")
}
