// Package config loads tagfinder settings from defaults, a YAML config file,
// a .env file, TAGFINDER_* environment variables and command-line flags, in
// increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	configName = "tagfinder"
	envPrefix  = "tagfinder"
)

// Config holds every runtime setting.
type Config struct {
	Home              string        `mapstructure:"home"`
	Gateway           string        `mapstructure:"gateway"`
	KeyFile           string        `mapstructure:"key_file"`
	Port              int           `mapstructure:"port"`
	HTTPTimeout       time.Duration `mapstructure:"http_timeout"`
	FetchTimeout      time.Duration `mapstructure:"fetch_timeout"`
	SessionPassphrase string        `mapstructure:"session_passphrase"`
	History           bool          `mapstructure:"history"`
	Language          string        `mapstructure:"language"`
	Verbose           bool          `mapstructure:"verbose"`
}

// Defaults returns the built-in value of every key.
func Defaults() map[string]any {
	return map[string]any{
		"home":               "~/.tagfinder",
		"gateway":            "http://127.0.0.1:6969",
		"key_file":           "",
		"port":               8080,
		"http_timeout":       "45s",
		"fetch_timeout":      "30s",
		"session_passphrase": "",
		"history":            true,
		"language":           "en",
		"verbose":            false,
	}
}

// flagKeys maps config keys to the flag names that may override them.
var flagKeys = map[string]string{
	"home":     "home",
	"gateway":  "gateway",
	"key_file": "key-file",
	"port":     "port",
	"verbose":  "verbose",
}

// Load builds a Config. explicitPath, when set, names a config file that must
// exist; otherwise tagfinder.yaml is looked up in the user config directory
// and the working directory. Only flags present in flags are bound.
func Load(flags *pflag.FlagSet, explicitPath string) (Config, error) {
	var c Config
	v := viper.New()

	for key, value := range Defaults() {
		v.SetDefault(key, value)
	}

	v.SetConfigName(configName)
	v.SetConfigType("yaml")
	if explicitPath != "" {
		p, err := ExpandPath(explicitPath)
		if err != nil {
			return c, err
		}
		v.SetConfigFile(p)
	}
	if dir, err := userConfigDir(); err == nil {
		v.AddConfigPath(dir)
	}
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || explicitPath != "" {
			return c, fmt.Errorf("reading config: %w", err)
		}
	}

	// A missing .env is the normal case.
	_ = godotenv.Load()

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for key, name := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return c, err
				}
			}
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("parsing config: %w", err)
	}

	home, err := ExpandPath(c.Home)
	if err != nil {
		return c, err
	}
	c.Home = home
	if c.KeyFile == "" {
		c.KeyFile = filepath.Join(c.Home, "private_key.pem")
	} else if c.KeyFile, err = ExpandPath(c.KeyFile); err != nil {
		return c, err
	}
	return c, nil
}

// ExpandPath resolves a leading ~ to the user's home directory.
func ExpandPath(p string) (string, error) {
	return homedir.Expand(p)
}

// DefaultPath returns where WriteFile puts the user config file.
func DefaultPath() (string, error) {
	dir, err := userConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configName+".yaml"), nil
}

func userConfigDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("could not get user config directory: %w", err)
	}
	return filepath.Join(dir, configName), nil
}

// fileConfig is the YAML shape written by WriteFile. Durations are strings so
// the file stays readable.
type fileConfig struct {
	Home         string `yaml:"home"`
	Gateway      string `yaml:"gateway"`
	KeyFile      string `yaml:"key_file,omitempty"`
	Port         int    `yaml:"port"`
	HTTPTimeout  string `yaml:"http_timeout"`
	FetchTimeout string `yaml:"fetch_timeout"`
	History      bool   `yaml:"history"`
	Language     string `yaml:"language"`
}

// WriteFile writes c as YAML to path, creating parent directories. The
// session passphrase is never written.
func WriteFile(c Config, path string) error {
	data, err := yaml.Marshal(fileConfig{
		Home:         c.Home,
		Gateway:      c.Gateway,
		KeyFile:      c.KeyFile,
		Port:         c.Port,
		HTTPTimeout:  c.HTTPTimeout.String(),
		FetchTimeout: c.FetchTimeout.String(),
		History:      c.History,
		Language:     c.Language,
	})
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("could not create config directory %s: %w", filepath.Dir(path), err)
	}
	return os.WriteFile(path, data, 0o600)
}
