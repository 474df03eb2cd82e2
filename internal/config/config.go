package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable, e.g. DISCIPLE_DB.
const EnvPrefix = "DISCIPLE"

// Setting keys. Flag names match the keys.
const (
	KeyDB        = "db"
	KeyCourse    = "course"
	KeyLogLevel  = "log-level"
	KeyLogMode   = "log-mode"
	KeyEphemeral = "ephemeral"
)

// Config holds resolved application settings.
type Config struct {
	// DBPath is the SQLite file. Empty means the default XDG location.
	DBPath string
	// CoursePath is an authored course document. Empty means the built-in course.
	CoursePath string
	LogLevel   string
	LogMode    string
	// Ephemeral keeps progress in memory only.
	Ephemeral bool
}

// New returns a viper instance with defaults, environment binding and the
// optional config file ($XDG_CONFIG_HOME/disciple/config.yaml) wired up.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyDB, "")
	v.SetDefault(KeyCourse, "")
	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeyLogMode, "dev")
	v.SetDefault(KeyEphemeral, false)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if dir, err := configDir(); err == nil {
		v.AddConfigPath(dir)
	}
	return v
}

// BindFlags makes flags in fs take precedence over env and file values.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for _, key := range []string{KeyDB, KeyCourse, KeyLogLevel, KeyLogMode, KeyEphemeral} {
		f := fs.Lookup(key)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("bind flag %q: %w", key, err)
		}
	}
	return nil
}

// Load reads the config file if present and resolves all settings.
func Load(v *viper.Viper) (Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	return Config{
		DBPath:     v.GetString(KeyDB),
		CoursePath: v.GetString(KeyCourse),
		LogLevel:   v.GetString(KeyLogLevel),
		LogMode:    v.GetString(KeyLogMode),
		Ephemeral:  v.GetBool(KeyEphemeral),
	}, nil
}

// configDir resolves $XDG_CONFIG_HOME/disciple, falling back to ~/.config/disciple.
func configDir() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "disciple"), nil
}
