package config

import (
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const EnvPrefix = "FEED_ATLAS"

type Settings struct {
	Profile      string         `mapstructure:"profile"`
	ProfilesPath string         `mapstructure:"profiles_path"`
	LogLevel     string         `mapstructure:"log_level"`
	Server       ServerSettings `mapstructure:"server"`
}

type ServerSettings struct {
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

func (s ServerSettings) Addr() string {
	return net.JoinHostPort(s.Host, s.Port)
}

// NewViper returns a viper instance with defaults and FEED_ATLAS_* env lookup.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("profile", DefaultProfile)
	v.SetDefault("profiles_path", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.shutdown_timeout", 10*time.Second)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// LoadSettings reads the optional settings file and decodes the merged view.
func LoadSettings(v *viper.Viper, path string) (*Settings, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}
	return &s, nil
}

// OpenRegistry opens the profiles file when one is configured, otherwise the
// built-in profiles.
func OpenRegistry(s *Settings) (Registry, error) {
	if s.ProfilesPath == "" {
		return NewBuiltinRegistry(), nil
	}
	registry, err := NewRegistry(s.ProfilesPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load profiles from %s: %w", s.ProfilesPath, err)
	}
	return registry, nil
}
