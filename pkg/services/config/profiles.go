package config

import (
	"context"
	"fmt"

	"github.com/de-tools/feed-atlas/pkg/models/domain"
	"gopkg.in/ini.v1"
)

const (
	DefaultProfile = "default"
	LegacyProfile  = "legacy"
)

// builtinProfiles are used when no profiles file is configured.
const builtinProfiles = `
[default]
unknown_feed = reject
precision    = 2

[legacy]
unknown_feed = zero
precision    = 2
`

type Registry interface {
	GetProfiles(ctx context.Context) ([]string, error)
	GetProfile(ctx context.Context, name string) (domain.Profile, error)
}

type cfgRegistry struct {
	cfg *ini.File
}

// NewRegistry reads calculation profiles from an INI file, one section per profile.
func NewRegistry(path string) (Registry, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, err
	}
	return &cfgRegistry{cfg: cfg}, nil
}

// NewBuiltinRegistry serves the built-in default and legacy profiles.
func NewBuiltinRegistry() Registry {
	cfg, err := ini.Load([]byte(builtinProfiles))
	if err != nil {
		panic(fmt.Sprintf("config: built-in profiles: %v", err))
	}
	return &cfgRegistry{cfg: cfg}
}

func (cr *cfgRegistry) GetProfiles(_ context.Context) ([]string, error) {
	var profiles []string
	for _, section := range cr.cfg.Sections() {
		if len(section.Keys()) > 0 {
			profiles = append(profiles, section.Name())
		}
	}
	return profiles, nil
}

func (cr *cfgRegistry) GetProfile(_ context.Context, name string) (domain.Profile, error) {
	section, err := cr.cfg.GetSection(name)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("profile %s not found", name)
	}

	policy := domain.UnknownFeedPolicy(section.Key("unknown_feed").MustString(string(domain.UnknownFeedReject)))
	if !policy.Valid() {
		return domain.Profile{}, fmt.Errorf("profile %s: unknown_feed must be %q or %q, got %q",
			name, domain.UnknownFeedReject, domain.UnknownFeedZero, policy)
	}

	precision := domain.DefaultPrecision
	if section.HasKey("precision") {
		if precision, err = section.Key("precision").Int(); err != nil {
			return domain.Profile{}, fmt.Errorf("profile %s: precision must be an integer: %w", name, err)
		}
	}
	if precision < 0 || precision > domain.MaxPrecision {
		return domain.Profile{}, fmt.Errorf("profile %s: precision must be between 0 and %d, got %d",
			name, domain.MaxPrecision, precision)
	}

	return domain.Profile{
		Name:        name,
		UnknownFeed: policy,
		Precision:   int32(precision),
	}, nil
}
