package config

import (
	"fmt"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/chesc/chesc/internal/ruleset"
)

const DefaultProfile = "cstyle"

type Config struct {
	Profile  string            `koanf:"profile"`
	Remote   Remote            `koanf:"remote"`
	Profiles []ruleset.Profile `koanf:"profiles"`
}

func (c *Config) Validate() error {
	names := make(map[string]struct{})
	for _, p := range c.Profiles {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("invalid profile %q: %w", p.Name, err)
		}

		_, exists := names[p.Name]
		if exists {
			return fmt.Errorf("duplicate profile name: %s", p.Name)
		}
		names[p.Name] = struct{}{}
	}

	return c.Remote.Validate()
}

func LoadConfig(files ...string) (*Config, error) {
	out := Config{
		Profile: DefaultProfile,
	}

	k := koanf.New(".")
	if err := k.Load(env.Provider("CHESC", "_", nil), nil); err != nil {
		return nil, fmt.Errorf("load env config: %w", err)
	}

	yamlParser := yaml.Parser()
	for _, fpath := range files {
		if err := k.Load(file.Provider(fpath), yamlParser); err != nil {
			return nil, fmt.Errorf("load %q config: %w", fpath, err)
		}
	}

	return &out, k.Unmarshal("", &out)
}

func (c *Config) NewRuntime() (*Runtime, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Runtime{
		cfg: c,
	}, nil
}
