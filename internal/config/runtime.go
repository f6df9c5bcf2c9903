package config

import (
	"context"
	"fmt"

	"github.com/chesc/chesc"
	"github.com/chesc/chesc/internal/ruleset"
)

type Runtime struct {
	cfg *Config
}

// NewEscaper resolves name to a profile and builds its escaper. An empty
// name means the configured default. Config profiles shadow builtins; the
// remote collection is consulted last and only when configured.
func (r *Runtime) NewEscaper(ctx context.Context, name string) (*chesc.Escaper, error) {
	if name == "" {
		name = r.cfg.Profile
	}

	p, err := r.lookupProfile(ctx, name)
	if err != nil {
		return nil, err
	}

	esc, err := p.Escaper()
	if err != nil {
		return nil, fmt.Errorf("build escaper from profile %q: %w", name, err)
	}

	return esc, nil
}

// Profiles returns every known profile: builtins, config profiles and the
// remote collection when one is configured.
func (r *Runtime) Profiles(ctx context.Context) ([]ruleset.Profile, error) {
	out := ruleset.Builtins()
	out = append(out, r.cfg.Profiles...)

	if !r.cfg.Remote.Enabled() {
		return out, nil
	}

	remote, err := r.fetchRemote(ctx)
	if err != nil {
		return nil, err
	}

	return append(out, remote...), nil
}

func (r *Runtime) lookupProfile(ctx context.Context, name string) (ruleset.Profile, error) {
	for _, p := range r.cfg.Profiles {
		if p.Name == name {
			return p, nil
		}
	}

	if p, ok := ruleset.Builtin(name); ok {
		return p, nil
	}

	if r.cfg.Remote.Enabled() {
		remote, err := r.fetchRemote(ctx)
		if err != nil {
			return ruleset.Profile{}, err
		}

		for _, p := range remote {
			if p.Name == name {
				return p, nil
			}
		}
	}

	return ruleset.Profile{}, fmt.Errorf("unknown profile: %s", name)
}

func (r *Runtime) fetchRemote(ctx context.Context) ([]ruleset.Profile, error) {
	var opts []ruleset.Option
	if r.cfg.Remote.Retries > 0 {
		opts = append(opts, ruleset.WithRetries(r.cfg.Remote.Retries))
	}
	if r.cfg.Remote.Timeout > 0 {
		opts = append(opts, ruleset.WithTimeout(r.cfg.Remote.Timeout))
	}

	profiles, err := ruleset.NewClient(opts...).FetchProfiles(ctx, r.cfg.Remote.URL)
	if err != nil {
		return nil, fmt.Errorf("fetch remote profiles: %w", err)
	}

	return profiles, nil
}
