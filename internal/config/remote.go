package config

import (
	"errors"
	"strings"
	"time"
)

type Remote struct {
	URL     string        `koanf:"url"`
	Retries int           `koanf:"retries"`
	Timeout time.Duration `koanf:"timeout"`
}

func (r *Remote) Validate() error {
	if r.URL == "" {
		return nil
	}

	if !strings.HasPrefix(r.URL, "http://") && !strings.HasPrefix(r.URL, "https://") {
		return errors.New("remote url must be http(s)")
	}

	if r.Retries < 0 {
		return errors.New("remote retries must be non-negative")
	}

	return nil
}

func (r *Remote) Enabled() bool {
	return r.URL != ""
}
