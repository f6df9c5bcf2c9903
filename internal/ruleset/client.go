package ruleset

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/chesc/chesc/internal/xhttp"
)

const (
	DefaultRetries = 3
	DefaultTimeout = 30 * time.Second
)

// Client fetches profile collections from a remote endpoint. The payload is
// a YAML document with a top-level "profiles" list.
type Client struct {
	httpc *resty.Client
	log   zerolog.Logger
}

func NewClient(opts ...Option) *Client {
	return NewClientWithHTTP(xhttp.NewHTTPClient(), opts...)
}

func NewClientWithHTTP(httpc *http.Client, opts ...Option) *Client {
	client := &Client{
		httpc: resty.NewWithClient(httpc).
			SetHeader("User-Agent", "chesc").
			SetRetryCount(DefaultRetries).
			SetTimeout(DefaultTimeout),
		log: log.With().
			Str("source", "ruleset-client").
			Logger(),
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// FetchProfiles downloads and parses the profile collection at url.
func (c *Client) FetchProfiles(ctx context.Context, url string) ([]Profile, error) {
	if url == "" {
		return nil, errors.New("no url configured")
	}

	httpRsp, err := c.httpc.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		return nil, fmt.Errorf("make http request: %w", err)
	}

	if httpRsp.IsError() {
		return nil, fmt.Errorf("non-200 response: %s", httpRsp.Status())
	}

	profiles, err := ParseProfiles(httpRsp.Body())
	if err != nil {
		return nil, err
	}

	c.log.Info().
		Str("url", url).
		Int("profiles", len(profiles)).
		Msg("fetched remote profiles")
	return profiles, nil
}

// ParseProfiles parses a YAML profile collection.
func ParseProfiles(in []byte) ([]Profile, error) {
	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(in), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("parse profiles: %w", err)
	}

	var out struct {
		Profiles []Profile `koanf:"profiles"`
	}
	if err := k.Unmarshal("", &out); err != nil {
		return nil, fmt.Errorf("unmarshal profiles: %w", err)
	}

	for i := range out.Profiles {
		if err := out.Profiles[i].Validate(); err != nil {
			return nil, fmt.Errorf("invalid profile at index %d: %w", i, err)
		}
	}

	return out.Profiles, nil
}
