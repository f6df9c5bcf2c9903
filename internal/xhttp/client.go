package xhttp

import (
	"crypto/tls"
	"net"
	"net/http"
	"time"

	"github.com/buglloc/certifi"
)

const (
	DefaultDialTimeout = 10 * time.Second
	DefaultIdleTimeout = 90 * time.Second
)

func NewHTTPClient() *http.Client {
	return &http.Client{
		Transport: &http.Transport{
			Proxy: http.ProxyFromEnvironment,
			DialContext: (&net.Dialer{
				Timeout: DefaultDialTimeout,
			}).DialContext,
			TLSClientConfig: &tls.Config{
				RootCAs: certifi.NewCertPool(),
			},
			IdleConnTimeout: DefaultIdleTimeout,
		},
	}
}
