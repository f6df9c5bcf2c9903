package ruleset

import "time"

type Option func(*Client)

func WithRetries(retries int) Option {
	return func(client *Client) {
		client.httpc.SetRetryCount(retries)
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(client *Client) {
		client.httpc.SetTimeout(timeout)
	}
}
