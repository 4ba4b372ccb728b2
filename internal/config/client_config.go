package config

import "time"

type ClientConfig interface {
	GetAuthMethod() string
	GetBodyFormat() string
	GetRequestTimeout() time.Duration
}

type Client struct{}

var _ ClientConfig = Client{}

func (Client) GetAuthMethod() string {
	return GetEnv("OAUTH_AUTH_METHOD", "header")
}

func (Client) GetBodyFormat() string {
	return GetEnv("OAUTH_BODY_FORMAT", "form")
}

func (Client) GetRequestTimeout() time.Duration {
	return 15 * time.Second
}
