package config

import (
	"os"
	"strings"
)

const (
	appNameVar      = "APP_NAME"
	tokenHostVar    = "OAUTH_TOKEN_HOST"
	tokenPathVar    = "OAUTH_TOKEN_PATH"
	clientIDVar     = "OAUTH_CLIENT_ID"
	clientSecretVar = "OAUTH_CLIENT_SECRET"
	scopesVar       = "OAUTH_SCOPES"
)

type EnvConfig interface {
	GetAppName() string
	GetTokenHost() string
	GetTokenPath() string
	GetClientID() string
	GetClientSecret() string
	GetScopes() []string
}

type EnvVars struct{}

var _ EnvConfig = EnvVars{}

func (EnvVars) GetAppName() string {
	return GetEnv(appNameVar, "Token CLI")
}

func (EnvVars) GetTokenHost() string {
	return GetEnv(tokenHostVar, "")
}

func (EnvVars) GetTokenPath() string {
	return GetEnv(tokenPathVar, "")
}

func (EnvVars) GetClientID() string {
	return GetEnv(clientIDVar, "")
}

func (EnvVars) GetClientSecret() string {
	return GetEnv(clientSecretVar, "")
}

// GetScopes returns the requested scopes, configured as a space-separated
// list, e.g. OAUTH_SCOPES="api.read api.write".
func (EnvVars) GetScopes() []string {
	return strings.Fields(GetEnv(scopesVar, ""))
}

func GetEnv(envVar, defaultValue string) string {
	value := os.Getenv(envVar)
	if value == "" {
		return defaultValue
	}
	return value
}
