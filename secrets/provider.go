// Package secrets provides the secret retrieval abstraction.
//
// The ingestion front-end needs the search API key before any processing
// starts; a retrieval failure at that point is fatal for the whole run.
package secrets

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
)

var (
	// ErrSecretNotFound indicates the named secret does not exist.
	ErrSecretNotFound = errors.New("secret not found")

	// ErrAccessDenied indicates the provider refused access to the secret.
	ErrAccessDenied = errors.New("access to secret denied")
)

// Provider retrieves named secrets.
// Implementations must be thread-safe.
type Provider interface {
	// GetSecret returns the value of the named secret.
	// Returns an error matching ErrSecretNotFound or ErrAccessDenied.
	GetSecret(ctx context.Context, name string) (string, error)
}

// EnvProvider resolves secrets from environment variables. A secret name
// like "gnews-api-key" maps to the variable GNEWS_API_KEY.
type EnvProvider struct{}

var _ Provider = (*EnvProvider)(nil)

// NewEnvProvider creates an environment-backed secret provider.
func NewEnvProvider() *EnvProvider {
	return &EnvProvider{}
}

// GetSecret looks up the environment variable derived from name.
func (p *EnvProvider) GetSecret(_ context.Context, name string) (string, error) {
	envName := EnvName(name)
	value, ok := os.LookupEnv(envName)
	if !ok || value == "" {
		return "", fmt.Errorf("%w: %s (env %s)", ErrSecretNotFound, name, envName)
	}
	return value, nil
}

// EnvName converts a secret name to its environment variable form:
// uppercased, with dashes replaced by underscores.
func EnvName(name string) string {
	return strings.ToUpper(strings.ReplaceAll(name, "-", "_"))
}
