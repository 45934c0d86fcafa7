package secrets

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvName(t *testing.T) {
	assert.Equal(t, "GNEWS_API_KEY", EnvName("gnews-api-key"))
	assert.Equal(t, "GNEWS_API_KEY", EnvName("Gnews-api-key"))
	assert.Equal(t, "PLAIN", EnvName("plain"))
}

func TestEnvProviderGetSecret(t *testing.T) {
	t.Setenv("GNEWS_API_KEY", "k-123")

	provider := NewEnvProvider()
	value, err := provider.GetSecret(context.Background(), "gnews-api-key")
	require.NoError(t, err)
	assert.Equal(t, "k-123", value)
}

func TestEnvProviderMissingSecret(t *testing.T) {
	provider := NewEnvProvider()

	_, err := provider.GetSecret(context.Background(), "definitely-not-set-anywhere")
	assert.ErrorIs(t, err, ErrSecretNotFound)
}

func TestEnvProviderEmptyValueIsMissing(t *testing.T) {
	t.Setenv("EMPTY_SECRET", "")

	provider := NewEnvProvider()
	_, err := provider.GetSecret(context.Background(), "empty-secret")
	assert.ErrorIs(t, err, ErrSecretNotFound)
}
