package observability_test

import (
	"testing"

	"github.com/raywall/tenant-auth-service/pkg/config"
	"github.com/raywall/tenant-auth-service/pkg/observability"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupMetrics_Disabled(t *testing.T) {
	t.Parallel()

	provider, err := observability.SetupMetrics(config.MetricsConf{Enabled: false})
	require.NoError(t, err)

	_, ok := provider.(*observability.NoopProvider)
	assert.True(t, ok)
	assert.NoError(t, provider.Count("auth.register.success", 1, nil))
}

func TestSetupMetrics_Enabled(t *testing.T) {
	t.Parallel()

	// statsd.New pode falhar se o endereço for inválido, mas localhost costuma passar na criação do struct
	provider, err := observability.SetupMetrics(config.MetricsConf{
		Enabled:   true,
		Addr:      "127.0.0.1:8125",
		Namespace: "tenant_auth.",
	})
	require.NoError(t, err)

	_, ok := provider.(*observability.DatadogProvider)
	assert.True(t, ok)
}
