// Package config builds the process-wide configuration once at startup.
// Handlers receive it (or what was built from it) explicitly; nothing reads
// the environment after initialization.
package config

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/raywall/tenant-auth-service/envloader"
)

// ErrNoSigningSecret é retornado quando nem JWT_SECRET nem JWT_SECRET_ID
// produzem um segredo de assinatura.
var ErrNoSigningSecret = errors.New("config: no signing secret configured (set JWT_SECRET or JWT_SECRET_ID)")

// SecretsClient abstrai o Secrets Manager (permite mocking).
type SecretsClient interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

// MetricsConf controla o envio de métricas via StatsD/Datadog.
type MetricsConf struct {
	Enabled   bool   `env:"DD_METRICS_ENABLED" envDefault:"false"`
	Addr      string `env:"DD_AGENT_ADDR" envDefault:"127.0.0.1:8125"`
	Namespace string `env:"DD_NAMESPACE" envDefault:"tenant_auth."`
}

// Config é o estado imutável do processo: tabela, segredo de assinatura,
// logging e métricas. Construído uma única vez em Load.
type Config struct {
	TableName string `env:"TABLE_NAME" required:"true"`
	JWTSecret string `env:"JWT_SECRET"`
	// JWTSecretID, quando definido, busca o segredo no Secrets Manager
	// em vez da variável de ambiente.
	JWTSecretID string `env:"JWT_SECRET_ID"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	Metrics     MetricsConf
}

// Load lê o ambiente e resolve o segredo de assinatura. Qualquer ausência
// de configuração obrigatória é fatal para o processo (o caller decide).
func Load(ctx context.Context, secrets SecretsClient) (*Config, error) {
	var cfg Config
	if err := envloader.Load(&cfg); err != nil {
		return nil, err
	}

	if cfg.JWTSecret == "" && cfg.JWTSecretID != "" {
		value, err := fetchSecret(ctx, secrets, cfg.JWTSecretID)
		if err != nil {
			return nil, err
		}
		cfg.JWTSecret = value
	}
	if cfg.JWTSecret == "" {
		return nil, ErrNoSigningSecret
	}

	return &cfg, nil
}

// fetchSecret: lógica pura testável via mock.
func fetchSecret(ctx context.Context, client SecretsClient, secretID string) (string, error) {
	if client == nil {
		return "", fmt.Errorf("config: JWT_SECRET_ID set but no secrets client available")
	}
	out, err := client.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: &secretID,
	})
	if err != nil {
		return "", fmt.Errorf("config: secretsmanager fetch failed: %w", err)
	}
	if out.SecretString == nil || *out.SecretString == "" {
		return "", fmt.Errorf("config: secret %s is empty", secretID)
	}
	return *out.SecretString, nil
}
