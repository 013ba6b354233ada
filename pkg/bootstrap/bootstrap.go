// Copyright 2025 Raywall Malheiros de Souza
// Licensed under the Mozilla Public License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	https://www.mozilla.org/en-US/MPL/2.0/
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package bootstrap faz o wiring do processo: configuração, clients AWS,
// repositório, serviço de token e métricas. Executa uma única vez no cold
// start; os handlers recebem tudo por referência.
package bootstrap

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"

	"github.com/raywall/tenant-auth-service/pkg/config"
	"github.com/raywall/tenant-auth-service/pkg/handlers"
	"github.com/raywall/tenant-auth-service/pkg/logger"
	"github.com/raywall/tenant-auth-service/pkg/observability"
	"github.com/raywall/tenant-auth-service/pkg/token"
	"github.com/raywall/tenant-auth-service/pkg/users"
)

// New constrói o Handler completo do serviço.
func New(ctx context.Context) (*handlers.Handler, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("bootstrap: aws config failed: %w", err)
	}

	cfg, err := config.Load(ctx, secretsmanager.NewFromConfig(awsCfg))
	if err != nil {
		return nil, err
	}

	log := logger.Configure(cfg.LogLevel)

	metrics, err := observability.SetupMetrics(cfg.Metrics)
	if err != nil {
		return nil, err
	}

	repo := users.NewRepository(dynamodb.NewFromConfig(awsCfg), cfg.TableName)
	tokens := token.NewService([]byte(cfg.JWTSecret), token.DefaultTTL)

	return handlers.New(repo, tokens, metrics, log), nil
}
