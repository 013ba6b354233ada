// dyndb/types.go
package dyndb

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// ErrNotFound – erro padrão quando o item não existe
var ErrNotFound = errors.New("dyndb: item not found")

// ErrConditionFailed – a condição do write não foi satisfeita
// (ex.: PutIfAbsent sobre um item que já existe)
var ErrConditionFailed = errors.New("dyndb: conditional write failed")

// Client interface para abstrair o cliente DynamoDB
type Client interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

// Store — interface principal (genérica)
type Store[T any] interface {
	Get(ctx context.Context, hashKey, sortKey any) (*T, error)
	Put(ctx context.Context, item T) error

	// PutIfAbsent grava o item somente se a chave primária ainda não existir.
	// Retorna ErrConditionFailed quando o item já está na tabela.
	PutIfAbsent(ctx context.Context, item T) error
}

// TableConfig — configuração da tabela
type TableConfig struct {
	TableName string `env:"TABLE_NAME"`
	HashKey   string `env:"DYNAMODB_HASH_KEY"`
	SortKey   string `env:"DYNAMODB_SORT_KEY"` // opcional
}
