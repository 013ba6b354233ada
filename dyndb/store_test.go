// dyndb/store_test.go
package dyndb_test

import (
	"context"
	"errors"
	"testing"

	"github.com/raywall/tenant-auth-service/dyndb"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testItem struct {
	TenantID string `dynamodbav:"tenant_id"`
	Email    string `dynamodbav:"email"`
	Name     string `dynamodbav:"name"`
}

func testStore(client dyndb.Client) dyndb.Store[testItem] {
	return dyndb.New[testItem](client, dyndb.TableConfig{
		TableName: "test-table",
		HashKey:   "tenant_id",
		SortKey:   "email",
	})
}

func TestGet_Found(t *testing.T) {
	t.Parallel()

	client := &dyndb.MockClient{
		GetItemFn: func(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
			assert.Equal(t, "test-table", *params.TableName)
			assert.Contains(t, params.Key, "tenant_id")
			assert.Contains(t, params.Key, "email")
			return &dynamodb.GetItemOutput{
				Item: map[string]types.AttributeValue{
					"tenant_id": &types.AttributeValueMemberS{Value: "t1"},
					"email":     &types.AttributeValueMemberS{Value: "a@x.com"},
					"name":      &types.AttributeValueMemberS{Value: "A"},
				},
			}, nil
		},
	}

	item, err := testStore(client).Get(context.Background(), "t1", "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "t1", item.TenantID)
	assert.Equal(t, "A", item.Name)
}

func TestGet_NotFound(t *testing.T) {
	t.Parallel()

	client := &dyndb.MockClient{
		GetItemFn: func(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
			return &dynamodb.GetItemOutput{Item: nil}, nil
		},
	}

	_, err := testStore(client).Get(context.Background(), "t1", "missing@x.com")
	assert.ErrorIs(t, err, dyndb.ErrNotFound)
}

func TestGet_ClientError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	client := &dyndb.MockClient{
		GetItemFn: func(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
			return nil, boom
		},
	}

	_, err := testStore(client).Get(context.Background(), "t1", "a@x.com")
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}

func TestPutIfAbsent_SetsCondition(t *testing.T) {
	t.Parallel()

	client := &dyndb.MockClient{
		PutItemFn: func(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
			require.NotNil(t, params.ConditionExpression)
			assert.Contains(t, *params.ConditionExpression, "attribute_not_exists")
			return &dynamodb.PutItemOutput{}, nil
		},
	}

	err := testStore(client).PutIfAbsent(context.Background(), testItem{TenantID: "t1", Email: "a@x.com"})
	require.NoError(t, err)
}

func TestPutIfAbsent_AlreadyExists(t *testing.T) {
	t.Parallel()

	client := &dyndb.MockClient{
		PutItemFn: func(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
			return nil, &types.ConditionalCheckFailedException{}
		},
	}

	err := testStore(client).PutIfAbsent(context.Background(), testItem{TenantID: "t1", Email: "a@x.com"})
	assert.ErrorIs(t, err, dyndb.ErrConditionFailed)
}

func TestPutIfAbsent_OtherError(t *testing.T) {
	t.Parallel()

	boom := errors.New("throttled")
	client := &dyndb.MockClient{
		PutItemFn: func(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
			return nil, boom
		},
	}

	err := testStore(client).PutIfAbsent(context.Background(), testItem{TenantID: "t1", Email: "a@x.com"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, dyndb.ErrConditionFailed)
	assert.ErrorIs(t, err, boom)
}
