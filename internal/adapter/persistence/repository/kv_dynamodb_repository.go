package repository

import (
	"context"
	"fmt"
	"time"

	"nardoo_storefront/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultKVTableName = "storefront_kv"

// DynamoDB rejects items over 400 KB; documents above this size are split
// into chunk items referenced by a manifest item stored under the key.
const maxChunkBytes = 350 * 1024

type kvItem struct {
	Key       string `dynamodbav:"key"`
	Value     string `dynamodbav:"value"`
	Chunks    int    `dynamodbav:"chunks,omitempty"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

type kvChunk struct {
	Key  string `dynamodbav:"key"`
	Data []byte `dynamodbav:"data"`
}

// KeyValueDynamoRepository persists collection documents in DynamoDB.
//
// Table requirements:
//   - PK: key (string)
//
// Large documents are written as "<key>#chunk#<n>" items before the manifest,
// so a reader never sees a manifest pointing at chunks that are not written yet.

type KeyValueDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IKeyValueStore = (*KeyValueDynamoRepository)(nil)

func NewKeyValueDynamoRepository(ddb *dynamodb.Client) *KeyValueDynamoRepository {
	return &KeyValueDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("KV_TABLE", defaultKVTableName),
	}
}

func (r *KeyValueDynamoRepository) TableName() string {
	return r.tableName
}

func (r *KeyValueDynamoRepository) Get(ctx context.Context, key string) ([]byte, error) {
	item, err := r.getItem(ctx, key)
	if err != nil || item == nil {
		return nil, err
	}

	var it kvItem
	if err := attributevalue.UnmarshalMap(item, &it); err != nil {
		return nil, err
	}
	if it.Chunks == 0 {
		return []byte(it.Value), nil
	}

	value := make([]byte, 0, it.Chunks*maxChunkBytes)
	for i := 0; i < it.Chunks; i++ {
		raw, err := r.getItem(ctx, chunkKey(key, i))
		if err != nil {
			return nil, err
		}
		if raw == nil {
			return nil, fmt.Errorf("dynamodb: missing chunk %d of %q", i, key)
		}
		var c kvChunk
		if err := attributevalue.UnmarshalMap(raw, &c); err != nil {
			return nil, err
		}
		value = append(value, c.Data...)
	}
	return value, nil
}

func (r *KeyValueDynamoRepository) Set(ctx context.Context, key string, value []byte) error {
	manifest := kvItem{
		Key:       key,
		UpdatedAt: time.Now().UTC().Format(time.RFC3339Nano),
	}

	if len(value) <= maxChunkBytes {
		manifest.Value = string(value)
		return r.putItem(ctx, manifest)
	}

	chunks := splitChunks(value, maxChunkBytes)
	for i, data := range chunks {
		if err := r.putItem(ctx, kvChunk{Key: chunkKey(key, i), Data: data}); err != nil {
			return err
		}
	}
	manifest.Chunks = len(chunks)
	return r.putItem(ctx, manifest)
}

func (r *KeyValueDynamoRepository) getItem(ctx context.Context, key string) (map[string]types.AttributeValue, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"key": &types.AttributeValueMemberS{Value: key},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	if len(out.Item) == 0 {
		return nil, nil
	}
	return out.Item, nil
}

func (r *KeyValueDynamoRepository) putItem(ctx context.Context, in any) error {
	av, err := attributevalue.MarshalMap(in)
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func chunkKey(key string, i int) string {
	return fmt.Sprintf("%s#chunk#%d", key, i)
}

// splitChunks slices value into parts of at most size bytes. The parts share value's backing array.
func splitChunks(value []byte, size int) [][]byte {
	if len(value) == 0 {
		return nil
	}
	out := make([][]byte, 0, (len(value)+size-1)/size)
	for start := 0; start < len(value); start += size {
		end := min(start+size, len(value))
		out = append(out, value[start:end])
	}
	return out
}
