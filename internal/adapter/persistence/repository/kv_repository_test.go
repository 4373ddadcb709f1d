package repository

import (
	"bytes"
	"context"
	"testing"

	"nardoo_storefront/internal/infrastructure/database"
	"nardoo_storefront/internal/usecase/interfaces"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runKeyValueContract(t *testing.T, store interfaces.IKeyValueStore) {
	t.Helper()
	ctx := context.Background()

	t.Run("missing key returns nil", func(t *testing.T) {
		v, err := store.Get(ctx, "nardoo_missing")
		require.NoError(t, err)
		assert.Nil(t, v)
	})

	t.Run("set then get", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "nardoo_orders_management", []byte(`[{"id":"ORD1"}]`)))
		v, err := store.Get(ctx, "nardoo_orders_management")
		require.NoError(t, err)
		assert.JSONEq(t, `[{"id":"ORD1"}]`, string(v))
	})

	t.Run("set replaces the document", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "nardoo_page_views", []byte(`[1]`)))
		require.NoError(t, store.Set(ctx, "nardoo_page_views", []byte(`[]`)))
		v, err := store.Get(ctx, "nardoo_page_views")
		require.NoError(t, err)
		assert.Equal(t, "[]", string(v))
	})

	t.Run("document larger than a dynamodb item", func(t *testing.T) {
		big := append([]byte(`["`), bytes.Repeat([]byte("a"), 450*1024)...)
		big = append(big, []byte(`"]`)...)
		require.NoError(t, store.Set(ctx, "nardoo_analytics_events", big))

		v, err := store.Get(ctx, "nardoo_analytics_events")
		require.NoError(t, err)
		assert.Equal(t, len(big), len(v))
		assert.True(t, bytes.Equal(big, v))
	})
}

func TestSplitChunks(t *testing.T) {
	assert.Nil(t, splitChunks(nil, 4))
	assert.Equal(t, [][]byte{[]byte("abcd")}, splitChunks([]byte("abcd"), 4))
	assert.Equal(t, [][]byte{[]byte("abcd"), []byte("ef")}, splitChunks([]byte("abcdef"), 4))

	value := bytes.Repeat([]byte("x"), 450*1024)
	chunks := splitChunks(value, maxChunkBytes)
	require.Len(t, chunks, 2)
	for _, c := range chunks {
		assert.LessOrEqual(t, len(c), maxChunkBytes)
	}
	assert.Equal(t, value, bytes.Join(chunks, nil))
	assert.Equal(t, "nardoo_analytics_events#chunk#1", chunkKey("nardoo_analytics_events", 1))
}

func TestKeyValueMemoryRepository(t *testing.T) {
	runKeyValueContract(t, NewKeyValueMemoryRepository())
}

func TestKeyValueMemoryRepository_CopiesValues(t *testing.T) {
	ctx := context.Background()
	store := NewKeyValueMemoryRepository()

	in := []byte(`[]`)
	require.NoError(t, store.Set(ctx, "k", in))
	in[0] = 'x'

	v, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "[]", string(v))
}

func TestKeyValueSQLiteRepository(t *testing.T) {
	db, err := database.OpenSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	store, err := NewKeyValueSQLiteRepository(context.Background(), db)
	require.NoError(t, err)

	runKeyValueContract(t, store)
}

func TestKeyValueRepositories_EnvDefaults(t *testing.T) {
	t.Setenv("KV_TABLE", "  ")
	t.Setenv("REDIS_KEY_PREFIX", "")
	assert.Equal(t, defaultKVTableName, NewKeyValueDynamoRepository(nil).TableName())
	assert.Equal(t, defaultRedisKeyPrefix, NewKeyValueRedisRepository(nil).prefix)

	t.Setenv("KV_TABLE", "nardoo_kv")
	t.Setenv("REDIS_KEY_PREFIX", "nardoo:")
	assert.Equal(t, "nardoo_kv", NewKeyValueDynamoRepository(nil).TableName())
	assert.Equal(t, "nardoo:", NewKeyValueRedisRepository(nil).prefix)
}
