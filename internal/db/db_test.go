package db

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T, name string) *DB {
	t.Helper()
	tmp := filepath.Join(os.TempDir(), name)
	t.Cleanup(func() { os.Remove(tmp) })

	database, err := New(tmp)
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	require.NoError(t, database.Migrate())
	return database
}

func TestRecordAndUsage(t *testing.T) {
	database := openTestDB(t, "tokenizer_test_usage.db")
	ctx := context.Background()
	today := time.Now().Format("2006-01-02")

	require.NoError(t, database.RecordRequest(ctx, RequestRecord{
		Endpoint: "tokenize", Strategy: "default", TokenCount: 5, CharCount: 13, Date: today,
	}))
	require.NoError(t, database.RecordRequest(ctx, RequestRecord{
		Endpoint: "tokenize", Strategy: "word", TokenCount: 2, CharCount: 11, Date: today,
	}))
	require.NoError(t, database.RecordRequest(ctx, RequestRecord{
		Endpoint: "count", Strategy: "default", TokenCount: 3, CharCount: 7, Date: today,
	}))

	rows, err := database.Usage(ctx, today)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// Ordered by endpoint within the day: count before tokenize.
	assert.Equal(t, "count", rows[0].Endpoint)
	assert.Equal(t, 1, rows[0].Requests)
	assert.Equal(t, "tokenize", rows[1].Endpoint)
	assert.Equal(t, 2, rows[1].Requests)
	assert.Equal(t, 7, rows[1].TokenCount)
	assert.Equal(t, 24, rows[1].CharCount)
}

func TestPrune(t *testing.T) {
	database := openTestDB(t, "tokenizer_test_prune.db")
	ctx := context.Background()

	require.NoError(t, database.RecordRequest(ctx, RequestRecord{
		Endpoint: "tokenize", Date: "2020-01-01", TokenCount: 1,
	}))
	require.NoError(t, database.RecordRequest(ctx, RequestRecord{
		Endpoint: "tokenize", Date: "2099-01-01", TokenCount: 1,
	}))

	n, err := database.Prune(ctx, "2021-01-01")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	rows, err := database.Usage(ctx, "1970-01-01")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "2099-01-01", rows[0].Date)
}

func TestMigrateIsIdempotent(t *testing.T) {
	database := openTestDB(t, "tokenizer_test_migrate.db")
	require.NoError(t, database.Migrate())
	require.NoError(t, database.Migrate())
}
