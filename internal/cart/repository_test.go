package cart

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pvmoreira/lojagamer/internal/apperr"
	"github.com/pvmoreira/lojagamer/internal/store"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, store.Migrate(context.Background(), db))
	return db
}

func TestAddLineUpsertsQuantity(t *testing.T) {
	repo := NewRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.AddLine(ctx, "42", 1, 2))
	require.NoError(t, repo.AddLine(ctx, "42", 1, 3))

	lines, err := repo.ListLines(ctx, "42")
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, Line{UserID: "42", ProductID: 1, Qty: 5}, lines[0])
}

func TestAddLineValidation(t *testing.T) {
	repo := NewRepository(newTestDB(t))
	ctx := context.Background()

	var ve *apperr.ValidationError
	assert.ErrorAs(t, repo.AddLine(ctx, "42", 1, 0), &ve)
	assert.ErrorAs(t, repo.AddLine(ctx, "42", 1, -2), &ve)
	assert.ErrorAs(t, repo.AddLine(ctx, "42", 0, 1), &ve)
	assert.ErrorAs(t, repo.AddLine(ctx, "", 1, 1), &ve)

	lines, err := repo.ListLines(ctx, "42")
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestRemoveLineAbsentPairIsNoop(t *testing.T) {
	repo := NewRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.AddLine(ctx, "42", 1, 2))
	require.NoError(t, repo.RemoveLine(ctx, "42", 99))
	require.NoError(t, repo.RemoveLine(ctx, "7", 1))

	lines, err := repo.ListLines(ctx, "42")
	require.NoError(t, err)
	require.Len(t, lines, 1)

	require.NoError(t, repo.RemoveLine(ctx, "42", 1))
	lines, err = repo.ListLines(ctx, "42")
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestClearUserOnlyTouchesThatUser(t *testing.T) {
	repo := NewRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.AddLine(ctx, "42", 1, 2))
	require.NoError(t, repo.AddLine(ctx, "42", 3, 1))
	require.NoError(t, repo.AddLine(ctx, "7", 1, 1))

	require.NoError(t, repo.ClearUser(ctx, "42"))
	require.NoError(t, repo.ClearUser(ctx, "nadie")) // no-op

	lines, err := repo.ListLines(ctx, "42")
	require.NoError(t, err)
	assert.Empty(t, lines)

	lines, err = repo.ListLines(ctx, "7")
	require.NoError(t, err)
	assert.Len(t, lines, 1)
}
