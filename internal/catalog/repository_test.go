package catalog

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

func newTestRepo(t *testing.T) (*Repository, *sql.DB) {
	t.Helper()
	db, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, store.Migrate(context.Background(), db))
	repo, err := NewRepository(db)
	require.NoError(t, err)
	return repo, db
}

func TestProductCRUD(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	id, err := repo.CreateProduct(ctx, &Produto{Nome: "PC Gamer X", Preco: 100.0, Estoque: 3, IDCategoria: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	p, err := repo.GetProduct(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "PC Gamer X", p.Nome)
	assert.Equal(t, 100.0, p.Preco)

	_, err = repo.GetProduct(ctx, 99)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestCreateProductRejectsNegativePrice(t *testing.T) {
	repo, _ := newTestRepo(t)
	var ve *apperr.ValidationError
	_, err := repo.CreateProduct(context.Background(), &Produto{Nome: "x", Preco: -1})
	assert.ErrorAs(t, err, &ve)
}

func TestUpdateProductMergesOnlyProvidedFields(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	id, err := repo.CreateProduct(ctx, &Produto{Nome: "PC Gamer X", Preco: 100.0, Descricao: "base"})
	require.NoError(t, err)

	preco := 120.0
	require.NoError(t, repo.UpdateProduct(ctx, id, &ProdutoPatch{Preco: &preco}))

	p, err := repo.GetProduct(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 120.0, p.Preco)
	assert.Equal(t, "PC Gamer X", p.Nome)
	assert.Equal(t, "base", p.Descricao)

	assert.ErrorIs(t, repo.UpdateProduct(ctx, 99, &ProdutoPatch{Preco: &preco}), apperr.ErrNotFound)
}

// El cache no puede servir un precio viejo después de un update ni revivir un
// producto borrado.
func TestCacheInvalidation(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	id, err := repo.CreateProduct(ctx, &Produto{Nome: "PC Gamer X", Preco: 100.0})
	require.NoError(t, err)

	_, err = repo.GetProduct(ctx, id) // calienta el cache
	require.NoError(t, err)

	preco := 150.0
	require.NoError(t, repo.UpdateProduct(ctx, id, &ProdutoPatch{Preco: &preco}))
	p, err := repo.GetProduct(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 150.0, p.Preco)

	require.NoError(t, repo.DeleteProduct(ctx, id))
	_, err = repo.GetProduct(ctx, id)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

// Una lectura que arrancó antes de un update no puede reinsertar la fila
// vieja en el LRU después de la invalidación: la generación la delata.
func TestCacheDiscardsReadOlderThanInvalidation(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	id, err := repo.CreateProduct(ctx, &Produto{Nome: "PC Gamer X", Preco: 100.0})
	require.NoError(t, err)

	// el lector toma su generación y lee la fila previa al update
	g := repo.cache.snapshot()
	stale := Produto{ID: id, Nome: "PC Gamer X", Preco: 100.0}

	preco := 150.0
	require.NoError(t, repo.UpdateProduct(ctx, id, &ProdutoPatch{Preco: &preco}))

	// el add llega tarde y debe descartarse
	repo.cache.add(g, stale)

	p, err := repo.GetProduct(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 150.0, p.Preco)
}

func TestDeleteProductAbsentIsNoop(t *testing.T) {
	repo, _ := newTestRepo(t)
	assert.NoError(t, repo.DeleteProduct(context.Background(), 99))
}

func TestCategories(t *testing.T) {
	repo, db := newTestRepo(t)
	ctx := context.Background()
	require.NoError(t, store.Seed(ctx, db))

	cats, err := repo.ListCategories(ctx)
	require.NoError(t, err)
	require.Len(t, cats, 1)
	assert.Equal(t, "PCs Gamer", cats[0].Nome)

	id, err := repo.CreateCategory(ctx, "Periféricos")
	require.NoError(t, err)
	assert.Equal(t, int64(2), id)

	var ve *apperr.ValidationError
	_, err = repo.CreateCategory(ctx, "")
	assert.ErrorAs(t, err, &ve)

	require.NoError(t, repo.DeleteCategory(ctx, id))
	cats, err = repo.ListCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, cats, 1)
}
