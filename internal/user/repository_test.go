package user

import (
	"context"
	"database/sql"
	"errors"
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

func TestCreateRequiresAllFields(t *testing.T) {
	repo := NewRepository(newTestDB(t))
	ctx := context.Background()

	var ve *apperr.ValidationError
	_, err := repo.Create(ctx, &Usuario{Nome: "Ana", Gmail: "ana@gmail.com"})
	assert.ErrorAs(t, err, &ve)
}

func TestCreateRejectsDuplicateCPF(t *testing.T) {
	repo := NewRepository(newTestDB(t))
	ctx := context.Background()

	u := &Usuario{Nome: "Ana", Gmail: "ana@gmail.com", CPF: "111", Idade: 30, CEP: "01000-000"}
	id, err := repo.Create(ctx, u)
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	// el duplicado choca contra la constraint UNIQUE y vuelve como
	// ValidationError, no como error de servidor
	var ve *apperr.ValidationError
	_, err = repo.Create(ctx, &Usuario{Nome: "Bia", Gmail: "bia@gmail.com", CPF: "111", Idade: 25, CEP: "02000-000"})
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "CPF já cadastrado", ve.Msg)

	users, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestIsCPFConflictOnlyMatchesTheCPFConstraint(t *testing.T) {
	assert.True(t, isCPFConflict(errors.New("constraint failed: UNIQUE constraint failed: usuarios.cpf (2067)")))
	assert.False(t, isCPFConflict(errors.New("database is locked")))
	assert.False(t, isCPFConflict(nil))
}

func TestGetByIDAbsentReturnsNil(t *testing.T) {
	repo := NewRepository(newTestDB(t))
	ctx := context.Background()

	u, err := repo.GetByID(ctx, 99)
	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestListNeverAdmins(t *testing.T) {
	repo := NewRepository(newTestDB(t))
	ctx := context.Background()

	_, err := repo.Create(ctx, &Usuario{Nome: "Ana", Gmail: "ana@gmail.com", CPF: "111", Idade: 30, CEP: "01000-000", IsAdmin: true})
	require.NoError(t, err)

	users, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	// el registro público nunca crea admins
	assert.False(t, users[0].IsAdmin)
}
