package user

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/pvmoreira/lojagamer/internal/apperr"
	"github.com/pvmoreira/lojagamer/internal/store"
)

type Repository struct {
	db store.DBTX
}

func NewRepository(db *sql.DB) *Repository { return &Repository{db: db} }

// WithTx devuelve una vista del repositorio ligada a la transacción.
func (r *Repository) WithTx(tx *sql.Tx) *Repository { return &Repository{db: tx} }

// Create registra un usuario nuevo. La unicidad del CPF la garantiza la
// constraint UNIQUE; así dos registros simultáneos con el mismo CPF no pueden
// colarse entre un chequeo previo y el insert.
func (r *Repository) Create(ctx context.Context, u *Usuario) (int64, error) {
	if u.Nome == "" || u.Gmail == "" || u.CPF == "" || u.Idade == 0 || u.CEP == "" {
		return 0, apperr.Validationf("todos os campos são obrigatórios")
	}
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO usuarios(nome, gmail, cpf, idade, cep, is_admin)
		 VALUES(?,?,?,?,?,0)`, u.Nome, u.Gmail, u.CPF, u.Idade, u.CEP)
	if err != nil {
		if isCPFConflict(err) {
			return 0, apperr.Validationf("CPF já cadastrado")
		}
		return 0, err
	}
	return res.LastInsertId()
}

func isCPFConflict(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed: usuarios.cpf")
}

func (r *Repository) List(ctx context.Context) ([]Usuario, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id_usuario, nome, gmail, cpf, idade, cep, is_admin FROM usuarios ORDER BY id_usuario`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Usuario{}
	for rows.Next() {
		var u Usuario
		if err := rows.Scan(&u.ID, &u.Nome, &u.Gmail, &u.CPF, &u.Idade, &u.CEP, &u.IsAdmin); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

// GetByID devuelve nil (sin error) cuando el usuario no existe: la ausencia
// de usuario nunca bloquea un checkout.
func (r *Repository) GetByID(ctx context.Context, id int64) (*Usuario, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id_usuario, nome, gmail, cpf, idade, cep, is_admin FROM usuarios WHERE id_usuario=?`, id)
	u := &Usuario{}
	if err := row.Scan(&u.ID, &u.Nome, &u.Gmail, &u.CPF, &u.Idade, &u.CEP, &u.IsAdmin); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return u, nil
}
