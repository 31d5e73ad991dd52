// Operaciones de carrito
package cart

import (
	"context"
	"database/sql"

	"github.com/pvmoreira/lojagamer/internal/apperr"
	"github.com/pvmoreira/lojagamer/internal/store"
)

type Repository struct {
	db store.DBTX
}

func NewRepository(db *sql.DB) *Repository { return &Repository{db: db} }

// WithTx devuelve una vista del repositorio ligada a la transacción.
func (r *Repository) WithTx(tx *sql.Tx) *Repository { return &Repository{db: tx} }

// AddLine inserta la línea o incrementa quantidade si el par ya existe.
func (r *Repository) AddLine(ctx context.Context, userID string, productID int64, qty int) error {
	if userID == "" {
		return apperr.Validationf("id_usuario é obrigatório")
	}
	if productID <= 0 {
		return apperr.Validationf("id_produto deve ser um inteiro positivo")
	}
	if qty <= 0 {
		return apperr.Validationf("quantidade deve ser um inteiro positivo")
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO carrinho(id_usuario, id_produto, quantidade)
		VALUES (?, ?, ?)
		ON CONFLICT(id_usuario, id_produto)
		DO UPDATE SET quantidade = quantidade + excluded.quantidade
	`, userID, productID, qty)
	return err
}

// RemoveLine borra la línea exacta; un par ausente no es error.
func (r *Repository) RemoveLine(ctx context.Context, userID string, productID int64) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM carrinho WHERE id_usuario=? AND id_produto=?`, userID, productID)
	return err
}

func (r *Repository) ClearUser(ctx context.Context, userID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM carrinho WHERE id_usuario=?`, userID)
	return err
}

func (r *Repository) ListLines(ctx context.Context, userID string) ([]Line, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id_usuario, id_produto, quantidade
		FROM carrinho WHERE id_usuario=? ORDER BY id_produto`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Line
	for rows.Next() {
		var l Line
		if err := rows.Scan(&l.UserID, &l.ProductID, &l.Qty); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}
