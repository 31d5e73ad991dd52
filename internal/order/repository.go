package order

import (
	"context"
	"database/sql"
	"errors"

	"github.com/pvmoreira/lojagamer/internal/apperr"
)

type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *Repository { return &Repository{db: db} }

// Create persiste el pedido con sus ítems y vacía el carrito del usuario en
// una sola transacción: o queda todo, o no queda nada.
func (r *Repository) Create(ctx context.Context, p *Pedido) (int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	oid, err := r.CreateTx(ctx, tx, p)
	if err != nil {
		return 0, err
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return oid, nil
}

// CreateTx hace el insert del pedido, sus ítems y la limpieza del carrito
// sobre una transacción ajena; el checkout la usa para que la lectura del
// carrito y esta escritura compartan el mismo lock.
func (r *Repository) CreateTx(ctx context.Context, tx *sql.Tx, p *Pedido) (int64, error) {
	res, err := tx.ExecContext(ctx, `
	INSERT INTO pedidos(id_usuario, data_pedido, forma_pagamento, status, usuario_nome, total)
	VALUES(?,?,?,?,?,?)`,
		p.UserID, p.DataPedido, p.FormaPagamento, p.Status, p.UsuarioNome, p.Total)
	if err != nil {
		return 0, err
	}

	oid, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	stmt, err := tx.PrepareContext(ctx, `
	INSERT INTO itens_pedido(id_pedido, id_produto, nome, quantidade, preco_unitario)
	VALUES(?,?,?,?,?)`)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	for _, it := range p.Itens {
		if _, err := stmt.ExecContext(ctx,
			oid, it.ProductID, it.Nome, it.Qty, it.PrecoUnitario); err != nil {
			return 0, err
		}
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM carrinho WHERE id_usuario=?`, p.UserID); err != nil {
		return 0, err
	}
	return oid, nil
}

func (r *Repository) List(ctx context.Context) ([]Pedido, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id_pedido, id_usuario, data_pedido, forma_pagamento, status, usuario_nome, total
	FROM pedidos ORDER BY id_pedido`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Pedido{}
	for rows.Next() {
		var p Pedido
		if err := rows.Scan(&p.ID, &p.UserID, &p.DataPedido, &p.FormaPagamento, &p.Status, &p.UsuarioNome, &p.Total); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for i := range out {
		itens, err := r.listItems(ctx, out[i].ID)
		if err != nil {
			return nil, err
		}
		out[i].Itens = itens
	}
	return out, nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*Pedido, error) {
	row := r.db.QueryRowContext(ctx, `
	SELECT id_pedido, id_usuario, data_pedido, forma_pagamento, status, usuario_nome, total
	FROM pedidos WHERE id_pedido=?`, id)
	var p Pedido
	if err := row.Scan(&p.ID, &p.UserID, &p.DataPedido, &p.FormaPagamento, &p.Status, &p.UsuarioNome, &p.Total); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	itens, err := r.listItems(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	p.Itens = itens
	return &p, nil
}

// ItemsOf devuelve las líneas del pedido; pedido inexistente es not-found.
func (r *Repository) ItemsOf(ctx context.Context, id int64) ([]Item, error) {
	p, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return p.Itens, nil
}

func (r *Repository) listItems(ctx context.Context, orderID int64) ([]Item, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id_produto, nome, quantidade, preco_unitario
	FROM itens_pedido WHERE id_pedido=? ORDER BY id`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Item{}
	for rows.Next() {
		var it Item
		if err := rows.Scan(&it.ProductID, &it.Nome, &it.Qty, &it.PrecoUnitario); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}
