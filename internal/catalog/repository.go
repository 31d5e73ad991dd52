package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/pvmoreira/lojagamer/internal/apperr"
	"github.com/pvmoreira/lojagamer/internal/store"
)

const cacheSize = 256

// productCache es un LRU con un contador de generación: una lectura que
// compite con un update/delete se descarta en vez de revivir un precio viejo.
type productCache struct {
	lru *lru.Cache[int64, Produto]
	gen atomic.Uint64
}

func (c *productCache) snapshot() uint64 { return c.gen.Load() }

// add guarda la fila leída bajo la generación g; si alguna invalidación
// ocurrió desde entonces la entrada se retira de inmediato.
func (c *productCache) add(g uint64, p Produto) {
	c.lru.Add(p.ID, p)
	if c.gen.Load() != g {
		c.lru.Remove(p.ID)
	}
}

func (c *productCache) invalidate(id int64) {
	c.gen.Add(1)
	c.lru.Remove(id)
}

type Repository struct {
	db    store.DBTX
	cache *productCache
}

func NewRepository(db *sql.DB) (*Repository, error) {
	c, err := lru.New[int64, Produto](cacheSize)
	if err != nil {
		return nil, err
	}
	return &Repository{db: db, cache: &productCache{lru: c}}, nil
}

// WithTx comparte el cache: dentro del checkout los productos se leen bajo la
// transacción pero las invalidaciones siguen siendo globales.
func (r *Repository) WithTx(tx *sql.Tx) *Repository {
	return &Repository{db: tx, cache: r.cache}
}

func (r *Repository) CreateProduct(ctx context.Context, p *Produto) (int64, error) {
	if p.Preco < 0 {
		return 0, apperr.Validationf("preço não pode ser negativo")
	}
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO produtos(nome, preco, imagem, estoque, descricao, id_categoria)
		VALUES(?,?,?,?,?,?)`,
		p.Nome, p.Preco, p.Imagem, p.Estoque, p.Descricao, p.IDCategoria)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *Repository) ListProducts(ctx context.Context) ([]Produto, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id_produto, nome, preco, imagem, estoque, descricao, id_categoria
		FROM produtos ORDER BY id_produto`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Produto{}
	for rows.Next() {
		var p Produto
		if err := rows.Scan(&p.ID, &p.Nome, &p.Preco, &p.Imagem, &p.Estoque, &p.Descricao, &p.IDCategoria); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *Repository) GetProduct(ctx context.Context, id int64) (*Produto, error) {
	if p, ok := r.cache.lru.Get(id); ok {
		return &p, nil
	}
	g := r.cache.snapshot()
	p, err := r.fetchProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	r.cache.add(g, *p)
	return p, nil
}

func (r *Repository) fetchProduct(ctx context.Context, id int64) (*Produto, error) {
	var p Produto
	err := r.db.QueryRowContext(ctx, `
		SELECT id_produto, nome, preco, imagem, estoque, descricao, id_categoria
		FROM produtos WHERE id_produto=?`, id).
		Scan(&p.ID, &p.Nome, &p.Preco, &p.Imagem, &p.Estoque, &p.Descricao, &p.IDCategoria)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repository) UpdateProduct(ctx context.Context, id int64, patch *ProdutoPatch) error {
	p, err := r.fetchProduct(ctx, id)
	if err != nil {
		return err
	}
	if patch.Nome != nil {
		p.Nome = *patch.Nome
	}
	if patch.Preco != nil {
		if *patch.Preco < 0 {
			return apperr.Validationf("preço não pode ser negativo")
		}
		p.Preco = *patch.Preco
	}
	if patch.Imagem != nil {
		p.Imagem = *patch.Imagem
	}
	if patch.Estoque != nil {
		p.Estoque = *patch.Estoque
	}
	if patch.Descricao != nil {
		p.Descricao = *patch.Descricao
	}
	if patch.IDCategoria != nil {
		p.IDCategoria = *patch.IDCategoria
	}
	_, err = r.db.ExecContext(ctx, `
		UPDATE produtos SET nome=?, preco=?, imagem=?, estoque=?, descricao=?, id_categoria=?
		WHERE id_produto=?`,
		p.Nome, p.Preco, p.Imagem, p.Estoque, p.Descricao, p.IDCategoria, id)
	if err != nil {
		return err
	}
	r.cache.invalidate(id)
	return nil
}

// DeleteProduct es idempotente: borrar un id inexistente no es error.
func (r *Repository) DeleteProduct(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM produtos WHERE id_produto=?`, id)
	if err != nil {
		return err
	}
	r.cache.invalidate(id)
	return nil
}

func (r *Repository) CreateCategory(ctx context.Context, nome string) (int64, error) {
	if nome == "" {
		return 0, apperr.Validationf("nome é obrigatório")
	}
	res, err := r.db.ExecContext(ctx, `INSERT INTO categorias(nome) VALUES(?)`, nome)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *Repository) ListCategories(ctx context.Context) ([]Categoria, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id_categoria, nome FROM categorias ORDER BY id_categoria`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Categoria{}
	for rows.Next() {
		var c Categoria
		if err := rows.Scan(&c.ID, &c.Nome); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *Repository) DeleteCategory(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM categorias WHERE id_categoria=?`, id)
	if err != nil {
		return fmt.Errorf("excluir categoria %d: %w", id, err)
	}
	return nil
}
