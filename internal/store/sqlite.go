package store

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // driver 100% Go
)

// Open abre la base con WAL y busy_timeout para concurrencia. _txlock hace
// que cada BeginTx tome el write lock de entrada (BEGIN IMMEDIATE): dos
// checkouts simultáneos se serializan en vez de fallar al escribir.
func Open(dbPath string) (*sql.DB, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	db, err := sql.Open("sqlite", dbPath+"?_txlock=immediate&_pragma=busy_timeout=5000&_pragma=journal_mode=WAL&_pragma=foreign_keys(ON)")
	if err != nil {
		return nil, err
	}
	return db, nil
}

func Migrate(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, schema)
	return err
}

const schema = `
CREATE TABLE IF NOT EXISTS usuarios(
  id_usuario INTEGER PRIMARY KEY AUTOINCREMENT,
  nome TEXT NOT NULL,
  gmail TEXT NOT NULL,
  cpf TEXT NOT NULL UNIQUE,
  idade INTEGER NOT NULL,
  cep TEXT NOT NULL,
  is_admin INTEGER NOT NULL DEFAULT 0
);
CREATE TABLE IF NOT EXISTS categorias(
  id_categoria INTEGER PRIMARY KEY AUTOINCREMENT,
  nome TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS produtos(
  id_produto INTEGER PRIMARY KEY AUTOINCREMENT,
  nome TEXT NOT NULL,
  preco REAL NOT NULL CHECK(preco >= 0),
  imagem TEXT NOT NULL DEFAULT '',
  estoque INTEGER NOT NULL DEFAULT 0,
  descricao TEXT NOT NULL DEFAULT '',
  id_categoria INTEGER NOT NULL DEFAULT 0
);
CREATE TABLE IF NOT EXISTS carrinho(
  id_usuario TEXT NOT NULL,
  id_produto INTEGER NOT NULL,
  quantidade INTEGER NOT NULL CHECK(quantidade > 0),
  PRIMARY KEY(id_usuario, id_produto)
);
CREATE TABLE IF NOT EXISTS pedidos(
  id_pedido INTEGER PRIMARY KEY AUTOINCREMENT,
  id_usuario TEXT NOT NULL,
  data_pedido TEXT NOT NULL,
  forma_pagamento TEXT NOT NULL,
  status TEXT NOT NULL,
  usuario_nome TEXT NOT NULL,
  total REAL NOT NULL
);
CREATE TABLE IF NOT EXISTS itens_pedido(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  id_pedido INTEGER NOT NULL REFERENCES pedidos(id_pedido) ON DELETE CASCADE,
  id_produto INTEGER NOT NULL,
  nome TEXT NOT NULL,
  quantidade INTEGER NOT NULL,
  preco_unitario REAL NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_carrinho_usuario ON carrinho(id_usuario);
CREATE INDEX IF NOT EXISTS idx_pedidos_usuario ON pedidos(id_usuario);
CREATE INDEX IF NOT EXISTS idx_itens_pedido ON itens_pedido(id_pedido);
`

// Seed garantiza la categoría base de la tienda.
func Seed(ctx context.Context, db *sql.DB) error {
	var c int64
	if err := db.QueryRowContext(ctx, `SELECT COUNT(1) FROM categorias`).Scan(&c); err != nil {
		return err
	}
	if c > 0 {
		return nil
	}
	_, err := db.ExecContext(ctx, `INSERT INTO categorias(nome) VALUES ('PCs Gamer')`)
	return err
}
