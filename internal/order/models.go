package order

// StatusPendente es el único estado emitido hoy; el pedido nace pendiente y
// ninguna operación lo avanza todavía.
const StatusPendente = "Pendente"

// Pedido es una foto inmutable: nombre y precio de cada producto quedan
// copiados al momento del checkout y no siguen al catálogo.
type Pedido struct {
	ID             int64   `json:"id_pedido"`
	UserID         string  `json:"id_usuario"`
	DataPedido     string  `json:"data_pedido"`
	FormaPagamento string  `json:"forma_pagamento"`
	Status         string  `json:"status"`
	UsuarioNome    string  `json:"usuario_nome"`
	Total          float64 `json:"total"`
	Itens          []Item  `json:"itens"`
}

type Item struct {
	ProductID     int64   `json:"id_produto"`
	Nome          string  `json:"nome"`
	Qty           int     `json:"quantidade"`
	PrecoUnitario float64 `json:"preco_unitario"`
}
