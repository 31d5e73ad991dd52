package catalog

type Produto struct {
	ID          int64   `json:"id_produto"`
	Nome        string  `json:"nome"`
	Preco       float64 `json:"preco"`
	Imagem      string  `json:"imagem"`
	Estoque     int     `json:"estoque"`
	Descricao   string  `json:"descricao"`
	IDCategoria int64   `json:"id_categoria"`
}

type Categoria struct {
	ID   int64  `json:"id_categoria"`
	Nome string `json:"nome"`
}

// ProdutoPatch lleva sólo los campos presentes en el body de un PUT;
// los punteros nil se dejan como están.
type ProdutoPatch struct {
	Nome        *string  `json:"nome"`
	Preco       *float64 `json:"preco"`
	Imagem      *string  `json:"imagem"`
	Estoque     *int     `json:"estoque"`
	Descricao   *string  `json:"descricao"`
	IDCategoria *int64   `json:"id_categoria"`
}
