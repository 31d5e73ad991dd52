package cart

// Line es una intención de compra pendiente. La clave es el par
// (id_usuario, id_produto); agregar de nuevo incrementa quantidade.
type Line struct {
	UserID    string `json:"id_usuario"`
	ProductID int64  `json:"id_produto"`
	Qty       int    `json:"quantidade"`
}
