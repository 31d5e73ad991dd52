package events

// Routing keys publicados por la tienda
const (
	RKOrderCreated = "order.created"
	RKUserCreated  = "user.created"
)

type OrderCreatedPayload struct {
	OrderID int64          `json:"order_id"`
	UserID  string         `json:"user_id"`
	Items   []OrderItemEvt `json:"items"`
	Total   float64        `json:"total"`
}

type OrderItemEvt struct {
	ProductID     int64   `json:"id_produto"`
	Nome          string  `json:"nome"`
	Qty           int     `json:"quantidade"`
	PrecoUnitario float64 `json:"preco_unitario"`
}
