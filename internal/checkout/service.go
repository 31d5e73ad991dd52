// Checkout: convierte el carrito de un usuario en un pedido inmutable.
package checkout

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/pvmoreira/lojagamer/internal/apperr"
	"github.com/pvmoreira/lojagamer/internal/cart"
	"github.com/pvmoreira/lojagamer/internal/catalog"
	"github.com/pvmoreira/lojagamer/internal/events"
	"github.com/pvmoreira/lojagamer/internal/order"
	"github.com/pvmoreira/lojagamer/internal/user"
)

// NomeDesconhecido se registra como usuario_nome cuando el id del carrito no
// corresponde a ningún usuario; la ausencia de usuario no bloquea el checkout.
const NomeDesconhecido = "Desconhecido"

type Service struct {
	db      *sql.DB
	carts   *cart.Repository
	catalog *catalog.Repository
	users   *user.Repository
	orders  *order.Repository
	pub     events.Publisher
	now     func() time.Time
}

func NewService(db *sql.DB, carts *cart.Repository, cat *catalog.Repository, users *user.Repository, orders *order.Repository, pub events.Publisher) *Service {
	return &Service{
		db:      db,
		carts:   carts,
		catalog: cat,
		users:   users,
		orders:  orders,
		pub:     pub,
		now:     time.Now,
	}
}

// PricedItem es una línea de carrito valorada contra el catálogo actual.
type PricedItem struct {
	ProductID int64   `json:"id_produto"`
	Nome      string  `json:"nome"`
	Preco     float64 `json:"preco"`
	Qty       int     `json:"quantidade"`
}

// PriceCart valora las líneas del usuario contra el catálogo, para la vista
// en vivo del carrito. Una línea que apunta a un producto inexistente
// invalida el total completo, nunca se descarta en silencio.
func (s *Service) PriceCart(ctx context.Context, userID string) ([]PricedItem, float64, error) {
	return priceLines(ctx, s.carts, s.catalog, userID)
}

func priceLines(ctx context.Context, carts *cart.Repository, cat *catalog.Repository, userID string) ([]PricedItem, float64, error) {
	lines, err := carts.ListLines(ctx, userID)
	if err != nil {
		return nil, 0, err
	}

	itens := []PricedItem{}
	var total float64
	for _, l := range lines {
		p, err := cat.GetProduct(ctx, l.ProductID)
		if err != nil {
			if errors.Is(err, apperr.ErrNotFound) {
				return nil, 0, &apperr.MissingProductError{ProductID: l.ProductID}
			}
			return nil, 0, err
		}
		itens = append(itens, PricedItem{
			ProductID: l.ProductID,
			Nome:      p.Nome,
			Preco:     p.Preco,
			Qty:       l.Qty,
		})
		total += p.Preco * float64(l.Qty)
	}
	return itens, total, nil
}

// Checkout arma el pedido con precios congelados al momento de la llamada,
// lo persiste y vacía el carrito. Todo el ciclo — leer líneas, resolver
// productos y usuario, insertar pedido, limpiar carrito — corre dentro de una
// misma transacción: el write lock se toma al abrirla (_txlock=immediate),
// así ninguna línea agregada en paralelo puede colarse entre la valoración y
// la limpieza. Un carrito vacío produce un pedido sin líneas y total 0.
func (s *Service) Checkout(ctx context.Context, userID, formaPagamento string) (*order.Pedido, error) {
	if userID == "" {
		return nil, apperr.Validationf("id_usuario é obrigatório")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	itens, total, err := priceLines(ctx, s.carts.WithTx(tx), s.catalog.WithTx(tx), userID)
	if err != nil {
		return nil, err
	}

	nome := NomeDesconhecido
	if uid, err := strconv.ParseInt(userID, 10, 64); err == nil {
		u, err := s.users.WithTx(tx).GetByID(ctx, uid)
		if err != nil {
			return nil, err
		}
		if u != nil {
			nome = u.Nome
		}
	}

	p := &order.Pedido{
		UserID:         userID,
		DataPedido:     s.now().UTC().Format(time.RFC3339),
		FormaPagamento: formaPagamento,
		Status:         order.StatusPendente,
		UsuarioNome:    nome,
		Total:          total,
		Itens:          make([]order.Item, 0, len(itens)),
	}
	for _, it := range itens {
		p.Itens = append(p.Itens, order.Item{
			ProductID:     it.ProductID,
			Nome:          it.Nome,
			Qty:           it.Qty,
			PrecoUnitario: it.Preco,
		})
	}

	oid, err := s.orders.CreateTx(ctx, tx, p)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	p.ID = oid

	evt := events.OrderCreatedPayload{
		OrderID: oid,
		UserID:  userID,
		Total:   total,
	}
	for _, it := range p.Itens {
		evt.Items = append(evt.Items, events.OrderItemEvt{
			ProductID:     it.ProductID,
			Nome:          it.Nome,
			Qty:           it.Qty,
			PrecoUnitario: it.PrecoUnitario,
		})
	}
	if err := s.pub.PublishJSON(events.RKOrderCreated, evt); err != nil {
		log.Warn().Err(err).Int64("pedido", oid).Msg("publish order.created failed")
	}

	return p, nil
}
