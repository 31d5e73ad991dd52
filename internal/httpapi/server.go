package httpapi

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/pvmoreira/lojagamer/internal/cart"
	"github.com/pvmoreira/lojagamer/internal/catalog"
	"github.com/pvmoreira/lojagamer/internal/checkout"
	"github.com/pvmoreira/lojagamer/internal/events"
	"github.com/pvmoreira/lojagamer/internal/order"
	"github.com/pvmoreira/lojagamer/internal/user"
)

type Server struct {
	users    *user.Repository
	catalog  *catalog.Repository
	carts    *cart.Repository
	orders   *order.Repository
	checkout *checkout.Service
	pub      events.Publisher
	timeout  time.Duration
}

func NewServer(users *user.Repository, cat *catalog.Repository, carts *cart.Repository, orders *order.Repository, chk *checkout.Service, pub events.Publisher, timeout time.Duration) *Server {
	return &Server{
		users:    users,
		catalog:  cat,
		carts:    carts,
		orders:   orders,
		checkout: chk,
		pub:      pub,
		timeout:  timeout,
	}
}

func (s *Server) Router() http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/usuarios", s.listUsuarios).Methods(http.MethodGet)
	r.HandleFunc("/usuarios", s.createUsuario).Methods(http.MethodPost)

	r.HandleFunc("/produtos", s.listProdutos).Methods(http.MethodGet)
	r.HandleFunc("/produtos", s.createProduto).Methods(http.MethodPost)
	r.HandleFunc("/produtos/{id}", s.updateProduto).Methods(http.MethodPut)
	r.HandleFunc("/produtos/{id}", s.deleteProduto).Methods(http.MethodDelete)

	r.HandleFunc("/categorias", s.listCategorias).Methods(http.MethodGet)
	r.HandleFunc("/categorias", s.createCategoria).Methods(http.MethodPost)
	r.HandleFunc("/categorias/{id}", s.deleteCategoria).Methods(http.MethodDelete)

	r.HandleFunc("/carrinho", s.addCarrinho).Methods(http.MethodPost)
	r.HandleFunc("/carrinho/{id_usuario}", s.getCarrinho).Methods(http.MethodGet)
	r.HandleFunc("/carrinho/{id_usuario}", s.clearCarrinho).Methods(http.MethodDelete)
	r.HandleFunc("/carrinho/{id_usuario}/{id_produto}", s.removeCarrinhoItem).Methods(http.MethodDelete)

	r.HandleFunc("/pedido", s.createPedido).Methods(http.MethodPost)
	r.HandleFunc("/pedidos", s.listPedidos).Methods(http.MethodGet)
	r.HandleFunc("/pedidos/{id}/itens", s.listItensPedido).Methods(http.MethodGet)

	var h http.Handler = r
	h = s.withTimeout(h)
	h = withLogging(h)
	return cors.AllowAll().Handler(h)
}
