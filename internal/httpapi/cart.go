package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/pvmoreira/lojagamer/internal/checkout"
)

type carrinhoView struct {
	Itens []checkout.PricedItem `json:"itens"`
	Total float64               `json:"total"`
}

// getCarrinho re-valora el carrito contra los precios actuales del catálogo;
// a diferencia del pedido, esta vista no congela nada.
func (s *Server) getCarrinho(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["id_usuario"]
	itens, total, err := s.checkout.PriceCart(r.Context(), userID)
	if err != nil {
		respondError(w, err, "Erro ao listar carrinho")
		return
	}
	respondJSON(w, http.StatusOK, carrinhoView{Itens: itens, Total: total})
}

func (s *Server) addCarrinho(w http.ResponseWriter, r *http.Request) {
	var body struct {
		IDUsuario  json.RawMessage `json:"id_usuario"`
		IDProduto  json.RawMessage `json:"id_produto"`
		Quantidade json.RawMessage `json:"quantidade"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "JSON inválido"})
		return
	}
	// id_produto y quantidade llegan como número o como string numérica
	productID, err1 := parseIntField(body.IDProduto)
	qty, err2 := parseIntField(body.Quantidade)
	if err1 != nil || err2 != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "id_produto e quantidade devem ser inteiros"})
		return
	}
	if err := s.carts.AddLine(r.Context(), parseStrField(body.IDUsuario), productID, int(qty)); err != nil {
		respondError(w, err, "Erro ao adicionar ao carrinho")
		return
	}
	respondMessage(w, "Item adicionado ao carrinho")
}

func (s *Server) removeCarrinhoItem(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID := vars["id_usuario"]
	productID, err := strconv.ParseInt(vars["id_produto"], 10, 64)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "id_produto inválido"})
		return
	}
	if err := s.carts.RemoveLine(r.Context(), userID, productID); err != nil {
		respondError(w, err, "Erro ao remover item do carrinho")
		return
	}
	respondMessage(w, "Item removido do carrinho")
}

func (s *Server) clearCarrinho(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["id_usuario"]
	if err := s.carts.ClearUser(r.Context(), userID); err != nil {
		respondError(w, err, "Erro ao limpar carrinho")
		return
	}
	respondMessage(w, "Carrinho limpo")
}

func parseIntField(raw json.RawMessage) (int64, error) {
	var n int64
	if err := json.Unmarshal(raw, &n); err == nil {
		return n, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return 0, err
	}
	return strconv.ParseInt(s, 10, 64)
}

// parseStrField acepta "42" o 42; el carrito trata el id de usuario como
// texto opaco.
func parseStrField(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var n int64
	if err := json.Unmarshal(raw, &n); err == nil {
		return strconv.FormatInt(n, 10)
	}
	return ""
}
