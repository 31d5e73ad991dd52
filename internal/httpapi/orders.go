package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/pvmoreira/lojagamer/internal/apperr"
)

func (s *Server) createPedido(w http.ResponseWriter, r *http.Request) {
	var body struct {
		IDUsuario      json.RawMessage `json:"id_usuario"`
		FormaPagamento string          `json:"forma_pagamento"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "JSON inválido"})
		return
	}
	if _, err := s.checkout.Checkout(r.Context(), parseStrField(body.IDUsuario), body.FormaPagamento); err != nil {
		respondError(w, err, "Erro ao finalizar pedido")
		return
	}
	respondMessage(w, "Pedido finalizado")
}

func (s *Server) listPedidos(w http.ResponseWriter, r *http.Request) {
	pedidos, err := s.orders.List(r.Context())
	if err != nil {
		respondError(w, err, "Erro ao listar pedidos")
		return
	}
	respondJSON(w, http.StatusOK, pedidos)
}

func (s *Server) listItensPedido(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "id inválido"})
		return
	}
	itens, err := s.orders.ItemsOf(r.Context(), id)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			respondJSON(w, http.StatusNotFound, map[string]string{"error": "Pedido não encontrado"})
			return
		}
		respondError(w, err, "Erro ao listar itens do pedido")
		return
	}
	respondJSON(w, http.StatusOK, itens)
}
