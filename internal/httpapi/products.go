package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/pvmoreira/lojagamer/internal/apperr"
	"github.com/pvmoreira/lojagamer/internal/catalog"
)

func (s *Server) listProdutos(w http.ResponseWriter, r *http.Request) {
	produtos, err := s.catalog.ListProducts(r.Context())
	if err != nil {
		respondError(w, err, "Erro ao listar produtos")
		return
	}
	respondJSON(w, http.StatusOK, produtos)
}

func (s *Server) createProduto(w http.ResponseWriter, r *http.Request) {
	var p catalog.Produto
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "JSON inválido"})
		return
	}
	if _, err := s.catalog.CreateProduct(r.Context(), &p); err != nil {
		respondError(w, err, "Erro ao adicionar produto")
		return
	}
	respondMessage(w, "Produto adicionado")
}

func (s *Server) updateProduto(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "id inválido"})
		return
	}
	var patch catalog.ProdutoPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "JSON inválido"})
		return
	}
	if err := s.catalog.UpdateProduct(r.Context(), id, &patch); err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			respondJSON(w, http.StatusNotFound, map[string]string{"error": "Produto não encontrado"})
			return
		}
		respondError(w, err, "Erro ao editar produto")
		return
	}
	respondMessage(w, "Produto atualizado")
}

func (s *Server) deleteProduto(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "id inválido"})
		return
	}
	if err := s.catalog.DeleteProduct(r.Context(), id); err != nil {
		respondError(w, err, "Erro ao excluir produto")
		return
	}
	respondMessage(w, "Produto excluído")
}
