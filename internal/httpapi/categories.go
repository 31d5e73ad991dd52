package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

func (s *Server) listCategorias(w http.ResponseWriter, r *http.Request) {
	categorias, err := s.catalog.ListCategories(r.Context())
	if err != nil {
		respondError(w, err, "Erro ao listar categorias")
		return
	}
	respondJSON(w, http.StatusOK, categorias)
}

func (s *Server) createCategoria(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Nome string `json:"nome"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "JSON inválido"})
		return
	}
	if _, err := s.catalog.CreateCategory(r.Context(), body.Nome); err != nil {
		respondError(w, err, "Erro ao adicionar categoria")
		return
	}
	respondMessage(w, "Categoria adicionada")
}

func (s *Server) deleteCategoria(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "id inválido"})
		return
	}
	if err := s.catalog.DeleteCategory(r.Context(), id); err != nil {
		respondError(w, err, "Erro ao excluir categoria")
		return
	}
	respondMessage(w, "Categoria excluída")
}
