package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/pvmoreira/lojagamer/internal/events"
	"github.com/pvmoreira/lojagamer/internal/user"
)

func (s *Server) listUsuarios(w http.ResponseWriter, r *http.Request) {
	usuarios, err := s.users.List(r.Context())
	if err != nil {
		respondError(w, err, "Erro ao listar usuários")
		return
	}
	respondJSON(w, http.StatusOK, usuarios)
}

func (s *Server) createUsuario(w http.ResponseWriter, r *http.Request) {
	var u user.Usuario
	if err := json.NewDecoder(r.Body).Decode(&u); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "JSON inválido"})
		return
	}
	id, err := s.users.Create(r.Context(), &u)
	if err != nil {
		respondError(w, err, "Erro ao cadastrar usuário")
		return
	}
	if err := s.pub.PublishJSON(events.RKUserCreated, user.UserCreated{UserID: id, Nome: u.Nome, Gmail: u.Gmail}); err != nil {
		log.Warn().Err(err).Int64("usuario", id).Msg("publish user.created failed")
	}
	respondJSON(w, http.StatusOK, map[string]int64{"id_usuario": id})
}
