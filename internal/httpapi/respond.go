package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/pvmoreira/lojagamer/internal/apperr"
)

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("encode response")
	}
}

func respondMessage(w http.ResponseWriter, msg string) {
	respondJSON(w, http.StatusOK, map[string]string{"message": msg})
}

// respondError mapea la taxonomía a códigos HTTP. Cualquier error no
// clasificado se responde con el mensaje genérico del endpoint y queda en el
// log; ninguna petición tumba el proceso.
func respondError(w http.ResponseWriter, err error, fallback string) {
	var ve *apperr.ValidationError
	if errors.As(err, &ve) {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": ve.Msg})
		return
	}
	// una referencia rota de catálogo responde 5xx con el detalle: es estado
	// inconsistente del lado del servidor, no un request malformado
	var mpe *apperr.MissingProductError
	if errors.As(err, &mpe) {
		respondJSON(w, http.StatusInternalServerError, map[string]string{"error": mpe.Error()})
		return
	}
	if errors.Is(err, apperr.ErrNotFound) {
		respondJSON(w, http.StatusNotFound, map[string]string{"error": fallback})
		return
	}
	log.Error().Err(err).Msg(fallback)
	respondJSON(w, http.StatusInternalServerError, map[string]string{"error": fallback})
}
