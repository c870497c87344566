package rest

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/vitrine-lab/vitrineserv/internal/usecase"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("failed to write response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// respondError maps the usecase error taxonomy onto HTTP statuses:
// validation -> 400 with field errors, not found -> 404, empty cart
// -> 400, everything else -> 500.
func respondError(w http.ResponseWriter, err error, notFoundMessage string) {
	var verr *usecase.ValidationError

	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"error":  verr.Error(),
			"fields": verr.Fields,
		})
	case errors.Is(err, usecase.ErrNotFound):
		writeError(w, http.StatusNotFound, notFoundMessage)
	case errors.Is(err, usecase.ErrEmptyCart):
		writeError(w, http.StatusBadRequest, "cart is empty")
	default:
		log.Printf("request failed: %v", err)
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}
