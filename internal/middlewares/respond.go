package middlewares

import (
	"encoding/json"
	"net/http"

	"github.com/promco/backend/internal/models"
)

// WriteError writes the common JSON error body with the given status
func WriteError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(models.ErrorResponse{Error: true, Message: message})
}
