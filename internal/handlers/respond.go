package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"vidtube/internal/apierr"
)

type errorBody struct {
	Success bool   `json:"success"`
	Status  int    `json:"status"`
	Message string `json:"message"`
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

// respondError writes the structured failure body, mirroring the HTTP status
// inside it. Unclassified errors surface as 500.
func respondError(w http.ResponseWriter, err error) {
	var apiErr *apierr.Error
	if !errors.As(err, &apiErr) {
		apiErr = apierr.Internal("Something went wrong!")
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(apiErr.Status)
	if encErr := json.NewEncoder(w).Encode(errorBody{
		Success: false,
		Status:  apiErr.Status,
		Message: apiErr.Message,
	}); encErr != nil {
		log.Printf("Error encoding error response: %v", encErr)
	}
}

func decodeJSON(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apierr.Invalid("Invalid request body!")
	}
	return nil
}
