package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// writeJSON encodes data as the response body with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		return fmt.Errorf("failed to encode response: %w", err)
	}
	return nil
}

// writeMessage writes a {"message": ...} body, the shape used for
// business-rule rejections.
func writeMessage(w http.ResponseWriter, status int, message string) {
	_ = writeJSON(w, status, MessageResponse{Message: message})
}
