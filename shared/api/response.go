// shared/api/response.go
package api

import (
	"encoding/json"
	"log"
	"net/http"
)

// JSONErrorResponse is the standard error envelope for API responses.
type JSONErrorResponse struct {
	Message string `json:"message"`
	Code    int    `json:"code,omitempty"`
}

// SuccessResponse is the body for delete-style endpoints that only need to
// acknowledge the operation.
type SuccessResponse struct {
	Success bool `json:"success"`
}

// WriteJSON writes a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, status int, data interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(data)
}

// WriteError writes a JSON error response with the given status code and
// message, falling back to plain text if encoding fails.
func WriteError(w http.ResponseWriter, status int, message string) {
	errResp := JSONErrorResponse{
		Message: message,
		Code:    status,
	}
	if err := WriteJSON(w, status, errResp); err != nil {
		log.Printf("ERROR: Failed to write JSON error response: %v. Falling back to plain text.", err)
		http.Error(w, message, status)
	}
}

// WriteSuccess writes the {"success":true} acknowledgement body.
func WriteSuccess(w http.ResponseWriter) {
	WriteJSON(w, http.StatusOK, SuccessResponse{Success: true})
}
