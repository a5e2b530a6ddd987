// Package httpapi exposes the HTTP surface of the retail catalog:
// category and product views, the merge factory, price updates, orders,
// and catalog reloads.
package httpapi

import (
	"encoding/json"
	"net/http"
)

// errorPayload is the uniform JSON error body. Error carries a stable
// machine-readable code; Details is free text for the caller.
type errorPayload struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// WriteJSONError writes an errorPayload with the given status code.
func WriteJSONError(w http.ResponseWriter, status int, code, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorPayload{Error: code, Details: details})
}
