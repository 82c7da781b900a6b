package api

import (
	"encoding/json"
	"net/http"
)

// Envelope is the uniform success response: a human message plus the raw
// MISP payload, passed through exactly as the server returned it.
type Envelope struct {
	Message string          `json:"Message"`
	Data    json.RawMessage `json:"Data"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if status == http.StatusNoContent {
		return
	}
	json.NewEncoder(w).Encode(v)
}

func writeEnvelope(w http.ResponseWriter, status int, message string, data json.RawMessage) {
	writeJSON(w, status, Envelope{Message: message, Data: data})
}

// writeError emits the generic failure body. Exception detail never reaches
// the caller; it goes to the fault log only.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func writeValidationError(w http.ResponseWriter) {
	writeJSON(w, http.StatusBadRequest, map[string]string{"Error": "Value Error"})
}
