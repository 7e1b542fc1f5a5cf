package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-contract-guard/internal/logger"
)

// writeJSON serializes data to JSON and writes it with statusCode. If
// marshaling fails, it responds with 500 Internal Server Error instead.
func writeJSON(w http.ResponseWriter, r *http.Request, data any, statusCode int) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing data to JSON")
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_, _ = w.Write(jsonData)
}
