// Package response renders the JSON envelope every QuranLife handler
// replies with. The PWA keys off Success before touching Data, so both
// success and error paths go through the same shape.
package response

import (
	"encoding/json"
	"net/http"
)

// Envelope is the wire shape of every API reply. Data carries the payload
// on success; Errors carries field-level detail on failure. Status repeats
// the HTTP code so clients reading a cached body still see it.
type Envelope struct {
	Status  int         `json:"status"`
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Errors  interface{} `json:"errors,omitempty"`
}

func write(w http.ResponseWriter, statusCode int, env Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(env)
}

func Success(w http.ResponseWriter, data interface{}, message string) {
	write(w, http.StatusOK, Envelope{
		Status:  http.StatusOK,
		Success: true,
		Message: message,
		Data:    data,
	})
}

func Error(w http.ResponseWriter, statusCode int, message string, errs interface{}) {
	write(w, statusCode, Envelope{
		Status:  statusCode,
		Success: false,
		Message: message,
		Errors:  errs,
	})
}
