package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON serializes the given data to JSON and writes it to the HTTP response.
//
// It sets the "Content-Type" header to "application/json" and writes
// the provided HTTP status code before sending the response body.
//
// If marshaling fails, it responds with 500 Internal Server Error
// and returns a wrapped error.
//
// Example usage:
//
//	WriteJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteEventFrame writes one line-delimited event frame to a long-lived
// notification stream: "data: <json>" followed by a blank line. The caller
// is responsible for flushing the response writer afterwards.
func WriteEventFrame(w http.ResponseWriter, event any) (int, error) {
	jsonData, err := json.Marshal(event)
	if err != nil {
		return 0, fmt.Errorf("error writing event to JSON: %w", err)
	}

	return fmt.Fprintf(w, "data: %s\n\n", jsonData)
}

// WriteCommentFrame writes a no-content comment frame used as a heartbeat.
// Consumers are expected to ignore lines starting with a colon.
func WriteCommentFrame(w http.ResponseWriter) (int, error) {
	return fmt.Fprint(w, ": ping\n\n")
}
