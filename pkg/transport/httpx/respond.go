package httpx

import (
	"encoding/json"
	"net/http"
)

// WriteJSON writes payload with status; an empty payload is sent as {}.
func WriteJSON(w http.ResponseWriter, payload []byte, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if len(payload) == 0 {
		payload = []byte(`{}`)
	}
	_, _ = w.Write(payload)
}

func WriteError(w http.ResponseWriter, status int, msg string) {
	b, _ := json.Marshal(map[string]string{"error": msg})
	WriteJSON(w, b, status)
}

// StatusOr returns s when positive, def otherwise.
func StatusOr(s, def int) int {
	if s > 0 {
		return s
	}
	return def
}
