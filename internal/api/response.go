package api

import (
	"net/http"

	json "github.com/bytedance/sonic"

	"github.com/sertdev/ctxscale/internal/translate"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "api_error", "Failed to encode response")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(body)
}

// writeError responds with an Anthropic-style error envelope.
func writeError(w http.ResponseWriter, status int, errType, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(translate.MarshalAnthropicError(errType, message))
}
