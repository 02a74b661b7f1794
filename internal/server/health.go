package server

import "net/http"

// HealthHandler returns a liveness probe handler that always returns 200 OK.
// The translator holds no state, so liveness is also readiness.
func HealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}
}
