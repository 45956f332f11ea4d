package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
)

// Check reports readiness. A non-nil error marks the service not ready.
type Check func(ctx context.Context) error

// HealthHandler answers liveness and readiness checks. Without checks it
// always reports "alive"; otherwise every check must pass for "ready", and
// a failure responds 503 with "not_ready" and the error.
func HealthHandler(checks ...Check) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body := map[string]string{"status": "alive"}
		status := http.StatusOK
		if len(checks) > 0 {
			body["status"] = "ready"
			for _, check := range checks {
				if err := check(r.Context()); err != nil {
					status = http.StatusServiceUnavailable
					body = map[string]string{"status": "not_ready", "error": err.Error()}
					break
				}
			}
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(body)
	}
}
